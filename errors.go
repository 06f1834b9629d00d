package mpi

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind enumerates the flat error taxonomy every fallible mpi operation
// returns. The zero Kind is never used; Error is only ever constructed
// with one of the named kinds below.
type Kind int

const (
	// ErrAlloc is returned when grow cannot satisfy a request, or when an
	// operation would need more than MaxLimbs limbs. wrapErr also assigns
	// it to a wrapped cause that is not an *Error, such as an RNG read
	// failure; that cause stays reachable through Unwrap.
	ErrAlloc Kind = iota + 1
	// ErrBadInput is returned for malformed strings, out-of-range radixes,
	// a non-positive or even ExpMod modulus, an InvMod modulus <= 1, or a
	// GenPrime bit count below 3.
	ErrBadInput
	// ErrBufferTooSmall is returned when an export buffer is too small;
	// the caller can recover the required size from Error.Required.
	ErrBufferTooSmall
	// ErrNegative is returned on unsigned subtraction underflow, or when
	// a modulus passed to Mod is negative.
	ErrNegative
	// ErrDivByZero is returned when a division's divisor is zero.
	ErrDivByZero
	// ErrNotAcceptable is returned when InvMod finds gcd(a, n) != 1, or
	// when IsPrime proves its argument composite.
	ErrNotAcceptable
)

func (k Kind) String() string {
	switch k {
	case ErrAlloc:
		return "alloc"
	case ErrBadInput:
		return "bad input"
	case ErrBufferTooSmall:
		return "buffer too small"
	case ErrNegative:
		return "negative"
	case ErrDivByZero:
		return "division by zero"
	case ErrNotAcceptable:
		return "not acceptable"
	default:
		return "unknown"
	}
}

// Error is the concrete error type returned by every fallible operation
// in this package. Op names the failing operation (e.g. "mpi.Div"),
// Required carries the minimum buffer size for ErrBufferTooSmall, and
// Err is the wrapped underlying cause, if any.
type Error struct {
	Kind     Kind
	Op       string
	Required int
	Err      error
}

func (e *Error) Error() string {
	if e.Required > 0 {
		return fmt.Sprintf("mpi: %s: %s (need %d bytes)", e.Op, e.Kind, e.Required)
	}
	if e.Err != nil {
		return fmt.Sprintf("mpi: %s: %s: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("mpi: %s: %s", e.Op, e.Kind)
}

func (e *Error) Unwrap() error { return e.Err }

func newErr(op string, kind Kind) error {
	return &Error{Op: op, Kind: kind}
}

func newErrRequired(op string, kind Kind, required int) error {
	return &Error{Op: op, Kind: kind, Required: required}
}

// wrapErr attaches op context to an inner failure (typically a grow
// ErrAlloc surfacing from deep inside a compound operation) using
// github.com/pkg/errors, following the teacher's wrapping idiom in
// common/random.go (errors.Wrap(err, "rand.Int failure in ...")). If err
// is already an *Error for this op it is returned unwrapped to avoid
// doubly-nested messages.
func wrapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) && e.Op == op {
		return err
	}
	var kind Kind = ErrAlloc
	if errors.As(err, &e) {
		kind = e.Kind
	}
	return &Error{Op: op, Kind: kind, Err: errors.Wrap(err, op)}
}
