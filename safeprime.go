package mpi

import (
	"context"
	"io"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
)

// SafePrime holds a matched pair p, q with p = 2q + 1, both prime.
type SafePrime struct {
	p, q *Int
}

// SafePrime returns p, the safe prime.
func (s *SafePrime) SafePrime() *Int { return s.p }

// Prime returns q, the Sophie Germain prime underlying p.
func (s *SafePrime) Prime() *Int { return s.q }

// Validate independently re-checks that p = 2q+1 and that both p and q
// pass a Miller-Rabin test, drawing fresh witnesses from rand. This
// redoes work GenSafePrimeConcurrent already did during generation, but
// serves as a defense-in-depth check for a pair obtained from elsewhere.
func (s *SafePrime) Validate(rand io.Reader) error {
	check := New().MulInt64(s.q, 2)
	check.AddInt64(check, 1)
	if check.Cmp(s.p) != 0 {
		return newErr("mpi.SafePrime.Validate", ErrNotAcceptable)
	}
	if err := s.q.IsPrime(rand); err != nil {
		return wrapErr("mpi.SafePrime.Validate", err)
	}
	if err := s.p.IsPrime(rand); err != nil {
		return wrapErr("mpi.SafePrime.Validate", err)
	}
	return nil
}

// GenSafePrimeConcurrent searches for a bitLen-bit safe prime p = 2q+1
// (both p and q prime) using concurrency independent goroutines racing
// against each other, following the teacher's GetRandomSafePrimesConcurrent
// shape in common/safe_prime.go: each worker runs its own GenPrime search
// with dhFlag set (which already requires both x and (x-1)/2 prime), and
// the first result received is returned. GenPrime does not observe ctx,
// so the other workers are not interrupted: each finishes its search and
// then exits without delivering its result once ctx is done.
//
// If every worker fails before one succeeds, the errors are aggregated
// with a multierror.Error. If timeout elapses with no worker finishing
// either way, its context error is returned.
func GenSafePrimeConcurrent(bitLen, concurrency int, timeout time.Duration, rand io.Reader) (*SafePrime, error) {
	if bitLen < 6 {
		return nil, newErr("mpi.GenSafePrimeConcurrent", ErrBadInput)
	}
	if concurrency < 1 {
		concurrency = 1
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resultCh := make(chan *SafePrime, concurrency)
	errCh := make(chan error, concurrency)

	var wg sync.WaitGroup
	wg.Add(concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			defer wg.Done()
			p, err := GenPrime(bitLen, true, rand)
			if err != nil {
				select {
				case errCh <- err:
				case <-ctx.Done():
				}
				return
			}
			q := New().SubInt64(p, 1)
			q.ShiftRight(1)
			select {
			case resultCh <- &SafePrime{p: p, q: q}:
			case <-ctx.Done():
			}
		}()
	}
	go func() {
		wg.Wait()
		close(resultCh)
		close(errCh)
	}()

	var merr *multierror.Error
	for {
		select {
		case r, ok := <-resultCh:
			if ok {
				cancel()
				return r, nil
			}
			resultCh = nil
		case err, ok := <-errCh:
			if !ok {
				errCh = nil
				break
			}
			merr = multierror.Append(merr, err)
		case <-ctx.Done():
			if merr.ErrorOrNil() != nil {
				return nil, merr
			}
			return nil, wrapErr("mpi.GenSafePrimeConcurrent", ctx.Err())
		}
		if resultCh == nil && errCh == nil {
			if merr.ErrorOrNil() != nil {
				return nil, merr
			}
			return nil, newErr("mpi.GenSafePrimeConcurrent", ErrNotAcceptable)
		}
	}
}
