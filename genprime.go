package mpi

import (
	stderrors "errors"
	"io"
)

// isComposite reports whether err is this package's ErrNotAcceptable
// (the candidate was proven composite), as opposed to a genuine failure
// such as an RNG read error that callers must propagate rather than
// treat as "try the next candidate".
func isComposite(err error) bool {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind == ErrNotAcceptable
	}
	return false
}

// setBit sets bit index i (0 = least significant) of the nbits-bit
// big-endian value held in buf.
func setBit(buf []byte, i int) {
	pos := len(buf) - 1 - i/8
	buf[pos] |= 1 << uint(i%8)
}

// GenPrime draws a random nbits-bit prime using rand, and returns it.
// It fails with ErrBadInput if nbits < 3, or propagates any RNG error.
//
// The candidate always has its top two bits and its low bit forced to
// 1 (top two so that products of two such primes never come up a bit
// short; low bit so it's odd). When dhFlag is set, bit 1 is also forced
// (steering candidates towards x = 3 mod 4) and the search additionally
// requires (x-1)/2 to be prime, stepping by 4 to preserve x's residues
// mod 4 and mod 2; otherwise the search steps by 2.
func GenPrime(nbits int, dhFlag bool, rand io.Reader) (*Int, error) {
	if nbits < 3 {
		return nil, newErr("mpi.GenPrime", ErrBadInput)
	}

	nbytes := (nbits + 7) / 8
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return nil, wrapErr("mpi.GenPrime", err)
	}
	excess := uint(nbytes*8 - nbits)
	buf[0] &= byte(0xFF >> excess)
	setBit(buf, nbits-1)
	setBit(buf, nbits-2)
	setBit(buf, 0)
	if dhFlag {
		setBit(buf, 1)
	}

	x := New()
	if _, err := x.SetBytes(buf); err != nil {
		return nil, wrapErr("mpi.GenPrime", err)
	}

	if !dhFlag {
		for tries := 1; ; tries++ {
			if err := checkSmallFactors(x); err == nil {
				if err := x.IsPrime(rand); err == nil {
					logger.Debugf("mpi.GenPrime: found %d-bit prime after %d candidates", nbits, tries)
					return x, nil
				} else if !isComposite(err) {
					return nil, wrapErr("mpi.GenPrime", err)
				}
			}
			x.AddInt64(x, 2)
		}
	}

	half := New()
	for tries := 1; ; tries++ {
		m3, err := ModWord(x, 3)
		if err != nil {
			return nil, wrapErr("mpi.GenPrime", err)
		}
		if m3 != 1 {
			if err := checkSmallFactors(x); err == nil {
				half.SubInt64(x, 1)
				half.ShiftRight(1)
				if err := checkSmallFactors(half); err == nil {
					if err := x.IsPrime(rand); err == nil {
						if err := half.IsPrime(rand); err == nil {
							logger.Debugf("mpi.GenPrime: found %d-bit dh_flag prime after %d candidates", nbits, tries)
							return x, nil
						} else if !isComposite(err) {
							return nil, wrapErr("mpi.GenPrime", err)
						}
					} else if !isComposite(err) {
						return nil, wrapErr("mpi.GenPrime", err)
					}
				}
			}
		}
		x.AddInt64(x, 4)
	}
}
