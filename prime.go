package mpi

import "io"

// millerRabinRounds returns the number of Miller-Rabin rounds to run.
// Each round's worst-case false-positive probability is at most 1/4
// regardless of the candidate's size, so a fixed 40 rounds gives an
// error bound of 4^-40 = 2^-80 for any bit length; this is the same
// figure spec'd out for the 512-bit case, just applied uniformly rather
// than tightened for larger inputs.
func millerRabinRounds(bits int) int {
	return 40
}

// IsPrime runs a Miller-Rabin primality test on x, drawing witnesses
// from rand, and returns nil if x is probably prime or ErrNotAcceptable
// if x is proven composite. x <= 1 or even (other than x == 2) is
// rejected as ErrNotAcceptable without consuming randomness.
func (x *Int) IsPrime(rand io.Reader) error {
	if x.CmpInt64(2) == 0 {
		return nil
	}
	if x.CmpInt64(2) < 0 || isEven(x) {
		return newErr("mpi.IsPrime", ErrNotAcceptable)
	}
	if err := checkSmallFactors(x); err != nil {
		return err
	}

	xm1 := New().SubInt64(x, 1)
	s := xm1.TrailingZeroBits()
	d := xm1.Clone()
	d.ShiftRight(s)

	xm2 := New().SubInt64(x, 2)
	rounds := millerRabinRounds(x.BitLen())

	y := New()
	for i := 0; i < rounds; i++ {
		a, err := randomInRange(rand, 2, xm2)
		if err != nil {
			return wrapErr("mpi.IsPrime", err)
		}
		if err := y.ExpMod(a, d, x, nil); err != nil {
			return wrapErr("mpi.IsPrime", err)
		}
		if y.CmpInt64(1) == 0 || y.Cmp(xm1) == 0 {
			continue
		}

		witnessesComposite := true
		for j := 0; j < s-1; j++ {
			y.Mul(y, y)
			if err := y.Mod(y, x); err != nil {
				return wrapErr("mpi.IsPrime", err)
			}
			if y.Cmp(xm1) == 0 {
				witnessesComposite = false
				break
			}
		}
		if witnessesComposite {
			logger.Debugf("mpi.IsPrime: witness rejected candidate after %d rounds", i+1)
			return newErr("mpi.IsPrime", ErrNotAcceptable)
		}
	}
	return nil
}
