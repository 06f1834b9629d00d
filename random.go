package mpi

import "io"

// FillRandom sets x to a non-negative integer read from nbytes bytes of
// rand, interpreted big-endian (the top byte is unmasked, so the result
// can have up to nbytes*8 significant bits). It fails with ErrBadInput
// if nbytes <= 0, or propagates any error rand returns.
func FillRandom(x *Int, nbytes int, rand io.Reader) error {
	if nbytes <= 0 {
		return newErr("mpi.FillRandom", ErrBadInput)
	}
	buf := make([]byte, nbytes)
	if _, err := io.ReadFull(rand, buf); err != nil {
		return wrapErr("mpi.FillRandom", err)
	}
	if _, err := x.SetBytes(buf); err != nil {
		return wrapErr("mpi.FillRandom", err)
	}
	return nil
}

// randomBelow draws a uniform random value in [0, n) from rand, by
// filling n.ByteLen() bytes, masking the top byte down to n.BitLen()
// bits, and retrying on the rare draw that still lands >= n. Following
// the teacher's "generate, then retry on miss" shape (common/random.go's
// MustGetRandomInt / GetRandomPositiveInt loop), generalized to carry
// rand's errors instead of panicking.
func randomBelow(rand io.Reader, n *Int) (*Int, error) {
	nbits := n.BitLen()
	if nbits == 0 {
		return New(), nil
	}
	nbytes := (nbits + 7) / 8
	excess := uint(nbytes*8 - nbits)
	buf := make([]byte, nbytes)
	r := New()
	for {
		if _, err := io.ReadFull(rand, buf); err != nil {
			return nil, wrapErr("mpi.randomBelow", err)
		}
		buf[0] &= byte(0xFF >> excess)
		if _, err := r.SetBytes(buf); err != nil {
			return nil, wrapErr("mpi.randomBelow", err)
		}
		if r.CmpAbs(n) < 0 {
			return r, nil
		}
	}
}

// randomInRange draws a uniform random value in [lo, hi] (hi inclusive)
// from rand, via rejection sampling against [0, hi-lo+1) shifted by lo.
func randomInRange(rand io.Reader, lo int64, hi *Int) (*Int, error) {
	span := New().SubInt64(hi, lo-1) // hi - lo + 1
	r, err := randomBelow(rand, span)
	if err != nil {
		return nil, err
	}
	return r.AddInt64(r, lo), nil
}
