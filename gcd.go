package mpi

// GCD sets g to the greatest common divisor of a and b (both treated as
// magnitudes) and returns g. GCD(a, 0) = |a|. The classic binary GCD
// algorithm: factor out the common power of two, then repeatedly
// subtract the smaller magnitude from the larger, stripping any
// resulting powers of two, until one side reaches zero.
func (g *Int) GCD(a, b *Int) *Int {
	if a.IsZero() {
		g.Copy(b)
		g.neg = false
		return g
	}
	if b.IsZero() {
		g.Copy(a)
		g.neg = false
		return g
	}

	u, v := a.Clone(), b.Clone()
	u.neg, v.neg = false, false

	ka, kb := u.TrailingZeroBits(), v.TrailingZeroBits()
	k := ka
	if kb < k {
		k = kb
	}
	u.ShiftRight(k)
	v.ShiftRight(k)
	u.ShiftRight(u.TrailingZeroBits())
	v.ShiftRight(v.TrailingZeroBits())

	for !u.IsZero() {
		if u.CmpAbs(v) < 0 {
			u, v = v, u
		}
		u.Sub(u, v)
		u.ShiftRight(u.TrailingZeroBits())
	}

	g.Copy(v)
	if err := g.ShiftLeft(k); err != nil {
		// k is bounded by BitLen of the inputs, so this only fails if the
		// caller has already grown a or b implausibly close to MaxLimbs.
		panic(err)
	}
	return g
}
