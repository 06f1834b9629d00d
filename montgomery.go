package mpi

// wordInverseMod2k returns the inverse of odd n0 modulo 2^wordBits, via
// Newton-Raphson iteration: x is correct to 3 bits initially (every odd
// n0 satisfies n0*n0 = 1 mod 8), and each update x *= 2 - n0*x doubles
// the number of correct bits, so five iterations comfortably cover a
// 64-bit word.
func wordInverseMod2k(n0 Word) Word {
	x := n0
	for i := 0; i < 5; i++ {
		x = x * (2 - n0*x)
	}
	return x
}

func windowSize(ebits int) int {
	switch {
	case ebits <= 17:
		return 1
	case ebits <= 49:
		return 2
	case ebits <= 115:
		return 3
	case ebits <= 275:
		return 4
	case ebits <= 670:
		return 5
	default:
		return 6
	}
}

func lowLimb(t *Int) Word {
	if t.sigLen() == 0 {
		return 0
	}
	return t.limbs[0]
}

// wordInt returns a freshly allocated Int holding the unsigned value of
// w. SetInt64 can't be used here since w may not fit in an int64.
func wordInt(w Word) *Int {
	z := New()
	if w == 0 {
		return z
	}
	z.limbs = []Word{w}
	return z
}

func (x *Int) bitAt(i int) bool {
	limbIdx := i / wordBits
	if limbIdx < 0 || limbIdx >= len(x.limbs) {
		return false
	}
	return (x.limbs[limbIdx]>>uint(i%wordBits))&1 != 0
}

// montMulInto sets z = u*v*R^-1 mod n, where R = 2^(s*wordBits), via the
// word-at-a-time Montgomery reduction: compute t = u*v, then for each of
// the modulus's s limbs choose m so that adding m*n clears t's current
// low limb, and shift that zero limb off. The loop invariant keeps t an
// exact multiple of the shrinking power of two it divides by, so the
// shift never discards a remainder.
func montMulInto(z, u, v, n *Int, nInv Word, s int) {
	t := New().Mul(u, v)
	for k := 0; k < s; k++ {
		m := (Word(0) - lowLimb(t)) * nInv
		t.Add(t, New().Mul(n, wordInt(m)))
		t.ShiftRight(wordBits)
	}
	if t.CmpAbs(n) >= 0 {
		t.Sub(t, n)
	}
	z.Copy(t)
}

// ExpMod sets x = a^e mod n and returns an error. n must be positive and
// odd. It fails with ErrBadInput if n is even or non-positive, or if e
// is negative.
//
// rr is an optional cache for R^2 mod n (R = 2^(s*wordBits), s the
// modulus's limb count): pass a zero Int to have it filled in for reuse
// across repeated ExpMod calls against the same modulus, pass an
// already-filled one to skip recomputing it, or nil to always recompute.
//
// Internally this converts a into Montgomery form, builds a table of its
// odd powers up to a window size chosen from e's bit length, and scans e
// from its most significant bit, squaring the accumulator once per bit
// and multiplying in a table entry once per window, before converting
// the result back out of Montgomery form.
func (x *Int) ExpMod(a, e, n, rr *Int) error {
	if n.Sign() <= 0 || isEven(n) {
		return newErr("mpi.ExpMod", ErrBadInput)
	}
	if e.Sign() < 0 {
		return newErr("mpi.ExpMod", ErrBadInput)
	}

	s := n.sigLen()
	nInv := wordInverseMod2k(n.limbs[0])

	var r2 *Int
	if rr != nil && !rr.IsZero() {
		r2 = rr
	} else {
		r2 = New().SetInt64(1)
		if err := r2.ShiftLeft(2 * s * wordBits); err != nil {
			return wrapErr("mpi.ExpMod", err)
		}
		if err := r2.Mod(r2, n); err != nil {
			return wrapErr("mpi.ExpMod", err)
		}
		if rr != nil {
			rr.Copy(r2)
		}
	}
	defer func() {
		if rr == nil {
			r2.Zeroize()
		}
	}()

	abase := a
	if a.neg || a.CmpAbs(n) >= 0 {
		reduced := New()
		if err := reduced.Mod(a, n); err != nil {
			return wrapErr("mpi.ExpMod", err)
		}
		abase = reduced
	}

	montMul := func(z, u, v *Int) {
		montMulInto(z, u, v, n, nInv, s)
	}

	wsize := windowSize(e.BitLen())
	logger.Debugf("mpi.ExpMod: exponent %d bits, window size %d", e.BitLen(), wsize)
	tableSize := 1 << uint(wsize-1)
	w := make([]*Int, tableSize)
	w[0] = New()
	montMul(w[0], abase, r2)

	if tableSize > 1 {
		sq := New()
		montMul(sq, w[0], w[0])
		for i := 1; i < tableSize; i++ {
			w[i] = New()
			montMul(w[i], w[i-1], sq)
		}
		sq.Zeroize()
	}

	xm := New()
	montMul(xm, NewInt64(1), r2)

	for i := e.BitLen() - 1; i >= 0; {
		if !e.bitAt(i) {
			montMul(xm, xm, xm)
			i--
			continue
		}
		j := i - wsize + 1
		if j < 0 {
			j = 0
		}
		for !e.bitAt(j) {
			j++
		}
		for k := 0; k < i-j+1; k++ {
			montMul(xm, xm, xm)
		}
		val := 0
		for k := i; k >= j; k-- {
			val <<= 1
			if e.bitAt(k) {
				val |= 1
			}
		}
		montMul(xm, xm, w[(val-1)/2])
		i = j - 1
	}

	result := New()
	montMul(result, xm, NewInt64(1))
	x.Copy(result)

	xm.Zeroize()
	result.Zeroize()
	for _, wi := range w {
		wi.Zeroize()
	}
	return nil
}
