package mpi

func isEven(x *Int) bool {
	return x.sigLen() == 0 || x.limbs[0]&1 == 0
}

// InvMod sets z to the modular inverse of a mod n and returns an error.
// It fails with ErrBadInput if n <= 1, and ErrNotAcceptable if
// gcd(a, n) != 1 (a has no inverse mod n).
//
// This implements the binary extended GCD (HAC Algorithm 14.61): factor
// out the common power of two shared by x = a mod n and y = n, then
// maintain coefficient pairs (A, B) and (C, D) with
// A*x + B*y = u and C*x + D*y = v
// while repeatedly halving whichever of u, v is even (adjusting its
// coefficients to stay integral) and subtracting the smaller from the
// larger, until u reaches zero; C is then the inverse, reduced into
// [0, n).
func (z *Int) InvMod(a, n *Int) error {
	if n.CmpInt64(1) <= 0 {
		return newErr("mpi.InvMod", ErrBadInput)
	}

	x := New()
	if err := x.Mod(a, n); err != nil {
		return wrapErr("mpi.InvMod", err)
	}
	defer x.Zeroize()
	if x.IsZero() {
		return newErr("mpi.InvMod", ErrNotAcceptable)
	}
	y := n.Clone()
	defer y.Zeroize()

	g := NewInt64(1)
	defer g.Zeroize()
	for isEven(x) && isEven(y) {
		x.ShiftRight(1)
		y.ShiftRight(1)
		if err := g.ShiftLeft(1); err != nil {
			return wrapErr("mpi.InvMod", err)
		}
	}

	u, v := x.Clone(), y.Clone()
	A, B := NewInt64(1), NewInt64(0)
	C, D := NewInt64(0), NewInt64(1)
	defer func() {
		u.Zeroize()
		v.Zeroize()
		A.Zeroize()
		B.Zeroize()
		C.Zeroize()
		D.Zeroize()
	}()

	for {
		for isEven(u) {
			u.ShiftRight(1)
			if isEven(A) && isEven(B) {
				A.ShiftRight(1)
				B.ShiftRight(1)
			} else {
				A.Add(A, y)
				A.ShiftRight(1)
				B.Sub(B, x)
				B.ShiftRight(1)
			}
		}
		for isEven(v) {
			v.ShiftRight(1)
			if isEven(C) && isEven(D) {
				C.ShiftRight(1)
				D.ShiftRight(1)
			} else {
				C.Add(C, y)
				C.ShiftRight(1)
				D.Sub(D, x)
				D.ShiftRight(1)
			}
		}
		if u.CmpAbs(v) >= 0 {
			u.Sub(u, v)
			A.Sub(A, C)
			B.Sub(B, D)
		} else {
			v.Sub(v, u)
			C.Sub(C, A)
			D.Sub(D, B)
		}
		if u.IsZero() {
			break
		}
	}

	gv := New().Mul(g, v)
	defer gv.Zeroize()
	if gv.CmpInt64(1) != 0 {
		return newErr("mpi.InvMod", ErrNotAcceptable)
	}

	z.Copy(C)
	for z.neg {
		z.Add(z, n)
	}
	for z.CmpAbs(n) >= 0 {
		z.Sub(z, n)
	}
	return nil
}
