package mpi

import "math/bits"

// CmpAbs compares the magnitudes of x and y, returning -1, 0, or +1 as
// |x| is less than, equal to, or greater than |y|. Trailing (insignificant)
// limbs are ignored; ties are broken from the most significant limb down.
func (x *Int) CmpAbs(y *Int) int {
	nx, ny := x.sigLen(), y.sigLen()
	if nx != ny {
		if nx < ny {
			return -1
		}
		return 1
	}
	for i := nx - 1; i >= 0; i-- {
		if x.limbs[i] != y.limbs[i] {
			if x.limbs[i] < y.limbs[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Cmp compares x and y as signed values, returning -1, 0, or +1. Zero
// compares equal regardless of its sign field.
func (x *Int) Cmp(y *Int) int {
	xZero, yZero := x.IsZero(), y.IsZero()
	switch {
	case xZero && yZero:
		return 0
	case x.neg && !y.neg:
		return -1
	case !x.neg && y.neg:
		return 1
	case !x.neg:
		return x.CmpAbs(y)
	default: // both negative
		return -x.CmpAbs(y)
	}
}

// CmpInt64 compares x against the single-limb signed value z.
func (x *Int) CmpInt64(z int64) int {
	return x.Cmp(NewInt64(z))
}

// addMag returns a newly allocated limb slice holding a + b, where a and b
// are already-trimmed magnitudes. The standard ripple-carry schoolbook
// algorithm, generalized from arith.go's fixed-width addVV_g in the
// standard library's math/big to the variable-length case this package
// needs.
func addMag(a, b []Word) []Word {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make([]Word, len(a)+1)
	var c uint
	for i := 0; i < len(b); i++ {
		zi, cc := bits.Add(a[i], b[i], c)
		z[i] = zi
		c = cc
	}
	for i := len(b); i < len(a); i++ {
		zi, cc := bits.Add(a[i], 0, c)
		z[i] = zi
		c = cc
	}
	z[len(a)] = Word(c)
	return z[:sigLenOf(z)]
}

// subMag returns a newly allocated limb slice holding a - b, assuming
// a >= b in magnitude (both already trimmed). Behavior is undefined if
// that precondition doesn't hold; callers must check CmpAbs first.
func subMag(a, b []Word) []Word {
	z := make([]Word, len(a))
	var c uint
	for i := 0; i < len(b); i++ {
		zi, cc := bits.Sub(a[i], b[i], c)
		z[i] = zi
		c = cc
	}
	for i := len(b); i < len(a); i++ {
		zi, cc := bits.Sub(a[i], 0, c)
		z[i] = zi
		c = cc
	}
	return z[:sigLenOf(z)]
}

func sigLenOf(z []Word) int {
	n := len(z)
	for n > 0 && z[n-1] == 0 {
		n--
	}
	return n
}

// AddAbs sets x = |a| + |b| and returns x. The result's sign is always
// positive, per spec: callers needing a signed add use Add.
func (x *Int) AddAbs(a, b *Int) *Int {
	z := addMag(a.limbs[:a.sigLen()], b.limbs[:b.sigLen()])
	x.limbs = z
	x.neg = false
	return x
}

// SubAbs sets x = |a| - |b| and returns x, failing with ErrNegative if
// |a| < |b|. The result's sign is always positive.
func (x *Int) SubAbs(a, b *Int) (*Int, error) {
	if a.CmpAbs(b) < 0 {
		return x, newErr("mpi.SubAbs", ErrNegative)
	}
	z := subMag(a.limbs[:a.sigLen()], b.limbs[:b.sigLen()])
	x.limbs = z
	x.neg = false
	return x, nil
}

// Add sets x = a + b (signed) and returns x. x may alias a or b.
func (x *Int) Add(a, b *Int) *Int {
	// Read the signs first: AddAbs/SubAbs clear x.neg, which is a.neg or
	// b.neg when x aliases an operand.
	aNeg, bNeg := a.neg, b.neg
	if aNeg == bNeg {
		x.AddAbs(a, b)
		x.neg = aNeg
	} else if a.CmpAbs(b) >= 0 {
		x.SubAbs(a, b) // nolint:errcheck -- CmpAbs already guarantees |a|>=|b|
		x.neg = aNeg
	} else {
		x.SubAbs(b, a) // nolint:errcheck -- |b|>|a| here
		x.neg = bNeg
	}
	x.normalizeSign()
	return x
}

// Sub sets x = a - b (signed) and returns x.
func (x *Int) Sub(a, b *Int) *Int {
	negB := &Int{neg: !b.neg, limbs: b.limbs}
	return x.Add(a, negB)
}

// AddInt64 sets x = a + c (signed) and returns x.
func (x *Int) AddInt64(a *Int, c int64) *Int {
	return x.Add(a, NewInt64(c))
}

// SubInt64 sets x = a - c (signed) and returns x.
func (x *Int) SubInt64(a *Int, c int64) *Int {
	return x.Sub(a, NewInt64(c))
}
