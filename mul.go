package mpi

// mulMag returns a freshly allocated limb slice holding the product of
// two magnitudes, via schoolbook multiplication built on muladdc — the
// textbook algorithm this package's L0 primitive exists to serve.
func mulMag(a, b []Word) []Word {
	if len(a) == 0 || len(b) == 0 {
		return nil
	}
	z := make([]Word, len(a)+len(b))
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		var carry Word
		for j, bj := range b {
			lo, hi := muladdc(z[i+j], ai, bj, carry)
			z[i+j] = lo
			carry = hi
		}
		z[i+len(b)] += carry
	}
	return z[:sigLenOf(z)]
}

// Mul sets x = a * b and returns x. The sign is the product of a and b's
// signs; a zero result always carries a positive sign.
func (x *Int) Mul(a, b *Int) *Int {
	z := mulMag(a.limbs[:a.sigLen()], b.limbs[:b.sigLen()])
	x.limbs = z
	x.neg = a.neg != b.neg
	x.normalizeSign()
	return x
}

// MulInt64 sets x = a * c (signed) and returns x.
func (x *Int) MulInt64(a *Int, c int64) *Int {
	return x.Mul(a, NewInt64(c))
}
