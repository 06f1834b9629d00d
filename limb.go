package mpi

import "math/bits"

// Word is a single limb of an Int's magnitude. It is the platform's native
// machine word; math/bits gives us double-width multiply/add primitives
// regardless of whether that word is 32 or 64 bits, which resolves the
// "what limb width" open question from the original design without a
// hand-rolled 8/16/32/64-bit selection: math/bits.Mul and math/bits.Add
// are intrinsified per architecture by the compiler, exactly like
// arith.go's mulWW_g/addVV_g in the standard library's math/big.
type Word = uint

const (
	wordBits = bits.UintSize
	wordMask = ^Word(0)
)

// muladdc computes s + a*b + c as a double-width product, returning the
// low word and the carry/high word. Every schoolbook multiply, Montgomery
// reduction step, and division correction in this package reduces to this
// primitive.
func muladdc(s, a, b, c Word) (lo, hi Word) {
	hi, lo = bits.Mul(a, b)
	var carry uint
	lo, carry = bits.Add(lo, s, 0)
	hi, _ = bits.Add(hi, 0, carry)
	lo, carry = bits.Add(lo, c, 0)
	hi, _ = bits.Add(hi, 0, carry)
	return lo, hi
}
