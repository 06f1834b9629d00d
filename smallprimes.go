package mpi

// smallPrimeLimit bounds the sieve used to build smallPrimes; 7919 is
// exactly the 1000th prime, giving the table the ~1000-entry size this
// package's trial-division filter is specified against.
const smallPrimeLimit = 7919

// smallPrimes holds the first 1000 primes (2 through 7919), computed
// once at package init via a sieve of Eratosthenes rather than
// hand-transcribed, following the teacher's GetPrimesUpTo shape in
// common/primes.go generalized from uint to this package's Word.
var smallPrimes = sievePrimesUpTo(smallPrimeLimit)

func sievePrimesUpTo(limit int) []Word {
	composite := make([]bool, limit+1)
	composite[0], composite[1] = true, true
	for p := 2; p*p <= limit; p++ {
		if composite[p] {
			continue
		}
		for i := p * p; i <= limit; i += p {
			composite[i] = true
		}
	}
	var primes []Word
	for i := 2; i <= limit; i++ {
		if !composite[i] {
			primes = append(primes, Word(i))
		}
	}
	return primes
}

// checkSmallFactors trial-divides x against the compiled-in small-prime
// table and returns ErrNotAcceptable at the first exact divisor found,
// unless x is that prime itself (2 is special-cased the same way: an x
// equal to 2 always passes). It returns nil when x has no small factor,
// which does not by itself prove x prime.
func checkSmallFactors(x *Int) error {
	if x.CmpInt64(2) == 0 {
		return nil
	}
	for _, p := range smallPrimes {
		if x.CmpInt64(int64(p)) == 0 {
			return nil
		}
		r, err := ModWord(x, p)
		if err != nil {
			return wrapErr("mpi.checkSmallFactors", err)
		}
		if r == 0 {
			return newErr("mpi.checkSmallFactors", ErrNotAcceptable)
		}
	}
	return nil
}
