package primality

import (
	"math/big"

	"github.com/SomgBird/MyRSA/bigmath"
	"github.com/SomgBird/MyRSA/limits"
	"github.com/SomgBird/MyRSA/logging"
	"github.com/SomgBird/MyRSA/random"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// smallPrimes are used to reject most composites before any exponentiation.
var smallPrimes = []int64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67, 71, 73, 79, 83, 89, 97}

// Tester runs Miller-Rabin with witnesses drawn from a random source.
// A Tester holds no mutable state of its own and is safe for concurrent use
// when its source is.
type Tester struct {
	source random.Source
}

// NewTester creates a Tester drawing witnesses from source.
func NewTester(source random.Source) *Tester {
	return &Tester{source: source}
}

var defaultTester = NewTester(random.NewCryptoSource())

// IsProbablePrime reports whether n is probably prime using witnesses from
// the operating system CSPRNG.
func IsProbablePrime(n *big.Int, rounds, bitSize int) bool {
	return defaultTester.IsProbablePrime(n, rounds, bitSize)
}

// IsProbablePrime reports whether n is probably prime. A failure of the
// random source is logged and reported as false: an unproven candidate is
// never accepted.
func (t *Tester) IsProbablePrime(n *big.Int, rounds, bitSize int) bool {
	prime, err := t.Test(n, rounds, bitSize)
	if err != nil {
		logging.NewLogger("primality", "IsProbablePrime").
			WithError(err, "entropy_error", "witness_sampling").
			Warn("Primality test aborted, treating candidate as composite")
		return false
	}
	return prime
}

// Test reports whether n is probably prime, performing at least
// limits.MinRounds Miller-Rabin rounds. Witnesses are sampled with
// max(bitSize, n.BitLen()+1) bits and reduced into [2, n-2], so a small
// bitSize never narrows the witness space. The only error is a failure of
// the random source.
func (t *Tester) Test(n *big.Int, rounds, bitSize int) (bool, error) {
	if n == nil || n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	if decided, prime := smallPrimeFilter(n); decided {
		return prime, nil
	}

	return t.millerRabin(n, limits.EffectiveRounds(rounds), bitSize)
}

// smallPrimeFilter settles n when it is a small prime or has a small factor.
func smallPrimeFilter(n *big.Int) (decided, prime bool) {
	rem := new(big.Int)
	p := new(big.Int)
	for _, sp := range smallPrimes {
		p.SetInt64(sp)
		if n.Cmp(p) == 0 {
			return true, true
		}
		if rem.Rem(n, p).Sign() == 0 {
			return true, false
		}
	}
	return false, false
}

// millerRabin assumes n is odd and at least 5.
func (t *Tester) millerRabin(n *big.Int, rounds, bitSize int) (bool, error) {
	// Int(bits) stays below 2^(bits-1), so bits must exceed n.BitLen() for
	// the reduction mod n-3 to reach every witness.
	bitSize = max(bitSize, n.BitLen()+1)

	nMinus1 := new(big.Int).Sub(n, one)

	// n - 1 = 2^r * s with s odd
	r := 0
	for nMinus1.Bit(r) == 0 {
		r++
	}
	s := new(big.Int).Rsh(nMinus1, uint(r))

	span := new(big.Int).Sub(n, three)

	for i := 0; i < rounds; i++ {
		a, err := t.source.Int(bitSize)
		if err != nil {
			return false, err
		}
		a.Mod(a, span)
		a.Add(a, two)

		x := bigmath.ModPow(a, s, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		witnessed := true
		for j := 1; j < r; j++ {
			x = bigmath.ModMul(x, x, n)
			if x.Cmp(nMinus1) == 0 {
				witnessed = false
				break
			}
			if x.Cmp(one) == 0 {
				break
			}
		}
		if witnessed {
			return false, nil
		}
	}

	return true, nil
}
