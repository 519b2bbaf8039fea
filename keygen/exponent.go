package keygen

import (
	"errors"
	"math/big"

	"github.com/SomgBird/MyRSA/bigmath"
)

// fermatPrimes are the prime Fermat numbers F4..F0, largest first.
var fermatPrimes = []int64{65537, 257, 17, 5, 3}

var errNoCoprimeExponent = errors.New("no Fermat prime is coprime with the totient")

// chooseExponent picks the largest Fermat prime e with 1 < e < phi and
// gcd(e, phi) = 1, and returns it with d = e^-1 mod phi normalized into
// [0, phi). Coprimality is checked through the Bezout identity rather than
// assumed, since a Fermat number can divide the totient.
func chooseExponent(phi *big.Int) (e, d *big.Int, err error) {
	for _, f := range fermatPrimes {
		candidate := big.NewInt(f)
		if candidate.Cmp(phi) >= 0 {
			continue
		}

		gcd, x, _ := bigmath.ExtendedGCD(candidate, phi)
		if gcd.Cmp(one) != 0 {
			continue
		}

		return candidate, bigmath.Normalize(x, phi), nil
	}

	return nil, nil, errNoCoprimeExponent
}
