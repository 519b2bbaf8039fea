package bigmath

import "math/big"

var one = big.NewInt(1)

// ModPow computes base^exponent mod modulus by binary exponentiation, scanning
// the exponent's bits from least to most significant. An exponent of zero
// yields 1 mod modulus. A negative base is first reduced into [0, modulus).
//
// ModPow panics if modulus <= 0 or exponent < 0.
func ModPow(base, exponent, modulus *big.Int) *big.Int {
	checkModulus("ModPow", modulus)
	if exponent.Sign() < 0 {
		panic("bigmath: ModPow with negative exponent")
	}

	result := new(big.Int).Mod(one, modulus)
	b := new(big.Int).Mod(base, modulus)

	for i := 0; i < exponent.BitLen(); i++ {
		if exponent.Bit(i) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
	}

	return result
}

func checkModulus(op string, modulus *big.Int) {
	if modulus.Sign() <= 0 {
		panic("bigmath: " + op + " with non-positive modulus")
	}
}
