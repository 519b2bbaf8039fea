package bigmath

import "math/big"

// ModMul computes (a * b) mod modulus by binary double-and-add: the partial
// sum and the running multiple of a are both kept below modulus, so no
// intermediate value ever exceeds twice the modulus. Negative operands are
// reduced into [0, modulus) first.
//
// ModMul panics if modulus <= 0.
func ModMul(a, b, modulus *big.Int) *big.Int {
	checkModulus("ModMul", modulus)

	result := new(big.Int)
	addend := new(big.Int).Mod(a, modulus)
	multiplier := new(big.Int).Mod(b, modulus)

	for i := 0; i < multiplier.BitLen(); i++ {
		if multiplier.Bit(i) == 1 {
			result.Add(result, addend)
			if result.Cmp(modulus) >= 0 {
				result.Sub(result, modulus)
			}
		}
		addend.Lsh(addend, 1)
		if addend.Cmp(modulus) >= 0 {
			addend.Sub(addend, modulus)
		}
	}

	return result
}
