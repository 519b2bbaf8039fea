package primality

import "math/big"

// IsPrimeTrialDivision reports whether n is prime by dividing it by every odd
// candidate up to its square root. The answer is exact but the cost grows with
// sqrt(n), so it is only practical for values of a few dozen bits.
func IsPrimeTrialDivision(n *big.Int) bool {
	if n == nil || n.Cmp(two) < 0 {
		return false
	}
	if n.Cmp(two) == 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	d := big.NewInt(3)
	sq := new(big.Int)
	rem := new(big.Int)
	for {
		if sq.Mul(d, d).Cmp(n) > 0 {
			return true
		}
		if rem.Rem(n, d).Sign() == 0 {
			return false
		}
		d.Add(d, two)
	}
}
