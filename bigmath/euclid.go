package bigmath

import (
	"errors"
	"fmt"
	"math/big"
)

// ErrNotInvertible indicates that an integer shares a factor with the modulus.
var ErrNotInvertible = errors.New("not invertible")

// ExtendedGCD returns gcd(a, b) together with Bezout coefficients x and y such
// that gcd = a*x + b*y. When b is zero the result is (a, 1, 0). Both inputs
// must be non-negative. The loop runs O(log(min(a, b))) times.
func ExtendedGCD(a, b *big.Int) (gcd, x, y *big.Int) {
	if a.Sign() < 0 || b.Sign() < 0 {
		panic("bigmath: ExtendedGCD with negative input")
	}

	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	q := new(big.Int)
	tmp := new(big.Int)
	for r.Sign() != 0 {
		q.Quo(oldR, r)

		// (oldR, r) = (r, oldR - q*r), likewise for s and t.
		tmp.Mul(q, r)
		oldR, r = r, oldR.Sub(oldR, tmp)
		tmp.Mul(q, s)
		oldS, s = s, oldS.Sub(oldS, tmp)
		tmp.Mul(q, t)
		oldT, t = t, oldT.Sub(oldT, tmp)
	}

	return oldR, oldS, oldT
}

// ModInverse returns the inverse of a modulo m, normalized into [0, m).
// It returns ErrNotInvertible when gcd(a, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	checkModulus("ModInverse", m)

	reduced := new(big.Int).Mod(a, m)
	gcd, x, _ := ExtendedGCD(reduced, m)
	if gcd.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: operand shares a factor with the modulus", ErrNotInvertible)
	}

	return Normalize(x, m), nil
}

// Normalize maps any integer into [0, m) as ((x mod m) + m) mod m.
func Normalize(x, m *big.Int) *big.Int {
	checkModulus("Normalize", m)

	r := new(big.Int).Rem(x, m)
	r.Add(r, m)
	return r.Rem(r, m)
}
