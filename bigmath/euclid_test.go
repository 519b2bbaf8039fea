package bigmath

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExtendedGCDTextbookExample uses the classic e=17, phi=3120 key
func TestExtendedGCDTextbookExample(t *testing.T) {
	a, b := big.NewInt(17), big.NewInt(3120)

	gcd, x, y := ExtendedGCD(a, b)

	assert.Equal(t, int64(1), gcd.Int64())
	assert.Equal(t, int64(2753), Normalize(x, b).Int64())

	check := new(big.Int).Mul(a, x)
	check.Mod(check, b)
	assert.Equal(t, int64(1), check.Int64())

	assertBezout(t, a, b, gcd, x, y)
}

func TestExtendedGCDCases(t *testing.T) {
	tests := []struct {
		name    string
		a, b    int64
		wantGCD int64
	}{
		{"base case b zero", 42, 0, 42},
		{"a zero", 0, 9, 9},
		{"both zero", 0, 0, 0},
		{"coprime", 65537, 3120, 1},
		{"common factor", 240, 46, 2},
		{"a divides b", 6, 36, 6},
		{"equal", 17, 17, 17},
		{"consecutive fibonacci", 832040, 514229, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := big.NewInt(tt.a), big.NewInt(tt.b)
			gcd, x, y := ExtendedGCD(a, b)

			assert.Equal(t, tt.wantGCD, gcd.Int64())
			assertBezout(t, a, b, gcd, x, y)
		})
	}
}

func TestExtendedGCDBaseCaseCoefficients(t *testing.T) {
	gcd, x, y := ExtendedGCD(big.NewInt(42), big.NewInt(0))

	assert.Equal(t, int64(42), gcd.Int64())
	assert.Equal(t, int64(1), x.Int64())
	assert.Equal(t, int64(0), y.Int64())
}

func TestExtendedGCDDoesNotModifyArguments(t *testing.T) {
	a, b := big.NewInt(240), big.NewInt(46)
	ExtendedGCD(a, b)

	assert.Equal(t, int64(240), a.Int64())
	assert.Equal(t, int64(46), b.Int64())
}

func TestExtendedGCDPanicsOnNegativeInput(t *testing.T) {
	assert.Panics(t, func() { ExtendedGCD(big.NewInt(-1), big.NewInt(5)) })
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(big.NewInt(17), big.NewInt(3120))
	require.NoError(t, err)
	assert.Equal(t, int64(2753), inv.Int64())

	inv, err = ModInverse(big.NewInt(3), big.NewInt(7))
	require.NoError(t, err)
	assert.Equal(t, int64(5), inv.Int64())

	_, err = ModInverse(big.NewInt(6), big.NewInt(9))
	assert.True(t, errors.Is(err, ErrNotInvertible))

	_, err = ModInverse(big.NewInt(65537), big.NewInt(65537*4))
	assert.True(t, errors.Is(err, ErrNotInvertible))
}

func TestNormalize(t *testing.T) {
	m := big.NewInt(3120)
	tests := []struct {
		x, want int64
	}{
		{-367, 2753},
		{2753, 2753},
		{3120, 0},
		{-3120, 0},
		{-1, 3119},
		{6241, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Normalize(big.NewInt(tt.x), m).Int64(), "x=%d", tt.x)
	}
}

func assertBezout(t *testing.T, a, b, gcd, x, y *big.Int) {
	t.Helper()
	lhs := new(big.Int).Mul(a, x)
	lhs.Add(lhs, new(big.Int).Mul(b, y))
	assert.Equal(t, 0, lhs.Cmp(gcd), "a*x + b*y = %s, want %s", lhs, gcd)
}
