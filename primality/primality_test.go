package primality

import (
	"errors"
	"math/big"
	"testing"
	"testing/iotest"

	"github.com/SomgBird/MyRSA/limits"
	"github.com/SomgBird/MyRSA/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRounds = 20

func TestIsProbablePrimeKnownPrimes(t *testing.T) {
	for _, p := range []int64{2, 3, 5, 7, 11, 97, 101, 7919, 65537, 2147483647} {
		assert.True(t, IsProbablePrime(big.NewInt(p), testRounds, 32), "%d should be prime", p)
	}
}

func TestIsProbablePrimeKnownComposites(t *testing.T) {
	for _, c := range []int64{-7, 0, 1, 4, 9, 15, 561, 1105, 1729, 2047, 10201, 1373653, 2147483649} {
		assert.False(t, IsProbablePrime(big.NewInt(c), testRounds, 32), "%d should be composite", c)
	}
}

func TestIsProbablePrimeNil(t *testing.T) {
	assert.False(t, IsProbablePrime(nil, testRounds, 8))
}

// TestMillerRabinRejectsCarmichaelNumbers runs the witness loop directly so the
// small-prime filter cannot settle the answer first
func TestMillerRabinRejectsCarmichaelNumbers(t *testing.T) {
	tester := NewTester(random.NewSeededSource([]byte("carmichael")))

	for _, c := range []int64{561, 1105, 1729, 2465, 2821, 6601, 8911} {
		prime, err := tester.millerRabin(big.NewInt(c), testRounds, 16)
		require.NoError(t, err)
		assert.False(t, prime, "Carmichael number %d should be composite", c)
	}
}

// TestMillerRabinRejectsStrongPseudoprimes covers numbers that fool single
// fixed bases
func TestMillerRabinRejectsStrongPseudoprimes(t *testing.T) {
	tester := NewTester(random.NewSeededSource([]byte("pseudoprimes")))

	// 2047 fools base 2, 1373653 fools bases 2 and 3, 25326001 fools 2, 3 and 5
	for _, c := range []int64{2047, 1373653, 25326001, 3215031751} {
		prime, err := tester.millerRabin(big.NewInt(c), testRounds, 40)
		require.NoError(t, err)
		assert.False(t, prime, "strong pseudoprime %d should be composite", c)
	}
}

// bitsRecorder remembers the smallest bit length requested from it
type bitsRecorder struct {
	inner   random.Source
	minBits int
}

func (b *bitsRecorder) Int(bits int) (*big.Int, error) {
	if b.minBits == 0 || bits < b.minBits {
		b.minBits = bits
	}
	return b.inner.Int(bits)
}

func TestSmallBitSizeKeepsFullWitnessRange(t *testing.T) {
	// 3215031751 = 151 * 751 * 28351 is a strong pseudoprime to bases 2, 3, 5 and 7
	n := big.NewInt(3215031751)

	for _, bitSize := range []int{-1, 0, 1, 2, 3, 8} {
		tester := NewTester(random.NewCryptoSource())
		prime, err := tester.Test(n, testRounds, bitSize)
		require.NoError(t, err)
		assert.False(t, prime, "bitSize=%d", bitSize)
		assert.False(t, IsProbablePrime(n, testRounds, bitSize), "bitSize=%d", bitSize)
	}

	rec := &bitsRecorder{inner: random.NewSeededSource([]byte("witness-bits"))}
	_, err := NewTester(rec).Test(big.NewInt(7919), testRounds, 2)
	require.NoError(t, err)
	assert.Equal(t, big.NewInt(7919).BitLen()+1, rec.minBits)
}

func TestMillerRabinAcceptsPrimes(t *testing.T) {
	tester := NewTester(random.NewSeededSource([]byte("primes")))

	for _, p := range []int64{5, 7, 11, 97, 7919, 104729, 2147483647} {
		prime, err := tester.millerRabin(big.NewInt(p), testRounds, 32)
		require.NoError(t, err)
		assert.True(t, prime, "%d should be prime", p)
	}
}

func TestIsProbablePrimeLargeValues(t *testing.T) {
	// 2^127 - 1 is a Mersenne prime, 2^128 + 1 is composite
	mersenne := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 127), big.NewInt(1))
	fermat7 := new(big.Int).Add(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

	assert.True(t, IsProbablePrime(mersenne, testRounds, 127))
	assert.False(t, IsProbablePrime(fermat7, testRounds, 129))

	// product of two 64-bit primes
	p, _ := new(big.Int).SetString("18446744073709551557", 10)
	q, _ := new(big.Int).SetString("18446744073709551533", 10)
	assert.False(t, IsProbablePrime(new(big.Int).Mul(p, q), testRounds, 128))
}

// countingSource records how many witnesses were drawn
type countingSource struct {
	inner random.Source
	calls int
}

func (c *countingSource) Int(bits int) (*big.Int, error) {
	c.calls++
	return c.inner.Int(bits)
}

func TestRoundsNeverBelowMinimum(t *testing.T) {
	for _, requested := range []int{-1, 0, 1, 5} {
		source := &countingSource{inner: random.NewSeededSource([]byte("rounds"))}
		tester := NewTester(source)

		prime, err := tester.Test(big.NewInt(7919), requested, 16)
		require.NoError(t, err)
		assert.True(t, prime)
		assert.Equal(t, limits.MinRounds, source.calls, "requested %d rounds", requested)
	}

	source := &countingSource{inner: random.NewSeededSource([]byte("rounds"))}
	_, err := NewTester(source).Test(big.NewInt(7919), 40, 16)
	require.NoError(t, err)
	assert.Equal(t, 40, source.calls)
}

func TestEntropyFailureIsNotPrime(t *testing.T) {
	tester := NewTester(random.NewReaderSource(iotest.ErrReader(errors.New("no entropy"))))

	_, err := tester.Test(big.NewInt(7919), testRounds, 16)
	assert.True(t, errors.Is(err, limits.ErrEntropyUnavailable))
	assert.False(t, tester.IsProbablePrime(big.NewInt(7919), testRounds, 16))

	// decided without witnesses, so no entropy is needed
	prime, err := tester.Test(big.NewInt(97), testRounds, 16)
	require.NoError(t, err)
	assert.True(t, prime)
}

func TestIsPrimeTrialDivision(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{-3, false}, {0, false}, {1, false}, {2, true}, {3, true}, {4, false},
		{9, false}, {25, false}, {97, true}, {561, false}, {7919, true},
		{10201, false}, {65537, true}, {2147483647, true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsPrimeTrialDivision(big.NewInt(tt.n)), "n=%d", tt.n)
	}
	assert.False(t, IsPrimeTrialDivision(nil))
}

// TestMillerRabinAgreesWithTrialDivision sweeps every integer below 20000
func TestMillerRabinAgreesWithTrialDivision(t *testing.T) {
	tester := NewTester(random.NewSeededSource([]byte("sweep")))

	for i := int64(0); i < 20000; i++ {
		n := big.NewInt(i)
		got, err := tester.Test(n, testRounds, 16)
		require.NoError(t, err)
		if got != IsPrimeTrialDivision(n) {
			t.Fatalf("Miller-Rabin and trial division disagree on %d", i)
		}
	}
}

func BenchmarkIsProbablePrime1024(b *testing.B) {
	p := new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 1279), big.NewInt(1))
	tester := NewTester(random.NewCryptoSource())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tester.IsProbablePrime(p, testRounds, 1279)
	}
}
