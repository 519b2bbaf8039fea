// Package limits provides centralized parameter bounds for MyRSA.
// This ensures consistent validation across the key generator, the primality
// tester and the signature engine.
package limits

import (
	"errors"
	"fmt"
)

const (
	// MinKeyBits is the smallest accepted bit length for each of p and q.
	MinKeyBits = 8

	// MaxKeyBits is the largest accepted bit length for each of p and q.
	MaxKeyBits = 8192

	// MinRounds is the minimum number of Miller-Rabin rounds ever performed.
	// Each round bounds the false-positive probability by 1/4.
	MinRounds = 20

	// MaxRounds is the largest accepted Miller-Rabin round count.
	MaxRounds = 1000

	// DefaultKeyBits is the prime size used when the caller has no preference.
	DefaultKeyBits = 1024

	// DefaultMaxPrimeAttempts caps the candidates drawn while searching for a single prime.
	DefaultMaxPrimeAttempts = 100000

	// DefaultMaxKeyAttempts caps how many (p, q) pairs are discarded because no
	// public exponent is coprime with their totient.
	DefaultMaxKeyAttempts = 64
)

var (
	// ErrInvalidParameter indicates a bit length or round count outside the accepted bounds
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrEntropyUnavailable indicates the random source failed to deliver bytes
	ErrEntropyUnavailable = errors.New("entropy source unavailable")

	// ErrKeyGenerationExhausted indicates a retry cap was exceeded while generating a key
	ErrKeyGenerationExhausted = errors.New("key generation exhausted")

	// ErrMessageOutOfRange indicates a message outside [0, n)
	ErrMessageOutOfRange = errors.New("message out of range")

	// ErrInvalidKey indicates missing, wiped or inconsistent key material
	ErrInvalidKey = errors.New("invalid key")
)

// ValidateKeyBits validates a prime bit length against MinKeyBits and MaxKeyBits.
// Returns an error with context including the rejected value and the bound.
func ValidateKeyBits(bits int) error {
	if bits < MinKeyBits {
		return fmt.Errorf("%w: key size %d bits is below minimum %d", ErrInvalidParameter, bits, MinKeyBits)
	}
	if bits > MaxKeyBits {
		return fmt.Errorf("%w: key size %d bits exceeds limit %d", ErrInvalidParameter, bits, MaxKeyBits)
	}
	return nil
}

// ValidateRounds rejects round counts that are not positive or exceed MaxRounds.
// Positive counts below MinRounds are accepted and raised by EffectiveRounds.
func ValidateRounds(rounds int) error {
	if rounds < 1 {
		return fmt.Errorf("%w: round count %d must be positive", ErrInvalidParameter, rounds)
	}
	if rounds > MaxRounds {
		return fmt.Errorf("%w: round count %d exceeds limit %d", ErrInvalidParameter, rounds, MaxRounds)
	}
	return nil
}

// ValidateRandomBits validates the bit length requested from a random source.
func ValidateRandomBits(bits int) error {
	if bits < 1 {
		return fmt.Errorf("%w: random bit length %d must be positive", ErrInvalidParameter, bits)
	}
	return nil
}

// EffectiveRounds returns the number of Miller-Rabin rounds actually performed
// for a requested count: never fewer than MinRounds.
func EffectiveRounds(rounds int) int {
	if rounds < MinRounds {
		return MinRounds
	}
	return rounds
}
