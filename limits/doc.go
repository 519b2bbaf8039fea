// Package limits provides centralized parameter bounds and error sentinels for
// MyRSA. Every component validates its inputs against the constants defined
// here so that key generation, primality testing and signing agree on what a
// usable parameter looks like.
//
// # Parameter Bounds
//
//   - MinKeyBits (8): The smallest prime size that still supports the arithmetic
//     of key generation. Below it the totient is too small to host a public
//     exponent.
//
//   - MaxKeyBits (8192): Upper bound on the prime size accepted by the key
//     generator. Anything larger is refused rather than left to run for hours.
//
//   - MinRounds (20): Floor for Miller-Rabin witness rounds. Requested round
//     counts below it are raised, so the error bound never depends on the key
//     size and the round count can never reach zero.
//
// # Validation Functions
//
//	if err := limits.ValidateKeyBits(bits); err != nil {
//	    // errors.Is(err, limits.ErrInvalidParameter)
//	}
//
// # Error Types
//
//   - ErrInvalidParameter: a bit length or round count outside its bounds
//   - ErrEntropyUnavailable: the random source could not be read
//   - ErrKeyGenerationExhausted: a retry cap was reached during key generation
//   - ErrMessageOutOfRange: a message is not in [0, n)
//   - ErrInvalidKey: key material is missing or inconsistent
//
// Errors are wrapped with context using fmt.Errorf and the %w verb; match them
// with errors.Is.
package limits
