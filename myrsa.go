package myrsa

import (
	"math/big"

	"github.com/SomgBird/MyRSA/keygen"
	"github.com/SomgBird/MyRSA/limits"
	"github.com/SomgBird/MyRSA/random"
	"github.com/SomgBird/MyRSA/signature"
)

// Error sentinels returned by this module.
var (
	ErrInvalidParameter       = limits.ErrInvalidParameter
	ErrEntropyUnavailable     = limits.ErrEntropyUnavailable
	ErrKeyGenerationExhausted = limits.ErrKeyGenerationExhausted
	ErrMessageOutOfRange      = limits.ErrMessageOutOfRange
	ErrInvalidKey             = limits.ErrInvalidKey
)

// Keypair is a generated RSA keypair.
type Keypair = keygen.Keypair

// GenerateKeypair creates a keypair whose primes each have exactly bits bits,
// testing candidates with at least rounds Miller-Rabin rounds. Retry caps are
// read from the MYRSA_* environment variables.
func GenerateKeypair(bits, rounds int) (*Keypair, error) {
	return keygen.NewGenerator(random.NewCryptoSource(), keygen.ConfigFromEnv()).Generate(bits, rounds)
}

// Sign signs message, which must lie in [0, n), with the private half of kp.
func Sign(kp *Keypair, message *big.Int) (*big.Int, error) {
	if kp == nil {
		return signature.Sign(nil, message)
	}
	return signature.Sign(kp.Private(), message)
}

// Verify reports whether sig is a valid signature of message under the
// public half of kp.
func Verify(kp *Keypair, message, sig *big.Int) bool {
	if kp == nil {
		return false
	}
	return signature.Verify(kp.Public(), message, sig)
}
