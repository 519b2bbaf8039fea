package signature

import (
	"fmt"
	"math/big"

	"github.com/SomgBird/MyRSA/bigmath"
	"github.com/SomgBird/MyRSA/keygen"
	"github.com/SomgBird/MyRSA/limits"
	"github.com/SomgBird/MyRSA/logging"
)

// Sign computes message^D mod N.
//
// Errors:
//   - limits.ErrInvalidKey when the key is nil, wiped, or has a non-positive modulus
//   - limits.ErrMessageOutOfRange when message is nil or outside [0, N)
func Sign(priv *keygen.PrivateKey, message *big.Int) (*big.Int, error) {
	log := logging.NewLogger("signature", "Sign").WithCaller()

	if err := checkPrivateKey(priv); err != nil {
		log.WithError(err, "key_error", "check_key").Warn("Refusing to sign")
		return nil, err
	}
	if !inRange(message, priv.N) {
		err := fmt.Errorf("%w: message must lie in [0, n)", limits.ErrMessageOutOfRange)
		log.WithFields(logging.PublicFields("n", priv.N)).
			WithError(err, "validation_error", "check_message").
			Warn("Refusing to sign")
		return nil, err
	}

	s := bigmath.ModPow(message, priv.D, priv.N)

	log.WithFields(logging.OperationFields("sign", "success",
		logging.PublicFields("n", priv.N),
		logging.SecretFields("d", priv.D),
	)).Debug("Message signed")

	return s, nil
}

// Verify reports whether signature^E mod N equals message. Nil inputs, a
// malformed key, and values outside [0, N) all verify as false.
func Verify(pub *keygen.PublicKey, message, signature *big.Int) bool {
	if pub == nil || pub.E == nil || pub.N == nil || pub.N.Sign() <= 0 || pub.E.Sign() <= 0 {
		return false
	}
	if !inRange(message, pub.N) || !inRange(signature, pub.N) {
		return false
	}

	ok := bigmath.ModPow(signature, pub.E, pub.N).Cmp(message) == 0

	logging.NewLogger("signature", "Verify").
		WithField("valid", ok).
		WithFields(logging.PublicFields("n", pub.N)).
		Debug("Signature checked")

	return ok
}

func checkPrivateKey(priv *keygen.PrivateKey) error {
	switch {
	case priv == nil:
		return fmt.Errorf("%w: nil private key", limits.ErrInvalidKey)
	case priv.D == nil:
		return fmt.Errorf("%w: private exponent missing or wiped", limits.ErrInvalidKey)
	case priv.N == nil || priv.N.Sign() <= 0:
		return fmt.Errorf("%w: modulus must be positive", limits.ErrInvalidKey)
	case priv.D.Sign() < 0:
		return fmt.Errorf("%w: negative private exponent", limits.ErrInvalidKey)
	}
	return nil
}

// inRange reports whether 0 <= x < n.
func inRange(x, n *big.Int) bool {
	return x != nil && x.Sign() >= 0 && x.Cmp(n) < 0
}
