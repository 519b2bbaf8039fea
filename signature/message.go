package signature

import (
	"math/big"

	"github.com/SomgBird/MyRSA/keygen"
)

// SignedMessage pairs a message with its signature.
type SignedMessage struct {
	Message   *big.Int
	Signature *big.Int
}

// SignMessage signs message and returns both values together. The message
// is copied, so later changes to the argument do not affect the result.
func SignMessage(priv *keygen.PrivateKey, message *big.Int) (*SignedMessage, error) {
	s, err := Sign(priv, message)
	if err != nil {
		return nil, err
	}
	return &SignedMessage{Message: new(big.Int).Set(message), Signature: s}, nil
}

// VerifySignedMessage reports whether sm carries a valid signature under pub.
func VerifySignedMessage(pub *keygen.PublicKey, sm *SignedMessage) bool {
	if sm == nil {
		return false
	}
	return Verify(pub, sm.Message, sm.Signature)
}

// Tampered returns a copy of sm with messageDelta added to the message and
// signatureDelta added to the signature. sm itself is left untouched.
func (sm *SignedMessage) Tampered(messageDelta, signatureDelta int64) *SignedMessage {
	return &SignedMessage{
		Message:   addDelta(sm.Message, messageDelta),
		Signature: addDelta(sm.Signature, signatureDelta),
	}
}

func addDelta(x *big.Int, delta int64) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Add(x, big.NewInt(delta))
}
