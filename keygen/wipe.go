package keygen

import (
	"errors"
	"math/big"
	"runtime"
)

// Wipe overwrites the private exponent, the primes and the totient with
// zeros and drops them. The public key stays available. Copies previously
// obtained through Private, P, Q or Phi are not affected.
func (kp *Keypair) Wipe() {
	kp.mu.Lock()
	defer kp.mu.Unlock()

	for _, x := range []*big.Int{kp.d, kp.p, kp.q, kp.phi} {
		wipeInt(x)
	}
	kp.d, kp.p, kp.q, kp.phi = nil, nil, nil, nil
	kp.wiped = true
}

// WipeKeypair securely erases the private material of kp.
// This should be called when a Keypair is no longer needed.
func WipeKeypair(kp *Keypair) error {
	if kp == nil {
		return errors.New("cannot wipe nil Keypair")
	}
	kp.Wipe()
	return nil
}

// wipeInt zeroes the words backing x before resetting it.
func wipeInt(x *big.Int) {
	if x == nil {
		return
	}
	words := x.Bits()
	for i := range words {
		words[i] = 0
	}
	x.SetInt64(0)

	// Attempt to prevent the compiler from optimizing out the zeroing
	runtime.KeepAlive(words)
}
