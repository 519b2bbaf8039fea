package keygen

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/SomgBird/MyRSA/bigmath"
	"github.com/SomgBird/MyRSA/limits"
)

// PublicKey is the verification half of a keypair.
type PublicKey struct {
	E *big.Int // public exponent
	N *big.Int // modulus
}

// PrivateKey is the signing half of a keypair.
type PrivateKey struct {
	D *big.Int // private exponent
	N *big.Int // modulus
}

// Keypair owns the material produced by one key generation. It is immutable
// once returned; accessors hand out copies. Wipe is the only mutation.
type Keypair struct {
	mu sync.RWMutex

	bits int
	p    *big.Int
	q    *big.Int
	phi  *big.Int
	e    *big.Int
	n    *big.Int
	d    *big.Int

	wiped bool
}

// Public returns a copy of the public key.
func (kp *Keypair) Public() *PublicKey {
	kp.mu.RLock()
	defer kp.mu.RUnlock()

	return &PublicKey{E: cloneInt(kp.e), N: cloneInt(kp.n)}
}

// Private returns a copy of the private key. After Wipe, D is nil.
func (kp *Keypair) Private() *PrivateKey {
	kp.mu.RLock()
	defer kp.mu.RUnlock()

	return &PrivateKey{D: cloneInt(kp.d), N: cloneInt(kp.n)}
}

// Bits returns the bit length requested for each prime.
func (kp *Keypair) Bits() int {
	return kp.bits
}

// P returns a copy of the first prime, or nil after Wipe.
func (kp *Keypair) P() *big.Int {
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	return cloneInt(kp.p)
}

// Q returns a copy of the second prime, or nil after Wipe.
func (kp *Keypair) Q() *big.Int {
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	return cloneInt(kp.q)
}

// Phi returns a copy of the totient (p-1)(q-1), or nil after Wipe.
func (kp *Keypair) Phi() *big.Int {
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	return cloneInt(kp.phi)
}

// Wiped reports whether the private material has been destroyed.
func (kp *Keypair) Wiped() bool {
	kp.mu.RLock()
	defer kp.mu.RUnlock()
	return kp.wiped
}

// Validate re-checks the algebraic relations between the key components:
// p != q, n = p*q, phi = (p-1)(q-1), 1 < e < phi, gcd(e, phi) = 1,
// d in [0, phi) and e*d = 1 mod phi. Primality is not re-tested.
func (kp *Keypair) Validate() error {
	kp.mu.RLock()
	defer kp.mu.RUnlock()

	if kp.wiped {
		return fmt.Errorf("%w: keypair has been wiped", limits.ErrInvalidKey)
	}
	return validateComponents(kp.p, kp.q, kp.phi, kp.e, kp.n, kp.d)
}

func validateComponents(p, q, phi, e, n, d *big.Int) error {
	for _, v := range []*big.Int{p, q, phi, e, n, d} {
		if v == nil {
			return fmt.Errorf("%w: missing component", limits.ErrInvalidKey)
		}
	}

	if p.Cmp(q) == 0 {
		return fmt.Errorf("%w: p equals q", limits.ErrInvalidKey)
	}
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		return fmt.Errorf("%w: n is not p*q", limits.ErrInvalidKey)
	}

	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	if new(big.Int).Mul(pm1, qm1).Cmp(phi) != 0 {
		return fmt.Errorf("%w: phi is not (p-1)(q-1)", limits.ErrInvalidKey)
	}

	if e.Cmp(one) <= 0 || e.Cmp(phi) >= 0 {
		return fmt.Errorf("%w: public exponent outside (1, phi)", limits.ErrInvalidKey)
	}
	if gcd, _, _ := bigmath.ExtendedGCD(e, phi); gcd.Cmp(one) != 0 {
		return fmt.Errorf("%w: public exponent not coprime with phi", limits.ErrInvalidKey)
	}

	if d.Sign() < 0 || d.Cmp(phi) >= 0 {
		return fmt.Errorf("%w: private exponent outside [0, phi)", limits.ErrInvalidKey)
	}
	if bigmath.ModMul(e, d, phi).Cmp(one) != 0 {
		return fmt.Errorf("%w: e*d is not 1 mod phi", limits.ErrInvalidKey)
	}

	return nil
}

func cloneInt(x *big.Int) *big.Int {
	if x == nil {
		return nil
	}
	return new(big.Int).Set(x)
}
