package random

import (
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"io"
	"math/big"
	"sync"

	"github.com/SomgBird/MyRSA/limits"
	"github.com/SomgBird/MyRSA/logging"
	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

// seededSourceInfo binds HKDF output to this package.
const seededSourceInfo = "myrsa/random/seeded-source"

// Source supplies non-negative random integers of at most a requested bit length.
// Implementations must be safe for concurrent use.
type Source interface {
	Int(bits int) (*big.Int, error)
}

// ReaderSource samples integers from an io.Reader.
type ReaderSource struct {
	mu sync.Mutex
	r  io.Reader
}

// NewReaderSource creates a Source drawing bytes from r. Reads are serialized.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{r: r}
}

// NewCryptoSource creates a Source backed by crypto/rand.Reader.
func NewCryptoSource() *ReaderSource {
	return NewReaderSource(rand.Reader)
}

// NewSeededSource creates a reproducible Source for tests. The same seed
// always yields the same sequence of integers. Never use it for real keys.
func NewSeededSource(seed []byte) *ReaderSource {
	kdf := hkdf.New(sha256.New, seed, nil, []byte(seededSourceInfo))

	material := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	// HKDF-SHA256 yields up to 8160 bytes, 44 cannot fail.
	if _, err := io.ReadFull(kdf, material); err != nil {
		panic(fmt.Sprintf("random: hkdf expansion failed: %v", err))
	}

	cipher, err := chacha20.NewUnauthenticatedCipher(material[:chacha20.KeySize], material[chacha20.KeySize:])
	if err != nil {
		panic(fmt.Sprintf("random: chacha20 setup failed: %v", err))
	}

	return NewReaderSource(&keystreamReader{cipher: cipher})
}

// Int returns a value in [0, 2^(bits-1)).
func (s *ReaderSource) Int(bits int) (*big.Int, error) {
	if err := limits.ValidateRandomBits(bits); err != nil {
		return nil, err
	}

	buf := make([]byte, (bits+7)/8)

	s.mu.Lock()
	_, err := io.ReadFull(s.r, buf)
	s.mu.Unlock()

	if err != nil {
		logging.NewLogger("random", "Int").
			WithCaller().
			WithError(err, "entropy_error", "read").
			WithField("bytes", len(buf)).
			Error("Failed to read from entropy source")
		return nil, fmt.Errorf("%w: %v", limits.ErrEntropyUnavailable, err)
	}

	// buf[0] holds bits [8*(len-1), 8*len) of the big-endian value.
	if excess := len(buf)*8 - bits; excess > 0 {
		buf[0] &= byte(0xFF >> excess)
	}
	top := (bits - 1) - 8*(len(buf)-1)
	buf[0] &^= byte(1) << top

	return new(big.Int).SetBytes(buf), nil
}

// keystreamReader exposes a ChaCha20 keystream as an endless io.Reader.
type keystreamReader struct {
	cipher *chacha20.Cipher
}

func (k *keystreamReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	k.cipher.XORKeyStream(p, p)
	return len(p), nil
}
