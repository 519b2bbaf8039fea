package keygen

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/SomgBird/MyRSA/limits"
	"github.com/SomgBird/MyRSA/logging"
	"github.com/SomgBird/MyRSA/primality"
	"github.com/SomgBird/MyRSA/random"
	"github.com/sirupsen/logrus"
)

var one = big.NewInt(1)

// Generator produces keypairs from a random source. It keeps no per-call
// state, so one Generator may serve concurrent Generate calls when its
// source is safe for concurrent use.
type Generator struct {
	source random.Source
	tester *primality.Tester
	config Config
}

// NewGenerator creates a Generator drawing candidates and Miller-Rabin
// witnesses from source. Non-positive config fields fall back to defaults.
func NewGenerator(source random.Source, config Config) *Generator {
	return &Generator{
		source: source,
		tester: primality.NewTester(source),
		config: config.normalized(),
	}
}

// Generate creates a keypair with the operating system CSPRNG and DefaultConfig.
func Generate(bits, rounds int) (*Keypair, error) {
	return NewGenerator(random.NewCryptoSource(), DefaultConfig()).Generate(bits, rounds)
}

// Config returns the configuration in effect.
func (g *Generator) Config() Config {
	return g.config
}

// Generate creates a keypair whose primes p and q each have exactly bits
// bits. rounds is the requested Miller-Rabin round count; the Generator's
// Config.Rounds and limits.MinRounds are floors under it.
//
// Errors:
//   - limits.ErrInvalidParameter when bits or rounds is out of bounds
//   - limits.ErrEntropyUnavailable when the random source fails
//   - limits.ErrKeyGenerationExhausted when a retry cap is reached
func (g *Generator) Generate(bits, rounds int) (*Keypair, error) {
	log := logging.NewLogger("keygen", "Generate").
		WithField("bits", bits).
		WithField("rounds", rounds)
	log.Entry("generating keypair")
	defer log.Exit()

	if err := limits.ValidateKeyBits(bits); err != nil {
		log.WithError(err, "validation_error", "validate_bits").Warn("Rejected key size")
		return nil, err
	}
	if err := limits.ValidateRounds(rounds); err != nil {
		log.WithError(err, "validation_error", "validate_rounds").Warn("Rejected round count")
		return nil, err
	}

	rounds = max(rounds, g.config.Rounds)
	log.WithField("effective_rounds", rounds)

	started := time.Now()

	for attempt := 1; attempt <= g.config.MaxKeyAttempts; attempt++ {
		p, err := g.searchPrime(bits, rounds, nil)
		if err != nil {
			return nil, g.fail(log, err, "search_p")
		}
		q, err := g.searchPrime(bits, rounds, p)
		if err != nil {
			return nil, g.fail(log, err, "search_q")
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(new(big.Int).Sub(p, one), new(big.Int).Sub(q, one))

		e, d, err := chooseExponent(phi)
		if errors.Is(err, errNoCoprimeExponent) {
			log.WithField("attempt", attempt).Debug("No coprime public exponent, discarding primes")
			continue
		}

		if err := validateComponents(p, q, phi, e, n, d); err != nil {
			return nil, g.fail(log, err, "validate_key")
		}

		log.WithFields(logging.OperationFields("generate", "success",
			logging.PublicFields("n", n),
			logging.PublicFields("e", e),
			logging.SecretFields("d", d),
			logrus.Fields{
				"attempt":    attempt,
				"elapsed_ms": time.Since(started).Milliseconds(),
			},
		)).Info("Keypair generated")

		return &Keypair{bits: bits, p: p, q: q, phi: phi, e: e, n: n, d: d}, nil
	}

	err := fmt.Errorf("%w: no coprime public exponent after %d prime pairs",
		limits.ErrKeyGenerationExhausted, g.config.MaxKeyAttempts)
	return nil, g.fail(log, err, "choose_exponent")
}

// searchPrime draws odd candidates of exactly bits bits until one passes the
// primality test. A candidate equal to exclude is skipped.
func (g *Generator) searchPrime(bits, rounds int, exclude *big.Int) (*big.Int, error) {
	for i := 0; i < g.config.MaxPrimeAttempts; i++ {
		candidate, err := g.source.Int(bits)
		if err != nil {
			return nil, err
		}
		// The source clears the top bit; setting it here fixes the bit length.
		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, 0, 1)

		if exclude != nil && candidate.Cmp(exclude) == 0 {
			continue
		}

		prime, err := g.tester.Test(candidate, rounds, bits)
		if err != nil {
			return nil, err
		}
		if prime {
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: no %d-bit prime after %d candidates",
		limits.ErrKeyGenerationExhausted, bits, g.config.MaxPrimeAttempts)
}

func (g *Generator) fail(log *logging.LoggerHelper, err error, operation string) error {
	log.WithError(err, "keygen_error", operation).Error("Key generation failed")
	return err
}
