package keygen

import (
	"os"
	"strconv"

	"github.com/SomgBird/MyRSA/limits"
	"github.com/sirupsen/logrus"
)

// Validation constants for configuration bounds checking.
const (
	// MinPrimeAttempts is the smallest accepted per-prime candidate cap.
	MinPrimeAttempts = 1
	// MaxPrimeAttempts is the largest accepted per-prime candidate cap.
	MaxPrimeAttempts = 10000000
	// MinKeyAttempts is the smallest accepted cap on discarded prime pairs.
	MinKeyAttempts = 1
	// MaxKeyAttempts is the largest accepted cap on discarded prime pairs.
	MaxKeyAttempts = 10000
)

// Environment variables read by ConfigFromEnv.
const (
	EnvRounds           = "MYRSA_ROUNDS"
	EnvMaxPrimeAttempts = "MYRSA_MAX_PRIME_ATTEMPTS"
	EnvMaxKeyAttempts   = "MYRSA_MAX_KEY_ATTEMPTS"
)

// Config bounds the work a Generator may do before giving up.
type Config struct {
	// Rounds is the least number of Miller-Rabin rounds Generate performs.
	// A caller asking for more gets more; asking for fewer gets Rounds.
	Rounds int `json:"rounds"`

	// MaxPrimeAttempts caps the candidates drawn while searching for one prime.
	MaxPrimeAttempts int `json:"max_prime_attempts"`

	// MaxKeyAttempts caps how many prime pairs may be discarded because no
	// public exponent is coprime with their totient.
	MaxKeyAttempts int `json:"max_key_attempts"`
}

// Option customizes a Config.
type Option func(*Config)

// DefaultConfig returns the built-in configuration.
//
// Default Value Rationale:
//   - Rounds: limits.MinRounds - error bound 4^-20 per prime, independent of size
//   - MaxPrimeAttempts: limits.DefaultMaxPrimeAttempts - far beyond the ~bits*ln(2)/2
//     odd candidates a prime search needs on average
//   - MaxKeyAttempts: limits.DefaultMaxKeyAttempts - every Fermat prime dividing the
//     totient is already unlikely, 64 pairs in a row is practically impossible
func DefaultConfig(opts ...Option) Config {
	cfg := Config{
		Rounds:           limits.MinRounds,
		MaxPrimeAttempts: limits.DefaultMaxPrimeAttempts,
		MaxKeyAttempts:   limits.DefaultMaxKeyAttempts,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// ConfigFromEnv returns DefaultConfig with MYRSA_* environment overrides
// applied. Unparseable or out-of-bounds values are logged and ignored.
func ConfigFromEnv(opts ...Option) Config {
	cfg := DefaultConfig()
	parseBoundedSetting(EnvRounds, 1, limits.MaxRounds, &cfg.Rounds)
	parseBoundedSetting(EnvMaxPrimeAttempts, MinPrimeAttempts, MaxPrimeAttempts, &cfg.MaxPrimeAttempts)
	parseBoundedSetting(EnvMaxKeyAttempts, MinKeyAttempts, MaxKeyAttempts, &cfg.MaxKeyAttempts)
	for _, opt := range opts {
		opt(&cfg)
	}

	logrus.WithFields(logrus.Fields{
		"function":           "ConfigFromEnv",
		"rounds":             cfg.Rounds,
		"max_prime_attempts": cfg.MaxPrimeAttempts,
		"max_key_attempts":   cfg.MaxKeyAttempts,
	}).Debug("Resolved key generation configuration")

	return cfg
}

// WithRounds sets the Miller-Rabin round floor.
func WithRounds(rounds int) Option {
	return func(c *Config) {
		c.Rounds = rounds
	}
}

// WithMaxPrimeAttempts sets the per-prime candidate cap.
func WithMaxPrimeAttempts(attempts int) Option {
	return func(c *Config) {
		c.MaxPrimeAttempts = attempts
	}
}

// WithMaxKeyAttempts sets the cap on discarded prime pairs.
func WithMaxKeyAttempts(attempts int) Option {
	return func(c *Config) {
		c.MaxKeyAttempts = attempts
	}
}

// normalized replaces non-positive fields with their defaults and caps
// Rounds at limits.MaxRounds.
func (c Config) normalized() Config {
	def := DefaultConfig()
	if c.Rounds < 1 {
		c.Rounds = def.Rounds
	}
	if c.Rounds > limits.MaxRounds {
		c.Rounds = limits.MaxRounds
	}
	if c.MaxPrimeAttempts < MinPrimeAttempts {
		c.MaxPrimeAttempts = def.MaxPrimeAttempts
	}
	if c.MaxKeyAttempts < MinKeyAttempts {
		c.MaxKeyAttempts = def.MaxKeyAttempts
	}
	return c
}

// parseBoundedSetting updates *target from an integer environment variable.
// It validates the value is within [lo, hi] and logs warnings for invalid
// values. Only updates the target if parsing succeeds and the value is in range.
func parseBoundedSetting(envVar string, lo, hi int, target *int) {
	raw := os.Getenv(envVar)
	if raw == "" {
		return
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"function":    "parseBoundedSetting",
			"env_var":     envVar,
			"value":       raw,
			"error":       err.Error(),
			"using_value": *target,
		}).Warn("Failed to parse environment variable, using default")
		return
	}
	if value < lo || value > hi {
		logrus.WithFields(logrus.Fields{
			"function":    "parseBoundedSetting",
			"env_var":     envVar,
			"value":       value,
			"min":         lo,
			"max":         hi,
			"using_value": *target,
		}).Warn("Environment variable out of bounds, using default")
		return
	}
	*target = value
}
