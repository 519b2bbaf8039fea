package keygen

import (
	"testing"

	"github.com/SomgBird/MyRSA/limits"
	"github.com/stretchr/testify/assert"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, limits.MinRounds, cfg.Rounds)
	assert.Equal(t, limits.DefaultMaxPrimeAttempts, cfg.MaxPrimeAttempts)
	assert.Equal(t, limits.DefaultMaxKeyAttempts, cfg.MaxKeyAttempts)
}

func TestConfigOptions(t *testing.T) {
	cfg := DefaultConfig(WithRounds(40), WithMaxPrimeAttempts(7), WithMaxKeyAttempts(3))

	assert.Equal(t, 40, cfg.Rounds)
	assert.Equal(t, 7, cfg.MaxPrimeAttempts)
	assert.Equal(t, 3, cfg.MaxKeyAttempts)
}

func TestConfigNormalized(t *testing.T) {
	cfg := Config{Rounds: 0, MaxPrimeAttempts: -5, MaxKeyAttempts: 2}.normalized()

	assert.Equal(t, limits.MinRounds, cfg.Rounds)
	assert.Equal(t, limits.DefaultMaxPrimeAttempts, cfg.MaxPrimeAttempts)
	assert.Equal(t, 2, cfg.MaxKeyAttempts)

	assert.Equal(t, limits.MaxRounds, Config{Rounds: limits.MaxRounds + 1}.normalized().Rounds)

	gen := NewGenerator(nil, Config{})
	assert.Equal(t, DefaultConfig(), gen.Config())
}

func TestConfigFromEnv(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Config
	}{
		{
			name: "no overrides",
			env:  map[string]string{},
			want: DefaultConfig(),
		},
		{
			name: "all overrides",
			env: map[string]string{
				EnvRounds:           "64",
				EnvMaxPrimeAttempts: "5000",
				EnvMaxKeyAttempts:   "8",
			},
			want: Config{Rounds: 64, MaxPrimeAttempts: 5000, MaxKeyAttempts: 8},
		},
		{
			name: "unparseable value ignored",
			env:  map[string]string{EnvRounds: "many"},
			want: DefaultConfig(),
		},
		{
			name: "below minimum ignored",
			env:  map[string]string{EnvMaxPrimeAttempts: "0"},
			want: DefaultConfig(),
		},
		{
			name: "above maximum ignored",
			env: map[string]string{
				EnvRounds:         "1001",
				EnvMaxKeyAttempts: "4",
			},
			want: DefaultConfig(WithMaxKeyAttempts(4)),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{EnvRounds, EnvMaxPrimeAttempts, EnvMaxKeyAttempts} {
				t.Setenv(key, tt.env[key])
			}
			assert.Equal(t, tt.want, ConfigFromEnv())
		})
	}
}

func TestConfigFromEnvOptionsWin(t *testing.T) {
	t.Setenv(EnvRounds, "50")

	cfg := ConfigFromEnv(WithRounds(30))
	assert.Equal(t, 30, cfg.Rounds)
}
