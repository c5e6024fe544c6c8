package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode_Defaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, "legacy", cfg.RNGSource)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CorsOrigins)
	assert.Equal(t, 40, cfg.RateLimitBurst)
	assert.Equal(t, "30m0s", cfg.LineupCacheTTL.String())
}

func TestDecode_Overrides(t *testing.T) {
	v := viper.New()
	SetDefaults(v)
	v.Set("ENV", "production")
	v.Set("RNG_SOURCE", "pcg")
	v.Set("AUTO_ADVANCE_INTERVAL", "10m")

	cfg, err := decode(v)
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "pcg", cfg.RNGSource)
	assert.Equal(t, "10m", cfg.AutoAdvanceInterval)
}

func TestDecode_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value interface{}
	}{
		{"unknown rng source", "RNG_SOURCE", "mersenne"},
		{"bad interval", "AUTO_ADVANCE_INTERVAL", "weekly"},
		{"zero burst", "RATE_LIMIT_BURST", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := decode(v)
			assert.Error(t, err)
		})
	}
}
