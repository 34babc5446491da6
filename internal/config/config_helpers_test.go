package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvAsInt_MaxBodyBytes(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"unset uses default", "", DefaultMaxBodyBytes},
		{"plain integer", "4096", 4096},
		{"zero is kept", "0", 0},
		{"negative is kept", "-1", -1},
		{"float falls back", "1.5", DefaultMaxBodyBytes},
		{"garbage falls back", "1MB", DefaultMaxBodyBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvMaxBodyBytes, tt.value)
			assert.Equal(t, tt.want, getEnvAsInt(EnvMaxBodyBytes, DefaultMaxBodyBytes))
		})
	}
}

func TestGetEnvAsDuration_ShutdownTimeout(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  time.Duration
	}{
		{"unset uses default", "", DefaultShutdownTimeout},
		{"seconds", "30s", 30 * time.Second},
		{"compound", "1m30s", 90 * time.Second},
		{"milliseconds", "250ms", 250 * time.Millisecond},
		{"bare number falls back", "100", DefaultShutdownTimeout},
		{"garbage falls back", "soon", DefaultShutdownTimeout},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(EnvShutdownTimeout, tt.value)
			assert.Equal(t, tt.want, getEnvAsDuration(EnvShutdownTimeout, DefaultShutdownTimeout))
		})
	}
}

func TestGetEnvAsBool(t *testing.T) {
	t.Run("returns default when unset", func(t *testing.T) {
		t.Setenv(EnvSeedEncounters, "")
		v, err := getEnvAsBool(EnvSeedEncounters, true)
		require.NoError(t, err)
		assert.True(t, v)
	})

	t.Run("parses values", func(t *testing.T) {
		for in, want := range map[string]bool{"true": true, "1": true, "FALSE": false, "0": false} {
			t.Setenv(EnvSeedEncounters, in)
			v, err := getEnvAsBool(EnvSeedEncounters, !want)
			require.NoError(t, err, in)
			assert.Equal(t, want, v, in)
		}
	})

	t.Run("errors on garbage", func(t *testing.T) {
		t.Setenv(EnvSeedEncounters, "maybe")
		_, err := getEnvAsBool(EnvSeedEncounters, true)
		assert.Error(t, err)
	})
}

func TestGetEnvAsSlice(t *testing.T) {
	t.Setenv(EnvTrustedProxies, " 10.0.0.1 ,10.0.0.2,, 127.0.0.1 ")
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.2", "127.0.0.1"}, getEnvAsSlice(EnvTrustedProxies))

	t.Setenv(EnvTrustedProxies, "")
	assert.Nil(t, getEnvAsSlice(EnvTrustedProxies))
}
