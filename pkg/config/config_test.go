package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("FLATPEAK_HOST", "api.flatpeak.com")
	t.Setenv("FLATPEAK_PUBLISHABLE_KEY", "pk_test_123")
	t.Setenv("FLATPEAK_SECRET_KEY", "sk_test_123")
	t.Setenv("FLATPEAK_LOG_LEVEL", "debug")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, "api.flatpeak.com", cfg.Host)
	assert.Equal(t, "pk_test_123", cfg.PublishableKey)
	assert.Equal(t, Password("sk_test_123"), cfg.SecretKey)
	assert.Equal(t, Debug, cfg.LogLevel)
}

func TestFromEnvDefaultsLogLevel(t *testing.T) {
	t.Setenv("FLATPEAK_HOST", "api.flatpeak.com")

	cfg, err := FromEnv()

	require.NoError(t, err)
	assert.Equal(t, None, cfg.LogLevel)
}

func TestPasswordIsMaskedWhenSerialized(t *testing.T) {
	cfg := FlatPeakClient{
		Host:      "api.flatpeak.com",
		SecretKey: "sk_test_123",
	}

	raw, err := json.Marshal(cfg)

	require.NoError(t, err)
	assert.NotContains(t, string(raw), "sk_test_123")
	assert.Contains(t, string(raw), "*************")
}
