package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnvironment(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "test-key")
	cfg, err := FromEnvironment()
	require.NoError(t, err)
	assert.Equal(t, "test-key", cfg.GoogleMapsKey)
	assert.Greater(t, cfg.RequestTimeout.Seconds(), 0.0)
}

func TestFromEnvironmentMissingKey(t *testing.T) {
	t.Setenv("GOOGLE_MAPS_API_KEY", "")
	_, err := FromEnvironment()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}
