package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "http://localhost:5200/api", cfg.ShopAPIURL)
	assert.Equal(t, 30*time.Second, cfg.APITimeout)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("LISTEN_ADDR", ":9999")
	t.Setenv("SHOP_API_URL", "https://shop.internal/api")
	t.Setenv("SHOP_API_TIMEOUT", "5s")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.ListenAddr)
	assert.Equal(t, "https://shop.internal/api", cfg.ShopAPIURL)
	assert.Equal(t, 5*time.Second, cfg.APITimeout)
	assert.True(t, cfg.IsProduction())
}
