package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_OverlaysSetVariables(t *testing.T) {
	t.Setenv("STOREFRONT_JWT_SECRET", "env-secret")
	t.Setenv("STOREFRONT_TOKEN_TTL", "30m")
	t.Setenv("STOREFRONT_PASSWORD_HASH_COST", "12")
	t.Setenv("STOREFRONT_DATABASE_DSN", "memory:")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, 30*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 12, c.PasswordHashCost)
	assert.Equal(t, "memory:", c.DatabaseDSN)

	// untouched by the environment
	assert.Equal(t, ":50051", c.EndpointAddrGRPC)
	assert.Equal(t, 5*time.Second, c.StoreTimeout)
}

func TestParseEnv_InvalidValuePanics(t *testing.T) {
	t.Setenv("STOREFRONT_STORE_TIMEOUT", "whenever")

	c := &Config{}
	require.Panics(t, func() { parseEnv(c) })
}
