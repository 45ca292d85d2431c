package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Addr)
	assert.Equal(t, "data/opsboard.db", cfg.Database.Path)
	assert.Equal(t, 24*60, cfg.Auth.TokenTTLMinutes)
	assert.Empty(t, cfg.Auth.JWTSecret, "secret has no default on purpose")
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("OPSBOARD_SERVER_ADDR", "127.0.0.1:9090")
	t.Setenv("OPSBOARD_AUTH_JWTSECRET", "from-env")
	t.Setenv("OPSBOARD_AUTH_TOKENTTLMINUTES", "60")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Server.Addr)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, 60, cfg.Auth.TokenTTLMinutes)
}
