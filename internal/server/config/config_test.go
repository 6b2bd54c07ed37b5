package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
	assert.False(t, cfg.IsProduction())
	assert.False(t, cfg.ReceiptsEnabled())
}

func TestParseEnv(t *testing.T) {
	t.Setenv("ADDRESS", ":9000")
	t.Setenv("APP_ENV", "production")
	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("TOKEN_VALIDITY", "30m")
	t.Setenv("S3_BUCKET", "receipts")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9000", cfg.Addr)
	assert.Equal(t, "from-env", cfg.SecretKey)
	assert.Equal(t, 30*time.Minute, cfg.TokenValidityDuration)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.ReceiptsEnabled())
}

func TestParseEnv_InvalidDurationIgnored(t *testing.T) {
	t.Setenv("TOKEN_VALIDITY", "soon")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, 1*time.Hour, cfg.TokenValidityDuration)
}

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"server", "-a", ":7070", "-d", "postgres://flag", "-t", "15", "-ignored", "x"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	require.Equal(t, ":7070", cfg.Addr)
	require.Equal(t, "postgres://flag", cfg.DatabaseDSN)
	require.Equal(t, 15*time.Minute, cfg.TokenValidityDuration)
}
