package configsapp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "")
	t.Setenv("APP_ENV", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.False(t, cfg.DatabaseURLSet())
}

func TestLoadEnvFile(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("PORT", "9000")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("DATABASE_NAME")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATABASE_URL=mongodb://localhost:27017\nDATABASE_NAME=ilhh\nPORT=7000\n"), 0o600))

	cfg, err := Load(envFile)
	require.NoError(t, err)
	assert.Equal(t, "mongodb://localhost:27017", cfg.DatabaseURL)
	assert.Equal(t, "ilhh", cfg.DatabaseName)
	assert.True(t, cfg.DatabaseURLSet())
	// the process environment wins over the file
	assert.Equal(t, "9000", cfg.Port)
}

func TestLoadMissingEnvFile(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.NotNil(t, cfg)
}

func TestLoadMalformedEnvFile(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("PORT=7000\nDATABASE-URL=mongodb://localhost:27017\n"), 0o600))

	cfg, err := Load(envFile)
	assert.Nil(t, cfg)
	assert.ErrorContains(t, err, "load env file")
	assert.ErrorContains(t, err, "unexpected character")
}

func TestLoadUnreadableEnvFile(t *testing.T) {
	// a directory opens but cannot be read as an env file
	cfg, err := Load(t.TempDir())
	assert.Nil(t, cfg)
	assert.Error(t, err)
}
