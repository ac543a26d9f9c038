package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "./data/overtime.db", cfg.DBPath)
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, 5*time.Second, cfg.StorageTimeout)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=9090\nCORS_ALLOWED_ORIGINS=http://a.test,http://b.test\n"), 0o600))
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("STORAGE_TIMEOUT", "2s")

	cfg, err := Load(path, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	t.Cleanup(func() { os.Unsetenv("PORT"); os.Unsetenv("CORS_ALLOWED_ORIGINS") })

	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowedOrigins)
	assert.Equal(t, 2*time.Second, cfg.StorageTimeout)
}

func TestValidate(t *testing.T) {
	cfg := &Config{Port: 0, JWTTTL: time.Hour, StorageTimeout: time.Second}
	assert.Error(t, cfg.Validate())

	cfg.Port = 80
	assert.NoError(t, cfg.Validate())

	cfg.StorageTimeout = 0
	assert.Error(t, cfg.Validate())
}
