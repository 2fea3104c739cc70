package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, time.Duration(0), cfg.PoolTTL)
	assert.Equal(t, int64(0), cfg.DiceSeed)
	assert.Equal(t, 100, cfg.MaxRerollPasses)
}

func TestLoadEnvironment(t *testing.T) {
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("POOL_TTL", "24h")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("MAX_REROLL_PASSES", "0")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 24*time.Hour, cfg.PoolTTL)
	assert.Equal(t, int64(42), cfg.DiceSeed)
	assert.Equal(t, 0, cfg.MaxRerollPasses)
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("REDIS_DB=3\nDICE_SEED=7\n"), 0o600))

	// Register cleanup for variables godotenv sets on the process
	t.Setenv("REDIS_DB", "")
	t.Setenv("DICE_SEED", "9")
	os.Unsetenv("REDIS_DB")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, int64(9), cfg.DiceSeed, "environment wins over the file")
}

func TestLoadInvalid(t *testing.T) {
	t.Setenv("REDIS_DB", "not-an-int")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestLoadNegativePasses(t *testing.T) {
	t.Setenv("MAX_REROLL_PASSES", "-1")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
}
