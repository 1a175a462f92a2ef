package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/firstengineering/website/pkg/config"
)

type defaultsConfig struct {
	Max    int           `env:"TEST_RATE_LIMIT_MAX" envDefault:"5"`
	Window time.Duration `env:"TEST_RATE_LIMIT_WINDOW" envDefault:"15m"`
	From   string        `env:"TEST_FROM_EMAIL" envDefault:"Contact Form <noreply@example.com>"`
}

type overrideConfig struct {
	To string `env:"TEST_TO_EMAIL"`
}

type cachedConfig struct {
	Value string `env:"TEST_CACHED_VALUE" envDefault:"default"`
}

type requiredConfig struct {
	Key string `env:"TEST_REQUIRED_KEY,required"`
}

type nestedConfig struct {
	Defaults defaultsConfig
	Override overrideConfig
}

type fileConfig struct {
	Token string `env:"TEST_FILE_TOKEN"`
}

func TestLoad_Defaults(t *testing.T) {
	config.Reset()

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 5, cfg.Max)
	assert.Equal(t, 15*time.Minute, cfg.Window)
	assert.Equal(t, "Contact Form <noreply@example.com>", cfg.From)
}

func TestLoad_FromEnvironment(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_TO_EMAIL", "owner@example.com")

	var cfg overrideConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "owner@example.com", cfg.To)
}

func TestLoad_Nested(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_RATE_LIMIT_MAX", "10")
	t.Setenv("TEST_TO_EMAIL", "owner@example.com")

	var cfg nestedConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, 10, cfg.Defaults.Max)
	assert.Equal(t, "owner@example.com", cfg.Override.To)
}

func TestLoad_Cached(t *testing.T) {
	config.Reset()
	t.Setenv("TEST_CACHED_VALUE", "first")

	var first cachedConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("TEST_CACHED_VALUE", "second")
	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)

	config.Reset()
	var third cachedConfig
	require.NoError(t, config.Load(&third))
	assert.Equal(t, "second", third.Value)
}

func TestLoad_MissingRequired(t *testing.T) {
	config.Reset()

	var cfg requiredConfig
	err := config.Load(&cfg)
	assert.ErrorIs(t, err, config.ErrParsingConfig)

	assert.Panics(t, func() { config.MustLoad(&cfg) })

	t.Setenv("TEST_REQUIRED_KEY", "set")
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "set", cfg.Key)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *defaultsConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoadEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TEST_FILE_TOKEN=from-file\n"), 0o600))
	t.Setenv("TEST_FILE_TOKEN", "")
	require.NoError(t, os.Unsetenv("TEST_FILE_TOKEN"))

	require.NoError(t, config.LoadEnv(path))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "from-file", cfg.Token)
}

func TestLoadEnv_MissingFile(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env")) })
}
