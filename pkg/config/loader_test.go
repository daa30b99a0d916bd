package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/pkg/config"
)

type serverConfig struct {
	Addr    string        `env:"ORDERDESK_TEST_ADDR" envDefault:":8080"`
	Timeout time.Duration `env:"ORDERDESK_TEST_TIMEOUT" envDefault:"10s"`
	Strict  bool          `env:"ORDERDESK_TEST_STRICT"`
}

type requiredConfig struct {
	Token string `env:"ORDERDESK_TEST_TOKEN,required"`
}

type fileConfig struct {
	Recipient string `env:"ORDERDESK_TEST_RECIPIENT"`
	Name      string `env:"ORDERDESK_TEST_NAME"`
}

// Tests below mutate process environment and the shared cache, so they
// do not run in parallel.

func TestLoad_Defaults(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.False(t, cfg.Strict)
}

func TestLoad_FromEnvironmentAndCache(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	t.Setenv("ORDERDESK_TEST_ADDR", ":9090")
	t.Setenv("ORDERDESK_TEST_STRICT", "true")

	var cfg serverConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.Strict)

	t.Setenv("ORDERDESK_TEST_ADDR", ":7070")

	var cached serverConfig
	require.NoError(t, config.Load(&cached))
	assert.Equal(t, ":9090", cached.Addr, "second load is served from cache")

	config.Reset()

	var fresh serverConfig
	require.NoError(t, config.Load(&fresh))
	assert.Equal(t, ":7070", fresh.Addr)
}

func TestLoad_RequiredMissing(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	t.Setenv("ORDERDESK_TEST_TOKEN", "secret")

	require.NoError(t, config.Load(&cfg), "failed loads are not cached")
	assert.Equal(t, "secret", cfg.Token)
}

func TestLoad_NilPointer(t *testing.T) {
	var cfg *serverConfig
	require.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestMustLoad_Panics(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}

func TestLoadEnv(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)

	dir := t.TempDir()
	first := filepath.Join(dir, ".env.first")
	second := filepath.Join(dir, ".env.second")
	require.NoError(t, os.WriteFile(first, []byte("ORDERDESK_TEST_RECIPIENT=ops@example.com\n"), 0o600))
	require.NoError(t, os.WriteFile(second, []byte("ORDERDESK_TEST_RECIPIENT=other@example.com\nORDERDESK_TEST_NAME=\"Shop Orders\"\n"), 0o600))

	// Registered with t.Setenv so the values are restored after the test.
	t.Setenv("ORDERDESK_TEST_RECIPIENT", "")
	t.Setenv("ORDERDESK_TEST_NAME", "")
	require.NoError(t, os.Unsetenv("ORDERDESK_TEST_RECIPIENT"))
	require.NoError(t, os.Unsetenv("ORDERDESK_TEST_NAME"))

	require.NoError(t, config.LoadEnv(first, second))

	var cfg fileConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "ops@example.com", cfg.Recipient)
	assert.Equal(t, "Shop Orders", cfg.Name)

	err := config.LoadEnv(filepath.Join(dir, "missing.env"))
	require.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
