package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/argsv/pkg/config"
)

type CustomEnvConfig struct {
	LogLevel  string   `env:"TEST_CUSTOM_LOG_LEVEL"`
	LogFormat string   `env:"TEST_CUSTOM_LOG_FORMAT"`
	Patterns  []string `env:"TEST_CUSTOM_PATTERNS" envSeparator:","`
	Quoted    string   `env:"TEST_CUSTOM_QUOTED"`
}

type OverrideConfig struct {
	Unique string `env:"TEST_OVERRIDE_UNIQUE"`
	Shared string `env:"TEST_OVERRIDE_SHARED"`
}

func writeEnvFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		prev, ok := os.LookupEnv(k)
		os.Unsetenv(k)
		t.Cleanup(func() {
			if ok {
				os.Setenv(k, prev)
			} else {
				os.Unsetenv(k)
			}
		})
	}
}

func TestLoadEnv_CustomPath(t *testing.T) {
	unsetEnv(t, "TEST_CUSTOM_LOG_LEVEL", "TEST_CUSTOM_LOG_FORMAT", "TEST_CUSTOM_PATTERNS", "TEST_CUSTOM_QUOTED")
	config.ResetCache()

	path := writeEnvFile(t, ".env.custom", `TEST_CUSTOM_LOG_LEVEL=debug
TEST_CUSTOM_LOG_FORMAT=json
TEST_CUSTOM_PATTERNS=signup.yaml,login.yaml
TEST_CUSTOM_QUOTED="quoted value"
`)

	require.NoError(t, config.LoadEnv(path))

	var cfg CustomEnvConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, []string{"signup.yaml", "login.yaml"}, cfg.Patterns)
	assert.Equal(t, "quoted value", cfg.Quoted)
}

func TestLoadEnv_MultiplePaths(t *testing.T) {
	unsetEnv(t, "TEST_OVERRIDE_UNIQUE", "TEST_OVERRIDE_SHARED")
	config.ResetCache()

	first := writeEnvFile(t, ".env.first", "TEST_OVERRIDE_SHARED=first\n")
	second := writeEnvFile(t, ".env.second", "TEST_OVERRIDE_SHARED=second\nTEST_OVERRIDE_UNIQUE=unique\n")

	require.NoError(t, config.LoadEnv(first, second))

	var cfg OverrideConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "first", cfg.Shared, "earlier files win, godotenv never overrides")
	assert.Equal(t, "unique", cfg.Unique)
}

func TestLoadEnv_NonExistentPath(t *testing.T) {
	err := config.LoadEnv(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}
