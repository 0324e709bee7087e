package config_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/config"
)

type cachedConfig struct {
	Name string `env:"CFG_TEST_CACHED_NAME" envDefault:"default"`
}

type parsedConfig struct {
	Name  string `env:"CFG_TEST_PARSED_NAME" envDefault:"default"`
	Limit int    `env:"CFG_TEST_PARSED_LIMIT" envDefault:"10"`
	Debug bool   `env:"CFG_TEST_PARSED_DEBUG"`
}

type requiredConfig struct {
	Value string `env:"CFG_TEST_REQUIRED,required"`
}

type fileConfig struct {
	Name   string `env:"CFG_TEST_FILE_NAME"`
	Limit  int    `env:"CFG_TEST_FILE_LIMIT"`
	Preset string `env:"CFG_TEST_FILE_PRESET"`
}

func TestLoad(t *testing.T) {
	t.Run("nil pointer", func(t *testing.T) {
		var cfg *cachedConfig
		assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
	})

	t.Run("caches per type", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)

		t.Setenv("CFG_TEST_CACHED_NAME", "first")
		var cfg cachedConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "first", cfg.Name)

		t.Setenv("CFG_TEST_CACHED_NAME", "second")
		var again cachedConfig
		require.NoError(t, config.Load(&again))
		assert.Equal(t, "first", again.Name)

		config.Reset()
		var reloaded cachedConfig
		require.NoError(t, config.Load(&reloaded))
		assert.Equal(t, "second", reloaded.Name)
	})

	t.Run("required value missing", func(t *testing.T) {
		config.Reset()
		t.Cleanup(config.Reset)
		os.Unsetenv("CFG_TEST_REQUIRED")

		var cfg requiredConfig
		assert.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	config.Reset()
	t.Cleanup(config.Reset)
	os.Unsetenv("CFG_TEST_REQUIRED")

	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})

	t.Setenv("CFG_TEST_REQUIRED", "set")
	assert.NotPanics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
		assert.Equal(t, "set", cfg.Value)
	})
}

func TestParse(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		os.Unsetenv("CFG_TEST_PARSED_NAME")
		os.Unsetenv("CFG_TEST_PARSED_LIMIT")
		os.Unsetenv("CFG_TEST_PARSED_DEBUG")

		var cfg parsedConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, parsedConfig{Name: "default", Limit: 10}, cfg)
	})

	t.Run("reads current environment every time", func(t *testing.T) {
		t.Setenv("CFG_TEST_PARSED_NAME", "one")
		var cfg parsedConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, "one", cfg.Name)

		t.Setenv("CFG_TEST_PARSED_NAME", "two")
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, "two", cfg.Name)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("CFG_TEST_PARSED_LIMIT", "many")
		var cfg parsedConfig
		assert.ErrorIs(t, config.Parse(&cfg), config.ErrParsingConfig)
	})

	t.Run("nil pointer", func(t *testing.T) {
		assert.ErrorIs(t, config.Parse[parsedConfig](nil), config.ErrNilPointer)
	})
}

func TestLoadEnvFiles(t *testing.T) {
	t.Run("loads values without overriding", func(t *testing.T) {
		os.Unsetenv("CFG_TEST_FILE_NAME")
		os.Unsetenv("CFG_TEST_FILE_LIMIT")
		t.Setenv("CFG_TEST_FILE_PRESET", "preset")
		t.Cleanup(func() {
			os.Unsetenv("CFG_TEST_FILE_NAME")
			os.Unsetenv("CFG_TEST_FILE_LIMIT")
		})

		require.NoError(t, config.LoadEnvFiles("testdata/sessions.env"))

		var cfg fileConfig
		require.NoError(t, config.Parse(&cfg))
		assert.Equal(t, "from_file", cfg.Name)
		assert.Equal(t, 7, cfg.Limit)
		assert.Equal(t, "preset", cfg.Preset)
	})

	t.Run("missing file", func(t *testing.T) {
		assert.ErrorIs(t, config.LoadEnvFiles("testdata/missing.env"), config.ErrLoadingEnvFile)
	})

	t.Run("no files", func(t *testing.T) {
		assert.NoError(t, config.LoadEnvFiles())
	})
}
