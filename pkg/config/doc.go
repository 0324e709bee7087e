// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11. Every
// adapter in the session kit describes its settings with an env-tagged
// struct (session.Config, redis.Config, pg.Config and so on), and this
// package fills those structs.
//
// Load caches one parsed copy per type for the lifetime of the process.
// Parse always reads the current environment, which is what the provider
// package uses when it connects the backend named by SESSION_STORAGE.
//
//	type Config struct {
//		Path string `env:"SESSION_FILE_PATH" envDefault:"data/sessions.json"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
// LoadEnvFiles reads extra dotenv files on demand. Reset drops the cache and
// is mostly useful in tests.
package config
