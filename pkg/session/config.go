package session

import "context"

// Config holds registry configuration
type Config struct {
	// SafeMode forbids creating existing sessions and fetching missing ones (default: true)
	SafeMode bool `env:"SESSION_SAFE_MODE" envDefault:"true"`
}

// DefaultConfig returns default registry configuration
func DefaultConfig() Config {
	return Config{
		SafeMode: true,
	}
}

// NewFromConfig creates a new Registry from the provided Config.
// Options passed after the config take precedence over it.
func NewFromConfig(ctx context.Context, cfg Config, opts ...Option) (*Registry, error) {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(ctx, configOpts...)
}
