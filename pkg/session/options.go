package session

import "log/slog"

// Option is a functional option for configuring the Registry
type Option func(*Registry)

// WithStorage sets the storage adapter. A nil storage keeps the default in-memory one.
func WithStorage(storage Storage) Option {
	return func(r *Registry) {
		if storage != nil {
			r.storage = storage
		}
	}
}

// WithSafeMode toggles safe mode.
// With safe mode on, Create refuses existing ids and Get refuses missing ones.
func WithSafeMode(safe bool) Option {
	return func(r *Registry) {
		r.safeMode = safe
	}
}

// WithConfig applies the given configuration
func WithConfig(cfg Config) Option {
	return func(r *Registry) {
		r.safeMode = cfg.SafeMode
	}
}

// WithLogger sets the logger used for lifecycle and failure events
func WithLogger(log *slog.Logger) Option {
	return func(r *Registry) {
		if log != nil {
			r.log = log
		}
	}
}
