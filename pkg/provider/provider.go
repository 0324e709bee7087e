package provider

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/session"
)

// Provider keeps named storage adapters and builds one session Registry on
// first use. Settings are fixed at construction; adapters may be registered
// until the registry is built.
type Provider struct {
	mu       sync.Mutex
	adapters map[string]session.Storage
	storage  string
	safeMode bool
	log      *slog.Logger
	health   func(context.Context) error
	registry *session.Registry
}

// Option configures a Provider.
type Option func(*Provider)

// WithStorage names the adapter the registry will use. Defaults to "memory".
func WithStorage(name string) Option {
	return func(p *Provider) {
		if name != "" {
			p.storage = name
		}
	}
}

// WithSafeMode toggles safe mode for the registry. Defaults to true.
func WithSafeMode(enabled bool) Option {
	return func(p *Provider) {
		p.safeMode = enabled
	}
}

// WithLogger sets the logger handed to the registry.
func WithLogger(log *slog.Logger) Option {
	return func(p *Provider) {
		if log != nil {
			p.log = log
		}
	}
}

// WithAdapter registers a named adapter at construction.
func WithAdapter(name string, storage session.Storage) Option {
	return func(p *Provider) {
		if name != "" && storage != nil {
			p.adapters[name] = storage
		}
	}
}

// WithHealthcheck sets the probe Healthcheck runs against the backend.
func WithHealthcheck(fn func(context.Context) error) Option {
	return func(p *Provider) {
		p.health = fn
	}
}

// New creates a provider with the in-memory adapter registered as "memory".
func New(opts ...Option) *Provider {
	p := &Provider{
		adapters: map[string]session.Storage{
			BackendMemory: session.NewMemoryStorage(),
		},
		storage:  BackendMemory,
		safeMode: session.DefaultConfig().SafeMode,
		log:      logger.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Register adds or replaces a named adapter. It has no effect on a registry
// that was already built.
func (p *Provider) Register(name string, storage session.Storage) error {
	if name == "" || storage == nil {
		return fmt.Errorf("%w: name and storage are required", ErrInvalidAdapter)
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.adapters[name] = storage
	return nil
}

// Adapters returns the registered adapter names, sorted.
func (p *Provider) Adapters() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Sorted(maps.Keys(p.adapters))
}

// StorageName returns the name of the adapter the registry uses.
func (p *Provider) StorageName() string {
	return p.storage
}

// Registry returns the shared registry, building it on the first call.
// A failed build is not cached, so the next call tries again.
func (p *Provider) Registry(ctx context.Context) (*session.Registry, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.registry != nil {
		return p.registry, nil
	}

	storage, ok := p.adapters[p.storage]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStorage, p.storage)
	}

	registry, err := session.New(ctx,
		session.WithStorage(storage),
		session.WithSafeMode(p.safeMode),
		session.WithLogger(p.log.With(logger.Storage(p.storage))),
	)
	if err != nil {
		return nil, err
	}

	p.registry = registry
	return registry, nil
}

// Healthcheck probes the backend connection. Backends without a connection
// always report healthy.
func (p *Provider) Healthcheck(ctx context.Context) error {
	if p.health == nil {
		return nil
	}
	return p.health(ctx)
}
