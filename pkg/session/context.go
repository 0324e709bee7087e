package session

import "context"

type registryContextKey struct{}

// WithRegistry adds a registry to the context
func WithRegistry(ctx context.Context, registry *Registry) context.Context {
	return context.WithValue(ctx, registryContextKey{}, registry)
}

// FromContext retrieves a registry from the context
func FromContext(ctx context.Context) (*Registry, bool) {
	registry, ok := ctx.Value(registryContextKey{}).(*Registry)
	return registry, ok && registry != nil
}

// MustFromContext retrieves a registry from the context or panics
func MustFromContext(ctx context.Context) *Registry {
	registry, ok := FromContext(ctx)
	if !ok {
		panic("session: registry not found in context")
	}
	return registry
}
