// Package provider hands a host application one session registry backed by
// a storage adapter chosen by name.
//
// A Provider starts with the in-memory adapter registered as "memory". Hosts
// register further adapters with Register or WithAdapter, select one with
// WithStorage and fix safe mode with WithSafeMode. The first call to
// Registry builds the registry and later calls return the same instance.
//
//	p := provider.New(
//	    provider.WithAdapter("redis", redis.NewStorage(client)),
//	    provider.WithStorage("redis"),
//	)
//	registry, err := p.Registry(ctx)
//
// FromConfig and FromEnv go one step further: they read SESSION_STORAGE and
// connect the named backend (memory, file, sqlite, redis, postgres, mongo or
// s3) from that backend's environment settings.
//
//	p, closeFn, err := provider.FromEnv(ctx, log)
//	if err != nil {
//	    return err
//	}
//	defer closeFn(context.Background())
package provider
