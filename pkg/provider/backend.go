package provider

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/sessionkit/pkg/config"
	"github.com/dmitrymomot/sessionkit/pkg/file"
	"github.com/dmitrymomot/sessionkit/pkg/logger"
	"github.com/dmitrymomot/sessionkit/pkg/mongo"
	"github.com/dmitrymomot/sessionkit/pkg/pg"
	"github.com/dmitrymomot/sessionkit/pkg/redis"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/snapshot"
	"github.com/dmitrymomot/sessionkit/pkg/sqlite"
)

// CloseFunc releases the connections opened for a backend.
type CloseFunc func(ctx context.Context) error

func noopClose(context.Context) error { return nil }

// FromEnv parses Config from the environment and calls FromConfig.
func FromEnv(ctx context.Context, log *slog.Logger) (*Provider, CloseFunc, error) {
	var cfg Config
	if err := config.Parse(&cfg); err != nil {
		return nil, nil, err
	}
	return FromConfig(ctx, cfg, log)
}

// FromConfig connects the backend named by cfg.Storage and returns a provider
// configured to use it. Backend settings come from that backend's own
// env-tagged config. The returned CloseFunc must be called on shutdown.
func FromConfig(ctx context.Context, cfg Config, log *slog.Logger) (*Provider, CloseFunc, error) {
	if log == nil {
		log = logger.Discard()
	}

	var codec snapshot.Codec
	if cfg.Codec != "" {
		c, err := snapshot.ByName(cfg.Codec)
		if err != nil {
			return nil, nil, err
		}
		codec = c
	}

	name := cfg.Storage
	if name == "" {
		name = BackendMemory
	}

	b, err := connect(ctx, name, cfg.Namespace, codec, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect session storage", logger.Storage(name), logger.Error(err))
		return nil, nil, err
	}

	opts := []Option{
		WithStorage(name),
		WithSafeMode(cfg.SafeMode),
		WithLogger(log),
	}
	if b.storage != nil {
		opts = append(opts, WithAdapter(name, b.storage))
	}
	if b.health != nil {
		opts = append(opts, WithHealthcheck(b.health))
	}

	log.InfoContext(ctx, "session storage ready", logger.Storage(name))
	return New(opts...), b.close, nil
}

type backend struct {
	storage session.Storage
	close   CloseFunc
	health  func(context.Context) error
}

// connect returns a nil storage for the built-in memory backend.
func connect(ctx context.Context, name, namespace string, codec snapshot.Codec, log *slog.Logger) (backend, error) {
	switch name {
	case BackendMemory:
		return backend{close: noopClose}, nil

	case BackendFile:
		var cfg file.LocalConfig
		if err := config.Parse(&cfg); err != nil {
			return backend{}, err
		}
		s, err := file.NewLocalStorageFromConfig(cfg, file.WithLocalCodec(codec))
		if err != nil {
			return backend{}, err
		}
		return backend{storage: s, close: noopClose}, nil

	case BackendS3:
		var cfg file.S3Config
		if err := config.Parse(&cfg); err != nil {
			return backend{}, err
		}
		s, err := file.NewS3Storage(ctx, cfg, file.WithS3Codec(codec))
		if err != nil {
			return backend{}, err
		}
		return backend{storage: s, close: noopClose}, nil

	case BackendSQLite:
		var cfg sqlite.Config
		if err := config.Parse(&cfg); err != nil {
			return backend{}, err
		}
		db, err := sqlite.Open(ctx, cfg)
		if err != nil {
			return backend{}, err
		}
		s := sqlite.NewStorageFromConfig(db, cfg, sqlite.WithName(namespace), sqlite.WithCodec(codec))
		return backend{
			storage: s,
			close:   func(context.Context) error { return db.Close() },
			health:  db.PingContext,
		}, nil

	case BackendRedis:
		var cfg redis.Config
		if err := config.Parse(&cfg); err != nil {
			return backend{}, err
		}
		client, err := redis.Connect(ctx, cfg)
		if err != nil {
			return backend{}, err
		}
		s := redis.NewStorageFromConfig(client, cfg, redis.WithKey(namespace), redis.WithCodec(codec))
		return backend{
			storage: s,
			close:   func(context.Context) error { return client.Close() },
			health:  redis.Healthcheck(client),
		}, nil

	case BackendPostgres:
		var cfg pg.Config
		if err := config.Parse(&cfg); err != nil {
			return backend{}, err
		}
		pool, err := pg.Connect(ctx, cfg)
		if err != nil {
			return backend{}, err
		}
		if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
			pool.Close()
			return backend{}, err
		}
		s := pg.NewStorageFromConfig(pool, cfg, pg.WithName(namespace), pg.WithCodec(codec))
		return backend{
			storage: s,
			close:   func(context.Context) error { pool.Close(); return nil },
			health:  pg.Healthcheck(pool),
		}, nil

	case BackendMongo:
		var cfg mongo.Config
		if err := config.Parse(&cfg); err != nil {
			return backend{}, err
		}
		client, err := mongo.New(ctx, cfg)
		if err != nil {
			return backend{}, err
		}
		coll := client.Database(cfg.Database).Collection(cfg.Collection)
		s := mongo.NewStorageFromConfig(coll, cfg, mongo.WithName(namespace), mongo.WithCodec(codec))
		return backend{
			storage: s,
			close:   client.Disconnect,
			health:  mongo.Healthcheck(client),
		}, nil

	default:
		return backend{}, fmt.Errorf("%w: %q", ErrUnsupportedBackend, name)
	}
}

// Close runs every close function and joins their errors.
func Close(ctx context.Context, fns ...CloseFunc) error {
	var errs []error
	for _, fn := range fns {
		if fn == nil {
			continue
		}
		if err := fn(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
