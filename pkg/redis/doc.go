// Package redis stores session snapshots in Redis.
//
// The package wraps the go-redis client and adds:
//
//   - Connect, which retries the initial connection using Config.
//   - Storage, a session.Storage that keeps the whole encoded session table
//     under a single key (REDIS_SESSION_KEY, "sessions" by default).
//   - Healthcheck, a ping probe for liveness / readiness checks.
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	registry, err := session.New(ctx,
//	    session.WithStorage(redis.NewStorageFromConfig(client, cfg)),
//	)
//
// A missing key (redis.Nil) is reported as "nothing saved yet", so a fresh
// database yields an empty registry.
//
// # Errors
//
// Sentinel errors (ErrRedisNotReady, ErrSnapshotRead, ...) wrap the underlying
// go-redis errors with errors.Join and can be matched with errors.Is.
package redis
