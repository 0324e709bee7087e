// Package pg stores session snapshots in PostgreSQL using the pgx/v5 driver.
//
// Parts:
//
//   - Config: populated from environment variables via caarlos0/env. It
//     controls pool limits, retry cadence, the goose version table and the
//     snapshot row key.
//
//   - Connect: opens a *pgxpool.Pool, retrying with linear back-off until the
//     database answers a ping.
//
//   - Migrate: applies the embedded goose migrations that create the
//     session_snapshots table, routing goose output through slog.
//
//   - Storage: a session.Storage that keeps the encoded session table in one
//     row of session_snapshots.
//
//   - Healthcheck: a ping probe for readiness checks.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.Migrate(ctx, pool, cfg, slog.Default()); err != nil {
//	    return err
//	}
//
//	registry, err := session.New(ctx,
//	    session.WithStorage(pg.NewStorageFromConfig(pool, cfg)),
//	)
//
// # Error Handling
//
// A missing snapshot row (pgx.ErrNoRows, see IsNotFoundError) means nothing
// was saved yet. Other failures are joined with ErrSnapshotRead or
// ErrSnapshotWrite.
package pg
