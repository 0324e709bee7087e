package pg

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/snapshot"
)

const (
	upsertSnapshotQuery = `INSERT INTO session_snapshots (name, payload, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (name) DO UPDATE SET payload = EXCLUDED.payload, updated_at = EXCLUDED.updated_at`
	selectSnapshotQuery = `SELECT payload FROM session_snapshots WHERE name = $1`
	deleteSnapshotQuery = `DELETE FROM session_snapshots WHERE name = $1`
)

// Querier is the subset of pgx used by Storage. *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Storage implements session.Storage with one row of the session_snapshots table.
// Run Migrate before first use.
type Storage struct {
	db    Querier
	name  string
	codec snapshot.Codec
}

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithName sets the row key of the snapshot. Empty names are ignored.
func WithName(name string) StorageOption {
	return func(s *Storage) {
		if name != "" {
			s.name = name
		}
	}
}

// WithCodec sets the snapshot codec. Defaults to JSON.
func WithCodec(codec snapshot.Codec) StorageOption {
	return func(s *Storage) {
		if codec != nil {
			s.codec = codec
		}
	}
}

// NewStorage creates a PostgreSQL-backed session storage.
func NewStorage(db Querier, opts ...StorageOption) *Storage {
	s := &Storage{
		db:    db,
		name:  "sessions",
		codec: snapshot.JSON,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStorageFromConfig creates a storage using the snapshot name from cfg.
func NewStorageFromConfig(db Querier, cfg Config, opts ...StorageOption) *Storage {
	return NewStorage(db, append([]StorageOption{WithName(cfg.SnapshotName)}, opts...)...)
}

// Save upserts the snapshot row.
func (s *Storage) Save(ctx context.Context, table session.Table) error {
	data, err := s.codec.Marshal(table)
	if err != nil {
		return err
	}
	if _, err := s.db.Exec(ctx, upsertSnapshotQuery, s.name, data); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}

// Load returns nil when the snapshot row does not exist.
func (s *Storage) Load(ctx context.Context) (session.Table, error) {
	var data []byte
	if err := s.db.QueryRow(ctx, selectSnapshotQuery, s.name).Scan(&data); err != nil {
		if IsNotFoundError(err) {
			return nil, nil
		}
		return nil, errors.Join(ErrSnapshotRead, err)
	}
	return s.codec.Unmarshal(data)
}

// Drop deletes the snapshot row.
func (s *Storage) Drop(ctx context.Context) error {
	if _, err := s.db.Exec(ctx, deleteSnapshotQuery, s.name); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}
