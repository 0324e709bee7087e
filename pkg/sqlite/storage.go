package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/snapshot"
)

const (
	upsertSnapshotQuery = `INSERT INTO session_snapshots (name, payload, updated_at)
VALUES (?, ?, strftime('%Y-%m-%dT%H:%M:%fZ', 'now'))
ON CONFLICT (name) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`
	selectSnapshotQuery = `SELECT payload FROM session_snapshots WHERE name = ?`
	deleteSnapshotQuery = `DELETE FROM session_snapshots WHERE name = ?`
)

// Storage implements session.Storage with one row of the session_snapshots table.
type Storage struct {
	db    *sql.DB
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

// NewStorage creates a SQLite-backed session storage over a database opened with Open.
func NewStorage(db *sql.DB, opts ...StorageOption) *Storage {
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
func NewStorageFromConfig(db *sql.DB, cfg Config, opts ...StorageOption) *Storage {
	return NewStorage(db, append([]StorageOption{WithName(cfg.SnapshotName)}, opts...)...)
}

// Save upserts the snapshot row.
func (s *Storage) Save(ctx context.Context, table session.Table) error {
	data, err := s.codec.Marshal(table)
	if err != nil {
		return err
	}
	if _, err := s.db.ExecContext(ctx, upsertSnapshotQuery, s.name, data); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}

// Load returns nil when the snapshot row does not exist.
func (s *Storage) Load(ctx context.Context) (session.Table, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, selectSnapshotQuery, s.name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrSnapshotRead, err)
	}
	return s.codec.Unmarshal(data)
}

// Drop deletes the snapshot row.
func (s *Storage) Drop(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, deleteSnapshotQuery, s.name); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}
