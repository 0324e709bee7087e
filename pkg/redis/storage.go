package redis

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/snapshot"
)

// Client is the subset of the go-redis API used by Storage.
// redis.UniversalClient satisfies it.
type Client interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Storage implements session.Storage by keeping the encoded snapshot under one key.
type Storage struct {
	db    Client
	key   string
	codec snapshot.Codec
}

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithKey sets the key holding the snapshot. Empty keys are ignored.
func WithKey(key string) StorageOption {
	return func(s *Storage) {
		if key != "" {
			s.key = key
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

// NewStorage creates a Redis-backed session storage.
func NewStorage(client Client, opts ...StorageOption) *Storage {
	s := &Storage{
		db:    client,
		key:   "sessions",
		codec: snapshot.JSON,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStorageFromConfig creates a storage using the snapshot key from cfg.
func NewStorageFromConfig(client Client, cfg Config, opts ...StorageOption) *Storage {
	return NewStorage(client, append([]StorageOption{WithKey(cfg.SnapshotKey)}, opts...)...)
}

// Save writes the snapshot without expiration.
func (s *Storage) Save(ctx context.Context, table session.Table) error {
	data, err := s.codec.Marshal(table)
	if err != nil {
		return err
	}
	if err := s.db.Set(ctx, s.key, data, 0).Err(); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}

// Load returns nil when the key does not exist (redis.Nil).
func (s *Storage) Load(ctx context.Context) (session.Table, error) {
	data, err := s.db.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Join(ErrSnapshotRead, err)
	}
	return s.codec.Unmarshal(data)
}

// Drop deletes the snapshot key.
func (s *Storage) Drop(ctx context.Context) error {
	if err := s.db.Del(ctx, s.key).Err(); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}

// Key returns the key holding the snapshot.
func (s *Storage) Key() string {
	return s.key
}
