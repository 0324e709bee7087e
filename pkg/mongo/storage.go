package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/snapshot"
)

// Collection is the subset of *mongo.Collection used by Storage.
type Collection interface {
	FindOne(ctx context.Context, filter any, opts ...options.Lister[options.FindOneOptions]) *mongo.SingleResult
	ReplaceOne(ctx context.Context, filter any, replacement any, opts ...options.Lister[options.ReplaceOptions]) (*mongo.UpdateResult, error)
	DeleteOne(ctx context.Context, filter any, opts ...options.Lister[options.DeleteOneOptions]) (*mongo.DeleteResult, error)
}

// snapshotDocument is the stored shape of a snapshot.
// The payload stays an opaque codec blob so record values keep codec semantics.
type snapshotDocument struct {
	ID        string    `bson:"_id"`
	Payload   []byte    `bson:"payload"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Storage implements session.Storage with one document of a collection.
type Storage struct {
	coll  Collection
	name  string
	codec snapshot.Codec
	now   func() time.Time
}

// StorageOption configures a Storage.
type StorageOption func(*Storage)

// WithName sets the _id of the snapshot document. Empty names are ignored.
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

// WithClock overrides the time source used for updated_at.
func WithClock(now func() time.Time) StorageOption {
	return func(s *Storage) {
		if now != nil {
			s.now = now
		}
	}
}

// NewStorage creates a MongoDB-backed session storage.
func NewStorage(coll Collection, opts ...StorageOption) *Storage {
	s := &Storage{
		coll:  coll,
		name:  "sessions",
		codec: snapshot.JSON,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewStorageFromConfig creates a storage using the snapshot name from cfg.
func NewStorageFromConfig(coll Collection, cfg Config, opts ...StorageOption) *Storage {
	return NewStorage(coll, append([]StorageOption{WithName(cfg.SnapshotName)}, opts...)...)
}

// Save replaces the snapshot document, inserting it on first save.
func (s *Storage) Save(ctx context.Context, table session.Table) error {
	data, err := s.codec.Marshal(table)
	if err != nil {
		return err
	}

	doc := snapshotDocument{
		ID:        s.name,
		Payload:   data,
		UpdatedAt: s.now().UTC(),
	}
	if _, err := s.coll.ReplaceOne(ctx, s.filter(), doc, options.Replace().SetUpsert(true)); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}

// Load returns nil when the snapshot document does not exist.
func (s *Storage) Load(ctx context.Context) (session.Table, error) {
	var doc snapshotDocument
	if err := s.coll.FindOne(ctx, s.filter()).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, errors.Join(ErrSnapshotRead, err)
	}
	return s.codec.Unmarshal(doc.Payload)
}

// Drop deletes the snapshot document.
func (s *Storage) Drop(ctx context.Context) error {
	if _, err := s.coll.DeleteOne(ctx, s.filter()); err != nil {
		return errors.Join(ErrSnapshotWrite, err)
	}
	return nil
}

func (s *Storage) filter() bson.D {
	return bson.D{{Key: "_id", Value: s.name}}
}
