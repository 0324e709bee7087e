package session

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// Registry owns the session table and persists it through a Storage on every mutation.
// It is safe for concurrent use: one mutex serializes table access and persistence.
type Registry struct {
	mu       sync.Mutex
	storage  Storage
	safeMode bool
	table    Table
	log      *slog.Logger
}

// New creates a registry and loads the initial table from its storage.
// Defaults: in-memory storage, safe mode on.
func New(ctx context.Context, opts ...Option) (*Registry, error) {
	r := &Registry{
		safeMode: DefaultConfig().SafeMode,
		log:      logger.Discard(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.storage == nil {
		r.storage = NewMemoryStorage()
	}
	r.log = r.log.With(logger.Component("session"))

	table, err := r.storage.Load(ctx)
	if err != nil {
		r.log.ErrorContext(ctx, "failed to load session table", logger.Error(err))
		return nil, err
	}
	if table == nil {
		table = Table{}
	}
	r.table = table
	r.log.DebugContext(ctx, "session table loaded", logger.SessionCount(len(table)))

	return r, nil
}

// Create registers a session and merges data into its record.
// With safe mode on it fails with ErrDuplicateSession if the id is already live.
func (r *Registry) Create(ctx context.Context, id string, data Record) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.ensure(ctx, id, data, false)
}

// Get returns a handle for an existing session.
// With safe mode on it fails with ErrUnknownSession if the id is absent;
// with safe mode off an absent id gets an empty record.
func (r *Registry) Get(ctx context.Context, id string) (*Handle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.table[id]; r.safeMode && !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSession, id)
	}
	return r.ensure(ctx, id, nil, true)
}

// Has reports whether a record exists for id
func (r *Registry) Has(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.table[id]
	return ok
}

// Drop removes the session. Dropping an absent id is not an error.
func (r *Registry) Drop(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.table, id)
	r.log.DebugContext(ctx, "session dropped", logger.SessionID(id))
	return r.persist(ctx)
}

// DropHandle removes the session bound to the handle
func (r *Registry) DropHandle(ctx context.Context, h *Handle) error {
	if h == nil {
		return nil
	}
	return r.Drop(ctx, h.ID())
}

// Purge removes every session and clears the persisted snapshot
func (r *Registry) Purge(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.table = Table{}
	if err := r.storage.Drop(ctx); err != nil {
		r.log.ErrorContext(ctx, "failed to drop session snapshot", logger.Error(err))
		return err
	}
	r.log.DebugContext(ctx, "session table purged")
	return nil
}

// IDs returns the live session identifiers in ascending order
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]string, 0, len(r.table))
	for id := range r.table {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Len returns the number of live sessions
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.table)
}

// SafeMode reports whether safe mode is on
func (r *Registry) SafeMode() bool {
	return r.safeMode
}

// ensure makes sure a record exists for id, merges data into it and persists.
// Caller must hold r.mu.
func (r *Registry) ensure(ctx context.Context, id string, data Record, ignoreSafeMode bool) (*Handle, error) {
	if !r.canCreate(id, ignoreSafeMode) {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateSession, id)
	}

	rec, existed := r.table[id]
	r.table[id] = merge(rec, data)
	if !existed {
		r.log.DebugContext(ctx, "session created", logger.SessionID(id))
	}

	if err := r.persist(ctx); err != nil {
		return nil, err
	}
	return &Handle{id: id, registry: r}, nil
}

// canCreate reports whether a record for id may be created or overlapped.
func (r *Registry) canCreate(id string, ignoreSafeMode bool) bool {
	if ignoreSafeMode || !r.safeMode {
		return true
	}
	_, exists := r.table[id]
	return !exists
}

// update applies fn to the live record of id and persists the result.
// Must not be used to create records: an absent id yields ErrUnknownSession.
func (r *Registry) update(ctx context.Context, id string, fn func(Record) Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.table[id]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownSession, id)
	}
	r.table[id] = fn(rec)
	return r.persist(ctx)
}

// read runs fn against the live record of id under the lock
func (r *Registry) read(id string, fn func(Record, bool)) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.table[id]
	fn(rec, ok)
}

// persist saves the full table. Caller must hold r.mu.
// The table is not rolled back when the storage fails.
func (r *Registry) persist(ctx context.Context) error {
	if err := r.storage.Save(ctx, r.table); err != nil {
		r.log.ErrorContext(ctx, "failed to save session table", logger.Error(err))
		return err
	}
	return nil
}
