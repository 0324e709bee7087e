package session

import "context"

// Storage persists the whole session table as a single snapshot.
// Implementations must report failures synchronously; the registry returns them
// to the caller of the mutating operation unchanged.
type Storage interface {
	// Save replaces the persisted snapshot with the given table.
	// The table must not be retained after Save returns.
	Save(ctx context.Context, snapshot Table) error

	// Load returns the last saved snapshot, or nil if nothing was saved yet.
	Load(ctx context.Context) (Table, error)

	// Drop clears the persisted snapshot.
	Drop(ctx context.Context) error
}
