// Package session provides an in-process registry of named, mutable session
// records backed by a pluggable storage adapter.
//
// A Registry owns a table that maps session identifiers to flat key/value
// records. Every mutation updates the table and then saves the whole table as
// one snapshot through a Storage. The default MemoryStorage keeps the snapshot
// in memory; durable adapters live in the backend packages (redis, pg, mongo,
// sqlite, file) and encode the table with the snapshot package.
//
// # Safe mode
//
// Safe mode is on by default. While it is on, Create refuses identifiers that
// already have a record (ErrDuplicateSession) and Get refuses identifiers
// without one (ErrUnknownSession). With safe mode off, Create merges into an
// existing record and Get creates an empty record on first access.
//
// # Usage
//
//	registry, err := session.New(ctx,
//	    session.WithStorage(session.NewMemoryStorage()),
//	    session.WithSafeMode(true),
//	)
//	if err != nil {
//	    return err
//	}
//
//	h, err := registry.Create(ctx, "u1", session.Record{"name": "Ann"})
//	if err != nil {
//	    return err
//	}
//	if _, err := h.Set(ctx, "age", 30); err != nil {
//	    return err
//	}
//	h.Values() // {"name": "Ann", "age": 30}
//
// Handles are views: they hold no data and always read the live record. A
// handle whose session was dropped returns nil from Values, and its mutating
// methods fail with ErrUnknownSession instead of recreating the record.
//
// Identifiers are opaque strings. Values stored in records must be
// serializable by the codec of a durable adapter; the in-memory storage accepts
// anything.
//
// # Error Handling
//
//   - ErrDuplicateSession: Create with safe mode on and a live id
//   - ErrUnknownSession: Get with safe mode on and a missing id, or a
//     mutation through a handle whose session was dropped
//
// Storage errors are returned unchanged. The in-memory table keeps the
// mutation even if persisting it failed.
package session
