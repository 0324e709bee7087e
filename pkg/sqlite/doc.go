// Package sqlite stores session snapshots in an embedded SQLite database.
//
// It uses the cgo-free modernc.org/sqlite driver, so the session kit builds
// with CGO_ENABLED=0. Open prepares the database (pragmas plus the embedded
// schema) and Storage keeps the encoded session table in one row of the
// session_snapshots table, the same layout the pg package uses.
//
//	db, err := sqlite.Open(ctx, sqlite.Config{Path: "data/sessions.db", BusyTimeout: 5 * time.Second})
//	if err != nil {
//	    return err
//	}
//	defer db.Close()
//
//	registry, err := session.New(ctx, session.WithStorage(sqlite.NewStorage(db)))
package sqlite
