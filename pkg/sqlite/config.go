package sqlite

import "time"

type Config struct {
	Path         string        `env:"SQLITE_PATH" envDefault:"data/sessions.db"`    // Path is the database file; ":memory:" keeps it in process memory.
	BusyTimeout  time.Duration `env:"SQLITE_BUSY_TIMEOUT" envDefault:"5s"`          // BusyTimeout is how long a writer waits for a lock.
	SnapshotName string        `env:"SQLITE_SESSION_SNAPSHOT" envDefault:"sessions"` // SnapshotName is the row key of the session snapshot.
}
