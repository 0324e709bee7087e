package sqlite_test

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/snapshot"
	"github.com/dmitrymomot/sessionkit/pkg/sqlite"
)

func openDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sqlite.Open(context.Background(), sqlite.Config{
		Path:        filepath.Join(t.TempDir(), "sessions.db"),
		BusyTimeout: time.Second,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	t.Run("empty path", func(t *testing.T) {
		_, err := sqlite.Open(ctx, sqlite.Config{})
		assert.ErrorIs(t, err, sqlite.ErrEmptyPath)
	})

	t.Run("in memory", func(t *testing.T) {
		db, err := sqlite.Open(ctx, sqlite.Config{Path: ":memory:"})
		require.NoError(t, err)
		defer db.Close()

		var count int
		require.NoError(t, db.QueryRow(`SELECT count(*) FROM session_snapshots`).Scan(&count))
		assert.Equal(t, 0, count)
	})

	t.Run("reopen is idempotent", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "sessions.db")
		for range 2 {
			db, err := sqlite.Open(ctx, sqlite.Config{Path: path})
			require.NoError(t, err)
			require.NoError(t, db.Close())
		}
		assert.FileExists(t, path)
	})
}

func TestStorage(t *testing.T) {
	ctx := context.Background()

	t.Run("load before save", func(t *testing.T) {
		storage := sqlite.NewStorage(openDB(t))

		table, err := storage.Load(ctx)
		assert.NoError(t, err)
		assert.Nil(t, table)
	})

	t.Run("save overwrites", func(t *testing.T) {
		storage := sqlite.NewStorage(openDB(t))

		require.NoError(t, storage.Save(ctx, session.Table{"a": {"x": 1}}))
		require.NoError(t, storage.Save(ctx, session.Table{"b": {"y": "z"}}))

		table, err := storage.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.Table{"b": {"y": "z"}}, table)
	})

	t.Run("snapshots are isolated by name", func(t *testing.T) {
		db := openDB(t)
		first := sqlite.NewStorageFromConfig(db, sqlite.Config{SnapshotName: "first"})
		second := sqlite.NewStorage(db, sqlite.WithName("second"), sqlite.WithCodec(snapshot.YAML))

		require.NoError(t, first.Save(ctx, session.Table{"a": {}}))
		require.NoError(t, second.Save(ctx, session.Table{"b": {"n": 1}}))

		table, err := first.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.Table{"a": {}}, table)

		table, err = second.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.Table{"b": {"n": 1}}, table)
	})

	t.Run("drop", func(t *testing.T) {
		storage := sqlite.NewStorage(openDB(t))

		require.NoError(t, storage.Save(ctx, session.Table{"a": {}}))
		require.NoError(t, storage.Drop(ctx))
		require.NoError(t, storage.Drop(ctx))

		table, err := storage.Load(ctx)
		require.NoError(t, err)
		assert.Nil(t, table)
	})

	t.Run("closed database", func(t *testing.T) {
		db := openDB(t)
		require.NoError(t, db.Close())
		storage := sqlite.NewStorage(db)

		assert.ErrorIs(t, storage.Save(ctx, session.Table{}), sqlite.ErrSnapshotWrite)
		_, err := storage.Load(ctx)
		assert.ErrorIs(t, err, sqlite.ErrSnapshotRead)
	})
}

func TestStorage_Registry(t *testing.T) {
	ctx := context.Background()
	db := openDB(t)

	first, err := session.New(ctx, session.WithStorage(sqlite.NewStorage(db)))
	require.NoError(t, err)

	h, err := first.Create(ctx, "u1", session.Record{"name": "Ann"})
	require.NoError(t, err)
	_, err = h.Set(ctx, "age", 30)
	require.NoError(t, err)

	second, err := session.New(ctx, session.WithStorage(sqlite.NewStorage(db)))
	require.NoError(t, err)

	h, err = second.Get(ctx, "u1")
	require.NoError(t, err)
	age, ok := h.Int("age")
	assert.True(t, ok)
	assert.Equal(t, 30, age)
	name, _ := h.String("name")
	assert.Equal(t, "Ann", name)
}
