package file_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/file"
	"github.com/dmitrymomot/sessionkit/pkg/session"
	"github.com/dmitrymomot/sessionkit/pkg/snapshot"
)

func TestNewLocalStorage(t *testing.T) {
	t.Parallel()

	t.Run("empty path", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewLocalStorage("")
		assert.ErrorIs(t, err, file.ErrInvalidConfig)
	})

	t.Run("path is a directory", func(t *testing.T) {
		t.Parallel()
		_, err := file.NewLocalStorage(t.TempDir())
		assert.ErrorIs(t, err, file.ErrIsDirectory)
	})

	t.Run("creates parent directory", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "nested", "dir", "sessions.json")

		storage, err := file.NewLocalStorage(path)
		require.NoError(t, err)
		assert.Equal(t, path, storage.Path())
		assert.DirExists(t, filepath.Dir(path))
	})

	t.Run("from config", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "sessions.yml")

		storage, err := file.NewLocalStorageFromConfig(file.LocalConfig{Path: path})
		require.NoError(t, err)
		assert.Equal(t, path, storage.Path())
	})
}

func TestLocalStorage(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("load before save", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewLocalStorage(filepath.Join(t.TempDir(), "sessions.json"))
		require.NoError(t, err)

		table, err := storage.Load(ctx)
		assert.NoError(t, err)
		assert.Nil(t, table)
	})

	t.Run("json round trip", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "sessions.json")
		storage, err := file.NewLocalStorage(path)
		require.NoError(t, err)

		require.NoError(t, storage.Save(ctx, session.Table{"a": {"x": 1}}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.JSONEq(t, `{"a":{"x":1}}`, string(raw))

		table, err := storage.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.Table{"a": {"x": float64(1)}}, table)
	})

	t.Run("yaml by extension", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "sessions.yaml")
		storage, err := file.NewLocalStorage(path)
		require.NoError(t, err)

		require.NoError(t, storage.Save(ctx, session.Table{"a": {"x": 1}}))

		raw, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(raw), "x: 1")

		table, err := storage.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, session.Table{"a": {"x": 1}}, table)
	})

	t.Run("codec override", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "sessions.db")
		storage, err := file.NewLocalStorage(path, file.WithLocalCodec(snapshot.YAML), file.WithFileMode(0640))
		require.NoError(t, err)

		require.NoError(t, storage.Save(ctx, session.Table{"a": {}}))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
	})

	t.Run("drop", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "sessions.json")
		storage, err := file.NewLocalStorage(path)
		require.NoError(t, err)

		require.NoError(t, storage.Save(ctx, session.Table{"a": {}}))
		require.NoError(t, storage.Drop(ctx))
		assert.NoFileExists(t, path)

		// Dropping twice is fine
		assert.NoError(t, storage.Drop(ctx))
	})

	t.Run("no temp files left behind", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		storage, err := file.NewLocalStorage(filepath.Join(dir, "sessions.json"))
		require.NoError(t, err)

		for i := range 3 {
			require.NoError(t, storage.Save(ctx, session.Table{"a": {"n": i}}))
		}

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})

	t.Run("corrupted file", func(t *testing.T) {
		t.Parallel()
		path := filepath.Join(t.TempDir(), "sessions.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0600))

		storage, err := file.NewLocalStorage(path)
		require.NoError(t, err)

		_, err = storage.Load(ctx)
		assert.ErrorIs(t, err, snapshot.ErrDecode)
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()
		storage, err := file.NewLocalStorage(filepath.Join(t.TempDir(), "sessions.json"))
		require.NoError(t, err)

		canceled, cancel := context.WithCancel(ctx)
		cancel()

		assert.ErrorIs(t, storage.Save(canceled, session.Table{}), context.Canceled)
		_, err = storage.Load(canceled)
		assert.ErrorIs(t, err, context.Canceled)
		assert.ErrorIs(t, storage.Drop(canceled), context.Canceled)
	})
}

func TestLocalStorage_Registry(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "sessions.yaml")

	storage, err := file.NewLocalStorage(path)
	require.NoError(t, err)

	first, err := session.New(ctx, session.WithStorage(storage))
	require.NoError(t, err)
	_, err = first.Create(ctx, "a", session.Record{"x": 1})
	require.NoError(t, err)

	// A fresh storage over the same file sees the same table
	reopened, err := file.NewLocalStorage(path)
	require.NoError(t, err)

	second, err := session.New(ctx, session.WithStorage(reopened))
	require.NoError(t, err)

	h, err := second.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, session.Record{"x": 1}, h.Values())
}
