package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestHandle_Values(t *testing.T) {
	ctx := context.Background()
	registry := newRegistry(t)

	h, err := registry.Create(ctx, "a", session.Record{"x": 1})
	require.NoError(t, err)

	t.Run("returned record is a copy", func(t *testing.T) {
		values := h.Values()
		values["x"] = 2
		values["y"] = 3

		assert.Equal(t, session.Record{"x": 1}, h.Values())
	})

	t.Run("missing key", func(t *testing.T) {
		v, ok := h.Value("missing")
		assert.False(t, ok)
		assert.Nil(t, v)
	})
}

func TestHandle_SetDelete(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()
	registry := newRegistry(t, session.WithStorage(storage))

	h, err := registry.Create(ctx, "a", nil)
	require.NoError(t, err)

	t.Run("set returns self", func(t *testing.T) {
		same, err := h.Set(ctx, "k", "v")
		require.NoError(t, err)
		assert.Same(t, h, same)

		v, ok := h.Value("k")
		assert.True(t, ok)
		assert.Equal(t, "v", v)
	})

	t.Run("set nil value keeps key", func(t *testing.T) {
		_, err := h.Set(ctx, "nil", nil)
		require.NoError(t, err)

		v, ok := h.Value("nil")
		assert.True(t, ok)
		assert.Nil(t, v)
	})

	t.Run("delete removes key", func(t *testing.T) {
		_, err := h.Set(ctx, "keep", 1)
		require.NoError(t, err)

		same, err := h.Delete(ctx, "k")
		require.NoError(t, err)
		assert.Same(t, h, same)

		_, ok := h.Value("k")
		assert.False(t, ok)
		assert.NotContains(t, h.Values(), "k")
		assert.Equal(t, 1, h.Values()["keep"])

		table, err := storage.Load(ctx)
		require.NoError(t, err)
		assert.NotContains(t, table["a"], "k")
	})

	t.Run("delete missing key", func(t *testing.T) {
		before := h.Values()
		_, err := h.Delete(ctx, "never-set")
		require.NoError(t, err)
		assert.Equal(t, before, h.Values())
	})
}

func TestHandle_Reset(t *testing.T) {
	ctx := context.Background()
	storage := session.NewMemoryStorage()
	registry := newRegistry(t, session.WithStorage(storage))

	h, err := registry.Create(ctx, "a", session.Record{"x": 1, "y": 2})
	require.NoError(t, err)

	same, err := h.Reset(ctx)
	require.NoError(t, err)
	assert.Same(t, h, same)
	assert.Equal(t, session.Record{}, h.Values())
	assert.True(t, registry.Has("a"))

	table, err := storage.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, session.Table{"a": {}}, table)
}

func TestHandle_Dropped(t *testing.T) {
	ctx := context.Background()

	for _, safe := range []bool{true, false} {
		registry := newRegistry(t, session.WithSafeMode(safe))

		h, err := registry.Create(ctx, "a", session.Record{"x": 1})
		require.NoError(t, err)
		require.NoError(t, registry.Drop(ctx, "a"))

		assert.False(t, h.Exists())
		assert.Nil(t, h.Values())
		_, ok := h.Value("x")
		assert.False(t, ok)

		_, err = h.Set(ctx, "k", "v")
		assert.ErrorIs(t, err, session.ErrUnknownSession)
		_, err = h.Delete(ctx, "x")
		assert.ErrorIs(t, err, session.ErrUnknownSession)
		_, err = h.Reset(ctx)
		assert.ErrorIs(t, err, session.ErrUnknownSession)

		assert.False(t, registry.Has("a"), "handle must not recreate the record")
	}
}

func TestHandle_TypedGetters(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	registry := newRegistry(t)

	h, err := registry.Create(ctx, "a", session.Record{
		"str":   "value",
		"int":   42,
		"int64": int64(7),
		"float": float64(3),
		"bool":  true,
		"other": []string{"x"},
	})
	require.NoError(t, err)

	tests := []struct {
		name   string
		get    func() (any, bool)
		want   any
		wantOK bool
	}{
		{"string", func() (any, bool) { return h.String("str") }, "value", true},
		{"string wrong type", func() (any, bool) { return h.String("int") }, "", false},
		{"string missing", func() (any, bool) { return h.String("missing") }, "", false},
		{"int", func() (any, bool) { return h.Int("int") }, 42, true},
		{"int from int64", func() (any, bool) { return h.Int("int64") }, 7, true},
		{"int from float64", func() (any, bool) { return h.Int("float") }, 3, true},
		{"int wrong type", func() (any, bool) { return h.Int("other") }, 0, false},
		{"int missing", func() (any, bool) { return h.Int("missing") }, 0, false},
		{"bool", func() (any, bool) { return h.Bool("bool") }, true, true},
		{"bool wrong type", func() (any, bool) { return h.Bool("str") }, false, false},
		{"bool missing", func() (any, bool) { return h.Bool("missing") }, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.get()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}
