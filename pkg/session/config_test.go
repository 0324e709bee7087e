package session_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

func TestNewFromConfig(t *testing.T) {
	ctx := context.Background()

	t.Run("safe mode off", func(t *testing.T) {
		registry, err := session.NewFromConfig(ctx, session.Config{SafeMode: false})
		require.NoError(t, err)
		assert.False(t, registry.SafeMode())

		_, err = registry.Get(ctx, "missing")
		assert.NoError(t, err)
	})

	t.Run("options override config", func(t *testing.T) {
		registry, err := session.NewFromConfig(ctx, session.Config{SafeMode: false},
			session.WithSafeMode(true),
		)
		require.NoError(t, err)
		assert.True(t, registry.SafeMode())
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := session.DefaultConfig()

	assert.True(t, cfg.SafeMode)
}
