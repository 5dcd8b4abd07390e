package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	t.Run("set and get", func(t *testing.T) {
		t.Parallel()
		ctx := SetTraceID(context.Background())
		traceID := GetTraceID(ctx)
		require.NotEmpty(t, traceID)
		assert.Len(t, traceID, TraceIDLength*2) // hex encoding doubles the length
	})

	t.Run("unset context returns empty", func(t *testing.T) {
		t.Parallel()
		assert.Empty(t, GetTraceID(context.Background()))
	})

	t.Run("ids are unique per request", func(t *testing.T) {
		t.Parallel()
		first := GetTraceID(SetTraceID(context.Background()))
		second := GetTraceID(SetTraceID(context.Background()))
		assert.NotEqual(t, first, second)
	})
}

func TestUserIDFromContext(t *testing.T) {
	t.Parallel()

	t.Run("present", func(t *testing.T) {
		t.Parallel()
		ctx := context.WithValue(context.Background(), UserIDContextKey, int64(42))
		id, ok := UserIDFromContext(ctx)
		assert.True(t, ok)
		assert.Equal(t, int64(42), id)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()
		_, ok := UserIDFromContext(context.Background())
		assert.False(t, ok)
	})

	t.Run("zero value is treated as absent", func(t *testing.T) {
		t.Parallel()
		ctx := context.WithValue(context.Background(), UserIDContextKey, int64(0))
		_, ok := UserIDFromContext(ctx)
		assert.False(t, ok)
	})

	t.Run("wrong type is treated as absent", func(t *testing.T) {
		t.Parallel()
		ctx := context.WithValue(context.Background(), UserIDContextKey, "42")
		_, ok := UserIDFromContext(ctx)
		assert.False(t, ok)
	})
}
