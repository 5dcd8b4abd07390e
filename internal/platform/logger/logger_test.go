package logger

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jvasquezan/tareas-api/internal/config"
)

func TestSetup(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
	}{
		{"debug level", "debug"},
		{"info level", "info"},
		{"warn level", "warn"},
		{"error level", "error"},
		{"mixed case", "DEBUG"},
		{"invalid falls back to info", "verbose"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := Setup(config.ServerConfig{Port: 3000, LogLevel: tt.logLevel})
			require.NoError(t, err)
			require.NotNil(t, logger)
			assert.Same(t, logger, slog.Default())
		})
	}
}

func TestContextLogger(t *testing.T) {
	t.Parallel()

	stored := slog.New(slog.NewTextHandler(io.Discard, nil))
	fallback := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("FromContext returns stored logger", func(t *testing.T) {
		t.Parallel()
		ctx := WithLogger(context.Background(), stored)
		assert.Same(t, stored, FromContext(ctx))
	})

	t.Run("FromContext falls back to default", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, slog.Default(), FromContext(context.Background()))
	})

	t.Run("FromContextOrDefault prefers stored logger", func(t *testing.T) {
		t.Parallel()
		ctx := WithLogger(context.Background(), stored)
		assert.Same(t, stored, FromContextOrDefault(ctx, fallback))
	})

	t.Run("FromContextOrDefault uses fallback", func(t *testing.T) {
		t.Parallel()
		assert.Same(t, fallback, FromContextOrDefault(context.Background(), fallback))
	})
}
