package ndvec

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger(buf *bytes.Buffer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: level}))
}

func TestLogger(t *testing.T) {
	t.Run("IgnoredMutate", func(t *testing.T) {
		var buf bytes.Buffer
		v, err := New(2, WithLogger(newBufferLogger(&buf, slog.LevelDebug)))
		require.NoError(t, err)

		v.Mutate(5, 0, 1)

		out := buf.String()
		assert.Contains(t, out, "mutate ignored")
		assert.Contains(t, out, "axis=5")
		assert.Contains(t, out, "dimension=2")
	})

	t.Run("ValidMutateIsSilent", func(t *testing.T) {
		var buf bytes.Buffer
		v, err := New(2, WithLogger(newBufferLogger(&buf, slog.LevelDebug)))
		require.NoError(t, err)

		v.Mutate(1, 0, 1)
		assert.Empty(t, buf.String())
	})

	t.Run("RejectedSwapIsWarning", func(t *testing.T) {
		var buf bytes.Buffer
		v, err := New(2, WithLogger(newBufferLogger(&buf, slog.LevelWarn)))
		require.NoError(t, err)

		require.NoError(t, v.Swap(0, 1))
		assert.Empty(t, buf.String(), "successful swaps log at debug level")

		require.Error(t, v.Swap(0, 9))
		assert.Contains(t, buf.String(), "level=WARN")
		assert.Contains(t, buf.String(), "swap rejected")
	})

	t.Run("Revert", func(t *testing.T) {
		var buf bytes.Buffer
		v, err := New(3, WithLogger(newBufferLogger(&buf, slog.LevelDebug)), WithRevertMode(RevertClear))
		require.NoError(t, err)

		require.NoError(t, v.Swap(0, 1))
		v.Revert()

		assert.Contains(t, buf.String(), "revert completed")
		assert.Contains(t, buf.String(), "mode=clear")
		assert.Contains(t, buf.String(), "replayed=1")
	})

	t.Run("NilLoggerFallsBack", func(t *testing.T) {
		v, err := New(1, WithLogger(nil))
		require.NoError(t, err)

		assert.NotPanics(t, func() { v.Mutate(3, 3, 3) })
	})

	t.Run("WithAxis", func(t *testing.T) {
		var buf bytes.Buffer
		l := newBufferLogger(&buf, slog.LevelInfo).WithAxis(4)

		l.Info("hello")
		assert.Contains(t, buf.String(), "axis=4")
	})

	t.Run("NoopLogger", func(t *testing.T) {
		l := NoopLogger()
		assert.False(t, l.Enabled(t.Context(), slog.LevelError))
	})
}
