package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	t.Run("production is info by default", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		l, err := NewLogger("production")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("development is debug by default", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		l, err := NewLogger("development")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("LOG_LEVEL overrides", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		l, err := NewLogger("development")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, l.Core().Enabled(zapcore.WarnLevel))
	})

	t.Run("invalid LOG_LEVEL is ignored", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		l, err := NewLogger("production")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})
}
