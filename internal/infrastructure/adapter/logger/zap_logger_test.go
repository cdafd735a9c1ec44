package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/arcanumspy/credit-ledger/internal/domain/port/core"
)

func TestZapLogger_LevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerFromCore(obsCore, core.LogLevelWarn)

	l.Debug("debug entry", nil)
	l.Info("info entry", nil)
	l.Warn("warn entry", map[string]any{"user_id": "u-1"})
	l.Error("error entry", map[string]any{"error": errors.New("boom")})

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "warn entry", entries[0].Message)
	assert.Equal(t, "u-1", entries[0].ContextMap()["user_id"])
	assert.Equal(t, "error entry", entries[1].Message)
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])

	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("debug after", nil)
	assert.Equal(t, 3, logs.Len())
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger(Options{Production: true, Level: core.LogLevelInfo, Service: "credit-ledger"})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelInfo, l.GetLevel())
	l.Info("started", map[string]any{"port": 8080})
}

func TestNoopLogger(t *testing.T) {
	l := NewNoopLogger()
	l.SetLevel(core.LogLevelError)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
	l.Error("ignored", nil)
	assert.NoError(t, l.Flush())
}
