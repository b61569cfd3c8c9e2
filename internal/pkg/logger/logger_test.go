package logger

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		wantSlog slog.Level
		wantZap  zapcore.Level
	}{
		{in: "debug", wantSlog: slog.LevelDebug, wantZap: zapcore.DebugLevel},
		{in: " WARN ", wantSlog: slog.LevelWarn, wantZap: zapcore.WarnLevel},
		{in: "error", wantSlog: slog.LevelError, wantZap: zapcore.ErrorLevel},
		{in: "verbose", wantSlog: slog.LevelInfo, wantZap: zapcore.InfoLevel},
		{in: "", wantSlog: slog.LevelInfo, wantZap: zapcore.InfoLevel},
	}
	for _, tt := range tests {
		gotSlog, gotZap := ParseLevel(tt.in)
		assert.Equal(t, tt.wantSlog, gotSlog, tt.in)
		assert.Equal(t, tt.wantZap, gotZap, tt.in)
	}
}

func TestComponentAdapter_WritesThroughZap(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	Init(zap.New(core), "debug")

	NewComponentAdapter("QueryExecutor").Error("Error fetching NFT", "token_id", "29")
	NewSlogAdapter().Debug("plain")

	entries := logs.All()
	if assert.Len(t, entries, 2) {
		assert.Equal(t, "Error fetching NFT", entries[0].Message)
		fields := entries[0].ContextMap()
		assert.Equal(t, "QueryExecutor", fields["component"])
		assert.Equal(t, "29", fields["token_id"])
		assert.Equal(t, "plain", entries[1].Message)
	}
}

func TestNewZapLogger(t *testing.T) {
	l, err := NewZapLogger("info")
	assert.NoError(t, err)
	assert.NotNil(t, l)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}
