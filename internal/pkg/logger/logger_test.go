package logger

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewZapLogger_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "sitetrack.log")

	l, err := NewZapLogger(ZapConfig{Level: "debug", FilePath: path, Type: TypeFile, Service: "sitetrack"})
	require.NoError(t, err)

	l.Info("beacon entered range", BeaconID("b-1"), StationID("s-1"))
	require.NoError(t, l.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"beacon entered range"`)
	assert.Contains(t, string(data), `"beacon_id":"b-1"`)
	assert.Contains(t, string(data), `"service":"sitetrack"`)
	assert.Equal(t, path, l.GetFilePath())
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapConfig{Level: "loud", Type: TypeConsole})
	require.NoError(t, err)
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
}

func TestRequestIDFromContext(t *testing.T) {
	assert.Empty(t, RequestIDFromContext(context.Background()))

	ctx := ContextWithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", RequestIDFromContext(ctx))
}

func TestGlobalLogger(t *testing.T) {
	nop := NewNopLogger()
	SetGlobalLogger(nop)
	assert.Same(t, nop, GetGlobalLogger())

	// must not panic
	Info("info")
	InfoCtx(ContextWithRequestID(context.Background(), "r"), "info with request")
}
