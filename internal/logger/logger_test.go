package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "studyhub.log")

	l, err := New("production", path)
	require.NoError(t, err)
	l.Info("session started")
	_ = l.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"session started"`)
}

func TestNew_DevelopmentLevel(t *testing.T) {
	l, err := New("local", filepath.Join(t.TempDir(), "dev.log"))
	require.NoError(t, err)
	assert.NotNil(t, l.Check(zapcore.DebugLevel, "debug"), "development logger should enable debug")
}

func TestForTerminalUI_NoFile(t *testing.T) {
	l, err := ForTerminalUI("local", "")
	require.NoError(t, err)
	assert.Nil(t, l.Check(zapcore.InfoLevel, "info"), "terminal logger without a file should discard output")
}
