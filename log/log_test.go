package log

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLevelFromString(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, levelFromString("debug"))
	assert.Equal(t, zapcore.ErrorLevel, levelFromString("error"))
	assert.Equal(t, zapcore.InfoLevel, levelFromString("bogus"))
}

func TestLoggerOutput(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.log")
	Init("info", out)
	defer Init("error", "stderr")

	Debugw("hidden", "g", 5)
	Infow("generated keypair", "ski", "abc123")
	Errorf("cannot load key: %v", "missing")
	Sync()

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	text := string(data)
	assert.False(t, strings.Contains(text, "hidden"))
	assert.Contains(t, text, "generated keypair")
	assert.Contains(t, text, "abc123")
	assert.Contains(t, text, "cannot load key: missing")
}
