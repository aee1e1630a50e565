package logger

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"github.com/yourusername/eduquiz-api/internal/config"
)

func TestNew_LevelFromConfig(t *testing.T) {
	log, err := New(config.LogConfig{Level: "warn", File: filepath.Join(t.TempDir(), "app.log"), MaxSizeMB: 1})
	require.NoError(t, err)

	assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, log.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_EmptyLevelDefaultsToInfo(t *testing.T) {
	log, err := New(config.LogConfig{})
	require.NoError(t, err)

	assert.True(t, log.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, log.Core().Enabled(zapcore.DebugLevel))
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New(config.LogConfig{Level: "loud"})
	assert.Error(t, err)
}
