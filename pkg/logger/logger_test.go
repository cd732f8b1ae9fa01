package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		enabled  string
		disabled string
	}{
		{"debug level", "debug", "debug", ""},
		{"warn level", "warn", "error", "info"},
		{"error level", "ERROR", "error", "warn"},
		{"default info", "", "info", "debug"},
		{"unknown falls back to info", "verbose", "info", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, err := New("", tt.level)
			require.NoError(t, err)
			defer log.Close()

			assert.True(t, log.Enabled(tt.enabled))
			if tt.disabled != "" {
				assert.False(t, log.Enabled(tt.disabled))
			}
		})
	}
}

func TestWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "board.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("booking created: id=%s", "abc")
	log.Debug("suppressed line")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "booking created: id=abc")
	assert.NotContains(t, string(data), "suppressed line")
}

func TestNewFailsOnBadPath(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "missing", "dir", "board.log"), "info")
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	log := NewNop()
	log.Info("nothing %d", 1)
	log.Warn("nothing")
	log.Error("nothing")
	assert.NoError(t, log.Close())
}
