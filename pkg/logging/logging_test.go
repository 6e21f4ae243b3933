package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			runID := SetupLogger(tt.verbosity)

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())
			assert.Len(t, runID, 36)

			logPath := filepath.Join(tempDir, "dotdoctor", "dotdoctor.log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should be created")
		})
	}
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")
	assert.Equal(t, filepath.Join("/custom/state", "dotdoctor", "dotdoctor.log"), getLogFilePath())
	assert.Equal(t, getLogFilePath(), LogFilePath())
}

func TestComponentLogger(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	logger := GetLogger("drift")
	logger.Info().Msg("classified")

	assert.Contains(t, buf.String(), `"component":"drift"`)
	assert.Contains(t, buf.String(), "classified")
}

func TestLogCommand(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	LogCommand("stow", []string{"--no", "ssh"})

	output := buf.String()
	assert.Contains(t, output, "stow")
	assert.Contains(t, output, "--no")
	assert.Contains(t, output, "Executing command")
}

func TestLogOperationStart(t *testing.T) {
	var buf bytes.Buffer
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	logger := zerolog.New(&buf)

	done := LogOperationStart(logger, "plan")
	require.Contains(t, buf.String(), "Operation started")
	done()
	assert.Contains(t, buf.String(), "Operation completed")

	buf.Reset()
	log.Logger = zerolog.New(&buf)
	LogDuration(time.Now(), "aggregate")
	assert.Contains(t, buf.String(), "aggregate")
}

func TestWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := WithFields(map[string]interface{}{"package": "ssh"})
	logger.Info().Msg("fields")

	assert.Contains(t, buf.String(), `"package":"ssh"`)
}
