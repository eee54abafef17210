package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewZapLogger_ValidConfig_CreatesLoggerSuccessfully(t *testing.T) {
	tests := []struct {
		name   string
		config LoggerConfig
	}{
		{
			name:   "development mode",
			config: LoggerConfig{ProcessName: CLIProcess, IsDevelopment: true},
		},
		{
			name:   "production mode",
			config: LoggerConfig{ProcessName: SDKProcess, IsDevelopment: false},
		},
		{
			name:   "no process name",
			config: LoggerConfig{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, err := NewZapLogger(tt.config)

			require.NoError(t, err)
			assert.NotNil(t, logger)
			assert.NotNil(t, logger.sugarLogger)
		})
	}
}

func TestNewZapLogger_FileOutput_WritesStructuredEntries(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "sdk.log")
	logger, err := NewZapLogger(LoggerConfig{
		ProcessName: SDKProcess,
		OutputPaths: []string{logPath},
	})
	require.NoError(t, err)

	logger.With("job_id", 42).Info("Job created", "task_definition_id", 5)
	logger.Debug("not written in production mode")
	_ = logger.Sync()

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)
	out := string(content)
	assert.Contains(t, out, `"msg":"Job created"`)
	assert.Contains(t, out, `"job_id":42`)
	assert.Contains(t, out, `"task_definition_id":5`)
	assert.Contains(t, out, `"logger":"sdk"`)
	assert.False(t, strings.Contains(out, "not written"))
}

func TestNewZapLogger_InvalidOutputPath_ReturnsError(t *testing.T) {
	_, err := NewZapLogger(LoggerConfig{
		OutputPaths: []string{filepath.Join(t.TempDir(), "missing", "dir", "sdk.log")},
	})
	assert.Error(t, err)
}
