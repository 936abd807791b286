package debuglog

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogLevelString(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LevelOff, "OFF"},
		{LogLevel(42), "UNKNOWN"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.level.String())
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
	}{
		{"DEBUG", LevelDebug},
		{"debug", LevelDebug},
		{" info ", LevelInfo},
		{"WARNING", LevelWarn},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"off", LevelOff},
		{"none", LevelOff},
		{"INVALID", LevelInfo},
		{"", LevelInfo},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, ParseLogLevel(test.input), "input %q", test.input)
	}
}

func TestSetup_WritesFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "test.log")

	require.NoError(t, Setup(LevelInfo, logPath))
	assert.Equal(t, LevelInfo, GetLevel())

	Debugf("debug message")
	Infof("info message")
	Warnf("warn message")
	Errorf("error message")

	require.NoError(t, Close())

	content, err := os.ReadFile(logPath)
	require.NoError(t, err)

	logContent := string(content)
	assert.NotContains(t, logContent, "debug message")
	assert.Contains(t, logContent, "[INFO] info message")
	assert.Contains(t, logContent, "[WARN] warn message")
	assert.Contains(t, logContent, "[ERROR] error message")
}

func TestSetup_Off(t *testing.T) {
	require.NoError(t, Setup(LevelOff))
	assert.Equal(t, LevelOff, GetLevel())
	assert.False(t, Enabled(LevelError))

	// Must not panic without a logger.
	Errorf("dropped")
	WithFields(Fields{"k": "v"}).Errorf("dropped")
}

func TestSetOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(LevelWarn, &buf)
	defer Close()

	Infof("quiet")
	Warnf("loud %d", 1)

	assert.NotContains(t, buf.String(), "quiet")
	assert.Contains(t, buf.String(), "loud 1")
	assert.True(t, strings.HasPrefix(buf.String(), "veni "))
}

func TestFieldLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(LevelDebug, &buf)
	defer Close()

	logger := WithFields(Fields{
		"component": "nav",
		"count":     42,
	})
	logger.With(Fields{"action": "jump"}).Infof("test message with fields")

	assert.Contains(t, buf.String(), "test message with fields [action=jump component=nav count=42]")
}

func TestFieldLogger_WithDoesNotMutateParent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(LevelDebug, &buf)
	defer Close()

	parent := WithFields(Fields{"a": 1})
	_ = parent.With(Fields{"b": 2})
	parent.Debugf("parent")

	assert.Contains(t, buf.String(), "parent [a=1]")
}
