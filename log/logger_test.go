package log

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Level
	}{
		{"debug level", "debug", LevelDebug},
		{"info level", "info", LevelInfo},
		{"warn level", "warn", LevelWarn},
		{"warning alias", "warning", LevelWarn},
		{"error level", "error", LevelError},
		{"uppercase", "DEBUG", LevelDebug},
		{"padded", "  info ", LevelInfo},
		{"invalid level", "invalid", defaultLevel},
		{"empty string", "", defaultLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, LevelFromString(tc.input))
		})
	}
}

func TestNullLogger(t *testing.T) {
	logger := NewNullLogger()

	logger.Debug("debug message", "key", "value")
	logger.Error("error message", "key", "value")

	withLogger := logger.With("context", "value")
	require.IsType(t, &NullLogger{}, withLogger)
}

func TestStructuredLoggerWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, LevelInfo)

	logger.Debug("hidden")
	logger.With("root", "/srv").Info("validated", "path", "/srv/a.txt")

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.Contains(t, out, "validated")
	require.Contains(t, out, "root=/srv")
	require.Contains(t, out, "path=/srv/a.txt")
	require.Contains(t, out, "caller=log/logger_test.go")
}

func TestContextFunctions(t *testing.T) {
	logger := NewNullLogger()

	ctx := WithLogger(context.Background(), logger)
	require.Equal(t, logger, Ctx(ctx))

	// No logger in the context falls back to a structured logger
	require.IsType(t, &StructuredLogger{}, Ctx(context.Background()))
}

func TestFormatCaller(t *testing.T) {
	require.Equal(t, "walk/walk.go:12", formatCaller("/src/fsbox/walk/walk.go", 12))
	require.Equal(t, "main.go:3", formatCaller("main.go", 3))
}
