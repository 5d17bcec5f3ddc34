package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"component": "api", "operation": "request_link"})
	log.Info("sending request")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "sending request", entry["message"])
	require.Equal(t, "api", entry["component"])
	require.Equal(t, "request_link", entry["operation"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
}

func TestLoggerErrorIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"status": 500})
	log.Error(errors.New("boom"), "request failed")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "request failed", entry["message"])
	require.EqualValues(t, 500, entry["status"])
	require.Equal(t, "boom", entry["error"])
}

func TestLoggerWithContextAddsCorrelationID(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Writer: buf})
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), "corr-123")
	log.WithContext(ctx).Warn("slow response")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "corr-123", entry["correlation_id"])
	require.Equal(t, "warn", entry["level"])
}

func TestLoggerWithContextWithoutIDReturnsSameLogger(t *testing.T) {
	t.Parallel()

	log := Nop()
	require.Same(t, log, log.WithContext(context.Background()))
}

func TestNilLoggerIsSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Error(errors.New("ignored"), "ignored")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
	})
}

func TestCorrelationIDHelpers(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", CorrelationID(context.Background()))

	id := NewCorrelationID()
	_, err := uuid.Parse(id)
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), id)
	require.Equal(t, id, CorrelationID(ctx))
}

func TestLoggerHumanReadableWritesConsoleLines(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.WithFields(map[string]any{"component": "cli"}).Info("starting")

	out := buf.String()
	require.Contains(t, out, "starting")
	require.Contains(t, out, "component=")
	require.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "console output is not JSON")
}
