package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func logLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestLoggerFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	logger.Info("Indicator analyzed", "indicator_id", 7, "trend", "growth")

	entry := logLine(t, &buf)
	assert.Equal(t, "Indicator analyzed", entry["message"])
	assert.Equal(t, float64(7), entry["indicator_id"])
	assert.Equal(t, "growth", entry["trend"])
}

func TestLoggerErrorField(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	logger.Error("Request failed", "error", errors.New("boom"))

	entry := logLine(t, &buf)
	assert.Equal(t, "boom", entry["error"])
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel).With("component", "analyzer")

	logger.Info("ready")

	entry := logLine(t, &buf)
	assert.Equal(t, "analyzer", entry["component"])
}

func TestLoggerOddFieldsAreIgnored(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.InfoLevel)

	// a trailing key with no value must not panic or appear
	logger.Info("partial", "ok", true, "dangling")

	entry := logLine(t, &buf)
	assert.Equal(t, true, entry["ok"])
	assert.NotContains(t, entry, "dangling")
}

func TestLoggerLevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithWriter(&buf, zerolog.WarnLevel)

	logger.Info("quiet")
	assert.Zero(t, buf.Len())

	logger.Warn("loud")
	assert.NotZero(t, buf.Len())
}

func TestContextHelpers(t *testing.T) {
	logger := NewWithWriter(&bytes.Buffer{}, zerolog.InfoLevel)

	ctx := WithLogger(context.Background(), logger)
	assert.Same(t, logger, FromContext(ctx))
	assert.Same(t, Global(), FromContext(context.Background()))

	ctx = WithRequestID(ctx, "req-123")
	assert.Equal(t, "req-123", RequestIDFromContext(ctx))
	assert.Empty(t, RequestIDFromContext(context.Background()))
}
