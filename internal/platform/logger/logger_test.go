package logger

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warning"))
	assert.Equal(t, slog.LevelError, ParseLevel(" error "))
	assert.Equal(t, slog.LevelInfo, ParseLevel("verbose"))
}

func TestNewWithWriter(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(&buf, "warn", "json")
	log.Info("dropped")
	log.Warn("kept", "application_id", "abc")
	assert.NotContains(t, buf.String(), "dropped")
	assert.Contains(t, buf.String(), `"application_id":"abc"`)

	buf.Reset()
	NewWithWriter(&buf, "info", "text").Info("hello", "request_id", "r1")
	assert.Contains(t, buf.String(), "request_id=r1")
}
