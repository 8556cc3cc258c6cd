package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureLogs(t *testing.T, level slog.Level) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: level})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestLogError(t *testing.T) {
	buf := captureLogs(t, slog.LevelError)

	LogError(errors.New("boom"), "Failed to parse file", Fields{"file": "a.xlsx"})

	out := buf.String()
	assert.Contains(t, out, "Failed to parse file")
	assert.Contains(t, out, "boom")
	assert.Contains(t, out, "a.xlsx")
}

func TestLogInfoAndDebug(t *testing.T) {
	buf := captureLogs(t, slog.LevelDebug)

	LogInfo("Applying migration", Fields{"version": 2})
	LogDebug("Parsed file", Fields{"entries": 3})

	out := buf.String()
	assert.Contains(t, out, "Applying migration")
	assert.Contains(t, out, "version=2")
	assert.Contains(t, out, "Parsed file")
	assert.Contains(t, out, "entries=3")
}
