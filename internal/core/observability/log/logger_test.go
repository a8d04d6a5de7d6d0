package log

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestWriterFields(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(LevelDebug, &buf)

	logger.Info("query evaluated",
		String("id", "q1"),
		Int("index", 3),
		Bool("hit", true),
		Float32("penetration", 0.5),
		Uint64("fingerprint", 42),
		Duration("elapsed", time.Second),
		Error(errors.New("boom")),
		Any("tags", []string{"a"}),
	)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	e := entries[0]
	assert.Equal(t, "info", e["level"])
	assert.Equal(t, "query evaluated", e["msg"])
	assert.Equal(t, "q1", e["id"])
	assert.Equal(t, float64(3), e["index"])
	assert.Equal(t, true, e["hit"])
	assert.Equal(t, 0.5, e["penetration"])
	assert.Equal(t, float64(42), e["fingerprint"])
	assert.Equal(t, "boom", e["error"])
	assert.Equal(t, []any{"a"}, e["tags"])
}

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(LevelWarn, &buf)
	assert.Equal(t, LevelWarn, logger.GetLevel())

	logger.Debug("dropped")
	logger.Info("dropped")
	logger.Warn("kept")
	logger.Log(LevelError, "kept")
	assert.Len(t, decodeLines(t, &buf), 2)

	buf.Reset()
	child := logger.With(String("component", "runner"))
	logger.SetLevel(LevelDebug)
	child.Debug("now visible")
	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "runner", entries[0]["component"])
	assert.Equal(t, LevelDebug, child.GetLevel())
}

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWriter(LevelInfo, &buf)

	logger.WithContext(context.Background()).Info("plain")
	logger.WithContext(ContextWithRunID(context.Background(), "run-1")).Info("tagged")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.NotContains(t, entries[0], "run_id")
	assert.Equal(t, "run-1", entries[1]["run_id"])
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"debug", LevelDebug},
		{" INFO ", LevelInfo},
		{"warning", LevelWarn},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"fatal", LevelFatal},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
	assert.Equal(t, "level(9)", Level(9).String())
}

func TestNop(t *testing.T) {
	logger := Nop()
	assert.NotPanics(t, func() {
		logger.Info("ignored", String("k", "v"))
		logger.With(Int("n", 1)).Error("ignored")
	})
}
