package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func capture(t *testing.T, level zerolog.Level) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	setup(buf, level, "test")
	t.Cleanup(func() { setup(&bytes.Buffer{}, zerolog.InfoLevel, "test") })
	return buf
}

func TestKeyValues(t *testing.T) {
	buf := capture(t, zerolog.DebugLevel)

	Info("diverse_recommend", "trace_id", "abc", "limit", 10, "error", errors.New("boom"))

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "diverse_recommend", line["message"])
	assert.Equal(t, "info", line["level"])
	assert.Equal(t, "abc", line["trace_id"])
	assert.EqualValues(t, 10, line["limit"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "test", line["env"])
}

func TestDanglingValue(t *testing.T) {
	buf := capture(t, zerolog.DebugLevel)

	Warn("odd", "key", "value", "orphan")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "value", line["key"])
	assert.Equal(t, []any{"orphan"}, line["extra"])
}

func TestLevelFilter(t *testing.T) {
	buf := capture(t, zerolog.InfoLevel)

	Debug("hidden", "k", 1)
	assert.Empty(t, buf.String())

	Error("shown")
	assert.Contains(t, buf.String(), `"shown"`)
}
