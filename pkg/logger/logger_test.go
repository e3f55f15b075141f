package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("nonsense"))
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("JSON"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Name: "lottery", Format: FormatText, Level: LevelInfo})

	log.Info("matches found", Int("count", 2), String("ticket", "3 7"))

	line := buf.String()
	assert.Contains(t, line, " - lottery - INFO - matches found")
	assert.Contains(t, line, "count=2 ticket=3 7")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestLogger_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Name: "tracker", Format: FormatJSON, Level: LevelDebug})

	log.Error("load failed", Err(errors.New("boom")), Path("subjects.csv"))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "tracker", entry.Logger)
	assert.Equal(t, "ERROR", entry.Level)
	assert.Equal(t, "load failed", entry.Message)
	assert.Equal(t, "boom", entry.Fields["error"])
	assert.Equal(t, "subjects.csv", entry.Fields["path"])
}

func TestLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelWarn})

	log.Info("hidden")
	log.Debug("hidden")
	assert.Empty(t, buf.String())
	assert.False(t, log.Enabled(LevelInfo))

	log.Warn("shown")
	assert.Contains(t, buf.String(), "WARN - shown")
}

func TestLogger_With(t *testing.T) {
	var buf bytes.Buffer
	base := New(Options{Output: &buf, Name: "student", Level: LevelInfo})

	child := base.With(Component("tracker"))
	child.Info("loaded", Subject("Math"))

	line := buf.String()
	assert.Contains(t, line, " - student - INFO - loaded")
	assert.Contains(t, line, "component=tracker")
	assert.Contains(t, line, "subject=Math")

	buf.Reset()
	base.Info("plain")
	assert.NotContains(t, buf.String(), "component=")
}
