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

func TestLoggerWritesStructuredFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.DebugLevel, "json", "")

	l.Warn("scan.asset skipped",
		String("symbol", "NVDA"),
		Int("attempt", 1),
		Float64("rsi", 27.5),
		Error(errors.New("boom")),
	)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "scan.asset skipped", entry["message"])
	assert.Equal(t, "NVDA", entry["symbol"])
	assert.Equal(t, float64(1), entry["attempt"])
	assert.Equal(t, 27.5, entry["rsi"])
	assert.Equal(t, "boom", entry["error"])
}

func TestLoggerHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.WarnLevel, "json", "")

	l.Info("hidden")
	assert.Zero(t, buf.Len())

	l.Error("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestLoggerWith(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, zerolog.InfoLevel, "json", "").With(String("component", "scanner"))

	l.Info("ready")
	assert.Contains(t, buf.String(), `"component":"scanner"`)
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(&Config{Level: "chatty", Output: "stdout"})
	require.Error(t, err)
}

func TestNopDiscards(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("nothing", Error(nil))
	})
}
