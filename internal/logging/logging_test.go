package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seenimoa/yfapi/internal/config"
)

func TestNewLevelAndFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LoggingConfig{Level: "warn", Format: "json"}, &buf)

	log.Info().Msg("hidden")
	log.Warn().Str("symbol", "AAPL").Msg("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "AAPL", entry["symbol"])
	assert.Equal(t, "shown", entry["message"])
	assert.Contains(t, entry, "time")
}

func TestNewTextFormat(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LoggingConfig{Level: "debug", Format: "text"}, &buf)

	log.Debug().Msg("hello")
	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "text format should not be JSON")
}

func TestNewBadLevelFallsBackToInfo(t *testing.T) {
	log := NewWithWriter(config.LoggingConfig{Level: "nope"}, &bytes.Buffer{})
	assert.Equal(t, zerolog.InfoLevel, log.GetLevel())
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithWriter(config.LoggingConfig{Level: "info", Format: "json"}, &buf)

	h := middleware.RequestID(RequestLogger(log)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"detail":"x"}`)) //nolint:errcheck
	})))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ticker/NOPE", nil))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "GET", entry["method"])
	assert.Equal(t, "/ticker/NOPE", entry["path"])
	assert.Equal(t, float64(http.StatusBadRequest), entry["status"])
	assert.Equal(t, float64(len(`{"detail":"x"}`)), entry["bytes"])
	assert.NotEmpty(t, entry["request_id"])
}
