package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]log.Level{
		"debug":   log.DebugLevel,
		"TRACE":   log.DebugLevel,
		"info":    log.InfoLevel,
		"warning": log.WarnLevel,
		"":        log.WarnLevel,
		" error ": log.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("loud")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestCreateHandlerRejectsUnknownFormat(t *testing.T) {
	_, err := CreateHandlerWithStrings(&bytes.Buffer{}, "info", "xml")
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = CreateHandlerWithStrings(&bytes.Buffer{}, "chatty", "text")
	assert.ErrorIs(t, err, ErrInvalidLevel)
}

func TestCreateHandlerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	h, err := CreateHandlerWithStrings(&buf, "warn", "text")
	require.NoError(t, err)

	logger := slog.New(h)
	logger.Info("hidden")
	logger.Warn("shown", "source", "metadata")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "metadata")
}

func TestCreateHandlerJSON(t *testing.T) {
	var buf bytes.Buffer
	h, err := CreateHandlerWithStrings(&buf, "debug", "json")
	require.NoError(t, err)

	slog.New(h).Debug("version resolved", "version", "2.5")

	var line map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &line))
	assert.Equal(t, "version resolved", line["msg"])
	assert.Equal(t, "2.5", line["version"])
}
