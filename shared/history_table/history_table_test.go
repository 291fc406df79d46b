package historytable

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/terrafirma2021/makcu-version/service/storage"
)

func TestRenderEmptyHistory(t *testing.T) {
	var buf bytes.Buffer
	RenderResolutionTable(&buf, nil)
	RenderCheckTable(&buf, nil)

	assert.Equal(t, "No resolutions recorded\nNo update checks recorded\n", buf.String())
}

func TestRenderCheckTable(t *testing.T) {
	var buf bytes.Buffer
	RenderCheckTable(&buf, []storage.CheckRecord{{
		ID:              4,
		CheckedAt:       time.Date(2026, 10, 1, 8, 30, 0, 0, time.UTC),
		CurrentVersion:  "3.1",
		LatestVersion:   "3.0",
		UpdateAvailable: true,
		Direction:       "older",
	}})

	out := buf.String()
	assert.Contains(t, out, "2026-10-01 08:30:00")
	assert.Contains(t, out, "older")
	assert.Contains(t, out, "yes")
}
