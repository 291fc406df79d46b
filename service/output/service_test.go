package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/storage"
	"github.com/terrafirma2021/makcu-version/shared/console"
)

type mockRenderer struct {
	realRenderer
	spinnerStarted bool
	spinnerStopped bool
}

func (m *mockRenderer) StartSpinner(io.Writer, string) { m.spinnerStarted = true }
func (m *mockRenderer) StopSpinner()                   { m.spinnerStopped = true }

func sampleResolution() model.Resolution {
	return model.Resolution{
		Version:        "3.1",
		Source:         model.SourceExecutable,
		MetadataPath:   "/opt/makcu/config.json",
		ExecutablePath: "/opt/makcu/MAKCU_3_1.exe",
		Attempts: []model.Attempt{
			{Source: model.SourceMetadata, Error: "bundled metadata unavailable"},
			{Source: model.SourceExecutable, Value: "3.1"},
		},
	}
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"": FormatTable, "table": FormatTable, "json": FormatJSON, "plain": FormatPlain} {
		got, err := ParseFormat(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("html")
	assert.Error(t, err)

	assert.Equal(t, FormatTable, NewServiceWriter("html", io.Discard).Format())
}

func TestRenderResolutionPlain(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewServiceWriter("plain", &buf).RenderResolution(sampleResolution()))
	assert.Equal(t, "3.1\n", buf.String())
}

func TestRenderResolutionJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewServiceWriter("json", &buf).RenderResolution(sampleResolution()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "3.1", doc["version"])
	assert.Equal(t, "executable", doc["source"])
	assert.NotEmpty(t, doc["generated_at"])
	assert.Len(t, doc["attempts"], 2)
}

func TestRenderResolutionTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewServiceWriter("table", &buf).RenderResolution(sampleResolution()))

	out := buf.String()
	assert.Contains(t, out, "3.1")
	assert.Contains(t, out, "metadata")
	assert.Contains(t, out, "bundled metadata unavailable")
	assert.Contains(t, out, "/opt/makcu/MAKCU_3_1.exe")
}

func TestRenderUpdate(t *testing.T) {
	report := model.UpdateReport{
		CurrentVersion:  "2.6",
		CurrentSource:   model.SourceMetadata,
		LatestVersion:   "2.7",
		UpdateAvailable: true,
		Direction:       model.DirectionNewer,
		ExecutableName:  "MAKCU_2_7.exe",
		Changelog:       []string{"new layout"},
		Firmware: []model.FirmwareStatus{
			{Side: "left", Installed: "3.2", Latest: "3.6", UpdateAvailable: true, Changelog: []string{"usb fix"}},
			{Side: "right", Latest: "3.6.1"},
		},
	}

	var plain bytes.Buffer
	require.NoError(t, NewServiceWriter("plain", &plain).RenderUpdate(report))
	assert.Equal(t, "update-available\t2.6\t2.7\n", plain.String())

	var table bytes.Buffer
	require.NoError(t, NewServiceWriter("table", &table).RenderUpdate(report))
	out := table.String()
	assert.Contains(t, out, "MAKCU_2_7.exe")
	assert.Contains(t, out, "firmware left")
	assert.Contains(t, out, "- new layout")
	assert.Contains(t, out, "Left firmware 3.6")
	assert.Contains(t, out, "- usb fix")

	var js bytes.Buffer
	require.NoError(t, NewServiceWriter("json", &js).RenderUpdate(report))
	var doc map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &doc))
	assert.Equal(t, true, doc["update_available"])
	assert.Equal(t, "newer", doc["direction"])
}

func TestRenderHistory(t *testing.T) {
	at := time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	resolutions := []storage.ResolutionRecord{{ID: 1, ResolvedAt: at, Version: "2.5", Source: "metadata"}}
	checks := []storage.CheckRecord{{ID: 4, CheckedAt: at, CurrentVersion: "2.5", LatestVersion: "2.7", UpdateAvailable: true}}

	var plain bytes.Buffer
	svc := NewServiceWriter("plain", &plain)
	require.NoError(t, svc.RenderResolutionHistory(resolutions))
	require.NoError(t, svc.RenderCheckHistory(checks))
	lines := strings.Split(strings.TrimSpace(plain.String()), "\n")
	assert.Equal(t, []string{
		"1\t2026-02-10 08:00:00\t2.5\tmetadata",
		"4\t2026-02-10 08:00:00\t2.5\t2.7\ttrue",
	}, lines)

	var table bytes.Buffer
	require.NoError(t, NewServiceWriter("table", &table).RenderResolutionHistory(nil))
	assert.Contains(t, table.String(), "No resolutions recorded")

	var js bytes.Buffer
	require.NoError(t, NewServiceWriter("json", &js).RenderCheckHistory(checks))
	var docs []map[string]any
	require.NoError(t, json.Unmarshal(js.Bytes(), &docs))
	require.Len(t, docs, 1)
	assert.Equal(t, "2.7", docs[0]["latest_version"])
}

func TestSpinnerOnlyForInteractiveTables(t *testing.T) {
	r := &mockRenderer{}
	newService("table", io.Discard, io.Discard, true, r).StartSpinner("checking")
	assert.True(t, r.spinnerStarted)

	r = &mockRenderer{}
	newService("json", io.Discard, io.Discard, true, r).StartSpinner("checking")
	assert.False(t, r.spinnerStarted)

	r = &mockRenderer{}
	svc := newService("table", io.Discard, io.Discard, false, r)
	svc.StartSpinner("checking")
	svc.StopSpinner()
	assert.False(t, r.spinnerStarted)
	assert.True(t, r.spinnerStopped)
}

func TestNewServiceDetectsTerminalOnStderr(t *testing.T) {
	svc, ok := NewService("table").(*service)
	require.True(t, ok)
	assert.Equal(t, console.IsTerminal(os.Stderr), svc.interactive)
	assert.Equal(t, os.Stdout, svc.out)

	svc, ok = NewServiceWriter("table", io.Discard).(*service)
	require.True(t, ok)
	assert.False(t, svc.interactive)
}
