package metadata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, body string) string {
	t.Helper()
	path := filepath.Join(dir, FileName)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFullDocument(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{
		"version": "2.7",
		"aio": {
			"version": "2.8",
			"name": "MAKCU_V2.8.exe",
			"primary_url": "https://example.com/MAKCU_V2.8.exe",
			"fallback_url": "https://mirror.example.com/MAKCU_V2.8.exe",
			"changelog": ["faster flashing"]
		},
		"firmware": {
			"left":  {"version": "3.6", "name": "V3.6_LEFT", "changelog": ["usb fix"]},
			"right": {"version": "3.6.1", "name": "V3.6_RIGHT"}
		},
		"main_aio_changelog": [{"changes": ["new layout", "logging"]}],
		"last_successful_server": "github",
		"is_online": true,
		"window_position": {"x": 10, "y": 20}
	}`)

	svc := NewService()
	m, err := svc.LoadDir(dir)
	require.NoError(t, err)

	assert.Equal(t, "2.7", m.Version.String())
	assert.Equal(t, "2.8", m.LatestVersion())
	require.Contains(t, m.Firmware, "left")
	assert.Equal(t, "3.6", m.Firmware["left"].Version.String())
	assert.Equal(t, "V3.6_RIGHT", m.Firmware["right"].Name)
	assert.Equal(t, []string{"new layout", "logging", "faster flashing"}, m.Changes())
	assert.Equal(t, "github", m.LastSuccessfulServer)
	assert.True(t, m.IsOnline)
}

func TestLoadVersionForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{name: "string", body: `{"version": "2.5"}`, want: "2.5"},
		{name: "padded string", body: `{"version": "  2.5 "}`, want: "2.5"},
		{name: "number keeps literal", body: `{"version": 2.10}`, want: "2.10"},
		{name: "empty string", body: `{"version": ""}`, want: ""},
		{name: "missing", body: `{"name": "MAKCU"}`, want: ""},
		{name: "null", body: `{"version": null}`, want: ""},
		{name: "object", body: `{"version": {"major": 2}}`, want: ""},
		{name: "bool", body: `{"version": true}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.body)
			m, err := NewService().Load(path)
			require.NoError(t, err)
			assert.Equal(t, tt.want, m.Version.String())
		})
	}
}

func TestLoadSkipsMistypedFields(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `{"is_online": "yes", "version": "2.5"}`)

	m, err := NewService().Load(path)
	require.NoError(t, err)
	assert.Equal(t, "2.5", m.Version.String())
	assert.False(t, m.IsOnline)
}

func TestLoadErrors(t *testing.T) {
	svc := NewService()

	_, err := svc.LoadDir(t.TempDir())
	assert.ErrorIs(t, err, ErrNotFound)

	path := writeConfig(t, t.TempDir(), `{"version": "2.5"`)
	_, err = svc.Load(path)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	_, err = svc.Load(t.TempDir())
	require.Error(t, err)
}

func TestLatestVersionFallsBackToGlobal(t *testing.T) {
	m := &BundledMetadata{Version: "2.7", AIO: &Release{Version: " "}}
	assert.Equal(t, "2.7", m.LatestVersion())

	var nilMeta *BundledMetadata
	assert.Empty(t, nilMeta.LatestVersion())
	assert.Nil(t, nilMeta.Changes())
}

func TestPath(t *testing.T) {
	assert.Equal(t, filepath.Join("opt", "makcu", FileName), NewService().Path(filepath.Join("opt", "makcu")))
}
