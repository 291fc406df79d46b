package metadata

import (
	"bytes"
	"encoding/json"
	"strings"
)

// FileName is the bundled metadata file shipped beside the executable.
const FileName = "config.json"

// Text is a version-like field. It decodes from a JSON string or a bare JSON
// number, keeping the number's literal text; other JSON types decode as empty.
type Text string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Text) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*t = ""
		return nil
	}

	switch c := data[0]; {
	case c == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Text(strings.TrimSpace(s))
	case c == '-' || (c >= '0' && c <= '9'):
		*t = Text(data)
	default:
		*t = ""
	}

	return nil
}

// String returns the trimmed text.
func (t Text) String() string {
	return strings.TrimSpace(string(t))
}

// Release describes a downloadable artifact: the application itself or a firmware image.
type Release struct {
	Version     Text     `json:"version"`
	Name        string   `json:"name,omitempty"`
	PrimaryURL  string   `json:"primary_url,omitempty"`
	FallbackURL string   `json:"fallback_url,omitempty"`
	Changelog   []string `json:"changelog,omitempty"`
}

// ChangelogEntry groups the changes of one main release.
type ChangelogEntry struct {
	Version Text     `json:"version,omitempty"`
	Changes []string `json:"changes"`
}

// BundledMetadata is the decoded config.json.
type BundledMetadata struct {
	Version              Text               `json:"version"`
	AIO                  *Release           `json:"aio,omitempty"`
	Firmware             map[string]Release `json:"firmware,omitempty"`
	MainChangelog        []ChangelogEntry   `json:"main_aio_changelog,omitempty"`
	LastSuccessfulServer string             `json:"last_successful_server,omitempty"`
	IsOnline             bool               `json:"is_online,omitempty"`
}

// LatestVersion returns the published application version: aio.version when
// set, otherwise the global version.
func (m *BundledMetadata) LatestVersion() string {
	if m == nil {
		return ""
	}
	if m.AIO != nil && m.AIO.Version.String() != "" {
		return m.AIO.Version.String()
	}

	return m.Version.String()
}

// Changes flattens the main changelog and the aio changelog, in that order.
func (m *BundledMetadata) Changes() []string {
	if m == nil {
		return nil
	}

	var out []string
	for _, entry := range m.MainChangelog {
		out = append(out, entry.Changes...)
	}
	if m.AIO != nil {
		out = append(out, m.AIO.Changelog...)
	}

	return out
}

type service struct{}

// Service is the interface for bundled metadata access.
type Service interface {
	Load(path string) (*BundledMetadata, error)
	LoadDir(dir string) (*BundledMetadata, error)
	Path(dir string) string
}
