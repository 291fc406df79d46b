// Package model defines the data structures used throughout the application.
package model

// VersionInfo contains build-time metadata about the application.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
	Date    string `json:"date"`
}

// FallbackVersion is reported when no version source is usable.
const FallbackVersion = "0.0"

// VersionSource names where a resolved version came from.
type VersionSource string

const (
	SourceMetadata   VersionSource = "metadata"
	SourceExecutable VersionSource = "executable"
	SourceFallback   VersionSource = "fallback"
)

// Attempt records the outcome of consulting one version source.
type Attempt struct {
	Source VersionSource `json:"source"`
	Value  string        `json:"value,omitempty"`
	Error  string        `json:"error,omitempty"`
}

// Resolution is the result of resolving the current application version.
type Resolution struct {
	Version        string        `json:"version"`
	Source         VersionSource `json:"source"`
	MetadataPath   string        `json:"metadata_path,omitempty"`
	ExecutablePath string        `json:"executable_path,omitempty"`
	Attempts       []Attempt     `json:"attempts"`
}
