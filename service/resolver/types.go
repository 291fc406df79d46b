package resolver

import (
	"log/slog"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/metadata"
)

// Lookup is one fallible version source. Find returns a non-empty version or an error.
type Lookup struct {
	Source model.VersionSource
	Find   func() (string, error)
}

// Options configures where the resolver looks.
type Options struct {
	// MetadataPath overrides <executable dir>/config.json.
	MetadataPath string
	// ExecutablePath overrides the running process's own path.
	ExecutablePath string
	Metadata       metadata.Service
	Logger         *slog.Logger
}

type service struct {
	metadataPath   string
	executablePath string
	metadata       metadata.Service
	logger         *slog.Logger
	executable     func() (string, error)
}

// Service is the interface for current-version resolution.
type Service interface {
	// Resolve never fails; the returned Resolution always carries a non-empty Version.
	Resolve() model.Resolution
	// Version is shorthand for Resolve().Version.
	Version() string
}
