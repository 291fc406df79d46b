// Package metadata reads the build-time config.json shipped beside the executable.
package metadata

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned when no metadata file exists at the requested path.
var ErrNotFound = errors.New("metadata file not found")

// NewService creates a new metadata service.
func NewService() Service {
	return &service{}
}

// Path returns the metadata location inside dir.
func (s *service) Path(dir string) string {
	return filepath.Join(dir, FileName)
}

// LoadDir loads the metadata file inside dir.
func (s *service) LoadDir(dir string) (*BundledMetadata, error) {
	return s.Load(s.Path(dir))
}

// Load reads and decodes the metadata file at path. The file is never written.
func (s *service) Load(path string) (*BundledMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("failed to read metadata %s: %w", path, err)
	}

	// Mistyped fields are skipped; json still fills every field it can.
	var m BundledMetadata
	var typeErr *json.UnmarshalTypeError
	if err := json.Unmarshal(data, &m); err != nil && !errors.As(err, &typeErr) {
		return nil, fmt.Errorf("failed to decode metadata %s: %w", path, err)
	}

	return &m, nil
}
