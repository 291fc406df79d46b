// Package resolver determines the running application's current version.
//
// Sources are consulted in a fixed order: the bundled config.json beside the
// executable, then the MAKCU_<major>_<minor>.exe file name, then "0.0".
// Failures of a source are logged at debug level and never reach the caller.
package resolver

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/metadata"
	"github.com/terrafirma2021/makcu-version/service/versioning"
)

var (
	ErrNoExecutable    = errors.New("executable path unavailable")
	ErrMetadataMissing = errors.New("bundled metadata unavailable")
	ErrEmptyVersion    = errors.New("bundled metadata has no version")
)

// NewService creates a new resolver service.
func NewService(opts Options) Service {
	s := &service{
		metadataPath:   opts.MetadataPath,
		executablePath: opts.ExecutablePath,
		metadata:       opts.Metadata,
		logger:         opts.Logger,
		executable:     os.Executable,
	}
	if s.metadata == nil {
		s.metadata = metadata.NewService()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// Current resolves the version of the running process with default options.
func Current() string {
	return NewService(Options{}).Version()
}

func (s *service) Version() string {
	return s.Resolve().Version
}

func (s *service) Resolve() model.Resolution {
	exe, exeErr := s.resolveExecutable()
	metaPath := s.metadataPath
	if metaPath == "" && exeErr == nil {
		metaPath = s.metadata.Path(filepath.Dir(exe))
	}

	res := First(s.logger,
		Lookup{Source: model.SourceMetadata, Find: func() (string, error) {
			return s.fromMetadata(metaPath)
		}},
		Lookup{Source: model.SourceExecutable, Find: func() (string, error) {
			if exeErr != nil {
				return "", exeErr
			}
			return versioning.ParseExecutableName(exe)
		}},
	)
	res.MetadataPath = metaPath
	res.ExecutablePath = exe

	return res
}

// First evaluates lookups in order and returns the first non-empty version.
// When every lookup fails the fallback version is returned. Panics inside a
// lookup are treated as failures.
func First(logger *slog.Logger, lookups ...Lookup) model.Resolution {
	if logger == nil {
		logger = slog.Default()
	}

	var res model.Resolution
	for _, l := range lookups {
		v, err := find(l)
		if err == nil {
			v = strings.TrimSpace(v)
			if v == "" {
				err = ErrEmptyVersion
			}
		}
		if err != nil {
			logger.Debug("version source unavailable", "source", l.Source, "err", err)
			res.Attempts = append(res.Attempts, model.Attempt{Source: l.Source, Error: err.Error()})
			continue
		}

		logger.Debug("version resolved", "source", l.Source, "version", v)
		res.Attempts = append(res.Attempts, model.Attempt{Source: l.Source, Value: v})
		res.Version = v
		res.Source = l.Source

		return res
	}

	logger.Debug("using fallback version", "version", model.FallbackVersion)
	res.Attempts = append(res.Attempts, model.Attempt{Source: model.SourceFallback, Value: model.FallbackVersion})
	res.Version = model.FallbackVersion
	res.Source = model.SourceFallback

	return res
}

func find(l Lookup) (v string, err error) {
	defer func() {
		if r := recover(); r != nil {
			v, err = "", fmt.Errorf("lookup %s panicked: %v", l.Source, r)
		}
	}()
	if l.Find == nil {
		return "", fmt.Errorf("lookup %s has no finder", l.Source)
	}

	return l.Find()
}

func (s *service) fromMetadata(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("%w: no location", ErrMetadataMissing)
	}

	m, err := s.metadata.Load(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMetadataMissing, err)
	}

	v := m.Version.String()
	if v == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyVersion, path)
	}

	return v, nil
}

func (s *service) resolveExecutable() (string, error) {
	if s.executablePath != "" {
		return s.executablePath, nil
	}

	exe, err := s.executable()
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrNoExecutable, err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return exe, nil
}
