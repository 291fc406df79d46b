// Package updatecheck compares the resolved current version with a published one.
package updatecheck

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/metadata"
	"github.com/terrafirma2021/makcu-version/service/resolver"
	"github.com/terrafirma2021/makcu-version/service/versioning"
)

// ErrNoLatest is returned when neither a latest version nor a latest config is given,
// or when the latest config carries no version.
var ErrNoLatest = errors.New("latest version not specified")

// NewService creates a new update check service.
func NewService(r resolver.Service, m metadata.Service) Service {
	if m == nil {
		m = metadata.NewService()
	}
	return &service{resolver: r, metadata: m}
}

func (s *service) Check(ctx context.Context, input Input) (model.UpdateReport, error) {
	if strings.TrimSpace(input.LatestVersion) == "" && strings.TrimSpace(input.LatestConfig) == "" {
		return model.UpdateReport{}, ErrNoLatest
	}

	var (
		current model.Resolution
		latest  *metadata.BundledMetadata
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		current = s.resolver.Resolve()
		return gctx.Err()
	})
	g.Go(func() error {
		m, err := s.latest(input)
		if err != nil {
			return err
		}
		latest = m
		return gctx.Err()
	})
	if err := g.Wait(); err != nil {
		return model.UpdateReport{}, err
	}

	latestVersion := latest.LatestVersion()
	if latestVersion == "" {
		return model.UpdateReport{}, fmt.Errorf("%w in %s", ErrNoLatest, input.LatestConfig)
	}

	report := model.UpdateReport{
		CurrentVersion:  current.Version,
		CurrentSource:   current.Source,
		LatestVersion:   latestVersion,
		UpdateAvailable: versioning.IsDifferent(latestVersion, current.Version),
		Direction:       versioning.Direction(latestVersion, current.Version),
		Changelog:       latest.Changes(),
		Firmware:        firmwareStatus(latest, input.InstalledFirmware),
	}

	if report.UpdateAvailable {
		name, err := versioning.ExecutableName(latestVersion)
		if err != nil {
			slog.Debug("latest version has no executable name", "version", latestVersion, "err", err)
		} else {
			report.ExecutableName = name
		}
	}

	slog.Debug("update check complete",
		"current", report.CurrentVersion,
		"latest", report.LatestVersion,
		"update_available", report.UpdateAvailable)

	return report, nil
}

// latest loads the published document. A literal LatestVersion overrides the
// application version only; firmware and changelogs still come from LatestConfig.
func (s *service) latest(input Input) (*metadata.BundledMetadata, error) {
	literal := strings.TrimSpace(input.LatestVersion)

	m := &metadata.BundledMetadata{}
	if strings.TrimSpace(input.LatestConfig) != "" {
		loaded, err := s.metadata.Load(input.LatestConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to load latest config: %w", err)
		}
		m = loaded
	}

	if literal != "" {
		m.Version = metadata.Text(literal)
		if m.AIO != nil {
			aio := *m.AIO
			aio.Version = metadata.Text(literal)
			m.AIO = &aio
		}
	}

	return m, nil
}

func firmwareStatus(latest *metadata.BundledMetadata, installed map[string]string) []model.FirmwareStatus {
	if latest == nil || len(latest.Firmware) == 0 {
		return nil
	}

	sides := make([]string, 0, len(latest.Firmware))
	for side := range latest.Firmware {
		sides = append(sides, side)
	}
	sort.Strings(sides)

	out := make([]model.FirmwareStatus, 0, len(sides))
	for _, side := range sides {
		fw := latest.Firmware[side]
		v := fw.Version.String()
		if v == "" {
			continue
		}

		status := model.FirmwareStatus{
			Side:      side,
			Installed: strings.TrimSpace(installed[side]),
			Latest:    v,
			Name:      fw.Name,
			Changelog: fw.Changelog,
		}
		if status.Installed != "" {
			status.UpdateAvailable = versioning.IsDifferent(v, status.Installed)
		}
		out = append(out, status)
	}

	return out
}
