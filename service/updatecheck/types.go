package updatecheck

import (
	"context"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/metadata"
	"github.com/terrafirma2021/makcu-version/service/resolver"
)

// Input selects the published version to compare against. When both are set,
// LatestVersion replaces the application version read from LatestConfig and
// the config still supplies firmware and changelogs.
type Input struct {
	LatestVersion string
	LatestConfig  string
	// Installed firmware per side ("left", "right"); missing sides report latest only.
	InstalledFirmware map[string]string
}

type service struct {
	resolver resolver.Service
	metadata metadata.Service
}

// Service is the interface for offline update checks.
type Service interface {
	Check(ctx context.Context, input Input) (model.UpdateReport, error)
}
