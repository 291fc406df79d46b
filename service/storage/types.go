package storage

import (
	"context"
	"time"
)

// Service defines persistence of resolution and update-check history.
type Service interface {
	SaveResolution(ctx context.Context, input SaveResolutionInput) (int64, error)
	SaveCheck(ctx context.Context, input SaveCheckInput) (int64, error)
	GetRecentResolutions(limit int) ([]ResolutionRecord, error)
	GetRecentChecks(limit int) ([]CheckRecord, error)
	Vacuum(ctx context.Context) error
	PurgeOlderThan(ctx context.Context, days int) (int64, error)
	Path() string
	Close() error
}

// SaveResolutionInput is the payload saved for one resolution.
type SaveResolutionInput struct {
	RunUUID        string
	Version        string
	Source         string
	MetadataPath   string
	ExecutablePath string
	ToolVersion    string
	// ResolvedAt defaults to now.
	ResolvedAt time.Time
}

// SaveCheckInput is the payload saved for one update check.
type SaveCheckInput struct {
	RunUUID         string
	CurrentVersion  string
	CurrentSource   string
	LatestVersion   string
	UpdateAvailable bool
	Direction       string
	ToolVersion     string
	// CheckedAt defaults to now.
	CheckedAt time.Time
}

// ResolutionRecord is a stored resolution.
type ResolutionRecord struct {
	ID             int64     `json:"id"`
	RunUUID        string    `json:"run_uuid"`
	ResolvedAt     time.Time `json:"resolved_at"`
	Version        string    `json:"version"`
	Source         string    `json:"source"`
	MetadataPath   string    `json:"metadata_path,omitempty"`
	ExecutablePath string    `json:"executable_path,omitempty"`
	ToolVersion    string    `json:"tool_version,omitempty"`
}

// CheckRecord is a stored update check.
type CheckRecord struct {
	ID              int64     `json:"id"`
	RunUUID         string    `json:"run_uuid"`
	CheckedAt       time.Time `json:"checked_at"`
	CurrentVersion  string    `json:"current_version"`
	CurrentSource   string    `json:"current_source"`
	LatestVersion   string    `json:"latest_version"`
	UpdateAvailable bool      `json:"update_available"`
	Direction       string    `json:"direction"`
	ToolVersion     string    `json:"tool_version,omitempty"`
}
