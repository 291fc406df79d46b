package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

const (
	defaultDBPath = "~/.makcu-version/history.db"
	timeLayout    = "2006-01-02 15:04:05"
)

// NewService creates a SQLite-backed storage service.
func NewService(dbPath string) (Service, error) {
	resolved, err := resolvePath(dbPath)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(resolved), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &service{db: db, dbPath: resolved}, nil
}

type service struct {
	db     *sql.DB
	dbPath string
}

func resolvePath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		p = defaultDBPath
	}
	if strings.HasPrefix(p, "~/") || p == "~" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to resolve home dir: %w", err)
		}
		if p == "~" {
			p = home
		} else {
			p = filepath.Join(home, p[2:])
		}
	}
	return filepath.Clean(p), nil
}

func stamp(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

func runID(id string) string {
	if id == "" {
		return uuid.NewString()
	}
	return id
}

// parseStamp accepts either a driver-parsed time or the stored text.
func parseStamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t.UTC()
	case []byte:
		return parseStamp(string(t))
	case string:
		for _, layout := range []string{timeLayout, time.RFC3339Nano, time.RFC3339} {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.UTC()
			}
		}
	}
	return time.Time{}
}

func (s *service) Path() string {
	return s.dbPath
}

func (s *service) SaveResolution(ctx context.Context, input SaveResolutionInput) (int64, error) {
	if input.Version == "" {
		return 0, errors.New("version is required")
	}
	if input.Source == "" {
		return 0, errors.New("source is required")
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO resolutions (
			run_uuid, resolved_at, version, source, metadata_path, executable_path, tool_version
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`, runID(input.RunUUID), stamp(input.ResolvedAt), input.Version, input.Source,
		input.MetadataPath, input.ExecutablePath, input.ToolVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to save resolution: %w", err)
	}
	return res.LastInsertId()
}

func (s *service) SaveCheck(ctx context.Context, input SaveCheckInput) (int64, error) {
	if input.CurrentVersion == "" || input.LatestVersion == "" {
		return 0, errors.New("current and latest versions are required")
	}

	available := 0
	if input.UpdateAvailable {
		available = 1
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO update_checks (
			run_uuid, checked_at, current_version, current_source, latest_version,
			update_available, direction, tool_version
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, runID(input.RunUUID), stamp(input.CheckedAt), input.CurrentVersion, input.CurrentSource,
		input.LatestVersion, available, input.Direction, input.ToolVersion)
	if err != nil {
		return 0, fmt.Errorf("failed to save update check: %w", err)
	}
	return res.LastInsertId()
}

func (s *service) GetRecentResolutions(limit int) ([]ResolutionRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT resolution_id, run_uuid, resolved_at, version, source,
			COALESCE(metadata_path, ''), COALESCE(executable_path, ''), COALESCE(tool_version, '')
		FROM resolutions
		ORDER BY resolved_at DESC, resolution_id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []ResolutionRecord{}
	for rows.Next() {
		var r ResolutionRecord
		var at any
		if err := rows.Scan(&r.ID, &r.RunUUID, &at, &r.Version, &r.Source,
			&r.MetadataPath, &r.ExecutablePath, &r.ToolVersion); err != nil {
			return nil, err
		}
		r.ResolvedAt = parseStamp(at)
		records = append(records, r)
	}
	return records, rows.Err()
}

func (s *service) GetRecentChecks(limit int) ([]CheckRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(`
		SELECT check_id, run_uuid, checked_at, current_version, current_source, latest_version,
			update_available, direction, COALESCE(tool_version, '')
		FROM update_checks
		ORDER BY checked_at DESC, check_id DESC LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := []CheckRecord{}
	for rows.Next() {
		var c CheckRecord
		var at any
		var available int
		if err := rows.Scan(&c.ID, &c.RunUUID, &at, &c.CurrentVersion, &c.CurrentSource,
			&c.LatestVersion, &available, &c.Direction, &c.ToolVersion); err != nil {
			return nil, err
		}
		c.CheckedAt = parseStamp(at)
		c.UpdateAvailable = available != 0
		records = append(records, c)
	}
	return records, rows.Err()
}

func (s *service) Vacuum(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, "VACUUM")
	return err
}

func (s *service) PurgeOlderThan(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		return 0, errors.New("days must be > 0")
	}
	cutoff := fmt.Sprintf("-%d day", days)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	var total int64
	for _, q := range []string{
		`DELETE FROM resolutions WHERE resolved_at < DATETIME('now', ?)`,
		`DELETE FROM update_checks WHERE checked_at < DATETIME('now', ?)`,
	} {
		res, err := tx.ExecContext(ctx, q, cutoff)
		if err != nil {
			return 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, err
		}
		total += n
	}

	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return total, nil
}

func (s *service) Close() error {
	return s.db.Close()
}
