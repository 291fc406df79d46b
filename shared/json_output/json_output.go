package jsonoutput

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/terrafirma2021/makcu-version/model"
)

// ResolutionReport is the JSON document for a resolution.
type ResolutionReport struct {
	GeneratedAt string `json:"generated_at"`
	model.Resolution
}

// UpdateReport is the JSON document for an update check.
type UpdateReport struct {
	GeneratedAt string `json:"generated_at"`
	model.UpdateReport
}

// OutputResolutionJSON writes a resolution as JSON.
func OutputResolutionJSON(w io.Writer, res model.Resolution) error {
	return PrintJSON(w, ResolutionReport{GeneratedAt: now(), Resolution: res})
}

// OutputUpdateJSON writes an update report as JSON.
func OutputUpdateJSON(w io.Writer, report model.UpdateReport) error {
	return PrintJSON(w, UpdateReport{GeneratedAt: now(), UpdateReport: report})
}

// PrintJSON writes v as indented JSON followed by a newline.
func PrintJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}

func now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
