// Package output provides a service for rendering results to the console.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/storage"
	"github.com/terrafirma2021/makcu-version/shared/console"
)

// ParseFormat maps a format name onto a Format.
func ParseFormat(format string) (Format, error) {
	switch Format(format) {
	case FormatTable, "":
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	case FormatPlain:
		return FormatPlain, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (table, json or plain)", format)
	}
}

// NewService creates a new output service writing to stdout, with the spinner on stderr.
func NewService(format string) Service {
	return newService(format, os.Stdout, os.Stderr, console.IsTerminal(os.Stderr), &realRenderer{})
}

// NewServiceWriter creates an output service writing results to w. The spinner is disabled.
func NewServiceWriter(format string, w io.Writer) Service {
	return newService(format, w, io.Discard, false, &realRenderer{})
}

func newService(format string, out, status io.Writer, interactive bool, r Renderer) *service {
	f, err := ParseFormat(format)
	if err != nil {
		f = FormatTable
	}

	return &service{
		format:      f,
		renderer:    r,
		out:         out,
		status:      status,
		interactive: interactive,
	}
}

func (s *service) Format() Format {
	return s.format
}

func (s *service) RenderResolution(res model.Resolution) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.OutputResolutionJSON(s.out, res)
	case FormatPlain:
		_, err := fmt.Fprintln(s.out, res.Version)
		return err
	}
	s.renderer.DrawResolutionTable(s.out, res)
	return nil
}

func (s *service) RenderUpdate(report model.UpdateReport) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.OutputUpdateJSON(s.out, report)
	case FormatPlain:
		state := "up-to-date"
		if report.UpdateAvailable {
			state = "update-available"
		}
		_, err := fmt.Fprintf(s.out, "%s\t%s\t%s\n", state, report.CurrentVersion, report.LatestVersion)
		return err
	}
	s.renderer.DrawUpdateTable(s.out, report)
	return nil
}

func (s *service) RenderResolutionHistory(records []storage.ResolutionRecord) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.OutputJSON(s.out, records)
	case FormatPlain:
		for _, r := range records {
			if _, err := fmt.Fprintf(s.out, "%d\t%s\t%s\t%s\n", r.ID, r.ResolvedAt.Format("2006-01-02 15:04:05"), r.Version, r.Source); err != nil {
				return err
			}
		}
		return nil
	}
	s.renderer.DrawResolutionHistory(s.out, records)
	return nil
}

func (s *service) RenderCheckHistory(records []storage.CheckRecord) error {
	switch s.format {
	case FormatJSON:
		return s.renderer.OutputJSON(s.out, records)
	case FormatPlain:
		for _, c := range records {
			if _, err := fmt.Fprintf(s.out, "%d\t%s\t%s\t%s\t%t\n", c.ID, c.CheckedAt.Format("2006-01-02 15:04:05"), c.CurrentVersion, c.LatestVersion, c.UpdateAvailable); err != nil {
				return err
			}
		}
		return nil
	}
	s.renderer.DrawCheckHistory(s.out, records)
	return nil
}

// StartSpinner shows a spinner for table output on an interactive terminal.
func (s *service) StartSpinner(suffix string) {
	if s.format != FormatTable || !s.interactive {
		return
	}
	s.renderer.StartSpinner(s.status, suffix)
}

func (s *service) StopSpinner() {
	s.renderer.StopSpinner()
}
