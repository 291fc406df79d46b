package historytable

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/terrafirma2021/makcu-version/service/storage"
)

const timeFormat = "2006-01-02 15:04:05"

// RenderResolutionTable prints stored resolutions, newest first.
func RenderResolutionTable(w io.Writer, records []storage.ResolutionRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No resolutions recorded")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Resolved At (UTC)", "Version", "Source", "Tool"})
	for _, r := range records {
		t.AppendRow(table.Row{r.ID, r.ResolvedAt.Format(timeFormat), r.Version, r.Source, r.ToolVersion})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// RenderCheckTable prints stored update checks, newest first.
func RenderCheckTable(w io.Writer, records []storage.CheckRecord) {
	if len(records) == 0 {
		fmt.Fprintln(w, "No update checks recorded")
		return
	}
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"ID", "Checked At (UTC)", "Current", "Latest", "Update", "Direction"})
	for _, c := range records {
		update := "no"
		if c.UpdateAvailable {
			update = "yes"
		}
		t.AppendRow(table.Row{c.ID, c.CheckedAt.Format(timeFormat), c.CurrentVersion, c.LatestVersion, update, c.Direction})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
