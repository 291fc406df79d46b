// Package versiontable renders resolutions and update reports as tables.
package versiontable

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/terrafirma2021/makcu-version/model"
)

// DrawResolutionTable renders the resolved version and every source consulted.
func DrawResolutionTable(w io.Writer, res model.Resolution) {
	fmt.Fprintf(w, "\n📦 MAKCU version %s (from %s)\n", text.FgGreen.Sprint(res.Version), res.Source)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Source", "Result", "Detail"})
	for i, a := range res.Attempts {
		result := text.FgGreen.Sprint("✔ used")
		detail := a.Value
		if a.Error != "" {
			result = text.FgYellow.Sprint("✘ skipped")
			detail = a.Error
		}
		t.AppendRow(table.Row{i + 1, string(a.Source), result, detail})
	}
	if res.MetadataPath != "" || res.ExecutablePath != "" {
		t.AppendSeparator()
		t.AppendRow(table.Row{"", "metadata path", res.MetadataPath, ""})
		t.AppendRow(table.Row{"", "executable path", res.ExecutablePath, ""})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}

// DrawUpdateTable renders an update report with firmware status and changelog.
func DrawUpdateTable(w io.Writer, report model.UpdateReport) {
	status := text.FgGreen.Sprint("🟢 Software is up to date")
	if report.UpdateAvailable {
		status = text.FgYellow.Sprintf("🟡 Update available (%s)", report.Direction)
	}
	fmt.Fprintf(w, "\n%s\n", status)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Component", "Current", "Latest", "Status"})
	t.AppendRow(table.Row{"application", fmt.Sprintf("%s (%s)", report.CurrentVersion, report.CurrentSource), report.LatestVersion, statusText(report.UpdateAvailable, true)})
	for _, fw := range report.Firmware {
		installed := fw.Installed
		if installed == "" {
			installed = "-"
		}
		t.AppendRow(table.Row{"firmware " + fw.Side, installed, fw.Latest, statusText(fw.UpdateAvailable, fw.Installed != "")})
	}
	if report.ExecutableName != "" {
		t.AppendSeparator()
		t.AppendRow(table.Row{"executable", "", report.ExecutableName, ""})
	}
	t.SetStyle(table.StyleRounded)
	t.Render()

	if len(report.Changelog) > 0 {
		fmt.Fprintln(w, "\n*** Main Version Changelog ***")
		for _, c := range report.Changelog {
			fmt.Fprintf(w, "- %s\n", c)
		}
	}
	for _, fw := range report.Firmware {
		if !fw.UpdateAvailable || len(fw.Changelog) == 0 {
			continue
		}
		fmt.Fprintf(w, "\n*** %s firmware %s ***\n", titleCase(fw.Side), fw.Latest)
		for _, c := range fw.Changelog {
			fmt.Fprintf(w, "- %s\n", c)
		}
	}
}

func statusText(update, known bool) string {
	switch {
	case !known:
		return text.FgHiBlack.Sprint("unknown")
	case update:
		return text.FgYellow.Sprint("update")
	default:
		return text.FgGreen.Sprint("current")
	}
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
