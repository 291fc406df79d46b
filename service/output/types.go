package output

import (
	"io"

	"github.com/terrafirma2021/makcu-version/model"
	"github.com/terrafirma2021/makcu-version/service/storage"
	historytable "github.com/terrafirma2021/makcu-version/shared/history_table"
	jsonoutput "github.com/terrafirma2021/makcu-version/shared/json_output"
	"github.com/terrafirma2021/makcu-version/shared/spinner"
	versiontable "github.com/terrafirma2021/makcu-version/shared/version_table"
)

// Format represents the output format type
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatPlain Format = "plain"
)

// Renderer defines the interface for drawing results
type Renderer interface {
	DrawResolutionTable(w io.Writer, res model.Resolution)
	DrawUpdateTable(w io.Writer, report model.UpdateReport)
	DrawResolutionHistory(w io.Writer, records []storage.ResolutionRecord)
	DrawCheckHistory(w io.Writer, records []storage.CheckRecord)
	OutputResolutionJSON(w io.Writer, res model.Resolution) error
	OutputUpdateJSON(w io.Writer, report model.UpdateReport) error
	OutputJSON(w io.Writer, v any) error
	StartSpinner(w io.Writer, suffix string)
	StopSpinner()
}

type realRenderer struct{}

func (r *realRenderer) DrawResolutionTable(w io.Writer, res model.Resolution) {
	versiontable.DrawResolutionTable(w, res)
}

func (r *realRenderer) DrawUpdateTable(w io.Writer, report model.UpdateReport) {
	versiontable.DrawUpdateTable(w, report)
}

func (r *realRenderer) DrawResolutionHistory(w io.Writer, records []storage.ResolutionRecord) {
	historytable.RenderResolutionTable(w, records)
}

func (r *realRenderer) DrawCheckHistory(w io.Writer, records []storage.CheckRecord) {
	historytable.RenderCheckTable(w, records)
}

func (r *realRenderer) OutputResolutionJSON(w io.Writer, res model.Resolution) error {
	return jsonoutput.OutputResolutionJSON(w, res)
}

func (r *realRenderer) OutputUpdateJSON(w io.Writer, report model.UpdateReport) error {
	return jsonoutput.OutputUpdateJSON(w, report)
}

func (r *realRenderer) OutputJSON(w io.Writer, v any) error {
	return jsonoutput.PrintJSON(w, v)
}

func (r *realRenderer) StartSpinner(w io.Writer, suffix string) {
	spinner.StartSpinner(w, suffix)
}

func (r *realRenderer) StopSpinner() {
	spinner.StopSpinner()
}

// service is the internal implementation
type service struct {
	format      Format
	renderer    Renderer
	out         io.Writer
	status      io.Writer
	interactive bool
}

// Service defines the interface for output operations
type Service interface {
	Format() Format
	RenderResolution(res model.Resolution) error
	RenderUpdate(report model.UpdateReport) error
	RenderResolutionHistory(records []storage.ResolutionRecord) error
	RenderCheckHistory(records []storage.CheckRecord) error
	StartSpinner(suffix string)
	StopSpinner()
}
