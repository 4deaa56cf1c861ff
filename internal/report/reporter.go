// Package report prints the progress and summary of an import.
package report

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/at-ishikawa/flypysync/internal/userdict"
	"github.com/fatih/color"
)

// Reporter writes one line per imported entry and a summary line.
// Write errors are logged and never returned; the import has already finished when it runs.
type Reporter struct {
	writer  io.Writer
	label   *color.Color
	summary *color.Color
	warning *color.Color
}

func NewReporter(writer io.Writer, noColor bool) *Reporter {
	reporter := &Reporter{
		writer:  writer,
		label:   color.New(color.FgCyan),
		summary: color.New(color.FgGreen, color.Bold),
		warning: color.New(color.FgYellow),
	}
	if noColor {
		reporter.label.DisableColor()
		reporter.summary.DisableColor()
		reporter.warning.DisableColor()
	}
	return reporter
}

func (r *Reporter) Report(entries []userdict.Entry) {
	for _, entry := range entries {
		r.print(r.label.Sprint("import:") + " " + entry.String() + "\n")
	}
	r.print(r.summary.Sprintf("completed, imported: %d", len(entries)) + "\n")
}

// ReportMalformed prints how many rows were dropped during extraction, if any.
func (r *Reporter) ReportMalformed(count int) {
	if count == 0 {
		return
	}
	r.print(r.warning.Sprintf("skipped malformed rows: %d", count) + "\n")
}

func (r *Reporter) print(line string) {
	if _, err := fmt.Fprint(r.writer, line); err != nil {
		slog.Default().Debug("failed to write report", "error", err)
	}
}
