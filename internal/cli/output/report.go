package output

import (
	"fmt"
	"io"

	"github.com/yndnr/sortbench/internal/core/domain"
	"github.com/yndnr/sortbench/internal/core/service"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatText, FormatTable, FormatJSON, FormatYAML:
		return f, nil
	default:
		return "", domain.ErrInvalidConfig.WithDetails(fmt.Sprintf("unknown output format %q", s))
	}
}

// SummaryTable builds the per-algorithm timing summary of a report.
func SummaryTable(r *service.Report) *Table {
	t := &Table{}
	t.SetHeaders("ALGORITHM", "AVG (ms)", "TOTAL (ms)")
	for _, res := range r.Results {
		t.AddRow(res.Name, fmt.Sprintf("%.3f", res.AverageMs), fmt.Sprintf("%.3f", res.TotalMs))
	}
	return t
}

// RenderReport writes r in the given format.
//
// Text is the full report. Table is a timing summary preceded by a
// one-line run header. JSON and YAML encode the whole report.
func RenderReport(w io.Writer, format Format, r *service.Report) error {
	switch format {
	case FormatText:
		return WriteText(w, r)
	case FormatTable:
		if _, err := fmt.Fprintf(w, "Run %s: %d items, %d iterations, dataset %s\n\n",
			r.RunID, r.Size, r.Iterations, r.Fingerprint); err != nil {
			return err
		}
		return SummaryTable(r).Render(w)
	case FormatJSON, FormatYAML:
		return NewFormatter(format, false).Format(w, r)
	default:
		return domain.ErrInvalidConfig.WithDetails(fmt.Sprintf("unknown output format %q", format))
	}
}
