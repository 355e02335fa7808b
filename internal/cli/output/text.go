package output

import (
	"fmt"
	"io"

	"github.com/yndnr/sortbench/internal/core/domain"
	"github.com/yndnr/sortbench/internal/core/service"
)

// WriteDataset writes a labelled dataset as two lines followed by a
// blank line:
//
//	Original Data:
//	A01 B02 C03
func WriteDataset(w io.Writer, label string, data domain.Dataset) error {
	_, err := fmt.Fprintf(w, "%s:\n%s\n\n", label, data.String())
	return err
}

// WriteOriginal writes the dataset section that precedes the results.
func WriteOriginal(w io.Writer, data domain.Dataset) error {
	return WriteDataset(w, "Original Data", data)
}

// WriteResults writes the results section of the plain-text report:
// the summary line, then each algorithm's average time and sorted output
// in report order.
func WriteResults(w io.Writer, r *service.Report) error {
	if _, err := fmt.Fprintf(w, "\nResults for %d items, averaged over %d iterations:\n\n",
		r.Size, r.Iterations); err != nil {
		return err
	}
	for _, res := range r.Results {
		if _, err := fmt.Fprintf(w, "%s Sort:\nAverage Time: %.3f ms\n", res.Name, res.AverageMs); err != nil {
			return err
		}
		if err := WriteDataset(w, "Sorted Data", res.Sorted); err != nil {
			return err
		}
	}
	return nil
}

// WriteText writes the complete plain-text report.
func WriteText(w io.Writer, r *service.Report) error {
	if err := WriteOriginal(w, r.Original); err != nil {
		return err
	}
	return WriteResults(w, r)
}
