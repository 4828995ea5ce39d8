// Package export renders a stored inspection result as downloadable
// scorecard files (CSV for spreadsheets, XLSX for the ministry template).
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"fahs/internal/domain"
	"fahs/internal/render"
)

// BOM is the UTF-8 byte order mark, written first for Excel compatibility
// on Windows; the descriptions are Arabic and mis-detect as Latin-1 without it.
var BOM = []byte{0xEF, 0xBB, 0xBF}

// columns defines the CSV header row.
var columns = []string{
	"Inspection ID",
	"Restaurant",
	"Commercial Register",
	"Criterion ID",
	"Criterion",
	"Status",
	"Score",
	"Confidence",
	"Details",
}

// Writer wraps csv.Writer for exporting a scorecard as CSV.
type Writer struct {
	csv *csv.Writer
}

// NewWriter creates a Writer that writes CSV to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{csv: csv.NewWriter(w)}
}

// WriteHeader writes the header row.
func (w *Writer) WriteHeader() error {
	return w.csv.Write(columns)
}

// WriteResult writes one row per criterion of the result.
func (w *Writer) WriteResult(result *domain.InspectionResult) error {
	card := render.BuildScorecard(result)
	for _, criterion := range card.Criteria {
		row := []string{
			card.InspectionID,
			card.RestaurantName,
			card.CommercialRegister,
			fmt.Sprintf("%d", criterion.CriterionID),
			criterion.Name,
			criterion.Label,
			fmt.Sprintf("%.1f", criterion.Score),
			criterion.Confidence,
			strings.Join(criterion.Details, "; "),
		}
		if err := w.csv.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes the underlying csv.Writer buffer.
func (w *Writer) Flush() {
	w.csv.Flush()
}

// Error returns any error from the underlying csv.Writer.
func (w *Writer) Error() error {
	return w.csv.Error()
}
