package render

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-pdf/fpdf"

	"github.com/neoecg/neoecg/internal/engine"
)

// pdfColWidths are the five table column widths in mm, ~190 mm total
// inside A4 margins.
var pdfColWidths = [5]float64{48, 40, 40, 35, 27}

// pdfCellRunes is the per-cell truncation width; longer values get an
// ellipsis rather than wrapping.
const pdfCellRunes = 28

// WritePDF renders the report as a single-page PDF document. The timestamp
// is a parameter so exports are reproducible in tests.
func WritePDF(r *engine.Report, generated time.Time, w io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()

	// Core fonts are cp1252; translate the UTF-8 dashes and ellipses.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Neonatal ECG Report", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 11)
	pdf.CellFormat(0, 8, generated.Format("2006-01-02 15:04"), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 8, "Report ID: "+r.ID, "", 1, "", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "B", 11)
	for i, h := range summaryHeader {
		pdf.CellFormat(pdfColWidths[i], 8, h, "1", 0, "", false, 0, "")
	}
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	for _, row := range r.Rows {
		cells := [5]string{
			row.Label,
			FormatInput(row),
			FormatValue(row.Value, row.Unit),
			FormatBand(row.Band),
			FormatStatus(row.Status),
		}
		for i, cell := range cells {
			pdf.CellFormat(pdfColWidths[i], 8, tr(Truncate(cell, pdfCellRunes)), "1", 0, "", false, 0, "")
		}
		pdf.Ln(8)
	}

	pdf.Ln(4)
	pdf.MultiCell(0, 8, tr("Axis: "+r.Axis.Display()), "", "", false)

	for _, a := range r.Alerts {
		pdf.MultiCell(0, 8, tr(fmt.Sprintf("[%s] %s", a.Level, a.Message)), "", "", false)
	}

	if r.Comment != "" {
		pdf.Ln(2)
		pdf.MultiCell(0, 8, tr("Comments: "+r.Comment), "", "", false)
	}

	pdf.Ln(3)
	pdf.SetFont("Arial", "I", 10)
	pdf.MultiCell(0, 8, tr("Disclaimer: "+Disclaimer), "", "", false)

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

// SavePDF writes the report PDF to a file.
func SavePDF(r *engine.Report, generated time.Time, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := WritePDF(r, generated, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
