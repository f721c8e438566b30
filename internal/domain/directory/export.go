package directory

import (
	"fmt"
	"io"
	"time"

	"github.com/jung-kurt/gofpdf"
)

type exportColumn struct {
	field Field
	width float64
}

var exportColumns = []exportColumn{
	{field: FieldFullName, width: 50},
	{field: FieldDepartment, width: 32},
	{field: FieldPosition, width: 55},
	{field: FieldReportingManager, width: 45},
	{field: FieldWorkArrangement, width: 35},
	{field: FieldEmploymentStatus, width: 28},
	{field: FieldStartDate, width: 28},
}

// WritePDF renders rows as an A4 landscape table.
func WritePDF(w io.Writer, title string, generatedAt time.Time, rows []Employee) error {
	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetTitle(title, true)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, title)
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 9)
	pdf.Cell(0, 6, fmt.Sprintf("Generated %s - %d employee(s)", generatedAt.Format("2006-01-02 15:04 MST"), len(rows)))
	pdf.Ln(10)

	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(30, 58, 138)
	pdf.SetTextColor(255, 255, 255)
	for _, col := range exportColumns {
		pdf.CellFormat(col.width, 8, col.field.Label(), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(0, 0, 0)
	for i, row := range rows {
		fill := i%2 == 1
		pdf.SetFillColor(243, 244, 246)
		for _, col := range exportColumns {
			value, _ := row.Value(col.field)
			pdf.CellFormat(col.width, 7, tr(value), "1", 0, "L", fill, 0, "")
		}
		pdf.Ln(-1)
	}

	if err := pdf.Error(); err != nil {
		return fmt.Errorf("directory: render pdf: %w", err)
	}
	return pdf.Output(w)
}
