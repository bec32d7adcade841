package reportgen

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/sarvasvaa/dairyops/internal/domain/models"
)

const (
	indexColWidth = 12.0
	rowHeight     = 6.0
)

// Render walks the document tree and produces the PDF bytes. Layout and
// pagination live here; the assembler only decides content and structure.
func Render(doc *models.Document) ([]byte, error) {
	if doc == nil {
		return nil, ErrNoData
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(doc.Info.Title, true)
	pdf.SetAuthor(doc.Info.Author, true)
	pdf.SetSubject(doc.Info.Subject, true)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	renderHeader(pdf, tr, doc.Header)

	for _, section := range doc.Sections {
		if section.PageBreak {
			pdf.AddPage()
		}
		pdf.SetFont("Helvetica", "B", 13)
		pdf.SetTextColor(34, 34, 34)
		pdf.CellFormat(0, 8, tr(section.Title), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

		for _, block := range section.Blocks {
			renderBlock(pdf, tr, block)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func renderHeader(pdf *gofpdf.Fpdf, tr func(string) string, header models.Header) {
	pdf.SetFont("Helvetica", "B", 16)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(120, 7, tr(header.Brand), "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 7, tr(header.Title), "", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.SetTextColor(85, 85, 85)
	pdf.CellFormat(120, 5, tr(header.Address), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 5, tr(header.Period), "", 1, "R", false, 0, "")

	pdf.Ln(3)
	left, y := pdf.GetX(), pdf.GetY()
	pageW, _ := pdf.GetPageSize()
	_, _, right, _ := pdf.GetMargins()
	pdf.SetDrawColor(0, 0, 0)
	pdf.Line(left, y, pageW-right, y)
	pdf.Ln(4)
}

func renderBlock(pdf *gofpdf.Fpdf, tr func(string) string, block models.Block) {
	switch block.Kind {
	case models.BlockHeading:
		pdf.SetFont("Helvetica", "B", 11)
		pdf.SetTextColor(68, 68, 68)
		pdf.CellFormat(0, 7, tr(block.Text), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)

	case models.BlockColumns:
		pdf.SetFont("Helvetica", "", 10)
		width := contentWidth(pdf) / float64(len(block.Columns))
		for _, col := range block.Columns {
			pdf.CellFormat(width, rowHeight, tr(col), "", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight + 1)

	case models.BlockTable:
		renderTable(pdf, tr, block.Table)
	}
}

// renderTable draws a header row on a grey fill, then data rows separated
// by light horizontal lines, the index column kept narrow.
func renderTable(pdf *gofpdf.Fpdf, tr func(string) string, table *models.Table) {
	if table == nil || len(table.Headers) == 0 {
		return
	}

	width := contentWidth(pdf)
	colWidth := width
	if len(table.Headers) > 1 {
		colWidth = (width - indexColWidth) / float64(len(table.Headers)-1)
	}

	cellWidth := func(col int) float64 {
		if col == 0 && len(table.Headers) > 1 {
			return indexColWidth
		}
		return colWidth
	}

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetFillColor(242, 242, 242)
	pdf.SetDrawColor(200, 200, 200)
	for i, h := range table.Headers {
		pdf.CellFormat(cellWidth(i), rowHeight, tr(h), "B", 0, "L", true, 0, "")
	}
	pdf.Ln(rowHeight)

	pdf.SetFont("Helvetica", "", 9)
	for _, row := range table.Rows {
		for i, cell := range row {
			if i >= len(table.Headers) {
				break
			}
			pdf.CellFormat(cellWidth(i), rowHeight, tr(cell), "B", 0, "L", false, 0, "")
		}
		pdf.Ln(rowHeight)
	}
	pdf.Ln(3)
}

func contentWidth(pdf *gofpdf.Fpdf) float64 {
	pageW, _ := pdf.GetPageSize()
	left, _, right, _ := pdf.GetMargins()
	return pageW - left - right
}
