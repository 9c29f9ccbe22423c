// Package render — PDF renderer.
// Turns a lesson into a printable handout using gofpdf. Blocks are
// classified with the same rules as the HTML renderer, so the handout has
// the structure the course player shows.
package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/lessonmd/core"
	"github.com/gaurav-prasanna/lessonmd/core/markup"
	"github.com/jung-kurt/gofpdf"
)

// PDFRenderer renders lesson content as a PDF handout.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the lesson into PDF bytes.
func (r *PDFRenderer) Render(lesson core.Lesson) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	if lesson.Title != "" {
		pdf.SetFont("Helvetica", "B", 18)
		pdf.MultiCell(0, 8, tr(lesson.Title), "", "L", false)
		pdf.Ln(4)
	}
	if lesson.Source != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+lesson.Source), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
		pdf.Ln(6)
	}

	for _, b := range markup.Segment(lesson.Text()) {
		switch markup.Classify(b) {
		case markup.KindCodeFence:
			fences := markup.Fences(b.Text())
			if len(fences) == 0 {
				// Unterminated fence: keep the text rather than dropping it.
				renderParagraph(pdf, tr, b.Lines)
			}
			for _, f := range fences {
				renderCode(pdf, tr, f)
			}
		case markup.KindTable:
			header, rows := markup.TableCells(b)
			renderTable(pdf, tr, header, rows)
		case markup.KindUnorderedList:
			pdf.SetFont("Helvetica", "", 10)
			for _, item := range markup.ListItems(b) {
				pdf.MultiCell(0, 5, tr("• "+markup.StripInline(item)), "", "L", false)
			}
		case markup.KindOrderedList:
			pdf.SetFont("Helvetica", "", 10)
			for i, item := range markup.ListItems(b) {
				pdf.MultiCell(0, 5, tr(strconv.Itoa(i+1)+". "+markup.StripInline(item)), "", "L", false)
			}
		case markup.KindHorizontalRule:
			left, _, right, _ := pdf.GetMargins()
			width, _ := pdf.GetPageSize()
			y := pdf.GetY() + 2
			pdf.SetDrawColor(180, 180, 180)
			pdf.Line(left, y, width-right, y)
			pdf.Ln(4)
		case markup.KindHeading:
			level, text, _ := markup.Heading(b)
			renderHeading(pdf, tr(text), level)
			if len(b.Lines) > 1 {
				renderParagraph(pdf, tr, b.Lines[1:])
			}
		case markup.KindBlockquote:
			pdf.SetFont("Helvetica", "I", 10)
			pdf.SetTextColor(90, 90, 90)
			for _, line := range b.Lines {
				line = strings.TrimPrefix(strings.TrimPrefix(line, ">"), " ")
				pdf.MultiCell(0, 5, tr("    "+markup.StripInline(line)), "", "L", false)
			}
			pdf.SetTextColor(0, 0, 0)
		default:
			renderParagraph(pdf, tr, b.Lines)
		}
		pdf.Ln(3)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderHeading sets the font size based on heading level and writes text.
func renderHeading(pdf *gofpdf.Fpdf, text string, level int) {
	sizes := map[int]float64{1: 18, 2: 15, 3: 13}
	size, ok := sizes[level]
	if !ok {
		size = 12
	}
	pdf.Ln(2)
	pdf.SetFont("Helvetica", "B", size)
	pdf.MultiCell(0, size*0.6, text, "", "L", false)
	pdf.Ln(1)
}

func renderParagraph(pdf *gofpdf.Fpdf, tr func(string) string, lines []string) {
	pdf.SetFont("Helvetica", "", 10)
	for _, line := range lines {
		pdf.MultiCell(0, 5, tr(markup.StripInline(line)), "", "L", false)
	}
}

func renderCode(pdf *gofpdf.Fpdf, tr func(string) string, f markup.Fence) {
	pdf.SetFont("Helvetica", "B", 8)
	pdf.SetTextColor(100, 100, 100)
	pdf.MultiCell(0, 4, tr(markup.FenceLabel(f.Language)), "", "L", false)
	pdf.SetTextColor(0, 0, 0)

	pdf.SetFont("Courier", "", 9)
	pdf.SetFillColor(245, 245, 245)
	for _, line := range strings.Split(f.Code, "\n") {
		pdf.MultiCell(0, 4.5, tr(line), "", "L", true)
	}
	pdf.Ln(2)
}

func renderTable(pdf *gofpdf.Fpdf, tr func(string) string, header []string, rows [][]string) {
	if len(header) == 0 {
		return
	}
	left, _, right, _ := pdf.GetMargins()
	pageWidth, _ := pdf.GetPageSize()
	colWidth := (pageWidth - left - right) / float64(len(header))

	pdf.SetFont("Helvetica", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for _, cell := range header {
		pdf.CellFormat(colWidth, 6, tr(cell), "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 10)
	for _, row := range rows {
		for i := range header {
			var cell string
			if i < len(row) {
				cell = row[i]
			}
			pdf.CellFormat(colWidth, 6, tr(cell), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}
}
