package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// SlipField is one labelled line on a result slip.
type SlipField struct {
	Label string
	Value string
}

// SlipData carries everything needed to render a printable result slip.
type SlipData struct {
	Title    string
	Subtitle string
	Fields   []SlipField
	Decision string
	Footer   string
}

// SlipRenderer produces PDF result slips (relevé de résultat).
type SlipRenderer struct{}

// NewSlipRenderer constructs a slip renderer.
func NewSlipRenderer() *SlipRenderer {
	return &SlipRenderer{}
}

// Render creates a single-page A4 slip.
func (r *SlipRenderer) Render(data SlipData) ([]byte, error) {
	if data.Title == "" {
		return nil, fmt.Errorf("slip requires a title")
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(15, 20, 15)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, strings.ToUpper(data.Title), "", 1, "C", false, 0, "")
	if data.Subtitle != "" {
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(0, 8, data.Subtitle, "", 1, "C", false, 0, "")
	}
	pdf.Ln(6)

	pdf.SetFont("Arial", "", 11)
	for _, field := range data.Fields {
		pdf.SetFont("Arial", "B", 11)
		pdf.CellFormat(60, 8, field.Label, "1", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 11)
		pdf.CellFormat(120, 8, field.Value, "1", 1, "L", false, 0, "")
	}

	if data.Decision != "" {
		pdf.Ln(8)
		pdf.SetFont("Arial", "B", 14)
		pdf.CellFormat(0, 12, strings.ToUpper(data.Decision), "1", 1, "C", false, 0, "")
	}

	if data.Footer != "" {
		pdf.Ln(10)
		pdf.SetFont("Arial", "I", 8)
		pdf.CellFormat(0, 6, data.Footer, "", 1, "C", false, 0, "")
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render slip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
