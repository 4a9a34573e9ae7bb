package pdfredact

import (
	"fmt"

	"codeberg.org/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

// drawRedactionLayer paints every mark of one page into the page content and records the
// redaction as a "<LayerName> (Page N)" layer. The boxes stay outside the layer so viewers
// cannot hide them; the layer only holds the optional labels and marks the file as redacted.
func drawRedactionLayer(
	pdf *fpdf.Fpdf,
	marks []Mark,
	size PageSize,
	pageNum int,
	config RedactConfig,
) error {
	pdf.SetFillColor(int(config.Color.R), int(config.Color.G), int(config.Color.B))
	for _, m := range marks {
		x, y, w, h := m.Rect.TopDown(size.Height)
		pdf.Rect(x, y, w, h, "F")
	}

	layer := pdf.AddLayer(fmt.Sprintf("%s (Page %d)", config.LayerName, pageNum), true)
	pdf.BeginLayer(layer)
	defer pdf.EndLayer()

	if config.Label == "" {
		return pdf.Error()
	}

	// Core fonts only cover Latin-1
	label, err := charmap.ISO8859_1.NewEncoder().String(config.Label)
	if err != nil {
		return fmt.Errorf("label %q cannot be encoded as ISO-8859-1: %w", config.Label, err)
	}

	pdf.SetFont(config.Font.Name, config.Font.Style, config.Font.Size)
	pdf.SetTextColor(int(config.LabelColor.R), int(config.LabelColor.G), int(config.LabelColor.B))
	for _, m := range marks {
		drawLabel(pdf, label, m, size, config.Font)
	}
	pdf.SetFontSize(config.Font.Size)

	return pdf.Error()
}

// drawLabel centres the label in the mark, shrinking the font to fit
func drawLabel(pdf *fpdf.Fpdf, label string, m Mark, size PageSize, font FontConfig) {
	x, y, w, h := m.Rect.TopDown(size.Height)

	fontSize := font.Size
	if limit := h * 0.8; fontSize > limit {
		fontSize = limit
	}
	pdf.SetFontSize(fontSize)

	strWidth := pdf.GetStringWidth(label)
	if strWidth > w*0.9 && strWidth > 0 {
		fontSize *= (w * 0.9) / strWidth
		pdf.SetFontSize(fontSize)
		strWidth = pdf.GetStringWidth(label)
	}
	if fontSize < 1 {
		return
	}

	pdf.Text(x+(w-strWidth)/2, y+h/2+fontSize*0.35, label)
}
