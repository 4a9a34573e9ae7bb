package pdfredact

import (
	"bytes"
	"fmt"
	"io"

	"codeberg.org/go-pdf/fpdf"
	"codeberg.org/go-pdf/fpdf/contrib/gofpdi"
)

// Overlay imports every page of an existing PDF and draws the marks over it.
// Pages without marks are copied unchanged.
func Overlay(inputPDFData []byte, sizes []PageSize, marks []Mark, config RedactConfig) ([]byte, error) {
	byPage := make(map[int][]Mark)
	for _, m := range marks {
		byPage[m.Page] = append(byPage[m.Page], m)
	}

	pdf := fpdf.New("P", "pt", "", "")
	pdf.SetAutoPageBreak(false, 0)
	importer := gofpdi.NewImporter()
	rs := io.ReadSeeker(bytes.NewReader(inputPDFData))

	for i, size := range sizes {
		pageNum := i + 1

		pdf.AddPageFormat("P", fpdf.SizeType{Wd: size.Width, Ht: size.Height})

		tpl := importer.ImportPageFromStream(pdf, &rs, pageNum, "/MediaBox")
		importer.UseImportedTemplate(pdf, tpl, 0, 0, size.Width, 0)

		pageMarks := byPage[i]
		if len(pageMarks) == 0 {
			continue
		}
		if err := drawRedactionLayer(pdf, pageMarks, size, pageNum, config); err != nil {
			return nil, fmt.Errorf("failed to draw redaction layer for page %d: %w", pageNum, err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
