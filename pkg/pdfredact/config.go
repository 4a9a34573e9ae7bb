package pdfredact

import (
	"log/slog"
)

// RedactConfig holds user options for redacting a PDF
type RedactConfig struct {
	Color          Color        // Fill colour of the redaction boxes
	Label          string       // Optional text drawn inside each box (e.g. "REDACTED")
	LabelColor     Color        // Colour of the label text
	LayerName      string       // Base name of the redaction layer (page number will be appended)
	Force          bool         // Redact again even if a redaction layer already exists
	StrictGeometry bool         // Skip regions whose polygon is not axis-aligned
	SkewTolerance  float64      // Allowed edge deviation in normalized units when StrictGeometry is set
	DumpPDF        bool         // Dump PDF structure for debugging
	Logger         *slog.Logger // Custom logger (nil = slog.Default())
	Font           FontConfig
}

// DefaultConfig returns a config with sensible defaults
func DefaultConfig() RedactConfig {
	return RedactConfig{
		Color:          Black,
		LabelColor:     White,
		LayerName:      "Redactions", // Will be formatted as "Redactions (Page X)" in the final PDF
		Force:          false,
		StrictGeometry: false,
		SkewTolerance:  0.005,
		DumpPDF:        false,
		Logger:         nil, // slog.Default()
		Font:           DefaultFont,
	}
}

// FontConfig contains font settings for box labels
type FontConfig struct {
	Name  string  // Font name (e.g., "Helvetica")
	Style string  // Font style ("", "B", "I", "BI")
	Size  float64 // Maximum font size; shrunk to fit the box
}

// DefaultFont uses a core font so no font files need embedding
var DefaultFont = FontConfig{
	Name:  "Helvetica",
	Style: "B",
	Size:  10,
}
