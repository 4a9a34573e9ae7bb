// Package pdfredact covers sensitive regions of a PDF with opaque boxes.
//
// Regions come from a Document AI payload (see package regions). The caller names the region keys
// to hide; matching regions are normalized against each page's MediaBox and painted into the
// content of the imported pages. A per-page optional content layer records the redaction and
// holds the optional labels. The same marks can also be exported in
// two-corner form for tools that remove the underlying content.
//
// Key Features:
//
// - Redact an existing PDF from a Document AI payload and a list of target keys
// - Report targets that matched no region ("Keys not found")
// - Export a corner plan for true content removal
// - Detect existing redaction layers to prevent redacting twice
//
// Main Functions:
//
// - Redact: Extracts, selects, plans and overlays in one call
// - PlanMarks: Normalizes selected regions into page-space marks
// - Overlay: Draws marks over an existing PDF
// - CornerPlan: Converts marks into lower-left / upper-right corners
package pdfredact

import (
	"fmt"

	"github.com/gardar/docredact/pkg/regions"
)

// Result is the outcome of one redaction
type Result struct {
	PDF          []byte          // Redacted document
	Marks        []Mark          // Rectangles that were drawn
	Skipped      []SkippedRegion // Selected regions that could not be drawn
	Matched      []string        // Keys of all selected regions, in extraction order
	KeysNotFound []string        // Targets that matched no region
}

// Warning returns the "Keys not found" diagnostic, or "" when every target matched
func (r *Result) Warning() string {
	return keysNotFoundWarning(r.KeysNotFound)
}

// Redact covers the regions of payload whose keys are in targets.
// payload is raw Document AI JSON in any of the supported shapes.
func Redact(inputPDFData []byte, payload []byte, targets []string, config RedactConfig) (*Result, error) {
	logger := getLogger(config)

	if len(inputPDFData) == 0 {
		return nil, fmt.Errorf("input PDF data is empty")
	}
	if config.LayerName == "" {
		return nil, fmt.Errorf("layer name must not be empty")
	}

	ext, err := regions.ExtractJSON(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to extract regions: %w", err)
	}
	logger.Debug("regions extracted", "shape", ext.Shape.String(), "regions", len(ext.Regions))

	if config.DumpPDF {
		dumpPDFStructure(inputPDFData, 2000, logger)
	}

	layerResult, err := CheckExistingLayers(inputPDFData, config.LayerName)
	if err != nil {
		return nil, fmt.Errorf("layer detection failed: %w", err)
	}
	for _, warning := range layerResult.Warnings {
		logger.Warn(warning)
	}

	// Enforce safety check unless force override is requested
	if layerResult.HasRedactionLayer && !config.Force {
		return nil, fmt.Errorf("file already has redactions (layer '%s'), use -force to redact again",
			layerResult.LayerName)
	} else if layerResult.HasRedactionLayer {
		logger.Warn("file already has redactions; redacting again due to force", "layer", layerResult.LayerName)
	}

	sizes, err := PageSizes(inputPDFData)
	if err != nil {
		return nil, err
	}

	selected := regions.Select(ext.Regions, targets)
	marks, skipped := PlanMarks(selected, sizes, config)

	result := &Result{
		Marks:        marks,
		Skipped:      skipped,
		Matched:      make([]string, 0, len(selected)),
		KeysNotFound: MissingKeys(targets, selected),
	}
	for _, r := range selected {
		result.Matched = append(result.Matched, r.Key)
	}

	result.PDF, err = Overlay(inputPDFData, sizes, marks, config)
	if err != nil {
		return nil, fmt.Errorf("error modifying existing PDF: %w", err)
	}

	logger.Info("pdf redacted",
		"pages", len(sizes),
		"marks", len(marks),
		"skipped", len(skipped),
		"keys_not_found", len(result.KeysNotFound))

	return result, nil
}
