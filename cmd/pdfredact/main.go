// pdfredact is a command-line tool for covering sensitive regions of a PDF.
//
// Regions are read from Google Document AI JSON (invoice entities, form fields or OCR blocks).
// Every region whose key is listed in -targets is painted over with an opaque box. Each redacted
// page also gets a "Redactions (Page N)" layer marking it as done.
//
// Usage:
//
//	pdfredact -pdf invoice.pdf -regions invoice.json -targets InvoiceId,SupplierName -output out.pdf [options]
//
// Required flags:
//
//	-pdf string       Path to the PDF to redact
//	-regions string   Path to the Document AI JSON
//	-targets string   Comma-separated region keys to redact
//	-output string    Output PDF path
//
// Redaction options:
//
//	-color string     Box colour, #RRGGBB or rgb(r, g, b) (default "#000000")
//	-label string     Text drawn inside each box
//	-strict           Skip regions whose polygon is not axis-aligned
//	-force            Redact again even if a redaction layer exists
//	-overwrite        Overwrite the output PDF if it already exists
//
// Inspection options:
//
//	-list-keys             Print the region keys of -regions and exit
//	-dump-regions string   Path to save the extracted regions as JSON
//	-plan string           Path to save the two-corner redaction plan as JSON
//	-debug-pdf             Dump PDF structure for debugging
//	-v                     Verbose logging
//
// Examples:
//
// List the keys a payload offers:
//
//	pdfredact -regions invoice.json -list-keys
//
// Redact two fields in red:
//
//	pdfredact -pdf invoice.pdf -regions invoice.json -targets InvoiceId,TotalAmount -color "#ff0000" -output invoice_redacted.pdf
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gardar/docredact/pkg/gdocai"
	"github.com/gardar/docredact/pkg/pdfredact"
	"github.com/gardar/docredact/pkg/regions"
)

func main() {
	pdfPath := flag.String("pdf", "", "Path to the PDF to redact")
	regionsPath := flag.String("regions", "", "Path to the Document AI JSON describing the regions")
	targetsFlag := flag.String("targets", "", "Comma-separated region keys to redact")
	outputPath := flag.String("output", "", "Output PDF path")
	colorFlag := flag.String("color", "#000000", "Box colour, #RRGGBB or rgb(r, g, b)")
	label := flag.String("label", "", "Text drawn inside each redaction box")
	strict := flag.Bool("strict", false, "Skip regions whose polygon is not axis-aligned")
	force := flag.Bool("force", false, "Redact again even if a redaction layer is already detected")
	overwriteOutput := flag.Bool("overwrite", false, "Overwrite the output PDF if it already exists")
	listKeys := flag.Bool("list-keys", false, "Print the region keys found in -regions and exit")
	dumpRegionsPath := flag.String("dump-regions", "", "Path to save the extracted regions as JSON")
	planPath := flag.String("plan", "", "Path to save the two-corner redaction plan as JSON")
	dumpPDF := flag.Bool("debug-pdf", false, "Dump PDF structure for debugging")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if *regionsPath == "" {
		fmt.Fprintln(os.Stderr, "Error: Must provide -regions path")
		flag.PrintDefaults()
		os.Exit(1)
	}

	payload, err := os.ReadFile(*regionsPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read regions file: %v\n", err)
		os.Exit(1)
	}

	if *listKeys || *dumpRegionsPath != "" {
		ext, err := regions.ExtractJSON(payload)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to extract regions: %v\n", err)
			os.Exit(1)
		}
		if *dumpRegionsPath != "" {
			writeJSON(*dumpRegionsPath, ext)
			fmt.Println("Regions saved to", *dumpRegionsPath)
		}
		if *listKeys {
			fmt.Printf("%s payload, %d regions:\n", ext.Shape, len(ext.Regions))
			for _, key := range ext.Keys() {
				fmt.Println(key)
			}
			return
		}
	}

	if *pdfPath == "" || *outputPath == "" {
		fmt.Fprintln(os.Stderr, "Error: Must provide -pdf and -output")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if err := checkOutput(*outputPath, *overwriteOutput); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	color, err := pdfredact.ParseColor(*colorFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	config := pdfredact.DefaultConfig()
	config.Color = color
	config.Label = *label
	config.Force = *force
	config.StrictGeometry = *strict
	config.DumpPDF = *dumpPDF
	config.Logger = logger

	inputData, err := os.ReadFile(*pdfPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read input PDF: %v\n", err)
		os.Exit(1)
	}

	result, err := pdfredact.Redact(inputData, payload, splitTargets(*targetsFlag), config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error redacting PDF: %v\n", err)
		os.Exit(1)
	}

	if *planPath != "" {
		writeJSON(*planPath, pdfredact.CornerPlan(result.Marks))
		fmt.Println("Redaction plan saved to", *planPath)
	}

	if err := os.WriteFile(*outputPath, result.PDF, 0666); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output PDF: %v\n", err)
		os.Exit(1)
	}

	if warning := result.Warning(); warning != "" {
		fmt.Println("Warning:", warning)
	}
	for _, s := range result.Skipped {
		fmt.Printf("Warning: region %s on page %d skipped: %s\n", s.Key, s.Page+1, s.Reason)
	}
	fmt.Printf("✅ Redacted PDF created: %s (%d boxes)\n", *outputPath, len(result.Marks))
}

// checkOutput refuses an existing output path unless overwrite is set.
// The file is left in place; os.WriteFile truncates it later.
func checkOutput(path string, overwrite bool) error {
	if _, err := os.Stat(path); err == nil && !overwrite {
		return fmt.Errorf("output file %s already exists, use -overwrite to overwrite", path)
	}
	return nil
}

func splitTargets(s string) []string {
	var targets []string
	for _, t := range strings.Split(s, ",") {
		if t = strings.TrimSpace(t); t != "" {
			targets = append(targets, t)
		}
	}
	return targets
}

func writeJSON(path string, v interface{}) {
	out, err := gdocai.ToJSON(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode %s: %v\n", path, err)
		os.Exit(1)
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write %s: %v\n", path, err)
		os.Exit(1)
	}
}
