package pdfredact

import (
	"fmt"
	"regexp"
	"strings"
)

// Optional content group names as the common writers emit them
var ocgNamePatterns = []*regexp.Regexp{
	regexp.MustCompile(`/Type\s*/OCG\s*/Name\s*\(([^)]+)\)`),
	regexp.MustCompile(`/OCG\s*<<[^>]*?/Name\s*\(([^)]+)\)`),
	regexp.MustCompile(`<</Type/OCG/Name\(([^)]+)\)`),
	regexp.MustCompile(`/Name\s*\(([^)]+)\)[\s\S]{1,50}/Type\s*/OCG`),
}

// layerNames lists the distinct optional content group names found in the raw PDF, in file order
func layerNames(pdfData []byte) ([]string, error) {
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("empty PDF data")
	}
	content := string(pdfData)

	var names []string
	seen := make(map[string]struct{})
	for _, re := range ocgNamePatterns {
		for _, m := range re.FindAllStringSubmatch(content, -1) {
			name := decodePDFName(m[1])
			if _, dup := seen[name]; dup {
				continue
			}
			seen[name] = struct{}{}
			names = append(names, name)
		}
	}
	return names, nil
}

// LayerCheckResult reports what CheckExistingLayers found
type LayerCheckResult struct {
	Layers            []string // All detected layers
	HasRedactionLayer bool     // A layer written by this package exists
	LayerName         string   // Name of that layer
	Warnings          []string // Other layers that look like redactions
}

// CheckExistingLayers looks for a layer named layerName, or "<layerName> (Page N)",
// i.e. a file this package already redacted. Foreign layers mentioning "redact" only produce warnings.
func CheckExistingLayers(pdfData []byte, layerName string) (LayerCheckResult, error) {
	var result LayerCheckResult

	layers, err := layerNames(pdfData)
	if err != nil {
		return result, fmt.Errorf("cannot analyze layers: %w", err)
	}
	result.Layers = layers

	// Writers differ in how they escape the parentheses, so only the prefix is anchored
	ours := regexp.MustCompile(`^` + regexp.QuoteMeta(layerName) + `\s*\(Page\s*\d+`)

	for _, layer := range layers {
		switch {
		case layer == layerName || ours.MatchString(layer):
			result.HasRedactionLayer = true
			result.LayerName = layer
			return result, nil
		case strings.Contains(strings.ToLower(layer), "redact") && !strings.HasPrefix(layer, layerName):
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Existing layer detected that might contain redactions: %s", layer))
		}
	}
	return result, nil
}
