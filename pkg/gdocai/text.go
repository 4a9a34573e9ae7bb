package gdocai

import (
	"strings"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
)

// LayoutText returns the text of a layout.
// The inline text anchor content wins; otherwise the anchor's segments are resolved against fullText.
func LayoutText(layout *documentaipb.Document_Page_Layout, fullText string) string {
	return AnchorText(layout.GetTextAnchor(), fullText)
}

// AnchorText resolves a text anchor the same way LayoutText does
func AnchorText(anchor *documentaipb.Document_TextAnchor, fullText string) string {
	if anchor == nil {
		return ""
	}
	if anchor.Content != "" {
		return anchor.Content
	}

	runes := []rune(fullText)
	var b strings.Builder
	for _, seg := range anchor.GetTextSegments() {
		end := min(max(int(seg.GetEndIndex()), 0), len(runes))
		start := min(max(int(seg.GetStartIndex()), 0), end)
		b.WriteString(string(runes[start:end]))
	}
	return b.String()
}
