package regions

import (
	"strings"
	"unicode/utf8"
)

// SnakeToPascal converts an entity type such as "line_item" into "LineItem".
// The whole string is lowercased first, then every underscore-separated segment is capitalized.
func SnakeToPascal(s string) string {
	parts := strings.Split(strings.ToLower(s), "_")
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

// LabelToKey converts a form field label such as "Invoice Date:\n" into "InvoiceDate".
// Newlines and colons are dropped, each space-separated word is capitalized with the rest
// lowercased, words are joined and apostrophes removed.
func LabelToKey(label string) string {
	if label == "" {
		return ""
	}

	cleaned := strings.Map(func(r rune) rune {
		if r == '\n' || r == ':' {
			return -1
		}
		return r
	}, label)
	cleaned = strings.TrimSpace(cleaned)

	var b strings.Builder
	for _, word := range strings.Split(cleaned, " ") {
		b.WriteString(capitalize(word))
	}
	return strings.ReplaceAll(b.String(), "'", "")
}

// SlugToPascal converts a VAT property type such as "tax_amount" or "net-amount" into
// "TaxAmount" or "NetAmount". Segments split on '/', '-' or '_'.
func SlugToPascal(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '/' || r == '-' || r == '_'
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(capitalize(part))
	}
	return b.String()
}

// upperFirst uppercases the first rune and leaves the rest untouched
func upperFirst(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + s[size:]
}

// capitalize uppercases the first rune and lowercases the rest
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(s)
	return strings.ToUpper(string(r)) + strings.ToLower(s[size:])
}
