package pdfredact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckExistingLayers(t *testing.T) {
	tests := []struct {
		name        string
		pdf         string
		wantLayer   bool
		wantWarning bool
	}{
		{"no layers", "%PDF-1.3\n1 0 obj <</Type /Catalog>> endobj", false, false},
		{"page layer", "<</Type /OCG /Name (Redactions \\(Page 2\\))>>", true, false},
		{"exact layer", "<</Type /OCG /Name (Redactions)>>", true, false},
		{"foreign redaction layer", "<</Type /OCG /Name (Manual redact)>>", false, true},
		{"unrelated layer", "<</Type /OCG /Name (OCR Text)>>", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := CheckExistingLayers([]byte(tt.pdf), "Redactions")
			require.NoError(t, err)
			assert.Equal(t, tt.wantLayer, result.HasRedactionLayer)
			assert.Equal(t, tt.wantWarning, len(result.Warnings) > 0)
		})
	}
}

func TestCheckExistingLayers_Empty(t *testing.T) {
	_, err := CheckExistingLayers(nil, "Redactions")
	assert.Error(t, err)
}

func TestDecodeUTF16BE(t *testing.T) {
	s, err := decodeUTF16BE([]byte{0xFE, 0xFF, 0x00, 'O', 0x00, 'K'})
	require.NoError(t, err)
	assert.Equal(t, "OK", s)

	_, err = decodeUTF16BE([]byte{0x00, 'O'})
	assert.Error(t, err)
}

func TestDecodePDFName(t *testing.T) {
	assert.Equal(t, "Redactions (Page 1)", decodePDFName(`Redactions \(Page 1\)`))
	assert.Equal(t, `a\b`, decodePDFName(`a\\b`))
	assert.Equal(t, "Hi", decodePDFName("\xfe\xff\x00H\x00i"))
}
