package pdfredact

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#000000", Black, false},
		{"#FF8000", Color{255, 128, 0}, false},
		{"#ff8000", Color{255, 128, 0}, false},
		{"rgb(10, 20, 30)", Color{10, 20, 30}, false},
		{"rgb(10,20,30)", Color{10, 20, 30}, false},
		{"rgb(256, 0, 0)", Color{}, true},
		{"#fff", Color{}, true},
		{"red", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorHex(t *testing.T) {
	assert.Equal(t, "#ff8000", Color{255, 128, 0}.Hex())
}
