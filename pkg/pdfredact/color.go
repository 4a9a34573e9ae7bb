package pdfredact

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB colour
type Color struct {
	R, G, B uint8
}

var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

var (
	hexPattern = regexp.MustCompile(`^#([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)
	rgbPattern = regexp.MustCompile(`^rgb\((\d+),\s*(\d+),\s*(\d+)\)$`)
)

// ParseColor accepts "#RRGGBB" or "rgb(r, g, b)"
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)

	if m := hexPattern.FindStringSubmatch(s); m != nil {
		var c [3]uint8
		for i := range c {
			v, _ := strconv.ParseUint(m[i+1], 16, 8)
			c[i] = uint8(v)
		}
		return Color{c[0], c[1], c[2]}, nil
	}

	if m := rgbPattern.FindStringSubmatch(s); m != nil {
		var c [3]uint8
		for i := range c {
			v, err := strconv.ParseUint(m[i+1], 10, 8)
			if err != nil {
				return Color{}, fmt.Errorf("rgb component %q out of range", m[i+1])
			}
			c[i] = uint8(v)
		}
		return Color{c[0], c[1], c[2]}, nil
	}

	return Color{}, fmt.Errorf("invalid color format %q, use HEX (#RRGGBB) or RGB string (rgb(r, g, b))", s)
}

// Hex returns the colour as #rrggbb
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
