package regions

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrDegeneratePolygon is returned for polygons with fewer than four corners
	ErrDegeneratePolygon = errors.New("polygon needs four vertices")
	// ErrSkewedPolygon is returned by CheckAxisAligned for non axis-aligned polygons
	ErrSkewedPolygon = errors.New("polygon is not axis-aligned")
)

// Rect is an axis-aligned rectangle in page-native units, origin bottom-left, y up
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ToPageRectangle converts a normalized polygon into a page-native rectangle.
// The box is rebuilt from the top-left, top-right and bottom-left corners; the bottom-right
// corner is ignored, so skewed input gives a wrong box unless rejected with CheckAxisAligned.
func ToPageRectangle(vertices []Point, pageWidth, pageHeight float64) (Rect, error) {
	if len(vertices) < 4 {
		return Rect{}, fmt.Errorf("%w: got %d", ErrDegeneratePolygon, len(vertices))
	}

	topLeft, topRight, bottomLeft := vertices[0], vertices[1], vertices[3]

	x := topLeft.X * pageWidth
	yTopDown := topLeft.Y * pageHeight
	width := (topRight.X - topLeft.X) * pageWidth
	height := (bottomLeft.Y - topLeft.Y) * pageHeight

	return Rect{
		X:      x,
		Y:      pageHeight - (yTopDown + height),
		Width:  width,
		Height: height,
	}, nil
}

// Corners returns the lower-left and upper-right corners, the form true-redaction tools expect
func (r Rect) Corners() (x1, y1, x2, y2 float64) {
	return r.X, r.Y, r.X + r.Width, r.Y + r.Height
}

// TopDown converts the rectangle back to a top-left origin for drawing APIs such as fpdf
func (r Rect) TopDown(pageHeight float64) (x, y, width, height float64) {
	return r.X, pageHeight - (r.Y + r.Height), r.Width, r.Height
}

// CheckAxisAligned rejects polygons whose edges deviate from the axes by more than tolerance
// (normalized units). Only the first four vertices are checked.
func CheckAxisAligned(vertices []Point, tolerance float64) error {
	if len(vertices) < 4 {
		return fmt.Errorf("%w: got %d", ErrDegeneratePolygon, len(vertices))
	}
	tl, tr, br, bl := vertices[0], vertices[1], vertices[2], vertices[3]

	deviations := []float64{
		math.Abs(tl.Y - tr.Y), // top edge
		math.Abs(bl.Y - br.Y), // bottom edge
		math.Abs(tl.X - bl.X), // left edge
		math.Abs(tr.X - br.X), // right edge
	}
	for _, d := range deviations {
		if d > tolerance {
			return fmt.Errorf("%w: edge deviation %.4f exceeds %.4f", ErrSkewedPolygon, d, tolerance)
		}
	}
	return nil
}
