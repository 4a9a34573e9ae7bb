package pdfredact

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gardar/docredact/pkg/regions"
)

// ErrPageOutOfRange is returned when a region points past the last page
var ErrPageOutOfRange = errors.New("page out of range")

// Mark is one rectangle to redact
type Mark struct {
	Key  string       `json:"key"`
	Page int          `json:"page"` // Zero-based page index
	Rect regions.Rect `json:"rect"` // Page-native units, origin bottom-left
}

// CornerRect is a mark in two-corner form, as consumed by true-redaction tools
type CornerRect struct {
	Key  string  `json:"key"`
	Page int     `json:"page"` // 1-based page number
	X1   float64 `json:"x1"`
	Y1   float64 `json:"y1"`
	X2   float64 `json:"x2"`
	Y2   float64 `json:"y2"`
}

// SkippedRegion records a selected region that produced no mark
type SkippedRegion struct {
	Key    string `json:"key"`
	Page   int    `json:"page"`
	Reason string `json:"reason"`
}

// PlanMarks normalizes the selected regions against the page sizes.
// Regions without a page, past the last page, with degenerate geometry, or (strict mode)
// skewed geometry are skipped and reported.
func PlanMarks(selected []regions.FieldRegion, sizes []PageSize, config RedactConfig) ([]Mark, []SkippedRegion) {
	logger := getLogger(config)

	var marks []Mark
	var skipped []SkippedRegion
	skip := func(r regions.FieldRegion, err error) {
		logger.Warn("skipping region", "key", r.Key, "page", r.Page, "error", err)
		skipped = append(skipped, SkippedRegion{Key: r.Key, Page: r.Page, Reason: err.Error()})
	}

	for _, r := range selected {
		if !r.HasPage() {
			logger.Debug("region has no page", "key", r.Key)
			continue
		}
		if r.Page >= len(sizes) {
			skip(r, fmt.Errorf("%w: page %d of %d", ErrPageOutOfRange, r.Page+1, len(sizes)))
			continue
		}
		if config.StrictGeometry {
			if err := regions.CheckAxisAligned(r.Vertices, config.SkewTolerance); err != nil {
				skip(r, err)
				continue
			}
		}

		size := sizes[r.Page]
		rect, err := regions.ToPageRectangle(r.Vertices, size.Width, size.Height)
		if err != nil {
			skip(r, err)
			continue
		}
		marks = append(marks, Mark{Key: r.Key, Page: r.Page, Rect: rect})
	}

	return marks, skipped
}

// CornerPlan converts marks into their two-corner form
func CornerPlan(marks []Mark) []CornerRect {
	plan := make([]CornerRect, 0, len(marks))
	for _, m := range marks {
		x1, y1, x2, y2 := m.Rect.Corners()
		plan = append(plan, CornerRect{Key: m.Key, Page: m.Page + 1, X1: x1, Y1: y1, X2: x2, Y2: y2})
	}
	return plan
}

// MissingKeys returns the targets that matched no selected region, in target order
func MissingKeys(targets []string, selected []regions.FieldRegion) []string {
	found := make(map[string]struct{}, len(selected))
	for _, r := range selected {
		found[r.Key] = struct{}{}
	}

	var missing []string
	for _, t := range targets {
		if _, ok := found[t]; !ok {
			missing = append(missing, t)
		}
	}
	return missing
}

// keysNotFoundWarning formats the diagnostic reported for unmatched targets
func keysNotFoundWarning(missing []string) string {
	if len(missing) == 0 {
		return ""
	}
	return "Keys not found: " + strings.Join(missing, ", ") + "."
}
