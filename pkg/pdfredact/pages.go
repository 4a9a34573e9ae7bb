package pdfredact

import (
	"bytes"
	"fmt"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// PageSize is a page's MediaBox size in points
type PageSize struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PageSizes reads the MediaBox dimensions of every page, in page order
func PageSizes(pdfData []byte) ([]PageSize, error) {
	if len(pdfData) == 0 {
		return nil, fmt.Errorf("empty PDF data")
	}

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	ctx, err := api.ReadContext(bytes.NewReader(pdfData), conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	if err := ctx.EnsurePageCount(); err != nil {
		return nil, fmt.Errorf("failed to ensure page count: %w", err)
	}

	dims, err := ctx.PageDims()
	if err != nil {
		return nil, fmt.Errorf("failed to read page dimensions: %w", err)
	}

	sizes := make([]PageSize, 0, len(dims))
	for _, d := range dims {
		sizes = append(sizes, PageSize{Width: d.Width, Height: d.Height})
	}
	return sizes, nil
}
