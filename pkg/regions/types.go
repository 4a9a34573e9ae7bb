package regions

import (
	"encoding/json"

	"github.com/gardar/docredact/pkg/gdocai"
)

// NoPage marks a region without a usable page. Such regions are never mutated.
const NoPage = -1

// LineItemsDetailsKey is the key of the aggregate region carrying all line items
const LineItemsDetailsKey = "LineItemsDetails"

// Point is a normalized coordinate in [0,1] page space, origin top-left, y down
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FieldRegion is a named polygon anchored to one page
type FieldRegion struct {
	ID        string     `json:"id"`
	Key       string     `json:"key"`
	Page      int        `json:"page"`               // Zero-based page index, NoPage if unknown
	Vertices  []Point    `json:"vertices,omitempty"` // Top-left, top-right, bottom-right, bottom-left
	Text      string     `json:"text,omitempty"`
	LineItems []LineItem `json:"-"`                  // Only set on the LineItemsDetails aggregate
}

// MarshalJSON emits the aggregate's line items as "data", an empty list included.
// Other regions carry no data member.
func (r FieldRegion) MarshalJSON() ([]byte, error) {
	type plain FieldRegion
	out := struct {
		plain
		Data *[]LineItem `json:"data,omitempty"`
	}{plain: plain(r)}

	if r.Key == LineItemsDetailsKey && !r.HasPage() {
		items := r.LineItems
		if items == nil {
			items = []LineItem{}
		}
		out.Data = &items
	}
	return json.Marshal(out)
}

// HasPage reports whether the region can be resolved to a page
func (r FieldRegion) HasPage() bool {
	return r.Page >= 0
}

// LineItem is one repeating structured entity such as an invoice row.
// VAT groups use the same structure.
type LineItem struct {
	ID          string             `json:"id"`
	MentionText string             `json:"mentionText"`
	Vertices    []Point            `json:"vertices"`
	Page        int                `json:"page"`
	Properties  []LineItemProperty `json:"properties"`
}

// VatGroup is one VAT breakdown
type VatGroup = LineItem

// LineItemProperty is a typed child of a line item or VAT group
type LineItemProperty struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	MentionText string  `json:"mentionText"`
	Vertices    []Point `json:"vertices"`
	Page        int     `json:"page"` // Defaults to the parent's page
}

// Extraction is the result of one extraction pass over a payload
type Extraction struct {
	Shape     gdocai.Shape  `json:"shape"`
	Regions   []FieldRegion `json:"regions"` // Shape regions, then LineItemsDetails, then flattened VAT regions
	LineItems []LineItem    `json:"lineItems"`
	VatGroups []VatGroup    `json:"vatGroups,omitempty"`
}

// Keys returns the keys of all regions in extraction order, duplicates included
func (e *Extraction) Keys() []string {
	keys := make([]string, 0, len(e.Regions))
	for _, r := range e.Regions {
		keys = append(keys, r.Key)
	}
	return keys
}
