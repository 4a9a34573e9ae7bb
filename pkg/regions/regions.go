// Package regions turns Document AI payloads into named, page-anchored polygons and
// converts those polygons into page-space rectangles ready for redaction.
//
// Extraction dispatches on the decoded payload variant:
//
// - Invoice payloads yield one region per anchored entity, keyed by its Pascal-cased type.
// line_item and vat entities are also collected with their properties.
//
// - Form payloads yield one region per form field, keyed by the sanitized field label.
//
// - Blocks payloads yield one region per layout block, keyed by its position in the document.
//
// Every extraction then appends a LineItemsDetails aggregate region and, when VAT groups were
// found, one region per VAT property. Keys are literal match targets, so the key helpers are
// deterministic and covered by exact input/output tests.
//
// Extraction and normalization are pure: no I/O, no shared state, safe for concurrent use.
package regions

import (
	"fmt"
	"strconv"

	"cloud.google.com/go/documentai/apiv1/documentaipb"

	"github.com/gardar/docredact/pkg/gdocai"
)

const (
	entityTypeLineItem = "line_item"
	entityTypeVat      = "vat"
)

// ExtractJSON decodes a raw payload and extracts its regions
func ExtractJSON(data []byte) (*Extraction, error) {
	payload, err := gdocai.DecodePayload(data)
	if err != nil {
		return nil, err
	}
	return Extract(payload)
}

// Extract walks a decoded payload into regions, line items and VAT groups
func Extract(payload gdocai.Payload) (*Extraction, error) {
	var ext *Extraction

	switch p := payload.(type) {
	case *gdocai.InvoiceDocument:
		ext = extractInvoice(p)
	case *gdocai.FormDocument:
		ext = extractForm(p)
	case *gdocai.BlocksDocument:
		ext = extractBlocks(p)
	case nil:
		return nil, fmt.Errorf("%w: nil payload", gdocai.ErrUnsupportedPayload)
	default:
		return nil, fmt.Errorf("%w: %T", gdocai.ErrUnsupportedPayload, payload)
	}

	ext.Regions = append(ext.Regions, FieldRegion{
		Key:       LineItemsDetailsKey,
		Page:      NoPage,
		LineItems: ext.LineItems,
	})
	ext.Regions = append(ext.Regions, flattenVatGroups(ext.VatGroups)...)

	return ext, nil
}

func extractInvoice(doc *gdocai.InvoiceDocument) *Extraction {
	ext := &Extraction{
		Shape:     gdocai.ShapeInvoice,
		LineItems: []LineItem{},
	}

	for _, entity := range doc.Entities {
		ref := gdocai.FirstPageRef(entity)
		vertices, ok := gdocai.NormalizedVertices(ref.GetBoundingPoly())
		if !ok {
			continue
		}

		ext.Regions = append(ext.Regions, FieldRegion{
			ID:       entity.GetId(),
			Key:      SnakeToPascal(entity.GetType()),
			Page:     int(ref.GetPage()),
			Vertices: toPoints(vertices),
			Text:     entity.GetMentionText(),
		})

		switch entity.GetType() {
		case entityTypeLineItem:
			ext.LineItems = append(ext.LineItems, lineItemFromEntity(entity))
		case entityTypeVat:
			ext.VatGroups = append(ext.VatGroups, lineItemFromEntity(entity))
		}
	}

	return ext
}

func extractForm(doc *gdocai.FormDocument) *Extraction {
	ext := &Extraction{
		Shape:     gdocai.ShapeForm,
		LineItems: []LineItem{},
	}

	page := int(doc.Page.GetPageNumber()) - 1
	if page < 0 {
		page = NoPage
	}

	for i, field := range doc.Page.GetFormFields() {
		vertices, ok := gdocai.NormalizedVertices(field.GetFieldValue().GetBoundingPoly())
		if !ok {
			continue
		}

		ext.Regions = append(ext.Regions, FieldRegion{
			ID:       strconv.Itoa(i),
			Key:      LabelToKey(gdocai.LayoutText(field.GetFieldName(), "")),
			Page:     page,
			Vertices: toPoints(vertices),
			Text:     gdocai.LayoutText(field.GetFieldValue(), ""),
		})
	}

	return ext
}

// extractBlocks keys blocks by their position across all pages.
// Blocks without a usable polygon are dropped but still take up their position.
func extractBlocks(doc *gdocai.BlocksDocument) *Extraction {
	ext := &Extraction{
		Shape:     gdocai.ShapeBlocks,
		LineItems: []LineItem{},
	}

	idx := 0
	for _, page := range doc.Document.GetPages() {
		pageIndex := int(page.GetPageNumber()) - 1
		if pageIndex < 0 {
			pageIndex = NoPage
		}

		for _, block := range page.GetBlocks() {
			key := strconv.Itoa(idx)
			idx++

			vertices, ok := gdocai.NormalizedVertices(block.GetLayout().GetBoundingPoly())
			if !ok {
				continue
			}

			ext.Regions = append(ext.Regions, FieldRegion{
				ID:       key,
				Key:      key,
				Page:     pageIndex,
				Vertices: toPoints(vertices),
				Text:     gdocai.LayoutText(block.GetLayout(), doc.Document.GetText()),
			})
		}
	}

	return ext
}

// lineItemFromEntity copies a line_item or vat entity with its properties.
// Missing pages fall back to 0 for the entity and to the parent's page for properties.
func lineItemFromEntity(entity *documentaipb.Document_Entity) LineItem {
	ref := gdocai.FirstPageRef(entity)
	item := LineItem{
		ID:          entity.GetId(),
		MentionText: entity.GetMentionText(),
		Vertices:    toPoints(ref.GetBoundingPoly().GetNormalizedVertices()),
		Page:        int(ref.GetPage()),
		Properties:  make([]LineItemProperty, 0, len(entity.GetProperties())),
	}

	for _, prop := range entity.GetProperties() {
		propRef := gdocai.FirstPageRef(prop)
		page := int(propRef.GetPage())
		if page == 0 {
			page = item.Page
		}

		item.Properties = append(item.Properties, LineItemProperty{
			ID:          prop.GetId(),
			Type:        prop.GetType(),
			MentionText: prop.GetMentionText(),
			Vertices:    toPoints(propRef.GetBoundingPoly().GetNormalizedVertices()),
			Page:        page,
		})
	}

	return item
}

// flattenVatGroups emits one region per VAT property.
// With more than one group every key is prefixed with the group's index.
func flattenVatGroups(groups []VatGroup) []FieldRegion {
	var out []FieldRegion
	for gi, group := range groups {
		prefix := ""
		if len(groups) > 1 {
			prefix = strconv.Itoa(gi)
		}

		for _, prop := range group.Properties {
			if len(prop.Vertices) < 4 {
				continue
			}
			out = append(out, FieldRegion{
				ID:       prop.ID,
				Key:      prefix + SlugToPascal(prop.Type),
				Page:     prop.Page,
				Vertices: prop.Vertices,
				Text:     prop.MentionText,
			})
		}
	}
	return out
}

func toPoints(vertices []*documentaipb.NormalizedVertex) []Point {
	points := make([]Point, 0, len(vertices))
	for _, v := range vertices {
		points = append(points, Point{X: float64(v.GetX()), Y: float64(v.GetY())})
	}
	return points
}
