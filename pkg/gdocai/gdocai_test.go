package gdocai

import (
	"testing"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		want    Shape
		wantErr bool
	}{
		{"invoice entities", `[{"type": "invoice_id", "pageAnchor": {}}]`, ShapeInvoice, false},
		{"empty array", `[]`, ShapeInvoice, false},
		{"form page", `[{"pageNumber": 1}, {"pageNumber": 2, "formFields": []}]`, ShapeForm, false},
		{"null formFields is not a form", `[{"formFields": null}]`, ShapeInvoice, false},
		{"pageAnchor wins over formFields", `[{"type": "invoice_id", "formFields": [], "pageAnchor": {}}]`, ShapeInvoice, false},
		{"form page after anchored entity", `[{"formFields": [], "pageAnchor": {}}, {"pageNumber": 1, "formFields": []}]`, ShapeForm, false},
		{"null pageAnchor does not hide formFields", `[{"pageAnchor": null, "formFields": []}]`, ShapeForm, false},
		{"blocks document", `{"pages": []}`, ShapeBlocks, false},
		{"whitespace around", "\n  {\"pages\": []}  ", ShapeBlocks, false},
		{"scalar", `42`, ShapeUnknown, true},
		{"array of scalars", `[1, 2]`, ShapeUnknown, true},
		{"broken object", `{"pages": [`, ShapeUnknown, true},
		{"empty", ``, ShapeUnknown, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Classify([]byte(tt.data))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedPayload)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodePayload_Invoice(t *testing.T) {
	data := `[{"id": "1", "type": "total_amount", "mentionText": "9.99", "unknownField": true,
	  "pageAnchor": {"pageRefs": [{"page": "3", "layoutType": "BLOCK"}]}}]`

	p, err := DecodePayload([]byte(data))
	require.NoError(t, err)

	doc, ok := p.(*InvoiceDocument)
	require.True(t, ok)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, "total_amount", doc.Entities[0].GetType())
	assert.Equal(t, int64(3), FirstPageRef(doc.Entities[0]).GetPage())
}

func TestDecodePayload_FormUsesFirstFormPage(t *testing.T) {
	data := `[{"pageNumber": 1}, {"pageNumber": 4, "formFields": [{}]}, {"pageNumber": 5, "formFields": [{}, {}]}]`

	p, err := DecodePayload([]byte(data))
	require.NoError(t, err)

	doc, ok := p.(*FormDocument)
	require.True(t, ok)
	assert.Equal(t, int32(4), doc.Page.GetPageNumber())
	assert.Len(t, doc.Page.GetFormFields(), 1)
	assert.Equal(t, ShapeForm, p.Shape())
}

func TestDecodePayload_BlocksValidation(t *testing.T) {
	valid := `{"pages": [{"pageNumber": 1, "blocks": [{"layout": {"boundingPoly": {"normalizedVertices": [
	  {"x": 0.1, "y": 0.1}, {"x": 0.2, "y": 0.1}, {"x": 0.2, "y": 0.2}, {"y": 0.2}]}}}]}]}`

	p, err := DecodePayload([]byte(valid))
	require.NoError(t, err)
	doc, ok := p.(*BlocksDocument)
	require.True(t, ok)
	require.Len(t, doc.Document.GetPages(), 1)

	tests := []struct {
		name    string
		payload string
		wantErr bool
	}{
		{"empty polygon", `{"pages": [{"pageNumber": 1, "blocks": [{"layout": {"boundingPoly": {"normalizedVertices": []}}}]}]}`, false},
		{"empty bounding poly", `{"pages": [{"pageNumber": 1, "blocks": [{"layout": {"boundingPoly": {}}}]}]}`, false},
		{"layout without geometry", `{"pages": [{"blocks": [{"layout": {}}]}]}`, false},
		{"no pages", `{"text": "abc"}`, true},
		{"page without blocks", `{"pages": [{"pageNumber": 1}]}`, true},
		{"block without layout", `{"pages": [{"pageNumber": 1, "blocks": [{}]}]}`, true},
		{"vertex is not an object", `{"pages": [{"blocks": [{"layout": {"boundingPoly": {"normalizedVertices": [1]}}}]}]}`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodePayload([]byte(tt.payload))
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnsupportedPayload)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDecodePayload_BlocksErrorNamesSchema(t *testing.T) {
	_, err := DecodePayload([]byte(`{"text": "abc"}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), blocksSchemaURL)
	assert.NotContains(t, err.Error(), "file://")
}

func TestNormalizedVertices(t *testing.T) {
	_, ok := NormalizedVertices(nil)
	assert.False(t, ok)

	poly := &documentaipb.BoundingPoly{NormalizedVertices: []*documentaipb.NormalizedVertex{{}, {}, {}}}
	_, ok = NormalizedVertices(poly)
	assert.False(t, ok)

	poly.NormalizedVertices = append(poly.NormalizedVertices, &documentaipb.NormalizedVertex{X: 1, Y: 1})
	vertices, ok := NormalizedVertices(poly)
	assert.True(t, ok)
	assert.Len(t, vertices, 4)
}

func TestLayoutText(t *testing.T) {
	full := "Total: 12.00"
	layout := &documentaipb.Document_Page_Layout{
		TextAnchor: &documentaipb.Document_TextAnchor{
			TextSegments: []*documentaipb.Document_TextAnchor_TextSegment{{StartIndex: 7, EndIndex: 99}},
		},
	}
	assert.Equal(t, "12.00", LayoutText(layout, full))

	layout.TextAnchor.Content = "inline"
	assert.Equal(t, "inline", LayoutText(layout, full))

	assert.Equal(t, "", LayoutText(nil, full))
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(&documentaipb.Document_Entity{Type: "vat"})
	require.NoError(t, err)
	assert.Contains(t, out, `"type"`)

	out, err = ToJSON(map[string]int{"a": 1})
	require.NoError(t, err)
	assert.JSONEq(t, `{"a": 1}`, out)
}
