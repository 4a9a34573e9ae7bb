package gdocai

import (
	"encoding/json"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ToJSON converts various types to a pretty-printed JSON string
// It handles both protocol buffer messages and regular Go structs
func ToJSON(data interface{}) (string, error) {
	switch v := data.(type) {
	case proto.Message:
		// For protocol buffer messages, use protojson
		jsonData, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(jsonData), nil

	default:
		// For regular Go structs, use standard json package
		jsonData, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return "", err
		}
		return string(jsonData), nil
	}
}

// FirstPageRef returns the first page reference of an entity's page anchor, or nil
func FirstPageRef(entity *documentaipb.Document_Entity) *documentaipb.Document_PageAnchor_PageRef {
	refs := entity.GetPageAnchor().GetPageRefs()
	if len(refs) == 0 {
		return nil
	}
	return refs[0]
}

// NormalizedVertices returns the normalized polygon of a bounding poly.
// ok is false when the polygon is absent or has fewer than four corners.
func NormalizedVertices(poly *documentaipb.BoundingPoly) (vertices []*documentaipb.NormalizedVertex, ok bool) {
	vertices = poly.GetNormalizedVertices()
	if len(vertices) < 4 {
		return nil, false
	}
	return vertices, true
}
