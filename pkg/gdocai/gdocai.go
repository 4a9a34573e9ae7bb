// Package gdocai decodes Google Document AI JSON output into the shapes the redaction engine understands.
//
// Document AI responses reach this tool in three different layouts, depending on which processor
// produced them and how the caller exported the result:
//
// - Invoice: a top-level array of typed entities (invoice_id, total_amount, line_item, vat, ...),
// each anchored to a page through pageAnchor.pageRefs[].boundingPoly.
//
// - Form: a top-level array of pages where at least one page carries formFields with
// fieldName/fieldValue layouts.
//
// - Blocks: a full Document object with pages[].blocks[] and no semantic keys at all.
//
// The shape is classified once from the raw JSON, then the payload is decoded into the matching
// variant of the Payload union using the documentaipb types and protojson. Unknown fields and
// enum names are discarded so newer processor versions keep decoding.
//
// Main Functions:
//
// - Classify: Detects the payload shape without decoding it
// - DecodePayload: Classifies and decodes a payload into InvoiceDocument, FormDocument or BlocksDocument
// - ToJSON: Pretty-prints protobuf messages or plain structs for debugging output
package gdocai

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"cloud.google.com/go/documentai/apiv1/documentaipb"
	"google.golang.org/protobuf/encoding/protojson"
)

// ErrUnsupportedPayload is returned for JSON that matches none of the known shapes,
// or a blocks document missing the fields the fallback needs.
var ErrUnsupportedPayload = errors.New("unsupported document payload")

var unmarshalOpts = protojson.UnmarshalOptions{DiscardUnknown: true}

// Classify reports the shape of a raw Document AI payload.
// A top-level array is a form payload if any element has formFields and no pageAnchor,
// otherwise an invoice payload.
// A top-level object is a blocks payload.
func Classify(data []byte) (Shape, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ShapeUnknown, fmt.Errorf("%w: empty input", ErrUnsupportedPayload)
	}

	switch trimmed[0] {
	case '[':
		elems, err := splitArray(trimmed)
		if err != nil {
			return ShapeUnknown, err
		}
		if formIndex(elems) >= 0 {
			return ShapeForm, nil
		}
		return ShapeInvoice, nil
	case '{':
		if !json.Valid(trimmed) {
			return ShapeUnknown, fmt.Errorf("%w: invalid JSON object", ErrUnsupportedPayload)
		}
		return ShapeBlocks, nil
	default:
		return ShapeUnknown, fmt.Errorf("%w: top-level value is neither an array nor an object", ErrUnsupportedPayload)
	}
}

// DecodePayload classifies data and decodes it into the matching Payload variant.
func DecodePayload(data []byte) (Payload, error) {
	shape, err := Classify(data)
	if err != nil {
		return nil, err
	}

	switch shape {
	case ShapeInvoice:
		return decodeInvoice(data)
	case ShapeForm:
		return decodeForm(data)
	case ShapeBlocks:
		return decodeBlocks(data)
	default:
		return nil, fmt.Errorf("%w: unknown shape %s", ErrUnsupportedPayload, shape)
	}
}

func decodeInvoice(data []byte) (*InvoiceDocument, error) {
	elems, err := splitArray(bytes.TrimSpace(data))
	if err != nil {
		return nil, err
	}

	doc := &InvoiceDocument{Entities: make([]*documentaipb.Document_Entity, 0, len(elems))}
	for i, raw := range elems {
		entity := &documentaipb.Document_Entity{}
		if err := unmarshalOpts.Unmarshal(raw, entity); err != nil {
			return nil, fmt.Errorf("%w: entity %d: %v", ErrUnsupportedPayload, i, err)
		}
		doc.Entities = append(doc.Entities, entity)
	}
	return doc, nil
}

// decodeForm only decodes the first element carrying formFields; later elements are ignored.
func decodeForm(data []byte) (*FormDocument, error) {
	elems, err := splitArray(bytes.TrimSpace(data))
	if err != nil {
		return nil, err
	}

	idx := formIndex(elems)
	if idx < 0 {
		return nil, fmt.Errorf("%w: no element carries formFields", ErrUnsupportedPayload)
	}

	page := &documentaipb.Document_Page{}
	if err := unmarshalOpts.Unmarshal(elems[idx], page); err != nil {
		return nil, fmt.Errorf("%w: form page %d: %v", ErrUnsupportedPayload, idx, err)
	}
	return &FormDocument{Page: page}, nil
}

func decodeBlocks(data []byte) (*BlocksDocument, error) {
	if err := validateBlocks(data); err != nil {
		return nil, err
	}

	doc := &documentaipb.Document{}
	if err := unmarshalOpts.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPayload, err)
	}
	return &BlocksDocument{Document: doc}, nil
}

// splitArray splits a JSON array into its raw object elements.
func splitArray(data []byte) ([]json.RawMessage, error) {
	var elems []json.RawMessage
	if err := json.Unmarshal(data, &elems); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnsupportedPayload, err)
	}
	for i, e := range elems {
		e = bytes.TrimSpace(e)
		if len(e) == 0 || e[0] != '{' {
			return nil, fmt.Errorf("%w: array element %d is not an object", ErrUnsupportedPayload, i)
		}
	}
	return elems, nil
}

// formIndex returns the index of the first element with a formFields member, or -1.
// Elements carrying a pageAnchor are entities, whatever else they hold.
func formIndex(elems []json.RawMessage) int {
	for i, e := range elems {
		var elem struct {
			PageAnchor json.RawMessage `json:"pageAnchor"`
			FormFields json.RawMessage `json:"formFields"`
		}
		if err := json.Unmarshal(e, &elem); err != nil {
			continue
		}
		if present(elem.PageAnchor) {
			continue
		}
		if present(elem.FormFields) {
			return i
		}
	}
	return -1
}

// present reports whether a member was set to something other than null
func present(raw json.RawMessage) bool {
	return len(raw) > 0 && string(raw) != "null"
}
