package gdocai

import (
	"cloud.google.com/go/documentai/apiv1/documentaipb"
)

// Shape identifies which Document AI layout a payload uses
type Shape int

const (
	ShapeUnknown Shape = iota
	ShapeInvoice       // Array of typed entities with page anchors
	ShapeForm          // Array of pages, one of them carrying formFields
	ShapeBlocks        // Full document with pages and blocks only
)

func (s Shape) String() string {
	switch s {
	case ShapeInvoice:
		return "invoice"
	case ShapeForm:
		return "form"
	case ShapeBlocks:
		return "blocks"
	default:
		return "unknown"
	}
}

func (s Shape) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// Payload is one decoded Document AI payload.
// It is implemented only by *InvoiceDocument, *FormDocument and *BlocksDocument.
type Payload interface {
	Shape() Shape
	payload()
}

// InvoiceDocument wraps the top-level entities of an invoice-style payload
type InvoiceDocument struct {
	Entities []*documentaipb.Document_Entity // Entities in source order
}

// FormDocument wraps the first page of a form-style payload that carries form fields
type FormDocument struct {
	Page *documentaipb.Document_Page // Page with FormFields and a 1-based PageNumber
}

// BlocksDocument wraps a full document whose pages only carry layout blocks
type BlocksDocument struct {
	Document *documentaipb.Document
}

func (*InvoiceDocument) Shape() Shape { return ShapeInvoice }
func (*FormDocument) Shape() Shape    { return ShapeForm }
func (*BlocksDocument) Shape() Shape  { return ShapeBlocks }

func (*InvoiceDocument) payload() {}
func (*FormDocument) payload()    {}
func (*BlocksDocument) payload()  {}
