package regions

// Fixtures mirror the JSON Document AI emits; int64 page numbers arrive as strings.

const invoicePayload = `[
  {
    "id": "e1",
    "type": "invoice_id",
    "mentionText": "INV-001",
    "pageAnchor": {"pageRefs": [{"page": "0", "boundingPoly": {"normalizedVertices": [
      {"x": 0.1, "y": 0.1}, {"x": 0.3, "y": 0.1}, {"x": 0.3, "y": 0.2}, {"x": 0.1, "y": 0.2}
    ]}}]}
  },
  {
    "id": "e2",
    "type": "supplier_name",
    "mentionText": "ACME",
    "pageAnchor": {"pageRefs": [{"page": "1", "boundingPoly": {"normalizedVertices": [
      {"x": 0.5, "y": 0.5}, {"x": 0.7, "y": 0.5}, {"x": 0.7, "y": 0.6}, {"x": 0.5, "y": 0.6}
    ]}}]}
  },
  {
    "id": "e3",
    "type": "due_date",
    "mentionText": "no geometry",
    "pageAnchor": {"pageRefs": [{"page": "0"}]}
  },
  {
    "id": "e4",
    "type": "line_item",
    "mentionText": "Widget 2 x 5.00",
    "pageAnchor": {"pageRefs": [{"page": "1", "boundingPoly": {"normalizedVertices": [
      {"x": 0.1, "y": 0.4}, {"x": 0.9, "y": 0.4}, {"x": 0.9, "y": 0.45}, {"x": 0.1, "y": 0.45}
    ]}}]},
    "properties": [
      {
        "id": "p1",
        "type": "line_item/description",
        "mentionText": "Widget",
        "pageAnchor": {"pageRefs": [{"boundingPoly": {"normalizedVertices": [
          {"x": 0.1, "y": 0.4}, {"x": 0.3, "y": 0.4}, {"x": 0.3, "y": 0.45}, {"x": 0.1, "y": 0.45}
        ]}}]}
      },
      {
        "id": "p2",
        "type": "line_item/amount",
        "mentionText": "10.00",
        "pageAnchor": {"pageRefs": [{"page": "2"}]}
      }
    ]
  },
  {
    "id": "e5",
    "type": "vat",
    "mentionText": "VAT 20%",
    "pageAnchor": {"pageRefs": [{"boundingPoly": {"normalizedVertices": [
      {"x": 0.6, "y": 0.8}, {"x": 0.9, "y": 0.8}, {"x": 0.9, "y": 0.85}, {"x": 0.6, "y": 0.85}
    ]}}]},
    "properties": [
      {
        "id": "v1",
        "type": "total_amount",
        "mentionText": "2.00",
        "pageAnchor": {"pageRefs": [{"boundingPoly": {"normalizedVertices": [
          {"x": 0.8, "y": 0.8}, {"x": 0.9, "y": 0.8}, {"x": 0.9, "y": 0.85}, {"x": 0.8, "y": 0.85}
        ]}}]}
      }
    ]
  }
]`

const twoVatPayload = `[
  {
    "id": "vat-a",
    "type": "vat",
    "pageAnchor": {"pageRefs": [{"boundingPoly": {"normalizedVertices": [
      {"x": 0.6, "y": 0.8}, {"x": 0.9, "y": 0.8}, {"x": 0.9, "y": 0.85}, {"x": 0.6, "y": 0.85}
    ]}}]},
    "properties": [
      {"id": "a1", "type": "total_amount", "pageAnchor": {"pageRefs": [{"boundingPoly": {"normalizedVertices": [
        {"x": 0.8, "y": 0.8}, {"x": 0.9, "y": 0.8}, {"x": 0.9, "y": 0.85}, {"x": 0.8, "y": 0.85}
      ]}}]}}
    ]
  },
  {
    "id": "vat-b",
    "type": "vat",
    "pageAnchor": {"pageRefs": [{"page": "1", "boundingPoly": {"normalizedVertices": [
      {"x": 0.6, "y": 0.85}, {"x": 0.9, "y": 0.85}, {"x": 0.9, "y": 0.9}, {"x": 0.6, "y": 0.9}
    ]}}]},
    "properties": [
      {"id": "b1", "type": "total_amount", "pageAnchor": {"pageRefs": [{"boundingPoly": {"normalizedVertices": [
        {"x": 0.8, "y": 0.85}, {"x": 0.9, "y": 0.85}, {"x": 0.9, "y": 0.9}, {"x": 0.8, "y": 0.9}
      ]}}]}}
    ]
  }
]`

const formPayload = `[
  {"pageNumber": 1, "dimension": {"width": 1700, "height": 2200}},
  {
    "pageNumber": 2,
    "formFields": [
      {
        "fieldName": {"textAnchor": {"content": "Invoice Date:\n"}},
        "fieldValue": {"textAnchor": {"content": "2024-01-31"}, "boundingPoly": {"normalizedVertices": [
          {"x": 0.2, "y": 0.1}, {"x": 0.4, "y": 0.1}, {"x": 0.4, "y": 0.12}, {"x": 0.2, "y": 0.12}
        ]}}
      },
      {
        "fieldName": {"textAnchor": {"content": "Customer's tax ID:"}},
        "fieldValue": {"textAnchor": {"content": "FR123"}, "boundingPoly": {"normalizedVertices": [
          {"x": 0.2, "y": 0.2}, {"x": 0.4, "y": 0.2}, {"x": 0.4, "y": 0.22}, {"x": 0.2, "y": 0.22}
        ]}}
      }
    ]
  },
  {
    "pageNumber": 3,
    "formFields": [
      {
        "fieldName": {"textAnchor": {"content": "Ignored:"}},
        "fieldValue": {"boundingPoly": {"normalizedVertices": [
          {"x": 0.2, "y": 0.2}, {"x": 0.4, "y": 0.2}, {"x": 0.4, "y": 0.22}, {"x": 0.2, "y": 0.22}
        ]}}
      }
    ]
  }
]`

const blocksPayload = `{
  "text": "Hello world\nSecond page",
  "pages": [
    {
      "pageNumber": 1,
      "blocks": [
        {"layout": {"textAnchor": {"textSegments": [{"endIndex": "5"}]}, "boundingPoly": {"normalizedVertices": [
          {"x": 0.1, "y": 0.1}, {"x": 0.2, "y": 0.1}, {"x": 0.2, "y": 0.2}, {"x": 0.1, "y": 0.2}
        ]}}},
        {"layout": {"boundingPoly": {"normalizedVertices": [
          {"x": 0.3, "y": 0.1}, {"x": 0.4, "y": 0.1}, {"x": 0.4, "y": 0.2}, {"x": 0.3, "y": 0.2}
        ]}}}
      ]
    },
    {
      "pageNumber": 2,
      "blocks": [
        {"layout": {"boundingPoly": {"normalizedVertices": [
          {"x": 0.1, "y": 0.5}, {"x": 0.2, "y": 0.5}, {"x": 0.2, "y": 0.6}, {"x": 0.1, "y": 0.6}
        ]}}}
      ]
    }
  ]
}`
