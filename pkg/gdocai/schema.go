package gdocai

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Fixed absolute URL so schema errors do not depend on the working directory
const blocksSchemaURL = "mem://docredact/blocks.json"

// blocksSchema requires the page and block structure the fallback walks.
// Geometry is optional per block; blocks without a usable polygon are dropped during extraction.
const blocksSchema = `{
  "type": "object",
  "required": ["pages"],
  "properties": {
    "pages": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["blocks"],
        "properties": {
          "pageNumber": {"type": ["integer", "string"]},
          "blocks": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["layout"],
              "properties": {
                "layout": {
                  "type": "object",
                  "properties": {
                    "boundingPoly": {
                      "type": "object",
                      "properties": {
                        "normalizedVertices": {
                          "type": "array",
                          "items": {
                            "type": "object",
                            "properties": {
                              "x": {"type": "number"},
                              "y": {"type": "number"}
                            }
                          }
                        }
                      }
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  }
}`

var (
	blocksOnce     sync.Once
	blocksCompiled *jsonschema.Schema
	blocksErr      error
)

func compiledBlocksSchema() (*jsonschema.Schema, error) {
	blocksOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(blocksSchemaURL, strings.NewReader(blocksSchema)); err != nil {
			blocksErr = fmt.Errorf("add schema: %w", err)
			return
		}
		blocksCompiled, blocksErr = compiler.Compile(blocksSchemaURL)
	})
	return blocksCompiled, blocksErr
}

// validateBlocks checks that a blocks payload has the page and block structure the fallback walks
func validateBlocks(data []byte) error {
	schema, err := compiledBlocksSchema()
	if err != nil {
		return fmt.Errorf("compile blocks schema: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("%w: %v", ErrUnsupportedPayload, err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("%w: blocks document: %v", ErrUnsupportedPayload, err)
	}
	return nil
}
