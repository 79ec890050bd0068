// Package schema validates store files against embedded JSON Schemas.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const itemsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["text", "completed", "created_at", "completed_at"],
    "properties": {
      "text": {"type": "string"},
      "completed": {"type": "boolean"},
      "created_at": {"type": "string"},
      "completed_at": {"type": ["string", "null"]}
    },
    "additionalProperties": false
  }
}`

const patternsSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": {"type": "string"}
}`

var (
	items    = jsonschema.MustCompileString("items.schema.json", itemsSchema)
	patterns = jsonschema.MustCompileString("patterns.schema.json", patternsSchema)
)

// ValidateItems checks raw item-file content against the item schema.
func ValidateItems(data []byte) error {
	return validate(items, data)
}

// ValidatePatterns checks raw pattern-file content against the pattern schema.
func ValidatePatterns(data []byte) error {
	return validate(patterns, data)
}

func validate(sch *jsonschema.Schema, data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}
	return sch.Validate(v)
}
