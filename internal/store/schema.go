package store

import (
	"encoding/json"
	"fmt"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/roboco-io/postblocks/internal/block"
)

const blocksSchemaURL = "postblocks://schemas/blocks.json"

var blocksSchema = jsonschema.MustCompileString(blocksSchemaURL, blocksSchemaJSON())

func blocksSchemaJSON() string {
	types := make([]string, 0, len(block.Types()))
	for _, t := range block.Types() {
		types = append(types, fmt.Sprintf("%q", t))
	}

	return `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "items": {
    "type": "object",
    "required": ["type", "content"],
    "properties": {
      "type": {"enum": [` + strings.Join(types, ", ") + `]},
      "content": {"type": "string"},
      "rawMarkdown": {"type": "string"}
    }
  }
}`
}

// ValidateBlocksJSON checks that data is a stored block array: it must match
// the block schema and every block's content must decode for its type.
func ValidateBlocksJSON(data string) error {
	var doc any
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlocks, err)
	}
	if err := blocksSchema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlocks, err)
	}

	blocks, err := block.Unmarshal(data)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidBlocks, err)
	}
	for i, b := range blocks {
		if _, err := block.Decode(b); err != nil {
			return fmt.Errorf("%w: block %d: %v", ErrInvalidBlocks, i, err)
		}
	}
	return nil
}
