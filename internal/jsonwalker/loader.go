package jsonwalker

import (
	"encoding/json"
	"fmt"
	"strings"

	_ "embed"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schema.json
var schemaBytes []byte

// Parse validates raw against schema.json and decodes it into a Document.
func Parse(raw []byte) (*Document, error) {
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("jsonwalker: invalid JSON: %w", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewGoLoader(decoded),
	)
	if err != nil {
		return nil, fmt.Errorf("jsonwalker: schema validation error: %w", err)
	}

	if !result.Valid() {
		messages := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			messages = append(messages, verr.String())
		}

		return nil, fmt.Errorf("jsonwalker: document does not satisfy schema: %s", strings.Join(messages, "; "))
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("jsonwalker: decode document: %w", err)
	}

	return &doc, nil
}
