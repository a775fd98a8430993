package exam

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// deckSchema is the JSON Schema every deck file must satisfy. Structural
// validation happens here; referential checks (answer_id names an option,
// IDs unique) happen in validateDeck after unmarshaling.
var deckSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"id":    map[string]any{"type": "string", "minLength": 1},
		"title": map[string]any{"type": "string", "minLength": 1},
		"questions": map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"id":   map[string]any{"type": "string", "minLength": 1},
					"stem": map[string]any{"type": "string", "minLength": 1},
					"options": map[string]any{
						"type":     "array",
						"minItems": 2,
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id":   map[string]any{"type": "string", "minLength": 1},
								"text": map[string]any{"type": "string", "minLength": 1},
							},
							"required":             []any{"id", "text"},
							"additionalProperties": false,
						},
					},
					"explanation": map[string]any{"type": "string"},
					"answer_id":   map[string]any{"type": "string"},
				},
				"required":             []any{"id", "stem", "options"},
				"additionalProperties": false,
			},
		},
	},
	"required":             []any{"id", "title", "questions"},
	"additionalProperties": false,
}

var (
	compiledOnce   sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// compiledDeckSchema compiles deckSchema once and caches the result.
func compiledDeckSchema() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		defBytes, err := json.Marshal(deckSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal deck schema: %w", err)
			return
		}
		var parsed any
		if err := json.Unmarshal(defBytes, &parsed); err != nil {
			compileErr = fmt.Errorf("parse deck schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://deck.json"
		if err := c.AddResource(url, parsed); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
