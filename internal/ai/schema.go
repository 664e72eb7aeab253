package ai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Stage schemas are JSON-Schema (draft 2020-12 subset) maps. Answers are
// validated locally before anything reaches the database.

func RotationSchema() map[string]any {
	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"angle":      map[string]any{"type": "integer", "enum": []any{0, 90, 180, 270}},
			"confidence": map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0},
			"reason":     map[string]any{"type": "string"},
		},
		"required": []string{"angle", "confidence"},
	}
}

func FieldsSchema(fieldNames []string) map[string]any {
	nameProp := map[string]any{"type": "string", "minLength": 1}
	if len(fieldNames) > 0 {
		enum := make([]any, len(fieldNames))
		for i, n := range fieldNames {
			enum[i] = n
		}
		nameProp = map[string]any{"type": "string", "enum": enum}
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"fields": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"name":       nameProp,
						"value":      map[string]any{"type": "string"},
						"confidence": confidenceProp(),
						"x":          map[string]any{"type": "integer", "minimum": 0},
						"y":          map[string]any{"type": "integer", "minimum": 0},
						"width":      map[string]any{"type": "integer", "minimum": 0},
						"height":     map[string]any{"type": "integer", "minimum": 0},
					},
					"required": []string{"name", "value", "confidence"},
				},
			},
		},
		"required": []string{"fields"},
	}
}

func ClassificationSchema(classes []string) map[string]any {
	enum := make([]any, len(classes))
	for i, c := range classes {
		enum[i] = c
	}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"classification": map[string]any{"type": "string", "enum": enum},
			"confidence":     confidenceProp(),
			"reason":         map[string]any{"type": "string"},
		},
		"required": []string{"classification", "confidence"},
	}
}

func BalloonsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"balloons": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"balloon_number": map[string]any{"type": "integer", "minimum": 1},
						"part_name":      map[string]any{"type": "string"},
						"quantity":       map[string]any{"type": "integer", "minimum": 1},
						"confidence":     confidenceProp(),
						"x":              map[string]any{"type": "integer", "minimum": 0},
						"y":              map[string]any{"type": "integer", "minimum": 0},
					},
					"required": []string{"balloon_number", "confidence"},
				},
			},
		},
		"required": []string{"balloons"},
	}
}

func RevisionsSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"revisions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type":                 "object",
					"additionalProperties": false,
					"properties": map[string]any{
						"revision_number": map[string]any{"type": "string", "minLength": 1},
						"date":            map[string]any{"type": "string"},
						"description":     map[string]any{"type": "string"},
						"author":          map[string]any{"type": "string"},
						"confidence":      confidenceProp(),
					},
					"required": []string{"revision_number", "confidence"},
				},
			},
		},
		"required": []string{"revisions"},
	}
}

func SummarySchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary":        map[string]any{"type": "string", "minLength": 1},
			"shape_features": map[string]any{"type": "object"},
		},
		"required": []string{"summary"},
	}
}

func confidenceProp() map[string]any {
	return map[string]any{"type": "number", "minimum": 0.0, "maximum": 100.0}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
