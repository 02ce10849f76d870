package analysis

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// answerSchemaDef is the contract for a single-answer evaluation.
var answerSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"score":           map[string]any{"type": "number"},
		"strengths":       map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"improvements":    map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"overallFeedback": map[string]any{"type": "string"},
	},
	"required": []any{"score", "strengths", "improvements", "overallFeedback"},
}

// finalSchemaDef is the contract for the session-level report. The
// numeric fields are optional because they are overwritten locally.
var finalSchemaDef = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"averageScore":       map[string]any{"type": "number"},
		"totalQuestions":     map[string]any{"type": "number"},
		"completedQuestions": map[string]any{"type": "number"},
		"strongAreas":        map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"improvementAreas":   map[string]any{"type": "array", "items": map[string]any{"type": "string"}},
		"overallFeedback":    map[string]any{"type": "string"},
		"scoreCategory": map[string]any{
			"type": "string",
			"enum": []any{"poor", "average", "good", "excellent"},
		},
	},
	"required": []any{"strongAreas", "improvementAreas", "overallFeedback", "scoreCategory"},
}

// schemaCache caches compiled schemas by name.
var schemaCache sync.Map // map[string]*jsonschema.Schema

// validateAgainst parses raw JSON and validates it against the named
// schema definition. The returned error wraps the validation failure;
// callers convert it to ErrMalformedAnalysis with the raw text attached.
func validateAgainst(name string, def map[string]any, raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	compiled, err := getCompiledSchema(name, def)
	if err != nil {
		return fmt.Errorf("compile schema %q: %w", name, err)
	}

	if err := compiled.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func getCompiledSchema(name string, def map[string]any) (*jsonschema.Schema, error) {
	if cached, ok := schemaCache.Load(name); ok {
		return cached.(*jsonschema.Schema), nil
	}

	// The jsonschema library expects a parsed JSON value, not raw bytes.
	defBytes, err := json.Marshal(def)
	if err != nil {
		return nil, fmt.Errorf("marshal schema definition: %w", err)
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		return nil, fmt.Errorf("parse schema definition: %w", err)
	}

	c := jsonschema.NewCompiler()
	schemaURL := fmt.Sprintf("schema://%s.json", name)
	if err := c.AddResource(schemaURL, defParsed); err != nil {
		return nil, fmt.Errorf("add resource: %w", err)
	}

	compiled, err := c.Compile(schemaURL)
	if err != nil {
		return nil, fmt.Errorf("compile: %w", err)
	}

	schemaCache.Store(name, compiled)
	return compiled, nil
}
