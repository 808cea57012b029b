// Package render provides output renderers for extracted recipes.
// This file implements the JSON renderer, which emits the canonical record
// exactly as persistence consumes it.
package render

import (
	"encoding/json"
	"fmt"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// JSONRenderer produces the pretty-printed canonical recipe record.
type JSONRenderer struct{}

// NewJSONRenderer creates a JSONRenderer.
func NewJSONRenderer() *JSONRenderer {
	return &JSONRenderer{}
}

// Render marshals the canonical record.
func (r *JSONRenderer) Render(recipe core.CanonicalRecipe) ([]byte, error) {
	data, err := json.MarshalIndent(recipe, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling JSON: %w", err)
	}
	return data, nil
}

// Extension returns the file extension for JSON output.
func (r *JSONRenderer) Extension() string {
	return ".json"
}
