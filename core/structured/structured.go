// Package structured extracts recipe data from embedded JSON-LD markup
// (Schema.org Recipe). It is the highest-priority stage in the cascade:
// whatever it yields is authoritative and never overwritten by later stages.
package structured

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// Extractor parses application/ld+json payloads out of an HTML document.
type Extractor struct{}

// New creates a structured-data Extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name identifies the stage in logs.
func (e *Extractor) Name() string { return "structured-data" }

// Attempt scans every JSON-LD script block for a Recipe object (or a
// recipe-shaped Article) and decodes the first one that carries content.
// Contentless Recipe stubs do not end the scan; a later block may still hold
// the real markup. Returns core.ErrNoStructuredData when no block yields
// anything.
func (e *Extractor) Attempt(doc core.RawDocument) (*core.ParsedFragment, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	var frag *core.ParsedFragment
	gq.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		var payload any
		if err := json.Unmarshal([]byte(s.Text()), &payload); err != nil {
			return true // malformed block, keep looking
		}
		if node, ok := findRecipeNode(payload); ok {
			if cand := decodeRecipe(node); cand.HasContent() {
				frag = cand
				return false
			}
		}
		return true
	})

	if frag == nil {
		return nil, core.ErrNoStructuredData
	}

	inferCuisineTag(frag)
	return frag, nil
}

// findRecipeNode walks a decoded JSON-LD payload looking for an object whose
// @type is (or includes) Recipe. It recurses through arrays, @graph, and
// nested values, and also accepts Article/BlogPosting objects that embed
// recipe fields directly — some sites mis-tag recipe posts.
func findRecipeNode(data any) (map[string]any, bool) {
	switch v := data.(type) {
	case map[string]any:
		if hasType(v, "Recipe") {
			return v, true
		}
		if (hasType(v, "Article") || hasType(v, "BlogPosting")) && hasRecipeFields(v) {
			return v, true
		}
		if graph, ok := v["@graph"]; ok {
			if node, ok := findRecipeNode(graph); ok {
				return node, true
			}
		}
		// Nested values are scanned in key order so the pick is stable
		// when more than one subtree holds a recipe node.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if node, ok := findRecipeNode(v[k]); ok {
				return node, true
			}
		}
	case []any:
		for _, item := range v {
			if node, ok := findRecipeNode(item); ok {
				return node, true
			}
		}
	}
	return nil, false
}

// hasType checks the @type field, which may be a string or an array.
func hasType(m map[string]any, want string) bool {
	switch t := m["@type"].(type) {
	case string:
		return strings.EqualFold(t, want)
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && strings.EqualFold(s, want) {
				return true
			}
		}
	}
	return false
}

// hasRecipeFields reports whether an object carries recipe content fields
// regardless of its declared type.
func hasRecipeFields(m map[string]any) bool {
	_, ing := m["recipeIngredient"]
	_, instr := m["recipeInstructions"]
	return ing || instr
}

// decodeRecipe maps a Recipe node onto a fragment.
func decodeRecipe(m map[string]any) *core.ParsedFragment {
	frag := &core.ParsedFragment{
		Title:        stringValue(m["name"]),
		Description:  stringValue(m["description"]),
		Ingredients:  stringList(m["recipeIngredient"]),
		Instructions: instructionList(m["recipeInstructions"]),
		ImageURLs:    imageList(m["image"]),
		Servings:     parseYield(m["recipeYield"]),
		PrepMinutes:  parseSchemaDuration(stringValue(m["prepTime"])),
		CookMinutes:  parseSchemaDuration(stringValue(m["cookTime"])),
	}
	if len(frag.Ingredients) == 0 {
		// Legacy key used by older markup generators.
		frag.Ingredients = stringList(m["ingredients"])
	}

	frag.Tags = append(frag.Tags, splitKeywords(m["keywords"])...)
	if cat := stringValue(m["recipeCategory"]); cat != "" {
		frag.Tags = append(frag.Tags, cat)
	}
	if cuisine := stringValue(m["recipeCuisine"]); cuisine != "" {
		frag.Tags = append(frag.Tags, cuisine)
	}
	return frag
}

// inferCuisineTag injects a cuisine tag matched from the title when the
// markup declared none — or declared something outside the known vocabulary,
// which in practice means a category or a typo landed in recipeCuisine.
func inferCuisineTag(frag *core.ParsedFragment) {
	for _, t := range frag.Tags {
		if isKnownCuisine(t) {
			return
		}
	}
	if match := MatchCuisine(frag.Title); match != "" {
		frag.Tags = append(frag.Tags, match)
	}
}
