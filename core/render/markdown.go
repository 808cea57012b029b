// Package render — Markdown renderer.
// Writes the recipe as a readable card: title, meta line, ingredient list,
// numbered steps, and tags.
package render

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// MarkdownRenderer renders a recipe card in Markdown.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render writes the recipe card.
func (r *MarkdownRenderer) Render(recipe core.CanonicalRecipe) ([]byte, error) {
	var b strings.Builder

	title := recipe.Title
	if title == "" {
		title = "Untitled recipe"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	if recipe.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", recipe.Description)
	}

	fmt.Fprintf(&b, "%s\n\n", metaLine(recipe))

	if len(recipe.Ingredients) > 0 {
		b.WriteString("## Ingredients\n\n")
		for _, ing := range recipe.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
		b.WriteString("\n")
	}

	if len(recipe.Instructions) > 0 {
		b.WriteString("## Instructions\n\n")
		for i, step := range recipe.Instructions {
			fmt.Fprintf(&b, "%d. %s\n", i+1, step)
		}
		b.WriteString("\n")
	}

	if len(recipe.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n\n", strings.Join(recipe.Tags, ", "))
	}
	if recipe.SourceURL != "" {
		fmt.Fprintf(&b, "Source: %s\n", recipe.SourceURL)
	}

	return []byte(b.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// metaLine assembles the servings/time summary under the title.
func metaLine(recipe core.CanonicalRecipe) string {
	parts := []string{fmt.Sprintf("Serves %d", recipe.Servings)}
	if recipe.PrepMinutes != nil {
		parts = append(parts, fmt.Sprintf("Prep %s", formatMinutes(*recipe.PrepMinutes)))
	}
	if recipe.CookMinutes != nil {
		parts = append(parts, fmt.Sprintf("Cook %s", formatMinutes(*recipe.CookMinutes)))
	}
	return strings.Join(parts, " · ")
}

// formatMinutes prints "45 min" or "1 h 30 min".
func formatMinutes(total int) string {
	if total < 60 {
		return fmt.Sprintf("%d min", total)
	}
	h, m := total/60, total%60
	if m == 0 {
		return fmt.Sprintf("%d h", h)
	}
	return fmt.Sprintf("%d h %d min", h, m)
}
