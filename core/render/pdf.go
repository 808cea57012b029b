// Package render — PDF renderer.
// Renders a printable recipe card using gofpdf: title, source line,
// servings/time summary, ingredient bullets, and numbered steps.
// Images are intentionally not embedded; only their URLs are known.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// PDFRenderer renders a recipe as a PDF document.
type PDFRenderer struct{}

// NewPDFRenderer creates a PDFRenderer.
func NewPDFRenderer() *PDFRenderer {
	return &PDFRenderer{}
}

// Render converts the recipe into PDF bytes.
func (r *PDFRenderer) Render(recipe core.CanonicalRecipe) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	// Core fonts are cp1252; the translator keeps vulgar fractions and
	// accented ingredient names printable.
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	title := recipe.Title
	if title == "" {
		title = "Untitled recipe"
	}
	pdf.SetFont("Helvetica", "B", 18)
	pdf.MultiCell(0, 8, tr(title), "", "L", false)
	pdf.Ln(2)

	if recipe.SourceURL != "" {
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Source: "+recipe.SourceURL), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.MultiCell(0, 5, tr(metaLine(recipe)), "", "L", false)
	pdf.Ln(4)

	if recipe.Description != "" {
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, tr(recipe.Description), "", "L", false)
		pdf.Ln(4)
	}

	if len(recipe.Ingredients) > 0 {
		renderSectionHeading(pdf, "Ingredients")
		pdf.SetFont("Helvetica", "", 10)
		for _, ing := range recipe.Ingredients {
			pdf.MultiCell(0, 5, tr("• "+ing), "", "L", false)
		}
		pdf.Ln(4)
	}

	if len(recipe.Instructions) > 0 {
		renderSectionHeading(pdf, "Instructions")
		pdf.SetFont("Helvetica", "", 10)
		for i, step := range recipe.Instructions {
			pdf.MultiCell(0, 5, tr(fmt.Sprintf("%d. %s", i+1, step)), "", "L", false)
			pdf.Ln(1)
		}
	}

	if len(recipe.Tags) > 0 {
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "I", 9)
		pdf.SetTextColor(100, 100, 100)
		pdf.MultiCell(0, 5, tr("Tags: "+strings.Join(recipe.Tags, ", ")), "", "L", false)
		pdf.SetTextColor(0, 0, 0)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("writing PDF: %w", err)
	}
	return buf.Bytes(), nil
}

// Extension returns the file extension for PDF output.
func (r *PDFRenderer) Extension() string {
	return ".pdf"
}

// renderSectionHeading writes a bold section title.
func renderSectionHeading(pdf *gofpdf.Fpdf, text string) {
	pdf.SetFont("Helvetica", "B", 13)
	pdf.MultiCell(0, 7, text, "", "L", false)
	pdf.Ln(1)
}
