// Package textparse splits raw unstructured text — PDF-extracted or OCR'd —
// into named recipe sections and extracts a cleaned fragment from each.
// It is the whole extraction path for file imports: no markup, no metadata,
// just line-by-line heuristics over whatever the upstream extractor produced.
package textparse

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/classify"
)

// sectionName identifies one of the recognized section categories.
type sectionName int

const (
	secIngredients sectionName = iota
	secInstructions
	secServings
	secPrepTime
	secCookTime
	secTotalTime
	secTags
	numSections
)

// section marks where a category's header line was found. Transient: built
// during one Parse call and discarded.
type section struct {
	name      sectionName
	startLine int
}

// headerPatterns detect section headers, one pattern per category. A line is
// scanned against each category it hasn't matched yet; the first match per
// category wins. Total time has no field of its own — it is detected only so
// it can terminate the section before it.
var headerPatterns = [numSections]*regexp.Regexp{
	secIngredients:  regexp.MustCompile(`(?i)\bingredients\b`),
	secInstructions: regexp.MustCompile(`(?i)\b(instructions?|directions?|steps|method)\b`),
	secServings:     regexp.MustCompile(`(?i)\b(servings?|yield|serves)\b`),
	secPrepTime:     regexp.MustCompile(`(?i)\bprep(?:aration)?\s*time\b`),
	secCookTime:     regexp.MustCompile(`(?i)\bcook(?:ing)?\s*time\b`),
	secTotalTime:    regexp.MustCompile(`(?i)\btotal\s*time\b`),
	secTags:         regexp.MustCompile(`(?i)\b(tags|categories|cuisine)\b`),
}

// ctaIngredientsRe guards the ingredients header against footer CTAs like
// "Shop the ingredients for this recipe" — those contain the word but are
// not headers.
var ctaIngredientsRe = regexp.MustCompile(`(?i)\b(save|shop|get|buy|order|add|print)\b`)

var (
	bulletRe     = regexp.MustCompile(`^[-•*▢‣◦›>\s]+`)
	numberingRe  = regexp.MustCompile(`^\d+\s*[.):\-]\s+`)
	stepPrefixRe = regexp.MustCompile(`(?i)^step\s*\d+\s*[:.)\-]?\s*`)
	integerRe    = regexp.MustCompile(`\d+`)
	hoursRe      = regexp.MustCompile(`(?i)\b(\d+)\s*h(?:(?:ou)?rs?)?\b`)
	minutesRe    = regexp.MustCompile(`(?i)(\d+)\s*m(?:in(?:ute)?s?)?\b`)
	tagHeaderRe  = regexp.MustCompile(`(?i)^\W*(tags|categories|cuisine)\W*`)
)

// Parse splits the text into sections and assembles a fragment. It fails only
// when the input has no non-blank lines; everything else degrades to an
// emptier fragment.
func Parse(text string) (*core.ParsedFragment, error) {
	if len(text) > core.MaxDocumentBytes {
		text = text[:core.MaxDocumentBytes]
	}
	lines := splitLines(text)
	if len(lines) == 0 {
		return nil, fmt.Errorf("parsing text: %w", core.ErrNoText)
	}

	sections := findSections(lines)
	instructionsBody := sectionBody(lines, sections, secInstructions)

	frag := &core.ParsedFragment{
		Title:        findTitle(lines, sections),
		Ingredients:  extractIngredients(sectionBody(lines, sections, secIngredients)),
		Instructions: extractInstructions(instructionsBody),
	}

	if s := headerLine(lines, sections, secServings); s != "" {
		frag.Servings = parseServings(s)
	}
	frag.PrepMinutes = parseDuration(headerLine(lines, sections, secPrepTime))
	frag.CookMinutes = parseDuration(headerLine(lines, sections, secCookTime))
	if s := headerLine(lines, sections, secTags); s != "" {
		frag.Tags = parseTagsLine(s)
	}

	// PDF column interleaving leaves every ingredient stranded below the
	// instructions header. When the split looks like that, reclassify.
	if len(frag.Ingredients) == 0 && len(frag.Instructions) > 0 {
		frag.Ingredients, frag.Instructions = recoverMisfiled(instructionsBody)
	}

	return frag, nil
}

// splitLines returns trimmed, non-blank lines in document order.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(l)
		if l != "" {
			lines = append(lines, l)
		}
	}
	return lines
}

// findSections scans the lines once and records the first header hit per
// category.
func findSections(lines []string) []section {
	found := make([]section, 0, numSections)
	seen := [numSections]bool{}
	for i, line := range lines {
		for name := sectionName(0); name < numSections; name++ {
			if seen[name] || !headerPatterns[name].MatchString(line) {
				continue
			}
			if name == secIngredients && ctaIngredientsRe.MatchString(line) {
				continue
			}
			seen[name] = true
			found = append(found, section{name: name, startLine: i})
		}
	}
	return found
}

// sectionBody returns the lines strictly between a section's header and the
// nearest following header of any category, or end of document.
func sectionBody(lines []string, sections []section, name sectionName) []string {
	start := -1
	for _, s := range sections {
		if s.name == name {
			start = s.startLine
			break
		}
	}
	if start == -1 {
		return nil
	}
	end := len(lines)
	for _, s := range sections {
		if s.startLine > start && s.startLine < end {
			end = s.startLine
		}
	}
	return lines[start+1 : end]
}

// headerLine returns a section's own header line (servings, times, and tags
// live on the header line itself).
func headerLine(lines []string, sections []section, name sectionName) string {
	for _, s := range sections {
		if s.name == name {
			return lines[s.startLine]
		}
	}
	return ""
}

// findTitle picks the first line longer than three characters before the
// ingredients header, or the first line overall.
func findTitle(lines []string, sections []section) string {
	limit := len(lines)
	for _, s := range sections {
		if s.name == secIngredients {
			limit = s.startLine
			break
		}
	}
	for _, l := range lines[:limit] {
		if len(l) > 3 {
			return l
		}
	}
	return lines[0]
}

// extractIngredients keeps body lines that read like ingredients and strips
// bullets and list numbering.
func extractIngredients(body []string) []string {
	var out []string
	for _, line := range body {
		if classify.IsNoise(line) || !classify.IsIngredientLike(line) {
			continue
		}
		if cleaned := CleanIngredientLine(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// extractInstructions keeps body lines that read like steps and strips
// "Step N:" prefixes and numbering.
func extractInstructions(body []string) []string {
	var out []string
	for _, line := range body {
		if classify.IsNoise(line) || !classify.IsInstructionLike(line) {
			continue
		}
		if cleaned := CleanInstructionLine(line); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

// CleanIngredientLine strips bullet characters and leading list numbering.
// Quantity numbers survive because numbering must be followed by a separator
// and whitespace ("1. " / "2) "), which neither "2 cups" nor a range like
// "2-3 cloves" is.
func CleanIngredientLine(line string) string {
	line = bulletRe.ReplaceAllString(line, "")
	line = numberingRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// CleanInstructionLine strips "Step N:" prefixes and leading numbering.
func CleanInstructionLine(line string) string {
	line = bulletRe.ReplaceAllString(line, "")
	line = stepPrefixRe.ReplaceAllString(line, "")
	line = numberingRe.ReplaceAllString(line, "")
	return strings.TrimSpace(line)
}

// parseServings returns the first integer on the servings line, defaulting
// to zero (the orchestration layer applies the real default).
func parseServings(line string) int {
	m := integerRe.FindString(line)
	if m == "" {
		return 0
	}
	n, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return n
}

// parseDuration reads "<n> h[our]" and "<n> m[in]" tokens off a time line and
// sums them into minutes. Either token may be absent; a line with neither —
// or no line at all — yields nil.
func parseDuration(line string) *int {
	if line == "" {
		return nil
	}
	total := 0
	found := false
	if m := hoursRe.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n * 60
			found = true
		}
		// Strip the hours token so "1 h 30 m" doesn't re-read the 1.
		line = hoursRe.ReplaceAllString(line, "")
	}
	if m := minutesRe.FindStringSubmatch(line); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			total += n
			found = true
		}
	}
	if !found {
		return nil
	}
	return core.IntPtr(total)
}

// parseTagsLine strips the header word and splits the remainder on commas.
func parseTagsLine(line string) []string {
	line = tagHeaderRe.ReplaceAllString(line, "")
	var tags []string
	for _, t := range strings.Split(line, ",") {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
