// Package classify implements the lexical line classifier used by the
// plain-text recipe parser. It answers three independent questions about a
// single line: does it look like an ingredient, does it look like an
// instruction, and is it noise (navigation, marketing, boilerplate)?
//
// The signals are not mutually exclusive — "Stir in 2 cups of flour" is both
// ingredient-like and instruction-like — so callers decide precedence.
// Each signal is a named rule, testable on its own; the classifier just
// composes rule results and holds no state.
package classify

import (
	"regexp"
	"strings"
)

// Rule is a named predicate over one trimmed line.
type Rule struct {
	Name  string
	Match func(line string) bool
}

// anyMatch reports whether at least one rule fires on the line.
func anyMatch(rules []Rule, line string) bool {
	for _, r := range rules {
		if r.Match(line) {
			return true
		}
	}
	return false
}

// IngredientRules are the signals that mark a line as ingredient-like.
var IngredientRules = []Rule{
	{"leading-quantity", hasLeadingQuantity},
	{"leading-unit", startsWithUnitWord},
	{"unit-word", containsUnitWord},
	{"food-word", containsFoodWord},
}

// InstructionRules are the signals that mark a line as instruction-like.
var InstructionRules = []Rule{
	{"leading-verb", startsWithCookingVerb},
	{"cooking-verb", containsCookingVerb},
	{"temp-or-time", containsTempOrTime},
	{"equipment", containsEquipment},
}

// NoiseRules are the signals that mark a line as page noise.
var NoiseRules = []Rule{
	{"marketing-cta", isMarketingCTA},
	{"rating-prompt", isRatingPrompt},
	{"legal-boilerplate", isLegalBoilerplate},
	{"spaced-letters", isSpacedLetters},
	{"social-newsletter", isSocialNewsletter},
}

// IsIngredientLike reports whether the line carries any ingredient signal:
// a leading quantity+unit token (including Unicode vulgar fractions), a known
// unit word, a known food noun, or a unit word at line start (the PDF
// line-wrap case where the number landed on the previous line).
func IsIngredientLike(line string) bool {
	return anyMatch(IngredientRules, line)
}

// IsInstructionLike reports whether the line carries any instruction signal:
// a cooking verb, a temperature or time expression, or cooking equipment.
func IsInstructionLike(line string) bool {
	return anyMatch(InstructionRules, line)
}

// IsNoise reports whether the line looks like page furniture rather than
// recipe content.
func IsNoise(line string) bool {
	return anyMatch(NoiseRules, line)
}

// VulgarFractions are the Unicode fraction characters accepted in quantities.
const VulgarFractions = "½¼¾⅓⅔⅛⅜⅝⅞"

var (
	// A bare amount at line start: "2", "1.5", "1/2", "½", "2½", "2-3".
	leadingQuantityRe = regexp.MustCompile(`^[-•*▢‣◦\s]*(\d+([./]\d+)?|[` + VulgarFractions + `]|\d+\s?[` + VulgarFractions + `])([-–—]\d+([./]\d+)?|\s+to\s+\d+)?\s+\S`)

	// Temperature ("350°F", "180 degrees C") or duration ("20 minutes", "1 hr").
	tempOrTimeRe = regexp.MustCompile(`(?i)\b\d+\s*(°\s*[cf]?|degrees?(\s*[cf])?\b|minutes?\b|mins?\b|hours?\b|hrs?\b|seconds?\b|secs?\b)`)

	// Spaced-out single letters, an OCR/letterpress artifact: "S H O P".
	spacedLettersRe = regexp.MustCompile(`^(?:[A-Z][\s.]+){2,}[A-Z]\.?$`)

	// "4.5 out of 5", "231 ratings", "rate this recipe".
	ratingRe = regexp.MustCompile(`(?i)(\d+(\.\d+)?\s+out\s+of\s+\d+|\b\d+\s+(ratings?|reviews?|votes?)\b|\brate\s+this\b|\bleave\s+a\s+(review|comment|rating)\b|\b★|\bstar\s+rating\b)`)
)

// hasLeadingQuantity matches "2 cups flour", "½ tsp salt", "1/4 cup milk",
// "2-3 cloves garlic". The amount must be followed by another token — a lone
// number is a step count or page number, not a quantity.
func hasLeadingQuantity(line string) bool {
	return leadingQuantityRe.MatchString(line)
}

func startsWithUnitWord(line string) bool {
	toks := tokens(line)
	return len(toks) > 0 && unitWords[toks[0]]
}

func containsUnitWord(line string) bool {
	for _, t := range tokens(line) {
		if unitWords[t] {
			return true
		}
	}
	return false
}

func containsFoodWord(line string) bool {
	for _, t := range tokens(line) {
		if foodWords[t] {
			return true
		}
	}
	return false
}

func startsWithCookingVerb(line string) bool {
	toks := tokens(line)
	return len(toks) > 0 && cookingVerbs[toks[0]]
}

func containsCookingVerb(line string) bool {
	for _, t := range tokens(line) {
		if cookingVerbs[t] {
			return true
		}
	}
	return false
}

func containsTempOrTime(line string) bool {
	return tempOrTimeRe.MatchString(line)
}

func containsEquipment(line string) bool {
	for _, t := range tokens(line) {
		if equipmentWords[t] {
			return true
		}
	}
	return false
}

// isMarketingCTA flags call-to-action phrasing only when it co-occurs with a
// domain noun — "shop" alone could be part of a real instruction ("shop-bought
// pastry"), but "shop our favorite recipes" never is.
func isMarketingCTA(line string) bool {
	lower := strings.ToLower(line)
	hasVerb := false
	for _, v := range ctaVerbs {
		if strings.Contains(lower, v) {
			hasVerb = true
			break
		}
	}
	if !hasVerb {
		return false
	}
	for _, n := range ctaNouns {
		if strings.Contains(lower, n) {
			return true
		}
	}
	return false
}

func isRatingPrompt(line string) bool {
	return ratingRe.MatchString(line)
}

func isLegalBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range legalPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return strings.Contains(line, "©")
}

func isSpacedLetters(line string) bool {
	return spacedLettersRe.MatchString(strings.TrimSpace(line))
}

func isSocialNewsletter(line string) bool {
	lower := strings.ToLower(line)
	for _, p := range socialPhrases {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// tokens lowercases the line and splits it into bare words, stripping
// punctuation that clings to token edges ("flour," → "flour").
func tokens(line string) []string {
	fields := strings.Fields(strings.ToLower(line))
	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, ".,;:()[]{}!?\"'-–—*•▢")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
