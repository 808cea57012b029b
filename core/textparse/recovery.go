package textparse

import (
	"regexp"

	"github.com/gaurav-prasanna/recipepipe/core/classify"
)

// Misclassification repair for PDF column interleaving. Two-column recipe
// layouts extract with every ingredient line stranded after the
// "Instructions" header, so the section split files them all as steps. The
// repair pass re-examines each instruction-bucket line with stronger
// discriminating patterns than the base classifier and moves the ones that
// can only be ingredients.

var (
	// "2 cups", "½ tsp", "1/4 lb" — an amount immediately followed by a
	// unit word. Far stronger than the base leading-quantity signal, which
	// accepts any second token.
	strongQuantityUnitRe = regexp.MustCompile(`(?i)^[-•*▢\s]*(\d+(?:[./]\d+)?|[` + classify.VulgarFractions + `]|\d+\s?[` + classify.VulgarFractions + `])\s*(cups?|c\b|tablespoons?|tbsps?|tbs|teaspoons?|tsps?|ounces?|oz|pounds?|lbs?|grams?|g\b|kg|milliliters?|ml|liters?|l\b|quarts?|pints?|cloves?|pinch(?:es)?|dash(?:es)?|sticks?|slices?|cans?|jars?|packages?|bunch(?:es)?|sprigs?|stalks?|heads?)\b`)

	// Bare unit word at line start: the wrapped second half of "2\ncups flour".
	strongLeadingUnitRe = regexp.MustCompile(`(?i)^(cups?|tablespoons?|tbsps?|teaspoons?|tsps?|ounces?|oz|pounds?|lbs?|grams?|milliliters?|ml|liters?|cloves?|pinch(?:es)?|sticks?|slices?|cans?|sprigs?)\b`)

	// "(from 2 limes)" style parentheticals only appear in ingredient lists.
	fromCountRe = regexp.MustCompile(`(?i)\(\s*from\s+\d`)

	// Cut descriptors: "sliced ¼ inch thick", "diced 1 cm".
	cutDescriptorRe = regexp.MustCompile(`(?i)\b(sliced|diced|chopped|cut|minced|shaved)\b.*\b(inch(es)?|cm|mm|thick|thin|cubes?|pieces?)\b`)

	untilRe = regexp.MustCompile(`(?i)\buntil\b`)
)

// strongIngredientMarker reports whether a line matches one of the
// high-confidence ingredient patterns.
func strongIngredientMarker(line string) bool {
	return strongQuantityUnitRe.MatchString(line) ||
		strongLeadingUnitRe.MatchString(line) ||
		fromCountRe.MatchString(line) ||
		cutDescriptorRe.MatchString(line)
}

// strongInstructionMarker reports whether a line matches one of the
// high-confidence instruction patterns.
func strongInstructionMarker(line string) bool {
	for _, r := range classify.InstructionRules {
		switch r.Name {
		case "leading-verb", "temp-or-time", "equipment":
			if r.Match(line) {
				return true
			}
		}
	}
	return untilRe.MatchString(line)
}

// recoverMisfiled splits the raw body of an instructions section that
// swallowed the ingredient list back into (ingredients, instructions). Lines
// where the strong markers disagree, or where neither fires, fall back to the
// base classifier with ambiguous lines defaulting to instruction.
func recoverMisfiled(body []string) (ingredients, instructions []string) {
	for _, line := range body {
		if classify.IsNoise(line) {
			continue
		}
		ing := strongIngredientMarker(line)
		ins := strongInstructionMarker(line)

		switch {
		case ins && !ing:
			instructions = append(instructions, CleanInstructionLine(line))
		case ing && !ins:
			ingredients = append(ingredients, CleanIngredientLine(line))
		default:
			if classify.IsIngredientLike(line) && !classify.IsInstructionLike(line) {
				ingredients = append(ingredients, CleanIngredientLine(line))
			} else {
				instructions = append(instructions, CleanInstructionLine(line))
			}
		}
	}
	return ingredients, instructions
}
