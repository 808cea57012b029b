package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsIngredientLike(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"leading quantity with unit", "2 cups all-purpose flour", true},
		{"vulgar fraction", "½ tsp salt", true},
		{"mixed number", "1 ½ cups milk", true},
		{"slash fraction", "1/4 cup olive oil", true},
		{"range quantity", "2-3 cloves garlic", true},
		{"bulleted quantity", "- 1 egg", true},
		{"leading unit after wrap", "cups flour, sifted", true},
		{"unit word mid-line", "butter, about 3 tablespoons", true},
		{"food word only", "salt and pepper to taste", true},
		{"plain prose", "This dinner comes together in no time.", false},
		{"lone number", "3", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsIngredientLike(tt.line))
		})
	}
}

func TestIsInstructionLike(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"leading verb", "Preheat the oven to 350°F.", true},
		{"verb mid-line", "Gently fold in the egg whites.", true},
		{"temperature", "Reach 180 degrees C before adding.", true},
		{"duration", "Leave for 20 minutes on the counter.", true},
		{"equipment", "Everything goes into one skillet.", true},
		{"plain prose", "My grandmother made this every Sunday.", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsInstructionLike(tt.line))
		})
	}
}

func TestIsNoise(t *testing.T) {
	tests := []struct {
		name string
		line string
		want bool
	}{
		{"marketing cta", "Save these recipes to your box", true},
		{"cta verb without noun", "Save the pan drippings for the gravy", false},
		{"rating prompt", "Rate this recipe", true},
		{"rating count", "231 ratings", true},
		{"copyright", "© 2024 Example Media", true},
		{"legal phrase", "All Rights Reserved.", true},
		{"spaced letters", "S H O P", true},
		{"social", "Follow us on Instagram", true},
		{"newsletter", "Sign up for our newsletter", true},
		{"real step", "Whisk the eggs and sugar until pale.", false},
		{"real ingredient", "2 cups flour", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNoise(tt.line))
		})
	}
}

func TestRulesAreIndependentlyNamed(t *testing.T) {
	for _, rules := range [][]Rule{IngredientRules, InstructionRules, NoiseRules} {
		seen := map[string]bool{}
		for _, r := range rules {
			assert.NotEmpty(t, r.Name)
			assert.NotNil(t, r.Match)
			assert.False(t, seen[r.Name], "duplicate rule name %q", r.Name)
			seen[r.Name] = true
		}
	}
}
