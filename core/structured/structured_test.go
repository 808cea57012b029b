package structured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core"
)

func htmlDoc(jsonLD string) core.RawDocument {
	return core.RawDocument{
		Kind: core.KindHTML,
		Body: `<html><head><script type="application/ld+json">` + jsonLD + `</script></head><body></body></html>`,
	}
}

func TestAttemptDecodesRecipe(t *testing.T) {
	doc := htmlDoc(`{
		"@context": "https://schema.org",
		"@type": "Recipe",
		"name": "Spaghetti Carbonara",
		"description": "A Roman classic.",
		"recipeIngredient": ["200 g spaghetti", "100 g guanciale", "2 eggs"],
		"recipeInstructions": [
			{"@type": "HowToStep", "text": "Boil the pasta."},
			{"@type": "HowToStep", "text": "Fry the guanciale."}
		],
		"recipeYield": "4 servings",
		"prepTime": "PT10M",
		"cookTime": "PT20M",
		"keywords": "pasta, dinner",
		"recipeCuisine": "Italian",
		"image": {"@type": "ImageObject", "url": "https://example.com/carbonara.jpg"}
	}`)

	frag, err := New().Attempt(doc)
	require.NoError(t, err)

	assert.Equal(t, "Spaghetti Carbonara", frag.Title)
	assert.Equal(t, "A Roman classic.", frag.Description)
	assert.Equal(t, []string{"200 g spaghetti", "100 g guanciale", "2 eggs"}, frag.Ingredients)
	assert.Equal(t, []string{"Boil the pasta.", "Fry the guanciale."}, frag.Instructions)
	assert.Equal(t, 4, frag.Servings)
	require.NotNil(t, frag.PrepMinutes)
	assert.Equal(t, 10, *frag.PrepMinutes)
	require.NotNil(t, frag.CookMinutes)
	assert.Equal(t, 20, *frag.CookMinutes)
	assert.Equal(t, []string{"pasta", "dinner", "Italian"}, frag.Tags)
	assert.Equal(t, []string{"https://example.com/carbonara.jpg"}, frag.ImageURLs)
}

func TestAttemptTypeArray(t *testing.T) {
	doc := htmlDoc(`{
		"@type": ["Recipe", "NewsArticle"],
		"name": "Beef Stew",
		"recipeIngredient": ["1 lb beef"],
		"recipeInstructions": "Brown the beef, then simmer."
	}`)

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, "Beef Stew", frag.Title)
	assert.Equal(t, []string{"Brown the beef, then simmer."}, frag.Instructions)
}

func TestAttemptGraphWrapper(t *testing.T) {
	doc := htmlDoc(`{
		"@context": "https://schema.org",
		"@graph": [
			{"@type": "WebSite", "name": "Example Cooking"},
			{"@type": "Recipe", "name": "Shakshuka", "recipeIngredient": ["6 eggs"]}
		]
	}`)

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, "Shakshuka", frag.Title)
	assert.Equal(t, []string{"6 eggs"}, frag.Ingredients)
}

func TestAttemptRecipeShapedArticle(t *testing.T) {
	doc := htmlDoc(`{
		"@type": "BlogPosting",
		"name": "My Famous Chili",
		"recipeIngredient": ["2 cans beans"],
		"recipeInstructions": [{"text": "Simmer everything for an hour."}]
	}`)

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, "My Famous Chili", frag.Title)
	assert.Equal(t, []string{"2 cans beans"}, frag.Ingredients)
}

func TestAttemptSkipsMalformedBlocks(t *testing.T) {
	doc := core.RawDocument{
		Kind: core.KindHTML,
		Body: `<html><head>
			<script type="application/ld+json">{not valid json</script>
			<script type="application/ld+json">{"@type":"Recipe","name":"Toast","recipeIngredient":["2 slices bread"]}</script>
		</head></html>`,
	}

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, "Toast", frag.Title)
}

func TestFindRecipeNodeScansKeysInOrder(t *testing.T) {
	// Two recipe nodes nested under different keys; the one under the
	// alphabetically first key wins on every run.
	doc := htmlDoc(`{
		"@type": "WebPage",
		"sidebar": {"@type": "Recipe", "name": "Under Sidebar", "recipeIngredient": ["1 cup rice"]},
		"mainEntity": {"@type": "Recipe", "name": "Under Main", "recipeIngredient": ["1 cup beans"]}
	}`)

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, "Under Main", frag.Title)
}

func TestAttemptSkipsContentlessRecipeBlock(t *testing.T) {
	// Some sites emit a bare Recipe stub for SEO and put the real markup in a
	// later script block. The stub must not end the scan.
	doc := core.RawDocument{
		Kind: core.KindHTML,
		Body: `<html><head>
			<script type="application/ld+json">{"@type":"Recipe","name":"Stub"}</script>
			<script type="application/ld+json">{"@type":"Recipe","name":"Miso Soup","recipeIngredient":["2 tbsp miso paste"]}</script>
		</head></html>`,
	}

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, "Miso Soup", frag.Title)
	assert.Equal(t, []string{"2 tbsp miso paste"}, frag.Ingredients)
}

func TestAttemptNoStructuredData(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no script blocks", `<html><body><p>hello</p></body></html>`},
		{"non-recipe block", `<html><head><script type="application/ld+json">{"@type":"WebSite","name":"x"}</script></head></html>`},
		{"recipe without content", `<html><head><script type="application/ld+json">{"@type":"Recipe","name":"Empty"}</script></head></html>`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New().Attempt(core.RawDocument{Kind: core.KindHTML, Body: tt.body})
			assert.ErrorIs(t, err, core.ErrNoStructuredData)
		})
	}
}

func TestAttemptLegacyIngredientsKey(t *testing.T) {
	doc := htmlDoc(`{"@type":"Recipe","name":"Old Markup","ingredients":["1 cup rice"]}`)

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"1 cup rice"}, frag.Ingredients)
}

func TestAttemptInfersCuisineFromTitle(t *testing.T) {
	doc := htmlDoc(`{
		"@type": "Recipe",
		"name": "Weeknight Pad Thai",
		"recipeIngredient": ["8 oz rice noodles"],
		"keywords": "dinner"
	}`)

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"dinner", "thai"}, frag.Tags)
}

func TestAttemptKeepsDeclaredCuisine(t *testing.T) {
	// recipeCuisine already names a known cuisine, so nothing is inferred
	// even though the title would match a different one.
	doc := htmlDoc(`{
		"@type": "Recipe",
		"name": "Pad Thai Inspired Noodles",
		"recipeIngredient": ["8 oz noodles"],
		"recipeCuisine": "vietnamese"
	}`)

	frag, err := New().Attempt(doc)
	require.NoError(t, err)
	assert.Equal(t, []string{"vietnamese"}, frag.Tags)
}
