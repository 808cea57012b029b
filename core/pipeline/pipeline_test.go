package pipeline

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// stubExtractor returns a fixed fragment or error, standing in for a stage.
type stubExtractor struct {
	name string
	frag *core.ParsedFragment
	err  error
}

func (s *stubExtractor) Name() string { return s.name }

func (s *stubExtractor) Attempt(core.RawDocument) (*core.ParsedFragment, error) {
	return s.frag, s.err
}

func TestExtractFirstWriterWins(t *testing.T) {
	first := &stubExtractor{name: "first", frag: &core.ParsedFragment{
		Title:       "Original Title",
		Ingredients: []string{"1 cup rice"},
	}}
	second := &stubExtractor{name: "second", frag: &core.ParsedFragment{
		Title:        "Other Title",
		Description:  "Filled in later.",
		Ingredients:  []string{"should not overwrite"},
		Instructions: []string{"Cook the rice."},
	}}

	orch := New(WithStages(first, second))
	recipe, err := orch.Extract(core.RawDocument{Kind: core.KindHTML, SourceID: "https://x.com/r"})
	require.NoError(t, err)

	assert.Equal(t, "Original Title", recipe.Title)
	assert.Equal(t, "Filled in later.", recipe.Description)
	assert.Equal(t, []string{"1 cup rice"}, recipe.Ingredients)
	assert.Equal(t, []string{"Cook the rice."}, recipe.Instructions)
	assert.Equal(t, "https://x.com/r", recipe.SourceURL)
}

func TestExtractPartialResultSucceeds(t *testing.T) {
	only := &stubExtractor{name: "only", frag: &core.ParsedFragment{
		Instructions: []string{"Stir and serve."},
	}}

	recipe, err := New(WithStages(only)).Extract(core.RawDocument{})
	require.NoError(t, err)
	assert.Empty(t, recipe.Ingredients)
	assert.Equal(t, []string{"Stir and serve."}, recipe.Instructions)
}

func TestExtractAllStagesEmptyFails(t *testing.T) {
	stages := []core.Extractor{
		&stubExtractor{name: "a", err: core.ErrNoStructuredData},
		&stubExtractor{name: "b", err: core.ErrNoScrapedContent},
		&stubExtractor{name: "c", frag: &core.ParsedFragment{Title: "title only"}},
	}

	_, err := New(WithStages(stages...)).Extract(core.RawDocument{SourceID: "https://x.com/r"})
	assert.ErrorIs(t, err, core.ErrNoRecipe)
}

func TestExtractStageFailureDegrades(t *testing.T) {
	broken := &stubExtractor{name: "broken", err: errors.New("malformed payload")}
	working := &stubExtractor{name: "working", frag: &core.ParsedFragment{
		Ingredients: []string{"2 eggs"},
	}}

	recipe, err := New(WithStages(broken, working)).Extract(core.RawDocument{})
	require.NoError(t, err)
	assert.Equal(t, []string{"2 eggs"}, recipe.Ingredients)
}

func TestExtractServingsDefault(t *testing.T) {
	noYield := &stubExtractor{name: "a", frag: &core.ParsedFragment{
		Ingredients: []string{"1 cup rice"},
	}}
	recipe, err := New(WithStages(noYield)).Extract(core.RawDocument{})
	require.NoError(t, err)
	assert.Equal(t, core.DefaultServings, recipe.Servings)

	withYield := &stubExtractor{name: "b", frag: &core.ParsedFragment{
		Ingredients: []string{"1 cup rice"},
		Servings:    6,
	}}
	recipe, err = New(WithStages(withYield)).Extract(core.RawDocument{})
	require.NoError(t, err)
	assert.Equal(t, 6, recipe.Servings)
}

func TestSupplementNeverOverwrites(t *testing.T) {
	full := core.ParsedFragment{
		Title:        "Title",
		Description:  "Description",
		Ingredients:  []string{"a"},
		Instructions: []string{"b"},
		Servings:     2,
		PrepMinutes:  core.IntPtr(5),
		CookMinutes:  core.IntPtr(10),
		Tags:         []string{"t"},
		ImageURLs:    []string{"u"},
	}
	src := &core.ParsedFragment{
		Title:        "X",
		Description:  "X",
		Ingredients:  []string{"x"},
		Instructions: []string{"x"},
		Servings:     9,
		PrepMinutes:  core.IntPtr(99),
		CookMinutes:  core.IntPtr(99),
		Tags:         []string{"x"},
		ImageURLs:    []string{"x"},
	}

	dst := full
	Supplement(&dst, src)
	assert.Equal(t, full, dst)
}

func TestSupplementFillsOnlyMissingFields(t *testing.T) {
	dst := &core.ParsedFragment{
		Title:       "Kept",
		Ingredients: []string{"1 egg"},
	}
	Supplement(dst, &core.ParsedFragment{
		Title:        "Ignored",
		Description:  "Added",
		Instructions: []string{"Scramble."},
		PrepMinutes:  core.IntPtr(5),
	})

	assert.Equal(t, "Kept", dst.Title)
	assert.Equal(t, "Added", dst.Description)
	assert.Equal(t, []string{"1 egg"}, dst.Ingredients)
	assert.Equal(t, []string{"Scramble."}, dst.Instructions)
	require.NotNil(t, dst.PrepMinutes)
	assert.Equal(t, 5, *dst.PrepMinutes)
}

// Every combination of already-populated fields: populated fields survive the
// merge untouched, empty ones are filled from the source.
func TestSupplementFieldPresenceCombinations(t *testing.T) {
	type field struct {
		name string
		set  func(f *core.ParsedFragment)
		get  func(f *core.ParsedFragment) any
	}
	fields := []field{
		{"title", func(f *core.ParsedFragment) { f.Title = "kept" }, func(f *core.ParsedFragment) any { return f.Title }},
		{"description", func(f *core.ParsedFragment) { f.Description = "kept" }, func(f *core.ParsedFragment) any { return f.Description }},
		{"ingredients", func(f *core.ParsedFragment) { f.Ingredients = []string{"kept"} }, func(f *core.ParsedFragment) any { return f.Ingredients }},
		{"instructions", func(f *core.ParsedFragment) { f.Instructions = []string{"kept"} }, func(f *core.ParsedFragment) any { return f.Instructions }},
		{"servings", func(f *core.ParsedFragment) { f.Servings = 2 }, func(f *core.ParsedFragment) any { return f.Servings }},
		{"prep", func(f *core.ParsedFragment) { f.PrepMinutes = core.IntPtr(1) }, func(f *core.ParsedFragment) any { return f.PrepMinutes }},
		{"cook", func(f *core.ParsedFragment) { f.CookMinutes = core.IntPtr(1) }, func(f *core.ParsedFragment) any { return f.CookMinutes }},
		{"tags", func(f *core.ParsedFragment) { f.Tags = []string{"kept"} }, func(f *core.ParsedFragment) any { return f.Tags }},
		{"images", func(f *core.ParsedFragment) { f.ImageURLs = []string{"kept"} }, func(f *core.ParsedFragment) any { return f.ImageURLs }},
	}

	src := &core.ParsedFragment{
		Title:        "filled",
		Description:  "filled",
		Ingredients:  []string{"filled"},
		Instructions: []string{"filled"},
		Servings:     7,
		PrepMinutes:  core.IntPtr(7),
		CookMinutes:  core.IntPtr(7),
		Tags:         []string{"filled"},
		ImageURLs:    []string{"filled"},
	}

	for mask := 0; mask < 1<<len(fields); mask++ {
		dst := &core.ParsedFragment{}
		for i, f := range fields {
			if mask&(1<<i) != 0 {
				f.set(dst)
			}
		}
		before := make([]any, len(fields))
		for i, f := range fields {
			before[i] = f.get(dst)
		}

		Supplement(dst, src)

		for i, f := range fields {
			if mask&(1<<i) != 0 {
				assert.Equal(t, before[i], f.get(dst), "mask %b: populated %s overwritten", mask, f.name)
			} else {
				assert.Equal(t, f.get(src), f.get(dst), "mask %b: empty %s not filled", mask, f.name)
			}
		}
	}
}

func TestSupplementNilSourceIsNoOp(t *testing.T) {
	dst := &core.ParsedFragment{Title: "Kept"}
	Supplement(dst, nil)
	assert.Equal(t, "Kept", dst.Title)
}

// The default cascade against real markup: no structured data, so the
// scraper supplies content and page metadata fills the scalars.
func TestExtractDefaultCascade(t *testing.T) {
	body := `<html><head>
		<meta property="og:title" content="Weeknight Fried Rice">
		<meta property="og:description" content="Ten minutes, one wok.">
	</head><body>
		<ul class="ingredients">
			<li>2 cups cooked rice</li>
			<li>2 eggs</li>
		</ul>
		<ol class="instructions">
			<li>Scramble the eggs.</li>
			<li>Stir in the rice.</li>
		</ol>
	</body></html>`

	recipe, err := New().Extract(core.RawDocument{
		Kind:     core.KindHTML,
		Body:     body,
		SourceID: "https://example.com/recipes/fried-rice",
	})
	require.NoError(t, err)

	assert.Equal(t, "Weeknight Fried Rice", recipe.Title)
	assert.Equal(t, "Ten minutes, one wok.", recipe.Description)
	assert.Equal(t, []string{"2 cups cooked rice", "2 eggs"}, recipe.Ingredients)
	assert.Equal(t, []string{"Scramble the eggs.", "Stir in the rice."}, recipe.Instructions)
	assert.Equal(t, core.DefaultServings, recipe.Servings)
	assert.Equal(t, "https://example.com/recipes/fried-rice", recipe.SourceURL)
}

// Structured data fills both halves, so the gated scraper never runs and
// its conflicting markup cannot leak into the result.
func TestExtractStructuredDataWinsOverScraper(t *testing.T) {
	body := `<html><head>
		<script type="application/ld+json">{
			"@type": "Recipe",
			"name": "Real Title",
			"recipeIngredient": ["1 cup lentils"],
			"recipeInstructions": "Simmer until tender."
		}</script>
	</head><body>
		<ul class="ingredients"><li>decoy ingredient</li></ul>
		<ol class="instructions"><li>decoy step</li></ol>
	</body></html>`

	recipe, err := New().Extract(core.RawDocument{Kind: core.KindHTML, Body: body})
	require.NoError(t, err)
	assert.Equal(t, "Real Title", recipe.Title)
	assert.Equal(t, []string{"1 cup lentils"}, recipe.Ingredients)
	assert.Equal(t, []string{"Simmer until tender."}, recipe.Instructions)
}
