package scrape

// Ordered selector tables. Order is the whole contract: the first selector
// producing a usable match set wins and stops the search, so entries run
// from most specific (recipe-markup class names) to least specific (generic
// list markup). Ties between comparably-sized candidates are resolved by
// list position, nothing smarter.

// selectorKind says how matched nodes turn into lines.
type selectorKind int

const (
	// kindItems treats each matched element as one line (list items).
	kindItems selectorKind = iota
	// kindContainer treats each matched element as a block whose inner
	// markup is flattened to lines (paragraph/<br>-separated steps).
	kindContainer
)

type selectorRule struct {
	query    string
	kind     selectorKind
	minItems int // minimum matches to accept; 0 means any non-empty set
}

var ingredientSelectors = []selectorRule{
	{query: `[itemprop="recipeIngredient"]`, kind: kindItems},
	{query: `ul[class*="ingredient"] li`, kind: kindItems},
	{query: `[class*="ingredient"] li`, kind: kindItems},
	{query: `[id*="ingredient"] li`, kind: kindItems},
	{query: `li[class*="ingredient"]`, kind: kindItems},
	{query: `[class*="ingredient"] p`, kind: kindItems},
	{query: `div[class*="ingredient"]`, kind: kindContainer},
	{query: `[id*="ingredient"]`, kind: kindContainer},
}

var instructionSelectors = []selectorRule{
	{query: `[itemprop="recipeInstructions"] li`, kind: kindItems},
	{query: `ol[class*="instruction"] li`, kind: kindItems},
	{query: `[class*="instruction"] li`, kind: kindItems},
	{query: `[class*="direction"] li`, kind: kindItems},
	{query: `[class*="step"] li`, kind: kindItems},
	{query: `[class*="method"] li`, kind: kindItems},
	{query: `[class*="instruction"] p`, kind: kindItems},
	{query: `[class*="direction"] p`, kind: kindItems},
	{query: `div[class*="instruction"]`, kind: kindContainer},
	{query: `div[class*="direction"]`, kind: kindContainer},
	{query: `div[class*="method"]`, kind: kindContainer},
	// Generic ordered lists false-positive on unrelated page furniture
	// (breadcrumbs, "related posts"), so demand a plausible step count.
	{query: `ol li`, kind: kindItems, minItems: 3},
}

// imageScopes are tried before falling back to every <img> on the page.
var imageScopes = []string{
	`[class*="recipe"] img`,
	`[itemprop="image"]`,
	`.hero img`,
	`[class*="hero"] img`,
	`figure img`,
	`article img`,
}

// imageURLBlacklist excludes decorative and tracking images regardless of
// which selector found them.
var imageURLBlacklist = []string{
	"placeholder", "spacer", "pixel", "tracking", "blank",
	"icon", "logo", "avatar", "badge", "sprite", "1x1",
	"gravatar", "emoji", "loading",
}

// minImageDimension filters the all-<img> fallback by declared width/height
// attributes; anything smaller is a thumbnail or ornament.
const minImageDimension = 200
