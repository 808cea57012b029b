package core

import "errors"

// Sentinel errors for the extraction cascade. The two "No*" errors are
// internal signals: an extractor returns them to say "nothing usable here"
// and the orchestrator degrades to the next stage. Only ErrNoRecipe is ever
// surfaced to the user, and only after every stage has been exhausted.
var (
	// ErrNoRecipe is the terminal failure: no stage produced ingredients or
	// instructions.
	ErrNoRecipe = errors.New("could not extract a recipe from this source")

	// ErrNoText means the plain-text input had no non-blank lines at all.
	ErrNoText = errors.New("no text found")

	// ErrNoStructuredData means the page carries no usable JSON-LD recipe
	// markup. Triggers the HTML fallback scraper.
	ErrNoStructuredData = errors.New("no structured recipe data")

	// ErrNoScrapedContent means the selector heuristics matched nothing.
	// Triggers the metadata-only supplement, or terminal failure.
	ErrNoScrapedContent = errors.New("no scraped recipe content")
)
