// Package core defines the data model and stage interfaces for RecipePipe.
// Each stage of the extraction pipeline is a clean, testable interface.
package core

import "context"

// MaxDocumentBytes caps how much of a source document the pipeline will look
// at. Oversized inputs are truncated before parsing so execution time stays
// bounded without timeouts inside the pipeline.
const MaxDocumentBytes = 4 << 20 // 4 MiB

// FetchResult holds the raw HTML and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	HTML       string
}

// Fetcher retrieves raw HTML from a URL. Fetching is a boundary collaborator:
// the extraction pipeline itself never performs I/O.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Extractor attempts to pull recipe data from a fetched document.
// "Nothing usable here" is a normal outcome, reported via the sentinel errors
// in errors.go, and tells the orchestrator to move on to the next stage.
type Extractor interface {
	// Name identifies the stage in logs.
	Name() string
	Attempt(doc RawDocument) (*ParsedFragment, error)
}

// Renderer converts a canonical recipe into a final output format.
type Renderer interface {
	Render(recipe CanonicalRecipe) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".json", ".pdf").
	Extension() string
}
