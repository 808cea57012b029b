package core

// DocumentKind distinguishes the two source shapes the pipeline accepts.
type DocumentKind int

const (
	// KindHTML is a fetched web page (raw markup).
	KindHTML DocumentKind = iota
	// KindPlainText is PDF-extracted or OCR'd text.
	KindPlainText
)

// RawDocument is the immutable input to one extraction call. The caller owns
// it; the pipeline only reads it.
type RawDocument struct {
	Kind     DocumentKind
	Body     string
	SourceID string // source URL or file identifier, may be empty
}

// Truncated returns the document with its body capped at MaxDocumentBytes.
func (d RawDocument) Truncated() RawDocument {
	if len(d.Body) > MaxDocumentBytes {
		d.Body = d.Body[:MaxDocumentBytes]
	}
	return d
}

// ParsedFragment is partial recipe data produced by one extractor stage.
// Zero values mean "not found"; fragments never carry placeholder sentinels.
type ParsedFragment struct {
	Title        string
	Description  string
	Ingredients  []string
	Instructions []string
	Servings     int  // 0 = unknown
	PrepMinutes  *int // nil = unknown
	CookMinutes  *int
	Tags         []string
	ImageURLs    []string
}

// HasContent reports whether the fragment carries at least one of the two
// halves that make a recipe savable.
func (f *ParsedFragment) HasContent() bool {
	return f != nil && (len(f.Ingredients) > 0 || len(f.Instructions) > 0)
}

// DefaultServings is applied when no source yields a servings count.
const DefaultServings = 4

// CanonicalRecipe is the final merged record handed to persistence.
// Ingredients or Instructions may be empty, but never both: a recipe with
// neither is a hard extraction failure, not a valid partial result.
type CanonicalRecipe struct {
	Title        string   `json:"title"`
	Description  string   `json:"description,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Servings     int      `json:"servings"`
	PrepMinutes  *int     `json:"prep_time_minutes,omitempty"`
	CookMinutes  *int     `json:"cook_time_minutes,omitempty"`
	Tags         []string `json:"tags"`
	ImageURLs    []string `json:"image_urls"`
	SourceURL    string   `json:"source_url,omitempty"`
}

// Canonical converts a merged fragment into the final record, applying the
// servings default. It does not validate content; the orchestrator enforces
// the ingredients-or-instructions invariant before calling this.
func (f *ParsedFragment) Canonical(sourceURL string) CanonicalRecipe {
	servings := f.Servings
	if servings <= 0 {
		servings = DefaultServings
	}
	return CanonicalRecipe{
		Title:        f.Title,
		Description:  f.Description,
		Ingredients:  f.Ingredients,
		Instructions: f.Instructions,
		Servings:     servings,
		PrepMinutes:  f.PrepMinutes,
		CookMinutes:  f.CookMinutes,
		Tags:         f.Tags,
		ImageURLs:    f.ImageURLs,
		SourceURL:    sourceURL,
	}
}

// IntPtr is a convenience for the optional minute fields.
func IntPtr(n int) *int { return &n }
