// Package crawl — discovery frontier.
// The frontier tracks the two URL populations a discovery run produces:
// index pages still waiting for a visit, and recipe pages already collected.
// Both are deduplicated, so re-linked pages are processed once.
package crawl

// Frontier is the BFS state of one discovery run.
type Frontier struct {
	pending []string
	idx     int // read position into pending
	seen    map[string]bool
	recipes []string
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: make(map[string]bool)}
}

// AddPage enqueues an index page for visiting, unless already seen.
func (f *Frontier) AddPage(url string) {
	if f.seen[url] {
		return
	}
	f.seen[url] = true
	f.pending = append(f.pending, url)
}

// AddRecipe records a discovered recipe page, unless already seen.
// Recipe pages are collected, not visited.
func (f *Frontier) AddRecipe(url string) {
	if f.seen[url] {
		return
	}
	f.seen[url] = true
	f.recipes = append(f.recipes, url)
}

// HasNext reports whether any index pages remain unvisited.
func (f *Frontier) HasNext() bool {
	return f.idx < len(f.pending)
}

// Next returns the next unvisited index page and advances.
func (f *Frontier) Next() string {
	url := f.pending[f.idx]
	f.idx++
	return url
}

// Visited returns the number of index pages taken for visiting so far.
func (f *Frontier) Visited() int {
	return f.idx
}

// Recipes returns the collected recipe URLs in discovery order.
func (f *Frontier) Recipes() []string {
	return f.recipes
}
