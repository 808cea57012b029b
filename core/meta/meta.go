// Package meta reads Open Graph tags as the lowest-priority extraction
// stage. It only ever supplements: the orchestrator's merge policy keeps it
// from touching any field an earlier stage populated.
package meta

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// Supplementer extracts og:title, og:description, and og:image.
type Supplementer struct{}

// New creates a Supplementer.
func New() *Supplementer {
	return &Supplementer{}
}

// Name identifies the stage in logs.
func (s *Supplementer) Name() string { return "page-metadata" }

// Attempt returns a fragment carrying only scalar page metadata. It never
// returns a no-match sentinel: an empty fragment merges as a no-op, and the
// orchestrator's content invariant is judged after the merge.
func (s *Supplementer) Attempt(doc core.RawDocument) (*core.ParsedFragment, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	frag := &core.ParsedFragment{
		Title:       metaContent(gq, "og:title"),
		Description: metaContent(gq, "og:description"),
	}
	if img := metaContent(gq, "og:image"); img != "" {
		frag.ImageURLs = []string{img}
	}
	if frag.Title == "" {
		frag.Title = strings.TrimSpace(gq.Find("title").First().Text())
	}
	return frag, nil
}

// metaContent reads the content attribute of a meta tag by property name.
func metaContent(gq *goquery.Document, property string) string {
	content, _ := gq.Find(fmt.Sprintf(`meta[property=%q]`, property)).First().Attr("content")
	return strings.TrimSpace(content)
}
