// Package scrape is the CSS-selector fallback extractor, invoked when a page
// carries no usable structured markup. It walks ordered selector tables per
// field and accepts the first selector that matches; a result with either
// ingredients or instructions is good enough — a half recipe is still a
// savable partial import.
package scrape

import (
	"fmt"
	"strconv"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"

	"github.com/gaurav-prasanna/recipepipe/core"
	"github.com/gaurav-prasanna/recipepipe/core/classify"
)

// Scraper extracts recipe fields with CSS-selector heuristics.
type Scraper struct{}

// New creates a Scraper.
func New() *Scraper {
	return &Scraper{}
}

// Name identifies the stage in logs.
func (s *Scraper) Name() string { return "html-fallback" }

// Attempt runs the selector tables over the document. Returns
// core.ErrNoScrapedContent when neither ingredients nor instructions match.
func (s *Scraper) Attempt(doc core.RawDocument) (*core.ParsedFragment, error) {
	gq, err := goquery.NewDocumentFromReader(strings.NewReader(doc.Body))
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	frag := &core.ParsedFragment{
		Ingredients:  firstSelectorMatch(gq, ingredientSelectors),
		Instructions: firstSelectorMatch(gq, instructionSelectors),
		ImageURLs:    scrapeImages(gq),
	}

	if !frag.HasContent() {
		return nil, core.ErrNoScrapedContent
	}
	return frag, nil
}

// firstSelectorMatch tries the rules in order and returns the lines of the
// first one that yields an acceptable match set.
func firstSelectorMatch(gq *goquery.Document, rules []selectorRule) []string {
	for _, rule := range rules {
		sel := gq.Find(rule.query)
		if sel.Length() == 0 {
			continue
		}

		var lines []string
		switch rule.kind {
		case kindItems:
			lines = itemLines(sel)
		case kindContainer:
			lines = containerLines(sel)
		}

		need := rule.minItems
		if need == 0 {
			need = 1
		}
		if len(lines) >= need {
			return lines
		}
	}
	return nil
}

// itemLines collects one trimmed line per matched element, dropping empties
// and obvious page noise.
func itemLines(sel *goquery.Selection) []string {
	var lines []string
	sel.Each(func(_ int, item *goquery.Selection) {
		text := collapseSpace(item.Text())
		if text == "" || classify.IsNoise(text) {
			return
		}
		lines = append(lines, text)
	})
	return lines
}

// containerLines flattens matched blocks whose steps are paragraph- or
// <br>-separated rather than list items. The inner markup is converted to
// markdown so line structure survives, then split and de-noised.
func containerLines(sel *goquery.Selection) []string {
	var lines []string
	sel.Each(func(_ int, block *goquery.Selection) {
		inner, err := block.Html()
		if err != nil {
			return
		}
		md, err := htmltomarkdown.ConvertString(inner)
		if err != nil {
			return
		}
		for _, line := range strings.Split(md, "\n") {
			line = strings.TrimLeft(strings.TrimSpace(line), "#*->• ")
			line = strings.TrimSpace(line)
			if line == "" || classify.IsNoise(line) {
				continue
			}
			lines = append(lines, line)
		}
	})
	return lines
}

// scrapeImages prefers images inside recipe/hero/figure/article containers
// and only falls back to every <img> on the page — size-filtered — when no
// scoped image survives the blacklist.
func scrapeImages(gq *goquery.Document) []string {
	for _, scope := range imageScopes {
		var urls []string
		gq.Find(scope).Each(func(_ int, img *goquery.Selection) {
			if u := imageURL(img); u != "" {
				urls = append(urls, u)
			}
		})
		if len(urls) > 0 {
			return dedupe(urls)
		}
	}

	var urls []string
	gq.Find("img").Each(func(_ int, img *goquery.Selection) {
		if !bigEnough(img) {
			return
		}
		if u := imageURL(img); u != "" {
			urls = append(urls, u)
		}
	})
	return dedupe(urls)
}

// imageURL returns the src (or lazy-load data-src) unless blacklisted.
func imageURL(img *goquery.Selection) string {
	src, _ := img.Attr("src")
	if src == "" {
		src, _ = img.Attr("data-src")
	}
	if src == "" || blacklisted(src) {
		return ""
	}
	return src
}

func blacklisted(url string) bool {
	lower := strings.ToLower(url)
	for _, word := range imageURLBlacklist {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// bigEnough checks declared width/height attributes. Images without declared
// dimensions pass — the filter only exists to drop known-tiny ornaments.
func bigEnough(img *goquery.Selection) bool {
	for _, attr := range []string{"width", "height"} {
		if v, ok := img.Attr(attr); ok {
			if n, err := strconv.Atoi(strings.TrimSuffix(v, "px")); err == nil && n < minImageDimension {
				return false
			}
		}
	}
	return true
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	var out []string
	for _, v := range in {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			out = append(out, v)
		}
	}
	return out
}
