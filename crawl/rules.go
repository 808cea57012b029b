// Package crawl — URL filtering rules.
// Provides helpers to recognize recipe pages and to filter, normalize, and
// validate URLs during batch discovery.
package crawl

import (
	"net/url"
	"path"
	"strings"
)

// recipePathMarkers identify URLs that point at individual recipe pages.
var recipePathMarkers = []string{
	"/recipe/", "/recipes/", "/recipe-", "/recette/", "/recettes/", "/rezept/",
}

// staticExtensions are file extensions to skip during discovery.
var staticExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true,
	".svg": true, ".webp": true, ".ico": true, ".bmp": true,
	".css": true, ".js": true, ".mjs": true,
	".woff": true, ".woff2": true, ".ttf": true, ".eot": true,
	".mp4": true, ".webm": true, ".mp3": true, ".wav": true,
	".zip": true, ".tar": true, ".gz": true,
	".pdf": true, ".doc": true, ".docx": true, ".xls": true, ".xlsx": true,
}

// IsLikelyRecipeURL checks whether a URL's path looks like an individual
// recipe page. Marker lists beat guessing from slugs; sites that use neither
// still work through single-URL import.
func IsLikelyRecipeURL(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	lower := strings.ToLower(parsed.Path)
	for _, marker := range recipePathMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// IsSameDomain checks if the given URL belongs to the specified domain.
func IsSameDomain(rawURL string, domain string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	return parsed.Host == domain
}

// IsStaticAsset checks if a URL points to a static asset (image, CSS, JS, etc.).
func IsStaticAsset(rawURL string) bool {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return false
	}
	ext := strings.ToLower(path.Ext(parsed.Path))
	return staticExtensions[ext]
}

// NormalizeURL strips fragments and trailing slashes for deduplication.
func NormalizeURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	parsed.Fragment = ""

	if parsed.Path != "/" {
		parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	}

	return parsed.String()
}
