// Package tags cleans, standardizes, and deduplicates free-text recipe tags.
// The pipeline is a fixed ordered sequence per tag — lowercase, strip,
// synonym lookup, noise-word removal, junk filtering, dedupe — and is
// idempotent: standardizing an already-standardized list is a no-op.
package tags

import (
	"regexp"
	"strings"
)

// Modification records what happened to one input tag, for presentation to
// the user before commit. A dropped tag has an empty Standardized value.
type Modification struct {
	Original     string
	Standardized string
	WasModified  bool
}

// Normalizer holds the rule tables. Tables are copied at construction and
// never mutated afterward, so one Normalizer is safe to share.
type Normalizer struct {
	synonyms    map[string]string
	noiseWords  map[string]bool
	junkTags    map[string]bool
	junkPhrases []string
	maxWords    int
}

// Option extends the default tables at construction time.
type Option func(*Normalizer)

// WithSynonyms adds or overrides synonym mappings (post-clean key → value).
func WithSynonyms(extra map[string]string) Option {
	return func(n *Normalizer) {
		for k, v := range extra {
			n.synonyms[strings.ToLower(k)] = strings.ToLower(v)
		}
	}
}

// WithNoiseWords adds words removed token-by-token from tags.
func WithNoiseWords(words ...string) Option {
	return func(n *Normalizer) {
		for _, w := range words {
			n.noiseWords[strings.ToLower(w)] = true
		}
	}
}

// WithJunkTags adds whole-tag values that are dropped outright.
func WithJunkTags(tags ...string) Option {
	return func(n *Normalizer) {
		for _, t := range tags {
			n.junkTags[strings.ToLower(t)] = true
		}
	}
}

// New builds a Normalizer with the default tables plus any options.
func New(opts ...Option) *Normalizer {
	n := &Normalizer{
		synonyms:    make(map[string]string, len(defaultSynonyms)),
		noiseWords:  make(map[string]bool, len(defaultNoiseWords)),
		junkTags:    make(map[string]bool, len(defaultJunkTags)),
		junkPhrases: append([]string(nil), defaultJunkPhrases...),
		maxWords:    4,
	}
	for k, v := range defaultSynonyms {
		n.synonyms[k] = v
	}
	for _, w := range defaultNoiseWords {
		n.noiseWords[w] = true
	}
	for _, t := range defaultJunkTags {
		n.junkTags[t] = true
	}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

var disallowedCharsRe = regexp.MustCompile(`[^a-z0-9 -]+`)

// Standardize runs the full pipeline over a tag list, dropping junk and
// deduplicating by final value while preserving first occurrence.
func (n *Normalizer) Standardize(input []string) []string {
	var out []string
	seen := make(map[string]struct{}, len(input))
	for _, raw := range input {
		tag := n.standardizeOne(raw)
		if tag == "" {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}

// StandardizeTracked runs the same pipeline but records, per input tag,
// whether the result differs from the lowercased original. Duplicates are
// reported as dropped so the caller's final list matches Standardize.
func (n *Normalizer) StandardizeTracked(input []string) []Modification {
	mods := make([]Modification, 0, len(input))
	seen := make(map[string]struct{}, len(input))
	for _, raw := range input {
		tag := n.standardizeOne(raw)
		if tag != "" {
			if _, dup := seen[tag]; dup {
				tag = ""
			} else {
				seen[tag] = struct{}{}
			}
		}
		mods = append(mods, Modification{
			Original:     raw,
			Standardized: tag,
			WasModified:  tag != strings.ToLower(strings.TrimSpace(raw)),
		})
	}
	return mods
}

// standardizeOne applies steps 1-5; an empty return means the tag was
// dropped.
func (n *Normalizer) standardizeOne(raw string) string {
	// 1. Lowercase and trim.
	tag := strings.ToLower(strings.TrimSpace(raw))

	// 2. Strip disallowed characters, collapse whitespace.
	tag = disallowedCharsRe.ReplaceAllString(tag, "")
	tag = strings.Join(strings.Fields(tag), " ")
	if tag == "" {
		return ""
	}

	// 3. Synonym lookup on the whole tag.
	if canonical, ok := n.synonyms[tag]; ok {
		tag = canonical
	}

	// 4. Remove noise words token-by-token — but never empty a tag
	// entirely; a tag that is all noise words stays as it was. Stripping
	// can uncover a synonym key ("christmas recipes" → "christmas"), so
	// the lookup runs once more; synonym values are never keys or noise
	// words, which keeps the pipeline idempotent.
	tag = n.stripNoiseWords(tag)
	if canonical, ok := n.synonyms[tag]; ok {
		tag = canonical
	}

	// 5. Drop junk: known junk values, junk phrases, and run-on tags.
	if n.junkTags[tag] {
		return ""
	}
	for _, phrase := range n.junkPhrases {
		if strings.Contains(tag, phrase) {
			return ""
		}
	}
	if len(strings.Fields(tag)) > n.maxWords {
		return ""
	}
	return tag
}

func (n *Normalizer) stripNoiseWords(tag string) string {
	words := strings.Fields(tag)
	kept := words[:0:0]
	for _, w := range words {
		if !n.noiseWords[w] {
			kept = append(kept, w)
		}
	}
	if len(kept) == 0 {
		return tag
	}
	return strings.Join(kept, " ")
}
