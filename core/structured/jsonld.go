package structured

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/recipepipe/core"
)

// Decoding helpers for the loosely-typed values real-world JSON-LD carries.
// Every field a recipe site emits shows up as a string somewhere and an
// object or array somewhere else.

// stringValue coerces a scalar JSON value to a string.
func stringValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return ""
	}
}

// stringList flattens a value into a list of non-empty strings. Entries may
// be plain strings or objects carrying text/name/item keys.
func stringList(v any) []string {
	var out []string
	switch val := v.(type) {
	case string:
		if s := strings.TrimSpace(val); s != "" {
			out = append(out, s)
		}
	case []any:
		for _, item := range val {
			out = append(out, stringList(item)...)
		}
	case map[string]any:
		for _, key := range []string{"text", "name", "item", "@value"} {
			if s := stringValue(val[key]); s != "" {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// instructionList resolves recipeInstructions, which nests harder than any
// other field: plain strings, {text}/{name}/{@value} objects, HowToStep
// arrays, and HowToSection objects wrapping itemListElement arrays.
func instructionList(v any) []string {
	var out []string
	switch val := v.(type) {
	case string:
		if s := strings.TrimSpace(val); s != "" {
			out = append(out, s)
		}
	case []any:
		for _, item := range val {
			out = append(out, instructionList(item)...)
		}
	case map[string]any:
		if nested, ok := val["itemListElement"]; ok {
			out = append(out, instructionList(nested)...)
			break
		}
		for _, key := range []string{"text", "name", "@value"} {
			if s := stringValue(val[key]); s != "" {
				out = append(out, s)
				break
			}
		}
	}
	return out
}

// imageList flattens the image field into URLs: a string, an ImageObject
// ({url} or {@id}), or an array of either.
func imageList(v any) []string {
	var out []string
	switch val := v.(type) {
	case string:
		if s := strings.TrimSpace(val); s != "" {
			out = append(out, s)
		}
	case map[string]any:
		if u := stringValue(val["url"]); u != "" {
			out = append(out, u)
		} else if u := stringValue(val["@id"]); u != "" {
			out = append(out, u)
		}
	case []any:
		for _, item := range val {
			out = append(out, imageList(item)...)
		}
	}
	return out
}

// parseYield reads recipeYield: "4", "4 servings", 4, or a QuantitativeValue
// map. Unparsable yields return zero and the default applies downstream.
func parseYield(v any) int {
	switch val := v.(type) {
	case string:
		fields := strings.Fields(val)
		if len(fields) == 0 {
			return 0
		}
		if n, err := strconv.Atoi(fields[0]); err == nil {
			return n
		}
	case float64:
		return int(val)
	case map[string]any:
		if raw, ok := val["value"]; ok {
			return parseYield(raw)
		}
	case []any:
		for _, item := range val {
			if n := parseYield(item); n > 0 {
				return n
			}
		}
	}
	return 0
}

var (
	isoDurationRe  = regexp.MustCompile(`(?i)^P(?:[\d.]+D)?T?(?:(\d+)H)?(?:(\d+)M)?(?:[\d.]+S)?$`)
	freeHoursRe    = regexp.MustCompile(`(?i)\b(\d+)\s*h(?:(?:ou)?rs?)?\b`)
	freeMinutesRe  = regexp.MustCompile(`(?i)\b(\d+)\s*m(?:in(?:ute)?s?)?\b`)
	keywordSplitRe = regexp.MustCompile(`[,;]`)
)

// parseSchemaDuration converts an ISO-8601 duration ("PT1H30M") to minutes,
// falling back to free-text "<n> h / <n> m" tokens for sites that put prose
// in the time fields. Returns nil when nothing parses.
func parseSchemaDuration(s string) *int {
	if s == "" {
		return nil
	}
	if m := isoDurationRe.FindStringSubmatch(s); m != nil {
		total := 0
		found := false
		if m[1] != "" {
			if h, err := strconv.Atoi(m[1]); err == nil {
				total += h * 60
				found = true
			}
		}
		if m[2] != "" {
			if min, err := strconv.Atoi(m[2]); err == nil {
				total += min
				found = true
			}
		}
		if found {
			return core.IntPtr(total)
		}
		return nil
	}

	total := 0
	found := false
	if m := freeHoursRe.FindStringSubmatch(s); m != nil {
		if h, err := strconv.Atoi(m[1]); err == nil {
			total += h * 60
			found = true
		}
		s = freeHoursRe.ReplaceAllString(s, "")
	}
	if m := freeMinutesRe.FindStringSubmatch(s); m != nil {
		if min, err := strconv.Atoi(m[1]); err == nil {
			total += min
			found = true
		}
	}
	if !found {
		return nil
	}
	return core.IntPtr(total)
}

// splitKeywords splits the keywords field (a comma/semicolon string or an
// array of strings) into individual tags.
func splitKeywords(v any) []string {
	var raw []string
	switch val := v.(type) {
	case string:
		raw = keywordSplitRe.Split(val, -1)
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				raw = append(raw, keywordSplitRe.Split(s, -1)...)
			}
		}
	default:
		return nil
	}
	var tags []string
	for _, t := range raw {
		t = strings.TrimSpace(t)
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}
