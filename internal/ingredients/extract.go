// Package ingredients matches free-text image captions against a static
// dictionary of canonical ingredient names.
package ingredients

import (
	"regexp"
	"sort"
	"strings"
)

var punctuation = regexp.MustCompile(`[^\w\s-]`)

// Extract returns the canonical ingredient names found in caption,
// sorted lexicographically. Candidates are every token of length > 1
// plus every adjacent-token bigram, so compound names like
// "sweet potato" are found even when one half is an excluded word.
// An empty result means no ingredients were recognized; it is not an
// error.
func Extract(caption string) []string {
	cleaned := punctuation.ReplaceAllString(strings.ToLower(caption), " ")

	var words []string
	for _, w := range strings.Fields(cleaned) {
		if len(w) > 1 {
			words = append(words, w)
		}
	}

	candidates := make([]string, 0, 2*len(words))
	candidates = append(candidates, words...)
	for i := 0; i+1 < len(words); i++ {
		candidates = append(candidates, words[i]+" "+words[i+1])
	}

	found := map[string]struct{}{}
	for _, candidate := range candidates {
		// The exclude check is against the literal candidate, never
		// its dictionary-normalized form.
		if _, skip := excluded[candidate]; skip {
			continue
		}
		if name, ok := canonical[candidate]; ok {
			found[name] = struct{}{}
		}
	}

	result := make([]string, 0, len(found))
	for name := range found {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
