// Package textproc provides the shared text normalization used by the
// vectorizer, the inference path, and keyword search.
package textproc

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// stopWords are dropped only on the search path, so keyword overlap does
// not match on noise words. The vectorizer path keeps them and relies on
// IDF weighting instead; the asymmetry is deliberate.
var stopWords = map[string]struct{}{
	"of": {}, "and": {}, "the": {}, "a": {}, "an": {},
	"in": {}, "on": {}, "for": {}, "with": {},
}

// Tokens lowercases, strips accents, and splits text on whitespace.
// No stop-word filtering; this is the vectorizer's input.
func Tokens(text string) []string {
	return strings.Fields(stripAccents(strings.ToLower(text)))
}

// Keywords returns Tokens minus stop words. Search path only.
func Keywords(text string) []string {
	var out []string
	for _, tok := range Tokens(text) {
		if _, ok := stopWords[tok]; ok {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// stripAccents removes combining diacritical marks after NFD normalization.
func stripAccents(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range norm.NFD.String(text) {
		if unicode.In(r, unicode.Mn) {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
