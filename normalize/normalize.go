// Package normalize turns raw document and query text into the
// normalized term sequences the rest of the engine operates on.
package normalize

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// StopWords is the fixed 25-word stop list the engine filters out of
// every normalized term sequence.
var StopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "are": {}, "as": {}, "at": {}, "be": {},
	"by": {}, "for": {}, "from": {}, "has": {}, "he": {}, "in": {}, "is": {},
	"it": {}, "its": {}, "of": {}, "on": {}, "that": {}, "the": {}, "to": {},
	"was": {}, "were": {}, "will": {}, "with": {},
}

// Normalizer is an immutable, shareable handle for the lowercase →
// tokenize → filter → (optionally stem) pipeline. It replaces the
// original's process-wide stemmer/stop-word singletons (spec.md §9)
// with a value that can be constructed once and passed around.
type Normalizer struct{}

// New builds a Normalizer. It carries no mutable state; the zero value
// is equally usable, but New is kept for symmetry with the rest of the
// engine's constructors.
func New() *Normalizer {
	return &Normalizer{}
}

// Tokenize splits text on Unicode word boundaries and lowercases it.
// Punctuation-only and numeric runs are dropped downstream by isApt,
// not here — Tokenize only does boundary detection + case folding.
func (n *Normalizer) Tokenize(text string) []string {
	lower := strings.ToLower(text)
	var tokens []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			tokens = append(tokens, b.String())
			b.Reset()
		}
	}
	for _, r := range lower {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			flush()
		}
	}
	flush()
	return tokens
}

// isApt reports whether a lowercased token is alphabetic and not a
// stop word, i.e. it belongs in a term sequence at all.
func isApt(word string) bool {
	if word == "" {
		return false
	}
	if _, stop := StopWords[word]; stop {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Stem applies the Porter-style English stemmer. It is exported so the
// tolerance and PRF layers can re-stem words produced outside the
// normal document pipeline (e.g. Rocchio expansion terms).
func (n *Normalizer) Stem(word string) string {
	return english.Stem(word, false)
}

// Stemmed normalizes text into the stemmed term sequence used for
// index keys and query scoring: lowercase, tokenize, drop non-apt
// tokens, stem what remains.
func (n *Normalizer) Stemmed(text string) []string {
	tokens := n.Tokenize(text)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if !isApt(tok) {
			continue
		}
		terms = append(terms, n.Stem(tok))
	}
	return terms
}

// Raw normalizes text into the un-stemmed term sequence used to build
// the tolerance vocabulary (k-gram / Soundex indexes) and for result
// highlighting: lowercase, tokenize, drop non-apt tokens, no stemming.
func (n *Normalizer) Raw(text string) []string {
	tokens := n.Tokenize(text)
	terms := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if isApt(tok) {
			terms = append(terms, tok)
		}
	}
	return terms
}

// IsApt reports whether a lowercased token would survive stop-word and
// alphabetic filtering. Exposed for callers (tolerance, PRF) that need
// to apply the same filter outside of Tokenize/Stemmed/Raw.
func IsApt(word string) bool {
	return isApt(word)
}
