package tolerance

import (
	"regexp"
	"strings"
)

// KGramIndex maps a k-character gram (the source word padded with
// '$' on both ends) to the set of vocabulary words containing it.
type KGramIndex struct {
	K     int
	Grams map[string]map[string]struct{}
}

// BuildKGramIndex pads every dictionary word to "$word$" and indexes
// each of its contiguous k-grams. Words shorter than k once padded are
// skipped — they can never contribute a valid gram.
func BuildKGramIndex(dict Dictionary, k int) *KGramIndex {
	idx := &KGramIndex{K: k, Grams: make(map[string]map[string]struct{})}
	for word := range dict {
		idx.indexWord(word)
	}
	return idx
}

func (idx *KGramIndex) indexWord(word string) {
	padded := "$" + word + "$"
	if len(padded) < idx.K {
		return
	}
	for i := 0; i+idx.K <= len(padded); i++ {
		gram := padded[i : i+idx.K]
		set, ok := idx.Grams[gram]
		if !ok {
			set = make(map[string]struct{})
			idx.Grams[gram] = set
		}
		set[word] = struct{}{}
	}
}

// gramsOf returns the padded k-grams of a single word (or wildcard
// literal fragment), without requiring it to be in any dictionary.
func (idx *KGramIndex) gramsOf(word string) []string {
	padded := "$" + word + "$"
	if len(padded) < idx.K {
		return nil
	}
	grams := make([]string, 0, len(padded)-idx.K+1)
	for i := 0; i+idx.K <= len(padded); i++ {
		grams = append(grams, padded[i:i+idx.K])
	}
	return grams
}

// ExpandWildcard returns every vocabulary word matching a query token
// that contains one or more '*' wildcard metacharacters. It builds the
// k-grams of the literal (non-'*') fragments of the wildcard, takes
// their candidate-word intersection in the index, then filters that
// candidate set with the wildcard interpreted as a `.*`-substituted,
// fully anchored regular expression — mirroring
// generate_wildcard_options in the source this is grounded on.
//
// An empty result means no k-gram matched (spec.md §7 WildcardSyntax):
// the caller should surface that as an empty suggestion list, not an
// error.
func (idx *KGramIndex) ExpandWildcard(wildcard string) []string {
	// K-grams are taken over the whole padded wildcard, '*' and all —
	// exactly like padding and gramming any other dictionary entry.
	// No real vocabulary word contains '*', so any gram straddling one
	// simply fails to appear in the index and drops out on its own;
	// this is what keeps the candidate grams limited to the literal
	// (non-'*') fragments without needing to special-case them.
	var candidateSets []map[string]struct{}
	for _, gram := range idx.gramsOf(wildcard) {
		words, ok := idx.Grams[gram]
		if !ok {
			continue
		}
		candidateSets = append(candidateSets, words)
	}

	if len(candidateSets) == 0 {
		return nil
	}

	candidates := intersectSets(candidateSets)

	pattern := "^" + strings.ReplaceAll(regexp.QuoteMeta(wildcard), `\*`, ".*") + "$"
	re := regexp.MustCompile(pattern)

	var matches []string
	for word := range candidates {
		if re.MatchString(word) {
			matches = append(matches, word)
		}
	}
	return matches
}

func intersectSets(sets []map[string]struct{}) map[string]struct{} {
	if len(sets) == 0 {
		return nil
	}
	result := make(map[string]struct{}, len(sets[0]))
	for w := range sets[0] {
		result[w] = struct{}{}
	}
	for _, s := range sets[1:] {
		for w := range result {
			if _, ok := s[w]; !ok {
				delete(result, w)
			}
		}
	}
	return result
}
