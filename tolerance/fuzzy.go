package tolerance

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// NearestByEdit returns the dictionary words within maxDist Levenshtein
// edits of word, ordered by increasing distance (ties broken
// lexically). It supplements spec.md §4.3, whose only specified
// correction path for an unknown term is Soundex: when Soundex finds
// no code match either, this gives the orchestrator a second,
// strictly weaker fallback before giving up on a term entirely. It is
// a direct generalization of the fuzzy-matching helper the teacher
// repo uses to compare a whole query against whole documents
// (DocMatch.findFuzzyMatches), narrowed here to single vocabulary
// words.
func NearestByEdit(dict Dictionary, word string, maxDist int) []string {
	word = strings.ToLower(word)

	type candidate struct {
		word string
		dist int
	}
	var candidates []candidate
	for w := range dict {
		d := levenshtein.ComputeDistance(word, w)
		if d <= maxDist {
			candidates = append(candidates, candidate{w, d})
		}
	}

	for i := 1; i < len(candidates); i++ {
		for j := i; j > 0; j-- {
			a, b := candidates[j-1], candidates[j]
			if a.dist < b.dist || (a.dist == b.dist && a.word <= b.word) {
				break
			}
			candidates[j-1], candidates[j] = candidates[j], candidates[j-1]
		}
	}

	result := make([]string, len(candidates))
	for i, c := range candidates {
		result[i] = c.word
	}
	return result
}
