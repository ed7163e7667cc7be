// Package tolerance builds and queries the tolerant-retrieval indexes:
// the raw vocabulary, the k-gram index for wildcard expansion, the
// Soundex index for phonetic correction, and an edit-distance fallback
// for words neither of those recover.
package tolerance

import (
	"github.com/covrom/newsearch/normalize"
)

// Dictionary is a frequency counter over the raw (un-stemmed) apt
// vocabulary. The counts themselves are never consulted by the
// tolerance layer — only dict.Keys() is used as an iteration surface,
// exactly as in the source this is grounded on — but they are kept
// because they're nearly free to compute and make the dictionary
// independently useful (e.g. for future ranking of suggestions by
// corpus frequency).
type Dictionary map[string]int

// BuildDictionary scans every document's raw (lowercased, tokenized,
// un-stemmed, apt) vocabulary and counts occurrences. It accepts the
// raw document texts directly (rather than the keyed Documents map)
// so this package stays independent of the DocId type.
func BuildDictionary(n *normalize.Normalizer, texts []string) Dictionary {
	dict := make(Dictionary)
	for _, text := range texts {
		for _, w := range n.Raw(text) {
			dict[w]++
		}
	}
	return dict
}

// Keys returns the dictionary's vocabulary as a slice, in no
// particular order.
func (d Dictionary) Keys() []string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	return keys
}
