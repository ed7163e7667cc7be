package tolerance

import "github.com/covrom/newsearch/normalize"

// K is the k-gram size mandated by spec.md (k=2).
const K = 2

// MaxEditDistance bounds the Levenshtein fallback so it never suggests
// wildly dissimilar words.
const MaxEditDistance = 2

// Index bundles the three tolerance structures built from a corpus's
// raw vocabulary: the frequency dictionary, the k-gram index, and the
// Soundex index.
type Index struct {
	Dictionary Dictionary
	KGrams     *KGramIndex
	Soundex    SoundexIndex
}

// Build constructs the full tolerance layer from raw document text.
func Build(n *normalize.Normalizer, documentTexts []string) *Index {
	dict := BuildDictionary(n, documentTexts)
	return &Index{
		Dictionary: dict,
		KGrams:     BuildKGramIndex(dict, K),
		Soundex:    BuildSoundexIndex(dict),
	}
}

// ExpandWildcard returns every vocabulary word matching a '*'-bearing
// query token.
func (idx *Index) ExpandWildcard(token string) []string {
	return idx.KGrams.ExpandWildcard(token)
}

// SoundexCorrections returns vocabulary words that share word's
// Soundex code — candidate corrections for a term the caller already
// knows is absent from the inverted index.
func (idx *Index) SoundexCorrections(word string) []string {
	return idx.Soundex[SoundexCode(word)]
}

// NearestByEdit returns vocabulary words within the configured
// MaxEditDistance of word.
func (idx *Index) NearestByEdit(word string) []string {
	return NearestByEdit(idx.Dictionary, word, MaxEditDistance)
}
