// Package phrase mines collocated bigrams and trigrams from the
// corpus via pointwise mutual information and raw frequency
// thresholds, and builds a phrase index that scores surviving n-grams
// as pseudo-terms.
package phrase

import (
	"math"
	"sort"
	"strings"

	"github.com/covrom/newsearch/index"
)

// DocId and Posting alias the primary index's types.
type DocId = index.DocId
type Posting = index.Posting

// Default mining thresholds, per spec.md §4.6.
const (
	BigramFreqThreshold  = 2
	BigramPMIThreshold   = 6.0
	TrigramFreqThreshold = 2
	TrigramPMIThreshold  = 12.0
)

// PostingList is an n-gram's document occurrences, shaped exactly like
// index.PostingList so the two mirror each other.
type PostingList struct {
	DF       int
	Postings []Posting
}

// Index is the phrase (n-gram) index: one posting list per surviving
// bigram or trigram, keyed by its space-joined stems, plus the
// bookkeeping needed to satisfy score.View so phrase cosine scoring
// can reuse the shared Cosine implementation.
type Index struct {
	Terms      map[string]*PostingList
	DocLengths map[DocId]int
	DocCount   int
	CollLen    int
}

// ngramCounts tallies how many times each n-gram (and, for PMI, each
// of its constituent unigrams) occurs across a token stream.
type ngramCounts struct {
	unigram map[string]int
	bigram  map[[2]string]int
	trigram map[[3]string]int
	total   int
}

func countNgrams(tokens []string) ngramCounts {
	c := ngramCounts{
		unigram: make(map[string]int),
		bigram:  make(map[[2]string]int),
		trigram: make(map[[3]string]int),
		total:   len(tokens),
	}
	for i, tok := range tokens {
		c.unigram[tok]++
		if i+1 < len(tokens) {
			c.bigram[[2]string{tok, tokens[i+1]}]++
		}
		if i+2 < len(tokens) {
			c.trigram[[3]string{tok, tokens[i+1], tokens[i+2]}]++
		}
	}
	return c
}

// bigramPMI computes log2(count(w1,w2)·N / (count(w1)·count(w2))), the
// standard pointwise-mutual-information generalization of the
// collocation measure original_source/search_engine/phrases.py builds
// via nltk's BigramCollocationFinder — reimplemented directly against
// corpus-wide unigram/bigram counts rather than the nltk contingency
// table, since this module carries no nltk equivalent.
func bigramPMI(c ngramCounts, w1, w2 string, jointCount int) float64 {
	n1 := float64(c.unigram[w1])
	n2 := float64(c.unigram[w2])
	if n1 == 0 || n2 == 0 || jointCount == 0 {
		return math.Inf(-1)
	}
	return math.Log2(float64(jointCount) * float64(c.total) / (n1 * n2))
}

// trigramPMI is the three-way extension of bigramPMI, using N² as the
// normalizer so its natural scale roughly doubles that of bigramPMI —
// consistent with spec.md §4.6 pinning the trigram threshold (12) at
// twice the bigram one (6).
func trigramPMI(c ngramCounts, w1, w2, w3 string, jointCount int) float64 {
	n1 := float64(c.unigram[w1])
	n2 := float64(c.unigram[w2])
	n3 := float64(c.unigram[w3])
	if n1 == 0 || n2 == 0 || n3 == 0 || jointCount == 0 {
		return math.Inf(-1)
	}
	nsq := float64(c.total) * float64(c.total)
	return math.Log2(float64(jointCount) * nsq / (n1 * n2 * n3))
}

// MineNgrams finds the bigrams and trigrams in a stemmed token stream
// that clear both the frequency and PMI thresholds, per spec.md §4.6.
// It is run once per document during Build; the orchestrator's
// phrase-mode path does not mine the query, it looks up the query's
// adjacent n-grams in the already-built index.
func MineNgrams(tokens []string) []string {
	c := countNgrams(tokens)
	var found []string

	for bg, freq := range c.bigram {
		if freq < BigramFreqThreshold {
			continue
		}
		if bigramPMI(c, bg[0], bg[1], freq) >= BigramPMIThreshold {
			found = append(found, strings.Join(bg[:], " "))
		}
	}
	for tg, freq := range c.trigram {
		if freq < TrigramFreqThreshold {
			continue
		}
		if trigramPMI(c, tg[0], tg[1], tg[2], freq) >= TrigramPMIThreshold {
			found = append(found, strings.Join(tg[:], " "))
		}
	}

	sort.Strings(found)
	return found
}

// occurrencesOf counts how many times an n-gram (given as its
// space-joined stems) occurs in a token stream.
func occurrencesOf(tokens []string, ngram string) int {
	parts := strings.Split(ngram, " ")
	count := 0
	for i := 0; i+len(parts) <= len(tokens); i++ {
		match := true
		for j, p := range parts {
			if tokens[i+j] != p {
				match = false
				break
			}
		}
		if match {
			count++
		}
	}
	return count
}

// Build mines the global n-gram set across every document's token
// stream (the union across documents, per spec.md §4.6) and records,
// for each surviving n-gram, its document frequency and per-document
// occurrence counts.
func Build(docTokens map[DocId][]string, docLengths map[DocId]int) *Index {
	idx := &Index{
		Terms:      make(map[string]*PostingList),
		DocLengths: docLengths,
	}

	global := make(map[string]struct{})
	for _, tokens := range docTokens {
		for _, ng := range MineNgrams(tokens) {
			global[ng] = struct{}{}
		}
	}

	for ng := range global {
		pl := &PostingList{}
		for doc, tokens := range docTokens {
			occ := occurrencesOf(tokens, ng)
			if occ > 0 {
				pl.Postings = append(pl.Postings, Posting{Doc: doc, TF: occ})
			}
		}
		sort.Slice(pl.Postings, func(i, j int) bool { return pl.Postings[i].Doc < pl.Postings[j].Doc })
		pl.DF = len(pl.Postings)
		idx.Terms[ng] = pl
	}

	idx.DocCount = len(docLengths)
	for _, l := range docLengths {
		idx.CollLen += l
	}

	return idx
}

// N is the number of documents in the underlying collection.
func (idx *Index) N() int { return idx.DocCount }

// AvgDocLength is the mean document length across the collection.
func (idx *Index) AvgDocLength() float64 {
	if idx.DocCount == 0 {
		return 0
	}
	return float64(idx.CollLen) / float64(idx.DocCount)
}

// CollectionLength is the sum of every document's length.
func (idx *Index) CollectionLength() int { return idx.CollLen }

// VocabSize is the number of surviving n-grams this index covers.
func (idx *Index) VocabSize() int { return len(idx.Terms) }

// DocLength returns a document's length and whether it is known.
func (idx *Index) DocLength(doc DocId) (int, bool) {
	l, ok := idx.DocLengths[doc]
	return l, ok
}

// DocIds returns every document id this phrase index knows the
// length of, in no particular order.
func (idx *Index) DocIds() []DocId {
	ids := make([]DocId, 0, len(idx.DocLengths))
	for d := range idx.DocLengths {
		ids = append(ids, d)
	}
	return ids
}

// Lookup returns an n-gram's document frequency and posting list,
// satisfying score.View. The query orchestrator treats each mined
// phrase as a pseudo-term of frequency 1.
func (idx *Index) Lookup(ngram string) (df int, postings []Posting, ok bool) {
	pl, found := idx.Terms[ngram]
	if !found {
		return 0, nil, false
	}
	return pl.DF, pl.Postings, true
}

// IDFDenominator returns an n-gram's document frequency (spec.md
// §9: log10(N/df)), the same convention champion.Index and the
// primary index now share — phrase scoring reuses score.Cosine
// unchanged, so it must see the identical IDF shape.
func (idx *Index) IDFDenominator(ngram string) (int, bool) {
	pl, found := idx.Terms[ngram]
	if !found {
		return 0, false
	}
	return pl.DF, pl.DF > 0
}
