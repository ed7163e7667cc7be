// Package index builds and holds the primary inverted index: the
// stemmed-term postings map, the per-document length map, and the
// retained raw document text.
package index

import (
	"sort"

	"github.com/covrom/newsearch/corpus"
	"github.com/covrom/newsearch/normalize"
)

// Posting is one (doc, term-frequency) entry in a term's posting
// list. Each DocId appears at most once per term.
type Posting struct {
	Doc DocId
	TF  int
}

// DocId re-exports corpus.DocId so callers of this package don't need
// to import corpus just to name a document identifier.
type DocId = corpus.DocId

// PostingList is a term's full set of document occurrences. DF is
// kept explicit alongside Postings so it can be serialized without
// recomputation; the invariant DF == len(Postings) always holds.
type PostingList struct {
	DF       int
	Postings []Posting
}

// Index is the immutable, built inverted index over a static corpus.
type Index struct {
	Terms      map[string]*PostingList
	DocLengths map[DocId]int
	Documents  map[DocId]string
	DocCount   int // number of indexed documents, == len(DocLengths)
}

// Build consumes documents in doc-id-sorted order and produces the
// inverted index, the doc-length map, and the retained document text.
// A document with an empty Text() is tolerated: it contributes a
// length of 0 and no postings.
func Build(n *normalize.Normalizer, docs []corpus.Document) *Index {
	sorted := make([]corpus.Document, len(docs))
	copy(sorted, docs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	idx := &Index{
		Terms:      make(map[string]*PostingList),
		DocLengths: make(map[DocId]int),
		Documents:  make(map[DocId]string),
	}

	for _, doc := range sorted {
		text := doc.Text()
		idx.Documents[doc.ID] = text

		terms := n.Stemmed(text)
		idx.DocLengths[doc.ID] = len(terms)

		tf := make(map[string]int, len(terms))
		for _, term := range terms {
			tf[term]++
		}

		for term, freq := range tf {
			pl, ok := idx.Terms[term]
			if !ok {
				pl = &PostingList{}
				idx.Terms[term] = pl
			}
			pl.DF++
			pl.Postings = append(pl.Postings, Posting{Doc: doc.ID, TF: freq})
		}
	}

	idx.DocCount = len(idx.DocLengths)
	return idx
}

// AvgDocLength returns the mean document length across the corpus, 0
// for an empty corpus.
func (idx *Index) AvgDocLength() float64 {
	if idx.DocCount == 0 {
		return 0
	}
	total := 0
	for _, l := range idx.DocLengths {
		total += l
	}
	return float64(total) / float64(idx.DocCount)
}

// Term returns a term's posting list and whether it exists in the
// index at all (UnknownTerm per spec.md §7 otherwise).
func (idx *Index) Term(term string) (*PostingList, bool) {
	pl, ok := idx.Terms[term]
	return pl, ok
}

// The methods below make *Index satisfy score.View: the primary
// inverted index is itself one of the "polymorphic index views" that
// spec.md §9 asks the scorers to be written against.

// N is the number of indexed documents.
func (idx *Index) N() int { return idx.DocCount }

// CollectionLength is the sum of every document's length (C in the
// Jelinek-Mercer formula — unused by BM25/cosine over this view, but
// part of the shared View contract).
func (idx *Index) CollectionLength() int {
	total := 0
	for _, l := range idx.DocLengths {
		total += l
	}
	return total
}

// VocabSize is the number of distinct indexed terms (|V| in the
// additive-smoothing formula).
func (idx *Index) VocabSize() int { return len(idx.Terms) }

// DocLength returns a document's length and whether it is known.
func (idx *Index) DocLength(doc DocId) (int, bool) {
	l, ok := idx.DocLengths[doc]
	return l, ok
}

// DocIds returns every indexed document id, in no particular order.
func (idx *Index) DocIds() []DocId {
	ids := make([]DocId, 0, len(idx.DocLengths))
	for d := range idx.DocLengths {
		ids = append(ids, d)
	}
	return ids
}

// Lookup returns a term's document frequency and posting list,
// satisfying score.View.
func (idx *Index) Lookup(term string) (df int, postings []Posting, ok bool) {
	pl, found := idx.Terms[term]
	if !found {
		return 0, nil, false
	}
	return pl.DF, pl.Postings, true
}

// IDFDenominator returns a term's document frequency, the denominator
// spec.md §9 pins for BM25/cosine: log10(N/df). The original's
// posting list stored df in slot 0, so its own len(list)-1 arithmetic
// recovers df; this index stores DF directly, so no further offset is
// applied here.
func (idx *Index) IDFDenominator(term string) (int, bool) {
	pl, found := idx.Terms[term]
	if !found {
		return 0, false
	}
	return pl.DF, pl.DF > 0
}
