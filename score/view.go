// Package score implements the four pure ranking functions — Okapi
// BM25, cosine, and the two language-model smoothings — as functions
// over a query and a read-only View, per the "polymorphic index
// views" design note in spec.md §9: the scorers are written once per
// formula and reused across the full inverted index, the high/low
// champion index, and the phrase index.
package score

import "github.com/covrom/newsearch/index"

// DocId and Posting are re-exported so callers of this package don't
// need to import index directly just to name them.
type DocId = index.DocId
type Posting = index.Posting

// View is the read-only surface every scorer needs: document
// accounting (N, average length, collection length, vocabulary size)
// plus per-term posting lookup. index.Index, champion.Index, and
// phrase.Index all satisfy it.
type View interface {
	// N is the number of documents in the collection.
	N() int
	// AvgDocLength is the mean document length across the collection.
	AvgDocLength() float64
	// CollectionLength is the sum of every document's length (C in
	// spec.md's Jelinek-Mercer formula).
	CollectionLength() int
	// VocabSize is the number of distinct terms this view indexes
	// (|V| in spec.md's additive-smoothing formula).
	VocabSize() int
	// DocLength returns a document's length and whether it is known.
	DocLength(doc DocId) (int, bool)
	// DocIds returns every document this view knows the length of, in
	// no particular order. Used to build a full candidate set for the
	// LM scorers, whose candidates parameter is not optional.
	DocIds() []DocId
	// Lookup returns a term's document frequency and posting list.
	// ok is false for a term absent from this view (UnknownTerm,
	// spec.md §7) — BM25/cosine skip it, the LM scorers apply
	// smoothing instead.
	Lookup(term string) (df int, postings []Posting, ok bool)
	// IDFDenominator returns the value BM25/cosine divide N by inside
	// their IDF's logarithm: the term's plain document frequency,
	// uniformly across the primary inverted index, the phrase index,
	// and the high/low champion index (spec.md §9). ok is false — and
	// the term should be skipped, per the NumericDegenerate guard in
	// spec.md §7 — when the resulting denominator would be <= 0.
	IDFDenominator(term string) (denom int, ok bool)
}

// Query is a term→frequency multiset, exactly the Counter the
// orchestrator builds from a preprocessed query string (or the
// Rocchio-reweighted query on a PRF pass).
type Query map[string]float64
