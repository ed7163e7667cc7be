// Package champion builds the high/low (champion list) index used by
// inexact retrieval and language-model scoring, and implements the
// tiered inexact candidate filter over it.
package champion

import (
	"github.com/covrom/newsearch/index"
	"github.com/covrom/newsearch/score"
)

// DefaultThreshold is the term-frequency threshold θ spec.md §4.4
// defaults to.
const DefaultThreshold = 5

// DocId and Posting alias the primary index's types.
type DocId = index.DocId
type Posting = index.Posting

// HighLow is one term's champion-list partition: High holds postings
// with tf >= theta, Low holds the rest. DF is the term's document
// frequency, |High|+|Low|.
type HighLow struct {
	High map[DocId]int
	Low  map[DocId]int
	DF   int
}

// Index is the champion index over a primary inverted index: one
// HighLow triple per term, plus the bookkeeping (doc lengths, vocab
// size, collection length) needed to act as a score.View in its own
// right.
type Index struct {
	Terms      map[string]*HighLow
	DocLengths map[DocId]int
	DocCount   int
	CollLen    int
}

// Build partitions every term's posting list by the tf >= theta rule.
func Build(primary *index.Index, theta int) *Index {
	idx := &Index{
		Terms:      make(map[string]*HighLow, len(primary.Terms)),
		DocLengths: primary.DocLengths,
		DocCount:   primary.DocCount,
	}

	for term, pl := range primary.Terms {
		hl := &HighLow{High: make(map[DocId]int), Low: make(map[DocId]int)}
		for _, p := range pl.Postings {
			if p.TF >= theta {
				hl.High[p.Doc] = p.TF
			} else {
				hl.Low[p.Doc] = p.TF
			}
		}
		hl.DF = len(hl.High) + len(hl.Low)
		idx.Terms[term] = hl
	}

	for _, l := range idx.DocLengths {
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

// CollectionLength is the sum of every document's length (C in the
// Jelinek-Mercer formula).
func (idx *Index) CollectionLength() int { return idx.CollLen }

// VocabSize is the number of terms this champion index covers (|V| in
// the additive-smoothing formula).
func (idx *Index) VocabSize() int { return len(idx.Terms) }

// DocLength returns a document's length and whether it is known.
func (idx *Index) DocLength(doc DocId) (int, bool) {
	l, ok := idx.DocLengths[doc]
	return l, ok
}

// DocIds returns every document id this champion index knows the
// length of, in no particular order.
func (idx *Index) DocIds() []DocId {
	ids := make([]DocId, 0, len(idx.DocLengths))
	for d := range idx.DocLengths {
		ids = append(ids, d)
	}
	return ids
}

// Lookup returns a term's document frequency and its full (high ∪
// low) posting list, satisfying score.View.
func (idx *Index) Lookup(term string) (df int, postings []Posting, ok bool) {
	hl, found := idx.Terms[term]
	if !found {
		return 0, nil, false
	}
	postings = make([]Posting, 0, hl.DF)
	for doc, tf := range hl.High {
		postings = append(postings, Posting{Doc: doc, TF: tf})
	}
	for doc, tf := range hl.Low {
		postings = append(postings, Posting{Doc: doc, TF: tf})
	}
	return hl.DF, postings, true
}

// IDFDenominator returns the champion index's df directly
// (spec.md §6/§9: log10(N/df), the same plain convention the primary
// and phrase indexes use) — this mirrors
// original_source/search_engine/inexact.py, which indexes
// high_low_index[term][2] with no offset.
func (idx *Index) IDFDenominator(term string) (int, bool) {
	hl, found := idx.Terms[term]
	if !found {
		return 0, false
	}
	return hl.DF, hl.DF > 0
}

// docSet is a set of document ids, used by FilterDocs to intersect
// and union per-term high/low memberships.
type docSet map[DocId]struct{}

func (s docSet) union(other docSet) docSet {
	out := make(docSet, len(s)+len(other))
	for d := range s {
		out[d] = struct{}{}
	}
	for d := range other {
		out[d] = struct{}{}
	}
	return out
}

func (s docSet) intersect(other docSet) docSet {
	small, big := s, other
	if len(big) < len(small) {
		small, big = big, small
	}
	out := make(docSet, len(small))
	for d := range small {
		if _, ok := big[d]; ok {
			out[d] = struct{}{}
		}
	}
	return out
}

func (idx *Index) highSet(term string) docSet {
	hl, ok := idx.Terms[term]
	if !ok {
		return docSet{}
	}
	s := make(docSet, len(hl.High))
	for d := range hl.High {
		s[d] = struct{}{}
	}
	return s
}

func (idx *Index) highLowSet(term string) docSet {
	hl, ok := idx.Terms[term]
	if !ok {
		return docSet{}
	}
	s := make(docSet, len(hl.High)+len(hl.Low))
	for d := range hl.High {
		s[d] = struct{}{}
	}
	for d := range hl.Low {
		s[d] = struct{}{}
	}
	return s
}

// aggregate folds perTerm(term) across every term in query with op,
// starting from the first term's own set (matching the "started"
// flag pattern of the source this is grounded on, rather than seeding
// with an empty intersection that would trivially stay empty).
func aggregate(query score.Query, perTerm func(string) docSet, op func(a, b docSet) docSet) docSet {
	var result docSet
	started := false
	for term := range query {
		s := perTerm(term)
		if !started {
			result = s
			started = true
			continue
		}
		result = op(result, s)
	}
	if !started {
		return docSet{}
	}
	return result
}

// FilterDocs implements the four-tier inexact candidate fallback from
// spec.md §4.5, grounded directly on
// original_source/search_engine/inexact.py's filter_docs: it tries,
// in order, (1) the intersection of every query term's HIGH set, (2)
// the intersection of every term's HIGH∪LOW set, (3) the union of
// every term's HIGH set, (4) the union of every term's HIGH∪LOW set —
// stopping at the first tier whose result reaches minN documents.
// Tier 2 contains tier 1, tier 4 contains tiers 2 and 3, and tier 3
// contains tier 1; tier 3 does not necessarily contain tier 2 (a
// document in every term's LOW set but no HIGH set is in tier 2 only).
// If no tier reaches minN, tier 4's result is returned.
func (idx *Index) FilterDocs(query score.Query, minN int) map[DocId]struct{} {
	tiers := []struct {
		perTerm func(string) docSet
		op      func(a, b docSet) docSet
	}{
		{idx.highSet, docSet.intersect},
		{idx.highLowSet, docSet.intersect},
		{idx.highSet, docSet.union},
		{idx.highLowSet, docSet.union},
	}

	var last docSet
	for _, tier := range tiers {
		last = aggregate(query, tier.perTerm, tier.op)
		if len(last) >= minN {
			return last
		}
	}
	return last
}
