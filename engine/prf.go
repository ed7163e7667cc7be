package engine

import (
	"math"
	"sort"

	"github.com/covrom/newsearch/score"
)

// PRFParams are the Rocchio weights spec.md §4.9 pins: α weights the
// original query, β the relevant-document centroid, γ the
// non-relevant centroid (0 disables negative feedback).
type PRFParams struct {
	Alpha     float64
	Beta      float64
	Gamma     float64
	RelevantN int
}

// DefaultPRFParams matches spec.md §4.9's stated defaults; RelevantN=2
// matches original_source/search_engine/engine.py's
// pseudo_relevance_feedback(..., relevant_n=2) call.
var DefaultPRFParams = PRFParams{Alpha: 1.0, Beta: 0.75, Gamma: 0, RelevantN: 2}

// docVector is one document's term→tf·idf representation, built
// against the primary index's IDF: plain log10(N/df) with no "df-1"
// offset, the same convention BM25/cosine use via IDFDenominator.
type docVector map[string]float64

// vectorizeDoc tokenizes (stemmed) a document's retained text and
// weights each term by tf times the primary index's plain IDF; a term
// absent from the primary index contributes idf=0, grounded directly
// on original_source/search_engine/query_exp.py's docs2vecs.
func (e *Engine) vectorizeDoc(doc DocId) docVector {
	text, ok := e.primary.Documents[doc]
	if !ok {
		return docVector{}
	}
	terms := e.normalizer.Stemmed(text)
	tf := make(map[string]int, len(terms))
	for _, t := range terms {
		tf[t]++
	}

	vec := make(docVector, len(tf))
	n := e.primary.N()
	for term, freq := range tf {
		idf := 0.0
		if df, _, ok := e.primary.Lookup(term); ok && df > 0 && n > 0 {
			idf = math.Log10(float64(n) / float64(df))
		}
		vec[term] = float64(freq) * idf
	}
	return vec
}

// rocchio reweights the original query using the top-ranked documents
// as pseudo-relevance judgments, per spec.md §4.9, grounded on
// original_source/search_engine/query_exp.py's rocchio/
// pseudo_relevance_feedback/get_k_relevant_docs.
func (e *Engine) rocchio(rawQuery string, originalQuery score.Query, topPairs []Pair) score.Query {
	p := e.prfParams

	newQuery := make(score.Query, len(originalQuery))
	for term, freq := range originalQuery {
		newQuery[term] = p.Alpha * freq
	}

	if len(topPairs) == 0 {
		return newQuery
	}

	relevantN := len(topPairs) / 2
	if p.RelevantN < relevantN {
		relevantN = p.RelevantN
	}

	relevantDocs := topPairs[:relevantN]
	nonRelevantDocs := topPairs[relevantN:]

	if len(relevantDocs) == 0 {
		return newQuery
	}

	positiveCenter := make(map[string]float64)
	for _, pair := range relevantDocs {
		for term, w := range e.vectorizeDoc(pair.Doc) {
			positiveCenter[term] += w
		}
	}

	type termWeight struct {
		term   string
		weight float64
	}
	candidates := make([]termWeight, 0, len(positiveCenter))
	for term, sum := range positiveCenter {
		candidates = append(candidates, termWeight{
			term:   term,
			weight: p.Beta * sum / float64(len(relevantDocs)),
		})
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].weight > candidates[j].weight })

	top := candidates
	if len(top) > 2 {
		top = top[:2]
	}
	for _, c := range top {
		newQuery[c.term] = c.weight
	}

	if p.Gamma > 0 && len(nonRelevantDocs) > 0 {
		negativeCenter := make(map[string]float64)
		for _, pair := range nonRelevantDocs {
			for term, w := range e.vectorizeDoc(pair.Doc) {
				negativeCenter[term] += w
			}
		}
		for term := range newQuery {
			if negW, ok := negativeCenter[term]; ok {
				newQuery[term] -= p.Gamma * negW / float64(len(nonRelevantDocs))
				if newQuery[term] < 0 {
					newQuery[term] = 0
				}
			}
		}
	}

	return newQuery
}
