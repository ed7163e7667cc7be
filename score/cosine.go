package score

import "math"

// Cosine scores documents with the COSINESCORE(q) formula from
// spec.md §4.7: accumulate tf·q_t·idf² per posting, then divide each
// document's accumulated score by its length. Deliberately uses the
// full tf rather than log(1+tf) — a known quirk of the source
// formulation, reproduced as-is per spec.md §9.
//
// When candidates is non-nil, only documents in that set are scored.
func Cosine(query Query, view View, candidates map[DocId]struct{}) map[DocId]float64 {
	scores := make(map[DocId]float64)
	n := view.N()
	if n == 0 {
		return scores
	}

	for term, qFreq := range query {
		denom, ok := view.IDFDenominator(term)
		if !ok || denom <= 0 {
			continue
		}
		_, postings, found := view.Lookup(term)
		if !found {
			continue
		}
		idf := math.Log10(float64(n) / float64(denom))

		for _, p := range postings {
			if candidates != nil {
				if _, allowed := candidates[p.Doc]; !allowed {
					continue
				}
			}
			scores[p.Doc] += float64(p.TF) * qFreq * idf * idf
		}
	}

	for doc := range scores {
		docLen, ok := view.DocLength(doc)
		if !ok || docLen == 0 {
			continue
		}
		scores[doc] /= float64(docLen)
	}

	return scores
}
