package score

import "math"

// BM25Params holds the Okapi BM25 tuning knobs (spec.md §4.7, §6).
type BM25Params struct {
	K1 float64
	B  float64
}

// DefaultBM25Params is the spec-mandated k1=1.2, b=0.75.
var DefaultBM25Params = BM25Params{K1: 1.2, B: 0.75}

// BM25 scores every document that has a posting for at least one
// query term, per spec.md §4.7. When candidates is non-nil, only
// documents in that set are scored (the inexact/champion path);
// candidates == nil scores every posting (the default, full-index
// path). Terms with a non-positive IDFDenominator are skipped
// (NumericDegenerate, spec.md §7) instead of aborting the whole score.
func BM25(query Query, view View, candidates map[DocId]struct{}, params BM25Params) map[DocId]float64 {
	scores := make(map[DocId]float64)
	n := view.N()
	if n == 0 {
		return scores
	}
	avgdl := view.AvgDocLength()
	if avgdl == 0 {
		return scores
	}

	for term := range query {
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
			docLen, ok := view.DocLength(p.Doc)
			if !ok {
				continue
			}
			tf := float64(p.TF)
			numerator := tf * (params.K1 + 1)
			denominator := tf + params.K1*(1-params.B+params.B*float64(docLen)/avgdl)
			scores[p.Doc] += idf * numerator / denominator
		}
	}

	return scores
}
