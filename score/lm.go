package score

// DefaultAdditiveAlpha is the Laplace smoothing parameter spec.md §6
// pins for additive LM scoring.
const DefaultAdditiveAlpha = 0.1

// LMAdditive scores each document in candidates using Laplace
// (additive) smoothing, per spec.md §4.7: for each candidate document,
// start score at 1 and multiply, per query term, by
// (α + tf_{t,d}) / (len_d + α·|V|). An unknown term contributes just α
// in the numerator (denominator unchanged) rather than zeroing the
// product, matching the original's treatment of unindexed terms.
func LMAdditive(query Query, view View, candidates map[DocId]struct{}, alpha float64) map[DocId]float64 {
	scores := make(map[DocId]float64)
	vocabSize := float64(view.VocabSize())

	for doc := range candidates {
		docLen, ok := view.DocLength(doc)
		if !ok {
			continue
		}
		score := 1.0
		denom := float64(docLen) + alpha*vocabSize
		if denom <= 0 {
			scores[doc] = 0
			continue
		}
		for term := range query {
			numerator := alpha
			if _, postings, found := view.Lookup(term); found {
				for _, p := range postings {
					if p.Doc == doc {
						numerator += float64(p.TF)
						break
					}
				}
			}
			score *= numerator / denom
		}
		scores[doc] = score
	}

	return scores
}

// LMJelinekMercer scores each document in candidates by mixing the
// document's own maximum-likelihood model with the collection model,
// per spec.md §4.7: p_d = λ·tf_{t,d}/len_d + (1-λ)·cf_t/C. Unlike
// additive smoothing, an unknown term contributes a factor of 1 (it
// leaves the product unchanged rather than zeroing it), matching the
// source this is grounded on.
func LMJelinekMercer(query Query, view View, candidates map[DocId]struct{}, lambda float64) map[DocId]float64 {
	scores := make(map[DocId]float64)
	collectionLen := float64(view.CollectionLength())

	for doc := range candidates {
		docLen, ok := view.DocLength(doc)
		if !ok || docLen == 0 {
			scores[doc] = 0
			continue
		}

		score := 1.0
		for term := range query {
			_, postings, found := view.Lookup(term)
			if !found {
				continue
			}

			tf := 0.0
			cf := 0.0
			for _, p := range postings {
				cf += float64(p.TF)
				if p.Doc == doc {
					tf = float64(p.TF)
				}
			}

			if collectionLen == 0 {
				continue
			}
			p := lambda*(tf/float64(docLen)) + (1-lambda)*(cf/collectionLen)
			score *= p
		}
		scores[doc] = score
	}

	return scores
}
