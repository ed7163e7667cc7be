// Package engine wires every index (primary, tolerance, champion,
// phrase) together behind a single Answer entry point: the query
// orchestrator described in spec.md §4.8, plus the Rocchio-style
// pseudo-relevance feedback pass of §4.9.
package engine

import (
	"container/heap"
	"sort"
	"strings"
	"time"

	"github.com/covrom/newsearch/champion"
	"github.com/covrom/newsearch/corpus"
	"github.com/covrom/newsearch/index"
	"github.com/covrom/newsearch/logging"
	"github.com/covrom/newsearch/normalize"
	"github.com/covrom/newsearch/phrase"
	"github.com/covrom/newsearch/score"
	"github.com/covrom/newsearch/tolerance"
)

// DocId aliases the corpus document identifier used across every
// layer of the engine.
type DocId = corpus.DocId

// ErrMalformedCorpus re-exports corpus.ErrMalformedCorpus: the one
// error Answer's caller must actually handle, per spec.md §7 — every
// other condition (empty query, unknown term, bad wildcard, a
// degenerate collection size) is absorbed locally and reflected in
// the Result instead of returned as an error.
var ErrMalformedCorpus = corpus.ErrMalformedCorpus

// Scoring selects which ranking function Answer uses on the default
// (non-inexact, non-phrase) and inexact paths.
type Scoring string

const (
	ScoringOkapi  Scoring = "okapi"
	ScoringCosine Scoring = "cosine"
	ScoringLM     Scoring = "lm"
)

// LMVariant selects which of the two language models ScoringLM uses.
// Both are part of the recognized "lm" scoring value (spec.md §6);
// this knob picks between them rather than adding a fourth scoring
// name.
type LMVariant string

const (
	LMJelinekMercer LMVariant = "jelinek-mercer"
	LMAdditive      LMVariant = "additive"
)

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithBM25Params overrides the default k1/b BM25 tuning.
func WithBM25Params(p score.BM25Params) Option {
	return func(e *Engine) { e.bm25Params = p }
}

// WithChampionThreshold overrides the default high/low tf threshold θ.
func WithChampionThreshold(theta int) Option {
	return func(e *Engine) { e.championTheta = theta }
}

// WithAdditiveAlpha overrides the LM additive smoothing parameter α.
func WithAdditiveAlpha(alpha float64) Option {
	return func(e *Engine) { e.additiveAlpha = alpha }
}

// WithJelinekMercerLambda overrides the LM Jelinek-Mercer mixing λ.
func WithJelinekMercerLambda(lambda float64) Option {
	return func(e *Engine) { e.jmLambda = lambda }
}

// WithPRFParams overrides the Rocchio α/β/γ/relevant_n defaults.
func WithPRFParams(p PRFParams) Option {
	return func(e *Engine) { e.prfParams = p }
}

// WithLogger overrides the default logging.Global logger.
func WithLogger(l logging.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// Engine bundles the primary, tolerance, champion, and phrase indexes
// built from one static corpus, and exposes Answer as the single
// query-time entry point over them. It is read-only after New
// returns: every index is immutable, so concurrent calls to Answer
// are safe (spec.md §5).
type Engine struct {
	normalizer *normalize.Normalizer

	primary   *index.Index
	tolerance *tolerance.Index
	champion  *champion.Index
	phrase    *phrase.Index

	bm25Params    score.BM25Params
	championTheta int
	additiveAlpha float64
	jmLambda      float64
	prfParams     PRFParams
	log           logging.Logger
}

// New builds every index from docs and returns a ready-to-query
// Engine. A loader-reported corpus.ErrMalformedCorpus propagates
// unchanged; there is no partial or recoverable build.
func New(loader corpus.Loader, opts ...Option) (*Engine, error) {
	docs, err := loader.Load()
	if err != nil {
		return nil, err
	}

	e := &Engine{
		normalizer:    normalize.New(),
		bm25Params:    score.DefaultBM25Params,
		championTheta: champion.DefaultThreshold,
		additiveAlpha: score.DefaultAdditiveAlpha,
		jmLambda:      0.5,
		prfParams:     DefaultPRFParams,
		log:           logging.Global,
	}
	for _, opt := range opts {
		opt(e)
	}

	e.log.Info("loaded corpus", "docs", len(docs))

	e.primary = index.Build(e.normalizer, docs)
	e.log.Debug("built primary index", "terms", len(e.primary.Terms))

	rawTexts := make([]string, 0, len(docs))
	for _, d := range docs {
		rawTexts = append(rawTexts, d.Text())
	}
	e.tolerance = tolerance.Build(e.normalizer, rawTexts)

	e.champion = champion.Build(e.primary, e.championTheta)

	docTokens := make(map[DocId][]string, len(docs))
	for _, d := range docs {
		docTokens[d.ID] = e.normalizer.Stemmed(d.Text())
	}
	e.phrase = phrase.Build(docTokens, e.primary.DocLengths)
	e.log.Debug("built phrase index", "ngrams", e.phrase.VocabSize())

	return e, nil
}

// Options bundles the per-call knobs Answer's callers can set, per
// spec.md §6's answer(raw_query, top_k, {...}) entry point.
type Options struct {
	Scoring       Scoring
	LMVariant     LMVariant
	DoInexact     bool
	DoPhrase      bool
	UseExpansion  bool
	isRaw         bool        // false on a PRF recursive pass
	weightedQuery score.Query // set on a PRF recursive pass
}

// DefaultOptions matches spec.md §6's default scoring value.
func DefaultOptions() Options {
	return Options{Scoring: ScoringOkapi, LMVariant: LMJelinekMercer, isRaw: true}
}

// Pair is one (negated score, doc id) result entry, in the shape
// spec.md §6 specifies for answer's return value.
type Pair struct {
	NegScore float64
	Doc      DocId
}

// Result is everything a single Answer call can report: the ranked
// pairs (empty for a wildcard or empty query), any wildcard
// suggestions or Soundex corrections surfaced along the way, and how
// long the call took.
type Result struct {
	Pairs               []Pair
	WildcardSuggestions []string
	SoundexCorrections  map[string][]string
	Duration            time.Duration
}

// Answer runs the full query orchestrator pipeline of spec.md §4.8.
func (e *Engine) Answer(rawQuery string, topK int, opts Options) Result {
	start := time.Now()
	res := e.answer(rawQuery, topK, opts)
	res.Duration = time.Since(start)
	e.log.Debug("answered query", "query", rawQuery, "results", len(res.Pairs), "duration", res.Duration)
	return res
}

func (e *Engine) answer(rawQuery string, topK int, opts Options) Result {
	if opts.isRaw {
		// Wildcard check runs against the raw, lowercased query before
		// any stemming — a '*' is not a term character.
		if sugg, isWildcard := e.checkWildcard(rawQuery); isWildcard {
			return Result{WildcardSuggestions: sugg}
		}
	}

	query := opts.weightedQuery
	if opts.isRaw {
		query = e.buildQuery(rawQuery)
	}
	if len(query) == 0 {
		return Result{}
	}

	var corrections map[string][]string
	var queryTokens []string
	if opts.isRaw {
		corrections = e.soundexCorrections(query)
		queryTokens = e.normalizer.Stemmed(rawQuery)
	}

	scores := e.scoreQuery(query, queryTokens, topK, opts)
	pairs := topKPairs(scores, topK)

	result := Result{Pairs: pairs, SoundexCorrections: corrections}

	if opts.isRaw && opts.UseExpansion && len(pairs) > 0 {
		expanded := e.rocchio(rawQuery, query, pairs)
		second := e.answer(rawQuery, topK, Options{
			Scoring:       opts.Scoring,
			LMVariant:     opts.LMVariant,
			DoInexact:     opts.DoInexact,
			DoPhrase:      opts.DoPhrase,
			isRaw:         false,
			weightedQuery: expanded,
		})
		second.SoundexCorrections = corrections
		return second
	}

	return result
}

// checkWildcard reports whether the raw query's lowercased tokens
// contain a '*' metacharacter, and if so expands every such token,
// per spec.md §4.8 step 2.
func (e *Engine) checkWildcard(rawQuery string) ([]string, bool) {
	tokens := strings.Fields(strings.ToLower(rawQuery))
	var any bool
	var suggestions []string
	for _, tok := range tokens {
		if !strings.Contains(tok, "*") {
			continue
		}
		any = true
		suggestions = append(suggestions, e.tolerance.ExpandWildcard(tok)...)
	}
	if !any {
		return nil, false
	}
	sort.Strings(suggestions)
	return suggestions, true
}

// buildQuery stems the raw query into a term→frequency Counter.
func (e *Engine) buildQuery(rawQuery string) score.Query {
	terms := e.normalizer.Stemmed(rawQuery)
	q := make(score.Query, len(terms))
	for _, t := range terms {
		q[t]++
	}
	return q
}

// soundexCorrections looks up, for every query term missing from the
// primary inverted index, its Soundex code's vocabulary matches — and
// falls back to an edit-distance match for terms with no Soundex hit
// at all, a supplement over the bare Soundex-only fallback spec.md
// §4.3 describes (see SPEC_FULL.md §4's extractor-grade enrichment).
func (e *Engine) soundexCorrections(query score.Query) map[string][]string {
	var out map[string][]string
	for term := range query {
		if _, _, ok := e.primary.Lookup(term); ok {
			continue
		}
		corrections := e.tolerance.SoundexCorrections(term)
		if len(corrections) == 0 {
			corrections = e.tolerance.NearestByEdit(term)
		}
		if len(corrections) == 0 {
			continue
		}
		if out == nil {
			out = make(map[string][]string)
		}
		out[term] = corrections
	}
	return out
}

// scoreQuery selects the candidate set and scorer by mode, per
// spec.md §4.8 step 4.
func (e *Engine) scoreQuery(query score.Query, queryTokens []string, topK int, opts Options) map[DocId]float64 {
	switch {
	case opts.DoInexact:
		minN := topK / 5
		if minN < 1 {
			minN = 1
		}
		candidates := e.champion.FilterDocs(query, minN)
		return e.scoreOver(query, e.champion, candidates, opts.Scoring, opts.LMVariant)

	case opts.DoPhrase:
		phraseQuery := e.phraseQueryFrom(queryTokens)
		if len(phraseQuery) == 0 {
			return map[DocId]float64{}
		}
		return score.Cosine(phraseQuery, e.phrase, nil)

	default:
		return e.scoreOver(query, e.primary, nil, opts.Scoring, opts.LMVariant)
	}
}

// scoreOver dispatches to the scorer named by scoring, over view
// restricted to candidates (nil meaning "every posting").
func (e *Engine) scoreOver(query score.Query, view score.View, candidates map[DocId]struct{}, scoring Scoring, lmVariant LMVariant) map[DocId]float64 {
	switch scoring {
	case ScoringCosine:
		return score.Cosine(query, view, candidates)
	case ScoringLM:
		if candidates == nil {
			candidates = allDocs(view)
		}
		if lmVariant == LMAdditive {
			return score.LMAdditive(query, view, candidates, e.additiveAlpha)
		}
		return score.LMJelinekMercer(query, view, candidates, e.jmLambda)
	default:
		return score.BM25(query, view, candidates, e.bm25Params)
	}
}

// DocText returns a document's retained text (title+body, as joined by
// corpus.Document.Text) and whether doc is known to the engine.
func (e *Engine) DocText(doc DocId) (string, bool) {
	text, ok := e.primary.Documents[doc]
	return text, ok
}

// allDocs builds the full candidate set over a view's known documents,
// for the LM scorers' non-optional candidates parameter when no tier
// filtering applies.
func allDocs(view score.View) map[DocId]struct{} {
	ids := view.DocIds()
	out := make(map[DocId]struct{}, len(ids))
	for _, id := range ids {
		out[id] = struct{}{}
	}
	return out
}

// phraseQueryFrom forms the consecutive bigrams and trigrams of the
// preprocessed query's own token order and checks each against the
// already-mined global phrase index, treating every hit as a
// pseudo-term of frequency 1 (spec.md §4.6/§4.8). A query is far too
// short for its own PMI statistics to mean anything, so this does not
// re-run phrase.MineNgrams over the query — it only asks "is this
// adjacent query pair itself a phrase the corpus already surfaced".
func (e *Engine) phraseQueryFrom(queryTokens []string) score.Query {
	phraseQuery := make(score.Query)
	for i := 0; i < len(queryTokens); i++ {
		if i+1 < len(queryTokens) {
			bg := strings.Join(queryTokens[i:i+2], " ")
			if _, _, ok := e.phrase.Lookup(bg); ok {
				phraseQuery[bg] = 1
			}
		}
		if i+2 < len(queryTokens) {
			tg := strings.Join(queryTokens[i:i+3], " ")
			if _, _, ok := e.phrase.Lookup(tg); ok {
				phraseQuery[tg] = 1
			}
		}
	}
	return phraseQuery
}

// topKPairs extracts the top-k (negated score, doc id) pairs via a
// min-heap keyed by negated score, per spec.md §4.8 step 5:
// pushing every candidate then popping k smallest negated scores is
// equivalent to popping the k largest scores, breaking ties by
// ascending doc id.
func topKPairs(scores map[DocId]float64, topK int) []Pair {
	h := &pairHeap{}
	for doc, s := range scores {
		heap.Push(h, Pair{NegScore: -s, Doc: doc})
	}

	k := topK
	if k > h.Len() {
		k = h.Len()
	}
	out := make([]Pair, 0, k)
	for i := 0; i < k; i++ {
		out = append(out, heap.Pop(h).(Pair))
	}
	return out
}

// pairHeap is a min-heap over Pair, ordered by (NegScore, Doc) so
// popping yields ascending NegScore (i.e. descending score) with ties
// broken by ascending doc id, per spec.md §8.
type pairHeap []Pair

func (h pairHeap) Len() int { return len(h) }
func (h pairHeap) Less(i, j int) bool {
	if h[i].NegScore != h[j].NegScore {
		return h[i].NegScore < h[j].NegScore
	}
	return h[i].Doc < h[j].Doc
}
func (h pairHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *pairHeap) Push(x any)   { *h = append(*h, x.(Pair)) }
func (h *pairHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

