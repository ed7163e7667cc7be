package engine

import (
	"testing"

	"github.com/covrom/newsearch/corpus"
)

func sampleLoader() corpus.SliceLoader {
	return corpus.SliceLoader{
		{ID: 1, Body: "Apple announces a new Apple product"},
		{ID: 2, Body: "Democratic party leadership vote"},
		{ID: 3, Body: "Political analysts discuss the Democratic party"},
		{ID: 4, Body: "Donald Trump held a campaign rally"},
	}
}

func TestAnswerOkapiRanksAppleDocFirst(t *testing.T) {
	e, err := New(sampleLoader())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	res := e.Answer("Apple product", 2, DefaultOptions())
	if len(res.Pairs) == 0 {
		t.Fatal("Answer() returned no pairs")
	}
	if res.Pairs[0].Doc != 1 {
		t.Errorf("top result = doc %d, want doc 1", res.Pairs[0].Doc)
	}
	for _, p := range res.Pairs {
		if p.Doc == 2 || p.Doc == 3 {
			t.Errorf("Answer() unexpectedly scored doc %d (no overlapping stemmed terms)", p.Doc)
		}
	}
}

func TestAnswerCosineRanksBothDemocraticDocs(t *testing.T) {
	e, err := New(sampleLoader())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	opts := DefaultOptions()
	opts.Scoring = ScoringCosine
	res := e.Answer("Democratic party", 2, opts)

	found := map[DocId]bool{}
	for _, p := range res.Pairs {
		found[p.Doc] = true
	}
	if !found[2] || !found[3] {
		t.Errorf("Answer() pairs = %v, want both doc 2 and doc 3", res.Pairs)
	}
}

func TestAnswerWildcardReturnsSuggestionsNotScores(t *testing.T) {
	e, err := New(sampleLoader())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	res := e.Answer("Ap*le", 5, DefaultOptions())
	if len(res.Pairs) != 0 {
		t.Errorf("Answer() with wildcard query scored %v, want no ranking", res.Pairs)
	}
	seen := false
	for _, s := range res.WildcardSuggestions {
		if s == "apple" {
			seen = true
		}
	}
	if !seen {
		t.Errorf("WildcardSuggestions = %v, want it to contain \"apple\"", res.WildcardSuggestions)
	}
}

func TestAnswerSoundexSuggestsCorrectionsForUnknownTerms(t *testing.T) {
	e, err := New(sampleLoader())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	res := e.Answer("Donld Trunp", 5, DefaultOptions())
	if len(res.SoundexCorrections) == 0 {
		t.Error("SoundexCorrections is empty, want corrections for \"donld\"/\"trunp\"")
	}
	if len(res.Pairs) != 0 {
		t.Errorf("Answer() with wholly unknown stemmed terms scored %v, want empty ranking", res.Pairs)
	}
}

func TestAnswerEmptyQueryReturnsEmptyResult(t *testing.T) {
	e, err := New(sampleLoader())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	res := e.Answer("the a an", 5, DefaultOptions())
	if len(res.Pairs) != 0 {
		t.Errorf("Answer() with all-stopword query = %v, want empty", res.Pairs)
	}
}

func TestAnswerInexactRespectsCandidateFilter(t *testing.T) {
	e, err := New(sampleLoader())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	opts := DefaultOptions()
	opts.DoInexact = true
	res := e.Answer("Democratic party", 2, opts)
	if len(res.Pairs) == 0 {
		t.Error("Answer() with DoInexact returned no pairs")
	}
}

func TestAnswerWithExpansionRecurses(t *testing.T) {
	e, err := New(sampleLoader())
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	opts := DefaultOptions()
	opts.DoInexact = true
	opts.UseExpansion = true
	res := e.Answer("Democratic party", 2, opts)
	if len(res.Pairs) == 0 {
		t.Error("Answer() with UseExpansion returned no pairs")
	}
}

func TestTopKPairsOrdersByDescendingScoreThenAscendingDocId(t *testing.T) {
	scores := map[DocId]float64{1: 0.5, 2: 0.9, 3: 0.9, 4: 0.1}
	pairs := topKPairs(scores, 10)

	if len(pairs) != 4 {
		t.Fatalf("topKPairs() returned %d pairs, want 4", len(pairs))
	}
	if pairs[0].Doc != 2 || pairs[1].Doc != 3 {
		t.Errorf("tie-break order = %v, want doc 2 before doc 3 (ascending doc id)", pairs[:2])
	}
	if pairs[3].Doc != 4 {
		t.Errorf("lowest-score pair = %v, want doc 4 last", pairs[3])
	}
}

func TestTopKPairsCapsAtMinOfKAndScored(t *testing.T) {
	scores := map[DocId]float64{1: 1, 2: 2}
	pairs := topKPairs(scores, 10)
	if len(pairs) != 2 {
		t.Errorf("topKPairs() = %d pairs, want min(10, 2) = 2", len(pairs))
	}
}
