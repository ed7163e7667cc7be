package rag

import (
	"testing"

	"github.com/covrom/newsearch/corpus"
	"github.com/covrom/newsearch/engine"
)

func sampleEngine(t *testing.T) *engine.Engine {
	t.Helper()
	loader := corpus.SliceLoader{
		{ID: 1, Body: "Apple announces a new Apple product"},
		{ID: 2, Body: "Democratic party leadership vote"},
	}
	e, err := engine.New(loader)
	if err != nil {
		t.Fatalf("engine.New() error: %v", err)
	}
	return e
}

func TestFuzzyTitleMatchesFindsCloseText(t *testing.T) {
	x := &Explainer{eng: sampleEngine(t), ftr: 0.3}
	candidates := []engine.Pair{{Doc: 1}, {Doc: 2}}

	matches := x.fuzzyTitleMatches("Apple announces a new Apple product", candidates)

	found := false
	for _, d := range matches {
		if d == 1 {
			found = true
		}
	}
	if !found {
		t.Errorf("fuzzyTitleMatches() = %v, want it to include doc 1 (near-identical text)", matches)
	}
}

func TestFuzzyTitleMatchesEmptyForUnknownDoc(t *testing.T) {
	x := &Explainer{eng: sampleEngine(t), ftr: 0.75}
	candidates := []engine.Pair{{Doc: 999}}

	matches := x.fuzzyTitleMatches("anything", candidates)
	if len(matches) != 0 {
		t.Errorf("fuzzyTitleMatches() = %v, want empty for an unknown doc id", matches)
	}
}

func TestExplainReturnsWildcardMessageWithoutCallingLLM(t *testing.T) {
	x := &Explainer{eng: sampleEngine(t)}
	opts := engine.DefaultOptions()

	res, explanation, err := x.Explain(nil, "gpt-4o-mini", "Ap*le", opts)
	if err != nil {
		t.Fatalf("Explain() error: %v", err)
	}
	if len(res.WildcardSuggestions) == 0 {
		t.Fatal("Explain() result has no wildcard suggestions for a wildcard query")
	}
	if explanation == "" {
		t.Error("Explain() returned an empty explanation for a wildcard query")
	}
}

func TestExplainReturnsNoResultMessageWithoutCallingLLM(t *testing.T) {
	x := &Explainer{eng: sampleEngine(t)}
	opts := engine.DefaultOptions()

	res, explanation, err := x.Explain(nil, "gpt-4o-mini", "the a an", opts)
	if err != nil {
		t.Fatalf("Explain() error: %v", err)
	}
	if len(res.Pairs) != 0 {
		t.Fatalf("Explain() result has pairs for an all-stopword query: %v", res.Pairs)
	}
	if explanation == "" {
		t.Error("Explain() returned an empty explanation for a no-result query")
	}
}
