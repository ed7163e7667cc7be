package phrase

import (
	"fmt"
	"testing"
)

// distinctiveCollocation builds a token stream where "democrat parti"
// appears exactly twice and is otherwise surrounded entirely by
// unique filler tokens, so its marginal unigram counts stay low
// relative to the stream length — the condition under which PMI
// actually climbs above spec.md §4.6's bigram threshold of 6.
func distinctiveCollocation() []string {
	var tokens []string
	for i := 0; i < 99; i++ {
		tokens = append(tokens, fmt.Sprintf("filler%d", i))
	}
	tokens = append(tokens, "democrat", "parti")
	for i := 99; i < 198; i++ {
		tokens = append(tokens, fmt.Sprintf("filler%d", i))
	}
	tokens = append(tokens, "democrat", "parti")
	return tokens
}

func TestMineNgramsFindsRepeatedCollocation(t *testing.T) {
	tokens := distinctiveCollocation()
	found := MineNgrams(tokens)

	seen := false
	for _, ng := range found {
		if ng == "democrat parti" {
			seen = true
		}
	}
	if !seen {
		t.Errorf("MineNgrams() = %v, want it to contain \"democrat parti\"", found)
	}
}

func TestMineNgramsDropsRareBigram(t *testing.T) {
	tokens := []string{"a", "b", "c", "d", "e", "f"}
	found := MineNgrams(tokens)
	for _, ng := range found {
		if ng == "a b" {
			t.Errorf("MineNgrams() kept a freq-1 bigram %q, want it dropped", ng)
		}
	}
}

func TestOccurrencesOfCountsEveryOccurrence(t *testing.T) {
	tokens := []string{"a", "b", "a", "b", "a", "b"}
	if got := occurrencesOf(tokens, "a b"); got != 3 {
		t.Errorf("occurrencesOf() = %d, want 3", got)
	}
}

func TestBuildIndexesSurvivingNgrams(t *testing.T) {
	docTokens := map[DocId][]string{
		1: distinctiveCollocation(),
		2: {"apple", "banana"},
	}
	docLengths := map[DocId]int{1: len(docTokens[1]), 2: len(docTokens[2])}
	idx := Build(docTokens, docLengths)

	df, postings, ok := idx.Lookup("democrat parti")
	if !ok {
		t.Fatal("Lookup() did not find \"democrat parti\"")
	}
	if df != 1 || len(postings) != 1 || postings[0].Doc != 1 || postings[0].TF != 2 {
		t.Errorf("Lookup(\"democrat parti\") = df=%d postings=%v, want df=1, tf=2 in doc 1", df, postings)
	}
}

func TestIDFDenominatorIsPlainDF(t *testing.T) {
	docTokens := map[DocId][]string{
		1: distinctiveCollocation(),
	}
	docLengths := map[DocId]int{1: len(docTokens[1])}
	idx := Build(docTokens, docLengths)

	denom, ok := idx.IDFDenominator("democrat parti")
	if !ok || denom != 1 {
		t.Errorf("IDFDenominator() = (%d, %v), want (1, true) since df=1", denom, ok)
	}
}

func TestIDFDenominatorUnknownNgramYieldsFalse(t *testing.T) {
	idx := Build(map[DocId][]string{1: {"apple", "banana"}}, map[DocId]int{1: 2})

	if _, ok := idx.IDFDenominator("no such phrase"); ok {
		t.Error("IDFDenominator() = true for an unmined n-gram, want false")
	}
}
