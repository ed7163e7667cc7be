package persist

import (
	"testing"

	"github.com/covrom/newsearch/champion"
	"github.com/covrom/newsearch/corpus"
	"github.com/covrom/newsearch/index"
	"github.com/covrom/newsearch/normalize"
	"github.com/covrom/newsearch/phrase"
	"github.com/covrom/newsearch/tolerance"
)

func buildSnapshot(t *testing.T) *Snapshot {
	t.Helper()
	n := normalize.New()
	docs := []corpus.Document{
		{ID: 1, Body: "apple apple apple apple apple banana"},
		{ID: 2, Body: "apple banana banana banana banana banana"},
		{ID: 3, Body: "banana"},
	}

	primary := index.Build(n, docs)
	tol := tolerance.Build(n, []string{docs[0].Body, docs[1].Body, docs[2].Body})
	champ := champion.Build(primary, champion.DefaultThreshold)

	docTokens := make(map[index.DocId][]string, len(docs))
	for _, d := range docs {
		docTokens[d.ID] = n.Stemmed(d.Text())
	}
	ph := phrase.Build(docTokens, primary.DocLengths)

	return &Snapshot{Primary: primary, Tolerance: tol, Champion: champ, Phrase: ph}
}

func TestMarshalUnmarshalRoundTripsPrimaryIndex(t *testing.T) {
	snap := buildSnapshot(t)

	data, err := Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got.Primary.DocCount != snap.Primary.DocCount {
		t.Errorf("DocCount = %d, want %d", got.Primary.DocCount, snap.Primary.DocCount)
	}
	if got.Primary.AvgDocLength() != snap.Primary.AvgDocLength() {
		t.Errorf("AvgDocLength() = %f, want %f", got.Primary.AvgDocLength(), snap.Primary.AvgDocLength())
	}
	if len(got.Primary.Terms) != len(snap.Primary.Terms) {
		t.Errorf("len(Terms) = %d, want %d", len(got.Primary.Terms), len(snap.Primary.Terms))
	}
}

func TestMarshalUnmarshalRoundTripsChampionBookkeeping(t *testing.T) {
	snap := buildSnapshot(t)

	data, err := Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got.Champion.N() != snap.Champion.N() {
		t.Errorf("Champion.N() = %d, want %d", got.Champion.N(), snap.Champion.N())
	}
	if got.Champion.CollectionLength() != snap.Champion.CollectionLength() {
		t.Errorf("Champion.CollectionLength() = %d, want %d", got.Champion.CollectionLength(), snap.Champion.CollectionLength())
	}
}

func TestMarshalUnmarshalRoundTripsPhraseVocabSize(t *testing.T) {
	snap := buildSnapshot(t)

	data, err := Marshal(snap)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if got.Phrase.VocabSize() != snap.Phrase.VocabSize() {
		t.Errorf("Phrase.VocabSize() = %d, want %d", got.Phrase.VocabSize(), snap.Phrase.VocabSize())
	}
	if got.Phrase.N() != snap.Phrase.N() {
		t.Errorf("Phrase.N() = %d, want %d", got.Phrase.N(), snap.Phrase.N())
	}
}
