package present

import (
	"strings"
	"testing"

	"github.com/covrom/newsearch/normalize"
)

func TestNaiveSummaryPrefersQueryRelevantSentence(t *testing.T) {
	n := normalize.New()
	doc := "Apple announces a new product. The weather today is mild and calm."
	summary := NaiveSummary(n, doc, "Apple product", 1)

	if !strings.Contains(summary, "Apple") {
		t.Errorf("NaiveSummary() = %q, want it to pick the Apple-relevant sentence", summary)
	}
}

func TestNaiveSummaryCapsAtSentenceCount(t *testing.T) {
	n := normalize.New()
	doc := "One sentence here. Another sentence follows. And a third one too."
	summary := NaiveSummary(n, doc, "sentence", 2)

	count := strings.Count(summary, ".") + strings.Count(summary, "!") + strings.Count(summary, "?")
	if count > 2 {
		t.Errorf("NaiveSummary() returned more than 2 sentences: %q", summary)
	}
}

func TestNaiveSummaryEmptyDocReturnsEmpty(t *testing.T) {
	n := normalize.New()
	if got := NaiveSummary(n, "", "query", 3); got != "" {
		t.Errorf("NaiveSummary() on empty doc = %q, want empty", got)
	}
}

func TestCleanTextCollapsesWhitespace(t *testing.T) {
	got := cleanText("hello   \n\t world")
	if got != "hello world" {
		t.Errorf("cleanText() = %q, want \"hello world\"", got)
	}
}

func TestSplitSentencesSplitsOnTerminalPunctuation(t *testing.T) {
	sentences := splitSentences("First one. Second one! Third one?")
	if len(sentences) != 3 {
		t.Errorf("splitSentences() = %v, want 3 sentences", sentences)
	}
}
