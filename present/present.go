// Package present turns a ranked engine.Result into human-facing
// output: a Presenter contract for rendering (score, doc, text,
// matched terms) tuples, plus a naive extractive summarizer.
package present

import (
	"regexp"
	"sort"
	"strings"

	"github.com/covrom/newsearch/normalize"
)

// Entry is one ranked result as the Presenter contract receives it,
// per spec.md §6: score, doc id, the document's full retained text,
// and the query terms that matched within it.
type Entry struct {
	Score             float64
	Doc               int
	Text              string
	MatchedQueryTerms []string
}

// Presenter renders an ordered list of Entry; highlighting and layout
// are its concern, not the engine's.
type Presenter interface {
	Present(entries []Entry) string
}

var collapseWhitespace = regexp.MustCompile(`\s+`)
var curlyQuotes = regexp.MustCompile(`[’”“]`)

// cleanText strips curly quotes and collapses runs of whitespace,
// grounded on original_source/search_engine/doc_sum.py's clean_text.
func cleanText(text string) string {
	text = curlyQuotes.ReplaceAllString(text, " ")
	return collapseWhitespace.ReplaceAllString(strings.TrimSpace(text), " ")
}

// sentenceBoundary splits on '.', '!', '?' followed by whitespace — a
// plain-stdlib stand-in for nltk.sent_tokenize, which the corpus this
// engine serves (English news text) doesn't need abbreviation-aware
// splitting to approximate well.
var sentenceBoundary = regexp.MustCompile(`(?:[.!?]+)\s+`)

func splitSentences(text string) []string {
	cleaned := cleanText(text)
	if cleaned == "" {
		return nil
	}
	parts := sentenceBoundary.Split(cleaned, -1)
	sentences := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			sentences = append(sentences, p)
		}
	}
	return sentences
}

// NaiveSummary extracts the top sentenceCnt sentences of doc by a
// query-weighted term-frequency score, per spec.md §1's "naive
// extractive sentence summarizer" and grounded on
// original_source/search_engine/doc_sum.py's naive_sum: each
// sentence's score is the sum, over its own terms, of the term's
// document-normalized tf times its query tf. Sentences are returned in
// score order (highest first), not document order.
func NaiveSummary(n *normalize.Normalizer, doc, query string, sentenceCnt int) string {
	sentences := splitSentences(doc)
	if len(sentences) == 0 {
		return ""
	}

	queryTF := make(map[string]int)
	for _, t := range n.Raw(query) {
		queryTF[t]++
	}

	docTF := make(map[string]int)
	for _, t := range n.Raw(doc) {
		docTF[t]++
	}
	maxFreq := 0
	for _, f := range docTF {
		if f > maxFreq {
			maxFreq = f
		}
	}
	normalizedTF := make(map[string]float64, len(docTF))
	if maxFreq > 0 {
		for term, f := range docTF {
			normalizedTF[term] = float64(f) / float64(maxFreq)
		}
	}

	type scored struct {
		sentence string
		score    float64
	}
	results := make([]scored, 0, len(sentences))
	for _, s := range sentences {
		score := 0.0
		for _, t := range n.Raw(s) {
			score += normalizedTF[t] * float64(queryTF[t])
		}
		results = append(results, scored{sentence: s, score: score})
	}

	sort.SliceStable(results, func(i, j int) bool { return results[i].score > results[j].score })

	k := sentenceCnt
	if k > len(results) {
		k = len(results)
	}
	var b strings.Builder
	for i := 0; i < k; i++ {
		b.WriteString(results[i].sentence)
		b.WriteString(" ")
	}
	return strings.TrimSpace(b.String())
}
