// Package rag layers an LLM-backed explanation on top of the core
// engine: it runs a query through engine.Engine, then asks a chat
// model to explain, in prose, why the top-ranked document answers the
// query. Ranking itself is untouched — this package only consumes
// engine.Result, it never feeds back into scoring.
package rag

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/sashabaranov/go-openai"

	"github.com/covrom/newsearch/engine"
)

// Explainer wraps an engine.Engine with an OpenAI-compatible chat
// client, directly grounded on the teacher's RAGLLM: the same
// BM25-then-LLM shape, retargeted at the full query orchestrator
// instead of a single plain BM25 pass, and with the teacher's
// Levenshtein fuzzy-match helper reused for near-miss document titles
// rather than fuzzy-matching a canned response database.
type Explainer struct {
	eng          *engine.Engine
	openaiClient *openai.Client
	ftr          float64 // fuzzy title-match threshold, 0.0-1.0
}

// NewExplainer builds an Explainer over an already-constructed engine,
// pointed at an OpenAI-compatible chat completion endpoint.
func NewExplainer(eng *engine.Engine, apiBaseURL, apiKey string) *Explainer {
	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = apiBaseURL

	return &Explainer{
		eng:          eng,
		openaiClient: openai.NewClientWithConfig(cfg),
		ftr:          0.75,
	}
}

// fuzzyTitleMatches finds documents whose text is Levenshtein-similar
// to query, independent of whatever the engine's own ranking surfaced
// — useful when the query is closer to a title string than to any
// stemmed term the inverted index holds.
func (x *Explainer) fuzzyTitleMatches(query string, candidates []engine.Pair) []engine.DocId {
	var matches []engine.DocId
	lowerQuery := strings.ToLower(query)

	for _, p := range candidates {
		text, ok := x.eng.DocText(p.Doc)
		if !ok {
			continue
		}
		dist := levenshtein.ComputeDistance(lowerQuery, strings.ToLower(text))
		maxLen := math.Max(float64(len(lowerQuery)), float64(len(text)))
		if maxLen == 0 {
			continue
		}
		similarity := 1.0 - float64(dist)/maxLen
		if similarity >= x.ftr {
			matches = append(matches, p.Doc)
		}
	}
	return matches
}

// Explain runs query through the engine, then asks model to produce a
// one-paragraph explanation of why the top result (if any) answers the
// query. It returns the engine's own Result alongside the explanation
// so callers can render both.
func (x *Explainer) Explain(ctx context.Context, model, query string, opts engine.Options) (engine.Result, string, error) {
	res := x.eng.Answer(query, 5, opts)

	if len(res.WildcardSuggestions) > 0 {
		return res, fmt.Sprintf("no ranked result: query expands to %v", res.WildcardSuggestions), nil
	}
	if len(res.Pairs) == 0 {
		return res, "no ranked result for this query", nil
	}

	top := res.Pairs[0]
	text, ok := x.eng.DocText(top.Doc)
	if !ok {
		return res, "", fmt.Errorf("rag: engine returned unknown doc %d", top.Doc)
	}

	fuzzy := x.fuzzyTitleMatches(query, res.Pairs)

	var sb strings.Builder
	fmt.Fprintln(&sb, "Using the following information:")
	fmt.Fprintf(&sb, "Top-ranked document (score %.4f):\n%s\n", -top.NegScore, text)
	if len(fuzzy) > 0 {
		fmt.Fprintf(&sb, "Other title-similar matches: %v\n", fuzzy)
	}
	fmt.Fprintf(&sb, "Explain briefly why this document answers the query: %s\n", query)

	resp, err := x.openaiClient.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: sb.String()},
		},
	})
	if err != nil {
		return res, "", fmt.Errorf("rag: chat completion: %w", err)
	}

	return res, resp.Choices[0].Message.Content, nil
}
