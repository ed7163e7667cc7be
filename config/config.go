// Package config loads and validates the tunable knobs of the search
// engine (spec.md §6) from YAML, mirroring Vedant9500-WTF's
// internal/config package: a plain struct, a DefaultConfig
// constructor, and a Validate method, with gopkg.in/yaml.v3 doing the
// marshaling instead of hand-rolled parsing.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/covrom/newsearch/engine"
	"github.com/covrom/newsearch/score"
)

// Config holds every tunable named in spec.md §6. Fields marked
// "wired" feed directly into an engine.Option via ToEngineOptions.
// Fields marked "informational" describe a knob that the indexes
// currently bake in as a package constant (k-gram k, Soundex code
// length, PMI thresholds per n) rather than accept at construction
// time; they round-trip through YAML for operators who want the
// numbers on record, but changing them here has no effect until the
// corresponding package grows a parameter to match.
type Config struct {
	// BM25 (wired: score.BM25Params)
	BM25K1 float64 `yaml:"bm25_k1"`
	BM25B  float64 `yaml:"bm25_b"`

	// Champion/high-low index (wired: champion threshold)
	ChampionTheta int `yaml:"champion_theta"`

	// Tolerance layer (informational — tolerance.K, tolerance soundex
	// code length are package constants)
	KGramK            int `yaml:"kgram_k"`
	SoundexCodeLength int `yaml:"soundex_code_length"`

	// Language models (wired: additive alpha, Jelinek-Mercer lambda)
	LMAdditiveAlpha      float64 `yaml:"lm_additive_alpha"`
	LMJelinekMercerLambda float64 `yaml:"lm_jelinek_mercer_lambda"`

	// Phrase mining (informational — phrase package's freq/PMI
	// thresholds are compile-time constants)
	BigramFreqThreshold   int     `yaml:"bigram_freq_threshold"`
	BigramPMIThreshold    float64 `yaml:"bigram_pmi_threshold"`
	TrigramFreqThreshold  int     `yaml:"trigram_freq_threshold"`
	TrigramPMIThreshold   float64 `yaml:"trigram_pmi_threshold"`

	// Pseudo-relevance feedback (wired: engine.PRFParams)
	PRFAlpha     float64 `yaml:"prf_alpha"`
	PRFBeta      float64 `yaml:"prf_beta"`
	PRFGamma     float64 `yaml:"prf_gamma"`
	PRFRelevantN int     `yaml:"prf_relevant_n"`

	// Query defaults (consumed by callers of engine.Answer, not the
	// engine itself — spec.md §6 names top_k as an operator default,
	// not an engine invariant)
	DefaultTopK int `yaml:"default_top_k"`
}

// DefaultConfig returns the spec-mandated defaults from spec.md §6:
// BM25 k1=1.2/b=0.75, champion theta=5, k-gram k=2, Soundex length 4,
// LM additive alpha=0.1, PRF alpha=1.0/beta=0.75/gamma=0/relevant_n=2.
func DefaultConfig() *Config {
	return &Config{
		BM25K1:                score.DefaultBM25Params.K1,
		BM25B:                 score.DefaultBM25Params.B,
		ChampionTheta:         5,
		KGramK:                2,
		SoundexCodeLength:     4,
		LMAdditiveAlpha:       score.DefaultAdditiveAlpha,
		LMJelinekMercerLambda: 0.1,
		BigramFreqThreshold:   2,
		BigramPMIThreshold:    6.0,
		TrigramFreqThreshold:  2,
		TrigramPMIThreshold:   12.0,
		PRFAlpha:              engine.DefaultPRFParams.Alpha,
		PRFBeta:               engine.DefaultPRFParams.Beta,
		PRFGamma:              engine.DefaultPRFParams.Gamma,
		PRFRelevantN:          engine.DefaultPRFParams.RelevantN,
		DefaultTopK:           10,
	}
}

// Load reads a YAML config file at path and validates it.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// Save persists the configuration to a YAML file.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// Validate rejects configurations that would make a scorer degenerate
// or an index builder misbehave.
func (c *Config) Validate() error {
	if c.BM25K1 < 0 {
		return fmt.Errorf("bm25_k1 must be >= 0, got %f", c.BM25K1)
	}
	if c.BM25B < 0 || c.BM25B > 1 {
		return fmt.Errorf("bm25_b must be in [0,1], got %f", c.BM25B)
	}
	if c.ChampionTheta < 1 {
		return fmt.Errorf("champion_theta must be >= 1, got %d", c.ChampionTheta)
	}
	if c.KGramK < 1 {
		return fmt.Errorf("kgram_k must be >= 1, got %d", c.KGramK)
	}
	if c.SoundexCodeLength < 1 {
		return fmt.Errorf("soundex_code_length must be >= 1, got %d", c.SoundexCodeLength)
	}
	if c.LMAdditiveAlpha <= 0 {
		return fmt.Errorf("lm_additive_alpha must be > 0, got %f", c.LMAdditiveAlpha)
	}
	if c.LMJelinekMercerLambda <= 0 || c.LMJelinekMercerLambda >= 1 {
		return fmt.Errorf("lm_jelinek_mercer_lambda must be in (0,1), got %f", c.LMJelinekMercerLambda)
	}
	if c.PRFAlpha < 0 || c.PRFBeta < 0 || c.PRFGamma < 0 {
		return fmt.Errorf("prf alpha/beta/gamma must be >= 0, got %f/%f/%f", c.PRFAlpha, c.PRFBeta, c.PRFGamma)
	}
	if c.PRFRelevantN < 1 {
		return fmt.Errorf("prf_relevant_n must be >= 1, got %d", c.PRFRelevantN)
	}
	if c.DefaultTopK < 1 {
		return fmt.Errorf("default_top_k must be >= 1, got %d", c.DefaultTopK)
	}
	return nil
}

// ToEngineOptions converts the wired subset of knobs into the
// functional options engine.New accepts.
func (c *Config) ToEngineOptions() []engine.Option {
	return []engine.Option{
		engine.WithBM25Params(score.BM25Params{K1: c.BM25K1, B: c.BM25B}),
		engine.WithChampionThreshold(c.ChampionTheta),
		engine.WithAdditiveAlpha(c.LMAdditiveAlpha),
		engine.WithJelinekMercerLambda(c.LMJelinekMercerLambda),
		engine.WithPRFParams(engine.PRFParams{
			Alpha:     c.PRFAlpha,
			Beta:      c.PRFBeta,
			Gamma:     c.PRFGamma,
			RelevantN: c.PRFRelevantN,
		}),
	}
}
