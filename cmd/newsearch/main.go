// Command newsearch is a small demo CLI over the in-memory search
// engine: point it at a directory of plain-text documents and a
// query, and it prints the top-k ranked matches. The engine itself
// remains library-surfaced; this is a thin consumer, mirroring the
// shape of Vedant9500-WTF's cmd/wtf entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/covrom/newsearch/config"
	"github.com/covrom/newsearch/corpus"
	"github.com/covrom/newsearch/engine"
	"github.com/covrom/newsearch/logging"
)

var (
	flagConfigPath string
	flagTopK       int
	flagScoring    string
	flagInexact    bool
	flagPhrase     bool
	flagExpand     bool
	flagLogLevel   string
)

var rootCmd = &cobra.Command{
	Use:   "newsearch <corpus-dir> <query>",
	Short: "Search a directory of plain-text documents",
	Long: `newsearch builds an in-memory index over every file in corpus-dir
(one document per file) and ranks it against a free-text query using
one of three scoring models: okapi (BM25, default),
cosine, or lm (language-model, Jelinek-Mercer smoothed by default).`,
	Args: cobra.ExactArgs(2),
	RunE: runSearch,
}

func main() {
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "path to a YAML config file (defaults built in if omitted)")
	rootCmd.Flags().IntVarP(&flagTopK, "top-k", "k", 10, "number of ranked results to print")
	rootCmd.Flags().StringVarP(&flagScoring, "scoring", "s", "okapi", "scoring model: okapi|cosine|lm")
	rootCmd.Flags().BoolVar(&flagInexact, "inexact", false, "restrict candidates via the champion-list inexact filter")
	rootCmd.Flags().BoolVar(&flagPhrase, "phrase", false, "score over the mined phrase index instead of the primary index")
	rootCmd.Flags().BoolVar(&flagExpand, "expand", false, "apply Rocchio pseudo-relevance feedback and re-rank")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log level: off|error|warn|info|debug")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "newsearch: %v\n", err)
		os.Exit(1)
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	dir, query := args[0], args[1]

	level, err := parseLogLevel(flagLogLevel)
	if err != nil {
		return err
	}
	logging.SetGlobalLogLevel(level)

	cfg := config.DefaultConfig()
	if flagConfigPath != "" {
		loaded, err := config.Load(flagConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	e, err := engine.New(corpus.DirLoader{Dir: dir}, cfg.ToEngineOptions()...)
	if err != nil {
		return fmt.Errorf("build index: %w", err)
	}

	opts := engine.DefaultOptions()
	switch flagScoring {
	case "okapi":
		opts.Scoring = engine.ScoringOkapi
	case "cosine":
		opts.Scoring = engine.ScoringCosine
	case "lm":
		opts.Scoring = engine.ScoringLM
	default:
		return fmt.Errorf("unknown --scoring %q, want okapi|cosine|lm", flagScoring)
	}
	opts.DoInexact = flagInexact
	opts.DoPhrase = flagPhrase
	opts.UseExpansion = flagExpand

	res := e.Answer(query, flagTopK, opts)

	if len(res.WildcardSuggestions) > 0 {
		fmt.Printf("Did you mean one of: %v\n", res.WildcardSuggestions)
		return nil
	}
	if len(res.SoundexCorrections) > 0 {
		fmt.Println("No exact matches; possible corrections:")
		for term, corrections := range res.SoundexCorrections {
			fmt.Printf("  %s -> %v\n", term, corrections)
		}
	}
	if len(res.Pairs) == 0 {
		fmt.Println("no results")
		return nil
	}

	fmt.Printf("%d results in %s\n", len(res.Pairs), res.Duration)
	for rank, p := range res.Pairs {
		fmt.Printf("%2d. doc %d  score %.4f\n", rank+1, p.Doc, -p.NegScore)
	}
	return nil
}

func parseLogLevel(s string) (logging.Level, error) {
	switch s {
	case "off":
		return logging.LevelOff, nil
	case "error":
		return logging.LevelError, nil
	case "warn":
		return logging.LevelWarn, nil
	case "info":
		return logging.LevelInfo, nil
	case "debug":
		return logging.LevelDebug, nil
	default:
		return 0, fmt.Errorf("unknown --log-level %q, want off|error|warn|info|debug", s)
	}
}
