// Command toxicscore scores text for abusive, defamatory or threatening
// language and prints the resulting tier.
package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/tsawler/toxic"
)

const sampleText = "お前なんて要らない。さっさと消えろ。"

type options struct {
	dictionary string
	names      string
	lang       string
	explain    bool
	sentences  bool
	lint       bool
	batch      bool
	dump       bool
	verbose    bool
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "toxicscore [text...]",
		Short: "Score text for abusive language",
		Long: `Score text against categorized phrase dictionaries and print the
classification tier. Arguments are joined with spaces; without arguments a
built-in sample sentence is scored. With --batch, each line of stdin is
scored and a summary is printed.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), cmd.InOrStdin(), opts, args)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.dictionary, "dictionary", "d", "", "dictionary file (.json, .yaml)")
	flags.StringVar(&opts.names, "names", "", "file of names merged into the names category")
	flags.StringVar(&opts.lang, "lang", "", "stop-word language for --lint (detected when empty)")
	flags.BoolVarP(&opts.explain, "explain", "e", false, "print every dictionary hit")
	flags.BoolVar(&opts.sentences, "sentences", false, "also score each sentence separately")
	flags.BoolVar(&opts.lint, "lint", false, "report questionable dictionary phrases and exit")
	flags.BoolVar(&opts.batch, "batch", false, "score each line of stdin")
	flags.BoolVar(&opts.dump, "dump", false, "print the effective dictionary as JSON and exit")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func run(ctx context.Context, out io.Writer, in io.Reader, opts *options, args []string) error {
	logger, err := newLogger(opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	dict, weights, err := loadDictionary(opts, logger)
	if err != nil {
		return err
	}

	if opts.dump {
		return dict.WriteJSON(out, weights)
	}

	if opts.lint {
		findings := toxic.Lint(dict, toxic.Language(opts.lang))
		for _, f := range findings {
			fmt.Fprintln(out, f)
		}
		logger.Info("lint finished", zap.Int("findings", len(findings)))
		return nil
	}

	analyzer := toxic.NewAnalyzer(
		toxic.UsingDictionary(dict),
		toxic.UsingWeights(weights),
		toxic.UsingLogger(logger),
	)

	if opts.batch {
		return runBatch(ctx, out, in, analyzer)
	}

	text := strings.Join(args, " ")
	if text == "" {
		text = sampleText
	}

	report := analyzer.Explain(text)
	printReport(out, report, opts.explain)

	if opts.sentences {
		sentences, err := analyzer.ExplainSentences(text)
		if err != nil {
			return err
		}
		for i, s := range sentences {
			fmt.Fprintf(out, "\n[%d] %s\n", i+1, s.Text)
			printReport(out, s.Report, opts.explain)
		}
	}

	return nil
}

func loadDictionary(opts *options, logger *zap.Logger) (*toxic.Dictionary, toxic.Weights, error) {
	dict, weights := toxic.DefaultDictionary(), toxic.DefaultWeights()

	if opts.dictionary != "" {
		loaded, loadedWeights, err := toxic.LoadDictionary(opts.dictionary)
		if err != nil {
			return nil, nil, err
		}
		dict = loaded
		if loadedWeights != nil {
			weights = loadedWeights
		}
		logger.Debug("dictionary loaded",
			zap.String("path", opts.dictionary),
			zap.Int("categories", dict.Len()))
	}

	if opts.names != "" {
		f, err := os.Open(opts.names)
		if err != nil {
			return nil, nil, fmt.Errorf("error opening names file: %w", err)
		}
		defer f.Close()

		names, err := toxic.LoadNames(f)
		if err != nil {
			return nil, nil, err
		}
		dict = dict.With(toxic.Names, names...)
		logger.Debug("names merged", zap.Int("names", len(names)))
	}

	return dict, weights, nil
}

func runBatch(ctx context.Context, out io.Writer, in io.Reader, analyzer *toxic.Analyzer) error {
	var texts []string
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			texts = append(texts, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("error reading input: %w", err)
	}

	reports, err := analyzer.AnalyzeAll(ctx, texts)
	if err != nil {
		return err
	}
	for _, r := range reports {
		fmt.Fprintf(out, "%d\t%s\t%s\n", r.Score, r.Tier, r.Text)
	}

	s := toxic.Summarize(reports)
	fmt.Fprintf(out, "\ntexts: %d  flagged: %d  mean: %.2f  median: %.1f  stddev: %.2f  max: %d\n",
		s.Count, s.Flagged, s.Mean, s.Median, s.StdDev, s.Max)
	return nil
}

func printReport(out io.Writer, r toxic.Report, explain bool) {
	fmt.Fprintf(out, "スコア: %d\n", r.Score)
	fmt.Fprintf(out, "判定結果: %s (%s)\n", r.Tier.Message(), r.Tier)
	if !explain {
		return
	}
	for _, h := range r.Hits {
		fmt.Fprintf(out, "  #%d %q %s +%d", h.Position, h.Token, h.Category, h.Weight)
		if h.Bonus > 0 {
			fmt.Fprintf(out, " +%d %v", h.Bonus, h.Danger)
		}
		fmt.Fprintln(out)
	}
}
