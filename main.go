// Package main provides the go-optimism CLI.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/hopelab/go-optimism/optimism"
)

func main() {
	var (
		optsFile string
		lexFiles []string
		verbose  bool

		encoding string
		locale   string
		minW     float64
		maxW     float64
		nGrams   []int
		noInt    bool
		output   string
		places   int
		sortBy   string
		wcGrams  bool
	)

	rootCmd := &cobra.Command{
		Use:   "go-optimism [text]",
		Short: "Score text for optimism on a 1-9 scale",
		Long: `go-optimism scores a text string for optimism by matching its words and
word groups against a future-orientation vocabulary and a weighted affect
lexicon, then aggregating the matched weights onto a fixed 1-9 scale
(5 = neutral).

Text is taken from the first argument, or from stdin when no argument is
given. The result is printed as JSON.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := zap.NewNop()
			if verbose {
				dev, err := zap.NewDevelopment()
				if err != nil {
					return err
				}
				logger = dev
				defer logger.Sync()
			}

			var text string
			if len(args) == 1 {
				text = args[0]
			} else {
				data, err := io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading stdin: %w", err)
				}
				text = string(data)
			}

			opts := optimism.DefaultOptions()
			if optsFile != "" {
				data, err := os.ReadFile(optsFile)
				if err != nil {
					return fmt.Errorf("reading options file: %w", err)
				}
				// unmarshals over materialized defaults, so omitted
				// keys keep their documented values
				if err := yaml.Unmarshal(data, opts); err != nil {
					return fmt.Errorf("parsing options file: %w", err)
				}
			}

			flags := cmd.Flags()
			if flags.Changed("encoding") {
				opts.Encoding = optimism.Encoding(encoding)
			}
			if flags.Changed("locale") {
				opts.Locale = optimism.Locale(locale)
			}
			if flags.Changed("min") {
				opts.Min = minW
			}
			if flags.Changed("max") {
				opts.Max = maxW
			}
			if flags.Changed("ngrams") {
				opts.NGrams = nGrams
			}
			if flags.Changed("no-int") {
				opts.NoIntercept = noInt
			}
			if flags.Changed("output") {
				opts.Output = optimism.Output(output)
			}
			if flags.Changed("places") {
				opts.Places = places
			}
			if flags.Changed("sort-by") {
				opts.SortBy = optimism.SortKey(sortBy)
			}
			if flags.Changed("wc-grams") {
				opts.WCGrams = wcGrams
			}

			scorer := optimism.Scorer{Logger: logger}
			if err := scorer.Init(lexFiles...); err != nil {
				return err
			}

			result, err := scorer.Score(text, opts)
			if errors.Is(err, optimism.ErrNoTokens) {
				return errors.New("no scorable tokens in input")
			}
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))

			return nil
		},
	}

	rootCmd.Flags().StringVar(&optsFile, "opts", "", "YAML file with scoring options")
	rootCmd.Flags().StringSliceVar(&lexFiles, "lexicons", nil, "future, affect, and dialect lexicon files (default: embedded)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log option fallbacks and skipped spans")

	rootCmd.Flags().StringVar(&encoding, "encoding", string(optimism.EncodingBinary), "contribution encoding: binary, frequency, or percent")
	rootCmd.Flags().StringVar(&locale, "locale", string(optimism.LocaleUS), "input spelling dialect: US or GB")
	rootCmd.Flags().Float64Var(&minW, "min", 0, "minimum lexicon weight included (inclusive)")
	rootCmd.Flags().Float64Var(&maxW, "max", 0, "maximum lexicon weight included (inclusive)")
	rootCmd.Flags().IntSliceVar(&nGrams, "ngrams", []int{2, 3}, "n-gram span lengths; 0 disables expansion")
	rootCmd.Flags().BoolVar(&noInt, "no-int", false, "disable the intercept term")
	rootCmd.Flags().StringVar(&output, "output", string(optimism.OutputLex), "output shape: lex, matches, or full")
	rootCmd.Flags().IntVar(&places, "places", -1, "decimal places for rounding; -1 disables")
	rootCmd.Flags().StringVar(&sortBy, "sort-by", string(optimism.SortFreq), "match sort key: freq, weight, or lex")
	rootCmd.Flags().BoolVar(&wcGrams, "wc-grams", false, "include n-grams in the word-count denominator")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "go-optimism:", err)
		os.Exit(1)
	}
}
