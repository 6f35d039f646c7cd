// Package crossval handles cross-validation experiment commands
package crossval

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/GHDaru/prodclass/cmd/root"
	"github.com/GHDaru/prodclass/internal/classifier"
	"github.com/GHDaru/prodclass/internal/experiment"
)

// Cmd represents the crossval command
var Cmd = &cobra.Command{
	Use:   "crossval",
	Short: "Cross-validate parameter combinations over a labeled dataset",
	Long: `Cross-validate every combination of the given parameter variations
over seeded k-fold splits of a labeled dataset. Per-fold results are
written as CSV when --output is given.

Example:
  prodclass crossval -i products.csv --folds 5 --ngram-range 1:1 --ngram-range 1:2 -o results.csv`,
	Run: crossvalFunc,
}

var (
	ngramRanges []string
	minDFs      []int
	maxFeatures []int
	classifiers []string
)

func init() {
	Cmd.Flags().IntVar(&root.Folds, "folds", 5, "Number of cross-validation folds")
	Cmd.Flags().Int64Var(&root.Seed, "seed", 42, "Random seed for fold assignment")
	Cmd.Flags().StringArrayVar(&ngramRanges, "ngram-range", nil, "Word n-gram range to sweep, as min:max (repeatable)")
	Cmd.Flags().IntSliceVar(&minDFs, "min-df", nil, "Minimum document frequencies to sweep")
	Cmd.Flags().IntSliceVar(&maxFeatures, "max-features", nil, "Vocabulary size limits to sweep, 0 for unlimited")
	Cmd.Flags().StringSliceVar(&classifiers, "classifiers", nil, "Classifier kinds to sweep")
}

// parseNgramRange parses a "min:max" flag value
func parseNgramRange(s string) ([2]int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return [2]int{}, fmt.Errorf("ngram range must look like min:max, got %q", s)
	}
	min, err := strconv.Atoi(parts[0])
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid ngram range %q: %w", s, err)
	}
	max, err := strconv.Atoi(parts[1])
	if err != nil {
		return [2]int{}, fmt.Errorf("invalid ngram range %q: %w", s, err)
	}
	return [2]int{min, max}, nil
}

func buildVariations() (experiment.Variations, error) {
	var variations experiment.Variations
	for _, s := range ngramRanges {
		r, err := parseNgramRange(s)
		if err != nil {
			return experiment.Variations{}, err
		}
		variations.NgramRanges = append(variations.NgramRanges, r)
	}
	variations.MinDFs = minDFs
	variations.MaxFeatures = maxFeatures
	for _, kind := range classifiers {
		variations.Classifiers = append(variations.Classifiers, classifier.Kind(kind))
	}
	return variations, nil
}

func crossvalFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Crossval command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input dataset file must be specified with --input")
	}

	ds, err := root.LoadDataset(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}
	root.Log.Infof("Loaded %d labeled products from %s", ds.Len(), root.SharedFlags.Input)

	variations, err := buildVariations()
	if err != nil {
		root.Log.Fatalf("Invalid variations: %v", err)
	}

	runner := &experiment.Runner{Folds: root.Folds, Seed: root.Seed}
	results, err := runner.Run(ds.Corpus(), ds.Labels(), variations)
	if err != nil {
		root.Log.Fatalf("Error running cross-validation: %v", err)
	}

	combinations := len(experiment.Combinations(variations))
	root.Log.Infof("Ran %d combinations over %d folds", combinations, root.Folds)

	if root.SharedFlags.Output != "" {
		if err := experiment.WriteResults(results, root.SharedFlags.Output); err != nil {
			root.Log.Fatalf("Error writing results: %v", err)
		}
		root.Log.Infof("Wrote %d fold results to %s", len(results), root.SharedFlags.Output)
		return
	}

	for _, result := range results {
		fmt.Printf("%s ngram=%d:%d min_df=%d max_features=%d fold=%d accuracy=%.4f macro_f1=%.4f\n",
			result.Classifier, result.NgramMin, result.NgramMax, result.MinDF,
			result.MaxFeatures, result.Fold, result.Accuracy, result.MacroF1)
	}
}
