// Package train handles model training commands
package train

import (
	"github.com/spf13/cobra"

	"github.com/GHDaru/prodclass/cmd/root"
	"github.com/GHDaru/prodclass/internal/classifier"
	"github.com/GHDaru/prodclass/internal/evaluate"
	"github.com/GHDaru/prodclass/internal/pipeline"
	"github.com/GHDaru/prodclass/internal/store"
)

// Cmd represents the train command
var Cmd = &cobra.Command{
	Use:   "train",
	Short: "Train a classifier on a labeled dataset",
	Long: `Train a TF-IDF classifier on a labeled product dataset and save the
fitted model to a file.

Example:
  prodclass train -i products.csv -m model.yaml --classifier multinomial-nb`,
	Run: trainFunc,
}

func init() {
	Cmd.Flags().IntVar(&root.NgramMin, "ngram-min", 1, "Minimum word n-gram length")
	Cmd.Flags().IntVar(&root.NgramMax, "ngram-max", 1, "Maximum word n-gram length")
	Cmd.Flags().IntVar(&root.MinDF, "min-df", 1, "Minimum document frequency for vocabulary terms")
	Cmd.Flags().IntVar(&root.MaxFeatures, "max-features", 0, "Maximum vocabulary size, 0 for unlimited")
	Cmd.Flags().StringVarP(&root.Classifier, "classifier", "c", "multinomial-nb", "Classifier kind (multinomial-nb or nearest-centroid)")
}

func trainFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Train command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input dataset file must be specified with --input")
	}

	ds, err := root.LoadDataset(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}
	root.Log.Infof("Loaded %d labeled products from %s", ds.Len(), root.SharedFlags.Input)

	p := pipeline.New(
		pipeline.WithNgramRange(root.NgramMin, root.NgramMax),
		pipeline.WithMinDF(root.MinDF),
		pipeline.WithMaxFeatures(root.MaxFeatures),
		pipeline.WithClassifier(classifier.Kind(root.Classifier)),
	)

	corpus, labels := ds.Corpus(), ds.Labels()
	if err := p.Fit(corpus, labels); err != nil {
		root.Log.Fatalf("Error training model: %v", err)
	}

	accuracy, err := p.Evaluate(corpus, labels, evaluate.MetricAccuracy)
	if err != nil {
		root.Log.Fatalf("Error scoring training set: %v", err)
	}
	root.Log.Infof("Training accuracy: %.4f over %d categories", accuracy, len(p.Labels()))

	if err := store.SaveModel(p, root.SharedFlags.Model); err != nil {
		root.Log.Fatalf("Error saving model: %v", err)
	}
	root.Log.Infof("Model saved to %s", root.SharedFlags.Model)
}
