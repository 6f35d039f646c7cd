// Package evaluate handles model evaluation commands
package evaluate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/GHDaru/prodclass/cmd/root"
	"github.com/GHDaru/prodclass/internal/store"
)

// Cmd represents the evaluate command
var Cmd = &cobra.Command{
	Use:   "evaluate",
	Short: "Evaluate a trained model against a labeled dataset",
	Long: `Evaluate a trained model against a labeled dataset and print the
accuracy and per-category precision, recall and F1.

Example:
  prodclass evaluate -i holdout.csv -m model.yaml`,
	Run: evaluateFunc,
}

func evaluateFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Evaluate command called")

	if root.SharedFlags.Input == "" {
		root.Log.Fatal("Input dataset file must be specified with --input")
	}

	p, err := store.LoadModel(root.SharedFlags.Model)
	if err != nil {
		root.Log.Fatalf("Error loading model: %v", err)
	}

	ds, err := root.LoadDataset(root.SharedFlags.Input)
	if err != nil {
		root.Log.Fatalf("Error loading dataset: %v", err)
	}

	report, err := p.Report(ds.Corpus(), ds.Labels())
	if err != nil {
		root.Log.Fatalf("Error evaluating model: %v", err)
	}

	labels := p.Labels()
	fmt.Printf("Accuracy: %.4f on %d products\n\n", report.Accuracy, ds.Len())
	fmt.Printf("%-30s %9s %9s %9s %9s\n", "category", "precision", "recall", "f1", "support")
	for _, class := range report.Classes {
		fmt.Printf("%-30s %9.4f %9.4f %9.4f %9d\n",
			labels[class.Class], class.Precision, class.Recall, class.F1, class.Support)
	}
	fmt.Printf("\n%-30s %9.4f %9.4f %9.4f\n", "macro average",
		report.MacroPrecision, report.MacroRecall, report.MacroF1)
}
