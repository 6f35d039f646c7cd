// Package predict handles category prediction commands
package predict

import (
	"fmt"
	"os"
	"strconv"

	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/GHDaru/prodclass/cmd/root"
	"github.com/GHDaru/prodclass/internal/store"
)

// Cmd represents the predict command
var Cmd = &cobra.Command{
	Use:   "predict [description...]",
	Short: "Predict categories for product descriptions",
	Long: `Predict categories for product descriptions using a trained model.

Descriptions are taken from the command line, or from a dataset CSV when
--input is given. With --output the predictions are written as CSV.

Example:
  prodclass predict -m model.yaml "red shirt size M" "blue jeans"`,
	Run: predictFunc,
}

type predictionRow struct {
	Description string `csv:"description"`
	Category    string `csv:"category"`
}

var codesOut bool

func init() {
	Cmd.Flags().BoolVar(&codesOut, "codes", false, "Output numeric category codes instead of names")
}

func predictFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Predict command called")

	p, err := store.LoadModel(root.SharedFlags.Model)
	if err != nil {
		root.Log.Fatalf("Error loading model: %v", err)
	}

	corpus := args
	if root.SharedFlags.Input != "" {
		ds, err := root.LoadDataset(root.SharedFlags.Input)
		if err != nil {
			root.Log.Fatalf("Error loading dataset: %v", err)
		}
		corpus = ds.Corpus()
	}
	if len(corpus) == 0 {
		root.Log.Fatal("No descriptions to predict: pass them as arguments or use --input")
	}

	var predicted []string
	if codesOut {
		codes, err := p.Predict(corpus)
		if err != nil {
			root.Log.Fatalf("Error predicting: %v", err)
		}
		predicted = make([]string, len(codes))
		for i, code := range codes {
			predicted[i] = strconv.Itoa(code)
		}
	} else {
		var err error
		predicted, err = p.PredictLabels(corpus)
		if err != nil {
			root.Log.Fatalf("Error predicting: %v", err)
		}
	}

	if root.SharedFlags.Output != "" {
		rows := make([]predictionRow, len(corpus))
		for i := range corpus {
			rows[i] = predictionRow{Description: corpus[i], Category: predicted[i]}
		}
		file, err := os.Create(root.SharedFlags.Output)
		if err != nil {
			root.Log.Fatalf("Error creating output file: %v", err)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil {
				root.Log.Warnf("Failed to close output file: %v", cerr)
			}
		}()
		if err := gocsv.MarshalFile(&rows, file); err != nil {
			root.Log.Fatalf("Error writing predictions: %v", err)
		}
		root.Log.Infof("Wrote %d predictions to %s", len(rows), root.SharedFlags.Output)
		return
	}

	for i := range corpus {
		fmt.Printf("%s\t%s\n", corpus[i], predicted[i])
	}
}
