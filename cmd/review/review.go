// Package review handles low-confidence prediction review commands
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/GHDaru/prodclass/cmd/root"
	"github.com/GHDaru/prodclass/internal/assist"
	"github.com/GHDaru/prodclass/internal/config"
	"github.com/GHDaru/prodclass/internal/store"
)

// Cmd represents the review command
var Cmd = &cobra.Command{
	Use:   "review [description...]",
	Short: "Review low-confidence predictions with Gemini suggestions",
	Long: `Predict categories for product descriptions and ask the Gemini model
to suggest a category for every prediction whose confidence falls below
the threshold. Requires GEMINI_API_KEY to be set.

Example:
  prodclass review -m model.yaml -i products.csv --threshold 0.8`,
	Run: reviewFunc,
}

func init() {
	Cmd.Flags().Float64VarP(&root.Threshold, "threshold", "t", 0.8, "Confidence threshold below which predictions are reviewed")
}

func reviewFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Review command called")

	cfg, err := config.InitializeConfig()
	if err != nil {
		root.Log.Fatalf("Error loading configuration: %v", err)
	}
	if cfg.AI.APIKey == "" {
		root.Log.Fatal("GEMINI_API_KEY must be set to review predictions")
	}

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
		root.Log.Fatal("No descriptions to review: pass them as arguments or use --input")
	}

	ctx, cancel := context.WithTimeout(context.Background(),
		time.Duration(cfg.AI.TimeoutSeconds)*time.Second*time.Duration(len(corpus)))
	defer cancel()

	suggester, err := assist.NewGeminiSuggester(ctx, cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		root.Log.Fatalf("Error creating Gemini client: %v", err)
	}
	defer func() {
		if cerr := suggester.Close(); cerr != nil {
			root.Log.Warnf("Failed to close Gemini client: %v", cerr)
		}
	}()

	reviews, err := assist.ReviewLowConfidence(ctx, p, corpus, root.Threshold, suggester)
	if err != nil {
		root.Log.Fatalf("Error reviewing predictions: %v", err)
	}

	if len(reviews) == 0 {
		root.Log.Infof("All %d predictions at or above threshold %.2f", len(corpus), root.Threshold)
		return
	}

	root.Log.Infof("%d of %d predictions below threshold %.2f", len(reviews), len(corpus), root.Threshold)
	for _, review := range reviews {
		fmt.Printf("%s\n  predicted: %s (%.3f)\n  suggested: %s\n", review.Description,
			review.Predicted, review.Confidence, review.Suggested)
		if review.Reason != "" {
			fmt.Printf("  reason: %s\n", review.Reason)
		}
	}
}
