// Package root contains the root command for the application
package root

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/GHDaru/prodclass/internal/assist"
	"github.com/GHDaru/prodclass/internal/config"
	"github.com/GHDaru/prodclass/internal/dataset"
	"github.com/GHDaru/prodclass/internal/experiment"
	"github.com/GHDaru/prodclass/internal/logging"
	"github.com/GHDaru/prodclass/internal/pipeline"
	"github.com/GHDaru/prodclass/internal/store"
	"github.com/GHDaru/prodclass/internal/vectorizer"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
	Model  string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "prodclass",
		Short: "A CLI tool to train and run product description classifiers.",
		Long: `prodclass is a CLI tool that learns TF-IDF text models from labeled
product descriptions and uses them to predict product categories.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to prodclass!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Initialize and configure logging
			config.LoadEnv()
			Log = config.ConfigureLogging()

			// Set the configured logger for all packages
			logger := GetLogrusAdapter()
			vectorizer.SetLogger(logger)
			pipeline.SetLogger(logger)
			dataset.SetLogger(logger)
			store.SetLogger(logger)
			experiment.SetLogger(logger)
			assist.SetLogger(logger)
		},
	}

	// Common flags accessible to all commands
	SharedFlags = CommonFlags{}

	// Specific train command flags
	NgramMin    int
	NgramMax    int
	MinDF       int
	MaxFeatures int
	Classifier  string

	// Specific crossval command flags
	Folds int
	Seed  int64

	// Specific review command flags
	Threshold float64
)

// GetLogrusAdapter wraps the shared logger in the logging abstraction
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}

// LoadDataset loads a labeled dataset CSV using the configured loading options
func LoadDataset(path string) (*dataset.Dataset, error) {
	cfg, err := config.InitializeConfig()
	if err != nil {
		return nil, err
	}
	opts := dataset.Options{
		Delimiter:    []rune(cfg.Dataset.Delimiter)[0],
		StripHTML:    cfg.Dataset.StripHTML,
		DropCategory: cfg.Dataset.DropCategory,
	}
	return dataset.LoadCSV(path, opts)
}

// Init initializes the root command and all flags
func Init() {
	// Add persistent flags to root command for common options
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input dataset CSV file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Model, "model", "m", "model.yaml", "Model file")
}
