package experiment

import (
	"fmt"
	"os"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/google/uuid"

	"github.com/GHDaru/prodclass/internal/logging"
	"github.com/GHDaru/prodclass/internal/pipeline"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Result is one fold of one parameter combination. RunID groups the folds
// belonging to the same combination.
type Result struct {
	RunID       string  `csv:"run_id"`
	Classifier  string  `csv:"classifier"`
	NgramMin    int     `csv:"ngram_min"`
	NgramMax    int     `csv:"ngram_max"`
	MinDF       int     `csv:"min_df"`
	MaxFeatures int     `csv:"max_features"`
	Fold        int     `csv:"fold"`
	TrainSize   int     `csv:"train_size"`
	TestSize    int     `csv:"test_size"`
	Accuracy    float64 `csv:"accuracy"`
	MacroF1     float64 `csv:"macro_f1"`
	DurationMS  int64   `csv:"duration_ms"`
}

// Runner cross-validates every parameter combination over the same seeded
// folds, so combinations stay comparable.
type Runner struct {
	Folds int
	Seed  int64
}

// Run sweeps all combinations of the given variations. Folds where the
// test split contains a category absent from the train split abort the
// sweep; with realistic datasets and fold counts this signals a label
// far too rare to cross-validate.
func (r *Runner) Run(corpus, labels []string, variations Variations) ([]Result, error) {
	if len(corpus) != len(labels) {
		return nil, fmt.Errorf("corpus has %d entries but labels has %d", len(corpus), len(labels))
	}
	folds, err := KFold(len(corpus), r.Folds, r.Seed)
	if err != nil {
		return nil, err
	}

	var results []Result
	for _, params := range Combinations(variations) {
		runID := uuid.NewString()
		runLog := log.WithFields(
			logging.Field{Key: logging.FieldRunID, Value: runID},
			logging.Field{Key: logging.FieldClassifier, Value: string(params.Classifier)},
		)
		for foldIdx, fold := range folds {
			start := time.Now()
			p := pipeline.New(params.Options()...)
			if err := p.Fit(Select(corpus, fold.Train), Select(labels, fold.Train)); err != nil {
				return nil, fmt.Errorf("run %s fold %d: %w", runID, foldIdx, err)
			}
			report, err := p.Report(Select(corpus, fold.Test), Select(labels, fold.Test))
			if err != nil {
				return nil, fmt.Errorf("run %s fold %d: %w", runID, foldIdx, err)
			}
			elapsed := time.Since(start)
			results = append(results, Result{
				RunID:       runID,
				Classifier:  string(params.Classifier),
				NgramMin:    params.NgramMin,
				NgramMax:    params.NgramMax,
				MinDF:       params.MinDF,
				MaxFeatures: params.MaxFeatures,
				Fold:        foldIdx,
				TrainSize:   len(fold.Train),
				TestSize:    len(fold.Test),
				Accuracy:    report.Accuracy,
				MacroF1:     report.MacroF1,
				DurationMS:  elapsed.Milliseconds(),
			})
			runLog.WithFields(
				logging.Field{Key: logging.FieldFold, Value: foldIdx},
				logging.Field{Key: logging.FieldScore, Value: report.Accuracy},
				logging.Field{Key: logging.FieldDuration, Value: elapsed.Milliseconds()},
			).Debug("Fold evaluated")
		}
	}
	return results, nil
}

// WriteResults writes sweep results to a CSV file.
func WriteResults(results []Result, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating results file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close results file")
		}
	}()

	if err := gocsv.MarshalFile(&results, file); err != nil {
		return fmt.Errorf("error writing results file: %w", err)
	}
	log.WithFields(
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(results)},
	).Info("Sweep results written")
	return nil
}
