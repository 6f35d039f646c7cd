// Package classifier wraps trainable classification algorithms behind a
// uniform batch fit/predict contract, so the pipeline never depends on a
// specific algorithm choice.
package classifier

import (
	"fmt"

	"github.com/GHDaru/prodclass/internal/mlerror"
)

// Classifier is the uniform contract over any batch-trainable
// classification algorithm. Fit replaces the trained state wholesale;
// there is no incremental update.
type Classifier interface {
	// Fit trains on a feature matrix and index-aligned class codes.
	// It fails with DimensionMismatchError when lengths differ and with
	// InsufficientClassesError when fewer than two distinct codes are
	// present. A failed Fit leaves any previously trained state intact.
	Fit(X [][]float64, codes []int) error

	// Predict returns one class code per input row. It fails with
	// NotFittedError before a successful Fit and with
	// FeatureShapeMismatchError when the matrix width differs from the
	// width seen at fit time.
	Predict(X [][]float64) ([]int, error)

	// Name identifies the algorithm for logging and persistence.
	Name() string
}

// ProbabilityScorer is the optional capability of producing row-stochastic
// per-class confidence scores. Callers discover it by type assertion;
// its absence is a missing capability, not a runtime failure.
type ProbabilityScorer interface {
	PredictProba(X [][]float64) ([][]float64, error)
}

// Kind selects an underlying algorithm.
type Kind string

const (
	// MultinomialNB is a multinomial naive Bayes classifier with Laplace
	// smoothing, the default for bag-of-words text features. It supports
	// probability scores.
	MultinomialNB Kind = "multinomial-nb"

	// NearestCentroid assigns the class whose mean training vector has
	// the highest cosine similarity to the input. It does not produce
	// probabilities.
	NearestCentroid Kind = "nearest-centroid"
)

// New returns a fresh, unfitted classifier of the given kind. It acts as
// a factory so callers can select the algorithm from configuration.
func New(kind Kind) (Classifier, error) {
	switch kind {
	case MultinomialNB, "":
		return NewMultinomialNB(), nil
	case NearestCentroid:
		return NewNearestCentroid(), nil
	default:
		return nil, fmt.Errorf("unknown classifier kind: %s", kind)
	}
}

// validate checks the shared Fit preconditions and returns the number of
// distinct classes.
func validateFit(X [][]float64, codes []int) (classes int, err error) {
	if len(X) != len(codes) {
		return 0, &mlerror.DimensionMismatchError{
			Operation: "Fit",
			Left:      "matrix rows",
			Right:     "codes",
			LeftLen:   len(X),
			RightLen:  len(codes),
		}
	}
	distinct := make(map[int]struct{})
	max := -1
	for _, code := range codes {
		distinct[code] = struct{}{}
		if code > max {
			max = code
		}
	}
	if len(distinct) < 2 {
		return 0, &mlerror.InsufficientClassesError{Distinct: len(distinct)}
	}
	// Codes are dense in [0, K), so the class count is max+1 even when a
	// training shard happens to skip a middle code.
	return max + 1, nil
}
