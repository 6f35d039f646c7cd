package classifier

import (
	"math"

	"github.com/GHDaru/prodclass/internal/mlerror"
)

// smoothing is the Laplace/Lidstone additive constant applied to feature
// weights so unseen features never zero out a class likelihood.
const smoothing = 1.0

// multinomialNB is a multinomial naive Bayes classifier over non-negative
// feature weights. Weighted term frequencies work the same way raw counts
// do, so it accepts TF-IDF matrices directly.
type multinomialNB struct {
	logPrior  []float64   // per class
	logLike   [][]float64 // class x feature
	nFeatures int
	fitted    bool
}

// NewMultinomialNB returns an unfitted multinomial naive Bayes classifier.
func NewMultinomialNB() Classifier {
	return &multinomialNB{}
}

func (m *multinomialNB) Name() string {
	return string(MultinomialNB)
}

func (m *multinomialNB) Fit(X [][]float64, codes []int) error {
	classes, err := validateFit(X, codes)
	if err != nil {
		return err
	}

	nFeatures := 0
	if len(X) > 0 {
		nFeatures = len(X[0])
	}

	classCounts := make([]float64, classes)
	featureSums := make([][]float64, classes)
	for c := range featureSums {
		featureSums[c] = make([]float64, nFeatures)
	}
	for i, row := range X {
		c := codes[i]
		classCounts[c]++
		for f, v := range row {
			featureSums[c][f] += v
		}
	}

	logPrior := make([]float64, classes)
	logLike := make([][]float64, classes)
	total := float64(len(codes))
	for c := 0; c < classes; c++ {
		if classCounts[c] == 0 {
			logPrior[c] = math.Inf(-1)
		} else {
			logPrior[c] = math.Log(classCounts[c] / total)
		}
		classTotal := 0.0
		for _, v := range featureSums[c] {
			classTotal += v
		}
		denom := classTotal + smoothing*float64(nFeatures)
		logLike[c] = make([]float64, nFeatures)
		for f, v := range featureSums[c] {
			logLike[c][f] = math.Log((v + smoothing) / denom)
		}
	}

	// Replace the trained state only after every statistic is computed,
	// so a failed Fit never leaves a half-updated model.
	m.logPrior = logPrior
	m.logLike = logLike
	m.nFeatures = nFeatures
	m.fitted = true
	return nil
}

func (m *multinomialNB) Predict(X [][]float64) ([]int, error) {
	scores, err := m.jointLogLikelihood(X)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(scores))
	for i, row := range scores {
		out[i] = argmax(row)
	}
	return out, nil
}

// PredictProba returns row-stochastic per-class scores via a softmax over
// the joint log-likelihood.
func (m *multinomialNB) PredictProba(X [][]float64) ([][]float64, error) {
	scores, err := m.jointLogLikelihood(X)
	if err != nil {
		return nil, err
	}
	for _, row := range scores {
		max := row[argmax(row)]
		sum := 0.0
		for c, s := range row {
			row[c] = math.Exp(s - max)
			sum += row[c]
		}
		for c := range row {
			row[c] /= sum
		}
	}
	return scores, nil
}

func (m *multinomialNB) jointLogLikelihood(X [][]float64) ([][]float64, error) {
	if !m.fitted {
		return nil, &mlerror.NotFittedError{Subject: "multinomial-nb classifier"}
	}
	scores := make([][]float64, len(X))
	for i, row := range X {
		if len(row) != m.nFeatures {
			return nil, &mlerror.FeatureShapeMismatchError{Expected: m.nFeatures, Actual: len(row)}
		}
		rowScores := make([]float64, len(m.logPrior))
		for c := range rowScores {
			s := m.logPrior[c]
			for f, v := range row {
				if v != 0 {
					s += v * m.logLike[c][f]
				}
			}
			rowScores[c] = s
		}
		scores[i] = rowScores
	}
	return scores, nil
}

// argmax returns the index of the largest value, preferring the lowest
// index on ties so predictions are deterministic.
func argmax(values []float64) int {
	best := 0
	for i := 1; i < len(values); i++ {
		if values[i] > values[best] {
			best = i
		}
	}
	return best
}
