package classifier

import (
	"math"

	"github.com/GHDaru/prodclass/internal/mlerror"
)

// nearestCentroid predicts the class whose mean training vector is most
// similar to the input under cosine similarity. It is the classic argmax
// benchmark for vectorized product descriptions: cheap, deterministic and
// surprisingly competitive on short text.
type nearestCentroid struct {
	centroids [][]float64 // class x feature
	norms     []float64   // cached centroid L2 norms
	nFeatures int
	fitted    bool
}

// NewNearestCentroid returns an unfitted nearest-centroid classifier.
func NewNearestCentroid() Classifier {
	return &nearestCentroid{}
}

func (n *nearestCentroid) Name() string {
	return string(NearestCentroid)
}

func (n *nearestCentroid) Fit(X [][]float64, codes []int) error {
	classes, err := validateFit(X, codes)
	if err != nil {
		return err
	}

	nFeatures := 0
	if len(X) > 0 {
		nFeatures = len(X[0])
	}

	centroids := make([][]float64, classes)
	for c := range centroids {
		centroids[c] = make([]float64, nFeatures)
	}
	counts := make([]float64, classes)
	for i, row := range X {
		c := codes[i]
		counts[c]++
		for f, v := range row {
			centroids[c][f] += v
		}
	}
	norms := make([]float64, classes)
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		sq := 0.0
		for f := range centroids[c] {
			centroids[c][f] /= counts[c]
			sq += centroids[c][f] * centroids[c][f]
		}
		norms[c] = math.Sqrt(sq)
	}

	n.centroids = centroids
	n.norms = norms
	n.nFeatures = nFeatures
	n.fitted = true
	return nil
}

func (n *nearestCentroid) Predict(X [][]float64) ([]int, error) {
	if !n.fitted {
		return nil, &mlerror.NotFittedError{Subject: "nearest-centroid classifier"}
	}
	out := make([]int, len(X))
	for i, row := range X {
		if len(row) != n.nFeatures {
			return nil, &mlerror.FeatureShapeMismatchError{Expected: n.nFeatures, Actual: len(row)}
		}
		similarities := make([]float64, len(n.centroids))
		rowNorm := 0.0
		for _, v := range row {
			rowNorm += v * v
		}
		rowNorm = math.Sqrt(rowNorm)
		for c, centroid := range n.centroids {
			if rowNorm == 0 || n.norms[c] == 0 {
				// An all-zero input or empty class yields similarity 0,
				// so the argmax falls back to the lowest class code.
				continue
			}
			dot := 0.0
			for f, v := range row {
				if v != 0 {
					dot += v * centroid[f]
				}
			}
			similarities[c] = dot / (rowNorm * n.norms[c])
		}
		out[i] = argmax(similarities)
	}
	return out, nil
}
