// Package experiment runs repeatable cross-validated parameter sweeps
// over the classification pipeline and records their results.
package experiment

import (
	"fmt"
	"math/rand"
)

// Fold is one train/test partition of row indices.
type Fold struct {
	Train []int
	Test  []int
}

// KFold shuffles [0, n) with the given seed and partitions it into k
// folds. Every index appears in exactly one test set. The same n, k and
// seed always produce the same folds.
func KFold(n, k int, seed int64) ([]Fold, error) {
	if k < 2 {
		return nil, fmt.Errorf("k-fold requires at least 2 folds, got %d", k)
	}
	if k > n {
		return nil, fmt.Errorf("cannot split %d rows into %d folds", n, k)
	}

	indices := rand.New(rand.NewSource(seed)).Perm(n)
	buckets := make([][]int, k)
	for i, idx := range indices {
		buckets[i%k] = append(buckets[i%k], idx)
	}

	folds := make([]Fold, k)
	for f := range folds {
		folds[f].Test = buckets[f]
		for other, bucket := range buckets {
			if other != f {
				folds[f].Train = append(folds[f].Train, bucket...)
			}
		}
	}
	return folds, nil
}

// Select projects the given rows of a string slice, preserving order.
func Select(values []string, indices []int) []string {
	out := make([]string, len(indices))
	for i, idx := range indices {
		out[i] = values[idx]
	}
	return out
}
