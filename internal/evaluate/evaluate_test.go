package evaluate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GHDaru/prodclass/internal/mlerror"
)

func TestAccuracy(t *testing.T) {
	tests := []struct {
		name     string
		pred     []int
		truth    []int
		expected float64
	}{
		{name: "all correct", pred: []int{0, 1, 2}, truth: []int{0, 1, 2}, expected: 1.0},
		{name: "none correct", pred: []int{1, 2, 0}, truth: []int{0, 1, 2}, expected: 0.0},
		{name: "half correct", pred: []int{0, 1, 0, 1}, truth: []int{0, 1, 1, 0}, expected: 0.5},
		{name: "empty", pred: nil, truth: nil, expected: 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Accuracy(tt.pred, tt.truth)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, got, 1e-12)
		})
	}
}

func TestAccuracy_LengthMismatch(t *testing.T) {
	_, err := Accuracy([]int{0, 1}, []int{0})

	var mismatch *mlerror.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.LeftLen)
	assert.Equal(t, 1, mismatch.RightLen)
}

func TestClassification_PerClass(t *testing.T) {
	// truth:  0 0 1 1 1
	// pred:   0 1 1 1 0
	truth := []int{0, 0, 1, 1, 1}
	pred := []int{0, 1, 1, 1, 0}

	report, err := Classification(pred, truth)
	require.NoError(t, err)

	assert.InDelta(t, 3.0/5.0, report.Accuracy, 1e-12)
	require.Len(t, report.Classes, 2)

	class0 := report.Classes[0]
	assert.InDelta(t, 0.5, class0.Precision, 1e-12) // 1 tp, 1 fp
	assert.InDelta(t, 0.5, class0.Recall, 1e-12)    // 1 tp, 1 fn
	assert.Equal(t, 2, class0.Support)

	class1 := report.Classes[1]
	assert.InDelta(t, 2.0/3.0, class1.Precision, 1e-12)
	assert.InDelta(t, 2.0/3.0, class1.Recall, 1e-12)
	assert.Equal(t, 3, class1.Support)

	assert.InDelta(t, (0.5+2.0/3.0)/2, report.MacroF1, 1e-12)
}

func TestClassification_AbsentClassScoresZero(t *testing.T) {
	// Class 1 never predicted and never true beyond index bounds.
	report, err := Classification([]int{0, 0, 2}, []int{0, 2, 2})
	require.NoError(t, err)

	require.Len(t, report.Classes, 3)
	assert.Zero(t, report.Classes[1].Precision)
	assert.Zero(t, report.Classes[1].Recall)
	assert.Zero(t, report.Classes[1].F1)
	assert.Zero(t, report.Classes[1].Support)
}

func TestScore(t *testing.T) {
	pred := []int{0, 1, 1}
	truth := []int{0, 1, 0}

	acc, err := Score(MetricAccuracy, pred, truth)
	require.NoError(t, err)
	assert.InDelta(t, 2.0/3.0, acc, 1e-12)

	defaulted, err := Score("", pred, truth)
	require.NoError(t, err)
	assert.InDelta(t, acc, defaulted, 1e-12)

	f1, err := Score(MetricMacroF1, pred, truth)
	require.NoError(t, err)
	assert.Greater(t, f1, 0.0)

	_, err = Score("likelihood", pred, truth)
	assert.Error(t, err)
}
