package mlerror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{
			name:     "empty corpus",
			err:      &EmptyCorpusError{Operation: "LearnVocabulary"},
			expected: "LearnVocabulary: corpus is empty, at least one document is required",
		},
		{
			name:     "empty label set",
			err:      &EmptyLabelSetError{Operation: "Learn"},
			expected: "Learn: label set is empty, at least one label is required",
		},
		{
			name: "dimension mismatch",
			err: &DimensionMismatchError{
				Operation: "Fit",
				Left:      "corpus",
				Right:     "labels",
				LeftLen:   3,
				RightLen:  2,
			},
			expected: "Fit: corpus has 3 entries but labels has 2, they must be index-aligned",
		},
		{
			name:     "insufficient classes",
			err:      &InsufficientClassesError{Distinct: 1},
			expected: "training requires at least 2 distinct classes, got 1",
		},
		{
			name:     "unknown label",
			err:      &UnknownLabelError{Label: "garden", Known: 4},
			expected: `label "garden" was not seen during learning (4 labels known)`,
		},
		{
			name:     "unknown code",
			err:      &UnknownCodeError{Code: 7, Range: 4},
			expected: "class code 7 is outside the learned range [0, 4)",
		},
		{
			name:     "feature shape mismatch",
			err:      &FeatureShapeMismatchError{Expected: 120, Actual: 80},
			expected: "feature matrix has 80 columns but the model was fitted with 120",
		},
		{
			name:     "not fitted",
			err:      &NotFittedError{Subject: "pipeline"},
			expected: "pipeline is not fitted: call Fit before predicting",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestErrProbaUnsupported(t *testing.T) {
	wrapped := fmt.Errorf("predict proba: %w", ErrProbaUnsupported)
	assert.True(t, errors.Is(wrapped, ErrProbaUnsupported))
}
