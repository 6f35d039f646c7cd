package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GHDaru/prodclass/internal/mlerror"
)

// Tiny linearly separable set: class 0 lives on the first two features,
// class 1 on the last two.
var (
	trainX = [][]float64{
		{2, 1, 0, 0},
		{1, 2, 0, 0},
		{0, 0, 2, 1},
		{0, 0, 1, 2},
	}
	trainY = []int{0, 0, 1, 1}
)

func TestNew_KnownKinds(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{kind: MultinomialNB, expected: "multinomial-nb"},
		{kind: NearestCentroid, expected: "nearest-centroid"},
		{kind: "", expected: "multinomial-nb"},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			c, err := New(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, c.Name())
		})
	}
}

func TestNew_UnknownKind(t *testing.T) {
	_, err := New("decision-forest")
	assert.Error(t, err)
}

func TestFit_DimensionMismatch(t *testing.T) {
	for _, kind := range []Kind{MultinomialNB, NearestCentroid} {
		t.Run(string(kind), func(t *testing.T) {
			c, err := New(kind)
			require.NoError(t, err)

			err = c.Fit(trainX, []int{0, 1})

			var mismatch *mlerror.DimensionMismatchError
			require.ErrorAs(t, err, &mismatch)
			assert.Equal(t, 4, mismatch.LeftLen)
			assert.Equal(t, 2, mismatch.RightLen)
		})
	}
}

func TestFit_InsufficientClasses(t *testing.T) {
	for _, kind := range []Kind{MultinomialNB, NearestCentroid} {
		t.Run(string(kind), func(t *testing.T) {
			c, err := New(kind)
			require.NoError(t, err)

			err = c.Fit([][]float64{{1, 0}}, []int{0})

			var insufficient *mlerror.InsufficientClassesError
			require.ErrorAs(t, err, &insufficient)
			assert.Equal(t, 1, insufficient.Distinct)
		})
	}
}

func TestPredict_BeforeFit(t *testing.T) {
	for _, kind := range []Kind{MultinomialNB, NearestCentroid} {
		t.Run(string(kind), func(t *testing.T) {
			c, err := New(kind)
			require.NoError(t, err)

			_, err = c.Predict([][]float64{{1, 0}})

			var notFitted *mlerror.NotFittedError
			assert.ErrorAs(t, err, &notFitted)
		})
	}
}

func TestPredict_SeparatesTrainingData(t *testing.T) {
	for _, kind := range []Kind{MultinomialNB, NearestCentroid} {
		t.Run(string(kind), func(t *testing.T) {
			c, err := New(kind)
			require.NoError(t, err)
			require.NoError(t, c.Fit(trainX, trainY))

			pred, err := c.Predict(trainX)
			require.NoError(t, err)
			assert.Equal(t, trainY, pred)
		})
	}
}

func TestPredict_ShapeMismatch(t *testing.T) {
	for _, kind := range []Kind{MultinomialNB, NearestCentroid} {
		t.Run(string(kind), func(t *testing.T) {
			c, err := New(kind)
			require.NoError(t, err)
			require.NoError(t, c.Fit(trainX, trainY))

			_, err = c.Predict([][]float64{{1, 0}})

			var shape *mlerror.FeatureShapeMismatchError
			require.ErrorAs(t, err, &shape)
			assert.Equal(t, 4, shape.Expected)
			assert.Equal(t, 2, shape.Actual)
		})
	}
}

func TestPredict_AllZeroRowIsDeterministic(t *testing.T) {
	for _, kind := range []Kind{MultinomialNB, NearestCentroid} {
		t.Run(string(kind), func(t *testing.T) {
			c, err := New(kind)
			require.NoError(t, err)
			require.NoError(t, c.Fit(trainX, trainY))

			zero := [][]float64{{0, 0, 0, 0}}
			first, err := c.Predict(zero)
			require.NoError(t, err)
			second, err := c.Predict(zero)
			require.NoError(t, err)

			assert.Equal(t, first, second)
			assert.GreaterOrEqual(t, first[0], 0)
			assert.Less(t, first[0], 2)
		})
	}
}

func TestPredict_Idempotent(t *testing.T) {
	c, err := New(MultinomialNB)
	require.NoError(t, err)
	require.NoError(t, c.Fit(trainX, trainY))

	input := [][]float64{{1, 1, 0, 0}, {0, 0.5, 2, 0}}
	first, err := c.Predict(input)
	require.NoError(t, err)
	second, err := c.Predict(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPredictProba_Capability(t *testing.T) {
	nb, err := New(MultinomialNB)
	require.NoError(t, err)
	_, ok := nb.(ProbabilityScorer)
	assert.True(t, ok, "multinomial NB should expose probability scores")

	centroid, err := New(NearestCentroid)
	require.NoError(t, err)
	_, ok = centroid.(ProbabilityScorer)
	assert.False(t, ok, "nearest centroid should not expose probability scores")
}

func TestPredictProba_RowStochastic(t *testing.T) {
	c, err := New(MultinomialNB)
	require.NoError(t, err)
	require.NoError(t, c.Fit(trainX, trainY))

	scorer := c.(ProbabilityScorer)
	proba, err := scorer.PredictProba(trainX)
	require.NoError(t, err)

	require.Len(t, proba, len(trainX))
	for i, row := range proba {
		require.Len(t, row, 2)
		sum := 0.0
		for _, p := range row {
			assert.GreaterOrEqual(t, p, 0.0)
			assert.LessOrEqual(t, p, 1.0)
			sum += p
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
		assert.Equal(t, trainY[i], argmax(row))
	}
}

func TestFit_ReplacesModelWholesale(t *testing.T) {
	c, err := New(MultinomialNB)
	require.NoError(t, err)
	require.NoError(t, c.Fit(trainX, trainY))

	// Refit with flipped labels; predictions must follow the new model.
	flipped := []int{1, 1, 0, 0}
	require.NoError(t, c.Fit(trainX, flipped))

	pred, err := c.Predict(trainX)
	require.NoError(t, err)
	assert.Equal(t, flipped, pred)
}
