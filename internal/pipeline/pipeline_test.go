package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GHDaru/prodclass/internal/classifier"
	"github.com/GHDaru/prodclass/internal/evaluate"
	"github.com/GHDaru/prodclass/internal/mlerror"
)

var (
	scenarioX = []string{"red shirt size M", "blue jeans", "red jeans"}
	scenarioY = []string{"shirt", "pants", "pants"}
)

func fittedPipeline(t *testing.T, opts ...Option) *ProductVectorizer {
	t.Helper()
	p := New(opts...)
	require.NoError(t, p.Fit(scenarioX, scenarioY))
	return p
}

func TestPredict_BeforeFit(t *testing.T) {
	p := New()

	_, err := p.Predict([]string{"red jeans"})

	var notFitted *mlerror.NotFittedError
	require.ErrorAs(t, err, &notFitted)
	assert.False(t, p.IsFitted())
}

func TestFit_EmptyCorpus(t *testing.T) {
	p := New()

	err := p.Fit(nil, nil)

	var empty *mlerror.EmptyCorpusError
	assert.ErrorAs(t, err, &empty)
}

func TestFit_LengthMismatch(t *testing.T) {
	p := New()

	err := p.Fit([]string{"red shirt", "blue jeans"}, []string{"shirt"})

	var mismatch *mlerror.DimensionMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, 2, mismatch.LeftLen)
	assert.Equal(t, 1, mismatch.RightLen)
}

func TestFit_SingleClass(t *testing.T) {
	p := New()

	err := p.Fit([]string{"a"}, []string{"only"})

	var insufficient *mlerror.InsufficientClassesError
	assert.ErrorAs(t, err, &insufficient)
	assert.False(t, p.IsFitted())
}

func TestScenario_RepeatedTrainingExample(t *testing.T) {
	for _, kind := range []classifier.Kind{classifier.MultinomialNB, classifier.NearestCentroid} {
		t.Run(string(kind), func(t *testing.T) {
			p := fittedPipeline(t, WithClassifier(kind))

			labels, err := p.PredictLabels([]string{"red jeans"})
			require.NoError(t, err)
			assert.Equal(t, []string{"pants"}, labels)
		})
	}
}

func TestScenario_EmptyTextStillPredicts(t *testing.T) {
	p := fittedPipeline(t)

	labels, err := p.PredictLabels([]string{""})
	require.NoError(t, err)
	require.Len(t, labels, 1)
	assert.Contains(t, []string{"shirt", "pants"}, labels[0])
}

func TestPredict_LengthPreserved(t *testing.T) {
	p := fittedPipeline(t)

	codes, err := p.Predict(scenarioX)
	require.NoError(t, err)
	assert.Len(t, codes, len(scenarioX))
}

func TestPredict_Idempotent(t *testing.T) {
	p := fittedPipeline(t)
	input := []string{"red jeans", "strange unseen thing", ""}

	first, err := p.Predict(input)
	require.NoError(t, err)
	second, err := p.Predict(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPredictLabels_MembersOfTrainingLabels(t *testing.T) {
	p := fittedPipeline(t)

	labels, err := p.PredictLabels([]string{"red", "jeans", "blue shirt", "???"})
	require.NoError(t, err)
	for _, label := range labels {
		assert.Contains(t, p.Labels(), label)
	}
}

func TestLabels_CodeOrder(t *testing.T) {
	p := fittedPipeline(t)
	assert.Equal(t, []string{"shirt", "pants"}, p.Labels())
}

func TestRefit_ReplacesAllState(t *testing.T) {
	p := fittedPipeline(t)

	newX := []string{"oak table", "pine chair", "oak chair", "glass table"}
	newY := []string{"tables", "chairs", "chairs", "tables"}
	require.NoError(t, p.Fit(newX, newY))

	assert.Equal(t, []string{"tables", "chairs"}, p.Labels())
	labels, err := p.PredictLabels([]string{"oak chair"})
	require.NoError(t, err)
	assert.Equal(t, []string{"chairs"}, labels)
}

func TestRefit_FailureKeepsPreviousBundle(t *testing.T) {
	p := fittedPipeline(t)

	// Single-class refit fails after vocabulary learning would normally
	// have happened; the original fitted state must survive untouched.
	err := p.Fit([]string{"oak table"}, []string{"tables"})
	var insufficient *mlerror.InsufficientClassesError
	require.ErrorAs(t, err, &insufficient)

	labels, err := p.PredictLabels([]string{"red jeans"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pants"}, labels)
	assert.Equal(t, []string{"shirt", "pants"}, p.Labels())
}

func TestPredictProba(t *testing.T) {
	p := fittedPipeline(t)

	proba, err := p.PredictProba([]string{"red jeans", ""})
	require.NoError(t, err)
	require.Len(t, proba, 2)
	for _, row := range proba {
		require.Len(t, row, 2)
		sum := 0.0
		for _, v := range row {
			sum += v
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}

func TestPredictProba_UnsupportedCapability(t *testing.T) {
	p := fittedPipeline(t, WithClassifier(classifier.NearestCentroid))

	_, err := p.PredictProba([]string{"red jeans"})

	assert.ErrorIs(t, err, mlerror.ErrProbaUnsupported)
}

func TestEvaluate(t *testing.T) {
	p := fittedPipeline(t)

	score, err := p.Evaluate(scenarioX, scenarioY, evaluate.MetricAccuracy)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, score, 1e-12)
}

func TestEvaluate_UnknownTruthLabel(t *testing.T) {
	p := fittedPipeline(t)

	_, err := p.Evaluate([]string{"red jeans"}, []string{"hat"}, evaluate.MetricAccuracy)

	var unknown *mlerror.UnknownLabelError
	assert.ErrorAs(t, err, &unknown)
}

func TestEvaluate_BeforeFit(t *testing.T) {
	p := New()

	_, err := p.Evaluate(scenarioX, scenarioY, evaluate.MetricAccuracy)

	var notFitted *mlerror.NotFittedError
	assert.ErrorAs(t, err, &notFitted)
}

func TestReport(t *testing.T) {
	p := fittedPipeline(t)

	report, err := p.Report(scenarioX, scenarioY)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, report.Accuracy, 1e-12)
	assert.Len(t, report.Classes, 2)
}

func TestOptions_NgramAndMinDF(t *testing.T) {
	p := New(WithNgramRange(1, 2), WithMinDF(1), WithMaxFeatures(100))
	require.NoError(t, p.Fit(scenarioX, scenarioY))

	labels, err := p.PredictLabels([]string{"red jeans"})
	require.NoError(t, err)
	assert.Equal(t, []string{"pants"}, labels)
}
