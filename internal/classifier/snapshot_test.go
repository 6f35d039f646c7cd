package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/GHDaru/prodclass/internal/mlerror"
)

func TestExportRestore_RoundTripPredictions(t *testing.T) {
	for _, kind := range []Kind{MultinomialNB, NearestCentroid} {
		t.Run(string(kind), func(t *testing.T) {
			original, err := New(kind)
			require.NoError(t, err)
			require.NoError(t, original.Fit(trainX, trainY))

			snapshot, err := Export(original)
			require.NoError(t, err)
			assert.Equal(t, string(kind), snapshot.Kind)

			restored, err := Restore(snapshot)
			require.NoError(t, err)

			want, err := original.Predict(trainX)
			require.NoError(t, err)
			got, err := restored.Predict(trainX)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestExport_Unfitted(t *testing.T) {
	c, err := New(MultinomialNB)
	require.NoError(t, err)

	_, err = Export(c)

	var notFitted *mlerror.NotFittedError
	assert.ErrorAs(t, err, &notFitted)
}

func TestRestore_UnknownKind(t *testing.T) {
	_, err := Restore(&Snapshot{Kind: "decision-forest"})
	assert.Error(t, err)
}

func TestRestore_MissingState(t *testing.T) {
	_, err := Restore(&Snapshot{Kind: string(MultinomialNB)})
	assert.Error(t, err)
}
