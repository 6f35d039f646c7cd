package classifier

import (
	"fmt"

	"github.com/GHDaru/prodclass/internal/mlerror"
)

// Snapshot is the serializable trained state of a classifier. Exactly the
// fields for the snapshot's Kind are populated; persistence callers treat
// it as opaque.
type Snapshot struct {
	Kind      string      `yaml:"kind"`
	NFeatures int         `yaml:"n_features"`
	LogPrior  []float64   `yaml:"log_prior,omitempty"`
	LogLike   [][]float64 `yaml:"log_likelihood,omitempty"`
	Centroids [][]float64 `yaml:"centroids,omitempty"`
	Norms     []float64   `yaml:"norms,omitempty"`
}

// Export captures the trained state of a fitted classifier.
func Export(c Classifier) (*Snapshot, error) {
	switch m := c.(type) {
	case *multinomialNB:
		if !m.fitted {
			return nil, &mlerror.NotFittedError{Subject: "multinomial-nb classifier"}
		}
		return &Snapshot{
			Kind:      m.Name(),
			NFeatures: m.nFeatures,
			LogPrior:  m.logPrior,
			LogLike:   m.logLike,
		}, nil
	case *nearestCentroid:
		if !m.fitted {
			return nil, &mlerror.NotFittedError{Subject: "nearest-centroid classifier"}
		}
		return &Snapshot{
			Kind:      m.Name(),
			NFeatures: m.nFeatures,
			Centroids: m.centroids,
			Norms:     m.norms,
		}, nil
	default:
		return nil, fmt.Errorf("classifier %s does not support snapshots", c.Name())
	}
}

// Restore rebuilds a fitted classifier from a snapshot.
func Restore(s *Snapshot) (Classifier, error) {
	switch Kind(s.Kind) {
	case MultinomialNB:
		if len(s.LogPrior) == 0 || len(s.LogLike) == 0 {
			return nil, fmt.Errorf("multinomial-nb snapshot is missing trained state")
		}
		return &multinomialNB{
			logPrior:  s.LogPrior,
			logLike:   s.LogLike,
			nFeatures: s.NFeatures,
			fitted:    true,
		}, nil
	case NearestCentroid:
		if len(s.Centroids) == 0 {
			return nil, fmt.Errorf("nearest-centroid snapshot is missing trained state")
		}
		return &nearestCentroid{
			centroids: s.Centroids,
			norms:     s.Norms,
			nFeatures: s.NFeatures,
			fitted:    true,
		}, nil
	default:
		return nil, fmt.Errorf("unknown classifier kind in snapshot: %s", s.Kind)
	}
}
