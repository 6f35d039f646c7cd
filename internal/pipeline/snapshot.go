package pipeline

import (
	"fmt"

	"github.com/GHDaru/prodclass/internal/classifier"
	"github.com/GHDaru/prodclass/internal/labelcodec"
	"github.com/GHDaru/prodclass/internal/mlerror"
	"github.com/GHDaru/prodclass/internal/vectorizer"
)

// Snapshot is the serializable form of a fitted pipeline: featurizer
// configuration, vocabulary, label mapping and trained classifier as one
// unit. Persistence callers must round-trip it whole; the parts are never
// valid in isolation.
type Snapshot struct {
	Featurizer vectorizer.Config      `yaml:"featurizer"`
	Vocabulary *vectorizer.Vocabulary `yaml:"vocabulary"`
	Mapping    *labelcodec.Mapping    `yaml:"labels"`
	Classifier *classifier.Snapshot   `yaml:"classifier"`
}

// Snapshot captures the fitted state. It fails with NotFittedError on an
// unfitted pipeline.
func (p *ProductVectorizer) Snapshot() (*Snapshot, error) {
	fitted := p.fitted
	if fitted == nil {
		return nil, &mlerror.NotFittedError{Subject: "pipeline"}
	}
	modelSnap, err := classifier.Export(fitted.model)
	if err != nil {
		return nil, err
	}
	return &Snapshot{
		Featurizer: p.cfg,
		Vocabulary: fitted.vocab,
		Mapping:    fitted.mapping,
		Classifier: modelSnap,
	}, nil
}

// FromSnapshot reconstructs a fitted pipeline. All three learned parts
// must be present; a partial snapshot is rejected before any state is
// built.
func FromSnapshot(s *Snapshot) (*ProductVectorizer, error) {
	if s.Vocabulary == nil || s.Mapping == nil || s.Classifier == nil {
		return nil, fmt.Errorf("pipeline snapshot is incomplete: vocabulary, labels and classifier must all be present")
	}
	model, err := classifier.Restore(s.Classifier)
	if err != nil {
		return nil, err
	}
	p := &ProductVectorizer{
		cfg:   s.Featurizer,
		kind:  classifier.Kind(s.Classifier.Kind),
		feats: vectorizer.New(s.Featurizer),
		fitted: &bundle{
			vocab:   s.Vocabulary,
			mapping: s.Mapping,
			model:   model,
		},
	}
	return p, nil
}
