// Package pipeline composes the featurizer, label codec and classifier
// into the single fit/predict/evaluate surface callers interact with.
//
// A pipeline moves from unfitted to fitted exactly once and never back.
// All learned state lives in one immutable bundle value that is swapped in
// only when a fit fully succeeds, so a mid-fit failure can never leave the
// vocabulary, label mapping and trained model out of step with each other.
package pipeline

import (
	"time"

	"github.com/GHDaru/prodclass/internal/classifier"
	"github.com/GHDaru/prodclass/internal/evaluate"
	"github.com/GHDaru/prodclass/internal/labelcodec"
	"github.com/GHDaru/prodclass/internal/logging"
	"github.com/GHDaru/prodclass/internal/mlerror"
	"github.com/GHDaru/prodclass/internal/vectorizer"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// bundle is the complete fitted state. It is built in full before being
// attached to the pipeline and never mutated afterwards, which also makes
// concurrent Predict calls safe as long as no Fit is in flight.
type bundle struct {
	vocab   *vectorizer.Vocabulary
	mapping *labelcodec.Mapping
	model   classifier.Classifier
}

// ProductVectorizer turns product descriptions into category predictions.
// A single instance must not be fitted concurrently; independent training
// needs independent instances.
type ProductVectorizer struct {
	cfg    vectorizer.Config
	kind   classifier.Kind
	feats  *vectorizer.Featurizer
	fitted *bundle
}

// Option configures a ProductVectorizer at construction time.
type Option func(*ProductVectorizer)

// WithNgramRange sets the word n-gram span bounds.
func WithNgramRange(min, max int) Option {
	return func(p *ProductVectorizer) {
		p.cfg.NgramMin = min
		p.cfg.NgramMax = max
	}
}

// WithMinDF sets the minimum document frequency for vocabulary terms.
func WithMinDF(minDF int) Option {
	return func(p *ProductVectorizer) {
		p.cfg.MinDF = minDF
	}
}

// WithMaxFeatures caps the vocabulary size.
func WithMaxFeatures(max int) Option {
	return func(p *ProductVectorizer) {
		p.cfg.MaxFeatures = max
	}
}

// WithClassifier selects the underlying algorithm.
func WithClassifier(kind classifier.Kind) Option {
	return func(p *ProductVectorizer) {
		p.kind = kind
	}
}

// New creates an unfitted pipeline.
func New(opts ...Option) *ProductVectorizer {
	p := &ProductVectorizer{kind: classifier.MultinomialNB}
	for _, opt := range opts {
		opt(p)
	}
	p.feats = vectorizer.New(p.cfg)
	return p
}

// IsFitted reports whether Fit has succeeded at least once.
func (p *ProductVectorizer) IsFitted() bool {
	return p.fitted != nil
}

// Labels returns the category names learned by the most recent Fit, in
// code order, or nil when unfitted.
func (p *ProductVectorizer) Labels() []string {
	if p.fitted == nil {
		return nil
	}
	out := make([]string, len(p.fitted.mapping.Labels))
	copy(out, p.fitted.mapping.Labels)
	return out
}

// Fit learns the vocabulary, label mapping and classifier from the given
// corpus and index-aligned labels. On any failure the previous fitted
// state, if present, stays fully intact.
func (p *ProductVectorizer) Fit(corpus, labels []string) error {
	start := time.Now()
	if len(corpus) == 0 {
		return &mlerror.EmptyCorpusError{Operation: "Fit"}
	}
	if len(corpus) != len(labels) {
		return &mlerror.DimensionMismatchError{
			Operation: "Fit",
			Left:      "corpus",
			Right:     "labels",
			LeftLen:   len(corpus),
			RightLen:  len(labels),
		}
	}

	vocab, err := p.feats.LearnVocabulary(corpus)
	if err != nil {
		return err
	}
	mapping, err := labelcodec.Learn(labels)
	if err != nil {
		return err
	}
	codes, err := labelcodec.Encode(labels, mapping)
	if err != nil {
		return err
	}
	matrix, err := p.feats.Transform(corpus, vocab)
	if err != nil {
		return err
	}

	model, err := classifier.New(p.kind)
	if err != nil {
		return err
	}
	if err := model.Fit(matrix, codes); err != nil {
		return err
	}

	p.fitted = &bundle{vocab: vocab, mapping: mapping, model: model}

	log.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "fit"},
		logging.Field{Key: logging.FieldClassifier, Value: model.Name()},
		logging.Field{Key: logging.FieldDocuments, Value: len(corpus)},
		logging.Field{Key: logging.FieldVocabSize, Value: vocab.Size()},
		logging.Field{Key: logging.FieldClasses, Value: mapping.Size()},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()},
	).Debug("Pipeline fitted")
	return nil
}

// Predict returns one class code per input description. Descriptions with
// no recognized tokens are still classified, from an all-zero feature row.
func (p *ProductVectorizer) Predict(corpus []string) ([]int, error) {
	fitted := p.fitted
	if fitted == nil {
		return nil, &mlerror.NotFittedError{Subject: "pipeline"}
	}
	matrix, err := p.feats.Transform(corpus, fitted.vocab)
	if err != nil {
		return nil, err
	}
	return fitted.model.Predict(matrix)
}

// PredictLabels predicts and decodes the codes back to category names.
func (p *ProductVectorizer) PredictLabels(corpus []string) ([]string, error) {
	fitted := p.fitted
	if fitted == nil {
		return nil, &mlerror.NotFittedError{Subject: "pipeline"}
	}
	codes, err := p.Predict(corpus)
	if err != nil {
		return nil, err
	}
	return labelcodec.Decode(codes, fitted.mapping)
}

// PredictProba returns row-stochastic per-class confidence scores, or
// ErrProbaUnsupported when the configured classifier lacks the capability.
func (p *ProductVectorizer) PredictProba(corpus []string) ([][]float64, error) {
	fitted := p.fitted
	if fitted == nil {
		return nil, &mlerror.NotFittedError{Subject: "pipeline"}
	}
	scorer, ok := fitted.model.(classifier.ProbabilityScorer)
	if !ok {
		return nil, mlerror.ErrProbaUnsupported
	}
	matrix, err := p.feats.Transform(corpus, fitted.vocab)
	if err != nil {
		return nil, err
	}
	return scorer.PredictProba(matrix)
}

// Evaluate predicts on the corpus and scores the named metric against the
// true labels. Truth labels must all belong to the learned label set.
func (p *ProductVectorizer) Evaluate(corpus, truth []string, metric string) (float64, error) {
	fitted := p.fitted
	if fitted == nil {
		return 0, &mlerror.NotFittedError{Subject: "pipeline"}
	}
	pred, err := p.Predict(corpus)
	if err != nil {
		return 0, err
	}
	trueCodes, err := labelcodec.Encode(truth, fitted.mapping)
	if err != nil {
		return 0, err
	}
	score, err := evaluate.Score(metric, pred, trueCodes)
	if err != nil {
		return 0, err
	}
	log.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "evaluate"},
		logging.Field{Key: logging.FieldMetric, Value: metric},
		logging.Field{Key: logging.FieldScore, Value: score},
		logging.Field{Key: logging.FieldDocuments, Value: len(corpus)},
	).Debug("Pipeline evaluated")
	return score, nil
}

// Report predicts on the corpus and returns the full per-class report.
func (p *ProductVectorizer) Report(corpus, truth []string) (*evaluate.Report, error) {
	fitted := p.fitted
	if fitted == nil {
		return nil, &mlerror.NotFittedError{Subject: "pipeline"}
	}
	pred, err := p.Predict(corpus)
	if err != nil {
		return nil, err
	}
	trueCodes, err := labelcodec.Encode(truth, fitted.mapping)
	if err != nil {
		return nil, err
	}
	return evaluate.Classification(pred, trueCodes)
}
