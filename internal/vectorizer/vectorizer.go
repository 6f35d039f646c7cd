// Package vectorizer converts raw product descriptions into fixed-width
// TF-IDF feature matrices. The vocabulary is learned once from training
// data and is immutable afterwards: prediction-time text is mapped through
// the exact same columns and unseen tokens are ignored, never added.
package vectorizer

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/GHDaru/prodclass/internal/logging"
	"github.com/GHDaru/prodclass/internal/mlerror"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

var tokenPattern = regexp.MustCompile(`[\p{L}\p{N}]+`)

// Config holds the tunable parts of the featurizer. The zero value means
// unigrams, no document-frequency floor and no vocabulary cap.
type Config struct {
	// NgramMin and NgramMax bound the word n-gram spans extracted from
	// each description. Both default to 1.
	NgramMin int `yaml:"ngram_min"`
	NgramMax int `yaml:"ngram_max"`
	// MinDF drops terms seen in fewer than MinDF documents. Defaults to 1.
	MinDF int `yaml:"min_df"`
	// MaxFeatures caps the vocabulary at the terms with the highest
	// document frequency, ties broken lexicographically. 0 means no cap.
	MaxFeatures int `yaml:"max_features"`
}

func (c Config) normalized() Config {
	if c.NgramMin < 1 {
		c.NgramMin = 1
	}
	if c.NgramMax < c.NgramMin {
		c.NgramMax = c.NgramMin
	}
	if c.MinDF < 1 {
		c.MinDF = 1
	}
	return c
}

// Vocabulary is the fixed token-to-column mapping of a fitted featurizer,
// together with the IDF weights computed from the training corpus. It is
// never mutated after LearnVocabulary returns it.
type Vocabulary struct {
	Terms map[string]int `yaml:"terms"`
	IDF   []float64      `yaml:"idf"`
	Docs  int            `yaml:"docs"`
}

// Size returns the number of columns in matrices produced from this vocabulary.
func (v *Vocabulary) Size() int {
	return len(v.Terms)
}

// Featurizer tokenizes and vectorizes text according to its Config.
// It holds no fitted state itself; all learned state lives in the
// Vocabulary values it produces.
type Featurizer struct {
	cfg Config
}

// New creates a Featurizer with the given configuration.
func New(cfg Config) *Featurizer {
	return &Featurizer{cfg: cfg.normalized()}
}

// LearnVocabulary tokenizes every document, counts per-term document
// frequency and builds the column mapping plus cached IDF weights.
func (f *Featurizer) LearnVocabulary(corpus []string) (*Vocabulary, error) {
	if len(corpus) == 0 {
		return nil, &mlerror.EmptyCorpusError{Operation: "LearnVocabulary"}
	}

	df := make(map[string]int)
	for _, doc := range corpus {
		seen := make(map[string]struct{})
		for _, term := range f.analyze(doc) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	terms := make([]string, 0, len(df))
	for term, count := range df {
		if count >= f.cfg.MinDF {
			terms = append(terms, term)
		}
	}
	sort.Strings(terms)

	if f.cfg.MaxFeatures > 0 && len(terms) > f.cfg.MaxFeatures {
		// Keep the highest-df terms; the preceding lexicographic sort
		// makes the cut deterministic for equal frequencies.
		sort.SliceStable(terms, func(i, j int) bool {
			return df[terms[i]] > df[terms[j]]
		})
		terms = terms[:f.cfg.MaxFeatures]
		sort.Strings(terms)
	}

	vocab := &Vocabulary{
		Terms: make(map[string]int, len(terms)),
		IDF:   make([]float64, len(terms)),
		Docs:  len(corpus),
	}
	n := float64(len(corpus))
	for i, term := range terms {
		vocab.Terms[term] = i
		vocab.IDF[i] = math.Log(n / float64(df[term]))
	}

	log.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "learn_vocabulary"},
		logging.Field{Key: logging.FieldDocuments, Value: len(corpus)},
		logging.Field{Key: logging.FieldVocabSize, Value: vocab.Size()},
	).Debug("Vocabulary learned")

	return vocab, nil
}

// Transform maps each document to a row of TF-IDF weights using the given
// vocabulary. Tokens outside the vocabulary are ignored, so documents with
// no recognized tokens yield all-zero rows, which is a valid outcome.
func (f *Featurizer) Transform(corpus []string, vocab *Vocabulary) ([][]float64, error) {
	if vocab == nil {
		return nil, &mlerror.NotFittedError{Subject: "vocabulary"}
	}

	matrix := make([][]float64, len(corpus))
	for i, doc := range corpus {
		row := make([]float64, vocab.Size())
		for _, term := range f.analyze(doc) {
			if col, ok := vocab.Terms[term]; ok {
				row[col]++
			}
		}
		for col := range row {
			if row[col] > 0 {
				row[col] *= vocab.IDF[col]
			}
		}
		matrix[i] = row
	}
	return matrix, nil
}

// analyze lowercases, tokenizes and expands word n-grams for one document.
func (f *Featurizer) analyze(text string) []string {
	tokens := tokenPattern.FindAllString(strings.ToLower(text), -1)
	if f.cfg.NgramMin == 1 && f.cfg.NgramMax == 1 {
		return tokens
	}
	var out []string
	for n := f.cfg.NgramMin; n <= f.cfg.NgramMax; n++ {
		for i := 0; i+n <= len(tokens); i++ {
			out = append(out, strings.Join(tokens[i:i+n], " "))
		}
	}
	return out
}
