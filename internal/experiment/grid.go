package experiment

import (
	"github.com/GHDaru/prodclass/internal/classifier"
	"github.com/GHDaru/prodclass/internal/pipeline"
)

// Params is one concrete pipeline configuration in a sweep.
type Params struct {
	NgramMin    int
	NgramMax    int
	MinDF       int
	MaxFeatures int
	Classifier  classifier.Kind
}

// Options converts the parameters to pipeline construction options.
func (p Params) Options() []pipeline.Option {
	return []pipeline.Option{
		pipeline.WithNgramRange(p.NgramMin, p.NgramMax),
		pipeline.WithMinDF(p.MinDF),
		pipeline.WithMaxFeatures(p.MaxFeatures),
		pipeline.WithClassifier(p.Classifier),
	}
}

// Variations lists the values to sweep per parameter. Empty dimensions
// fall back to a single default value.
type Variations struct {
	NgramRanges [][2]int
	MinDFs      []int
	MaxFeatures []int
	Classifiers []classifier.Kind
}

func (v Variations) normalized() Variations {
	if len(v.NgramRanges) == 0 {
		v.NgramRanges = [][2]int{{1, 1}}
	}
	if len(v.MinDFs) == 0 {
		v.MinDFs = []int{1}
	}
	if len(v.MaxFeatures) == 0 {
		v.MaxFeatures = []int{0}
	}
	if len(v.Classifiers) == 0 {
		v.Classifiers = []classifier.Kind{classifier.MultinomialNB}
	}
	return v
}

// Combinations expands the cartesian product of all variation dimensions.
func Combinations(v Variations) []Params {
	v = v.normalized()
	var out []Params
	for _, ngram := range v.NgramRanges {
		for _, minDF := range v.MinDFs {
			for _, maxFeatures := range v.MaxFeatures {
				for _, kind := range v.Classifiers {
					out = append(out, Params{
						NgramMin:    ngram[0],
						NgramMax:    ngram[1],
						MinDF:       minDF,
						MaxFeatures: maxFeatures,
						Classifier:  kind,
					})
				}
			}
		}
	}
	return out
}
