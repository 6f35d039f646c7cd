// Package labelcodec maps human-readable category names to the dense
// integer codes classifiers train and predict against, and back.
package labelcodec

import (
	"github.com/GHDaru/prodclass/internal/mlerror"
)

// Mapping is a bijection between category names and codes in [0, K),
// assigned in first-seen order. It is immutable once learned.
type Mapping struct {
	Codes  map[string]int `yaml:"codes"`
	Labels []string       `yaml:"labels"`
}

// Size returns the number of distinct categories K.
func (m *Mapping) Size() int {
	return len(m.Labels)
}

// Learn assigns codes to the distinct labels of the training set in
// first-seen order.
func Learn(labels []string) (*Mapping, error) {
	if len(labels) == 0 {
		return nil, &mlerror.EmptyLabelSetError{Operation: "Learn"}
	}
	m := &Mapping{Codes: make(map[string]int)}
	for _, label := range labels {
		if _, ok := m.Codes[label]; !ok {
			m.Codes[label] = len(m.Labels)
			m.Labels = append(m.Labels, label)
		}
	}
	return m, nil
}

// Encode converts labels to their learned codes. A label not seen during
// Learn fails with UnknownLabelError before any output is produced.
func Encode(labels []string, m *Mapping) ([]int, error) {
	codes := make([]int, len(labels))
	for i, label := range labels {
		code, ok := m.Codes[label]
		if !ok {
			return nil, &mlerror.UnknownLabelError{Label: label, Known: m.Size()}
		}
		codes[i] = code
	}
	return codes, nil
}

// Decode converts codes back to category names. A code outside [0, K)
// fails with UnknownCodeError.
func Decode(codes []int, m *Mapping) ([]string, error) {
	labels := make([]string, len(codes))
	for i, code := range codes {
		if code < 0 || code >= m.Size() {
			return nil, &mlerror.UnknownCodeError{Code: code, Range: m.Size()}
		}
		labels[i] = m.Labels[code]
	}
	return labels, nil
}
