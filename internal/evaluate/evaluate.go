// Package evaluate computes classification metrics over index-aligned
// predicted and true class codes.
package evaluate

import (
	"fmt"

	"github.com/GHDaru/prodclass/internal/mlerror"
)

// Metric names accepted by Score and the pipeline's Evaluate.
const (
	MetricAccuracy       = "accuracy"
	MetricMacroF1        = "macro-f1"
	MetricMacroPrecision = "macro-precision"
	MetricMacroRecall    = "macro-recall"
)

// ClassMetrics holds per-class precision, recall and F1 together with the
// number of true instances of that class.
type ClassMetrics struct {
	Class     int
	Precision float64
	Recall    float64
	F1        float64
	Support   int
}

// Report summarizes a classification run: overall accuracy, per-class
// metrics and their macro averages.
type Report struct {
	Accuracy       float64
	Classes        []ClassMetrics
	MacroPrecision float64
	MacroRecall    float64
	MacroF1        float64
}

func checkAligned(pred, truth []int) error {
	if len(pred) != len(truth) {
		return &mlerror.DimensionMismatchError{
			Operation: "Evaluate",
			Left:      "predictions",
			Right:     "truth",
			LeftLen:   len(pred),
			RightLen:  len(truth),
		}
	}
	return nil
}

// Accuracy returns the fraction of predictions exactly equal to the truth.
func Accuracy(pred, truth []int) (float64, error) {
	if err := checkAligned(pred, truth); err != nil {
		return 0, err
	}
	if len(truth) == 0 {
		return 0, nil
	}
	correct := 0
	for i := range truth {
		if pred[i] == truth[i] {
			correct++
		}
	}
	return float64(correct) / float64(len(truth)), nil
}

// Classification computes the full per-class and macro-averaged report.
// Classes are every code appearing in either sequence.
func Classification(pred, truth []int) (*Report, error) {
	accuracy, err := Accuracy(pred, truth)
	if err != nil {
		return nil, err
	}

	maxClass := -1
	for i := range truth {
		if truth[i] > maxClass {
			maxClass = truth[i]
		}
		if pred[i] > maxClass {
			maxClass = pred[i]
		}
	}

	report := &Report{Accuracy: accuracy}
	if maxClass < 0 {
		return report, nil
	}

	tp := make([]int, maxClass+1)
	fp := make([]int, maxClass+1)
	fn := make([]int, maxClass+1)
	support := make([]int, maxClass+1)
	for i := range truth {
		support[truth[i]]++
		if pred[i] == truth[i] {
			tp[pred[i]]++
		} else {
			fp[pred[i]]++
			fn[truth[i]]++
		}
	}

	for c := 0; c <= maxClass; c++ {
		var precision, recall, f1 float64
		if tp[c]+fp[c] > 0 {
			precision = float64(tp[c]) / float64(tp[c]+fp[c])
		}
		if tp[c]+fn[c] > 0 {
			recall = float64(tp[c]) / float64(tp[c]+fn[c])
		}
		if precision+recall > 0 {
			f1 = 2 * precision * recall / (precision + recall)
		}
		report.Classes = append(report.Classes, ClassMetrics{
			Class:     c,
			Precision: precision,
			Recall:    recall,
			F1:        f1,
			Support:   support[c],
		})
		report.MacroPrecision += precision
		report.MacroRecall += recall
		report.MacroF1 += f1
	}
	n := float64(maxClass + 1)
	report.MacroPrecision /= n
	report.MacroRecall /= n
	report.MacroF1 /= n
	return report, nil
}

// Score evaluates a single named metric.
func Score(metric string, pred, truth []int) (float64, error) {
	switch metric {
	case MetricAccuracy, "":
		return Accuracy(pred, truth)
	case MetricMacroF1, MetricMacroPrecision, MetricMacroRecall:
		report, err := Classification(pred, truth)
		if err != nil {
			return 0, err
		}
		switch metric {
		case MetricMacroF1:
			return report.MacroF1, nil
		case MetricMacroPrecision:
			return report.MacroPrecision, nil
		default:
			return report.MacroRecall, nil
		}
	default:
		return 0, fmt.Errorf("unknown metric: %s", metric)
	}
}
