package assist

import (
	"context"
	"fmt"

	"github.com/GHDaru/prodclass/internal/pipeline"
)

// Review is the outcome for one description whose prediction fell below
// the confidence threshold.
type Review struct {
	Index       int
	Description string
	Predicted   string
	Confidence  float64
	Suggested   string
	Reason      string
}

// ReviewLowConfidence predicts the corpus, finds entries whose top class
// probability falls below threshold and asks the suggester to choose a
// category for each. The pipeline's classifier must support probability
// scores; ErrProbaUnsupported propagates otherwise.
func ReviewLowConfidence(ctx context.Context, p *pipeline.ProductVectorizer, corpus []string, threshold float64, suggester Suggester) ([]Review, error) {
	proba, err := p.PredictProba(corpus)
	if err != nil {
		return nil, err
	}
	predicted, err := p.PredictLabels(corpus)
	if err != nil {
		return nil, err
	}
	categories := p.Labels()

	var reviews []Review
	for i, row := range proba {
		top := 0.0
		for _, score := range row {
			if score > top {
				top = score
			}
		}
		if top >= threshold {
			continue
		}
		suggestion, err := suggester.Suggest(ctx, corpus[i], categories)
		if err != nil {
			return nil, fmt.Errorf("reviewing description %d: %w", i, err)
		}
		reviews = append(reviews, Review{
			Index:       i,
			Description: corpus[i],
			Predicted:   predicted[i],
			Confidence:  top,
			Suggested:   suggestion.Category,
			Reason:      suggestion.Reason,
		})
	}
	return reviews, nil
}
