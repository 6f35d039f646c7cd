// Package assist asks the Gemini API to second-guess low-confidence
// predictions against the learned category set. It is strictly outside
// the classification core: nothing here is ever called during Fit,
// Predict or Evaluate.
package assist

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/GHDaru/prodclass/internal/logging"
)

var log = logging.GetLogger()

// SetLogger allows setting a custom logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// Suggestion is a category choice for one description, with the model's
// short justification.
type Suggestion struct {
	Category string
	Reason   string
}

// Suggester proposes a category for a product description, restricted to
// the given category set.
type Suggester interface {
	Suggest(ctx context.Context, description string, categories []string) (Suggestion, error)
}

// GeminiSuggester implements Suggester using the Google Gemini API.
type GeminiSuggester struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

// NewGeminiSuggester creates a suggester backed by the named Gemini model.
func NewGeminiSuggester(ctx context.Context, apiKey, modelName string) (*GeminiSuggester, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is not set")
	}
	if modelName == "" {
		modelName = "gemini-pro"
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("error creating Gemini client: %w", err)
	}
	return &GeminiSuggester{
		client: client,
		model:  client.GenerativeModel(modelName),
	}, nil
}

// Close releases the underlying API client.
func (s *GeminiSuggester) Close() error {
	return s.client.Close()
}

// Suggest prompts Gemini to assign the description to exactly one of the
// given categories. An answer outside the category set is an error.
func (s *GeminiSuggester) Suggest(ctx context.Context, description string, categories []string) (Suggestion, error) {
	prompt := fmt.Sprintf(`Categorize the following product description:
Description: %s

Assign it to exactly one of the following categories:
%s

Respond in this format:
Category: [Selected Category Name]
Reason: [Brief explanation of why you chose this category]`,
		description,
		strings.Join(categories, ", "))

	resp, err := s.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return Suggestion{}, fmt.Errorf("Gemini API error: %w", err)
	}
	if len(resp.Candidates) == 0 || len(resp.Candidates[0].Content.Parts) == 0 {
		return Suggestion{}, fmt.Errorf("no response from Gemini API")
	}

	text := fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])
	suggestion, err := parseSuggestion(text)
	if err != nil {
		return Suggestion{}, err
	}
	matched, ok := matchCategory(suggestion.Category, categories)
	if !ok {
		return Suggestion{}, fmt.Errorf("Gemini suggested %q, which is not a known category", suggestion.Category)
	}
	suggestion.Category = matched

	log.WithFields(
		logging.Field{Key: logging.FieldOperation, Value: "gemini_suggest"},
		logging.Field{Key: logging.FieldCategory, Value: suggestion.Category},
	).Debug("Description categorized by Gemini")
	return suggestion, nil
}

// parseSuggestion extracts the category and reason lines from a response.
func parseSuggestion(response string) (Suggestion, error) {
	var suggestion Suggestion
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "Category:"); ok {
			suggestion.Category = strings.TrimSpace(after)
		} else if after, ok := strings.CutPrefix(line, "Reason:"); ok {
			suggestion.Reason = strings.TrimSpace(after)
		}
	}
	if suggestion.Category == "" {
		return Suggestion{}, fmt.Errorf("could not find a category in Gemini response")
	}
	return suggestion, nil
}

// matchCategory resolves a suggested name against the known categories,
// case-insensitively, returning the canonical spelling.
func matchCategory(suggested string, categories []string) (string, bool) {
	for _, category := range categories {
		if strings.EqualFold(category, suggested) {
			return category, true
		}
	}
	return "", false
}
