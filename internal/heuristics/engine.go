package heuristics

import (
	"context"

	"github.com/MKhiriev/go-study-buddy/models"
)

// SummaryFunc produces a summary for text. It must always return a non-empty
// string.
type SummaryFunc func(ctx context.Context, text string) string

// Engine assembles study artifacts for the requested features.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Generate builds results for exactly the requested features. summarize is
// used for the summary feature; nil falls back to [Summarize].
func (e *Engine) Generate(ctx context.Context, text string, features []models.Feature, summarize SummaryFunc) models.Results {
	var results models.Results
	for _, f := range features {
		switch f {
		case models.FeatureSummary:
			var summary string
			if summarize != nil {
				summary = summarize(ctx, text)
			}
			if summary == "" {
				summary = Summarize(text)
			}
			results.Summary = &summary
		case models.FeatureQuiz:
			results.Quiz = Quiz(text)
		case models.FeatureFlashcards:
			results.Flashcards = Flashcards(text)
		case models.FeatureKeyPoints:
			results.KeyPoints = KeyPoints(text)
		}
	}
	return results
}
