// Package questiongen generates free-text trivia questions with an LLM,
// used when the data API has no question set to offer.
package questiongen

import (
	"context"

	"github.com/futbolquiz/futbolquiz/internal/game/trivia"
)

// Generator produces trivia questions using an LLM provider.
type Generator interface {
	// Generate produces up to count questions. All configured validators
	// run on every question; questions that fail validation are dropped
	// rather than failing the whole batch.
	Generate(ctx context.Context, count int) ([]trivia.Question, error)
}
