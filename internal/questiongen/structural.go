package questiongen

import (
	"fmt"
	"strings"

	"github.com/futbolquiz/futbolquiz/internal/game/trivia"
	"github.com/futbolquiz/futbolquiz/internal/player"
)

// StructuralValidator checks that required fields are present and within
// length limits.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *trivia.Question) *ValidationError {
	if strings.TrimSpace(q.Prompt) == "" {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt is empty",
		}
	}
	if len(q.Prompt) > 300 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   "prompt exceeds 300 characters",
		}
	}
	return nil
}

// AnswerListValidator checks that the accepted answers form a usable list:
// enough of them, none blank, and no two normalizing to the same string.
type AnswerListValidator struct{}

func (v *AnswerListValidator) Name() string { return "answer-list" }

func (v *AnswerListValidator) Validate(q *trivia.Question) *ValidationError {
	if len(q.Answers) < 2 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("need at least 2 answers, got %d", len(q.Answers)),
		}
	}
	if len(q.Answers) > 15 {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("too many answers: %d", len(q.Answers)),
		}
	}

	seen := make(map[string]bool, len(q.Answers))
	for _, a := range q.Answers {
		norm := player.NormalizeFreeText(a)
		if norm == "" {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("answer %q normalizes to nothing", a),
			}
		}
		if seen[norm] {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("duplicate answer %q", a),
			}
		}
		seen[norm] = true
	}
	return nil
}
