package questiongen

import "github.com/futbolquiz/futbolquiz/internal/llm"

// QuestionSchema defines the JSON schema for LLM trivia generation responses.
var QuestionSchema = &llm.Schema{
	Name:        "trivia-questions",
	Description: "A batch of football trivia questions, each with its full list of accepted answers",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"prompt": map[string]any{
							"type":        "string",
							"description": "The question shown to the player, in Spanish",
						},
						"answers": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"minItems":    2,
							"maxItems":    15,
							"description": "Every accepted answer, canonical display spelling",
						},
					},
					"required":             []any{"prompt", "answers"},
					"additionalProperties": false,
				},
				"description": "The generated questions",
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
