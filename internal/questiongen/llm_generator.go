package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/futbolquiz/futbolquiz/internal/game/trivia"
	"github.com/futbolquiz/futbolquiz/internal/llm"
)

// LLMGenerator implements Generator using the LLM provider.
type LLMGenerator struct {
	provider llm.Provider
	config   Config

	mu    sync.Mutex
	prior []string // prompts generated so far, for dedup across batches
}

// New creates a new LLMGenerator with the given provider and config.
func New(provider llm.Provider, cfg Config) *LLMGenerator {
	return &LLMGenerator{provider: provider, config: cfg}
}

// batchOutput is the raw LLM response before validation.
type batchOutput struct {
	Questions []struct {
		Prompt  string   `json:"prompt"`
		Answers []string `json:"answers"`
	} `json:"questions"`
}

// Generate produces up to count validated questions.
func (g *LLMGenerator) Generate(ctx context.Context, count int) ([]trivia.Question, error) {
	ctx = llm.WithPurpose(ctx, "question-gen")

	g.mu.Lock()
	prior := append([]string(nil), g.prior...)
	g.mu.Unlock()

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(count, prior, g.config)},
		},
		Schema:      QuestionSchema,
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	}

	resp, err := g.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw batchOutput
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	out := make([]trivia.Question, 0, len(raw.Questions))
	for _, rq := range raw.Questions {
		q := trivia.Question{
			ID:      uuid.NewString(),
			Prompt:  rq.Prompt,
			Answers: rq.Answers,
		}
		if !g.valid(&q) {
			continue
		}
		out = append(out, q)
		if len(out) == count {
			break
		}
	}

	if len(out) > 0 {
		g.mu.Lock()
		for _, q := range out {
			g.prior = append(g.prior, q.Prompt)
		}
		g.mu.Unlock()
	}
	return out, nil
}

func (g *LLMGenerator) valid(q *trivia.Question) bool {
	for _, v := range g.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return false
		}
	}
	return true
}
