// Package questions loads trivia questions, preferring the data API and
// falling back to an LLM generator when the API is unreachable.
package questions

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/futbolquiz/futbolquiz/internal/config"
	"github.com/futbolquiz/futbolquiz/internal/game/trivia"
)

// ErrNoQuestions is returned when neither source produced any questions.
var ErrNoQuestions = errors.New("questions: no questions available")

// Generator produces trivia questions when the API cannot.
type Generator interface {
	Generate(ctx context.Context, count int) ([]trivia.Question, error)
}

// Source loads trivia questions.
type Source struct {
	httpc   *http.Client
	baseURL string
	gen     Generator // optional fallback
}

// New builds a Source from cfg. gen may be nil to disable the fallback.
func New(cfg *config.Config, gen Generator) *Source {
	return &Source{
		httpc:   &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second},
		baseURL: strings.TrimRight(cfg.DataBaseURL, "/"),
		gen:     gen,
	}
}

// wire format: {"questions": [{"gameData": {"question": "...", "answers": [...]}}]}.
type wireResponse struct {
	Questions []struct {
		GameData struct {
			Question string   `json:"question"`
			Answers  []string `json:"answers"`
		} `json:"gameData"`
	} `json:"questions"`
}

// Load returns up to count questions, trying the API first.
func (s *Source) Load(ctx context.Context, count int) ([]trivia.Question, error) {
	qs, err := s.fromAPI(ctx, count)
	if err == nil && len(qs) > 0 {
		return qs, nil
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if s.gen != nil {
		if gen, gerr := s.gen.Generate(ctx, count); gerr == nil && len(gen) > 0 {
			return gen, nil
		}
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoQuestions, err)
	}
	return nil, ErrNoQuestions
}

func (s *Source) fromAPI(ctx context.Context, count int) ([]trivia.Question, error) {
	url := fmt.Sprintf("%s/api/quiz/questions?count=%d", s.baseURL, count)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("questions: http %d", resp.StatusCode)
	}

	var wr wireResponse
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return nil, err
	}

	out := make([]trivia.Question, 0, len(wr.Questions))
	for i, q := range wr.Questions {
		if q.GameData.Question == "" || len(q.GameData.Answers) == 0 {
			continue
		}
		out = append(out, trivia.Question{
			ID:      fmt.Sprintf("api-%d", i),
			Prompt:  q.GameData.Question,
			Answers: q.GameData.Answers,
		})
	}
	return out, nil
}
