package questions

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/config"
	"github.com/futbolquiz/futbolquiz/internal/game/trivia"
)

const apiBody = `{
  "questions": [
    {"gameData": {"question": "Campeones del mundo desde 2000", "answers": ["Francia", "Italia", "España", "Alemania", "Argentina"]}},
    {"gameData": {"question": "", "answers": ["descartada"]}},
    {"gameData": {"question": "Sin respuestas", "answers": []}}
  ]
}`

type stubGen struct {
	qs  []trivia.Question
	err error
}

func (g *stubGen) Generate(_ context.Context, _ int) ([]trivia.Question, error) {
	return g.qs, g.err
}

func newSource(t *testing.T, handler http.Handler, gen Generator) *Source {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	cfg := config.New()
	cfg.DataBaseURL = srv.URL
	return New(cfg, gen)
}

func TestLoadFromAPI(t *testing.T) {
	s := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/quiz/questions" {
			http.NotFound(w, r)
			return
		}
		fmt.Fprint(w, apiBody)
	}), nil)

	qs, err := s.Load(context.Background(), 5)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1 (malformed entries dropped)", len(qs))
	}
	if qs[0].Prompt != "Campeones del mundo desde 2000" || len(qs[0].Answers) != 5 {
		t.Fatalf("unexpected question: %+v", qs[0])
	}
}

func TestLoadFallsBackToGenerator(t *testing.T) {
	gen := &stubGen{qs: []trivia.Question{
		{ID: "gen-0", Prompt: "Pichichis de La Liga", Answers: []string{"Messi", "Ronaldo"}},
	}}
	s := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}), gen)

	qs, err := s.Load(context.Background(), 3)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(qs) != 1 || qs[0].ID != "gen-0" {
		t.Fatalf("expected generator questions, got %+v", qs)
	}
}

func TestLoadNoSources(t *testing.T) {
	s := newSource(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}), &stubGen{err: errors.New("no provider")})

	if _, err := s.Load(context.Background(), 3); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("err = %v, want ErrNoQuestions", err)
	}
}
