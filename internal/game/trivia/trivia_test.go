package trivia

import (
	"errors"
	"math/rand"
	"strings"
	"testing"
)

func questions() []Question {
	return []Question{
		{
			ID:     "ballon-dor-2010s",
			Prompt: "Jugadores que ganaron el Balón de Oro en la década de 2010",
			Answers: []string{
				"Lionel Messi", "Cristiano Ronaldo", "Luka Modrić",
			},
		},
		{
			ID:     "wc-2022-scorers",
			Prompt: "Goleadores de la final del Mundial 2022",
			Answers: []string{
				"Lionel Messi", "Kylian Mbappé", "Ángel Di María",
			},
		},
	}
}

func startGame(t *testing.T, countdown int) *Game {
	t.Helper()
	g := New(questions(), countdown, rand.New(rand.NewSource(1)))
	if err := g.Start(); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return g
}

func TestStartRequiresQuestions(t *testing.T) {
	g := New(nil, 0, rand.New(rand.NewSource(1)))
	if err := g.Start(); !errors.Is(err, ErrNoQuestions) {
		t.Fatalf("Start err = %v, want ErrNoQuestions", err)
	}
}

func TestSuggestionsMatchRemainingAnswers(t *testing.T) {
	g := startGame(t, 0)
	q := g.Current()

	if got := g.Suggestions("l"); got != nil {
		t.Fatalf("single-char input suggested %v, want none", got)
	}

	first := q.Answers[0]
	sugg := g.Suggestions(first[:4])
	if len(sugg) == 0 {
		t.Fatalf("no suggestions for prefix of %q", first)
	}

	if err := g.AddAnswer(sugg[0]); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	for _, s := range g.Suggestions(sugg[0][:4]) {
		if s == sugg[0] {
			t.Fatalf("found answer %q still suggested", s)
		}
	}
}

func TestAddAnswerRejectsNonAnswers(t *testing.T) {
	g := startGame(t, 0)
	if err := g.AddAnswer("Zinedine Zidane"); !errors.Is(err, ErrNotAnAnswer) {
		t.Fatalf("AddAnswer err = %v, want ErrNotAnAnswer", err)
	}
	// Accent and case differences still land on the canonical answer.
	q := g.Current()
	if err := g.AddAnswer(normVariant(q.Answers[0])); err != nil {
		t.Fatalf("AddAnswer variant: %v", err)
	}
	if len(g.Found()) != 1 || g.Found()[0] != q.Answers[0] {
		t.Fatalf("Found = %v, want canonical %q", g.Found(), q.Answers[0])
	}
	if err := g.AddAnswer(q.Answers[0]); !errors.Is(err, ErrNotAnAnswer) {
		t.Fatalf("duplicate add err = %v, want ErrNotAnAnswer", err)
	}
}

func normVariant(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch r {
		case 'é':
			r = 'e'
		case 'í':
			r = 'i'
		case 'Á':
			r = 'A'
		}
		out = append(out, r)
	}
	return string(out)
}

func TestRemoveAnswer(t *testing.T) {
	g := startGame(t, 0)
	q := g.Current()
	if err := g.AddAnswer(q.Answers[0]); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	if err := g.AddAnswer(q.Answers[1]); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	g.RemoveAnswer(q.Answers[0])
	if len(g.Found()) != 1 || g.Found()[0] != q.Answers[1] {
		t.Fatalf("Found = %v after removal", g.Found())
	}
	// Removed answers can be re-added.
	if err := g.AddAnswer(q.Answers[0]); err != nil {
		t.Fatalf("re-add after removal: %v", err)
	}
}

func TestSubmitScoresByRatio(t *testing.T) {
	g := startGame(t, 0)
	q := g.Current()

	// 2 of 3 answers is a 0.5+ ratio, scored 0.8 on the ladder.
	if err := g.AddAnswer(q.Answers[0]); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	if err := g.AddAnswer(q.Answers[1]); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	s, err := g.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s != 0.8 {
		t.Fatalf("score = %v, want 0.8", s)
	}
	if g.Finished() {
		t.Fatal("one question left, session should continue")
	}
	if len(g.Found()) != 0 {
		t.Fatalf("found answers leaked into next question: %v", g.Found())
	}

	// Empty submission on the last question scores zero and finishes.
	s, err = g.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if s != 0 {
		t.Fatalf("empty submit score = %v, want 0", s)
	}
	if !g.Finished() {
		t.Fatal("session should be finished")
	}
	if _, err := g.Submit(); !errors.Is(err, ErrFinished) {
		t.Fatalf("post-finish submit err = %v, want ErrFinished", err)
	}
}

func TestCountdownAutoSubmits(t *testing.T) {
	g := startGame(t, 3)
	if got := g.TimeLeft(); got != 3 {
		t.Fatalf("TimeLeft = %d, want 3", got)
	}
	for i := 0; i < 3; i++ {
		g.Tick()
	}
	if answered, _ := g.Progress(); answered != 1 {
		t.Fatalf("answered = %d after countdown, want 1", answered)
	}
	if got := g.TimeLeft(); got != 3 {
		t.Fatalf("next question TimeLeft = %d, want reset to 3", got)
	}
	if g.LastScore() != 0 {
		t.Fatalf("LastScore = %v, want 0 for timed-out empty answer", g.LastScore())
	}
}

func TestHintRevealsGrowingPrefix(t *testing.T) {
	g := startGame(t, 0)
	q := g.Current()
	target := []rune(q.Answers[0])

	if got := g.Hint(); got != string(target[:1]) {
		t.Fatalf("first hint = %q, want %q", got, string(target[:1]))
	}
	if got := g.Hint(); got != string(target[:2]) {
		t.Fatalf("second hint = %q, want %q", got, string(target[:2]))
	}

	// Once found, hints move on to the next missing answer.
	if err := g.AddAnswer(q.Answers[0]); err != nil {
		t.Fatalf("AddAnswer: %v", err)
	}
	next := g.Hint()
	if next == "" || !strings.HasPrefix(q.Answers[1], next) {
		t.Fatalf("hint after find = %q, should prefix %q", next, q.Answers[1])
	}
}
