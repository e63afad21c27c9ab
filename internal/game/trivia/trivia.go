// Package trivia implements the free-text trivia mode: open questions with
// several acceptable answers, collected through typed suggestions before a
// countdown runs out.
package trivia

import (
	"errors"
	"math/rand"

	"github.com/futbolquiz/futbolquiz/internal/player"
	"github.com/futbolquiz/futbolquiz/internal/scoring"
)

// DefaultCountdown is the ticks allowed per question.
const DefaultCountdown = 120

var (
	// ErrNoQuestions is returned when a game is started without questions.
	ErrNoQuestions = errors.New("trivia: no questions available")

	// ErrFinished is returned for actions after the session completed.
	ErrFinished = errors.New("trivia: session finished")

	// ErrNotAnAnswer rejects additions that match no remaining answer.
	ErrNotAnAnswer = errors.New("trivia: not an accepted answer")
)

// Question is one open trivia question with its accepted answers.
type Question struct {
	ID      string   `json:"id"`
	Prompt  string   `json:"prompt"`
	Answers []string `json:"answers"`
}

// Game is the trivia session state machine.
type Game struct {
	questions []Question
	idx       int
	found     []string
	foundSet  map[string]bool
	hints     int
	timeLeft  int
	countdown int
	finished  bool
	score     scoring.State
	lastScore float64
}

// New builds a session over questions, shuffled with rng. The countdown is
// the per-question tick budget; zero or negative selects DefaultCountdown.
func New(questions []Question, countdown int, rng *rand.Rand) *Game {
	if countdown <= 0 {
		countdown = DefaultCountdown
	}
	qs := make([]Question, len(questions))
	copy(qs, questions)
	if rng != nil {
		rng.Shuffle(len(qs), func(i, j int) { qs[i], qs[j] = qs[j], qs[i] })
	}
	return &Game{questions: qs, countdown: countdown}
}

// Start begins the session at the first question.
func (g *Game) Start() error {
	if len(g.questions) == 0 {
		return ErrNoQuestions
	}
	g.beginQuestion()
	return nil
}

// Current returns the active question, or nil when the session is over.
func (g *Game) Current() *Question {
	if g.finished || g.idx >= len(g.questions) {
		return nil
	}
	return &g.questions[g.idx]
}

// Finished reports whether every question has been submitted.
func (g *Game) Finished() bool { return g.finished }

// Score returns the running score state.
func (g *Game) Score() scoring.State { return g.score }

// LastScore returns the ratio score of the previous submission.
func (g *Game) LastScore() float64 { return g.lastScore }

// TimeLeft returns the remaining ticks for the active question.
func (g *Game) TimeLeft() int { return g.timeLeft }

// Found returns the answers collected so far, in discovery order.
func (g *Game) Found() []string { return g.found }

// Progress returns submitted and total question counts.
func (g *Game) Progress() (answered, total int) { return g.idx, len(g.questions) }

// Suggestions returns up to five not-yet-found answers matching input.
// Input shorter than two characters yields nothing.
func (g *Game) Suggestions(input string) []string {
	q := g.Current()
	if q == nil {
		return nil
	}
	return scoring.Suggest(input, q.Answers, g.found, player.NormalizeFreeText)
}

// AddAnswer records a suggested answer. Only strings that normalize to a
// remaining accepted answer are taken; free-typed guesses must come through
// Suggestions first.
func (g *Game) AddAnswer(s string) error {
	if g.finished {
		return ErrFinished
	}
	q := g.Current()
	if q == nil {
		return ErrFinished
	}
	norm := player.NormalizeFreeText(s)
	for _, a := range q.Answers {
		if player.NormalizeFreeText(a) == norm && !g.foundSet[norm] {
			g.foundSet[norm] = true
			g.found = append(g.found, a)
			return nil
		}
	}
	return ErrNotAnAnswer
}

// RemoveAnswer drops a previously added answer before submission.
func (g *Game) RemoveAnswer(s string) {
	norm := player.NormalizeFreeText(s)
	if !g.foundSet[norm] {
		return
	}
	delete(g.foundSet, norm)
	kept := g.found[:0]
	for _, a := range g.found {
		if player.NormalizeFreeText(a) != norm {
			kept = append(kept, a)
		}
	}
	g.found = kept
}

// Hint reveals a growing prefix of the first answer still missing. Each call
// on the same question uncovers one more character.
func (g *Game) Hint() string {
	q := g.Current()
	if q == nil {
		return ""
	}
	for _, a := range q.Answers {
		if g.foundSet[player.NormalizeFreeText(a)] {
			continue
		}
		g.hints++
		r := []rune(a)
		n := g.hints
		if n > len(r) {
			n = len(r)
		}
		return string(r[:n])
	}
	return ""
}

// Submit scores the collected answers against the question's full list and
// advances to the next question.
func (g *Game) Submit() (float64, error) {
	if g.finished {
		return 0, ErrFinished
	}
	q := g.Current()
	if q == nil {
		return 0, ErrFinished
	}
	s := scoring.FreeTextScore(len(g.found), len(q.Answers))
	g.score.RecordFreeText(s)
	g.lastScore = s
	g.idx++
	if g.idx >= len(g.questions) {
		g.finished = true
	} else {
		g.beginQuestion()
	}
	return s, nil
}

// Tick advances the countdown by one. When it reaches zero the current
// question is submitted with whatever has been found.
func (g *Game) Tick() {
	if g.finished || g.Current() == nil {
		return
	}
	g.timeLeft--
	if g.timeLeft <= 0 {
		g.Submit()
	}
}

// Summary returns the stats emission for the session so far.
func (g *Game) Summary() scoring.Summary {
	return g.score.Summarize(1)
}

func (g *Game) beginQuestion() {
	g.found = nil
	g.foundSet = make(map[string]bool)
	g.hints = 0
	g.timeLeft = g.countdown
}
