// Package agequiz implements the age-guessing quiz: pick the player's age
// from four options, scored by how close the guess landed.
package agequiz

import (
	"errors"
	"math/rand"

	"github.com/futbolquiz/futbolquiz/internal/player"
	"github.com/futbolquiz/futbolquiz/internal/scoring"
)

// DefaultQuestions is the number of questions per session.
const DefaultQuestions = 10

// Ages outside this open interval are treated as data errors and excluded.
const (
	minAge = 16
	maxAge = 45
)

// Option ages are kept inside a realistic closed range.
const (
	minOption = 17
	maxOption = 42
)

// MaxPoints is the highest score a single question can award.
const MaxPoints = 10

var (
	// ErrPoolExhausted means no eligible player remains; callers should
	// fetch a fresh pool and call Refill.
	ErrPoolExhausted = errors.New("agequiz: no eligible players left in pool")

	// ErrNoQuestion is returned when answering with no active question.
	ErrNoQuestion = errors.New("agequiz: no active question")

	// ErrFinished is returned for actions after the session completed.
	ErrFinished = errors.New("agequiz: session finished")
)

// Question is one age-guessing round.
type Question struct {
	Player  player.Player
	Actual  int
	Options []int
}

// Game is the age quiz state machine.
type Game struct {
	rng      *rand.Rand
	total    int
	pool     []player.Player
	used     map[string]bool
	cur      *Question
	answered int
	finished bool
	score    scoring.State
	lastPick int
	lastPts  int
}

// New creates a game of total questions drawing randomness from rng.
func New(total int, rng *rand.Rand) *Game {
	if total <= 0 {
		total = DefaultQuestions
	}
	return &Game{total: total, rng: rng, used: make(map[string]bool), lastPick: -1}
}

// Start loads the player pool and draws the first question.
func (g *Game) Start(pool []player.Player) error {
	g.pool = pool
	return g.nextQuestion()
}

// Refill extends the pool after exhaustion and draws the pending question.
func (g *Game) Refill(pool []player.Player) error {
	g.pool = pool
	if g.cur == nil && !g.finished {
		return g.nextQuestion()
	}
	return nil
}

// Restart clears all state and begins a fresh session over pool.
func (g *Game) Restart(pool []player.Player) error {
	g.used = make(map[string]bool)
	g.cur = nil
	g.answered = 0
	g.finished = false
	g.score.Reset()
	g.lastPick = -1
	g.lastPts = 0
	return g.Start(pool)
}

// Current returns the active question, or nil between questions.
func (g *Game) Current() *Question { return g.cur }

// Finished reports whether the session is over.
func (g *Game) Finished() bool { return g.finished }

// Score returns the running score state.
func (g *Game) Score() scoring.State { return g.score }

// LastOutcome returns the previous pick and the points it earned.
func (g *Game) LastOutcome() (pick, points int) { return g.lastPick, g.lastPts }

// Choose scores the given age guess against the active question and clears
// it. Returns the points earned.
func (g *Game) Choose(guess int) (int, error) {
	if g.finished {
		return 0, ErrFinished
	}
	if g.cur == nil {
		return 0, ErrNoQuestion
	}

	pts := scoring.AgeScore(guess, g.cur.Actual)
	g.score.Record(float64(pts))
	g.lastPick = guess
	g.lastPts = pts
	g.answered++
	g.cur = nil

	if g.answered >= g.total {
		g.finished = true
	}
	return pts, nil
}

// Advance draws the next question after feedback has been shown.
func (g *Game) Advance() error {
	if g.finished {
		return ErrFinished
	}
	if g.cur != nil {
		return nil
	}
	return g.nextQuestion()
}

// Summary returns the stats emission for the session so far.
func (g *Game) Summary() scoring.Summary {
	return g.score.Summarize(MaxPoints)
}

// Progress returns answered and total question counts.
func (g *Game) Progress() (answered, total int) {
	return g.answered, g.total
}

func (g *Game) nextQuestion() error {
	var eligible []player.Player
	for _, p := range g.pool {
		if g.used[p.Key()] {
			continue
		}
		if !eligibleForAgeQuiz(p) {
			continue
		}
		eligible = append(eligible, p)
	}
	if len(eligible) == 0 {
		return ErrPoolExhausted
	}

	p := eligible[g.rng.Intn(len(eligible))]
	g.used[p.Key()] = true
	actual, _ := player.ParseAge(p.Age)

	g.cur = &Question{
		Player:  p,
		Actual:  actual,
		Options: g.buildOptions(actual),
	}
	return nil
}

func eligibleForAgeQuiz(p player.Player) bool {
	if p.PhotoURL == "" {
		return false
	}
	age, ok := player.ParseAge(p.Age)
	return ok && age > minAge && age < maxAge
}

// buildOptions returns the actual age plus three distinct nearby decoys,
// shuffled.
func (g *Game) buildOptions(actual int) []int {
	opts := []int{actual}
	diffs := []int{-4, -3, -2, -1, 1, 2, 3, 4}
	for attempts := 0; len(opts) < 4 && attempts < 100; attempts++ {
		d := diffs[g.rng.Intn(len(diffs))]
		candidate := actual + d
		if candidate < minOption || candidate > maxOption {
			continue
		}
		dup := false
		for _, o := range opts {
			if o == candidate {
				dup = true
				break
			}
		}
		if !dup {
			opts = append(opts, candidate)
		}
	}
	g.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
