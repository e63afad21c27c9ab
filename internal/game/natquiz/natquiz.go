// Package natquiz implements the nationality quiz: pick the player's
// country from four options.
package natquiz

import (
	"errors"
	"math/rand"

	"github.com/futbolquiz/futbolquiz/internal/player"
	"github.com/futbolquiz/futbolquiz/internal/scoring"
)

// DefaultQuestions is the number of questions per session.
const DefaultQuestions = 10

// optionCount is the number of choices per question, the correct one
// included.
const optionCount = 4

var (
	// ErrPoolExhausted means no eligible player remains; callers should
	// fetch a fresh pool and call Refill.
	ErrPoolExhausted = errors.New("natquiz: no eligible players left in pool")

	// ErrNoQuestion is returned when answering with no active question.
	ErrNoQuestion = errors.New("natquiz: no active question")

	// ErrFinished is returned for actions after the session completed.
	ErrFinished = errors.New("natquiz: session finished")
)

// Question is one nationality round.
type Question struct {
	Player  player.Player
	Answer  string
	Options []string
}

// Game is the nationality quiz state machine.
type Game struct {
	rng      *rand.Rand
	total    int
	pool     []player.Player
	used     map[string]bool
	cur      *Question
	answered int
	finished bool
	score    scoring.State
	lastPick string
	lastOK   bool
}

// New creates a game of total questions drawing randomness from rng.
func New(total int, rng *rand.Rand) *Game {
	if total <= 0 {
		total = DefaultQuestions
	}
	return &Game{total: total, rng: rng, used: make(map[string]bool)}
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
	g.lastPick = ""
	g.lastOK = false
	return g.Start(pool)
}

// Current returns the active question, or nil between questions.
func (g *Game) Current() *Question { return g.cur }

// Finished reports whether the session is over.
func (g *Game) Finished() bool { return g.finished }

// Score returns the running score state.
func (g *Game) Score() scoring.State { return g.score }

// LastOutcome returns the previous pick and whether it was correct.
func (g *Game) LastOutcome() (pick string, correct bool) { return g.lastPick, g.lastOK }

// Progress returns answered and total question counts.
func (g *Game) Progress() (answered, total int) { return g.answered, g.total }

// Choose scores the chosen option against the active question.
func (g *Game) Choose(option string) (correct bool, err error) {
	if g.finished {
		return false, ErrFinished
	}
	if g.cur == nil {
		return false, ErrNoQuestion
	}

	pts := scoring.ExactScore(option, g.cur.Answer)
	g.score.Record(float64(pts))
	g.lastPick = option
	g.lastOK = pts == 1
	g.answered++
	g.cur = nil

	if g.answered >= g.total {
		g.finished = true
	}
	return g.lastOK, nil
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
	return g.score.Summarize(1)
}

func (g *Game) nextQuestion() error {
	var eligible []player.Player
	for _, p := range g.pool {
		if !g.used[p.Key()] && p.PhotoURL != "" && p.Nationality != "" {
			eligible = append(eligible, p)
		}
	}
	if len(eligible) == 0 {
		return ErrPoolExhausted
	}

	p := eligible[g.rng.Intn(len(eligible))]
	g.used[p.Key()] = true

	g.cur = &Question{
		Player:  p,
		Answer:  p.Nationality,
		Options: g.buildOptions(p.Nationality),
	}
	return nil
}

// buildOptions picks three distinct decoy nationalities from the pool and
// shuffles them together with the correct one. Pools with too little
// nationality variety yield shorter option lists rather than padding with
// invented countries.
func (g *Game) buildOptions(correct string) []string {
	seen := map[string]bool{correct: true}
	var decoys []string
	for _, p := range g.pool {
		if p.Nationality == "" || seen[p.Nationality] {
			continue
		}
		seen[p.Nationality] = true
		decoys = append(decoys, p.Nationality)
	}

	g.rng.Shuffle(len(decoys), func(i, j int) { decoys[i], decoys[j] = decoys[j], decoys[i] })
	if len(decoys) > optionCount-1 {
		decoys = decoys[:optionCount-1]
	}

	opts := append(decoys, correct)
	g.rng.Shuffle(len(opts), func(i, j int) { opts[i], opts[j] = opts[j], opts[i] })
	return opts
}
