// Package bingo implements the bingo board session: place each drawn player
// into one of twelve category cells before the countdown runs out.
package bingo

import (
	"errors"
	"fmt"

	"github.com/futbolquiz/futbolquiz/internal/category"
	"github.com/futbolquiz/futbolquiz/internal/player"
	"github.com/futbolquiz/futbolquiz/internal/scoring"
)

// Phase is the session lifecycle state. Only Finished is terminal; Restart
// re-enters NotStarted with everything reset.
type Phase int

const (
	NotStarted Phase = iota
	InProgress
	Finished
)

// DefaultCountdown is the session budget in ticks.
const DefaultCountdown = 60

const (
	pointsPerCell    = 10
	wrongPlacePenalty = 5
)

var (
	// ErrNotInProgress is returned for actions outside an active session.
	ErrNotInProgress = errors.New("bingo: session not in progress")

	// ErrAwaitingRefill is returned while a queue refill is outstanding;
	// placements and skips are rejected until Refill is called.
	ErrAwaitingRefill = errors.New("bingo: awaiting player refill")
)

// Cell is one board position. A cell fills exactly once and never unfills,
// even when the placement that touched it was wrong.
type Cell struct {
	Category category.Category
	Filled   bool
	Occupant string
}

// GameError records one incorrect placement for the post-game review.
type GameError struct {
	PlayerName        string
	AttemptedCategory string
	// CorrectCategories lists the titles the player actually satisfied, or
	// raw field hints when it satisfied none.
	CorrectCategories []string
}

// Placement describes the outcome of a single Place call.
type Placement struct {
	Correct     bool
	CellsFilled int
}

// Game is the bingo session state machine. It is single-threaded: callers
// must not invoke methods concurrently.
type Game struct {
	phase     Phase
	cells     []Cell
	countdown int
	budget    int

	queue    []player.Player
	queueIdx int
	awaiting bool

	score  scoring.State
	errors []GameError
}

// New creates a game over the given categories with the given tick budget.
func New(cats []category.Category, countdown int) *Game {
	g := &Game{budget: countdown}
	g.reset(cats)
	return g
}

func (g *Game) reset(cats []category.Category) {
	g.phase = NotStarted
	g.cells = make([]Cell, len(cats))
	for i, c := range cats {
		g.cells[i] = Cell{Category: c}
	}
	g.countdown = g.budget
	g.queue = nil
	g.queueIdx = 0
	g.awaiting = false
	g.score.Reset()
	g.errors = nil
}

// Start begins the session with the given player queue.
func (g *Game) Start(queue []player.Player) {
	g.phase = InProgress
	g.countdown = g.budget
	g.queue = queue
	g.queueIdx = 0
	g.awaiting = len(queue) == 0
}

// Restart resets every cell, counter and error and re-enters a fresh
// session with the given queue.
func (g *Game) Restart(queue []player.Player) {
	cats := make([]category.Category, len(g.cells))
	for i, c := range g.cells {
		cats[i] = c.Category
	}
	g.reset(cats)
	g.Start(queue)
}

// Phase returns the current lifecycle phase.
func (g *Game) Phase() Phase { return g.phase }

// AwaitingRefill reports whether the queue is exhausted and the session is
// waiting for a fresh sampler draw.
func (g *Game) AwaitingRefill() bool { return g.awaiting }

// Refill supplies a fresh player queue after exhaustion.
func (g *Game) Refill(queue []player.Player) {
	g.queue = queue
	g.queueIdx = 0
	g.awaiting = len(queue) == 0
}

// Current returns the player to be placed, if one is available.
func (g *Game) Current() (player.Player, bool) {
	if g.awaiting || g.queueIdx >= len(g.queue) {
		return player.Player{}, false
	}
	return g.queue[g.queueIdx], true
}

// Cells returns the board cells in fixed category order.
func (g *Game) Cells() []Cell { return g.cells }

// Errors returns the incorrect placements recorded so far.
func (g *Game) Errors() []GameError { return g.errors }

// Score returns the running score state.
func (g *Game) Score() scoring.State { return g.score }

// TimeLeft returns the remaining countdown ticks.
func (g *Game) TimeLeft() int { return g.countdown }

// Place attempts to place the current player into the cell for categoryID.
//
// A correct placement fills the clicked cell and every other unfilled cell
// the player also matches, worth pointsPerCell each. A wrong placement burns
// the clicked cell, deducts points (clamped at zero) and records a GameError.
// Either way the queue advances to the next player.
func (g *Game) Place(categoryID string) (Placement, error) {
	if g.phase != InProgress {
		return Placement{}, ErrNotInProgress
	}
	if g.awaiting {
		return Placement{}, ErrAwaitingRefill
	}
	cur, ok := g.Current()
	if !ok {
		return Placement{}, ErrAwaitingRefill
	}

	idx := -1
	for i, c := range g.cells {
		if c.Category.ID == categoryID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return Placement{}, fmt.Errorf("bingo: unknown category %q", categoryID)
	}
	if g.cells[idx].Filled {
		return Placement{}, fmt.Errorf("bingo: cell %q already filled", categoryID)
	}

	var out Placement
	if g.cells[idx].Category.Match(cur) {
		// Fill every unfilled cell this player satisfies in one action.
		for i := range g.cells {
			if !g.cells[i].Filled && g.cells[i].Category.Match(cur) {
				g.cells[i].Filled = true
				g.cells[i].Occupant = cur.Name
				out.CellsFilled++
			}
		}
		out.Correct = true
		g.score.Points += float64(pointsPerCell * out.CellsFilled)
		g.score.Correct += out.CellsFilled
		g.score.Streak++
		if g.score.Streak > g.score.BestStreak {
			g.score.BestStreak = g.score.Streak
		}
	} else {
		// The clicked cell is used up even though the player didn't match.
		g.cells[idx].Filled = true
		g.cells[idx].Occupant = cur.Name
		out.CellsFilled = 1
		g.score.Points -= wrongPlacePenalty
		if g.score.Points < 0 {
			g.score.Points = 0
		}
		g.score.Wrong++
		g.score.Streak = 0
		g.errors = append(g.errors, g.describeError(cur, g.cells[idx].Category.Title))
	}

	g.advance()
	if g.allFilled() {
		g.phase = Finished
	}
	return out, nil
}

// Skip advances to the next player without touching score or cells.
func (g *Game) Skip() error {
	if g.phase != InProgress {
		return ErrNotInProgress
	}
	if g.awaiting {
		return ErrAwaitingRefill
	}
	g.advance()
	return nil
}

// Tick consumes one countdown unit. When the budget reaches zero during an
// active session the game finishes regardless of unfilled cells.
func (g *Game) Tick() {
	if g.phase != InProgress {
		return
	}
	if g.countdown > 0 {
		g.countdown--
	}
	if g.countdown == 0 {
		g.phase = Finished
	}
}

// Summary returns the stats emission for the session so far.
func (g *Game) Summary() scoring.Summary {
	return scoring.Summary{
		TotalAnswered:       g.score.Answered(),
		AverageScorePercent: g.accuracyPercent(),
		BestStreak:          g.score.BestStreak,
	}
}

func (g *Game) accuracyPercent() int {
	total := g.score.Answered()
	if total == 0 {
		return 0
	}
	return (g.score.Correct*100 + total/2) / total
}

func (g *Game) advance() {
	g.queueIdx++
	if g.queueIdx >= len(g.queue) {
		g.awaiting = true
	}
}

func (g *Game) allFilled() bool {
	for _, c := range g.cells {
		if !c.Filled {
			return false
		}
	}
	return true
}

// describeError builds the "what you should have picked" hint: the titles of
// every category the player satisfies, or its raw fields when it satisfies
// none.
func (g *Game) describeError(p player.Player, attempted string) GameError {
	ge := GameError{PlayerName: p.Name, AttemptedCategory: attempted}
	for _, c := range g.cells {
		if c.Category.Match(p) {
			ge.CorrectCategories = append(ge.CorrectCategories, c.Category.Title)
		}
	}
	if len(ge.CorrectCategories) == 0 {
		if p.Nationality != "" {
			ge.CorrectCategories = append(ge.CorrectCategories, "Nacionalidad: "+p.Nationality)
		}
		if p.Team != "" {
			ge.CorrectCategories = append(ge.CorrectCategories, "Equipo: "+p.Team)
		}
		if p.Age != "" {
			ge.CorrectCategories = append(ge.CorrectCategories, "Edad: "+p.Age)
		}
	}
	return ge
}
