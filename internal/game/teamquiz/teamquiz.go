// Package teamquiz implements the team-grouping quiz: from a grid of
// players, select the ones that share the round's hidden target team.
package teamquiz

import (
	"errors"
	"math/rand"

	"github.com/futbolquiz/futbolquiz/internal/player"
	"github.com/futbolquiz/futbolquiz/internal/scoring"
)

// DefaultQuestions is the number of rounds per session.
const DefaultQuestions = 10

// Each round shows up to roundSize players and needs at least minRoundSize
// to be playable.
const (
	roundSize    = 6
	minRoundSize = 6
	drawSize     = 12
)

// NoneTeam marks a round where no two displayed players share a team; the
// correct submission is any selection that does NOT all share one team.
const NoneTeam = "ninguno"

var (
	// ErrPoolExhausted means too few unused players remain for a round.
	ErrPoolExhausted = errors.New("teamquiz: not enough players left in pool")

	// ErrNoQuestion is returned when acting with no active round.
	ErrNoQuestion = errors.New("teamquiz: no active round")

	// ErrFinished is returned for actions after the session completed.
	ErrFinished = errors.New("teamquiz: session finished")

	// ErrTooFewSelected rejects submissions with fewer than two players.
	ErrTooFewSelected = errors.New("teamquiz: select at least two players")
)

// Question is one team-grouping round.
type Question struct {
	Players    []player.Player
	TargetTeam string // NoneTeam when no pair shares a team
}

// Game is the team quiz state machine.
type Game struct {
	rng      *rand.Rand
	total    int
	pool     []player.Player
	used     map[string]bool
	cur      *Question
	selected map[string]bool
	answered int
	finished bool
	score    scoring.State
	lastOK   bool
}

// New creates a game of total rounds drawing randomness from rng.
func New(total int, rng *rand.Rand) *Game {
	if total <= 0 {
		total = DefaultQuestions
	}
	return &Game{total: total, rng: rng, used: make(map[string]bool)}
}

// Start loads the player pool and draws the first round.
func (g *Game) Start(pool []player.Player) error {
	g.pool = pool
	return g.nextQuestion()
}

// Refill extends the pool after exhaustion and draws the pending round.
func (g *Game) Refill(pool []player.Player) error {
	g.pool = pool
	g.used = make(map[string]bool)
	if g.cur == nil && !g.finished {
		return g.nextQuestion()
	}
	return nil
}

// Restart clears all state and begins a fresh session over pool.
func (g *Game) Restart(pool []player.Player) error {
	g.used = make(map[string]bool)
	g.cur = nil
	g.selected = nil
	g.answered = 0
	g.finished = false
	g.score.Reset()
	g.lastOK = false
	return g.Start(pool)
}

// Current returns the active round, or nil between rounds.
func (g *Game) Current() *Question { return g.cur }

// Finished reports whether the session is over.
func (g *Game) Finished() bool { return g.finished }

// Score returns the running score state.
func (g *Game) Score() scoring.State { return g.score }

// LastOutcome reports whether the previous submission was correct.
func (g *Game) LastOutcome() bool { return g.lastOK }

// Progress returns answered and total round counts.
func (g *Game) Progress() (answered, total int) { return g.answered, g.total }

// Toggle flips the selection state of the given displayed player.
func (g *Game) Toggle(p player.Player) error {
	if g.finished {
		return ErrFinished
	}
	if g.cur == nil {
		return ErrNoQuestion
	}
	if g.selected[p.Key()] {
		delete(g.selected, p.Key())
	} else {
		g.selected[p.Key()] = true
	}
	return nil
}

// IsSelected reports whether the given player is currently selected.
func (g *Game) IsSelected(p player.Player) bool {
	return g.selected[p.Key()]
}

// SelectedCount returns the number of selected players.
func (g *Game) SelectedCount() int { return len(g.selected) }

// Submit judges the current selection. Correct means every selected player
// shares the target team — or, in a none-round, that the selection does not
// all share a single team.
func (g *Game) Submit() (correct bool, err error) {
	if g.finished {
		return false, ErrFinished
	}
	if g.cur == nil {
		return false, ErrNoQuestion
	}
	if len(g.selected) < 2 {
		return false, ErrTooFewSelected
	}

	teams := make(map[string]bool)
	for _, p := range g.cur.Players {
		if g.selected[p.Key()] {
			teams[p.Team] = true
		}
	}
	allSame := len(teams) == 1

	if g.cur.TargetTeam == NoneTeam {
		correct = !allSame
	} else {
		correct = allSame && teams[g.cur.TargetTeam]
	}

	if correct {
		g.score.Record(1)
	} else {
		g.score.Record(0)
	}
	g.lastOK = correct
	g.answered++
	g.cur = nil
	g.selected = nil

	if g.answered >= g.total {
		g.finished = true
	}
	return correct, nil
}

// Advance draws the next round after feedback has been shown.
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
	var fresh []player.Player
	for _, p := range g.pool {
		if !g.used[p.Key()] && p.Name != "" && p.Team != "" {
			fresh = append(fresh, p)
		}
	}
	if len(fresh) < minRoundSize {
		return ErrPoolExhausted
	}

	g.rng.Shuffle(len(fresh), func(i, j int) { fresh[i], fresh[j] = fresh[j], fresh[i] })
	if len(fresh) > drawSize {
		fresh = fresh[:drawSize]
	}

	// Find a team with at least two players to serve as the target.
	byTeam := make(map[string][]player.Player)
	for _, p := range fresh {
		byTeam[p.Team] = append(byTeam[p.Team], p)
	}
	target := ""
	var targetPlayers []player.Player
	for _, p := range fresh { // iterate fresh for deterministic pick order
		if target != "" {
			break
		}
		if ps := byTeam[p.Team]; len(ps) >= 2 {
			target = p.Team
			targetPlayers = ps[:2]
		}
	}

	var shown []player.Player
	if target == "" {
		shown = fresh[:roundSize]
		target = NoneTeam
	} else {
		shown = append(shown, targetPlayers...)
		for _, p := range fresh {
			if len(shown) >= roundSize {
				break
			}
			if p.Team != target {
				shown = append(shown, p)
			}
		}
		// Top up from the target team's extras when other teams run short.
		for _, p := range byTeam[target][2:] {
			if len(shown) >= roundSize {
				break
			}
			shown = append(shown, p)
		}
		g.rng.Shuffle(len(shown), func(i, j int) { shown[i], shown[j] = shown[j], shown[i] })
	}

	for _, p := range shown {
		g.used[p.Key()] = true
	}
	g.cur = &Question{Players: shown, TargetTeam: target}
	g.selected = make(map[string]bool)
	return nil
}
