package teamquiz

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/player"
)

func pairPool() []player.Player {
	return []player.Player{
		{Name: "Rodri", Nationality: "Spain", Team: "Manchester City", Age: "29"},
		{Name: "Phil Foden", Nationality: "England", Team: "Manchester City", Age: "25"},
		{Name: "Vinicius Junior", Nationality: "Brazil", Team: "Real Madrid", Age: "25"},
		{Name: "Harry Kane", Nationality: "England", Team: "Bayern Munich", Age: "32"},
		{Name: "Lamine Yamal", Nationality: "Spain", Team: "Barcelona", Age: "18"},
		{Name: "Vitinha", Nationality: "Portugal", Team: "PSG", Age: "25"},
		{Name: "Florian Wirtz", Nationality: "Germany", Team: "Liverpool", Age: "22"},
	}
}

func singletonPool() []player.Player {
	return []player.Player{
		{Name: "Rodri", Nationality: "Spain", Team: "Manchester City", Age: "29"},
		{Name: "Vinicius Junior", Nationality: "Brazil", Team: "Real Madrid", Age: "25"},
		{Name: "Harry Kane", Nationality: "England", Team: "Bayern Munich", Age: "32"},
		{Name: "Lamine Yamal", Nationality: "Spain", Team: "Barcelona", Age: "18"},
		{Name: "Vitinha", Nationality: "Portugal", Team: "PSG", Age: "25"},
		{Name: "Florian Wirtz", Nationality: "Germany", Team: "Liverpool", Age: "22"},
	}
}

func TestRoundHasTargetTeamPair(t *testing.T) {
	g := New(3, rand.New(rand.NewSource(1)))
	if err := g.Start(pairPool()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	q := g.Current()
	if q == nil {
		t.Fatal("expected an active round")
	}
	if q.TargetTeam == NoneTeam {
		t.Fatalf("pool has a team pair, got a none round")
	}
	n := 0
	for _, p := range q.Players {
		if p.Team == q.TargetTeam {
			n++
		}
	}
	if n < 2 {
		t.Fatalf("target team %q has %d shown players, want >= 2", q.TargetTeam, n)
	}
	if len(q.Players) != 6 {
		t.Fatalf("shown players = %d, want 6", len(q.Players))
	}
}

func TestNoneRoundWhenAllTeamsDistinct(t *testing.T) {
	g := New(1, rand.New(rand.NewSource(2)))
	if err := g.Start(singletonPool()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	q := g.Current()
	if q.TargetTeam != NoneTeam {
		t.Fatalf("TargetTeam = %q, want %q", q.TargetTeam, NoneTeam)
	}

	// Any mixed-team selection is correct in a none round.
	if err := g.Toggle(q.Players[0]); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := g.Toggle(q.Players[1]); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	ok, err := g.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !ok {
		t.Fatal("mixed selection in a none round should be correct")
	}
}

func TestSubmitRequiresTwoSelections(t *testing.T) {
	g := New(2, rand.New(rand.NewSource(3)))
	if err := g.Start(pairPool()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if _, err := g.Submit(); !errors.Is(err, ErrTooFewSelected) {
		t.Fatalf("empty submit err = %v, want ErrTooFewSelected", err)
	}
	if err := g.Toggle(g.Current().Players[0]); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if _, err := g.Submit(); !errors.Is(err, ErrTooFewSelected) {
		t.Fatalf("single submit err = %v, want ErrTooFewSelected", err)
	}
}

func bigPool() []player.Player {
	base := pairPool()
	return append(base,
		player.Player{Name: "Jude Bellingham", Nationality: "England", Team: "Real Madrid", Age: "22"},
		player.Player{Name: "Pedri", Nationality: "Spain", Team: "Barcelona", Age: "22"},
		player.Player{Name: "Jamal Musiala", Nationality: "Germany", Team: "Bayern Munich", Age: "22"},
		player.Player{Name: "Achraf Hakimi", Nationality: "Morocco", Team: "PSG", Age: "26"},
		player.Player{Name: "Mohamed Salah", Nationality: "Egypt", Team: "Liverpool", Age: "33"},
		player.Player{Name: "Erling Haaland", Nationality: "Norway", Team: "Manchester City", Age: "25"},
		player.Player{Name: "Bukayo Saka", Nationality: "England", Team: "Arsenal", Age: "24"},
	)
}

func TestCorrectAndWrongSelections(t *testing.T) {
	g := New(2, rand.New(rand.NewSource(4)))
	if err := g.Start(bigPool()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	q := g.Current()

	// Select exactly the target pair.
	for _, p := range q.Players {
		if p.Team == q.TargetTeam {
			if err := g.Toggle(p); err != nil {
				t.Fatalf("Toggle: %v", err)
			}
		}
	}
	ok, err := g.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if !ok {
		t.Fatal("target pair should be correct")
	}
	if got := g.Score().Points; got != 1 {
		t.Fatalf("Points = %v, want 1", got)
	}

	if err := g.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	q = g.Current()

	// Select two players from different teams in a targeted round.
	var picked []player.Player
	seen := map[string]bool{}
	for _, p := range q.Players {
		if !seen[p.Team] {
			seen[p.Team] = true
			picked = append(picked, p)
		}
		if len(picked) == 2 {
			break
		}
	}
	for _, p := range picked {
		if err := g.Toggle(p); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
	}
	ok, err = g.Submit()
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if q.TargetTeam != NoneTeam && ok {
		t.Fatal("mixed-team selection should be wrong in a targeted round")
	}
	if !g.Finished() {
		t.Fatal("expected session to finish after two rounds")
	}
	if _, err := g.Submit(); !errors.Is(err, ErrFinished) {
		t.Fatalf("post-finish submit err = %v, want ErrFinished", err)
	}
}

func TestToggleFlipsSelection(t *testing.T) {
	g := New(1, rand.New(rand.NewSource(5)))
	if err := g.Start(pairPool()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	p := g.Current().Players[0]
	if g.IsSelected(p) {
		t.Fatal("fresh round should have no selections")
	}
	if err := g.Toggle(p); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if !g.IsSelected(p) || g.SelectedCount() != 1 {
		t.Fatal("player should be selected after toggle")
	}
	if err := g.Toggle(p); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if g.IsSelected(p) || g.SelectedCount() != 0 {
		t.Fatal("player should be deselected after second toggle")
	}
}

func TestPoolExhaustionAndRefill(t *testing.T) {
	g := New(3, rand.New(rand.NewSource(6)))
	if err := g.Start(pairPool()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	for _, p := range g.Current().Players[:2] {
		if err := g.Toggle(p); err != nil {
			t.Fatalf("Toggle: %v", err)
		}
	}
	if _, err := g.Submit(); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	// Only one unused player remains, so the next draw must fail.
	if err := g.Advance(); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("Advance err = %v, want ErrPoolExhausted", err)
	}
	if err := g.Refill(pairPool()); err != nil {
		t.Fatalf("Refill: %v", err)
	}
	if g.Current() == nil {
		t.Fatal("expected a round after refill")
	}
}
