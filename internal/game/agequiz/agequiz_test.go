package agequiz

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/player"
)

func pool(n int) []player.Player {
	ps := make([]player.Player, 0, n)
	for i := 0; i < n; i++ {
		ps = append(ps, player.Player{
			Name:        fmt.Sprintf("Player %d", i),
			Nationality: "Spain",
			Team:        "Betis",
			Age:         fmt.Sprintf("01/01/1990 (%d)", 20+i%15),
			PhotoURL:    "https://example.com/p.jpg",
		})
	}
	return ps
}

func TestStart_DrawsQuestionWithFourOptions(t *testing.T) {
	g := New(10, rand.New(rand.NewSource(1)))
	if err := g.Start(pool(20)); err != nil {
		t.Fatal(err)
	}

	q := g.Current()
	if q == nil {
		t.Fatal("no question drawn")
	}
	if len(q.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(q.Options))
	}

	hasActual := false
	seen := map[int]bool{}
	for _, o := range q.Options {
		if o == q.Actual {
			hasActual = true
		}
		if seen[o] {
			t.Errorf("duplicate option %d", o)
		}
		seen[o] = true
		if o < minOption || o > maxOption {
			t.Errorf("option %d outside [%d,%d]", o, minOption, maxOption)
		}
	}
	if !hasActual {
		t.Error("actual age missing from options")
	}
}

func TestEligibility(t *testing.T) {
	tests := []struct {
		name string
		p    player.Player
		want bool
	}{
		{"ok", player.Player{Age: "25", PhotoURL: "x"}, true},
		{"no photo", player.Player{Age: "25"}, false},
		{"too young", player.Player{Age: "16", PhotoURL: "x"}, false},
		{"too old", player.Player{Age: "45", PhotoURL: "x"}, false},
		{"unparseable", player.Player{Age: "??", PhotoURL: "x"}, false},
	}
	for _, tt := range tests {
		if got := eligibleForAgeQuiz(tt.p); got != tt.want {
			t.Errorf("%s: eligible = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestChoose_ScoresAndAdvances(t *testing.T) {
	g := New(2, rand.New(rand.NewSource(2)))
	if err := g.Start(pool(20)); err != nil {
		t.Fatal(err)
	}

	q := g.Current()
	pts, err := g.Choose(q.Actual)
	if err != nil {
		t.Fatal(err)
	}
	if pts != 10 {
		t.Errorf("exact guess earned %d, want 10", pts)
	}
	if g.Current() != nil {
		t.Error("question should clear after answering")
	}

	if err := g.Advance(); err != nil {
		t.Fatal(err)
	}
	q = g.Current()
	if _, err := g.Choose(q.Actual + 1); err != nil {
		t.Fatal(err)
	}

	if !g.Finished() {
		t.Error("expected finished after 2 questions")
	}
	if _, err := g.Choose(30); !errors.Is(err, ErrFinished) {
		t.Errorf("Choose after finish: got %v, want ErrFinished", err)
	}

	s := g.Score()
	if s.Points != 18 || s.Correct != 2 {
		t.Errorf("score = %+v, want 18 points / 2 correct", s)
	}
}

func TestChoose_ZeroScoreBreaksStreak(t *testing.T) {
	g := New(3, rand.New(rand.NewSource(3)))
	if err := g.Start(pool(20)); err != nil {
		t.Fatal(err)
	}

	q := g.Current()
	if _, err := g.Choose(q.Actual); err != nil {
		t.Fatal(err)
	}
	if g.Score().Streak != 1 {
		t.Fatalf("streak = %d, want 1", g.Score().Streak)
	}

	if err := g.Advance(); err != nil {
		t.Fatal(err)
	}
	q = g.Current()
	if _, err := g.Choose(q.Actual + 10); err != nil { // way off: 0 points
		t.Fatal(err)
	}
	if g.Score().Streak != 0 {
		t.Errorf("streak = %d, want 0 after zero-point answer", g.Score().Streak)
	}
	if g.Score().BestStreak != 1 {
		t.Errorf("best streak = %d, want 1", g.Score().BestStreak)
	}
}

func TestPoolExhaustion(t *testing.T) {
	g := New(10, rand.New(rand.NewSource(4)))
	err := g.Start(pool(1))
	if err != nil {
		t.Fatal(err)
	}
	q := g.Current()
	if _, err := g.Choose(q.Actual); err != nil {
		t.Fatal(err)
	}

	if err := g.Advance(); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("Advance on empty pool: got %v, want ErrPoolExhausted", err)
	}

	if err := g.Refill(pool(20)); err != nil {
		t.Fatal(err)
	}
	if g.Current() == nil {
		t.Error("no question after refill")
	}
}

func TestSummary(t *testing.T) {
	g := New(2, rand.New(rand.NewSource(5)))
	if err := g.Start(pool(20)); err != nil {
		t.Fatal(err)
	}

	q := g.Current()
	if _, err := g.Choose(q.Actual); err != nil {
		t.Fatal(err)
	}

	sum := g.Summary()
	if sum.TotalAnswered != 1 {
		t.Errorf("TotalAnswered = %d, want 1", sum.TotalAnswered)
	}
	if sum.AverageScorePercent != 100 {
		t.Errorf("AverageScorePercent = %d, want 100", sum.AverageScorePercent)
	}
}
