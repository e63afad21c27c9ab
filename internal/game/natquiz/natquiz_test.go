package natquiz

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/player"
)

func pool() []player.Player {
	nats := []string{"Spain", "France", "Germany", "Brazil", "Portugal", "England"}
	var ps []player.Player
	for i := 0; i < 18; i++ {
		ps = append(ps, player.Player{
			Name:        fmt.Sprintf("Player %d", i),
			Nationality: nats[i%len(nats)],
			Team:        "Team",
			Age:         "25",
			PhotoURL:    "https://example.com/p.jpg",
		})
	}
	return ps
}

func TestStart_QuestionShape(t *testing.T) {
	g := New(10, rand.New(rand.NewSource(1)))
	if err := g.Start(pool()); err != nil {
		t.Fatal(err)
	}

	q := g.Current()
	if q == nil {
		t.Fatal("no question drawn")
	}
	if len(q.Options) != 4 {
		t.Fatalf("got %d options, want 4", len(q.Options))
	}

	hasAnswer := false
	seen := map[string]bool{}
	for _, o := range q.Options {
		if o == q.Answer {
			hasAnswer = true
		}
		if seen[o] {
			t.Errorf("duplicate option %q", o)
		}
		seen[o] = true
	}
	if !hasAnswer {
		t.Error("correct nationality missing from options")
	}
}

func TestChoose_ExactMatch(t *testing.T) {
	g := New(2, rand.New(rand.NewSource(2)))
	if err := g.Start(pool()); err != nil {
		t.Fatal(err)
	}

	q := g.Current()
	ok, err := g.Choose(q.Answer)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Error("correct answer judged wrong")
	}
	if g.Score().Streak != 1 {
		t.Errorf("streak = %d, want 1", g.Score().Streak)
	}

	if err := g.Advance(); err != nil {
		t.Fatal(err)
	}
	q = g.Current()
	wrong := "Atlantis"
	ok, err = g.Choose(wrong)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("wrong answer judged correct")
	}
	if g.Score().Streak != 0 {
		t.Errorf("streak = %d, want 0", g.Score().Streak)
	}

	if !g.Finished() {
		t.Error("expected finished after 2 questions")
	}
	if _, err := g.Choose("Spain"); !errors.Is(err, ErrFinished) {
		t.Errorf("got %v, want ErrFinished", err)
	}
}

func TestNoPhotoPlayersExcluded(t *testing.T) {
	ps := []player.Player{
		{Name: "A", Nationality: "Spain", Team: "X", Age: "25"},
		{Name: "B", Nationality: "France", Team: "X", Age: "25", PhotoURL: "y"},
	}
	g := New(10, rand.New(rand.NewSource(3)))
	if err := g.Start(ps); err != nil {
		t.Fatal(err)
	}
	if got := g.Current().Player.Name; got != "B" {
		t.Errorf("drew %q, want the only player with a photo", got)
	}
}

func TestPoolExhaustion_Refill(t *testing.T) {
	ps := pool()[:1]
	g := New(10, rand.New(rand.NewSource(4)))
	if err := g.Start(ps); err != nil {
		t.Fatal(err)
	}
	if _, err := g.Choose(g.Current().Answer); err != nil {
		t.Fatal(err)
	}
	if err := g.Advance(); !errors.Is(err, ErrPoolExhausted) {
		t.Fatalf("got %v, want ErrPoolExhausted", err)
	}
	if err := g.Refill(pool()); err != nil {
		t.Fatal(err)
	}
	if g.Current() == nil {
		t.Error("no question after refill")
	}
}

func TestSummary_AverageIsPercentCorrect(t *testing.T) {
	g := New(4, rand.New(rand.NewSource(5)))
	if err := g.Start(pool()); err != nil {
		t.Fatal(err)
	}

	// Two right, one wrong.
	for i, right := range []bool{true, true, false} {
		q := g.Current()
		choice := q.Answer
		if !right {
			choice = "Wrong"
		}
		if _, err := g.Choose(choice); err != nil {
			t.Fatalf("question %d: %v", i, err)
		}
		if err := g.Advance(); err != nil {
			t.Fatalf("advance %d: %v", i, err)
		}
	}

	sum := g.Summary()
	if sum.TotalAnswered != 3 {
		t.Errorf("TotalAnswered = %d, want 3", sum.TotalAnswered)
	}
	if sum.AverageScorePercent != 67 {
		t.Errorf("AverageScorePercent = %d, want 67", sum.AverageScorePercent)
	}
}
