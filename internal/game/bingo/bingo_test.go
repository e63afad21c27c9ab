package bingo

import (
	"errors"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/category"
	"github.com/futbolquiz/futbolquiz/internal/player"
)

func rodri() player.Player {
	// Matches spain, manchester-city and prime.
	return player.Player{Name: "Rodri", Nationality: "Spain", Team: "Manchester City", Age: "29/06/1996 (29)"}
}

func unmatched() player.Player {
	return player.Player{Name: "Kaoru Mitoma", Nationality: "Japan", Team: "Brighton", Age: "28"}
}

func newGame(queue ...player.Player) *Game {
	g := New(category.All(), DefaultCountdown)
	g.Start(queue)
	return g
}

func TestPlace_CorrectFillsAllMatchingCells(t *testing.T) {
	g := newGame(rodri(), unmatched())

	res, err := g.Place("spain")
	if err != nil {
		t.Fatal(err)
	}
	if !res.Correct {
		t.Fatal("expected correct placement")
	}
	if res.CellsFilled != 3 {
		t.Errorf("CellsFilled = %d, want 3 (spain, manchester-city, prime)", res.CellsFilled)
	}

	s := g.Score()
	if s.Points != 30 {
		t.Errorf("points = %v, want 30", s.Points)
	}
	if s.Correct != 3 {
		t.Errorf("correct = %d, want 3", s.Correct)
	}

	for _, c := range g.Cells() {
		switch c.Category.ID {
		case "spain", "manchester-city", "prime":
			if !c.Filled || c.Occupant != "Rodri" {
				t.Errorf("cell %q should be filled by Rodri", c.Category.ID)
			}
		default:
			if c.Filled {
				t.Errorf("cell %q should be unfilled", c.Category.ID)
			}
		}
	}
}

func TestPlace_WrongBurnsCellAndClampsScore(t *testing.T) {
	g := newGame(unmatched(), rodri(), unmatched())

	// Japanese player into the spain cell: wrong.
	res, err := g.Place("spain")
	if err != nil {
		t.Fatal(err)
	}
	if res.Correct {
		t.Fatal("expected incorrect placement")
	}

	s := g.Score()
	if s.Points != 0 {
		t.Errorf("points = %v, want 0 (clamped, not negative)", s.Points)
	}
	if s.Wrong != 1 {
		t.Errorf("wrong = %d, want 1", s.Wrong)
	}

	// The cell is used up and cannot be retried even by a matching player.
	if _, err := g.Place("spain"); err == nil {
		t.Error("expected error placing into a burned cell")
	}
}

func TestPlace_WrongRecordsGameError(t *testing.T) {
	// Mitoma matches "young"? age 28 → prime. So placing into "england" is
	// wrong and the error should name the prime bracket.
	g := newGame(unmatched())

	if _, err := g.Place("england"); err != nil {
		t.Fatal(err)
	}

	errs := g.Errors()
	if len(errs) != 1 {
		t.Fatalf("expected 1 game error, got %d", len(errs))
	}
	ge := errs[0]
	if ge.PlayerName != "Kaoru Mitoma" || ge.AttemptedCategory != "Inglaterra" {
		t.Errorf("unexpected error record: %+v", ge)
	}
	if len(ge.CorrectCategories) != 1 || ge.CorrectCategories[0] != "25-30 años" {
		t.Errorf("CorrectCategories = %v, want [25-30 años]", ge.CorrectCategories)
	}
}

func TestPlace_NoMatchesFallsBackToRawFields(t *testing.T) {
	odd := player.Player{Name: "X", Nationality: "Japan", Team: "Brighton", Age: "28"}
	// Force the player out of every age bracket by making age unparseable
	// after Start (board predicates re-evaluate the raw string).
	odd.Age = "unknown"

	g := newGame(odd)
	if _, err := g.Place("england"); err != nil {
		t.Fatal(err)
	}

	ge := g.Errors()[0]
	want := []string{"Nacionalidad: Japan", "Equipo: Brighton", "Edad: unknown"}
	if len(ge.CorrectCategories) != len(want) {
		t.Fatalf("CorrectCategories = %v, want %v", ge.CorrectCategories, want)
	}
	for i := range want {
		if ge.CorrectCategories[i] != want[i] {
			t.Errorf("hint %d = %q, want %q", i, ge.CorrectCategories[i], want[i])
		}
	}
}

func TestCellsNeverUnfill(t *testing.T) {
	g := newGame(rodri(), unmatched(), rodri())

	filled := func() int {
		n := 0
		for _, c := range g.Cells() {
			if c.Filled {
				n++
			}
		}
		return n
	}

	prev := 0
	if _, err := g.Place("manchester-city"); err != nil {
		t.Fatal(err)
	}
	if filled() < prev {
		t.Fatal("fill count decreased")
	}
	prev = filled()

	if _, err := g.Place("france"); err != nil { // wrong placement
		t.Fatal(err)
	}
	if filled() < prev {
		t.Fatal("fill count decreased after wrong placement")
	}
}

func TestSkip_AdvancesWithoutScoring(t *testing.T) {
	g := newGame(rodri(), unmatched())

	if err := g.Skip(); err != nil {
		t.Fatal(err)
	}
	cur, ok := g.Current()
	if !ok || cur.Name != "Kaoru Mitoma" {
		t.Errorf("current = %v, want Mitoma", cur.Name)
	}
	if s := g.Score(); s.Points != 0 || s.Correct != 0 || s.Wrong != 0 {
		t.Errorf("skip changed score: %+v", s)
	}
}

func TestQueueExhaustion_RequestsRefill(t *testing.T) {
	g := newGame(rodri())

	if _, err := g.Place("spain"); err != nil {
		t.Fatal(err)
	}
	if !g.AwaitingRefill() {
		t.Fatal("expected refill request after queue exhaustion")
	}

	// Actions are rejected while loading.
	if _, err := g.Place("england"); !errors.Is(err, ErrAwaitingRefill) {
		t.Errorf("Place during refill: got %v, want ErrAwaitingRefill", err)
	}
	if err := g.Skip(); !errors.Is(err, ErrAwaitingRefill) {
		t.Errorf("Skip during refill: got %v, want ErrAwaitingRefill", err)
	}

	g.Refill([]player.Player{unmatched()})
	if g.AwaitingRefill() {
		t.Fatal("still awaiting refill after Refill")
	}
	if cur, ok := g.Current(); !ok || cur.Name != "Kaoru Mitoma" {
		t.Errorf("current after refill = %v", cur.Name)
	}
}

func TestCountdownExhaustion_Finishes(t *testing.T) {
	g := New(category.All(), 3)
	g.Start([]player.Player{rodri()})

	g.Tick()
	g.Tick()
	if g.Phase() != InProgress {
		t.Fatal("finished early")
	}
	g.Tick()
	if g.Phase() != Finished {
		t.Fatal("expected Finished at countdown zero")
	}

	// Ticks after Finished are no-ops.
	g.Tick()
	if g.Phase() != Finished {
		t.Fatal("phase changed after Finished")
	}
}

func TestRestart_ResetsEverything(t *testing.T) {
	g := newGame(unmatched(), rodri())
	if _, err := g.Place("spain"); err != nil { // wrong
		t.Fatal(err)
	}

	g.Restart([]player.Player{rodri()})
	if g.Phase() != InProgress {
		t.Fatal("expected InProgress after restart")
	}
	if s := g.Score(); s.Points != 0 || s.Wrong != 0 {
		t.Errorf("score not reset: %+v", s)
	}
	if len(g.Errors()) != 0 {
		t.Errorf("errors not cleared")
	}
	for _, c := range g.Cells() {
		if c.Filled {
			t.Errorf("cell %q still filled after restart", c.Category.ID)
		}
	}
	if g.TimeLeft() != DefaultCountdown {
		t.Errorf("countdown = %d, want %d", g.TimeLeft(), DefaultCountdown)
	}
}

func TestFullBoard_Finishes(t *testing.T) {
	cats := category.All()
	g := New(cats, DefaultCountdown)

	// One player per category, each matching only its own cell via a
	// generous queue of Rodris and friends. Easier: drive the board with
	// players matching many cells at once.
	queue := []player.Player{
		{Name: "Kane", Nationality: "England", Team: "Bayern", Age: "32"},                   // england, veteran
		{Name: "Rodri", Nationality: "Spain", Team: "Manchester City", Age: "29"},           // spain, mc, prime
		{Name: "Camavinga", Nationality: "France", Team: "Real Madrid", Age: "22"},          // france, rm, young
		{Name: "Gundogan", Nationality: "Germany", Team: "FC Barcelona", Age: "34"},         // germany, barcelona (veteran already filled)
		{Name: "Vitinha", Nationality: "Portugal", Team: "PSG", Age: "25"},                  // portugal (prime already filled)
		{Name: "Endrick", Nationality: "Brazil", Team: "Real Madrid", Age: "19"},            // brazil (rm, young already filled)
	}
	g.Start(queue)

	clicks := []string{"england", "spain", "france", "germany", "portugal", "brazil"}
	for _, id := range clicks {
		if _, err := g.Place(id); err != nil {
			t.Fatalf("place %s: %v", id, err)
		}
	}

	if g.Phase() != Finished {
		filled := 0
		for _, c := range g.Cells() {
			if c.Filled {
				filled++
			}
		}
		t.Fatalf("expected Finished with all 12 cells, got phase %v with %d filled", g.Phase(), filled)
	}
}
