package sampler

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/category"
	"github.com/futbolquiz/futbolquiz/internal/player"
)

func newRng() *rand.Rand {
	return rand.New(rand.NewSource(42))
}

func validPlayer(name, nat, team, age string) player.Player {
	return player.Player{Name: name, Nationality: nat, Team: team, Age: age}
}

func TestSample_EmptyPool(t *testing.T) {
	_, err := Sample(nil, 12, category.All(), newRng())
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool, got %v", err)
	}

	// A pool of only invalid players is just as empty.
	invalid := []player.Player{
		{Name: "A", Nationality: "Spain", Team: "X"},
		{Name: "", Nationality: "Spain", Team: "X", Age: "22"},
	}
	_, err = Sample(invalid, 12, category.All(), newRng())
	if !errors.Is(err, ErrEmptyPool) {
		t.Fatalf("expected ErrEmptyPool for all-invalid pool, got %v", err)
	}
}

func TestSample_BoundedAndUnique(t *testing.T) {
	var pool []player.Player
	for _, nat := range []string{"England", "Spain", "France", "Germany", "Brazil", "Portugal"} {
		for i := 0; i < 10; i++ {
			pool = append(pool, validPlayer(nat+string(rune('A'+i)), nat, "Team "+nat, "27"))
		}
	}
	// Duplicate every record to exercise dedup.
	pool = append(pool, pool...)

	got, err := Sample(pool, 12, category.All(), newRng())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) > 12 {
		t.Errorf("selected %d players, want <= 12", len(got))
	}
	seen := make(map[string]bool)
	for _, p := range got {
		if seen[p.Key()] {
			t.Errorf("duplicate player %s / %s", p.Name, p.Team)
		}
		seen[p.Key()] = true
	}
}

func TestSample_CategoryRepresentation(t *testing.T) {
	cats := category.All()

	// Build a pool where every category has plenty of candidates.
	var pool []player.Player
	nats := map[string]string{
		"england": "England", "spain": "Spain", "france": "France",
		"germany": "Germany", "brazil": "Brazil", "portugal": "Portugal",
	}
	for id, nat := range nats {
		for i := 0; i < 6; i++ {
			pool = append(pool, validPlayer(id+string(rune('a'+i)), nat, "Team "+id, "27"))
		}
	}
	teams := map[string]string{"mc": "Manchester City", "rm": "Real Madrid", "ba": "FC Barcelona"}
	for id, team := range teams {
		for i := 0; i < 6; i++ {
			pool = append(pool, validPlayer(id+string(rune('a'+i)), "Japan", team, "27"))
		}
	}
	for i := 0; i < 6; i++ {
		pool = append(pool, validPlayer("young"+string(rune('a'+i)), "Japan", "Ajax", "20"))
		pool = append(pool, validPlayer("prime"+string(rune('a'+i)), "Japan", "Ajax", "27"))
		pool = append(pool, validPlayer("vet"+string(rune('a'+i)), "Japan", "Ajax", "33"))
	}

	got, err := Sample(pool, 24, cats, newRng())
	if err != nil {
		t.Fatal(err)
	}

	// Every category should have at least one representative.
	for _, c := range cats {
		found := false
		for _, p := range got {
			if c.Match(p) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("category %q has no representative", c.ID)
		}
	}
}

func TestSample_TopUpFromRemainder(t *testing.T) {
	// Only one category (spain) has candidates; the rest of the target is
	// filled from unbucketed players.
	var pool []player.Player
	pool = append(pool, validPlayer("S1", "Spain", "Valencia", "27"))
	for i := 0; i < 20; i++ {
		pool = append(pool, validPlayer("J"+string(rune('A'+i)), "Japan", "Kashima", "27"))
	}

	got, err := Sample(pool, 10, category.All(), newRng())
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 10 {
		t.Errorf("selected %d players, want 10", len(got))
	}
}

func TestSample_Deterministic(t *testing.T) {
	var pool []player.Player
	for i := 0; i < 30; i++ {
		pool = append(pool, validPlayer("P"+string(rune('A'+i)), "Spain", "Betis", "27"))
	}

	a, err := Sample(pool, 12, category.All(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}
	b, err := Sample(pool, 12, category.All(), rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatal(err)
	}

	if len(a) != len(b) {
		t.Fatalf("lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Name != b[i].Name {
			t.Errorf("position %d differs: %s vs %s", i, a[i].Name, b[i].Name)
		}
	}
}
