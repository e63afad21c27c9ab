package category

import (
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/player"
)

func TestAll_FixedOrder(t *testing.T) {
	ids := []string{
		"england", "spain", "france", "germany", "brazil", "portugal",
		"manchester-city", "real-madrid", "barcelona",
		"young", "prime", "veteran",
	}

	cats := All()
	if len(cats) != len(ids) {
		t.Fatalf("expected %d categories, got %d", len(ids), len(cats))
	}
	for i, c := range cats {
		if c.ID != ids[i] {
			t.Errorf("category %d: got %q, want %q", i, c.ID, ids[i])
		}
	}
}

func TestClassify_MultipleMatches(t *testing.T) {
	p := player.Player{
		Name:        "Rodri",
		Nationality: "Spain",
		Team:        "Manchester City",
		Age:         "29/06/1996 (29)",
	}

	matched := Classify(p, All())
	want := map[string]bool{"spain": true, "manchester-city": true, "prime": true}
	if len(matched) != len(want) {
		t.Fatalf("got %d matches, want %d", len(matched), len(want))
	}
	for _, c := range matched {
		if !want[c.ID] {
			t.Errorf("unexpected match %q", c.ID)
		}
	}
}

func TestClassify_NoMatches(t *testing.T) {
	p := player.Player{Name: "X", Nationality: "Japan", Team: "Vissel Kobe", Age: "27"}
	// Age 27 falls into "prime"; use an unclassifiable player instead.
	p.Age = "unknown"
	if got := Classify(p, All()); len(got) != 0 {
		t.Errorf("expected no matches, got %d", len(got))
	}
}

func TestClassify_Idempotent(t *testing.T) {
	p := player.Player{Name: "Vini", Nationality: "Brazil", Team: "Real Madrid", Age: "22"}
	first := Classify(p, All())
	second := Classify(p, All())

	if len(first) != len(second) {
		t.Fatalf("classification not stable: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("match %d differs: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}

func TestAgeBrackets_MutuallyExclusive(t *testing.T) {
	ages := []string{"17", "24", "25", "28", "30", "31", "40"}
	for _, age := range ages {
		p := player.Player{Name: "X", Nationality: "Japan", Team: "Y", Age: age}
		brackets := 0
		for _, c := range Classify(p, All()) {
			if c.Kind == KindAge {
				brackets++
			}
		}
		if brackets != 1 {
			t.Errorf("age %s matched %d brackets, want exactly 1", age, brackets)
		}
	}
}

func TestNationalityAccentVariants(t *testing.T) {
	for _, nat := range []string{"España", "Espana", "SPAIN", "español"} {
		p := player.Player{Name: "X", Nationality: nat, Team: "Y", Age: "20"}
		found := false
		for _, c := range Classify(p, All()) {
			if c.ID == "spain" {
				found = true
			}
		}
		if !found {
			t.Errorf("nationality %q did not match spain", nat)
		}
	}
}
