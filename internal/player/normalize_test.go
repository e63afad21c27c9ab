package player

import "testing"

func TestParseAge(t *testing.T) {
	tests := []struct {
		raw  string
		want int
		ok   bool
	}{
		{"06/02/1995 (30)", 30, true},
		{"24/01/1996 (29)", 29, true},
		{"(22)", 22, true},
		{"22", 22, true},
		{"  22  ", 22, true},
		{"age 22 apprx", 22, true},
		{"06/02/1995", 6, true},
		{"", 0, false},
		{"unknown", 0, false},
		{"   ", 0, false},
	}

	for _, tt := range tests {
		got, ok := ParseAge(tt.raw)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseAge(%q) = (%d, %v), want (%d, %v)", tt.raw, got, ok, tt.want, tt.ok)
		}
	}
}

func TestParseAge_SameAgeAllForms(t *testing.T) {
	forms := []string{"06/02/1995 (30)", "30", " 30 ", "(30)"}
	for _, f := range forms {
		got, ok := ParseAge(f)
		if !ok || got != 30 {
			t.Errorf("ParseAge(%q) = (%d, %v), want (30, true)", f, got, ok)
		}
	}
}

func TestNormalizeNationality(t *testing.T) {
	a := NormalizeNationality("España")
	b := NormalizeNationality("Espana")
	c := NormalizeNationality("ESPAÑA ")
	if a != "espana" || a != b || a != c {
		t.Errorf("normalized forms differ: %q %q %q", a, b, c)
	}

	if got := NormalizeNationality(""); got != "" {
		t.Errorf("NormalizeNationality(\"\") = %q, want empty", got)
	}
}

func TestNationalityMatches(t *testing.T) {
	tests := []struct {
		nationality string
		variants    []string
		want        bool
	}{
		{"Spain", []string{"spain", "espana"}, true},
		{"España", []string{"espana"}, true},
		{"french-algerian", []string{"french"}, true},
		{"Brazil", []string{"spain"}, false},
		{"", []string{"spain"}, false},
	}

	for _, tt := range tests {
		p := Player{Nationality: tt.nationality}
		if got := NationalityMatches(p, tt.variants); got != tt.want {
			t.Errorf("NationalityMatches(%q, %v) = %v, want %v", tt.nationality, tt.variants, got, tt.want)
		}
	}
}

func TestNormalizeFreeText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Kylian Mbappé", "kylian mbappe"},
		{"O'Neil!", "oneil"},
		{"  N'Golo Kanté  ", "ngolo kante"},
		{"Müller (FC Bayern)", "muller fc bayern"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := NormalizeFreeText(tt.raw); got != tt.want {
			t.Errorf("NormalizeFreeText(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestPlayerValid(t *testing.T) {
	valid := Player{Name: "Rodri", Nationality: "Spain", Team: "Manchester City", Age: "29/06/1996 (29)"}
	if !valid.Valid() {
		t.Error("expected valid player")
	}

	tests := []struct {
		name string
		p    Player
	}{
		{"empty name", Player{Nationality: "Spain", Team: "X", Age: "22"}},
		{"blank team", Player{Name: "A", Nationality: "Spain", Team: "  ", Age: "22"}},
		{"unparseable age", Player{Name: "A", Nationality: "Spain", Team: "X", Age: "unknown"}},
		{"empty age", Player{Name: "A", Nationality: "Spain", Team: "X"}},
	}

	for _, tt := range tests {
		if tt.p.Valid() {
			t.Errorf("%s: expected invalid", tt.name)
		}
	}
}
