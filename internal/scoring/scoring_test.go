package scoring

import (
	"testing"

	"github.com/futbolquiz/futbolquiz/internal/player"
)

func TestExactScore(t *testing.T) {
	tests := []struct {
		choice, target string
		want           int
	}{
		{"Spain", "Spain", 1},
		{" Spain ", "Spain", 1},
		{"spain", "Spain", 0},
		{"France", "Spain", 0},
		{"", "", 1},
	}
	for _, tt := range tests {
		if got := ExactScore(tt.choice, tt.target); got != tt.want {
			t.Errorf("ExactScore(%q, %q) = %d, want %d", tt.choice, tt.target, got, tt.want)
		}
	}
}

func TestAgeScore_StepTable(t *testing.T) {
	actual := 25
	tests := []struct {
		guess, want int
	}{
		{25, 10},
		{24, 8},
		{23, 6},
		{22, 4},
		{20, 2},
		{19, 0},
		{26, 8},
		{28, 4},
		{30, 2},
		{31, 0},
	}
	for _, tt := range tests {
		if got := AgeScore(tt.guess, actual); got != tt.want {
			t.Errorf("AgeScore(%d, %d) = %d, want %d", tt.guess, actual, got, tt.want)
		}
	}
}

func TestFreeTextScore_RatioLadder(t *testing.T) {
	tests := []struct {
		found, total int
		want         float64
	}{
		{7, 10, 1.0},
		{10, 10, 1.0},
		{5, 10, 0.8},
		{6, 10, 0.8},
		{3, 10, 0.5},
		{4, 10, 0.5},
		{1, 10, 0.2},
		{2, 10, 0.2},
		{0, 10, 0},
		{0, 0, 0},
	}
	for _, tt := range tests {
		if got := FreeTextScore(tt.found, tt.total); got != tt.want {
			t.Errorf("FreeTextScore(%d, %d) = %v, want %v", tt.found, tt.total, got, tt.want)
		}
	}
}

func TestSuggest(t *testing.T) {
	answers := []string{
		"Kylian Mbappé", "Erling Haaland", "Harry Kane", "Mohamed Salah",
		"Vinícius Júnior", "Victor Osimhen", "Lautaro Martínez", "Viktor Gyökeres",
	}
	norm := player.NormalizeFreeText

	// Too-short input yields nothing.
	if got := Suggest("v", answers, nil, norm); got != nil {
		t.Errorf("single-char input: got %v, want nil", got)
	}

	// Accent-insensitive substring match, original order, capped at 5.
	got := Suggest("vi", answers, nil, norm)
	want := []string{"Vinícius Júnior", "Victor Osimhen", "Viktor Gyökeres"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("suggestion %d: got %q, want %q", i, got[i], want[i])
		}
	}

	// Already-found answers are excluded.
	got = Suggest("vi", answers, []string{"Vinícius Júnior"}, norm)
	if len(got) != 2 || got[0] != "Victor Osimhen" {
		t.Errorf("found exclusion failed: %v", got)
	}
}

func TestSuggest_Cap(t *testing.T) {
	answers := []string{"aa1", "aa2", "aa3", "aa4", "aa5", "aa6", "aa7"}
	got := Suggest("aa", answers, nil, player.NormalizeFreeText)
	if len(got) != MaxSuggestions {
		t.Errorf("got %d suggestions, want %d", len(got), MaxSuggestions)
	}
}

func TestState_Record(t *testing.T) {
	var s State
	s.Record(1)
	s.Record(1)
	s.Record(0)
	s.Record(1)

	if s.Correct != 3 || s.Wrong != 1 {
		t.Errorf("counts = %d/%d, want 3/1", s.Correct, s.Wrong)
	}
	if s.Streak != 1 || s.BestStreak != 2 {
		t.Errorf("streak = %d best %d, want 1 best 2", s.Streak, s.BestStreak)
	}
	if s.Answered() != 4 {
		t.Errorf("Answered() = %d, want 4", s.Answered())
	}
}

func TestState_RecordFreeText_StreakThreshold(t *testing.T) {
	var s State
	s.RecordFreeText(1.0)
	s.RecordFreeText(0.8)
	if s.Streak != 2 {
		t.Errorf("streak = %d, want 2", s.Streak)
	}

	// 0.5 is partial credit but breaks the streak.
	s.RecordFreeText(0.5)
	if s.Streak != 0 {
		t.Errorf("streak = %d, want 0 after sub-threshold score", s.Streak)
	}
	if s.Correct != 3 {
		t.Errorf("correct = %d, want 3 (partial credit still counts)", s.Correct)
	}
}

func TestState_Summarize(t *testing.T) {
	var s State
	s.Record(10)
	s.Record(8)
	s.Record(0)

	sum := s.Summarize(10)
	if sum.TotalAnswered != 3 {
		t.Errorf("TotalAnswered = %d, want 3", sum.TotalAnswered)
	}
	if sum.AverageScorePercent != 60 {
		t.Errorf("AverageScorePercent = %d, want 60", sum.AverageScorePercent)
	}
}
