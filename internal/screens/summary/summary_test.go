package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/futbolquiz/futbolquiz/internal/scoring"
)

func testResult() Result {
	return Result{
		Mode:     "natquiz",
		Summary:  scoring.Summary{TotalAnswered: 10, AverageScorePercent: 70, BestStreak: 4},
		Duration: 3 * time.Minute,
		Details: []string{
			"Messi: elegiste Brasil, era Argentina",
		},
	}
}

func TestSummaryScreen_Title(t *testing.T) {
	s := New(testResult())
	if s.Title() != "Resumen" {
		t.Errorf("Title = %q, want %q", s.Title(), "Resumen")
	}
}

func TestSummaryScreen_Display(t *testing.T) {
	s := New(testResult())
	view := s.View(80, 24)
	if view == "" {
		t.Error("expected non-empty summary view")
	}
	if !strings.Contains(view, "Mejor racha") {
		t.Error("expected best streak line in view")
	}
	if !strings.Contains(view, "Messi") {
		t.Error("expected review details in view")
	}
}

func TestSummaryScreen_Navigation_Enter(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}
}

func TestSummaryScreen_Navigation_Esc(t *testing.T) {
	s := New(testResult())
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestSummaryScreen_KeyHints(t *testing.T) {
	s := New(testResult())
	hints := s.KeyHints()
	if len(hints) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(hints))
	}
}
