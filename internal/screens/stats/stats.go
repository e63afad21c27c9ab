package stats

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futbolquiz/futbolquiz/internal/router"
	"github.com/futbolquiz/futbolquiz/internal/screen"
	"github.com/futbolquiz/futbolquiz/internal/store"
	"github.com/futbolquiz/futbolquiz/internal/ui/components"
	"github.com/futbolquiz/futbolquiz/internal/ui/layout"
	"github.com/futbolquiz/futbolquiz/internal/ui/theme"
)

// recentLimit caps the session history list.
const recentLimit = 10

// ModeNames maps stored mode keys to display names.
var ModeNames = map[string]string{
	"bingo":    "Bingo",
	"agequiz":  "Quiz de Edad",
	"natquiz":  "Quiz de Nacionalidad",
	"teamquiz": "Quiz de Equipo",
	"trivia":   "Trivia",
}

// statsLoadedMsg delivers the aggregates and the recent session list.
type statsLoadedMsg struct {
	stats  store.Stats
	recent []store.SessionSummary
	err    error
}

// StatsScreen shows lifetime aggregates and recent sessions.
type StatsScreen struct {
	repo store.EventRepo

	stats  store.Stats
	recent []store.SessionSummary

	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(repo store.EventRepo) *StatsScreen {
	return &StatsScreen{repo: repo}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		stats, err := s.repo.Stats(ctx)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		recent, err := s.repo.RecentSessions(ctx, recentLimit)
		if err != nil {
			return statsLoadedMsg{err: err}
		}
		return statsLoadedMsg{stats: stats, recent: recent}
	}
}

func (s *StatsScreen) Title() string {
	return "Estadísticas"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Volver"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			return s, nil
		}
		s.stats = msg.stats
		s.recent = msg.recent
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "enter", "q":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.RenderError(width, s.errMsg)
	}
	if !s.loaded {
		return components.RenderLoading(width, "Leyendo el historial...")
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Estadísticas"))
	b.WriteString("\n\n")

	totals := fmt.Sprintf("Partidas: %d        Media: %.0f%%        Mejor racha: %d",
		s.stats.TotalQuizzes, s.stats.AverageScore, s.stats.BestStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(totals))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))

	if len(s.stats.PerMode) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Por modo")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		modes := make([]string, 0, len(s.stats.PerMode))
		for m := range s.stats.PerMode {
			modes = append(modes, m)
		}
		sort.Strings(modes)

		for _, m := range modes {
			ms := s.stats.PerMode[m]
			line := fmt.Sprintf("  %-22s %3d partidas   %3.0f%%   racha %d",
				modeName(m), ms.Quizzes, ms.AverageScore, ms.BestStreak)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(s.recent) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Últimas partidas")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, sess := range s.recent {
			line := fmt.Sprintf("  %s  %-22s %3.0f%%   %d/%d   %s",
				sess.FinishedAt.Local().Format("02 Jan 15:04"),
				modeName(sess.Mode),
				sess.ScorePercent,
				sess.Correct, sess.Answered,
				formatDuration(sess.DurationSecs))
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Todavía no hay partidas. ¡A jugar!"))
	}

	return b.String()
}

func modeName(key string) string {
	if name, ok := ModeNames[key]; ok {
		return name
	}
	return key
}

func formatDuration(secs int) string {
	d := time.Duration(secs) * time.Second
	return fmt.Sprintf("%d:%02d", int(d.Minutes()), int(d.Seconds())%60)
}
