package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/futbolquiz/futbolquiz/internal/config"
	"github.com/futbolquiz/futbolquiz/internal/questions"
	"github.com/futbolquiz/futbolquiz/internal/router"
	"github.com/futbolquiz/futbolquiz/internal/screen"
	agequizscreen "github.com/futbolquiz/futbolquiz/internal/screens/agequiz"
	bingoscreen "github.com/futbolquiz/futbolquiz/internal/screens/bingo"
	natquizscreen "github.com/futbolquiz/futbolquiz/internal/screens/natquiz"
	statsscreen "github.com/futbolquiz/futbolquiz/internal/screens/stats"
	teamquizscreen "github.com/futbolquiz/futbolquiz/internal/screens/teamquiz"
	triviascreen "github.com/futbolquiz/futbolquiz/internal/screens/trivia"
	"github.com/futbolquiz/futbolquiz/internal/source"
	"github.com/futbolquiz/futbolquiz/internal/store"
	"github.com/futbolquiz/futbolquiz/internal/ui/components"
)

// Deps bundles the shared services the home menu hands to each game screen.
type Deps struct {
	Config    *config.Config
	Repo      store.EventRepo
	Players   *source.Client
	Questions *questions.Source
}

// homeStatsMsg delivers the dashboard counters.
type homeStatsMsg struct {
	stats store.Stats
	err   error
}

// HomeScreen is the main home screen of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	menuLabels []string

	quizzes    int
	avgScore   int
	bestStreak int
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	menuLabels := []string{
		"BINGO",
		"QUIZ DE EDAD",
		"QUIZ DE NACIONALIDAD",
		"QUIZ DE EQUIPO",
		"TRIVIA",
		"ESTADÍSTICAS",
		"SALIR",
	}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: bingoscreen.New(deps.Config, deps.Repo, deps.Players)}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: agequizscreen.New(deps.Config, deps.Repo, deps.Players)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: natquizscreen.New(deps.Config, deps.Repo, deps.Players)}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: teamquizscreen.New(deps.Config, deps.Repo, deps.Players)}
			}
		}},
		{Label: menuLabels[4], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: triviascreen.New(deps.Config, deps.Repo, deps.Questions)}
			}
		}},
		{Label: menuLabels[5], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: statsscreen.New(deps.Repo)}
			}
		}},
		{Label: menuLabels[6], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		deps:       deps,
		menu:       components.NewMenu(items),
		menuLabels: menuLabels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	repo := h.deps.Repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		stats, err := repo.Stats(context.Background())
		return homeStatsMsg{stats: stats, err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if m, ok := msg.(homeStatsMsg); ok {
		if m.err == nil {
			h.quizzes = m.stats.TotalQuizzes
			h.avgScore = int(m.stats.AverageScore + 0.5)
			h.bestStreak = m.stats.BestStreak
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 30 || width < 100

	// All sections share a uniform content width so they line up.
	cw := components.ContentWidth(width)

	var sections []string

	sections = append(sections, renderTitle(cw, compact))

	if !compact {
		variant := MascotIdle
		if h.bestStreak >= 5 {
			variant = MascotCelebrating
		}
		sections = append(sections, renderMascotBox(variant, cw))
	}

	sections = append(sections, renderStatsBar(
		h.quizzes, h.avgScore, h.bestStreak, cw, compact))

	if compact {
		sections = append(sections, renderArcadeMenuCompact(
			h.menuLabels, h.menu.Selected, cw))
	} else {
		sections = append(sections, renderArcadeMenu(
			h.menuLabels, h.menu.Selected, cw))
	}

	if h.deps.Config != nil {
		sections = append(sections, renderSourceBanner(h.deps.Config.DataBaseURL, cw))
	}

	content := strings.Join(sections, "\n\n")

	return components.CabinetFrame(content, width, height)
}

func (h *HomeScreen) Title() string {
	return "Inicio"
}
