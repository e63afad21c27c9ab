package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/futbolquiz/futbolquiz/internal/config"
	"github.com/futbolquiz/futbolquiz/internal/questions"
	"github.com/futbolquiz/futbolquiz/internal/router"
	"github.com/futbolquiz/futbolquiz/internal/screen"
	"github.com/futbolquiz/futbolquiz/internal/screens/home"
	"github.com/futbolquiz/futbolquiz/internal/source"
	"github.com/futbolquiz/futbolquiz/internal/store"
	"github.com/futbolquiz/futbolquiz/internal/ui/layout"
)

// Options carries the shared dependencies every screen draws from.
type Options struct {
	Config    *config.Config
	Repo      store.EventRepo
	Players   *source.Client
	Questions *questions.Source
}

// statsLoadedMsg delivers the header counters once at startup.
type statsLoadedMsg struct {
	stats store.Stats
	err   error
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	opts   Options
	router *router.Router
	width  int
	height int

	quizzes    int
	bestStreak int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Config:    opts.Config,
		Repo:      opts.Repo,
		Players:   opts.Players,
		Questions: opts.Questions,
	})
	return AppModel{
		opts:   opts,
		router: router.New(homeScreen),
	}
}

func (m AppModel) Init() tea.Cmd {
	repo := m.opts.Repo
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		stats, err := repo.Stats(context.Background())
		return statsLoadedMsg{stats: stats, err: err}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case statsLoadedMsg:
		if msg.err == nil {
			m.quizzes = msg.stats.TotalQuizzes
			m.bestStreak = msg.stats.BestStreak
		}
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.quizzes, m.bestStreak, m.width)

	var footerHints []layout.KeyHint
	if provider, ok := active.(screen.KeyHintProvider); ok {
		footerHints = provider.KeyHints()
	} else if m.router.Depth() > 1 {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Volver"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	} else {
		footerHints = []layout.KeyHint{
			{Key: "↑↓", Description: "Navegar"},
			{Key: "Enter", Description: "Elegir"},
			{Key: "Ctrl+C", Description: "Salir"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
