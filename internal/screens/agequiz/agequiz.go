package agequiz

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/futbolquiz/futbolquiz/internal/config"
	game "github.com/futbolquiz/futbolquiz/internal/game/agequiz"
	"github.com/futbolquiz/futbolquiz/internal/player"
	"github.com/futbolquiz/futbolquiz/internal/router"
	"github.com/futbolquiz/futbolquiz/internal/screen"
	"github.com/futbolquiz/futbolquiz/internal/screens/summary"
	"github.com/futbolquiz/futbolquiz/internal/source"
	"github.com/futbolquiz/futbolquiz/internal/store"
	"github.com/futbolquiz/futbolquiz/internal/ui/components"
	"github.com/futbolquiz/futbolquiz/internal/ui/layout"
	"github.com/futbolquiz/futbolquiz/internal/ui/theme"
)

const mode = "agequiz"

// poolLoadedMsg is sent when the initial player pool has been fetched.
type poolLoadedMsg struct {
	pool      []player.Player
	sessionID string
	err       error
}

// refillMsg is sent when a pool refill completes.
type refillMsg struct {
	pool []player.Player
	err  error
}

// gameEndMsg is sent to trigger the end-of-game flow.
type gameEndMsg struct{}

// Screen runs one age quiz session.
type Screen struct {
	cfg     *config.Config
	repo    store.EventRepo
	players *source.Client

	game      *game.Game
	sessionID string
	startedAt time.Time
	askedAt   time.Time

	selected   int
	lastActual int
	loading    bool
	errMsg     string

	showingFeedback    bool
	showingQuitConfirm bool
	ended              bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a new age quiz screen.
func New(cfg *config.Config, repo store.EventRepo, players *source.Client) *Screen {
	return &Screen{
		cfg:     cfg,
		repo:    repo,
		players: players,
		game:    game.New(cfg.QuestionCount, rand.New(rand.NewSource(time.Now().UnixNano()))),
		loading: true,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.loadPool()
}

func (s *Screen) Title() string {
	return "Quiz de Edad"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "S", Description: "Terminar"},
			{Key: "N", Description: "Seguir"},
		}
	}
	if s.showingFeedback {
		return []layout.KeyHint{
			{Key: "cualquier tecla", Description: "Continuar"},
		}
	}
	return []layout.KeyHint{
		{Key: "1-4", Description: "Responder"},
		{Key: "Esc", Description: "Salir"},
	}
}

func (s *Screen) loadPool() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		pool, err := s.players.QuickPool(ctx)
		if err != nil {
			return poolLoadedMsg{err: err}
		}

		sessionID := uuid.New().String()
		if s.repo != nil {
			_ = s.repo.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID: sessionID,
				Mode:      mode,
				Action:    store.ActionStart,
			})
		}
		return poolLoadedMsg{pool: pool, sessionID: sessionID}
	}
}

func (s *Screen) refillPool() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		pool, err := s.players.AllPlayers(ctx)
		return refillMsg{pool: pool, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolLoadedMsg:
		return s.handlePoolLoaded(msg)

	case refillMsg:
		return s.handleRefill(msg)

	case gameEndMsg:
		return s.handleGameEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handlePoolLoaded(msg poolLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		s.loading = false
		s.errMsg = msg.err.Error()
		return s, nil
	}
	s.sessionID = msg.sessionID
	s.startedAt = time.Now()
	if err := s.game.Start(msg.pool); err != nil {
		s.loading = false
		s.errMsg = err.Error()
		return s, nil
	}
	s.loading = false
	s.askedAt = time.Now()
	s.selected = 0
	return s, nil
}

func (s *Screen) handleRefill(msg refillMsg) (screen.Screen, tea.Cmd) {
	s.loading = false
	if msg.err != nil {
		return s, func() tea.Msg { return gameEndMsg{} }
	}
	if err := s.game.Refill(msg.pool); err != nil {
		return s, func() tea.Msg { return gameEndMsg{} }
	}
	s.askedAt = time.Now()
	s.selected = 0
	return s, nil
}

func (s *Screen) handleGameEnd() (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	s.ended = true

	duration := time.Since(s.startedAt)
	sum := s.game.Summary()

	if s.repo != nil {
		_ = s.repo.AppendSessionEvent(context.Background(), store.SessionEventData{
			SessionID:         s.sessionID,
			Mode:              mode,
			Action:            store.ActionEnd,
			QuestionsAnswered: sum.TotalAnswered,
			CorrectAnswers:    s.game.Score().Correct,
			ScorePercent:      float64(sum.AverageScorePercent),
			BestStreak:        sum.BestStreak,
			DurationSecs:      int(duration.Seconds()),
		})
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(summary.Result{
			Mode:     s.Title(),
			Summary:  sum,
			Duration: duration,
		})}
	}
}

func (s *Screen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return router.PopScreenMsg{} }
	}
	if s.loading || s.ended {
		return s, nil
	}

	if s.showingQuitConfirm {
		switch key {
		case "s", "S", "y", "Y":
			s.showingQuitConfirm = false
			return s, func() tea.Msg { return gameEndMsg{} }
		case "n", "N", "esc":
			s.showingQuitConfirm = false
		}
		return s, nil
	}

	if s.showingFeedback {
		s.showingFeedback = false
		return s.advance()
	}

	q := s.game.Current()
	if q == nil {
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "enter":
		return s.submit()
	case "up", "k":
		if s.selected > 0 {
			s.selected--
		}
		return s, nil
	case "down", "j":
		if s.selected < len(q.Options)-1 {
			s.selected++
		}
		return s, nil
	case "1", "2", "3", "4":
		idx := int(key[0] - '1')
		if idx < len(q.Options) {
			s.selected = idx
			return s.submit()
		}
	}
	return s, nil
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	q := s.game.Current()
	if q == nil || s.selected >= len(q.Options) {
		return s, nil
	}
	pick := q.Options[s.selected]
	s.lastActual = q.Actual
	timeMs := int(time.Since(s.askedAt).Milliseconds())

	points, err := s.game.Choose(pick)
	if err != nil {
		return s, nil
	}

	if s.repo != nil {
		_ = s.repo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
			SessionID: s.sessionID,
			Mode:      mode,
			Prompt:    fmt.Sprintf("¿Cuántos años tiene %s?", q.Player.Name),
			Expected:  fmt.Sprintf("%d", q.Actual),
			Given:     fmt.Sprintf("%d", pick),
			Score:     float64(points),
			Correct:   points > 0,
			TimeMs:    timeMs,
		})
	}

	s.showingFeedback = true
	return s, nil
}

func (s *Screen) advance() (screen.Screen, tea.Cmd) {
	if s.game.Finished() {
		return s, func() tea.Msg { return gameEndMsg{} }
	}
	err := s.game.Advance()
	switch {
	case errors.Is(err, game.ErrPoolExhausted):
		s.loading = true
		return s, s.refillPool()
	case errors.Is(err, game.ErrFinished):
		return s, func() tea.Msg { return gameEndMsg{} }
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}
	s.askedAt = time.Now()
	s.selected = 0
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return components.RenderError(width, s.errMsg)
	}
	if s.loading {
		return components.RenderLoading(width, "Cargando plantillas...")
	}
	if s.showingQuitConfirm {
		return components.RenderQuitConfirm(width)
	}
	if s.showingFeedback {
		return s.renderFeedback(width)
	}
	return s.renderQuestion(width)
}

func (s *Screen) renderQuestion(width int) string {
	q := s.game.Current()
	if q == nil {
		return components.RenderLoading(width, "Preparando pregunta...")
	}

	answered, total := s.game.Progress()
	state := s.game.Score()

	var b strings.Builder

	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Pregunta %d/%d   ◆ %d pts   ★ racha %d",
			answered+1, total, int(state.Points), state.Streak))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, info))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(fmt.Sprintf("¿Cuántos años tiene %s?", q.Player.Name)))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s · %s", q.Player.Team, q.Player.Nationality)))
	b.WriteString("\n\n")

	var opts strings.Builder
	for i, opt := range q.Options {
		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}
		line := fmt.Sprintf("%s%d) %d años", prefix, i+1, opt)
		if i == s.selected {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		} else {
			opts.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		opts.WriteString("\n")
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, opts.String()))

	return b.String()
}

func (s *Screen) renderFeedback(width int) string {
	pick, points := s.game.LastOutcome()

	var b strings.Builder
	b.WriteString("\n\n")

	switch {
	case points == game.MaxPoints:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render(fmt.Sprintf("¡Exacto! +%d puntos", points)))
	case points > 0:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Casi: +%d puntos", points)))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Dijiste %d, tiene %d", pick, s.lastActual)))
	default:
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Muy lejos"))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render(fmt.Sprintf("Dijiste %d, tiene %d", pick, s.lastActual)))
	}

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pulsa cualquier tecla para continuar..."))

	return b.String()
}
