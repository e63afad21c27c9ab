package bingo

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"

	"github.com/futbolquiz/futbolquiz/internal/category"
	"github.com/futbolquiz/futbolquiz/internal/config"
	game "github.com/futbolquiz/futbolquiz/internal/game/bingo"
	"github.com/futbolquiz/futbolquiz/internal/player"
	"github.com/futbolquiz/futbolquiz/internal/router"
	"github.com/futbolquiz/futbolquiz/internal/sampler"
	"github.com/futbolquiz/futbolquiz/internal/screen"
	"github.com/futbolquiz/futbolquiz/internal/screens/summary"
	"github.com/futbolquiz/futbolquiz/internal/source"
	"github.com/futbolquiz/futbolquiz/internal/store"
	"github.com/futbolquiz/futbolquiz/internal/ui/components"
	"github.com/futbolquiz/futbolquiz/internal/ui/layout"
	"github.com/futbolquiz/futbolquiz/internal/ui/theme"
)

const mode = "bingo"

// gridCols is the board layout width; 12 categories render as 4x3.
const gridCols = 4

// poolLoadedMsg is sent when the initial player queue has been fetched.
type poolLoadedMsg struct {
	queue     []player.Player
	sessionID string
	err       error
}

// refillMsg is sent when a queue refill completes.
type refillMsg struct {
	queue []player.Player
	err   error
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// gameEndMsg is sent to trigger the end-of-game flow.
type gameEndMsg struct{}

// Screen runs one bingo session.
type Screen struct {
	cfg     *config.Config
	repo    store.EventRepo
	players *source.Client

	game      *game.Game
	sessionID string
	startedAt time.Time

	cursor    int
	lastNote  string
	loading   bool
	refilling bool
	errMsg    string

	showingQuitConfirm bool
	ended              bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a new bingo screen.
func New(cfg *config.Config, repo store.EventRepo, players *source.Client) *Screen {
	return &Screen{
		cfg:     cfg,
		repo:    repo,
		players: players,
		game:    game.New(category.All(), cfg.BingoCountdown),
		loading: true,
	}
}

func (s *Screen) Init() tea.Cmd {
	return s.loadPool()
}

func (s *Screen) Title() string {
	return "Bingo"
}

func (s *Screen) KeyHints() []layout.KeyHint {
	if s.showingQuitConfirm {
		return []layout.KeyHint{
			{Key: "S", Description: "Terminar"},
			{Key: "N", Description: "Seguir"},
		}
	}
	return []layout.KeyHint{
		{Key: "←↑↓→", Description: "Casilla"},
		{Key: "Enter", Description: "Colocar"},
		{Key: "P", Description: "Pasar"},
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

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		queue, err := sampler.Sample(pool, s.cfg.PoolSize, category.All(), rng)
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
		return poolLoadedMsg{queue: queue, sessionID: sessionID}
	}
}

func (s *Screen) refillPool() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		pool, err := s.players.AllPlayers(ctx)
		if err != nil {
			return refillMsg{err: err}
		}

		rng := rand.New(rand.NewSource(time.Now().UnixNano()))
		queue, err := sampler.Sample(pool, s.cfg.PoolSize, category.All(), rng)
		return refillMsg{queue: queue, err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case poolLoadedMsg:
		return s.handlePoolLoaded(msg)

	case refillMsg:
		return s.handleRefill(msg)

	case timerTickMsg:
		return s.handleTick()

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
	s.game.Start(msg.queue)
	s.loading = false
	return s, tickCmd()
}

func (s *Screen) handleRefill(msg refillMsg) (screen.Screen, tea.Cmd) {
	s.refilling = false
	if msg.err != nil {
		return s, func() tea.Msg { return gameEndMsg{} }
	}
	s.game.Refill(msg.queue)
	if s.game.AwaitingRefill() {
		// The full pool added nothing new; play out what is on the board.
		return s, func() tea.Msg { return gameEndMsg{} }
	}
	return s, nil
}

func (s *Screen) handleTick() (screen.Screen, tea.Cmd) {
	if s.ended {
		return s, nil
	}
	s.game.Tick()
	if s.game.Phase() == game.Finished {
		return s, func() tea.Msg { return gameEndMsg{} }
	}
	if s.game.AwaitingRefill() && !s.refilling {
		s.refilling = true
		return s, tea.Batch(s.refillPool(), tickCmd())
	}
	return s, tickCmd()
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

	var details []string
	for _, ge := range s.game.Errors() {
		details = append(details, fmt.Sprintf("%s: marcaste %s, valía %s",
			ge.PlayerName, ge.AttemptedCategory, strings.Join(ge.CorrectCategories, " / ")))
	}

	return s, func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: summary.New(summary.Result{
			Mode:     s.Title(),
			Summary:  sum,
			Duration: duration,
			Details:  details,
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

	cells := s.game.Cells()

	switch key {
	case "esc":
		s.showingQuitConfirm = true
	case "left", "h":
		if s.cursor%gridCols > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor%gridCols < gridCols-1 && s.cursor+1 < len(cells) {
			s.cursor++
		}
	case "up", "k":
		if s.cursor-gridCols >= 0 {
			s.cursor -= gridCols
		}
	case "down", "j":
		if s.cursor+gridCols < len(cells) {
			s.cursor += gridCols
		}
	case "enter", " ", "space":
		return s.place(cells)
	case "p", "P":
		s.lastNote = ""
		if err := s.game.Skip(); err == nil {
		}
		if s.game.AwaitingRefill() && !s.refilling {
			s.refilling = true
			return s, s.refillPool()
		}
	}
	return s, nil
}

func (s *Screen) place(cells []game.Cell) (screen.Screen, tea.Cmd) {
	if s.cursor >= len(cells) {
		return s, nil
	}
	cur, ok := s.game.Current()
	if !ok {
		return s, nil
	}
	cat := cells[s.cursor].Category
	before := s.game.Score().Points

	placement, err := s.game.Place(cat.ID)
	if err != nil {
		s.lastNote = "Casilla ocupada"
		return s, nil
	}

	if placement.Correct {
		s.lastNote = fmt.Sprintf("✔ %s encaja en %s", cur.Name, cat.Title)
	} else {
		s.lastNote = fmt.Sprintf("✘ %s no encaja en %s", cur.Name, cat.Title)
	}

	if s.repo != nil {
		points := int(s.game.Score().Points - before)
		_ = s.repo.AppendPlacementEvent(context.Background(), store.PlacementEventData{
			SessionID:   s.sessionID,
			PlayerName:  cur.Name,
			CategoryID:  cat.ID,
			Correct:     placement.Correct,
			CellsFilled: placement.CellsFilled,
			Points:      points,
		})
	}

	if s.game.Phase() == game.Finished {
		return s, func() tea.Msg { return gameEndMsg{} }
	}
	if s.game.AwaitingRefill() && !s.refilling {
		s.refilling = true
		return s, s.refillPool()
	}
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
	return s.renderBoard(width)
}

func (s *Screen) renderBoard(width int) string {
	var b strings.Builder

	state := s.game.Score()
	info := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("◆ %d pts   ★ racha %d   ⏱ %ds",
			int(state.Points), state.Streak, s.game.TimeLeft()))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, info))
	b.WriteString("\n")

	if s.cfg.BingoCountdown > 0 {
		pct := float64(s.game.TimeLeft()) / float64(s.cfg.BingoCountdown)
		bar := components.NewProgressBar("", pct, false, min(width-8, 40))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if cur, ok := s.game.Current(); ok {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Text).
			Bold(true).
			Render(cur.Name))
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("¿Dónde lo colocas?"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Buscando más jugadores..."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(s.renderGrid(width))

	if s.lastNote != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render(s.lastNote))
	}

	return b.String()
}

func (s *Screen) renderGrid(width int) string {
	cells := s.game.Cells()

	cellW := 20
	if width < 90 {
		cellW = (width - 12) / gridCols
		if cellW < 12 {
			cellW = 12
		}
	}

	var rows []string
	for start := 0; start < len(cells); start += gridCols {
		end := start + gridCols
		if end > len(cells) {
			end = len(cells)
		}
		var row []string
		for i := start; i < end; i++ {
			row = append(row, s.renderCell(cells[i], i == s.cursor, cellW))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	grid := strings.Join(rows, "\n")
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, grid)
}

func (s *Screen) renderCell(c game.Cell, focused bool, cellW int) string {
	border := theme.Border
	if focused {
		border = theme.Primary
	}

	title := c.Category.Title
	body := ""
	style := lipgloss.NewStyle().Foreground(theme.Text)
	if c.Filled {
		body = c.Occupant
		style = style.Foreground(theme.TextDim)
	}

	content := style.Render(title)
	if body != "" {
		content += "\n" + lipgloss.NewStyle().Foreground(theme.Secondary).Render(body)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Width(cellW).
		Height(2).
		Align(lipgloss.Center).
		Render(content)
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
