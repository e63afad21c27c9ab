package trivia

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
	game "github.com/futbolquiz/futbolquiz/internal/game/trivia"
	"github.com/futbolquiz/futbolquiz/internal/questions"
	"github.com/futbolquiz/futbolquiz/internal/router"
	"github.com/futbolquiz/futbolquiz/internal/screen"
	"github.com/futbolquiz/futbolquiz/internal/screens/summary"
	"github.com/futbolquiz/futbolquiz/internal/store"
	"github.com/futbolquiz/futbolquiz/internal/ui/components"
	"github.com/futbolquiz/futbolquiz/internal/ui/layout"
	"github.com/futbolquiz/futbolquiz/internal/ui/theme"
)

const mode = "trivia"

// questionsLoadedMsg is sent when the question set has been fetched.
type questionsLoadedMsg struct {
	questions []game.Question
	sessionID string
	err       error
}

// timerTickMsg is sent every second to update the countdown.
type timerTickMsg time.Time

// gameEndMsg is sent to trigger the end-of-game flow.
type gameEndMsg struct{}

// Screen runs one trivia session.
type Screen struct {
	cfg    *config.Config
	repo   store.EventRepo
	source *questions.Source

	game      *game.Game
	sessionID string
	startedAt time.Time
	askedAt   time.Time

	input    components.TextInput
	sugIdx   int
	note     string
	hint     string
	loading  bool
	errMsg   string

	lastPrompt   string
	lastExpected int
	lastFound    int

	showingFeedback    bool
	showingQuitConfirm bool
	ended              bool
}

var _ screen.Screen = (*Screen)(nil)
var _ screen.KeyHintProvider = (*Screen)(nil)

// New creates a new trivia screen.
func New(cfg *config.Config, repo store.EventRepo, source *questions.Source) *Screen {
	return &Screen{
		cfg:     cfg,
		repo:    repo,
		source:  source,
		input:   components.NewTextInput("Escribe un jugador...", false, 40),
		sugIdx:  -1,
		loading: true,
	}
}

func (s *Screen) Init() tea.Cmd {
	return tea.Batch(s.loadQuestions(), s.input.Init())
}

func (s *Screen) Title() string {
	return "Trivia"
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
		{Key: "Tab", Description: "Sugerencia"},
		{Key: "Enter", Description: "Añadir"},
		{Key: "Ctrl+S", Description: "Enviar"},
		{Key: "Ctrl+H", Description: "Pista"},
		{Key: "Esc", Description: "Salir"},
	}
}

func (s *Screen) loadQuestions() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()

		qs, err := s.source.Load(ctx, s.cfg.QuestionCount)
		if err != nil {
			return questionsLoadedMsg{err: err}
		}

		sessionID := uuid.New().String()
		if s.repo != nil {
			_ = s.repo.AppendSessionEvent(ctx, store.SessionEventData{
				SessionID: sessionID,
				Mode:      mode,
				Action:    store.ActionStart,
			})
		}
		return questionsLoadedMsg{questions: qs, sessionID: sessionID}
	}
}

func (s *Screen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case questionsLoadedMsg:
		return s.handleQuestionsLoaded(msg)

	case timerTickMsg:
		return s.handleTick()

	case gameEndMsg:
		return s.handleGameEnd()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if !s.loading && !s.showingFeedback && !s.showingQuitConfirm && !s.ended {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) handleQuestionsLoaded(msg questionsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		s.loading = false
		s.errMsg = msg.err.Error()
		return s, nil
	}
	s.sessionID = msg.sessionID
	s.startedAt = time.Now()
	s.game = game.New(msg.questions, s.cfg.TriviaCountdown, rand.New(rand.NewSource(time.Now().UnixNano())))
	if err := s.game.Start(); err != nil {
		s.loading = false
		s.errMsg = err.Error()
		return s, nil
	}
	s.loading = false
	s.askedAt = time.Now()
	return s, tickCmd()
}

func (s *Screen) handleTick() (screen.Screen, tea.Cmd) {
	if s.ended || s.game == nil {
		return s, nil
	}
	if s.showingFeedback || s.showingQuitConfirm {
		return s, tickCmd()
	}

	answeredBefore, _ := s.game.Progress()
	s.captureQuestion()
	s.game.Tick()
	answeredAfter, _ := s.game.Progress()

	if answeredAfter > answeredBefore || s.game.Finished() {
		// The clock ran out and the question auto-submitted.
		s.recordAnswer(s.game.LastScore())
		s.enterFeedback()
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
	if s.loading || s.ended || s.game == nil {
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
		if s.game.Finished() {
			return s, func() tea.Msg { return gameEndMsg{} }
		}
		s.askedAt = time.Now()
		return s, nil
	}

	switch key {
	case "esc":
		s.showingQuitConfirm = true
		return s, nil
	case "ctrl+s":
		return s.submit()
	case "ctrl+h":
		s.hint = s.game.Hint()
		return s, nil
	case "ctrl+d":
		if found := s.game.Found(); len(found) > 0 {
			s.game.RemoveAnswer(found[len(found)-1])
		}
		return s, nil
	case "tab":
		sugs := s.game.Suggestions(s.input.Value())
		if len(sugs) > 0 {
			s.sugIdx = (s.sugIdx + 1) % len(sugs)
		}
		return s, nil
	case "enter":
		return s.addAnswer()
	}

	s.sugIdx = -1
	s.note = ""
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *Screen) addAnswer() (screen.Screen, tea.Cmd) {
	guess := s.input.Value()
	sugs := s.game.Suggestions(guess)
	if s.sugIdx >= 0 && s.sugIdx < len(sugs) {
		guess = sugs[s.sugIdx]
	}
	if strings.TrimSpace(guess) == "" {
		return s, nil
	}

	if err := s.game.AddAnswer(guess); err != nil {
		if errors.Is(err, game.ErrNotAnAnswer) {
			s.note = "No está en la lista"
		}
		return s, nil
	}

	s.note = ""
	s.hint = ""
	s.sugIdx = -1
	s.input = components.NewTextInput("Escribe un jugador...", false, 40)
	return s, s.input.Init()
}

func (s *Screen) submit() (screen.Screen, tea.Cmd) {
	s.captureQuestion()
	score, err := s.game.Submit()
	if err != nil {
		return s, nil
	}
	s.recordAnswer(score)
	s.enterFeedback()
	return s, nil
}

// captureQuestion snapshots the active question before a submit advances it.
func (s *Screen) captureQuestion() {
	if q := s.game.Current(); q != nil {
		s.lastPrompt = q.Prompt
		s.lastExpected = len(q.Answers)
		s.lastFound = len(s.game.Found())
	}
}

func (s *Screen) recordAnswer(score float64) {
	if s.repo == nil {
		return
	}
	timeMs := int(time.Since(s.askedAt).Milliseconds())
	_ = s.repo.AppendAnswerEvent(context.Background(), store.AnswerEventData{
		SessionID: s.sessionID,
		Mode:      mode,
		Prompt:    s.lastPrompt,
		Expected:  fmt.Sprintf("%d respuestas", s.lastExpected),
		Given:     fmt.Sprintf("%d encontradas", s.lastFound),
		Score:     score,
		Correct:   score > 0,
		TimeMs:    timeMs,
	})
}

func (s *Screen) enterFeedback() {
	s.showingFeedback = true
	s.note = ""
	s.hint = ""
	s.sugIdx = -1
	s.input = components.NewTextInput("Escribe un jugador...", false, 40)
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return components.RenderError(width, s.errMsg)
	}
	if s.loading {
		return components.RenderLoading(width, "Buscando preguntas...")
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
		Render(fmt.Sprintf("Pregunta %d/%d   ✔ %d   ⏱ %ds",
			answered+1, total, state.Correct, s.game.TimeLeft()))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, info))
	b.WriteString("\n")

	if s.cfg.TriviaCountdown > 0 {
		pct := float64(s.game.TimeLeft()) / float64(s.cfg.TriviaCountdown)
		bar := components.NewProgressBar("", pct, false, min(width-8, 40))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Prompt))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%d de %d encontradas", len(s.game.Found()), len(q.Answers))))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.input.View()))
	b.WriteString("\n")

	sugs := s.game.Suggestions(s.input.Value())
	if len(sugs) > 0 {
		var sb strings.Builder
		for i, sug := range sugs {
			style := lipgloss.NewStyle().Foreground(theme.TextDim)
			if i == s.sugIdx {
				style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
			}
			sb.WriteString(style.Render("  " + sug))
			sb.WriteString("\n")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, sb.String()))
	}

	if s.hint != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("Pista: " + s.hint))
	}
	if s.note != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(s.note))
	}

	if found := s.game.Found(); len(found) > 0 {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Join(found, " · "))))
	}

	return b.String()
}

func (s *Screen) renderFeedback(width int) string {
	score := s.game.LastScore()

	var b strings.Builder
	b.WriteString("\n\n")

	var verdict string
	var color = theme.Error
	switch {
	case score >= 1:
		verdict = "¡Pleno!"
		color = theme.Success
	case score >= 0.5:
		verdict = "¡Bien jugado!"
		color = theme.Success
	case score > 0:
		verdict = "Algo es algo"
		color = theme.Accent
	default:
		verdict = "En blanco"
	}

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(color).
		Bold(true).
		Render(verdict))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s: %d de %d", s.lastPrompt, s.lastFound, s.lastExpected)))

	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Pulsa cualquier tecla para continuar..."))

	return b.String()
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
