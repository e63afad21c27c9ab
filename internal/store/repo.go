package store

import (
	"context"
	"time"
)

// Session actions recorded in SessionEvent rows.
const (
	ActionStart = "start"
	ActionEnd   = "end"
)

// SessionEventData captures a session lifecycle event.
type SessionEventData struct {
	SessionID         string
	Mode              string
	Action            string
	QuestionsAnswered int
	CorrectAnswers    int
	ScorePercent      float64
	BestStreak        int
	DurationSecs      int
}

// AnswerEventData captures one answered question.
type AnswerEventData struct {
	SessionID string
	Mode      string
	Prompt    string
	Expected  string
	Given     string
	Score     float64
	Correct   bool
	TimeMs    int
}

// PlacementEventData captures one bingo placement attempt.
type PlacementEventData struct {
	SessionID   string
	PlayerName  string
	CategoryID  string
	Correct     bool
	CellsFilled int
	Points      int
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// Stats aggregates finished sessions into the numbers the stats screen shows.
type Stats struct {
	TotalQuizzes int
	AverageScore float64
	BestStreak   int
	PerMode      map[string]ModeStats
}

// ModeStats is the per-mode slice of Stats.
type ModeStats struct {
	Quizzes      int
	AverageScore float64
	BestStreak   int
}

// SessionSummary is one finished session for the recent-sessions list.
type SessionSummary struct {
	SessionID    string
	Mode         string
	ScorePercent float64
	Correct      int
	Answered     int
	DurationSecs int
	FinishedAt   time.Time
}

// QueryOpts controls event query pagination.
type QueryOpts struct {
	Limit int
}

// LLMEvent is a read view of one recorded LLM request.
type LLMEvent struct {
	ID           int
	Timestamp    time.Time
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMPurposeUsage aggregates recorded LLM requests for one purpose.
type LLMPurposeUsage struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates recorded LLM requests for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and aggregate access to quiz events.
type EventRepo interface {
	// AppendSessionEvent records a session start or end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// AppendAnswerEvent records one answered question.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// AppendPlacementEvent records one bingo placement.
	AppendPlacementEvent(ctx context.Context, data PlacementEventData) error

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// Stats aggregates all finished sessions.
	Stats(ctx context.Context) (Stats, error)

	// RecentSessions returns the latest finished sessions, newest first.
	RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error)

	// QueryLLMEvents returns recorded LLM requests, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEvent, error)

	// GetLLMEvent returns one recorded LLM request, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)

	// LLMUsageByPurpose aggregates token usage per request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMPurposeUsage, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}
