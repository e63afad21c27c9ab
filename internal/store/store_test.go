package store

import (
	"context"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testRepo(t *testing.T) (EventRepo, *Store) {
	t.Helper()
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("event repo: %v", err)
	}
	return repo, s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()
	ctx := context.Background()

	sc, err := newSequenceCounter(db)
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	// Should be monotonically increasing starting from 1.
	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func endSession(t *testing.T, repo EventRepo, mode string, score float64, streak int) {
	t.Helper()
	ctx := context.Background()
	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID:         "s-" + mode,
		Mode:              mode,
		Action:            ActionEnd,
		QuestionsAnswered: 10,
		CorrectAnswers:    7,
		ScorePercent:      score,
		BestStreak:        streak,
		DurationSecs:      60,
	})
	if err != nil {
		t.Fatalf("append session end: %v", err)
	}
}

func TestStatsAggregation(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	// A start event must not count toward finished-session stats.
	err := repo.AppendSessionEvent(ctx, SessionEventData{
		SessionID: "s-open", Mode: "bingo", Action: ActionStart,
	})
	if err != nil {
		t.Fatalf("append session start: %v", err)
	}

	endSession(t, repo, "bingo", 80, 5)
	endSession(t, repo, "bingo", 40, 2)
	endSession(t, repo, "trivia", 60, 3)

	stats, err := repo.Stats(ctx)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalQuizzes != 3 {
		t.Errorf("total quizzes = %d, want 3", stats.TotalQuizzes)
	}
	if stats.AverageScore != 60 {
		t.Errorf("average score = %v, want 60", stats.AverageScore)
	}
	if stats.BestStreak != 5 {
		t.Errorf("best streak = %d, want 5", stats.BestStreak)
	}

	bingo := stats.PerMode["bingo"]
	if bingo.Quizzes != 2 || bingo.AverageScore != 60 || bingo.BestStreak != 5 {
		t.Errorf("bingo mode stats = %+v", bingo)
	}
	if _, ok := stats.PerMode["age"]; ok {
		t.Error("unplayed mode should not appear in stats")
	}
}

func TestStatsEmpty(t *testing.T) {
	repo, _ := testRepo(t)

	stats, err := repo.Stats(context.Background())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.TotalQuizzes != 0 || stats.AverageScore != 0 {
		t.Errorf("empty stats = %+v", stats)
	}
}

func TestRecentSessionsNewestFirst(t *testing.T) {
	repo, _ := testRepo(t)
	ctx := context.Background()

	endSession(t, repo, "bingo", 50, 1)
	endSession(t, repo, "age", 70, 4)
	endSession(t, repo, "trivia", 90, 6)

	recent, err := repo.RecentSessions(ctx, 2)
	if err != nil {
		t.Fatalf("recent sessions: %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("got %d sessions, want 2", len(recent))
	}
	if recent[0].Mode != "trivia" || recent[1].Mode != "age" {
		t.Errorf("order = %s, %s; want trivia, age", recent[0].Mode, recent[1].Mode)
	}
}

func TestAppendAnswerAndPlacementEvents(t *testing.T) {
	repo, s := testRepo(t)
	ctx := context.Background()

	err := repo.AppendAnswerEvent(ctx, AnswerEventData{
		SessionID: "s1",
		Mode:      "age",
		Prompt:    "Rodri",
		Expected:  "29",
		Given:     "28",
		Score:     8,
		Correct:   true,
		TimeMs:    2350,
	})
	if err != nil {
		t.Fatalf("append answer: %v", err)
	}

	err = repo.AppendPlacementEvent(ctx, PlacementEventData{
		SessionID:   "s1",
		PlayerName:  "Rodri",
		CategoryID:  "spain",
		Correct:     true,
		CellsFilled: 3,
		Points:      30,
	})
	if err != nil {
		t.Fatalf("append placement: %v", err)
	}

	answers, err := s.Client().AnswerEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count answers: %v", err)
	}
	placements, err := s.Client().PlacementEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count placements: %v", err)
	}
	if answers != 1 || placements != 1 {
		t.Errorf("answers = %d, placements = %d, want 1 each", answers, placements)
	}
}

func TestAppendLLMRequest(t *testing.T) {
	repo, s := testRepo(t)
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		Provider:     "mock",
		Model:        "mock",
		Purpose:      "question-gen",
		InputTokens:  120,
		OutputTokens: 300,
		LatencyMs:    450,
		Success:      true,
	})
	if err != nil {
		t.Fatalf("append llm request: %v", err)
	}

	count, err := s.Client().LLMRequestEvent.Query().Count(ctx)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 1 {
		t.Errorf("llm events = %d, want 1", count)
	}
}
