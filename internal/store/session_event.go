package store

import (
	"context"
	"fmt"

	"github.com/futbolquiz/futbolquiz/ent"
	"github.com/futbolquiz/futbolquiz/ent/sessionevent"
)

// eventRepo implements EventRepo backed by ent and the global sequence counter.
type eventRepo struct {
	client *ent.Client
	seq    *sequenceCounter
}

func (r *eventRepo) AppendSessionEvent(ctx context.Context, data SessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.SessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetMode(data.Mode).
		SetAction(data.Action).
		SetQuestionsAnswered(data.QuestionsAnswered).
		SetCorrectAnswers(data.CorrectAnswers).
		SetScorePercent(data.ScorePercent).
		SetBestStreak(data.BestStreak).
		SetDurationSecs(data.DurationSecs).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save session event: %w", err)
	}
	return nil
}

func (r *eventRepo) RecentSessions(ctx context.Context, limit int) ([]SessionSummary, error) {
	q := r.client.SessionEvent.Query().
		Where(sessionevent.Action(ActionEnd)).
		Order(ent.Desc(sessionevent.FieldSequence))
	if limit > 0 {
		q = q.Limit(limit)
	}
	events, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query recent sessions: %w", err)
	}

	out := make([]SessionSummary, 0, len(events))
	for _, e := range events {
		out = append(out, SessionSummary{
			SessionID:    e.SessionID,
			Mode:         e.Mode,
			ScorePercent: e.ScorePercent,
			Correct:      e.CorrectAnswers,
			Answered:     e.QuestionsAnswered,
			DurationSecs: e.DurationSecs,
			FinishedAt:   e.Timestamp,
		})
	}
	return out, nil
}
