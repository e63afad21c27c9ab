package store

import (
	"context"
	"fmt"

	"github.com/futbolquiz/futbolquiz/ent/sessionevent"
)

// Stats folds every finished session into the aggregate the stats screen
// shows. Aggregation happens in Go; the session count stays small enough
// for a local quiz history that pushing it into SQL buys nothing.
func (r *eventRepo) Stats(ctx context.Context) (Stats, error) {
	events, err := r.client.SessionEvent.Query().
		Where(sessionevent.Action(ActionEnd)).
		All(ctx)
	if err != nil {
		return Stats{}, fmt.Errorf("query finished sessions: %w", err)
	}

	stats := Stats{PerMode: make(map[string]ModeStats)}
	if len(events) == 0 {
		return stats, nil
	}

	var total float64
	perTotal := make(map[string]float64)
	for _, e := range events {
		stats.TotalQuizzes++
		total += e.ScorePercent
		if e.BestStreak > stats.BestStreak {
			stats.BestStreak = e.BestStreak
		}

		m := stats.PerMode[e.Mode]
		m.Quizzes++
		perTotal[e.Mode] += e.ScorePercent
		if e.BestStreak > m.BestStreak {
			m.BestStreak = e.BestStreak
		}
		stats.PerMode[e.Mode] = m
	}

	stats.AverageScore = total / float64(stats.TotalQuizzes)
	for mode, m := range stats.PerMode {
		m.AverageScore = perTotal[mode] / float64(m.Quizzes)
		stats.PerMode[mode] = m
	}
	return stats, nil
}
