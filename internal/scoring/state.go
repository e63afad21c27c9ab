package scoring

// State is the running score for a single session. Everything except Streak
// is monotonic within a session; Streak resets to zero whenever an outcome
// scores nothing.
type State struct {
	Points     float64
	Correct    int
	Wrong      int
	Streak     int
	BestStreak int
}

// Record applies one scored outcome. A positive score counts as correct and
// extends the streak; a zero score counts as wrong and breaks it.
func (s *State) Record(score float64) {
	s.Points += score
	if score > 0 {
		s.Correct++
		s.extendStreak()
	} else {
		s.Wrong++
		s.Streak = 0
	}
}

// RecordFreeText applies a free-text outcome. Partial credit above zero still
// counts as an answered-correct question, but the streak only survives
// scores at or above FreeTextStreakThreshold.
func (s *State) RecordFreeText(score float64) {
	s.Points += score
	if score > 0 {
		s.Correct++
	} else {
		s.Wrong++
	}
	if score >= FreeTextStreakThreshold {
		s.extendStreak()
	} else {
		s.Streak = 0
	}
}

func (s *State) extendStreak() {
	s.Streak++
	if s.Streak > s.BestStreak {
		s.BestStreak = s.Streak
	}
}

// Answered returns the total number of scored outcomes.
func (s *State) Answered() int {
	return s.Correct + s.Wrong
}

// Reset clears the state for a new session.
func (s *State) Reset() {
	*s = State{}
}

// Summary is the per-question stats emission the host persists after each
// answered question. Sessions never read summaries back; each starts from
// zero.
type Summary struct {
	TotalAnswered       int
	AverageScorePercent int
	BestStreak          int
}

// Summarize computes the emission for the current state. maxPerQuestion is
// the highest score a single question can award in the active mode (1 for
// exact-choice and free-text modes, 10 for the age quiz).
func (s *State) Summarize(maxPerQuestion float64) Summary {
	sum := Summary{
		TotalAnswered: s.Answered(),
		BestStreak:    s.BestStreak,
	}
	if sum.TotalAnswered > 0 && maxPerQuestion > 0 {
		pct := s.Points / (float64(sum.TotalAnswered) * maxPerQuestion) * 100
		sum.AverageScorePercent = int(pct + 0.5)
	}
	return sum
}
