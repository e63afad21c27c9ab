package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendPlacementEvent(ctx context.Context, data PlacementEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.PlacementEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetPlayerName(data.PlayerName).
		SetCategoryID(data.CategoryID).
		SetCorrect(data.Correct).
		SetCellsFilled(data.CellsFilled).
		SetPoints(data.Points).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save placement event: %w", err)
	}
	return nil
}
