package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendIntake(ctx context.Context, data IntakeEventData) (int64, error) {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.IntakeEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetItemsAsked(data.ItemsAsked).
		SetCompositeLow(data.CompositeLow).
		SetCompositeHigh(data.CompositeHigh)

	if !data.At.IsZero() {
		builder = builder.SetTimestamp(data.At)
	}

	if _, err := builder.Save(ctx); err != nil {
		return 0, fmt.Errorf("save intake event: %w", err)
	}
	return seqNum, nil
}
