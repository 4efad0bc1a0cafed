package store

import (
	"context"
	"fmt"
)

func (r *eventRepo) AppendARSessionEvent(ctx context.Context, data ARSessionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.ARSessionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAction(data.Action).
		SetDurationSecs(data.DurationSecs)

	if data.Message != nil {
		builder = builder.SetMessage(*data.Message)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save ar session event: %w", err)
	}
	return nil
}
