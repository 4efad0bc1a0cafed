package store

import (
	"context"
	"fmt"

	"github.com/hyejin/orbquest/ent"
	"github.com/hyejin/orbquest/ent/scanevent"
)

func (r *eventRepo) AppendScanEvent(ctx context.Context, data ScanEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	_, err = r.client.ScanEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetAnchorsCreated(data.AnchorsCreated).
		SetObjectsDetected(data.ObjectsDetected).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save scan event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryScanEvents(ctx context.Context, opts QueryOpts) ([]ScanEventRecord, error) {
	query := r.client.ScanEvent.Query().
		Order(ent.Desc(scanevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(scanevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(scanevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(scanevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(scanevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query scan events: %w", err)
	}

	records := make([]ScanEventRecord, len(events))
	for i, e := range events {
		records[i] = ScanEventRecord{
			ScanEventData: ScanEventData{
				SessionID:       e.SessionID,
				AnchorsCreated:  e.AnchorsCreated,
				ObjectsDetected: e.ObjectsDetected,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) ScanStats(ctx context.Context) (ScanStats, error) {
	events, err := r.client.ScanEvent.Query().All(ctx)
	if err != nil {
		return ScanStats{}, fmt.Errorf("query scan events: %w", err)
	}

	var stats ScanStats
	stats.Passes = len(events)
	for _, e := range events {
		stats.TotalObjects += e.ObjectsDetected
		stats.TotalAnchors += e.AnchorsCreated
	}
	return stats, nil
}
