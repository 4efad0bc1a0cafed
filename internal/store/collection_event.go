package store

import (
	"context"
	"fmt"

	"github.com/hyejin/orbquest/ent"
	"github.com/hyejin/orbquest/ent/collectionevent"
)

func (r *eventRepo) AppendCollectionEvent(ctx context.Context, data CollectionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}

	builder := r.client.CollectionEvent.Create().
		SetSequence(seqNum).
		SetSessionID(data.SessionID).
		SetTotalAfter(data.TotalAfter).
		SetAccepted(data.Accepted)

	if data.ObjectName != nil {
		builder = builder.SetObjectName(*data.ObjectName)
	}

	_, err = builder.Save(ctx)
	if err != nil {
		return fmt.Errorf("save collection event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryCollectionEvents(ctx context.Context, opts QueryOpts) ([]CollectionEventRecord, error) {
	query := r.client.CollectionEvent.Query().
		Order(ent.Desc(collectionevent.FieldSequence))

	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}
	if opts.After > 0 {
		query = query.Where(collectionevent.SequenceGT(opts.After))
	}
	if opts.Before > 0 {
		query = query.Where(collectionevent.SequenceLT(opts.Before))
	}
	if !opts.From.IsZero() {
		query = query.Where(collectionevent.TimestampGTE(opts.From))
	}
	if !opts.To.IsZero() {
		query = query.Where(collectionevent.TimestampLTE(opts.To))
	}

	events, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query collection events: %w", err)
	}

	records := make([]CollectionEventRecord, len(events))
	for i, e := range events {
		records[i] = CollectionEventRecord{
			CollectionEventData: CollectionEventData{
				SessionID:  e.SessionID,
				TotalAfter: e.TotalAfter,
				ObjectName: e.ObjectName,
				Accepted:   e.Accepted,
			},
			Sequence:  e.Sequence,
			Timestamp: e.Timestamp,
		}
	}
	return records, nil
}

func (r *eventRepo) CollectionTotal(ctx context.Context) (int, error) {
	latest, err := r.client.CollectionEvent.Query().
		Where(collectionevent.Accepted(true)).
		Order(ent.Desc(collectionevent.FieldTotalAfter)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query collection total: %w", err)
	}
	return latest.TotalAfter, nil
}

func (r *eventRepo) RejectedCollections(ctx context.Context) (int, error) {
	n, err := r.client.CollectionEvent.Query().
		Where(collectionevent.Accepted(false)).
		Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count rejected collections: %w", err)
	}
	return n, nil
}
