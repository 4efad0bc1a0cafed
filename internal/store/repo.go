package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// ScanEventData is the payload of one completed detection pass.
type ScanEventData struct {
	SessionID       string
	AnchorsCreated  int
	ObjectsDetected int
}

// ScanEventRecord is a persisted scan event.
type ScanEventRecord struct {
	ScanEventData
	Sequence  int64
	Timestamp time.Time
}

// CollectionEventData is the payload of one sphere-collected event.
// TotalAfter is the total the caller asserted; Accepted is false when
// the sequencer refused it for regressing.
type CollectionEventData struct {
	SessionID  string
	TotalAfter int
	ObjectName *string
	Accepted   bool
}

// CollectionEventRecord is a persisted collection event.
type CollectionEventRecord struct {
	CollectionEventData
	Sequence  int64
	Timestamp time.Time
}

// ARSessionEventData is the payload of an AR session lifecycle event.
type ARSessionEventData struct {
	SessionID    string
	Action       string // "start", "fail" or "end"
	Message      *string
	DurationSecs int
}

// ScanStats aggregates the scan history for the stats command.
type ScanStats struct {
	Passes       int
	TotalObjects int
	TotalAnchors int
}

// EventRepo is the append/query surface over the event log.
type EventRepo interface {
	AppendScanEvent(ctx context.Context, data ScanEventData) error
	AppendCollectionEvent(ctx context.Context, data CollectionEventData) error
	AppendARSessionEvent(ctx context.Context, data ARSessionEventData) error

	QueryScanEvents(ctx context.Context, opts QueryOpts) ([]ScanEventRecord, error)
	QueryCollectionEvents(ctx context.Context, opts QueryOpts) ([]CollectionEventRecord, error)

	// CollectionTotal returns the highest accepted total in the log, the
	// authoritative sphere count restored at screen entry.
	CollectionTotal(ctx context.Context) (int, error)

	// RejectedCollections counts refused collection events.
	RejectedCollections(ctx context.Context) (int, error)

	ScanStats(ctx context.Context) (ScanStats, error)
}

// TutorialFlags are the two persisted first-run flags read by the
// tutorial gating policy.
type TutorialFlags struct {
	HasSeenHomeTutorial bool
	HasSeenARTutorial   bool
}

// SettingsRepo persists small key/value state.
type SettingsRepo interface {
	TutorialFlags(ctx context.Context) (TutorialFlags, error)
	SetHasSeenHomeTutorial(ctx context.Context, seen bool) error
	SetHasSeenARTutorial(ctx context.Context, seen bool) error
}
