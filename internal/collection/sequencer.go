package collection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/hyejin/orbquest/internal/store"
)

// CelebrationDuration is how long a celebration stays visible before its
// expiry fires.
const CelebrationDuration = 1200 * time.Millisecond

// Sequencer tracks the running sphere total and drives the celebration
// overlay. Every accepted collection mints a fresh celebration token; the
// expiry timer carries the token it was scheduled with, so a stale timer
// from a superseded celebration cannot hide a newer one.
type Sequencer struct {
	repo      store.EventRepo
	sessionID string

	total    int
	active   bool
	token    uuid.UUID
	rejected int
}

// NewSequencer creates a sequencer seeded with the persisted total.
// repo may be nil (no persistence, e.g. in tests).
func NewSequencer(repo store.EventRepo, sessionID string, initialTotal int) *Sequencer {
	return &Sequencer{
		repo:      repo,
		sessionID: sessionID,
		total:     initialTotal,
	}
}

// Collect applies a collection event carrying the caller-authoritative
// new total. On acceptance it returns the minted celebration token; the
// caller schedules an expiry tagged with that token. A total below the
// current one is a policy violation: the event is recorded as rejected,
// state is untouched, and ok is false.
func (s *Sequencer) Collect(ctx context.Context, newTotal int, objectName string) (token uuid.UUID, ok bool) {
	if newTotal < s.total {
		s.rejected++
		s.persist(ctx, newTotal, objectName, false)
		return uuid.Nil, false
	}

	s.total = newTotal
	s.token = uuid.New()
	s.active = true
	s.persist(ctx, newTotal, objectName, true)
	return s.token, true
}

// Expire handles a celebration expiry timer firing. It hides the
// celebration only when token still identifies the active one; a timer
// superseded by a later Collect is a no-op.
func (s *Sequencer) Expire(token uuid.UUID) bool {
	if !s.active || token != s.token {
		return false
	}
	s.active = false
	return true
}

// Total returns the running sphere total.
func (s *Sequencer) Total() int {
	return s.total
}

// CelebrationActive reports whether the celebration overlay is visible.
func (s *Sequencer) CelebrationActive() bool {
	return s.active
}

// ActiveToken returns the token of the current celebration. Meaningful
// only while CelebrationActive.
func (s *Sequencer) ActiveToken() uuid.UUID {
	return s.token
}

// Rejected returns how many collection events were refused for
// regressing the total.
func (s *Sequencer) Rejected() int {
	return s.rejected
}

func (s *Sequencer) persist(ctx context.Context, totalAfter int, objectName string, accepted bool) {
	if s.repo == nil {
		return
	}
	data := store.CollectionEventData{
		SessionID:  s.sessionID,
		TotalAfter: totalAfter,
		Accepted:   accepted,
	}
	if objectName != "" {
		data.ObjectName = &objectName
	}
	_ = s.repo.AppendCollectionEvent(ctx, data)
}
