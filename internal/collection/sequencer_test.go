package collection

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/hyejin/orbquest/internal/store"
)

// recordingRepo captures appended collection events.
type recordingRepo struct {
	store.EventRepo
	events []store.CollectionEventData
}

func (r *recordingRepo) AppendCollectionEvent(ctx context.Context, data store.CollectionEventData) error {
	r.events = append(r.events, data)
	return nil
}

func TestCollectAccepts(t *testing.T) {
	repo := &recordingRepo{}
	s := NewSequencer(repo, "session-1", 5)

	token, ok := s.Collect(context.Background(), 6, "coffee mug")
	if !ok {
		t.Fatal("expected collection to be accepted")
	}
	if token == uuid.Nil {
		t.Error("expected a minted celebration token")
	}
	if s.Total() != 6 {
		t.Errorf("total = %d, want 6", s.Total())
	}
	if !s.CelebrationActive() {
		t.Error("expected celebration active after collect")
	}
	if s.ActiveToken() != token {
		t.Error("expected active token to match returned token")
	}

	if len(repo.events) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.events))
	}
	ev := repo.events[0]
	if !ev.Accepted || ev.TotalAfter != 6 || ev.ObjectName == nil || *ev.ObjectName != "coffee mug" {
		t.Errorf("persisted event = %+v, want accepted total 6 name 'coffee mug'", ev)
	}
}

func TestCollectEqualTotalAccepted(t *testing.T) {
	s := NewSequencer(nil, "session-1", 5)

	if _, ok := s.Collect(context.Background(), 5, "lamp"); !ok {
		t.Error("expected equal total to be accepted")
	}
	if s.Total() != 5 {
		t.Errorf("total = %d, want 5", s.Total())
	}
}

func TestCollectRejectsRegression(t *testing.T) {
	repo := &recordingRepo{}
	s := NewSequencer(repo, "session-1", 5)

	token, ok := s.Collect(context.Background(), 4, "ghost")
	if ok {
		t.Fatal("expected regressing total to be rejected")
	}
	if token != uuid.Nil {
		t.Error("expected uuid.Nil token on rejection")
	}
	if s.Total() != 5 {
		t.Errorf("total = %d, want 5 unchanged", s.Total())
	}
	if s.CelebrationActive() {
		t.Error("rejection must not start a celebration")
	}
	if s.Rejected() != 1 {
		t.Errorf("rejected = %d, want 1", s.Rejected())
	}

	if len(repo.events) != 1 {
		t.Fatalf("persisted %d events, want 1", len(repo.events))
	}
	if repo.events[0].Accepted {
		t.Error("expected rejection persisted with accepted=false")
	}
}

func TestExpireHidesOnlyMatchingToken(t *testing.T) {
	s := NewSequencer(nil, "session-1", 0)

	token1, _ := s.Collect(context.Background(), 1, "first")
	token2, _ := s.Collect(context.Background(), 2, "second")

	// The first celebration's timer fires after the second collect
	// superseded it.
	if s.Expire(token1) {
		t.Error("expected stale token expiry to be a no-op")
	}
	if !s.CelebrationActive() {
		t.Error("stale expiry must not hide the newer celebration")
	}

	if !s.Expire(token2) {
		t.Error("expected matching token to expire the celebration")
	}
	if s.CelebrationActive() {
		t.Error("expected celebration hidden after matching expiry")
	}
}

func TestExpireWhileInactive(t *testing.T) {
	s := NewSequencer(nil, "session-1", 0)

	if s.Expire(uuid.New()) {
		t.Error("expected expiry with no celebration to be a no-op")
	}

	token, _ := s.Collect(context.Background(), 1, "")
	s.Expire(token)
	if s.Expire(token) {
		t.Error("expected double expiry to be a no-op")
	}
}

func TestRapidCollectionsEachResetWindow(t *testing.T) {
	s := NewSequencer(nil, "session-1", 0)

	var tokens []uuid.UUID
	for i := 1; i <= 3; i++ {
		token, ok := s.Collect(context.Background(), i, "sphere")
		if !ok {
			t.Fatalf("collect %d refused", i)
		}
		tokens = append(tokens, token)
	}

	if tokens[0] == tokens[1] || tokens[1] == tokens[2] {
		t.Error("expected a distinct token per collection")
	}

	// Only the last collection's expiry hides the overlay.
	s.Expire(tokens[0])
	s.Expire(tokens[1])
	if !s.CelebrationActive() {
		t.Error("expected celebration still visible after stale expiries")
	}
	s.Expire(tokens[2])
	if s.CelebrationActive() {
		t.Error("expected celebration hidden after final expiry")
	}
	if s.Total() != 3 {
		t.Errorf("total = %d, want 3", s.Total())
	}
}
