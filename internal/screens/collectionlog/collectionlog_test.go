package collectionlog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/hyejin/orbquest/internal/router"
	"github.com/hyejin/orbquest/internal/store"
)

type stubEventRepo struct {
	records  []store.CollectionEventRecord
	rejected int
	queryErr error
}

func (r *stubEventRepo) AppendScanEvent(context.Context, store.ScanEventData) error { return nil }
func (r *stubEventRepo) AppendCollectionEvent(context.Context, store.CollectionEventData) error {
	return nil
}
func (r *stubEventRepo) AppendARSessionEvent(context.Context, store.ARSessionEventData) error {
	return nil
}
func (r *stubEventRepo) QueryScanEvents(context.Context, store.QueryOpts) ([]store.ScanEventRecord, error) {
	return nil, nil
}
func (r *stubEventRepo) QueryCollectionEvents(context.Context, store.QueryOpts) ([]store.CollectionEventRecord, error) {
	return r.records, r.queryErr
}
func (r *stubEventRepo) CollectionTotal(context.Context) (int, error) { return 0, nil }
func (r *stubEventRepo) RejectedCollections(context.Context) (int, error) {
	return r.rejected, nil
}
func (r *stubEventRepo) ScanStats(context.Context) (store.ScanStats, error) {
	return store.ScanStats{}, nil
}

func strPtr(s string) *string { return &s }

func record(seq int64, total int, name string, accepted bool) store.CollectionEventRecord {
	return store.CollectionEventRecord{
		CollectionEventData: store.CollectionEventData{
			SessionID:  "sess-1",
			TotalAfter: total,
			ObjectName: strPtr(name),
			Accepted:   accepted,
		},
		Sequence:  seq,
		Timestamp: time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC).Add(time.Duration(seq) * time.Minute),
	}
}

func loaded(t *testing.T, repo *stubEventRepo) *CollectionLogScreen {
	t.Helper()
	s := New(repo)
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected load command from Init")
	}
	s.Update(cmd())
	return s
}

func TestSphereCountUsesHighestAcceptedTotal(t *testing.T) {
	repo := &stubEventRepo{
		records: []store.CollectionEventRecord{
			record(1, 1, "mug", true),
			record(2, 2, "lamp", true),
			record(3, 1, "ghost", false),
		},
		rejected: 1,
	}
	s := loaded(t, repo)

	if got := s.SphereCount(); got != 2 {
		t.Errorf("SphereCount = %d, want 2", got)
	}
}

func TestRejectedHiddenUntilToggled(t *testing.T) {
	repo := &stubEventRepo{
		records: []store.CollectionEventRecord{
			record(1, 1, "mug", true),
			record(2, 1, "ghost", false),
		},
		rejected: 1,
	}
	s := loaded(t, repo)

	if got := len(s.visible()); got != 1 {
		t.Fatalf("visible before toggle = %d, want 1", got)
	}

	s.Update(tea.KeyPressMsg{Code: 'r', Text: "r"})
	if got := len(s.visible()); got != 2 {
		t.Errorf("visible after toggle = %d, want 2", got)
	}

	view := s.View(80, 24)
	if !strings.Contains(view, "ghost") {
		t.Error("expected rejected record in view after toggle")
	}
}

func TestVisibleIsNewestFirst(t *testing.T) {
	repo := &stubEventRepo{
		records: []store.CollectionEventRecord{
			record(1, 1, "mug", true),
			record(2, 2, "lamp", true),
		},
	}
	s := loaded(t, repo)

	visible := s.visible()
	if len(visible) != 2 {
		t.Fatalf("visible = %d records, want 2", len(visible))
	}
	if *visible[0].ObjectName != "lamp" || *visible[1].ObjectName != "mug" {
		t.Errorf("expected newest first, got %q then %q", *visible[0].ObjectName, *visible[1].ObjectName)
	}
}

func TestEscapePopsScreen(t *testing.T) {
	s := loaded(t, &stubEventRepo{})

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop command on escape")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestQueryErrorShownInView(t *testing.T) {
	repo := &stubEventRepo{queryErr: errors.New("database locked")}
	s := loaded(t, repo)

	view := s.View(80, 24)
	if !strings.Contains(view, "database locked") {
		t.Errorf("expected error message in view, got %q", view)
	}
}

func TestEmptyLogShowsPrompt(t *testing.T) {
	s := loaded(t, &stubEventRepo{})

	view := s.View(80, 24)
	if !strings.Contains(view, "Nothing collected yet") {
		t.Error("expected empty-state prompt")
	}
}
