package scanner

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hyejin/orbquest/internal/arsession"
	"github.com/hyejin/orbquest/internal/describe"
	"github.com/hyejin/orbquest/internal/scan"
	"github.com/hyejin/orbquest/internal/screen"
	"github.com/hyejin/orbquest/internal/store"
	"github.com/hyejin/orbquest/internal/vision"
)

// mockEventRepo implements store.EventRepo for testing.
type mockEventRepo struct {
	scanEvents       []store.ScanEventData
	collectionEvents []store.CollectionEventData
	sessionEvents    []store.ARSessionEventData
}

func (m *mockEventRepo) AppendScanEvent(_ context.Context, data store.ScanEventData) error {
	m.scanEvents = append(m.scanEvents, data)
	return nil
}
func (m *mockEventRepo) AppendCollectionEvent(_ context.Context, data store.CollectionEventData) error {
	m.collectionEvents = append(m.collectionEvents, data)
	return nil
}
func (m *mockEventRepo) AppendARSessionEvent(_ context.Context, data store.ARSessionEventData) error {
	m.sessionEvents = append(m.sessionEvents, data)
	return nil
}
func (m *mockEventRepo) QueryScanEvents(_ context.Context, _ store.QueryOpts) ([]store.ScanEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) QueryCollectionEvents(_ context.Context, _ store.QueryOpts) ([]store.CollectionEventRecord, error) {
	return nil, nil
}
func (m *mockEventRepo) CollectionTotal(_ context.Context) (int, error) {
	return 0, nil
}
func (m *mockEventRepo) RejectedCollections(_ context.Context) (int, error) {
	return 0, nil
}
func (m *mockEventRepo) ScanStats(_ context.Context) (store.ScanStats, error) {
	return store.ScanStats{}, nil
}

// mockSettings implements store.SettingsRepo for testing.
type mockSettings struct {
	flags store.TutorialFlags
}

func (m *mockSettings) TutorialFlags(_ context.Context) (store.TutorialFlags, error) {
	return m.flags, nil
}
func (m *mockSettings) SetHasSeenHomeTutorial(_ context.Context, seen bool) error {
	m.flags.HasSeenHomeTutorial = seen
	return nil
}
func (m *mockSettings) SetHasSeenARTutorial(_ context.Context, seen bool) error {
	m.flags.HasSeenARTutorial = seen
	return nil
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testScreen(showTutorial bool) (*ScannerScreen, *mockEventRepo, *mockSettings) {
	provider := vision.NewMockProvider()
	repo := &mockEventRepo{}
	settings := &mockSettings{}
	s := New(provider, repo, settings, 0, showTutorial)
	s.Init()
	return s, repo, settings
}

func TestScannerScreen_Title(t *testing.T) {
	s, _, _ := testScreen(false)
	if s.Title() != "Scanner" {
		t.Errorf("Title = %q, want Scanner", s.Title())
	}
}

func TestScannerScreen_SessionFailedShowsClassifiedMessage(t *testing.T) {
	s, repo, _ := testScreen(false)

	var scr screen.Screen = s
	scr, _ = scr.Update(sessionFailedMsg{err: &arsession.ErrCameraAccess{Reason: arsession.CameraInUse}})
	ss := scr.(*ScannerScreen)

	if ss.sessionErr != arsession.MsgCameraInUse {
		t.Errorf("sessionErr = %q, want %q", ss.sessionErr, arsession.MsgCameraInUse)
	}
	if len(repo.sessionEvents) != 1 || repo.sessionEvents[0].Action != "fail" {
		t.Errorf("session events = %+v, want one fail event", repo.sessionEvents)
	}
	if repo.sessionEvents[0].Message == nil || *repo.sessionEvents[0].Message != arsession.MsgCameraInUse {
		t.Error("expected fail event to carry the classified message")
	}

	view := ss.View(80, 24)
	if !strings.Contains(view, arsession.MsgCameraInUse) {
		t.Error("expected error view to show the classified message")
	}
}

func TestScannerScreen_StartScanHoldsTrigger(t *testing.T) {
	s, _, _ := testScreen(false)
	s.Update(sessionReadyMsg{})

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('s'))
	ss := scr.(*ScannerScreen)

	if ss.controller.State() != scan.StateScanning {
		t.Errorf("state = %v, want Scanning", ss.controller.State())
	}
	if cmd == nil {
		t.Error("expected commands to start detection and analysis")
	}

	// A second tap while scanning changes nothing.
	_, cmd = ss.Update(keyPress('s'))
	if cmd != nil {
		t.Error("expected second scan tap to be a no-op")
	}
}

func TestScannerScreen_DetectionDonePersistsAndQueuesSpheres(t *testing.T) {
	s, repo, _ := testScreen(false)
	s.Update(sessionReadyMsg{})
	s.Update(keyPress('s'))

	det := &vision.Detection{
		AnchorsCreated: 2,
		Objects: []vision.DetectedObject{
			{Name: "coffee mug", Confidence: 0.9},
			{Name: "laptop", Confidence: 0.8},
		},
	}
	var scr screen.Screen = s
	scr, _ = scr.Update(detectionDoneMsg{detection: det})
	ss := scr.(*ScannerScreen)

	if ss.controller.State() != scan.StateIdle {
		t.Errorf("state = %v, want trigger re-armed", ss.controller.State())
	}
	if len(repo.scanEvents) != 1 {
		t.Fatalf("scan events = %d, want 1", len(repo.scanEvents))
	}
	if repo.scanEvents[0].ObjectsDetected != 2 || repo.scanEvents[0].AnchorsCreated != 2 {
		t.Errorf("scan event = %+v", repo.scanEvents[0])
	}
	if len(ss.pending) != 2 || ss.pending[0] != "coffee mug" {
		t.Errorf("pending = %v, want both detected objects queued", ss.pending)
	}
}

func TestScannerScreen_DetectionErrorRearms(t *testing.T) {
	s, repo, _ := testScreen(false)
	s.Update(sessionReadyMsg{})
	s.Update(keyPress('s'))

	var scr screen.Screen = s
	scr, _ = scr.Update(detectionDoneMsg{err: &vision.ErrProviderUnavailable{}})
	ss := scr.(*ScannerScreen)

	if !ss.controller.TriggerEnabled() {
		t.Error("expected trigger re-armed after failed detection")
	}
	if len(repo.scanEvents) != 0 {
		t.Error("failed detection must not persist a scan event")
	}
	if ss.statusMsg == "" {
		t.Error("expected a failure status message")
	}
}

func TestScannerScreen_AnalysisTokensRespectGeneration(t *testing.T) {
	s, _, _ := testScreen(false)
	s.Update(sessionReadyMsg{})
	s.Update(keyPress('s'))

	gen := s.buffer.Generation()
	s.Update(analysisTokenMsg{gen: gen, text: " a desk"})
	if s.buffer.Text() != "Analyzing scene... a desk" {
		t.Errorf("buffer text = %q", s.buffer.Text())
	}

	// Token from a superseded stream is dropped.
	s.Update(analysisTokenMsg{gen: gen - 1, text: " stale"})
	if strings.Contains(s.buffer.Text(), "stale") {
		t.Error("expected stale token dropped")
	}

	s.Update(analysisDoneMsg{gen: gen})
	if s.buffer.Phase() != describe.Completed {
		t.Errorf("phase = %v, want Completed", s.buffer.Phase())
	}
}

func TestScannerScreen_CollectAndCelebrationExpiry(t *testing.T) {
	s, repo, _ := testScreen(false)
	s.Update(sessionReadyMsg{})
	s.Update(keyPress('s'))
	s.Update(detectionDoneMsg{detection: &vision.Detection{
		AnchorsCreated: 1,
		Objects:        []vision.DetectedObject{{Name: "lamp", Confidence: 0.7}},
	}})

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress(' '))
	ss := scr.(*ScannerScreen)

	if !ss.spheres.CelebrationActive() {
		t.Fatal("expected celebration active after collect")
	}
	if ss.spheres.Total() != 1 {
		t.Errorf("total = %d, want 1", ss.spheres.Total())
	}
	if cmd == nil {
		t.Error("expected expiry timer command")
	}
	if len(repo.collectionEvents) != 1 || !repo.collectionEvents[0].Accepted {
		t.Errorf("collection events = %+v", repo.collectionEvents)
	}

	token := ss.spheres.ActiveToken()
	ss.Update(celebrationExpiredMsg{token: token})
	if ss.spheres.CelebrationActive() {
		t.Error("expected celebration hidden after matching expiry")
	}
}

func TestScannerScreen_CollectWithNothingPending(t *testing.T) {
	s, repo, _ := testScreen(false)
	s.Update(sessionReadyMsg{})

	_, cmd := s.Update(keyPress(' '))
	if cmd != nil {
		t.Error("expected no command with nothing to collect")
	}
	if len(repo.collectionEvents) != 0 {
		t.Error("expected no collection event")
	}
}

func TestScannerScreen_TutorialOverlay(t *testing.T) {
	s, _, settings := testScreen(true)

	if s.dialogue == nil {
		t.Fatal("expected tutorial overlay on first entry")
	}

	// Scan keys are captured while the overlay is up.
	s.Update(keyPress('s'))
	if s.controller.State() != scan.StateIdle {
		t.Error("expected scan trigger inert under the overlay")
	}

	// Advance through all five lines.
	var cmd tea.Cmd
	var scr screen.Screen = s
	for i := 0; i < 5; i++ {
		scr, cmd = scr.Update(specialKey(tea.KeyEnter))
	}
	ss := scr.(*ScannerScreen)

	if ss.dialogue != nil {
		t.Error("expected overlay dismissed after final advance")
	}
	if cmd == nil {
		t.Fatal("expected flag-persist command")
	}
	cmd()
	if !settings.flags.HasSeenARTutorial {
		t.Error("expected AR tutorial flag persisted")
	}
}

func TestScannerScreen_TutorialSkip(t *testing.T) {
	s, _, settings := testScreen(true)

	var scr screen.Screen = s
	scr, cmd := scr.Update(keyPress('x'))
	ss := scr.(*ScannerScreen)

	if ss.dialogue != nil {
		t.Error("expected overlay dismissed on skip")
	}
	if cmd == nil {
		t.Fatal("expected flag-persist command")
	}
	cmd()
	if !settings.flags.HasSeenARTutorial {
		t.Error("expected AR tutorial flag persisted on skip")
	}
}

func TestScannerScreen_LeaveDetaches(t *testing.T) {
	s, repo, _ := testScreen(false)
	s.Update(sessionReadyMsg{})

	var scr screen.Screen = s
	scr, cmd := scr.Update(specialKey(tea.KeyEscape))
	ss := scr.(*ScannerScreen)

	if cmd == nil {
		t.Fatal("expected pop command on leave")
	}
	var endSeen bool
	for _, ev := range repo.sessionEvents {
		if ev.Action == "end" {
			endSeen = true
		}
	}
	if !endSeen {
		t.Error("expected session end event persisted")
	}

	// In-flight messages after teardown are ignored.
	before := len(repo.scanEvents)
	ss.Update(detectionDoneMsg{detection: &vision.Detection{AnchorsCreated: 1}})
	if len(repo.scanEvents) != before {
		t.Error("expected detached screen to ignore late detection")
	}
}

func TestScannerScreen_ViewRendersTriggerStates(t *testing.T) {
	s, _, _ := testScreen(false)
	s.Update(sessionReadyMsg{})

	if view := s.View(80, 24); !strings.Contains(view, "Scan") {
		t.Error("expected idle view to show the scan trigger")
	}

	s.Update(keyPress('s'))
	if view := s.View(80, 24); !strings.Contains(view, "Scanning...") {
		t.Error("expected scanning view to show the held trigger")
	}
}
