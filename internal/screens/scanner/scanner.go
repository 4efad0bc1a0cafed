package scanner

import (
	"context"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/hyejin/orbquest/internal/arsession"
	"github.com/hyejin/orbquest/internal/collection"
	"github.com/hyejin/orbquest/internal/describe"
	"github.com/hyejin/orbquest/internal/router"
	"github.com/hyejin/orbquest/internal/scan"
	"github.com/hyejin/orbquest/internal/screen"
	"github.com/hyejin/orbquest/internal/store"
	"github.com/hyejin/orbquest/internal/tutorial"
	"github.com/hyejin/orbquest/internal/ui/components"
	"github.com/hyejin/orbquest/internal/ui/layout"
	"github.com/hyejin/orbquest/internal/vision"

	"github.com/google/uuid"
)

// frames are scene seeds the scanner cycles through. They stand in for
// camera frames when no capture pipeline is attached.
var frames = []string{
	"A wooden desk with a laptop, a coffee mug, and a stack of paperbacks near a window.",
	"A kitchen counter with a kettle, two ceramic bowls, and a cutting board with an apple.",
	"A living room corner with a floor lamp, a potted fern, and a guitar on a stand.",
	"A bookshelf holding framed photos, a small globe, and a row of hardcover novels.",
	"A balcony table with a watering can, clay pots, and a folded garden chair.",
}

// ScannerScreen implements screen.Screen for the live scanning view.
type ScannerScreen struct {
	provider  vision.Provider
	eventRepo store.EventRepo
	settings  store.SettingsRepo

	sessionID  string
	controller *scan.Controller
	buffer     *describe.Buffer
	spheres    *collection.Sequencer
	dialogue   *tutorial.Dialogue
	spinner    components.Spinner

	// pending holds names of detected objects not yet collected.
	pending  []string
	frameIdx int

	started    time.Time
	sessionErr string
	statusMsg  string
	attached   bool
}

var _ screen.Screen = (*ScannerScreen)(nil)
var _ screen.KeyHintProvider = (*ScannerScreen)(nil)
var _ screen.SphereCountProvider = (*ScannerScreen)(nil)

// New creates a ScannerScreen. initialTotal seeds the sphere counter
// from the persisted collection log; showTutorial overlays the AR
// walkthrough on first entry.
func New(provider vision.Provider, eventRepo store.EventRepo, settings store.SettingsRepo, initialTotal int, showTutorial bool) *ScannerScreen {
	sessionID := uuid.New().String()
	s := &ScannerScreen{
		provider:   provider,
		eventRepo:  eventRepo,
		settings:   settings,
		sessionID:  sessionID,
		controller: scan.NewController(),
		buffer:     describe.NewBuffer(),
		spheres:    collection.NewSequencer(eventRepo, sessionID, initialTotal),
		spinner:    components.NewSpinner(),
	}
	if showTutorial {
		s.dialogue = tutorial.NewDialogue(tutorial.DefaultARScript)
	}
	return s
}

func (s *ScannerScreen) Init() tea.Cmd {
	s.attached = true
	s.started = time.Now()
	return s.createSession()
}

func (s *ScannerScreen) Title() string {
	return "Scanner"
}

func (s *ScannerScreen) SphereCount() int {
	return s.spheres.Total()
}

func (s *ScannerScreen) KeyHints() []layout.KeyHint {
	if s.dialogue != nil {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Next"},
			{Key: "X", Description: "Skip"},
		}
	}
	if s.sessionErr != "" {
		return []layout.KeyHint{
			{Key: "any key", Description: "Back"},
		}
	}
	hints := []layout.KeyHint{
		{Key: "S", Description: s.controller.TriggerLabel()},
	}
	if len(s.pending) > 0 {
		hints = append(hints, layout.KeyHint{Key: "Space", Description: "Collect sphere"})
	}
	if s.buffer.Visible() {
		hints = append(hints, layout.KeyHint{Key: "C", Description: "Clear description"})
	}
	hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
	return hints
}

func (s *ScannerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if !s.attached {
		return s, nil
	}

	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleSessionReady()

	case sessionFailedMsg:
		return s.handleSessionFailed(msg)

	case detectionDoneMsg:
		return s.handleDetectionDone(msg)

	case analysisTokenMsg:
		return s.handleAnalysisToken(msg)

	case analysisDoneMsg:
		if s.buffer.Generation() == msg.gen {
			s.buffer.Complete()
		}
		return s, nil

	case celebrationExpiredMsg:
		s.spheres.Expire(msg.token)
		return s, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		if s.controller.State() == scan.StateScanning {
			return s, cmd
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s, nil
}

// createSession starts the AR session and persists the start event. A
// missing vision provider is surfaced as an unavailable camera.
func (s *ScannerScreen) createSession() tea.Cmd {
	return func() tea.Msg {
		if s.provider == nil {
			return sessionFailedMsg{err: &arsession.ErrCameraUnavailable{}}
		}
		_ = s.eventRepo.AppendARSessionEvent(context.Background(), store.ARSessionEventData{
			SessionID: s.sessionID,
			Action:    "start",
		})
		return sessionReadyMsg{}
	}
}

func (s *ScannerScreen) handleSessionReady() (screen.Screen, tea.Cmd) {
	s.statusMsg = "Session ready. Point at a scene and scan."
	return s, nil
}

func (s *ScannerScreen) handleSessionFailed(msg sessionFailedMsg) (screen.Screen, tea.Cmd) {
	s.sessionErr = arsession.Classify(msg.err)
	_ = s.eventRepo.AppendARSessionEvent(context.Background(), store.ARSessionEventData{
		SessionID: s.sessionID,
		Action:    "fail",
		Message:   &s.sessionErr,
	})
	return s, nil
}

func (s *ScannerScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	// Session failure is terminal for this screen.
	if s.sessionErr != "" {
		return s, s.leave()
	}

	// Tutorial overlay captures all keys while shown.
	if s.dialogue != nil {
		switch key {
		case "enter", " ", "space":
			if s.dialogue.Advance() {
				return s.finishTutorial()
			}
			return s, nil
		case "x", "X", "esc":
			s.dialogue.Dismiss()
			return s.finishTutorial()
		}
		return s, nil
	}

	switch key {
	case "esc":
		return s, s.leave()
	case "s", "S", "enter":
		return s.startScan()
	case " ", "space":
		return s.collectNext()
	case "c", "C":
		s.buffer.Clear()
		return s, nil
	}

	return s, nil
}

// finishTutorial removes the overlay and records that the walkthrough
// was seen, so it is not shown on later entries.
func (s *ScannerScreen) finishTutorial() (screen.Screen, tea.Cmd) {
	s.dialogue = nil
	return s, func() tea.Msg {
		_ = s.settings.SetHasSeenARTutorial(context.Background(), true)
		return nil
	}
}

// startScan arms a detection pass and restarts the description stream.
func (s *ScannerScreen) startScan() (screen.Screen, tea.Cmd) {
	if !s.controller.StartScan() {
		return s, nil
	}
	s.pending = nil
	s.statusMsg = ""
	frame := frames[s.frameIdx%len(frames)]
	s.frameIdx++
	return s, tea.Batch(
		s.runDetection(frame),
		s.startAnalysis(frame),
		s.spinner.Tick(),
	)
}

// runDetection asks the vision provider for structured detections.
func (s *ScannerScreen) runDetection(frame string) tea.Cmd {
	return func() tea.Msg {
		det, err := s.provider.DetectObjects(context.Background(), vision.SceneRequest{Frame: frame})
		return detectionDoneMsg{detection: det, err: err}
	}
}

// startAnalysis opens a fresh description stream. Tokens are bridged
// into the update loop over a channel so ordering is preserved; the
// generation stamped here lets the buffer drop anything a superseded
// stream still emits.
func (s *ScannerScreen) startAnalysis(frame string) tea.Cmd {
	gen := s.buffer.Start()
	ch := make(chan string, 16)
	go func() {
		defer close(ch)
		_, _ = s.provider.DescribeScene(context.Background(), vision.SceneRequest{Frame: frame}, func(token string) {
			ch <- token
		})
	}()
	return waitForToken(ch, gen)
}

func waitForToken(ch <-chan string, gen int) tea.Cmd {
	return func() tea.Msg {
		token, ok := <-ch
		if !ok {
			return analysisDoneMsg{gen: gen}
		}
		return analysisTokenMsg{gen: gen, text: token, ch: ch}
	}
}

func (s *ScannerScreen) handleAnalysisToken(msg analysisTokenMsg) (screen.Screen, tea.Cmd) {
	s.buffer.Append(msg.text, msg.gen)
	// Keep draining even when the token was stale, so the old
	// stream's goroutine can finish.
	return s, waitForToken(msg.ch, msg.gen)
}

func (s *ScannerScreen) handleDetectionDone(msg detectionDoneMsg) (screen.Screen, tea.Cmd) {
	if msg.err != nil {
		s.controller.DetectionCompleted(0, 0)
		s.statusMsg = "Detection failed. Try again."
		return s, nil
	}

	det := msg.detection
	s.controller.DetectionCompleted(det.AnchorsCreated, len(det.Objects))

	_ = s.eventRepo.AppendScanEvent(context.Background(), store.ScanEventData{
		SessionID:       s.sessionID,
		AnchorsCreated:  det.AnchorsCreated,
		ObjectsDetected: len(det.Objects),
	})

	for _, obj := range det.Objects {
		s.pending = append(s.pending, obj.Name)
	}
	return s, nil
}

// collectNext collects the oldest uncollected sphere and starts its
// celebration window.
func (s *ScannerScreen) collectNext() (screen.Screen, tea.Cmd) {
	if len(s.pending) == 0 {
		return s, nil
	}
	name := s.pending[0]
	s.pending = s.pending[1:]

	token, ok := s.spheres.Collect(context.Background(), s.spheres.Total()+1, name)
	if !ok {
		return s, nil
	}
	return s, tea.Tick(collection.CelebrationDuration, func(time.Time) tea.Msg {
		return celebrationExpiredMsg{token: token}
	})
}

// leave tears the screen down: detaches so in-flight messages are
// ignored, persists the session end event, and pops back.
func (s *ScannerScreen) leave() tea.Cmd {
	s.attached = false
	durationSecs := int(time.Since(s.started).Seconds())
	_ = s.eventRepo.AppendARSessionEvent(context.Background(), store.ARSessionEventData{
		SessionID:    s.sessionID,
		Action:       "end",
		DurationSecs: durationSecs,
	})
	return func() tea.Msg { return router.PopScreenMsg{} }
}
