package intro

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/hyejin/orbquest/internal/router"
	"github.com/hyejin/orbquest/internal/screen"
	"github.com/hyejin/orbquest/internal/store"
	"github.com/hyejin/orbquest/internal/tutorial"
)

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

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "" }
func (s *stubScreen) Title() string                           { return "Home" }

func enter() tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: tea.KeyEnter}
}

func TestIntroWalksScriptThenReplaces(t *testing.T) {
	settings := &mockSettings{}
	home := &stubScreen{}
	s := New(settings, func() screen.Screen { return home })

	lines := tutorial.DefaultHomeScript.Len()
	var scr screen.Screen = s
	var cmd tea.Cmd
	for i := 0; i < lines-1; i++ {
		scr, cmd = scr.Update(enter())
		if cmd != nil {
			t.Fatalf("advance %d: expected no command before the last line", i)
		}
	}

	_, cmd = scr.Update(enter())
	if cmd == nil {
		t.Fatal("expected transition command after final advance")
	}
	msg := cmd()
	replace, ok := msg.(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", msg)
	}
	if replace.Screen != screen.Screen(home) {
		t.Error("expected replacement with the home screen")
	}
	if !settings.flags.HasSeenHomeTutorial {
		t.Error("expected home tutorial flag persisted")
	}
}

func TestIntroSkipDismissesImmediately(t *testing.T) {
	settings := &mockSettings{}
	s := New(settings, func() screen.Screen { return &stubScreen{} })

	_, cmd := s.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if cmd == nil {
		t.Fatal("expected transition command on skip")
	}
	if _, ok := cmd().(router.ReplaceScreenMsg); !ok {
		t.Error("expected ReplaceScreenMsg on skip")
	}
	if !settings.flags.HasSeenHomeTutorial {
		t.Error("expected flag persisted on skip")
	}
}

func TestReplayPopsWithoutTouchingFlags(t *testing.T) {
	s := NewReplay()

	var scr screen.Screen = s
	var cmd tea.Cmd
	for i := 0; i < tutorial.DefaultHomeScript.Len(); i++ {
		scr, cmd = scr.Update(enter())
	}

	if cmd == nil {
		t.Fatal("expected pop command after replay")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestIntroTransitionsOnlyOnce(t *testing.T) {
	settings := &mockSettings{}
	s := New(settings, func() screen.Screen { return &stubScreen{} })

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected transition on escape")
	}
	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd != nil {
		t.Error("expected no second transition")
	}
}
