package intro

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyejin/orbquest/internal/router"
	"github.com/hyejin/orbquest/internal/screen"
	"github.com/hyejin/orbquest/internal/store"
	"github.com/hyejin/orbquest/internal/tutorial"
	"github.com/hyejin/orbquest/internal/ui/layout"
	"github.com/hyejin/orbquest/internal/ui/theme"
)

const mascotArt = `   ╭─────────╮
   │  ◉   ◉  │
   │    ◡    │
   ╰──┬───┬──╯
      ○   ○`

// IntroScreen walks a first-time player through the home tutorial
// before handing off to the screen produced by homeFactory.
type IntroScreen struct {
	settings     store.SettingsRepo
	homeFactory  func() screen.Screen
	dialogue     *tutorial.Dialogue
	replay       bool
	transitioned bool
}

var _ screen.Screen = (*IntroScreen)(nil)
var _ screen.KeyHintProvider = (*IntroScreen)(nil)

// New creates an IntroScreen over the home walkthrough script.
func New(settings store.SettingsRepo, homeFactory func() screen.Screen) *IntroScreen {
	return &IntroScreen{
		settings:    settings,
		homeFactory: homeFactory,
		dialogue:    tutorial.NewDialogue(tutorial.DefaultHomeScript),
	}
}

// NewReplay creates an IntroScreen that replays the walkthrough and
// pops back when done, without touching the first-run flag.
func NewReplay() *IntroScreen {
	return &IntroScreen{
		dialogue: tutorial.NewDialogue(tutorial.DefaultHomeScript),
		replay:   true,
	}
}

func (i *IntroScreen) Title() string {
	if i.replay {
		return "Tutorial"
	}
	return "Welcome"
}

func (i *IntroScreen) Init() tea.Cmd {
	return nil
}

func (i *IntroScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Next"},
		{Key: "X", Description: "Skip"},
	}
}

func (i *IntroScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return i, nil
	}

	switch keyMsg.String() {
	case "enter", " ", "space":
		if i.dialogue.Advance() {
			return i, i.finish()
		}
		return i, nil
	case "x", "X", "esc":
		i.dialogue.Dismiss()
		return i, i.finish()
	}

	return i, nil
}

// finish records the walkthrough as seen and swaps in the home screen.
func (i *IntroScreen) finish() tea.Cmd {
	if i.transitioned {
		return nil
	}
	i.transitioned = true
	if i.replay {
		return func() tea.Msg { return router.PopScreenMsg{} }
	}
	_ = i.settings.SetHasSeenHomeTutorial(context.Background(), true)
	home := i.homeFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: home}
	}
}

func (i *IntroScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().Foreground(theme.Secondary).Render(mascotArt))
	sections = append(sections, "")

	text := lipgloss.NewStyle().Foreground(theme.Text).Render(i.dialogue.Line())
	if !i.dialogue.OnLastLine() {
		text += lipgloss.NewStyle().Foreground(theme.Secondary).Render("  ▼")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(minInt(width-12, 56)).
		Padding(0, 2).
		Render(text)
	sections = append(sections, box)

	sections = append(sections, "")
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("press enter to continue"))

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
