package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyejin/orbquest/internal/router"
	"github.com/hyejin/orbquest/internal/screen"
	"github.com/hyejin/orbquest/internal/screens/home"
	"github.com/hyejin/orbquest/internal/screens/intro"
	"github.com/hyejin/orbquest/internal/store"
	"github.com/hyejin/orbquest/internal/tutorial"
	"github.com/hyejin/orbquest/internal/ui/layout"
	"github.com/hyejin/orbquest/internal/vision"
)

// Options carries the dependencies the TUI needs.
type Options struct {
	Provider  vision.Provider
	EventRepo store.EventRepo
	Settings  store.SettingsRepo
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	width  int
	height int
}

// newAppModel builds the root model. First-time players boot into the
// home walkthrough; returning players go straight to the home screen.
func newAppModel(opts Options) AppModel {
	homeFactory := func() screen.Screen {
		return home.New(opts.Provider, opts.EventRepo, opts.Settings)
	}

	var first screen.Screen
	flags, _ := opts.Settings.TutorialFlags(context.Background())
	if tutorial.Decide(flags.HasSeenHomeTutorial, flags.HasSeenARTutorial) == tutorial.ShowHomeTutorial {
		first = intro.New(opts.Settings, homeFactory)
	} else {
		first = homeFactory()
	}

	return AppModel{
		router: router.New(first),
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	spheres := 0
	if active != nil {
		title = active.Title()
		if sp, ok := active.(screen.SphereCountProvider); ok {
			spheres = sp.SphereCount()
		}
	}

	header := layout.RenderHeader(title, spheres, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		if hints := hp.KeyHints(); len(hints) > 0 {
			footerHints = hints
		}
	}
	footerHints = append(footerHints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
