package home

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/hyejin/orbquest/internal/router"
	"github.com/hyejin/orbquest/internal/screen"
	"github.com/hyejin/orbquest/internal/screens/collectionlog"
	"github.com/hyejin/orbquest/internal/screens/intro"
	"github.com/hyejin/orbquest/internal/screens/scanner"
	"github.com/hyejin/orbquest/internal/store"
	"github.com/hyejin/orbquest/internal/ui/components"
	"github.com/hyejin/orbquest/internal/vision"
)

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	menu        components.Menu
	menuLabels  []string
	sphereCount int
	scanStats   store.ScanStats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.SphereCountProvider = (*HomeScreen)(nil)

// New creates a HomeScreen. The sphere count and scan stats shown on
// the dashboard are restored from the event log.
func New(provider vision.Provider, eventRepo store.EventRepo, settings store.SettingsRepo) *HomeScreen {
	ctx := context.Background()

	var sphereCount int
	var stats store.ScanStats
	if eventRepo != nil {
		sphereCount, _ = eventRepo.CollectionTotal(ctx)
		stats, _ = eventRepo.ScanStats(ctx)
	}

	menuLabels := []string{"START SCANNING", "COLLECTION", "TUTORIAL REPLAY", "EXIT"}

	items := []components.MenuItem{
		{Label: menuLabels[0], Action: func() tea.Cmd {
			return func() tea.Msg {
				showTutorial := false
				if settings != nil {
					if flags, err := settings.TutorialFlags(context.Background()); err == nil {
						showTutorial = !flags.HasSeenARTutorial
					}
				}
				total := 0
				if eventRepo != nil {
					total, _ = eventRepo.CollectionTotal(context.Background())
				}
				return router.PushScreenMsg{
					Screen: scanner.New(provider, eventRepo, settings, total, showTutorial),
				}
			}
		}},
		{Label: menuLabels[1], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: collectionlog.New(eventRepo)}
			}
		}},
		{Label: menuLabels[2], Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: intro.NewReplay()}
			}
		}},
		{Label: menuLabels[3], Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:        components.NewMenu(items),
		menuLabels:  menuLabels,
		sphereCount: sphereCount,
		scanStats:   stats,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Title() string {
	return "Home"
}

func (h *HomeScreen) SphereCount() int {
	return h.sphereCount
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}
