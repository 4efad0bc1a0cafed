package collectionlog

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/hyejin/orbquest/internal/router"
	"github.com/hyejin/orbquest/internal/screen"
	"github.com/hyejin/orbquest/internal/store"
	"github.com/hyejin/orbquest/internal/ui/layout"
	"github.com/hyejin/orbquest/internal/ui/theme"
)

type recordsLoadedMsg struct {
	Records  []store.CollectionEventRecord
	Rejected int
	Err      error
}

// CollectionLogScreen shows the history of collected spheres.
type CollectionLogScreen struct {
	eventRepo    store.EventRepo
	records      []store.CollectionEventRecord
	rejected     int
	scrollOffset int
	showRejected bool
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*CollectionLogScreen)(nil)
var _ screen.KeyHintProvider = (*CollectionLogScreen)(nil)
var _ screen.SphereCountProvider = (*CollectionLogScreen)(nil)

// New creates a CollectionLogScreen.
func New(eventRepo store.EventRepo) *CollectionLogScreen {
	return &CollectionLogScreen{
		eventRepo: eventRepo,
	}
}

func (s *CollectionLogScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		records, err := s.eventRepo.QueryCollectionEvents(ctx, store.QueryOpts{})
		if err != nil {
			return recordsLoadedMsg{Err: err}
		}
		rejected, err := s.eventRepo.RejectedCollections(ctx)
		return recordsLoadedMsg{Records: records, Rejected: rejected, Err: err}
	}
}

func (s *CollectionLogScreen) Title() string {
	return "Collection"
}

func (s *CollectionLogScreen) SphereCount() int {
	total := 0
	for _, rec := range s.records {
		if rec.Accepted && rec.TotalAfter > total {
			total = rec.TotalAfter
		}
	}
	return total
}

func (s *CollectionLogScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "R", Description: "Toggle rejected"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *CollectionLogScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.records = msg.Records
			s.rejected = msg.Rejected
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "r", "R":
			s.showRejected = !s.showRejected
			s.scrollOffset = 0
			return s, nil
		case "up", "k":
			if s.scrollOffset > 0 {
				s.scrollOffset--
			}
			return s, nil
		case "down", "j":
			if s.scrollOffset < len(s.visible())-1 {
				s.scrollOffset++
			}
			return s, nil
		}
	}
	return s, nil
}

func (s *CollectionLogScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading collection...")
	}

	var b strings.Builder

	summary := fmt.Sprintf("\n◉ %d spheres collected", s.SphereCount())
	if s.rejected > 0 {
		summary += fmt.Sprintf("   (%d rejected)", s.rejected)
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Secondary).Bold(true).
		Render(summary))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	visible := s.visible()
	if len(visible) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Nothing collected yet. Go scanning!"))
		return b.String()
	}

	maxVisible := height - 10
	if maxVisible < 3 {
		maxVisible = 3
	}
	start := s.scrollOffset
	end := start + maxVisible
	if end > len(visible) {
		end = len(visible)
	}

	for i := start; i < end; i++ {
		rec := visible[i]
		name := "sphere"
		if rec.ObjectName != nil {
			name = *rec.ObjectName
		}
		dateStr := rec.Timestamp.Format("Jan 02, 2006 15:04")

		line := fmt.Sprintf("  ◉ %-28s #%-4d %s", name, rec.TotalAfter, dateStr)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if !rec.Accepted {
			line = fmt.Sprintf("  ✗ %-28s       %s", name, dateStr)
			style = lipgloss.NewStyle().Foreground(theme.TextDim).Strikethrough(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if end < len(visible) {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(fmt.Sprintf("... %d more", len(visible)-end)))
	}

	return b.String()
}

// visible returns records newest first, filtered by the rejected toggle.
func (s *CollectionLogScreen) visible() []store.CollectionEventRecord {
	out := make([]store.CollectionEventRecord, 0, len(s.records))
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		if !rec.Accepted && !s.showRejected {
			continue
		}
		out = append(out, rec)
	}
	return out
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
