package components

import (
	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/hyejin/orbquest/internal/ui/theme"
)

// Spinner wraps bubbles/spinner with Orbquest styling. It animates next
// to the scan trigger while a detection pass is in flight.
type Spinner struct {
	Model spinner.Model
}

// NewSpinner creates a styled spinner.
func NewSpinner() Spinner {
	s := spinner.New()
	s.Spinner = spinner.Points
	s.Style = theme.Selected
	return Spinner{Model: s}
}

// Tick starts the spinner animation.
func (s Spinner) Tick() tea.Cmd {
	return s.Model.Tick
}

// Update advances the animation.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	var cmd tea.Cmd
	s.Model, cmd = s.Model.Update(msg)
	return s, cmd
}

// View renders the current frame.
func (s Spinner) View() string {
	return s.Model.View()
}
