package scanner

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hyejin/orbquest/internal/scan"
	"github.com/hyejin/orbquest/internal/ui/theme"
)

func (s *ScannerScreen) View(width, height int) string {
	if s.sessionErr != "" {
		return renderSessionError(width, s.sessionErr)
	}

	var b strings.Builder

	b.WriteString(s.renderViewport(width))
	b.WriteString("\n")

	if s.spheres.CelebrationActive() {
		b.WriteString(renderCelebration(width, s.spheres.Total()))
		b.WriteString("\n")
	}

	if s.buffer.Visible() {
		b.WriteString(renderDescription(width, s.buffer.Text()))
		b.WriteString("\n")
	}

	b.WriteString(s.renderStatus(width))
	b.WriteString("\n\n")
	b.WriteString(s.renderTrigger(width))

	if s.dialogue != nil {
		b.WriteString("\n\n")
		b.WriteString(renderTutorialOverlay(width, s.dialogue.Line(), s.dialogue.OnLastLine()))
	}

	return b.String()
}

// renderViewport draws the placeholder camera view.
func (s *ScannerScreen) renderViewport(width int) string {
	inner := "· · ·  point your camera at a scene  · · ·"
	if s.controller.State() == scan.StateScanning {
		inner = s.spinner.View() + "  analyzing the scene"
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.TextDim).
		Width(min(width-8, 64)).
		Padding(1, 2).
		Align(lipgloss.Center).
		Render(inner)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

// renderDescription shows the streaming scene description surface.
func renderDescription(width int, text string) string {
	card := theme.Card.
		Width(min(width-8, 64)).
		Render(lipgloss.NewStyle().Foreground(theme.Text).Render(text))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, card)
}

func renderCelebration(width, total int) string {
	line := theme.Celebration.Render(fmt.Sprintf("✦ Sphere collected! ✦  %d total", total))
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, line)
}

func (s *ScannerScreen) renderStatus(width int) string {
	msg := s.statusMsg
	if res := s.controller.LastResult(); res != nil && msg == "" {
		if res.ObjectsDetected == 0 {
			msg = "No objects found. Try another angle."
		} else {
			msg = fmt.Sprintf("Found %d objects · %d anchors placed", res.ObjectsDetected, res.AnchorsCreated)
		}
		if n := len(s.pending); n > 0 {
			msg += fmt.Sprintf("  —  %d spheres waiting", n)
		}
	}
	if msg == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(msg)
}

// renderTrigger draws the scan button in its current state.
func (s *ScannerScreen) renderTrigger(width int) string {
	label := "  " + s.controller.TriggerLabel() + "  "
	var btn string
	if s.controller.TriggerEnabled() {
		btn = theme.ButtonActive.Render(label)
	} else {
		btn = theme.ButtonDisabled.Render(label)
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, btn)
}

// renderTutorialOverlay draws the walkthrough dialogue box. The arrow
// marks that more lines follow.
func renderTutorialOverlay(width int, line string, last bool) string {
	text := lipgloss.NewStyle().Foreground(theme.Text).Render(line)
	if !last {
		text += lipgloss.NewStyle().Foreground(theme.Secondary).Render("  ▼")
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(min(width-12, 56)).
		Padding(0, 2).
		Render(text)
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, box)
}

func renderSessionError(width int, msg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  %s\n\n  Press any key to go back.", msg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
