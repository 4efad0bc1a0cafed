package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/hyejin/orbquest/internal/ui/theme"
)

const titleArt = ` ██████  ██████  ██████   ██████  ██    ██ ███████ ███████ ████████
██    ██ ██   ██ ██   ██ ██    ██ ██    ██ ██      ██         ██
██    ██ ██████  ██████  ██    ██ ██    ██ █████   ███████    ██
██    ██ ██   ██ ██   ██ ██ ▄▄ ██ ██    ██ ██           ██    ██
 ██████  ██   ██ ██████   ██████   ██████  ███████ ███████    ██
                             ▀▀`

func (h *HomeScreen) View(width, height int) string {
	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, width < 74))
	sections = append(sections, h.renderStatsBar(cw))
	sections = append(sections, h.renderMenu(cw))

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func contentWidth(width int) int {
	cw := width - 12
	if cw > 68 {
		cw = 68
	}
	if cw < 40 {
		cw = 40
	}
	return cw
}

func renderTitle(cw int, compact bool) string {
	if compact {
		return lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Foreground(theme.Primary).
			Bold(true).
			Render("◉ O R B Q U E S T ◉")
	}
	title := lipgloss.NewStyle().Foreground(theme.Primary).Render(titleArt)
	tagline := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("scan the world, collect the spheres")
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, title+"\n"+tagline)
}

func (h *HomeScreen) renderStatsBar(cw int) string {
	stats := fmt.Sprintf("◉ %d spheres   ⌖ %d scans   ⚓ %d anchors",
		h.sphereCount, h.scanStats.Passes, h.scanStats.TotalAnchors)
	bar := lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Border).
		Foreground(theme.Secondary).
		Width(cw-2).
		Align(lipgloss.Center).
		Render(stats)
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, bar)
}

func (h *HomeScreen) renderMenu(cw int) string {
	var b strings.Builder
	for i, label := range h.menuLabels {
		line := "  " + label + "  "
		if i == h.menu.Selected {
			b.WriteString(theme.Selected.Render("▸ " + line))
		} else {
			b.WriteString(theme.Unselected.Render("  " + line))
		}
		if i < len(h.menuLabels)-1 {
			b.WriteString("\n")
		}
	}
	return lipgloss.PlaceHorizontal(cw, lipgloss.Center, b.String())
}
