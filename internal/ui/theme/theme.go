package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette. Night-sky AR look: dark backdrop, luminous accents.
var (
	Primary   = lipgloss.Color("#22D3EE") // Cyan (scanner)
	Secondary = lipgloss.Color("#A78BFA") // Violet (spheres)
	Accent    = lipgloss.Color("#FBBF24") // Amber (celebration)
	Success   = lipgloss.Color("#34D399") // Emerald
	Error     = lipgloss.Color("#FB7185") // Rose
	Text      = lipgloss.Color("#F1F5F9") // White
	TextDim   = lipgloss.Color("#7C8CA3") // Slate
	BgDark    = lipgloss.Color("#0B1020") // Near-black indigo
	BgCard    = lipgloss.Color("#161D33") // Dark indigo
	Border    = lipgloss.Color("#2B3654") // Muted indigo
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Background(BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Components
var (
	ButtonActive = lipgloss.NewStyle().
			Background(Primary).
			Foreground(BgDark).
			Bold(true).
			Padding(0, 2)

	ButtonDisabled = lipgloss.NewStyle().
			Background(BgCard).
			Foreground(TextDim).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 2)

	Celebration = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(Accent).
			Padding(0, 2)
)
