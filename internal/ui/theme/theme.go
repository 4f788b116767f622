package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — high-contrast terminal green with warm accents
var (
	Primary   = lipgloss.Color("#4ADE80") // Bright Green
	Secondary = lipgloss.Color("#38BDF8") // Sky Blue
	Accent    = lipgloss.Color("#FBBF24") // Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#EF4444") // Red
	Text      = lipgloss.Color("#E7E5E4") // Warm White
	TextDim   = lipgloss.Color("#78716C") // Stone
	BgDark    = lipgloss.Color("#0C0A09") // Near Black
	BgCard    = lipgloss.Color("#1C1917") // Dark Stone
	Border    = lipgloss.Color("#44403C") // Stone
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

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)

	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Components
var (
	ProgressFilled = lipgloss.NewStyle().
			Background(Secondary)

	ProgressEmpty = lipgloss.NewStyle().
			Background(Border)

	ProgressLabel = lipgloss.NewStyle().
			Foreground(Text)

	ProgressPercent = lipgloss.NewStyle().
			Foreground(TextDim)
)
