// Package theme defines the CLI color palette and shared lipgloss
// styles. Commands render with these; core packages never print.
package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette — restrained, terminal-friendly
var (
	Primary   = lipgloss.Color("#2563EB") // Blue
	Secondary = lipgloss.Color("#0D9488") // Teal
	Success   = lipgloss.Color("#16A34A") // Green
	Warning   = lipgloss.Color("#D97706") // Amber
	Error     = lipgloss.Color("#DC2626") // Red
	Text      = lipgloss.Color("#E2E8F0") // Light Slate
	TextDim   = lipgloss.Color("#64748B") // Slate
	Border    = lipgloss.Color("#334155") // Dark Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	Stale = lipgloss.NewStyle().
		Foreground(Warning)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)

	TableHeader = lipgloss.NewStyle().
			Bold(true).
			Foreground(Secondary)
)
