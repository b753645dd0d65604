package ui

import "github.com/charmbracelet/lipgloss"

const (
	colorTeal  = "#2DD4BF"
	colorAmber = "#FBBF24"
	colorRose  = "#FB7185"
	colorMuted = "#94A3B8"
)

var (
	Primary = lipgloss.Color(colorTeal)
	Warning = lipgloss.Color(colorAmber)
	Danger  = lipgloss.Color(colorRose)
	Muted   = lipgloss.Color(colorMuted)
)

var (
	successStyle = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(Warning)
	dangerStyle  = lipgloss.NewStyle().Foreground(Danger).Bold(true)
)

// Success renders s in the primary color.
func Success(s string) string { return successStyle.Render(s) }

// Warn renders s in the warning color.
func Warn(s string) string { return warnStyle.Render(s) }

// Alert renders s in the danger color.
func Alert(s string) string { return dangerStyle.Render(s) }
