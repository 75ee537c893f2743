// Package style provides shared styling primitives for CLI output:
// brand colors and the handful of icons the scaffolder prints.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Cyan   = lipgloss.Color("#22D3EE")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
	Slate  = lipgloss.Color("#667085")
)

// Styles.
var (
	Action  = lipgloss.NewStyle().Foreground(Cyan).Bold(true)
	Success = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Error   = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Warn    = lipgloss.NewStyle().Foreground(Yellow)
	Dim     = lipgloss.NewStyle().Foreground(Slate)
	Path    = lipgloss.NewStyle().Foreground(Yellow)
	Command = lipgloss.NewStyle().Foreground(Cyan)
	Bold    = lipgloss.NewStyle().Bold(true)
)

// Icons.
const (
	Check = "✓"
	Cross = "✗"
	Plus  = "+"
	Dot   = "•"
)
