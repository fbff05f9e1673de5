package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the pre-computed lipgloss styles for the UI
type Styles struct {
	Header       lipgloss.Style
	Footer       lipgloss.Style
	TaskNormal   lipgloss.Style
	TaskSelected lipgloss.Style
	TaskDone     lipgloss.Style
	TaskOverdue  lipgloss.Style
	DueDate      lipgloss.Style
	PriorityHigh lipgloss.Style
	PriorityLow  lipgloss.Style
	Project      lipgloss.Style
	Status       lipgloss.Style
	ErrorMsg     lipgloss.Style
	PanelTitle   lipgloss.Style
	Input        lipgloss.Style
	HelpKey      lipgloss.Style
	HelpDesc     lipgloss.Style
}

// DefaultStyles returns the default color scheme
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#88C0D0")).
			Padding(0, 1),
		Footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4C566A")).
			Padding(0, 1),
		TaskNormal: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D8DEE9")),
		TaskSelected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#ECEFF4")).
			Background(lipgloss.Color("#3B4252")),
		TaskDone: lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(lipgloss.Color("#4C566A")),
		TaskOverdue: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BF616A")),
		DueDate: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EBCB8B")),
		PriorityHigh: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#BF616A")),
		PriorityLow: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A3BE8C")),
		Project: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#B48EAD")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A3BE8C")).
			Padding(0, 1),
		ErrorMsg: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#BF616A")).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#81A1C1")),
		Input: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5E81AC")).
			Padding(0, 1),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#88C0D0")),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4C566A")),
	}
}
