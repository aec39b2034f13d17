// Package styles centralizes the lipgloss styling for the jobtrack TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"jobtrack/internal/domain"
)

var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("63"))

	Subtle = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	ErrorText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	SuccessText = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))

	Selected = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	AlertBox = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("196")).
			Padding(1, 2)

	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
)

var classStyles = map[domain.Class]lipgloss.Style{
	domain.ClassEarly:      lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
	domain.ClassInProgress: lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
	domain.ClassPositive:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	domain.ClassNegative:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	domain.ClassNeutral:    lipgloss.NewStyle().Foreground(lipgloss.Color("246")),
}

// Status returns the style for a status value, keyed by its display
// class.
func Status(s domain.Status) lipgloss.Style {
	return classStyles[s.Class()]
}
