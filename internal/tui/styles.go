package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle          = lipgloss.NewStyle().Padding(1, 2)
	titleStyle        = lipgloss.NewStyle().Bold(true)
	focusedTitleStyle = lipgloss.NewStyle().Bold(true).Underline(true)
	helpStyle         = lipgloss.NewStyle().Faint(true)
	errorStyle        = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	newMarkStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	overlayBoxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
)
