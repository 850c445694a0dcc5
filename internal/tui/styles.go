package tui

import "github.com/charmbracelet/lipgloss"

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	onlineStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	offlineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))

	userLabelStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	agentLabelStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13"))
	timeStyle       = lipgloss.NewStyle().Faint(true)
	thinkingStyle   = lipgloss.NewStyle().Italic(true).Faint(true)

	quickActionStyle         = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
	disabledQuickActionStyle = quickActionStyle.Faint(true)
	inputBoxStyle            = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)
