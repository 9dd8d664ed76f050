package tui

import "github.com/charmbracelet/lipgloss"

var (
	tabStyle       = lipgloss.NewStyle().Padding(0, 2).Foreground(lipgloss.Color("244"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 2).Bold(true).Foreground(lipgloss.Color("205")).Underline(true)

	cursorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	nameStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectedNameStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Bold(true)

	detailStyle = lipgloss.NewStyle().MarginTop(1)
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)
