package tui

import "github.com/charmbracelet/lipgloss"

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Foreground(lipgloss.Color("245"))

	activeTabStyle = lipgloss.NewStyle().
			Padding(0, 2).
			Bold(true).
			Foreground(lipgloss.Color("63")).
			Underline(true)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Width(26).
			Foreground(lipgloss.Color("250"))

	focusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	successToastStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("16")).
				Background(lipgloss.Color("75"))

	failureToastStyle = lipgloss.NewStyle().
				Padding(0, 1).
				Foreground(lipgloss.Color("231")).
				Background(lipgloss.Color("167"))
)
