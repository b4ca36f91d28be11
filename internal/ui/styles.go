package ui

import "github.com/charmbracelet/lipgloss"

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4FB8FF")).
			MarginTop(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			MarginBottom(1)

	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4FB8FF")).
			Bold(true)

	SelectedRowStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#0B1021")).
				Background(lipgloss.Color("#4FB8FF")).
				Bold(false)

	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#9CA3AF")).
			MarginTop(1)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB84D"))

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4757")).
			Bold(true)

	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#4FB8FF")).
				Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			MarginTop(1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4FB8FF")).
			Padding(1, 2)
)
