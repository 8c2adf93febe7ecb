package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2c3e50")).
			Padding(1, 0)

	gateTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Underline(true)

	promptStyle = lipgloss.NewStyle().
			Padding(0, 2)

	successStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#155724")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#c3e6cb")).
			Padding(0, 2)

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#721c24")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#f5c6cb")).
			Padding(0, 2)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#0c5460")).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("#bee5eb")).
			Padding(0, 2)

	waitingStyle = lipgloss.NewStyle().
			Bold(true)

	revealStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(2, 4)

	cellStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Width(10).
			Align(lipgloss.Center)

	tileStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(0, 1)

	tileCursorStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			Bold(true).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().
			Faint(true)
)
