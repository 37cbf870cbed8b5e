package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#B91C1C"))
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DC2626")).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#DC2626")).Padding(0, 1)
	dropStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280")).Border(lipgloss.RoundedBorder()).Padding(1, 2)
	fileStyle    = lipgloss.NewStyle().Background(lipgloss.Color("#F1F5F9")).Foreground(lipgloss.Color("#0F172A")).Padding(0, 1)
	sizeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#991B1B"))
	headerStyle  = lipgloss.NewStyle().Bold(true)
	poweredStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569"))
	resultStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#D1D5DB")).Padding(0, 1)
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#9CA3AF"))
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#15803D"))
)
