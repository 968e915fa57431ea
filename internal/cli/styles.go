// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// ExpenseColor marks outgoing money.
	ExpenseColor = lipgloss.Color("#F43F5E") // Rose
	// IncomeColor marks incoming money.
	IncomeColor = lipgloss.Color("#10B981") // Emerald
	// AccentColor is the main theme color.
	AccentColor = lipgloss.Color("#0EA5E9") // Sky blue
	// SubtleColor is for less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(AccentColor).
			MarginBottom(1)

	// HeaderStyle formats table header rows.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(SubtleColor)

	// ExpenseStyle formats expense amounts.
	ExpenseStyle = lipgloss.NewStyle().
			Foreground(ExpenseColor)

	// IncomeStyle formats income amounts.
	IncomeStyle = lipgloss.NewStyle().
			Foreground(IncomeColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// KPIBoxStyle wraps the headline numbers in a rounded border.
	KPIBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(SubtleColor).
			Padding(0, 2)
)
