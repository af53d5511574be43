// Package cli provides styled terminal output and user prompts.
package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/dnguyen-vn/costflow/internal/ledger"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#5EEAD4")
	// SuccessColor indicates successful operations.
	SuccessColor = lipgloss.Color("#4ADE80")
	// WarningColor indicates warnings or caution messages.
	WarningColor = lipgloss.Color("#FACC15")
	// ErrorColor indicates errors or failure messages.
	ErrorColor = lipgloss.Color("#F87171")
	// InfoColor indicates informational messages.
	InfoColor = lipgloss.Color("#93C5FD")
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#6B7280")

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(SuccessColor)

	// WarningStyle formats warning messages.
	WarningStyle = lipgloss.NewStyle().
			Foreground(WarningColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ErrorColor)

	// InfoStyle formats informational messages.
	InfoStyle = lipgloss.NewStyle().
			Foreground(InfoColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// HeaderStyle is used for table headers.
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// PromptStyle is used for user prompts.
	PromptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor)

	// PinStyle marks pinned cost lines in listings.
	PinStyle = lipgloss.NewStyle().
			Foreground(WarningColor)
)

// Icons.
const (
	SuccessIcon = "✓"
	ErrorIcon   = "✗"
	PinIcon     = "📌"
)

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatPrompt formats a prompt message.
func FormatPrompt(prompt string) string {
	return PromptStyle.Render(prompt + " → ")
}

// BudgetStatusStyle maps a budget status to its display style: green while
// usage is fine, yellow in the warning band, red once over budget.
func BudgetStatusStyle(status ledger.BudgetStatus) lipgloss.Style {
	switch status {
	case ledger.BudgetWarning:
		return WarningStyle
	case ledger.BudgetOver:
		return ErrorStyle
	default:
		return SuccessStyle
	}
}

// RenderBudgetStatus renders a budget status string in its status color.
func RenderBudgetStatus(status ledger.BudgetStatus) string {
	return BudgetStatusStyle(status).Render(string(status))
}
