// Package style provides console styling for seedctl output.
package style

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles for console messages
var (
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("40")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39"))
)

// Success renders a success line with the ✅ marker.
func Success(msg string) string {
	return SuccessStyle.Render("✅ " + msg)
}

// Error renders an error line with the ❌ marker.
func Error(msg string) string {
	return ErrorStyle.Render("❌ " + msg)
}

// Warning renders a warning line with the ⚠️ marker.
func Warning(msg string) string {
	return WarningStyle.Render("⚠️ " + msg)
}

// Info renders an informational line.
func Info(msg string) string {
	return InfoStyle.Render(msg)
}
