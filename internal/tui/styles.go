package tui

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Theme colors
	primaryColor = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"}
	successColor = lipgloss.AdaptiveColor{Light: "#02BA84", Dark: "#02BF87"}
	errorColor   = lipgloss.AdaptiveColor{Light: "#FE5F86", Dark: "#FE5F86"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}

	// TitleStyle is used for section headers in catalog listings and
	// the post-scaffold summary.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	// ItemStyle is used for entry names in catalog listings.
	ItemStyle = lipgloss.NewStyle().
			Bold(true)

	// DescriptionStyle is used for secondary text next to entries.
	DescriptionStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// SuccessStyle is used for confirmation messages.
	SuccessStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	// ErrorStyle is used for failure messages.
	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	// CommandStyle is used for shell commands the user should run next.
	CommandStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle frames the next-steps block after a successful scaffold.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(1, 2)
)

// GetTheme returns the huh form theme used by all interactive prompts.
func GetTheme() *huh.Theme {
	return huh.ThemeCharm()
}
