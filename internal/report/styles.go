// Package report prints rendered components, generated CSS and stylesheet
// statistics for the command line.
package report

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Terminal styles shared by all reports.
var (
	// StyleHeader is used for section headers and component names.
	StyleHeader = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	// StyleError is used for failures.
	StyleError = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("1"))
	// StyleClass is used for generated class names.
	StyleClass = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	// StyleSuccess is used for summaries.
	StyleSuccess = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))
	// StyleMuted is used for hints and secondary details.
	StyleMuted = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// RenderStyle applies style to text when colors are enabled.
func RenderStyle(style lipgloss.Style, text string, useColors bool) string {
	if !useColors {
		return text
	}
	return style.Render(text)
}

// ShouldUseColors decides whether output to f is colored. An explicit
// request wins, then NO_COLOR, FORCE_COLOR and GITHUB_ACTIONS, then whether
// f is a terminal.
func ShouldUseColors(explicit bool, f *os.File) bool {
	if explicit {
		return true
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	if os.Getenv("FORCE_COLOR") != "" || os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}
	return f != nil && term.IsTerminal(int(f.Fd()))
}
