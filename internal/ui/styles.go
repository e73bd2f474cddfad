// Package ui provides terminal styling and the progress spinner for the
// sonic-migrate CLI.
package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Sonic palette plus the usual semantic colors.
var (
	ColorPrimary = lipgloss.Color("205") // magenta - brand accents, spinner
	ColorSuccess = lipgloss.Color("42")  // green
	ColorWarning = lipgloss.Color("220") // yellow
	ColorError   = lipgloss.Color("196") // red
	ColorInfo    = lipgloss.Color("51")  // cyan - step output, URLs
	ColorMuted   = lipgloss.Color("245") // grey
)

// Styles provides pre-configured lipgloss styles for CLI output.
var Styles = struct {
	Title     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Info      lipgloss.Style
	Endpoint  lipgloss.Style
	Muted     lipgloss.Style
	Highlight lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorInfo),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorWarning),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Info:      lipgloss.NewStyle().Foreground(ColorInfo),
	Endpoint:  lipgloss.NewStyle().Foreground(ColorSuccess).Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorMuted),
	Highlight: lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary),
}

// DisableColors forces a plain-text color profile for all subsequent
// rendering (--no-color flag or the noColor setting). Call before any
// styled output is produced.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Success renders a green status line.
func Success(msg string) string {
	return Styles.Success.Render(msg)
}

// Warning renders a yellow status line.
func Warning(msg string) string {
	return Styles.Warning.Render(msg)
}

// Error renders a red status line.
func Error(msg string) string {
	return Styles.Error.Render(msg)
}

// Info renders a cyan status line.
func Info(msg string) string {
	return Styles.Info.Render(msg)
}
