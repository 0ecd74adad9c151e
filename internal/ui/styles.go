// Package ui provides lipgloss styles for podcycle console output.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Colors
	colorGreen  = lipgloss.Color("#22c55e")
	colorRed    = lipgloss.Color("#ef4444")
	colorYellow = lipgloss.Color("#eab308")
	colorBlue   = lipgloss.Color("#3b82f6")
	colorDim    = lipgloss.Color("#6b7280")
	colorWhite  = lipgloss.Color("#f9fafb")

	// Styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorBlue)

	ReadyStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	FailedStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	WarningStyle = lipgloss.NewStyle().
			Foreground(colorYellow)

	DimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)

// Title renders a bold title line.
func Title(s string) string { return TitleStyle.Render(s) }

// Ok renders a success status line.
func Ok(s string) string { return ReadyStyle.Render(s) }

// Fail renders a failure status line.
func Fail(s string) string { return FailedStyle.Render(s) }

// Warn renders a warning status line.
func Warn(s string) string { return WarningStyle.Render(s) }

// Dim renders de-emphasized helper text.
func Dim(s string) string { return DimStyle.Render(s) }
