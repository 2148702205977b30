package render

import "github.com/charmbracelet/lipgloss"

var (
	// Colors — dark theme inspired by GitHub Dark
	colorText      = lipgloss.Color("#c9d1d9")
	colorTextDim   = lipgloss.Color("#8b949e")
	colorTextMuted = lipgloss.Color("#6e7681")
	colorBlue      = lipgloss.Color("#58a6ff")
	colorGreen     = lipgloss.Color("#7ee787")
	colorYellow    = lipgloss.Color("#d29922")
	colorRed       = lipgloss.Color("#ff7b72")
	colorCyan      = lipgloss.Color("#39d353")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorCyan)

	lineNumStyle = lipgloss.NewStyle().
			Foreground(colorTextMuted)

	clockStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	// Speaker name styles
	assistantStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	userStyle = lipgloss.NewStyle().
			Foreground(colorBlue).
			Bold(true)

	systemStyle = lipgloss.NewStyle().
			Foreground(colorYellow).
			Bold(true)

	otherStyle = lipgloss.NewStyle().
			Foreground(colorText)

	// Content body styles
	assistantBodyStyle = lipgloss.NewStyle().
				Foreground(colorGreen)

	userBodyStyle = lipgloss.NewStyle().
			Foreground(colorBlue)

	systemBodyStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	errorBodyStyle = lipgloss.NewStyle().
			Foreground(colorRed)

	otherBodyStyle = lipgloss.NewStyle().
			Foreground(colorText)
)
