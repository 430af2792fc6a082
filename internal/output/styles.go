package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
var (
	// ColorCyan is used for identifiable nouns: module names, paths.
	ColorCyan = lipgloss.Color("14")

	// ColorDimGray is used for borders and other structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (module names, folder paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (separators, timestamps).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)
