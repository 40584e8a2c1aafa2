package output

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals elsewhere.
var (
	// colorCyan is used for identifiable nouns: package names, paths, identifiers.
	colorCyan = lipgloss.Color("14")

	// colorGreen is used for added entries.
	colorGreen = lipgloss.Color("82")

	// colorYellow is used for modified entries.
	colorYellow = lipgloss.Color("220")

	// colorRed is used for removed entries.
	colorRed = lipgloss.Color("196")

	// colorGreenCheck is used for the completion checkmark.
	colorGreenCheck = lipgloss.Color("10")

	// colorDimGray is used for borders.
	colorDimGray = lipgloss.Color("240")

	// colorBlue is used for table headers.
	colorBlue = lipgloss.Color("12")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (package names, paths, identifiers).
	StyleNoun = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleDim styles structural chrome (prefixes, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Styles groups the styles used for change rendering.
type Styles struct {
	Added    lipgloss.Style
	Removed  lipgloss.Style
	Modified lipgloss.Style
}

// DefaultStyles returns colored change styles.
func DefaultStyles() *Styles {
	return &Styles{
		Added:    lipgloss.NewStyle().Foreground(colorGreen),
		Removed:  lipgloss.NewStyle().Foreground(colorRed),
		Modified: lipgloss.NewStyle().Foreground(colorYellow),
	}
}

// NoColorStyles returns unstyled change styles.
func NoColorStyles() *Styles {
	return &Styles{
		Added:    lipgloss.NewStyle(),
		Removed:  lipgloss.NewStyle(),
		Modified: lipgloss.NewStyle(),
	}
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(colorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatBuildSummary renders the single completion line of a package build.
func FormatBuildSummary(pkg string, icons, artifacts int) string {
	return FormatCheckmark(StyleSummary.Render(fmt.Sprintf("Finished building %s package", StyleNoun.Render(pkg))) +
		StyleDim.Render(fmt.Sprintf(" (%d icons, %d files)", icons, artifacts)))
}
