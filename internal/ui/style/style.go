// Package style provides shared UI styling primitives including colors
// and icons for consistent presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// LabelWidth is the column width of labels in key/value listings.
const LabelWidth = 22

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
)

// Label renders a fixed-width key for key/value listings.
func Label(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Slate).Width(LabelWidth)
}

// Heading renders a section title.
func Heading(r *lipgloss.Renderer) lipgloss.Style {
	return r.NewStyle().Foreground(Iris).Bold(true)
}

// State renders a verification outcome with its icon.
func State(r *lipgloss.Renderer, ok bool, text string) string {
	if ok {
		return r.NewStyle().Foreground(Green).Render(Check + " " + text)
	}
	return r.NewStyle().Foreground(Red).Render(Cross + " " + text)
}
