// Package render draws component trees to the terminal with lipgloss.
package render

import "github.com/charmbracelet/lipgloss"

// Palette colors.
var (
	Primary = lipgloss.Color("#3F51B5")
	Accent  = lipgloss.Color("#8BC34A")
	Muted   = lipgloss.Color("#8A8F98")
	Danger  = lipgloss.Color("#E53935")
	Border  = lipgloss.Color("#5C6370")
)

// Styles holds the lipgloss styles the renderer applies per element kind.
type Styles struct {
	Title    lipgloss.Style
	Header   lipgloss.Style
	Label    lipgloss.Style
	Link     lipgloss.Style
	Muted    lipgloss.Style
	Yes      lipgloss.Style
	No       lipgloss.Style
	Focused  lipgloss.Style
	Card     lipgloss.Style
	Selected lipgloss.Style
}

// DefaultStyles returns the colored theme.
func DefaultStyles() Styles {
	return Styles{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(Primary),
		Header:   lipgloss.NewStyle().Bold(true),
		Label:    lipgloss.NewStyle().Foreground(Muted),
		Link:     lipgloss.NewStyle().Underline(true).Foreground(Primary),
		Muted:    lipgloss.NewStyle().Foreground(Muted).Italic(true),
		Yes:      lipgloss.NewStyle().Foreground(Accent),
		No:       lipgloss.NewStyle().Foreground(Danger),
		Focused:  lipgloss.NewStyle().Reverse(true),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(Border).Padding(0, 1),
		Selected: lipgloss.NewStyle().Foreground(Accent).Bold(true),
	}
}

// PlainStyles returns styles without color or borders, for piped output
// and tests.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title:    plain,
		Header:   plain,
		Label:    plain,
		Link:     plain,
		Muted:    plain,
		Yes:      plain,
		No:       plain,
		Focused:  plain,
		Card:     plain,
		Selected: plain,
	}
}
