package toolbar

import "github.com/charmbracelet/lipgloss"

// Style controls the toolbar's rendering.
type Style struct {
	Bar       lipgloss.Style
	Group     lipgloss.Style
	Label     lipgloss.Style
	Separator string

	Button   lipgloss.Style
	Active   lipgloss.Style
	Disabled lipgloss.Style
	Dropdown lipgloss.Style
	// Focused is layered over the state style of the focused tool.
	Focused lipgloss.Style

	// MaxLabelWidth truncates group labels; 0 disables truncation.
	MaxLabelWidth int
}

func DefaultStyle() Style {
	button := lipgloss.NewStyle().Padding(0, 1)
	return Style{
		Bar:           lipgloss.NewStyle(),
		Group:         lipgloss.NewStyle(),
		Label:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Italic(true),
		Separator:     " │ ",
		Button:        button,
		Active:        button.Reverse(true).Bold(true),
		Disabled:      button.Foreground(lipgloss.Color("240")),
		Dropdown:      button,
		Focused:       lipgloss.NewStyle().Underline(true),
		MaxLabelWidth: 16,
	}
}
