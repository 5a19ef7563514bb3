package editor

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/inkwell/document"
	"github.com/iw2rmb/inkwell/toolbar"
)

// Style controls the editor's rendering.
type Style struct {
	Text   lipgloss.Style
	Bold   lipgloss.Style
	Italic lipgloss.Style
	Code   lipgloss.Style
	Link   lipgloss.Style

	Heading      lipgloss.Style
	Preformatted lipgloss.Style
	ListMarker   lipgloss.Style

	Selection lipgloss.Style
	Cursor    lipgloss.Style

	Context lipgloss.Style
	Status  lipgloss.Style

	Toolbar toolbar.Style
}

func DefaultStyle() Style {
	return Style{
		Text:         lipgloss.NewStyle(),
		Bold:         lipgloss.NewStyle().Bold(true),
		Italic:       lipgloss.NewStyle().Italic(true),
		Code:         lipgloss.NewStyle().Foreground(lipgloss.Color("180")),
		Link:         lipgloss.NewStyle().Underline(true).Foreground(lipgloss.Color("75")),
		Heading:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Preformatted: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		ListMarker:   lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Selection:    lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:       lipgloss.NewStyle().Reverse(true),
		Context:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		Toolbar:      toolbar.DefaultStyle(),
	}
}

// charStyle layers the annotation styles over the block style.
func (st Style) charStyle(base lipgloss.Style, anns document.AnnotationSet) lipgloss.Style {
	s := base
	for _, a := range anns.Slice() {
		switch a.Type {
		case document.AnnotationBold:
			s = st.Bold.Inherit(s)
		case document.AnnotationItalic:
			s = st.Italic.Inherit(s)
		case document.AnnotationCode:
			s = st.Code.Inherit(s)
		case document.AnnotationLink:
			s = st.Link.Inherit(s)
		}
	}
	return s
}
