package toolbar

import (
	"fmt"

	"github.com/iw2rmb/inkwell/document"
)

// Format is one entry of the format menu.
type Format struct {
	Name  string
	Label string
	Type  document.NodeType
	Level int
}

func (f Format) matches(n *document.Node) bool {
	if n.Type() != f.Type {
		return false
	}
	return f.Type != document.TypeHeading || n.Attributes().Level == f.Level
}

func DefaultFormats() []Format {
	out := []Format{{Name: "paragraph", Label: "Paragraph", Type: document.TypeParagraph}}
	for level := 1; level <= 6; level++ {
		out = append(out, Format{
			Name:  fmt.Sprintf("heading%d", level),
			Label: fmt.Sprintf("Heading %d", level),
			Type:  document.TypeHeading,
			Level: level,
		})
	}
	return append(out, Format{Name: "preformatted", Label: "Preformatted", Type: document.TypePreformatted})
}

// FormatTool shows the content type shared by the selected leaves and
// converts them on request.
type FormatTool struct {
	Widget

	name    string
	formats []Format
	// current indexes formats; -1 when the selection mixes formats.
	current  int
	disabled bool

	toolbar *Toolbar
}

func newFormatTool(tb *Toolbar, def Definition) Tool {
	formats, _ := def.Data.([]Format)
	if len(formats) == 0 {
		formats = DefaultFormats()
	}
	return &FormatTool{
		Widget:   newWidget(def),
		name:     def.Name,
		formats:  formats,
		current:  -1,
		disabled: true,
		toolbar:  tb,
	}
}

func (t *FormatTool) Name() string { return t.name }

// Current returns the format shared by the selection.
func (t *FormatTool) Current() (Format, bool) {
	if t.current < 0 {
		return Format{}, false
	}
	return t.formats[t.current], true
}

func (t *FormatTool) Disabled() bool { return t.disabled }

func (t *FormatTool) UpdateState(_ document.AnnotationSet, nodes []*document.Node) {
	t.current = -1
	t.disabled = len(nodes) == 0
	for i, f := range t.formats {
		if allNodes(nodes, f.matches) {
			t.current = i
			return
		}
	}
}

func (t *FormatTool) ClearState() {
	t.current = -1
	t.disabled = true
}

// Execute converts the selection to the format after the current one.
func (t *FormatTool) Execute() error {
	next := (t.current + 1) % len(t.formats)
	return t.apply(t.formats[next])
}

// Select converts the selection to the named format.
func (t *FormatTool) Select(name string) error {
	for _, f := range t.formats {
		if f.Name == name {
			return t.apply(f)
		}
	}
	return fmt.Errorf("format %q: %w", name, ErrUnknownTool)
}

func (t *FormatTool) apply(f Format) error {
	m, ok := t.toolbar.model().(Formatter)
	if !ok {
		return ErrUnsupported
	}
	return m.Convert(f.Type, f.Level)
}

func (t *FormatTool) View(st Style, focused bool) string {
	label := "—"
	if f, ok := t.Current(); ok {
		label = f.Label
	}
	s := st.Dropdown
	if t.disabled {
		s = st.Disabled
	}
	if focused {
		s = s.Inherit(st.Focused)
	}
	return s.Render(label + " ▾")
}
