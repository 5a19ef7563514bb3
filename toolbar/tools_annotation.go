package toolbar

import (
	"net/url"
	"strings"

	"github.com/iw2rmb/inkwell/document"
)

type annotationData struct {
	annotation document.Annotation
	// href derives a link target from the selected text.
	href func(text string) string
}

// LinkTarget turns selected text into a link target: text that parses as an
// absolute URL is used as is, anything else becomes a fragment.
func LinkTarget(text string) string {
	text = strings.TrimSpace(text)
	if u, err := url.Parse(text); err == nil && u.Scheme != "" && u.Host != "" {
		return u.String()
	}
	return "#" + strings.Join(strings.Fields(text), "_")
}

// AnnotationTool toggles one annotation kind over the selection.
type AnnotationTool struct {
	ButtonTool
	annotation document.Annotation
	href       func(string) string
}

func newAnnotationTool(tb *Toolbar, def Definition) Tool {
	data, _ := def.Data.(annotationData)
	return &AnnotationTool{
		ButtonTool: NewButtonTool(tb, def),
		annotation: data.annotation,
		href:       data.href,
	}
}

// UpdateState marks the tool active when the annotation kind is in effect.
// Preformatted content takes no annotations, so a selection made only of
// preformatted nodes disables the tool.
func (t *AnnotationTool) UpdateState(anns document.AnnotationSet, nodes []*document.Node) {
	t.active = anns.HasType(t.annotation.Type)
	t.disabled = allNodes(nodes, func(n *document.Node) bool {
		return n.Type() == document.TypePreformatted
	})
}

func (t *AnnotationTool) Execute() error {
	m, ok := t.toolbar.model().(Annotator)
	if !ok {
		return ErrUnsupported
	}
	r, ok := m.Selection()
	if !ok || r.IsCollapsed() {
		return nil
	}
	a := t.annotation
	if t.href != nil && !t.active {
		text := ""
		if src, ok := m.(TextSource); ok {
			text = src.SelectedText()
		}
		a.Href = t.href(text)
	}
	return m.Annotate(a, !t.active)
}

// ClearTool removes every annotation from the selection.
type ClearTool struct {
	ButtonTool
}

func newClearTool(tb *Toolbar, def Definition) Tool {
	return &ClearTool{ButtonTool: NewButtonTool(tb, def)}
}

func (t *ClearTool) UpdateState(anns document.AnnotationSet, _ []*document.Node) {
	t.active = false
	t.disabled = anns.IsEmpty()
}

func (t *ClearTool) Execute() error {
	m, ok := t.toolbar.model().(Annotator)
	if !ok {
		return ErrUnsupported
	}
	return m.ClearAnnotations()
}

func allNodes(nodes []*document.Node, pred func(*document.Node) bool) bool {
	if len(nodes) == 0 {
		return false
	}
	for _, n := range nodes {
		if !pred(n) {
			return false
		}
	}
	return true
}
