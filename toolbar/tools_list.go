package toolbar

import "github.com/iw2rmb/inkwell/document"

// ListTool turns the selected leaves into list items of one style, or back
// out of the list when they already are.
type ListTool struct {
	ButtonTool
	style string
}

func newListTool(tb *Toolbar, def Definition) Tool {
	style, _ := def.Data.(string)
	if style == "" {
		style = document.StyleBullet
	}
	return &ListTool{ButtonTool: NewButtonTool(tb, def), style: style}
}

func (t *ListTool) UpdateState(_ document.AnnotationSet, nodes []*document.Node) {
	t.disabled = len(nodes) == 0
	t.active = allNodes(nodes, func(n *document.Node) bool {
		item := n.ListItem()
		return item != nil && item.ListStyle() == t.style
	})
}

func (t *ListTool) Execute() error {
	l, ok := t.toolbar.model().(Lister)
	if !ok {
		return ErrUnsupported
	}
	if t.active {
		return l.ListUnwrap()
	}
	return l.ListWrap(t.style)
}

// IndentationTool changes the depth of the selected list items.
type IndentationTool struct {
	ButtonTool
	outdent bool
}

func newIndentationTool(tb *Toolbar, def Definition) Tool {
	outdent, _ := def.Data.(bool)
	return &IndentationTool{ButtonTool: NewButtonTool(tb, def), outdent: outdent}
}

// UpdateState enables the tool only when every node sits in a list item.
func (t *IndentationTool) UpdateState(_ document.AnnotationSet, nodes []*document.Node) {
	t.active = false
	t.disabled = !allNodes(nodes, func(n *document.Node) bool {
		return n.ListItem() != nil
	})
}

func (t *IndentationTool) Execute() error {
	l, ok := t.toolbar.model().(Lister)
	if !ok {
		return ErrUnsupported
	}
	if t.outdent {
		return l.Outdent()
	}
	return l.Indent()
}
