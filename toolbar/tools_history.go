package toolbar

import "github.com/iw2rmb/inkwell/document"

// HistoryTool runs undo or redo. Its state follows the surface model's
// history rather than the selection.
type HistoryTool struct {
	ButtonTool
	redo bool
}

func newHistoryTool(tb *Toolbar, def Definition) Tool {
	redo, _ := def.Data.(bool)
	t := &HistoryTool{ButtonTool: NewButtonTool(tb, def), redo: redo}
	t.refresh()
	return t
}

func (t *HistoryTool) UpdateState(document.AnnotationSet, []*document.Node) { t.refresh() }

func (t *HistoryTool) ClearState() { t.refresh() }

func (t *HistoryTool) refresh() {
	t.active = false
	h, ok := t.toolbar.model().(History)
	if !ok {
		t.disabled = true
		return
	}
	if t.redo {
		t.disabled = !h.CanRedo()
	} else {
		t.disabled = !h.CanUndo()
	}
}

func (t *HistoryTool) Execute() error {
	h, ok := t.toolbar.model().(History)
	if !ok {
		return ErrUnsupported
	}
	if t.redo {
		h.Redo()
	} else {
		h.Undo()
	}
	return nil
}
