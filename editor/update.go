package editor

import (
	"errors"
	"math"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/inkwell/document"
	"github.com/iw2rmb/inkwell/toolbar"
)

func (m Model) updateKey(msg tea.KeyMsg) Model {
	if !m.focused {
		return m
	}
	km := m.cfg.KeyMap

	if key.Matches(msg, km.ToggleToolbar) {
		m.toggleToolbar()
		return m
	}
	if m.toolbarFocused {
		return m.updateToolbarKey(msg)
	}

	// Paste events insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.edit(func() error { return m.model.InsertText(normalizeNewlines(string(msg.Runes))) })
		return m
	}

	switch {
	case key.Matches(msg, km.Left):
		m.moveHorizontal(-1, false)
	case key.Matches(msg, km.Right):
		m.moveHorizontal(1, false)
	case key.Matches(msg, km.Up):
		m.moveVertical(-1, false)
	case key.Matches(msg, km.Down):
		m.moveVertical(1, false)

	case key.Matches(msg, km.ShiftLeft):
		m.moveHorizontal(-1, true)
	case key.Matches(msg, km.ShiftRight):
		m.moveHorizontal(1, true)
	case key.Matches(msg, km.ShiftUp):
		m.moveVertical(-1, true)
	case key.Matches(msg, km.ShiftDown):
		m.moveVertical(1, true)

	case key.Matches(msg, km.Home):
		m.moveLine(false)
	case key.Matches(msg, km.End):
		m.moveLine(true)

	case key.Matches(msg, km.Backspace):
		m.edit(m.model.DeleteBackward)
	case key.Matches(msg, km.Delete):
		m.edit(m.model.DeleteForward)
	case key.Matches(msg, km.Enter):
		m.edit(m.model.SplitLeaf)

	case key.Matches(msg, km.Undo):
		if !m.cfg.ReadOnly {
			m.runTool("undo", func() error { m.model.Undo(); return nil })
		}
	case key.Matches(msg, km.Redo):
		if !m.cfg.ReadOnly {
			m.runTool("redo", func() error { m.model.Redo(); return nil })
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		m.copySelection()
		if r, ok := m.model.Selection(); ok && !r.IsCollapsed() {
			m.edit(func() error { return m.model.Delete(r) })
		}
	case key.Matches(msg, km.Paste):
		m.pasteClipboard()

	case key.Matches(msg, km.Bold):
		m.runEditTool("bold", m.toggleAnnotation(document.Bold()))
	case key.Matches(msg, km.Italic):
		m.runEditTool("italic", m.toggleAnnotation(document.Italic()))
	case key.Matches(msg, km.Code):
		m.runEditTool("code", m.toggleAnnotation(document.Code()))
	case key.Matches(msg, km.Link):
		m.runEditTool("link", nil)
	case key.Matches(msg, km.Clear):
		m.runEditTool("clear", nil)
	case key.Matches(msg, km.Format):
		m.runEditTool("format", nil)
	case key.Matches(msg, km.Number):
		m.runEditTool("number", nil)
	case key.Matches(msg, km.Bullet):
		m.runEditTool("bullet", nil)
	case key.Matches(msg, km.Indent):
		m.runEditTool("indent", nil)
	case key.Matches(msg, km.Outdent):
		m.runEditTool("outdent", nil)

	default:
		if msg.Type == tea.KeySpace {
			m.edit(func() error { return m.model.InsertText(" ") })
			return m
		}
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.edit(func() error { return m.model.InsertText(string(msg.Runes)) })
		}
	}
	return m
}

func (m Model) updateToolbarKey(msg tea.KeyMsg) Model {
	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Escape):
		m.toggleToolbar()
	case key.Matches(msg, km.Left), key.Matches(msg, km.Outdent):
		m.toolbar.FocusPrev()
	case key.Matches(msg, km.Right), key.Matches(msg, km.Indent):
		m.toolbar.FocusNext()
	case key.Matches(msg, km.Activate):
		if m.cfg.ReadOnly {
			return m
		}
		t, ok := m.toolbar.Focused()
		if !ok || toolDisabled(t) {
			return m
		}
		m.report(m.toolbar.ExecuteFocused())
	}
	m.rebuildContent()
	return m
}

func (m *Model) toggleToolbar() {
	m.toolbarFocused = !m.toolbarFocused
	if !m.toolbarFocused {
		m.toolbar.Blur()
		return
	}
	if _, ok := m.toolbar.Focused(); !ok {
		m.toolbar.FocusNext()
	}
}

// edit runs a document mutation unless the editor is read-only.
func (m *Model) edit(fn func() error) {
	if m.cfg.ReadOnly {
		return
	}
	m.report(fn())
}

func (m *Model) runEditTool(name string, fallback func() error) {
	if m.cfg.ReadOnly {
		return
	}
	m.runTool(name, fallback)
}

// toggleAnnotation flips a over a range selection directly on the model,
// for text styles whose tool is not on the toolbar. Like the tool, it
// leaves preformatted text alone.
func (m *Model) toggleAnnotation(a document.Annotation) func() error {
	return func() error {
		r, ok := m.model.Selection()
		if !ok || r.IsCollapsed() {
			return nil
		}
		doc := m.model.Document()
		styled := false
		for _, leaf := range doc.Leaves() {
			cr, _ := doc.ContentRange(leaf)
			if cr.To < r.Start() || cr.From > r.End() {
				continue
			}
			if leaf.Type() != document.TypePreformatted {
				styled = true
				break
			}
		}
		if !styled {
			return nil
		}
		return m.model.Annotate(a, !doc.AnnotationsFromRange(r).HasType(a.Type))
	}
}

// runTool triggers a toolbar tool by name. Disabled tools do nothing. When
// the tool is not on the toolbar, fallback runs instead if given.
func (m *Model) runTool(name string, fallback func() error) {
	t, ok := m.toolbar.Tool(name)
	if !ok {
		if fallback != nil {
			m.report(fallback())
			return
		}
		m.report(m.toolbar.Trigger(name))
		return
	}
	if toolDisabled(t) {
		return
	}
	m.report(m.toolbar.Trigger(name))
}

func toolDisabled(t toolbar.Tool) bool {
	d, ok := t.(interface{ Disabled() bool })
	return ok && d.Disabled()
}

// report shows err on the status line, or clears it.
func (m *Model) report(err error) {
	if err == nil {
		m.status = ""
		return
	}
	if errors.Is(err, toolbar.ErrUnknownTool) {
		m.log.Debug().Err(err).Msg("shortcut without tool")
	} else {
		m.log.Warn().Err(err).Msg("edit failed")
	}
	m.status = err.Error()
}

func (m *Model) moveHorizontal(dir int, extend bool) {
	r, ok := m.model.Selection()
	if !ok {
		return
	}
	doc := m.model.Document()
	if !extend && !r.IsCollapsed() {
		if dir < 0 {
			m.model.Select(document.Caret(r.Start()))
		} else {
			m.model.Select(document.Caret(r.End()))
		}
		return
	}
	p := doc.SeekContentOffset(r.To, dir)
	m.selectTo(r, p, extend)
}

func (m *Model) moveVertical(dir int, extend bool) {
	r, ok := m.model.Selection()
	if !ok {
		return
	}
	doc := m.model.Document()
	leaf, idx, ok := doc.LeafPosition(r.To)
	if !ok {
		return
	}
	next := leaf + dir
	if next < 0 || next >= len(doc.Leaves()) {
		return
	}
	m.selectTo(r, doc.OffsetAt(next, idx), extend)
}

func (m *Model) moveLine(end bool) {
	r, ok := m.model.Selection()
	if !ok {
		return
	}
	doc := m.model.Document()
	leaf, _, ok := doc.LeafPosition(r.To)
	if !ok {
		return
	}
	idx := 0
	if end {
		idx = math.MaxInt
	}
	m.selectTo(r, doc.OffsetAt(leaf, idx), false)
}

func (m *Model) selectTo(r document.Range, p int, extend bool) {
	if extend {
		m.model.Select(document.NewRange(r.From, p))
		return
	}
	m.model.Select(document.Caret(p))
}

func (m *Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.model.SelectedText()
	if s == "" {
		return
	}
	m.report(m.cfg.Clipboard.WriteText(s))
}

func (m *Model) pasteClipboard() {
	if m.cfg.Clipboard == nil || m.cfg.ReadOnly {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil {
		m.report(err)
		return
	}
	if s == "" {
		return
	}
	m.edit(func() error { return m.model.InsertText(normalizeNewlines(s)) })
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
