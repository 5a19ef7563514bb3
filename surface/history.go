package surface

import "github.com/iw2rmb/inkwell/document"

type snapshot struct {
	doc    *document.Document
	sel    document.Range
	hasSel bool
}

type historyState struct {
	undo []snapshot
	redo []snapshot
}

func (m *Model) snapshot() snapshot {
	return snapshot{doc: m.doc.Clone(), sel: m.sel, hasSel: m.hasSel}
}

// restore swaps in s. A failed edit restores its own starting point as is;
// undo and redo advance the document version past the one they replace.
func (m *Model) restore(s snapshot, advance bool) {
	prev := m.doc.Version()
	m.doc = s.doc.Clone()
	if advance {
		m.doc.AdvanceVersion(prev)
	}
	m.sel = document.ClampRange(s.sel, m.doc.Length())
	m.hasSel = s.hasSel
}

func (m *Model) recordUndo(prev snapshot) {
	limit := m.opt.HistoryLimit
	if limit <= 0 {
		return
	}

	m.hist.undo = append(m.hist.undo, prev)
	if len(m.hist.undo) > limit {
		m.hist.undo = m.hist.undo[len(m.hist.undo)-limit:]
	}
	m.hist.redo = nil
}

func (m *Model) CanUndo() bool { return len(m.hist.undo) > 0 }

func (m *Model) CanRedo() bool { return len(m.hist.redo) > 0 }

func (m *Model) Undo() bool {
	if len(m.hist.undo) == 0 {
		return false
	}

	cur := m.snapshot()
	change := m.beginChange(ChangeUndo)

	i := len(m.hist.undo) - 1
	prev := m.hist.undo[i]
	m.hist.undo = m.hist.undo[:i]
	m.hist.redo = append(m.hist.redo, cur)

	m.restore(prev, true)
	m.commitChange(change)
	return true
}

func (m *Model) Redo() bool {
	if len(m.hist.redo) == 0 {
		return false
	}

	cur := m.snapshot()
	change := m.beginChange(ChangeRedo)

	i := len(m.hist.redo) - 1
	next := m.hist.redo[i]
	m.hist.redo = m.hist.redo[:i]

	limit := m.opt.HistoryLimit
	if limit > 0 {
		m.hist.undo = append(m.hist.undo, cur)
		if len(m.hist.undo) > limit {
			m.hist.undo = m.hist.undo[len(m.hist.undo)-limit:]
		}
	}

	m.restore(next, true)
	m.commitChange(change)
	return true
}
