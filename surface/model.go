package surface

import "github.com/iw2rmb/inkwell/document"

type Options struct {
	HistoryLimit int // default: 1000
}

// Model is the editing-session state observed by the toolbar and the view.
// It is not safe for concurrent use; hosts drive it from one goroutine.
type Model struct {
	doc *document.Document

	sel    document.Range
	hasSel bool

	version uint64
	opt     Options
	hist    historyState

	subs      []subscriber
	nextSubID int

	lastChange    Change
	hasLastChange bool
}

func New(doc *document.Document, opt Options) *Model {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	if doc == nil {
		doc = document.New()
	}
	return &Model{doc: doc, opt: opt}
}

func (m *Model) Document() *document.Document { return m.doc }

// Reader exposes the document through the query interface observers use.
func (m *Model) Reader() document.Reader { return m.doc }

func (m *Model) Version() uint64 { return m.version }

// Selection returns the current selection. A caret is a collapsed range.
func (m *Model) Selection() (document.Range, bool) {
	if !m.hasSel {
		return document.Range{}, false
	}
	return m.sel, true
}

// Select sets the selection, clamped into the document. The direction of r
// is preserved.
func (m *Model) Select(r document.Range) {
	change := m.beginChange(ChangeSelect)
	m.sel = document.ClampRange(r, m.doc.Length())
	m.hasSel = true
	m.commitChange(change)
}

func (m *Model) ClearSelection() {
	if !m.hasSel {
		return
	}
	change := m.beginChange(ChangeSelect)
	m.sel = document.Range{}
	m.hasSel = false
	m.commitChange(change)
}

// SelectedText returns the plain text of the selection.
func (m *Model) SelectedText() string {
	if !m.hasSel {
		return ""
	}
	return m.doc.Text(m.sel)
}
