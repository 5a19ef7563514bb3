package surface

import "github.com/iw2rmb/inkwell/document"

// ChangeKind identifies what produced a change notification.
type ChangeKind uint8

const (
	ChangeSelect ChangeKind = iota
	ChangeTransaction
	ChangeUndo
	ChangeRedo
)

func (k ChangeKind) String() string {
	switch k {
	case ChangeSelect:
		return "select"
	case ChangeTransaction:
		return "transaction"
	case ChangeUndo:
		return "undo"
	case ChangeRedo:
		return "redo"
	default:
		return "unknown"
	}
}

// SelectionState captures the selection at a point in time.
type SelectionState struct {
	Active bool
	Range  document.Range
}

// Change is the payload delivered to change observers.
type Change struct {
	Kind            ChangeKind
	VersionBefore   uint64
	VersionAfter    uint64
	SelectionBefore SelectionState
	SelectionAfter  SelectionState
}

type subscriber struct {
	id int
	fn func(Change)
}

type changeBuilder struct {
	kind            ChangeKind
	versionBefore   uint64
	docVersion      uint64
	selectionBefore SelectionState
}

// OnChange registers fn to run after every effective mutation, in
// registration order. The returned function unsubscribes; calling it more
// than once is harmless.
func (m *Model) OnChange(fn func(Change)) (unsubscribe func()) {
	m.nextSubID++
	id := m.nextSubID
	m.subs = append(m.subs, subscriber{id: id, fn: fn})
	return func() {
		for i, s := range m.subs {
			if s.id == id {
				m.subs = append(m.subs[:i:i], m.subs[i+1:]...)
				return
			}
		}
	}
}

// LastChange returns the most recent effective change.
func (m *Model) LastChange() (Change, bool) {
	return m.lastChange, m.hasLastChange
}

func (m *Model) selectionState() SelectionState {
	if !m.hasSel {
		return SelectionState{}
	}
	return SelectionState{Active: true, Range: m.sel}
}

func (m *Model) beginChange(kind ChangeKind) changeBuilder {
	return changeBuilder{
		kind:            kind,
		versionBefore:   m.version,
		docVersion:      m.doc.Version(),
		selectionBefore: m.selectionState(),
	}
}

// commitChange bumps the version and notifies observers when the document
// or the selection actually changed.
func (m *Model) commitChange(cb changeBuilder) bool {
	after := m.selectionState()
	if m.doc.Version() == cb.docVersion && after == cb.selectionBefore && cb.kind != ChangeUndo && cb.kind != ChangeRedo {
		return false
	}
	m.version++
	m.lastChange = Change{
		Kind:            cb.kind,
		VersionBefore:   cb.versionBefore,
		VersionAfter:    m.version,
		SelectionBefore: cb.selectionBefore,
		SelectionAfter:  after,
	}
	m.hasLastChange = true

	subs := append([]subscriber(nil), m.subs...)
	for _, s := range subs {
		s.fn(m.lastChange)
	}
	return true
}
