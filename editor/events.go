package editor

import "github.com/iw2rmb/inkwell/surface"

type ChangeEvent struct {
	Version   uint64
	Kind      surface.ChangeKind
	Selection surface.SelectionState

	// DocumentVersion advances only when the document content changed.
	DocumentVersion uint64
}

func buildChangeEvent(m *surface.Model, ch surface.Change) ChangeEvent {
	return ChangeEvent{
		Version:         ch.VersionAfter,
		Kind:            ch.Kind,
		Selection:       ch.SelectionAfter,
		DocumentVersion: m.Document().Version(),
	}
}
