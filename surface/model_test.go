package surface

import (
	"errors"
	"testing"

	"github.com/iw2rmb/inkwell/document"
)

func newModel(blocks ...*document.Node) *Model {
	return New(document.New(blocks...), Options{})
}

func TestSelect_NotifiesOnlyOnChange(t *testing.T) {
	m := newModel(document.NewParagraph(document.Text("abc")))
	var changes []Change
	m.OnChange(func(ch Change) { changes = append(changes, ch) })

	m.Select(document.Caret(2))
	m.Select(document.Caret(2))
	if len(changes) != 1 {
		t.Fatalf("changes: got %d, want 1", len(changes))
	}
	ch := changes[0]
	if ch.Kind != ChangeSelect || ch.SelectionBefore.Active || !ch.SelectionAfter.Active {
		t.Fatalf("change: got %+v", ch)
	}
	if ch.VersionAfter != ch.VersionBefore+1 || m.Version() != ch.VersionAfter {
		t.Fatalf("versions: before=%d after=%d model=%d", ch.VersionBefore, ch.VersionAfter, m.Version())
	}

	m.ClearSelection()
	m.ClearSelection()
	if len(changes) != 2 {
		t.Fatalf("changes after clear: got %d, want 2", len(changes))
	}
	if _, ok := m.Selection(); ok {
		t.Fatalf("selection must be cleared")
	}
}

func TestSelect_ClampsAndKeepsDirection(t *testing.T) {
	m := newModel(document.NewParagraph(document.Text("abc")))
	m.Select(document.NewRange(40, 2))
	r, ok := m.Selection()
	if !ok || r != (document.Range{From: 5, To: 2}) {
		t.Fatalf("selection: got %v %v", r, ok)
	}
}

func TestOnChange_Unsubscribe(t *testing.T) {
	m := newModel()
	var a, b int
	unsubA := m.OnChange(func(Change) { a++ })
	m.OnChange(func(Change) { b++ })

	m.Select(document.Caret(1))
	unsubA()
	unsubA()
	m.Select(document.NewRange(1, 1))
	m.ClearSelection()

	if a != 1 || b != 2 {
		t.Fatalf("calls: a=%d b=%d, want 1 and 2", a, b)
	}
}

func TestInsertText_UndoRedo(t *testing.T) {
	m := newModel(document.NewParagraph(document.Text("abc")))
	m.Select(document.Caret(4))

	if m.CanUndo() {
		t.Fatalf("selection changes are not undoable")
	}
	if err := m.InsertText("d"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got := m.Document().Root().Text(); got != "abcd" {
		t.Fatalf("text: got %q", got)
	}
	if r, _ := m.Selection(); r != document.Caret(5) {
		t.Fatalf("caret: got %v", r)
	}

	var kinds []ChangeKind
	m.OnChange(func(ch Change) { kinds = append(kinds, ch.Kind) })

	if !m.Undo() {
		t.Fatalf("undo failed")
	}
	if got := m.Document().Root().Text(); got != "abc" {
		t.Fatalf("text after undo: got %q", got)
	}
	if r, _ := m.Selection(); r != document.Caret(4) {
		t.Fatalf("caret after undo: got %v", r)
	}
	if !m.Redo() {
		t.Fatalf("redo failed")
	}
	if got := m.Document().Root().Text(); got != "abcd" {
		t.Fatalf("text after redo: got %q", got)
	}
	if m.Redo() {
		t.Fatalf("redo with empty stack must fail")
	}
	if len(kinds) != 2 || kinds[0] != ChangeUndo || kinds[1] != ChangeRedo {
		t.Fatalf("kinds: got %v", kinds)
	}
}

func TestInsertText_InheritsAnnotationsExceptLinks(t *testing.T) {
	m := newModel(document.NewParagraph(
		document.Text("ab", document.Bold(), document.Link("#x")),
	))
	m.Select(document.Caret(3))
	if err := m.InsertText("c"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	got := m.Document().AnnotationsFromOffset(3)
	if !got.Equal(document.NewAnnotationSet(document.Bold())) {
		t.Fatalf("inserted annotations: got %v, want {bold}", got)
	}
}

func TestInsertText_ReplacesRange(t *testing.T) {
	m := newModel(
		document.NewParagraph(document.Text("abc")),
		document.NewParagraph(document.Text("de")),
	)
	m.Select(document.NewRange(7, 2))
	if err := m.InsertText("X"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got := m.Document().Root().Text(); got != "aXe" {
		t.Fatalf("text: got %q, want %q", got, "aXe")
	}
}

func TestHistoryLimit(t *testing.T) {
	m := New(document.New(), Options{HistoryLimit: 2})
	m.Select(document.Caret(1))
	for _, s := range []string{"a", "b", "c"} {
		if err := m.InsertText(s); err != nil {
			t.Fatalf("insert %q: %v", s, err)
		}
	}
	undos := 0
	for m.Undo() {
		undos++
	}
	if undos != 2 {
		t.Fatalf("undos: got %d, want 2", undos)
	}
	if got := m.Document().Root().Text(); got != "a" {
		t.Fatalf("text: got %q, want %q", got, "a")
	}
}

func TestEdits_RequireSelection(t *testing.T) {
	m := newModel()
	for name, fn := range map[string]func() error{
		"insert": func() error { return m.InsertText("x") },
		"split":  m.SplitLeaf,
		"bold":   func() error { return m.Annotate(document.Bold(), true) },
		"list":   func() error { return m.ListWrap(document.StyleBullet) },
	} {
		if err := fn(); !errors.Is(err, ErrNoSelection) {
			t.Fatalf("%s: got %v, want ErrNoSelection", name, err)
		}
	}
}

func TestFailedEdit_LeavesStateAlone(t *testing.T) {
	m := newModel(document.NewParagraph(document.Text("abc")))
	m.Select(document.Caret(2))
	notified := 0
	m.OnChange(func(Change) { notified++ })

	err := m.Convert(document.TypeList, 0)
	if !errors.Is(err, document.ErrInvalidType) {
		t.Fatalf("convert: got %v, want ErrInvalidType", err)
	}
	if notified != 0 || m.CanUndo() {
		t.Fatalf("failed edit: notified=%d canUndo=%v", notified, m.CanUndo())
	}
}

func TestStructuralEdit_MapsSelection(t *testing.T) {
	m := newModel(
		document.NewParagraph(document.Text("abc")),
		document.NewParagraph(document.Text("de")),
	)
	m.Select(document.NewRange(2, 7))
	if err := m.ListWrap(document.StyleBullet); err != nil {
		t.Fatalf("wrap: %v", err)
	}
	// <ul> <li> <p> a b c </p> </li> <li> <p> d e </p> </li> </ul>
	if r, _ := m.Selection(); r != document.NewRange(4, 11) {
		t.Fatalf("mapped selection: got %v, want [4 11]", r)
	}
	if got := m.SelectedText(); got != "bc\nd" {
		t.Fatalf("selected text: got %q", got)
	}

	if !m.Undo() {
		t.Fatalf("undo failed")
	}
	if r, _ := m.Selection(); r != document.NewRange(2, 7) {
		t.Fatalf("selection after undo: got %v", r)
	}
}

func TestDeleteBackward_JoinsLeaves(t *testing.T) {
	m := newModel(
		document.NewParagraph(document.Text("ab")),
		document.NewParagraph(document.Text("cd")),
	)
	m.Select(document.Caret(5))
	if err := m.DeleteBackward(); err != nil {
		t.Fatalf("backspace: %v", err)
	}
	if got := m.Document().Root().Text(); got != "abcd" {
		t.Fatalf("text: got %q", got)
	}
	if r, _ := m.Selection(); r != document.Caret(3) {
		t.Fatalf("caret: got %v", r)
	}

	m.Select(document.Caret(1))
	v := m.Version()
	if err := m.DeleteBackward(); err != nil {
		t.Fatalf("backspace at start: %v", err)
	}
	if m.Version() != v {
		t.Fatalf("backspace at document start must be a no-op")
	}
}

func TestSplitLeaf_MovesCaret(t *testing.T) {
	m := newModel(document.NewParagraph(document.Text("ab")))
	m.Select(document.Caret(2))
	if err := m.SplitLeaf(); err != nil {
		t.Fatalf("split: %v", err)
	}
	if got := len(m.Document().Leaves()); got != 2 {
		t.Fatalf("leaves: got %d, want 2", got)
	}
	if r, _ := m.Selection(); r != document.Caret(4) {
		t.Fatalf("caret: got %v, want 4", r)
	}
}

func TestUndoRedo_DocumentVersionNeverRepeats(t *testing.T) {
	m := newModel(document.NewParagraph())
	m.Select(document.Caret(1))

	if err := m.InsertText("a"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	saved := m.Document().Version()

	if !m.Undo() {
		t.Fatalf("undo failed")
	}
	if v := m.Document().Version(); v <= saved {
		t.Fatalf("version after undo=%d, want > %d", v, saved)
	}
	if err := m.InsertText("b"); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if v := m.Document().Version(); v <= saved {
		t.Fatalf("version after a different edit=%d, want > %d", v, saved)
	}

	before := m.Document().Version()
	m.Undo()
	m.Redo()
	if v := m.Document().Version(); v <= before+1 {
		t.Fatalf("version after undo and redo=%d, want > %d", v, before+1)
	}
}
