package surface

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/iw2rmb/inkwell/document"
)

// ErrNoSelection indicates that an edit needs a selection and there is none.
var ErrNoSelection = errors.New("no selection")

type position struct {
	leaf  int
	index int
}

func (m *Model) locate(offset int) position {
	o := m.doc.NearestContentOffset(offset)
	leaf, idx, ok := m.doc.LeafPosition(o)
	if !ok {
		return position{}
	}
	return position{leaf: leaf, index: idx}
}

func (m *Model) resolve(p position) int { return m.doc.OffsetAt(p.leaf, p.index) }

// transact runs fn against the document, recording history and notifying
// observers when anything changed.
func (m *Model) transact(fn func(doc *document.Document) error) error {
	prev := m.snapshot()
	change := m.beginChange(ChangeTransaction)
	if err := fn(m.doc); err != nil {
		m.restore(prev, false)
		return err
	}
	if m.doc.Version() != change.docVersion {
		m.recordUndo(prev)
	}
	m.commitChange(change)
	return nil
}

// structural runs a tree-reshaping edit over the selection and maps the
// selection through it by leaf ordinal, since the leaves themselves survive.
func (m *Model) structural(name string, fn func(doc *document.Document, r document.Range) error) error {
	if !m.hasSel {
		return ErrNoSelection
	}
	return m.transact(func(doc *document.Document) error {
		from, to := m.locate(m.sel.From), m.locate(m.sel.To)
		if err := fn(doc, m.sel); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		m.sel = document.NewRange(m.resolve(from), m.resolve(to))
		return nil
	})
}

// InsertText replaces the selection with text. The new characters inherit
// the annotations in front of the caret, except links.
func (m *Model) InsertText(text string) error {
	if !m.hasSel {
		return ErrNoSelection
	}
	return m.transact(func(doc *document.Document) error {
		start := m.sel.Start()
		if !m.sel.IsCollapsed() {
			if err := doc.DeleteRange(m.sel); err != nil {
				return fmt.Errorf("insert text: %w", err)
			}
		}
		start = doc.NearestContentOffset(start)
		anns := doc.AnnotationsFromOffset(doc.NearestContentOffset(start - 1)).
			WithoutType(document.AnnotationLink)
		if err := doc.InsertText(start, text, anns); err != nil {
			return fmt.Errorf("insert text: %w", err)
		}
		m.sel = document.Caret(start + utf8.RuneCountInString(text))
		return nil
	})
}

// Delete removes r and leaves a caret at its start.
func (m *Model) Delete(r document.Range) error {
	return m.transact(func(doc *document.Document) error {
		if err := doc.DeleteRange(r); err != nil {
			return fmt.Errorf("delete: %w", err)
		}
		m.sel = document.Caret(r.Start())
		m.hasSel = true
		return nil
	})
}

// DeleteBackward applies backspace semantics: a range is removed, a caret
// removes the previous character or joins with the previous leaf.
func (m *Model) DeleteBackward() error {
	if !m.hasSel {
		return ErrNoSelection
	}
	if !m.sel.IsCollapsed() {
		return m.Delete(m.sel)
	}
	c := m.sel.From
	p := m.doc.SeekContentOffset(c, -1)
	if p == c {
		return nil
	}
	return m.Delete(document.NewRange(p, c))
}

// DeleteForward applies delete-key semantics.
func (m *Model) DeleteForward() error {
	if !m.hasSel {
		return ErrNoSelection
	}
	if !m.sel.IsCollapsed() {
		return m.Delete(m.sel)
	}
	c := m.sel.From
	n := m.doc.SeekContentOffset(c, 1)
	if n == c {
		return nil
	}
	return m.Delete(document.NewRange(c, n))
}

// SplitLeaf replaces the selection with a block break.
func (m *Model) SplitLeaf() error {
	if !m.hasSel {
		return ErrNoSelection
	}
	return m.transact(func(doc *document.Document) error {
		start := m.sel.Start()
		if !m.sel.IsCollapsed() {
			if err := doc.DeleteRange(m.sel); err != nil {
				return fmt.Errorf("split: %w", err)
			}
		}
		start = doc.NearestContentOffset(start)
		next, err := doc.SplitLeaf(start)
		if err != nil {
			return fmt.Errorf("split: %w", err)
		}
		m.sel = document.Caret(next)
		return nil
	})
}

// Annotate sets or clears an annotation over the selected range. A caret
// selection is left untouched.
func (m *Model) Annotate(a document.Annotation, on bool) error {
	if !m.hasSel {
		return ErrNoSelection
	}
	return m.transact(func(doc *document.Document) error {
		if err := doc.SetAnnotation(m.sel, a, on); err != nil {
			return fmt.Errorf("annotate %s: %w", a.Type, err)
		}
		return nil
	})
}

// ClearAnnotations strips every annotation from the selected range.
func (m *Model) ClearAnnotations() error {
	if !m.hasSel {
		return ErrNoSelection
	}
	return m.transact(func(doc *document.Document) error {
		if err := doc.ClearAnnotations(m.sel); err != nil {
			return fmt.Errorf("clear annotations: %w", err)
		}
		return nil
	})
}

// Convert changes the selected leaves to another content type.
func (m *Model) Convert(t document.NodeType, level int) error {
	return m.structural("convert", func(doc *document.Document, r document.Range) error {
		return doc.Convert(r, t, level)
	})
}

func (m *Model) ListWrap(style string) error {
	return m.structural("list wrap", func(doc *document.Document, r document.Range) error {
		return doc.ListWrap(r, style)
	})
}

func (m *Model) ListUnwrap() error {
	return m.structural("list unwrap", func(doc *document.Document, r document.Range) error {
		return doc.ListUnwrap(r)
	})
}

func (m *Model) Indent() error {
	return m.structural("indent", func(doc *document.Document, r document.Range) error {
		return doc.Indent(r)
	})
}

func (m *Model) Outdent() error {
	return m.structural("outdent", func(doc *document.Document, r document.Range) error {
		return doc.Outdent(r)
	})
}
