package document

import (
	"errors"
	"testing"
)

func TestInsertText(t *testing.T) {
	doc, p1, _ := twoParagraphs()
	v := doc.Version()
	if err := doc.InsertText(2, "Z\nY", NewAnnotationSet(Bold())); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, want := p1.Text(), "aZ Ybc"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got := doc.AnnotationsFromOffset(2); !got.Has(Bold()) {
		t.Fatalf("inserted annotations: got %v", got)
	}
	if doc.Version() != v+1 {
		t.Fatalf("version: got %d, want %d", doc.Version(), v+1)
	}
	if got, want := doc.Length(), 12; got != want {
		t.Fatalf("length: got %d, want %d", got, want)
	}

	if err := doc.InsertText(5, "x", AnnotationSet{}); !errors.Is(err, ErrInvalidOffset) {
		t.Fatalf("insert at structure: got %v, want ErrInvalidOffset", err)
	}
}

func TestInsertText_PreformattedKeepsNewlines(t *testing.T) {
	pre := NewPreformatted(Text("ab"))
	doc := New(pre)
	if err := doc.InsertText(2, "\n", AnnotationSet{}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got, want := pre.Text(), "a\nb"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
}

func TestDeleteRange(t *testing.T) {
	t.Run("inside leaf", func(t *testing.T) {
		doc, p1, _ := twoParagraphs()
		if err := doc.DeleteRange(NewRange(3, 1)); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if got, want := p1.Text(), "c"; got != want {
			t.Fatalf("text: got %q, want %q", got, want)
		}
	})

	t.Run("across leaves", func(t *testing.T) {
		doc, p1, _ := twoParagraphs()
		if err := doc.DeleteRange(NewRange(2, 7)); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if got, want := doc.Root().Text(), "ae"; got != want {
			t.Fatalf("text: got %q, want %q", got, want)
		}
		if got := doc.Leaves(); len(got) != 1 || got[0] != p1 {
			t.Fatalf("leaves: got %d, want the first paragraph only", len(got))
		}
	})

	t.Run("joins at boundary", func(t *testing.T) {
		doc, _, _ := twoParagraphs()
		if err := doc.DeleteRange(NewRange(4, 6)); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if got, want := doc.Root().Text(), "abcde"; got != want {
			t.Fatalf("text: got %q, want %q", got, want)
		}
	})

	t.Run("prunes emptied list", func(t *testing.T) {
		doc, _ := listAndParagraph()
		if err := doc.DeleteRange(NewRange(3, 13)); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if got, want := doc.Root().Text(), "z"; got != want {
			t.Fatalf("text: got %q, want %q", got, want)
		}
		children := doc.Root().Children()
		if len(children) != 1 || children[0].Type() != TypeList {
			t.Fatalf("first leaf keeps its list item: got %d children", len(children))
		}
		if got := len(children[0].Children()); got != 1 {
			t.Fatalf("list items: got %d, want 1", got)
		}
	})

	t.Run("collapsed is no-op", func(t *testing.T) {
		doc, _, _ := twoParagraphs()
		v := doc.Version()
		if err := doc.DeleteRange(Caret(2)); err != nil {
			t.Fatalf("delete: %v", err)
		}
		if doc.Version() != v {
			t.Fatalf("version changed on no-op")
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		doc, _, _ := twoParagraphs()
		if err := doc.DeleteRange(NewRange(2, 40)); !errors.Is(err, ErrInvalidRange) {
			t.Fatalf("got %v, want ErrInvalidRange", err)
		}
	})
}

func TestSetAnnotation(t *testing.T) {
	doc, _, _ := twoParagraphs()
	if err := doc.SetAnnotation(NewRange(1, 3), Bold(), true); err != nil {
		t.Fatalf("bold: %v", err)
	}
	if got := doc.AnnotationsFromRange(NewRange(1, 3)); !got.Equal(NewAnnotationSet(Bold())) {
		t.Fatalf("bold range: got %v", got)
	}
	if got := doc.AnnotationsFromRange(NewRange(1, 4)); !got.IsEmpty() {
		t.Fatalf("partially bold range: got %v, want empty", got)
	}

	v := doc.Version()
	if err := doc.SetAnnotation(NewRange(1, 3), Bold(), true); err != nil {
		t.Fatalf("bold again: %v", err)
	}
	if doc.Version() != v {
		t.Fatalf("re-applying an annotation must not bump the version")
	}

	if err := doc.SetAnnotation(NewRange(1, 2), Link("#a"), true); err != nil {
		t.Fatalf("link: %v", err)
	}
	if err := doc.SetAnnotation(NewRange(1, 2), Link("#b"), true); err != nil {
		t.Fatalf("relink: %v", err)
	}
	links := doc.AnnotationsFromOffset(1).OfType(AnnotationLink)
	if len(links) != 1 || links[0].Href != "#b" {
		t.Fatalf("links: got %v, want only #b", links)
	}

	if err := doc.SetAnnotation(NewRange(1, 2), Link(""), false); err != nil {
		t.Fatalf("unlink: %v", err)
	}
	if doc.AnnotationsFromOffset(1).HasType(AnnotationLink) {
		t.Fatalf("link must be removed by type")
	}

	if err := doc.ClearAnnotations(NewRange(0, 9)); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := doc.AnnotationsFromOffset(1); !got.IsEmpty() {
		t.Fatalf("after clear: got %v", got)
	}
}

func TestConvert(t *testing.T) {
	doc, p1, p2 := twoParagraphs()
	if err := doc.Convert(NewRange(2, 7), TypeHeading, 9); err != nil {
		t.Fatalf("convert: %v", err)
	}
	for _, n := range []*Node{p1, p2} {
		if n.Type() != TypeHeading || n.Attributes().Level != 6 {
			t.Fatalf("got %s level %d, want heading level 6", n.Type(), n.Attributes().Level)
		}
	}
	if err := doc.Convert(Caret(1), TypeList, 0); !errors.Is(err, ErrInvalidType) {
		t.Fatalf("convert to branch: got %v, want ErrInvalidType", err)
	}
}

func TestListWrapAndUnwrap(t *testing.T) {
	doc, p1, p2 := twoParagraphs()
	if err := doc.ListWrap(NewRange(2, 7), StyleNumber); err != nil {
		t.Fatalf("wrap: %v", err)
	}
	children := doc.Root().Children()
	if len(children) != 1 || children[0].Type() != TypeList {
		t.Fatalf("root children: got %d, want one list", len(children))
	}
	for _, n := range []*Node{p1, p2} {
		item := n.ListItem()
		if item == nil || item.ListStyle() != StyleNumber || item.Depth() != 1 {
			t.Fatalf("leaf %q not in a numbered item", n.Text())
		}
	}

	if err := doc.ListWrap(Caret(3), StyleBullet); err != nil {
		t.Fatalf("restyle: %v", err)
	}
	if got := p1.ListItem().ListStyle(); got != StyleBullet {
		t.Fatalf("restyled item: got %q, want bullet", got)
	}
	if got := p2.ListItem().ListStyle(); got != StyleNumber {
		t.Fatalf("untouched item: got %q, want number", got)
	}

	r, _ := doc.ContentRange(p1)
	if err := doc.ListUnwrap(r); err != nil {
		t.Fatalf("unwrap: %v", err)
	}
	children = doc.Root().Children()
	if len(children) != 2 || children[0] != p1 || children[1].Type() != TypeList {
		t.Fatalf("after unwrap: got %d children", len(children))
	}
	if p2.ListItem() == nil {
		t.Fatalf("second leaf must stay listed")
	}
}

func TestIndentOutdent(t *testing.T) {
	doc, leaves := listAndParagraph()
	py := leaves[1]
	r, _ := doc.ContentRange(py)

	if err := doc.Indent(r); err != nil {
		t.Fatalf("indent: %v", err)
	}
	item := py.ListItem()
	if item.Depth() != 2 || item.ListStyle() != StyleNumber {
		t.Fatalf("indent: got depth %d style %q", item.Depth(), item.ListStyle())
	}

	if err := doc.Outdent(r); err != nil {
		t.Fatalf("outdent: %v", err)
	}
	if py.ListItem().Depth() != 1 {
		t.Fatalf("outdent: got depth %d, want 1", py.ListItem().Depth())
	}

	if err := doc.Outdent(r); err != nil {
		t.Fatalf("outdent out of list: %v", err)
	}
	if py.ListItem() != nil {
		t.Fatalf("item at depth one must leave the list")
	}

	v := doc.Version()
	r, _ = doc.ContentRange(leaves[2])
	if err := doc.Indent(r); err != nil {
		t.Fatalf("indent paragraph: %v", err)
	}
	if doc.Version() != v {
		t.Fatalf("indenting a non-list leaf must be a no-op")
	}
}

func TestSplitLeaf(t *testing.T) {
	t.Run("paragraph", func(t *testing.T) {
		doc, p1, _ := twoParagraphs()
		next, err := doc.SplitLeaf(2)
		if err != nil {
			t.Fatalf("split: %v", err)
		}
		if got, want := next, 4; got != want {
			t.Fatalf("next offset: got %d, want %d", got, want)
		}
		if got := p1.Text(); got != "a" {
			t.Fatalf("first half: got %q", got)
		}
		if got := doc.NodeFromOffset(next).Text(); got != "bc" {
			t.Fatalf("second half: got %q", got)
		}
	})

	t.Run("heading end starts paragraph", func(t *testing.T) {
		doc := New(NewHeading(1, Text("T")))
		next, err := doc.SplitLeaf(2)
		if err != nil {
			t.Fatalf("split: %v", err)
		}
		if got := doc.NodeFromOffset(next).Type(); got != TypeParagraph {
			t.Fatalf("new leaf: got %s, want paragraph", got)
		}
	})

	t.Run("list item", func(t *testing.T) {
		doc, leaves := listAndParagraph()
		next, err := doc.SplitLeaf(4)
		if err != nil {
			t.Fatalf("split: %v", err)
		}
		n := doc.NodeFromOffset(next)
		if n.ListItem() == nil || n.ListItem() == leaves[0].ListItem() {
			t.Fatalf("split list leaf must start a sibling item")
		}
		if got := len(doc.Root().Children()[0].Children()); got != 3 {
			t.Fatalf("items: got %d, want 3", got)
		}
	})

	t.Run("structural offset", func(t *testing.T) {
		doc, _, _ := twoParagraphs()
		if _, err := doc.SplitLeaf(5); !errors.Is(err, ErrInvalidOffset) {
			t.Fatalf("got %v, want ErrInvalidOffset", err)
		}
	})
}
