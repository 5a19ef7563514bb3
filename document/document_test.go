package document

import "testing"

// twoParagraphs lays out as:
//
//	0 <p> 1 a 2 b 3 c 4 </p> 5 <p> 6 d 7 e 8 </p>
func twoParagraphs() (*Document, *Node, *Node) {
	p1 := NewParagraph(Text("abc"))
	p2 := NewParagraph(Text("de"))
	return New(p1, p2), p1, p2
}

// listAndParagraph lays out as:
//
//	0 <ul> 1 <li> 2 <p> 3 x 4 </p> 5 </li> 6 <li> 7 <p> 8 y 9 </p> 10 </li> 11 </ul>
//	12 <p> 13 z 14 </p>
func listAndParagraph() (*Document, []*Node) {
	px := NewParagraph(Text("x"))
	py := NewParagraph(Text("y"))
	pz := NewParagraph(Text("z"))
	doc := New(
		NewList(
			NewListItem(nil, px),
			NewListItem([]string{StyleNumber}, py),
		),
		pz,
	)
	return doc, []*Node{px, py, pz}
}

func TestNew_EmptyDocumentHasParagraph(t *testing.T) {
	doc := New()
	leaves := doc.Leaves()
	if len(leaves) != 1 || leaves[0].Type() != TypeParagraph {
		t.Fatalf("leaves: got %v, want one paragraph", leaves)
	}
	if got, want := doc.Length(), 2; got != want {
		t.Fatalf("length: got %d, want %d", got, want)
	}
	if got := doc.NearestContentOffset(0); got != 1 {
		t.Fatalf("nearest content offset: got %d, want 1", got)
	}
}

func TestLengthAndContentRange(t *testing.T) {
	doc, p1, p2 := twoParagraphs()
	if got, want := doc.Length(), 9; got != want {
		t.Fatalf("length: got %d, want %d", got, want)
	}
	if r, ok := doc.ContentRange(p1); !ok || r != (Range{From: 1, To: 4}) {
		t.Fatalf("p1 content range: got %v %v", r, ok)
	}
	if r, ok := doc.ContentRange(p2); !ok || r != (Range{From: 6, To: 8}) {
		t.Fatalf("p2 content range: got %v %v", r, ok)
	}
	if _, ok := doc.ContentRange(NewParagraph()); ok {
		t.Fatalf("detached node must have no content range")
	}
}

func TestNodeFromOffset_Paragraphs(t *testing.T) {
	doc, p1, p2 := twoParagraphs()
	cases := []struct {
		offset int
		want   *Node
	}{
		{offset: 0, want: doc.Root()},
		{offset: 1, want: p1},
		{offset: 4, want: p1},
		{offset: 5, want: doc.Root()},
		{offset: 6, want: p2},
		{offset: 8, want: p2},
		{offset: 9, want: doc.Root()},
		{offset: 42, want: doc.Root()},
	}
	for _, tc := range cases {
		if got := doc.NodeFromOffset(tc.offset); got != tc.want {
			t.Fatalf("NodeFromOffset(%d): got %v, want %v", tc.offset, got.Type(), tc.want.Type())
		}
	}
}

func TestNodeFromOffset_List(t *testing.T) {
	doc, leaves := listAndParagraph()
	list := doc.Root().Children()[0]
	items := list.Children()
	cases := []struct {
		offset int
		want   *Node
	}{
		{offset: 0, want: doc.Root()},
		{offset: 1, want: list},
		{offset: 2, want: items[0]},
		{offset: 3, want: leaves[0]},
		{offset: 4, want: leaves[0]},
		{offset: 5, want: items[0]},
		{offset: 6, want: list},
		{offset: 8, want: leaves[1]},
		{offset: 11, want: list},
		{offset: 12, want: doc.Root()},
		{offset: 13, want: leaves[2]},
	}
	for _, tc := range cases {
		if got := doc.NodeFromOffset(tc.offset); got != tc.want {
			t.Fatalf("NodeFromOffset(%d): got %s, want %s", tc.offset, got.Type(), tc.want.Type())
		}
	}
}

func TestNearestContentOffset(t *testing.T) {
	doc, _ := listAndParagraph()
	cases := []struct{ offset, want int }{
		{offset: 0, want: 3},
		{offset: 3, want: 3},
		{offset: 6, want: 4},
		{offset: 8, want: 8},
		{offset: 12, want: 9},
		{offset: 20, want: 14},
		{offset: -1, want: 3},
	}
	for _, tc := range cases {
		if got := doc.NearestContentOffset(tc.offset); got != tc.want {
			t.Fatalf("NearestContentOffset(%d): got %d, want %d", tc.offset, got, tc.want)
		}
	}
}

func TestSeekContentOffset(t *testing.T) {
	doc, _, _ := twoParagraphs()
	cases := []struct{ offset, dir, want int }{
		{offset: 1, dir: 1, want: 2},
		{offset: 4, dir: 1, want: 6},
		{offset: 8, dir: 1, want: 8},
		{offset: 6, dir: -1, want: 4},
		{offset: 1, dir: -1, want: 1},
	}
	for _, tc := range cases {
		if got := doc.SeekContentOffset(tc.offset, tc.dir); got != tc.want {
			t.Fatalf("SeekContentOffset(%d, %d): got %d, want %d", tc.offset, tc.dir, got, tc.want)
		}
	}
}

func TestAnnotations(t *testing.T) {
	doc := New(NewParagraph(Text("ab", Bold()), Text("c", Bold(), Italic())))

	if got := doc.AnnotationsFromOffset(1); !got.Equal(NewAnnotationSet(Bold())) {
		t.Fatalf("annotations at 1: got %v", got)
	}
	if got := doc.AnnotationsFromOffset(0); !got.IsEmpty() {
		t.Fatalf("annotations of an open item: got %v, want empty", got)
	}
	if got := doc.AnnotationsFromOffset(-1); !got.IsEmpty() {
		t.Fatalf("annotations out of range: got %v, want empty", got)
	}
	if got := doc.AnnotationsFromRange(NewRange(1, 4)); !got.Equal(NewAnnotationSet(Bold())) {
		t.Fatalf("annotations across run: got %v, want {bold}", got)
	}
	if got := doc.AnnotationsFromRange(NewRange(4, 3)); !got.Equal(NewAnnotationSet(Bold(), Italic())) {
		t.Fatalf("annotations of backward range: got %v", got)
	}
	if got := doc.AnnotationsFromRange(NewRange(0, 1)); !got.IsEmpty() {
		t.Fatalf("annotations without characters: got %v, want empty", got)
	}
}

func TestTraverseLeafNodes(t *testing.T) {
	doc, leaves := listAndParagraph()

	var all []*Node
	doc.TraverseLeafNodes(func(n *Node) bool { all = append(all, n); return true }, nil)
	if len(all) != 3 {
		t.Fatalf("nil start: got %d leaves, want 3", len(all))
	}

	var fromSecond []*Node
	doc.TraverseLeafNodes(func(n *Node) bool { fromSecond = append(fromSecond, n); return true }, leaves[1])
	if len(fromSecond) != 2 || fromSecond[0] != leaves[1] || fromSecond[1] != leaves[2] {
		t.Fatalf("start at second leaf: got %v", fromSecond)
	}

	var stopped []*Node
	doc.TraverseLeafNodes(func(n *Node) bool { stopped = append(stopped, n); return n != leaves[1] }, leaves[0])
	if len(stopped) != 2 {
		t.Fatalf("stop after second leaf: got %d leaves, want 2", len(stopped))
	}

	list := doc.Root().Children()[0]
	var fromBranch []*Node
	doc.TraverseLeafNodes(func(n *Node) bool { fromBranch = append(fromBranch, n); return true }, list)
	if len(fromBranch) != 3 {
		t.Fatalf("branch start: got %d leaves, want 3", len(fromBranch))
	}

	visited := 0
	doc.TraverseLeafNodes(func(*Node) bool { visited++; return true }, NewParagraph())
	if visited != 0 {
		t.Fatalf("foreign start: visited %d leaves, want 0", visited)
	}
}

func TestText(t *testing.T) {
	doc, _, _ := twoParagraphs()
	if got, want := doc.Text(NewRange(2, 7)), "bc\nd"; got != want {
		t.Fatalf("text: got %q, want %q", got, want)
	}
	if got, want := doc.Text(NewRange(7, 2)), "bc\nd"; got != want {
		t.Fatalf("backward text: got %q, want %q", got, want)
	}
}

func TestClone_IsIndependent(t *testing.T) {
	doc, _, _ := twoParagraphs()
	c := doc.Clone()
	if err := c.InsertText(1, "X", AnnotationSet{}); err != nil {
		t.Fatalf("insert: %v", err)
	}
	if got := doc.Root().Text(); got != "abc\nde" {
		t.Fatalf("original changed: %q", got)
	}
	if got := c.Root().Text(); got != "Xabc\nde" {
		t.Fatalf("clone: got %q", got)
	}
}

func TestLeafPosition_RoundTrip(t *testing.T) {
	doc, _ := listAndParagraph()
	for _, o := range []int{3, 4, 8, 9, 13, 14} {
		leaf, idx, ok := doc.LeafPosition(o)
		if !ok {
			t.Fatalf("LeafPosition(%d): not found", o)
		}
		if got := doc.OffsetAt(leaf, idx); got != o {
			t.Fatalf("OffsetAt(LeafPosition(%d)): got %d", o, got)
		}
	}
	if _, _, ok := doc.LeafPosition(0); ok {
		t.Fatalf("LeafPosition(0) must fail")
	}
	if got := doc.OffsetAt(7, 99); got != 14 {
		t.Fatalf("clamped OffsetAt: got %d, want 14", got)
	}
}

func TestAdvanceVersion(t *testing.T) {
	d := New()
	d.AdvanceVersion(4)
	if d.Version() != 5 {
		t.Fatalf("version=%d, want 5", d.Version())
	}
	d.AdvanceVersion(2)
	if d.Version() != 5 {
		t.Fatalf("version went back to %d", d.Version())
	}
}
