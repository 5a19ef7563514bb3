package document

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidOffset indicates that an offset is not inside any content node.
	ErrInvalidOffset = errors.New("offset is not a content offset")

	// ErrInvalidRange indicates that a range falls outside the document.
	ErrInvalidRange = errors.New("range out of bounds")
)

type leafSpan struct {
	node *Node
	// start and end bound the content offsets of node, both inclusive.
	start int
	end   int
}

type itemRef struct {
	node *Node
	// idx is the character index inside node, or -1 for open/close items.
	idx int
}

// Document is the pure document state: a node tree plus its linear index.
type Document struct {
	root    *Node
	version uint64

	leaves []leafSpan
	items  []itemRef
}

// New builds a document from top-level blocks. An empty document gets a
// single empty paragraph so that there is always somewhere to put a caret.
func New(blocks ...*Node) *Document {
	if len(blocks) == 0 {
		blocks = []*Node{NewParagraph()}
	}
	d := &Document{root: newBranch(TypeDocument, Attributes{}, blocks...)}
	d.reindex()
	return d
}

func (d *Document) Root() *Node { return d.root }

// Version increments on every effective mutation.
func (d *Document) Version() uint64 { return d.version }

// AdvanceVersion moves the version past v. A document swapped in from
// history calls it so that versions never repeat.
func (d *Document) AdvanceVersion(v uint64) {
	if d.version <= v {
		d.version = v + 1
	}
}

// Length returns the number of linear items in the document.
func (d *Document) Length() int { return len(d.items) }

// Clone returns a deep copy sharing no nodes with d.
func (d *Document) Clone() *Document {
	out := &Document{root: d.root.clone(nil), version: d.version}
	out.reindex()
	return out
}

// Leaves returns the content nodes in document order.
func (d *Document) Leaves() []*Node {
	out := make([]*Node, len(d.leaves))
	for i, l := range d.leaves {
		out[i] = l.node
	}
	return out
}

// ContentRange returns the content offsets of a leaf as [Start, End], where
// End is the offset right after its last character.
func (d *Document) ContentRange(n *Node) (Range, bool) {
	for _, l := range d.leaves {
		if l.node == n {
			return Range{From: l.start, To: l.end}, true
		}
	}
	return Range{}, false
}

// NodeFromOffset returns the deepest node whose inner range holds offset.
// Offsets on structural boundaries resolve to the enclosing branch, which
// is the root between top-level blocks and outside the document.
func (d *Document) NodeFromOffset(offset int) *Node {
	n := d.root
	start := 0
	for !n.IsLeaf() {
		var next *Node
		pos := start
		for _, c := range n.children {
			inner := pos + 1
			if offset >= inner && offset <= inner+c.innerLen() {
				next = c
				start = inner
				break
			}
			pos += c.outerLen()
			if pos > offset {
				break
			}
		}
		if next == nil {
			return n
		}
		n = next
	}
	return n
}

// IsContentOffset reports whether offset lies inside a content node.
func (d *Document) IsContentOffset(offset int) bool {
	for _, l := range d.leaves {
		if offset >= l.start && offset <= l.end {
			return true
		}
	}
	return false
}

// NearestContentOffset returns the closest content offset at or before
// offset. When there is none it returns the first content offset after it,
// and -1 for a document without content nodes.
func (d *Document) NearestContentOffset(offset int) int {
	best := -1
	for _, l := range d.leaves {
		if l.start > offset {
			if best == -1 {
				return l.start
			}
			break
		}
		best = min(offset, l.end)
	}
	return best
}

// SeekContentOffset moves one content position from offset in direction
// dir (negative: backward), jumping across structure. It returns offset
// unchanged when there is nowhere to go.
func (d *Document) SeekContentOffset(offset, dir int) int {
	if dir >= 0 {
		for _, l := range d.leaves {
			if offset+1 >= l.start && offset+1 <= l.end {
				return offset + 1
			}
			if l.start > offset {
				return l.start
			}
		}
		return offset
	}
	for i := len(d.leaves) - 1; i >= 0; i-- {
		l := d.leaves[i]
		if offset-1 >= l.start && offset-1 <= l.end {
			return offset - 1
		}
		if l.end < offset {
			return l.end
		}
	}
	return offset
}

// AnnotationsFromOffset returns the annotations of the character at the
// linear item offset. Structural items carry no annotations.
func (d *Document) AnnotationsFromOffset(offset int) AnnotationSet {
	if offset < 0 || offset >= len(d.items) {
		return AnnotationSet{}
	}
	ref := d.items[offset]
	if ref.idx < 0 {
		return AnnotationSet{}
	}
	return ref.node.content[ref.idx].Annotations
}

// AnnotationsFromRange returns the annotations shared by every character
// in r. Structural items inside r are ignored.
func (d *Document) AnnotationsFromRange(r Range) AnnotationSet {
	r = ClampRange(r, len(d.items))
	var (
		out  AnnotationSet
		seen bool
	)
	for o := r.Start(); o < r.End(); o++ {
		ref := d.items[o]
		if ref.idx < 0 {
			continue
		}
		anns := ref.node.content[ref.idx].Annotations
		if !seen {
			out, seen = anns, true
		} else {
			out = out.Intersect(anns)
		}
		if out.IsEmpty() {
			break
		}
	}
	return out
}

// TraverseLeafNodes calls visit for every leaf in document order, starting
// at start (or at the first leaf below start when it is a branch). A nil
// start visits every leaf; a start that is not part of the document visits
// none. The walk stops as soon as visit returns false.
func (d *Document) TraverseLeafNodes(visit func(*Node) bool, start *Node) {
	started := start == nil
	var walk func(n *Node) bool
	walk = func(n *Node) bool {
		if n == start {
			started = true
		}
		if n.IsLeaf() {
			if !started {
				return true
			}
			return visit(n)
		}
		for _, c := range n.children {
			if !walk(c) {
				return false
			}
		}
		return true
	}
	walk(d.root)
}

// Text returns the characters in r, with a newline between leaves.
func (d *Document) Text(r Range) string {
	r = ClampRange(r, len(d.items))
	var (
		sb   strings.Builder
		last *Node
	)
	for o := r.Start(); o < r.End(); o++ {
		ref := d.items[o]
		if ref.idx < 0 {
			continue
		}
		if last != nil && ref.node != last {
			sb.WriteByte('\n')
		}
		last = ref.node
		sb.WriteRune(ref.node.content[ref.idx].Rune)
	}
	return sb.String()
}

func (d *Document) reindex() {
	d.leaves = d.leaves[:0]
	d.items = make([]itemRef, 0, d.root.innerLen())
	var walk func(n *Node)
	walk = func(n *Node) {
		d.items = append(d.items, itemRef{node: n, idx: -1})
		if n.IsLeaf() {
			start := len(d.items)
			for i := range n.content {
				d.items = append(d.items, itemRef{node: n, idx: i})
			}
			d.leaves = append(d.leaves, leafSpan{node: n, start: start, end: len(d.items)})
		} else {
			for _, c := range n.children {
				walk(c)
			}
		}
		d.items = append(d.items, itemRef{node: n, idx: -1})
	}
	for _, c := range d.root.children {
		walk(c)
	}
}

func (d *Document) leafAt(offset int) (leafSpan, bool) {
	for _, l := range d.leaves {
		if offset >= l.start && offset <= l.end {
			return l, true
		}
	}
	return leafSpan{}, false
}

// leavesIn returns the leaves whose content intersects r, including leaves
// that r only touches at a boundary.
func (d *Document) leavesIn(r Range) []leafSpan {
	var out []leafSpan
	for _, l := range d.leaves {
		if l.end < r.Start() || l.start > r.End() {
			continue
		}
		out = append(out, l)
	}
	return out
}
