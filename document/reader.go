package document

// Reader is the read-only query surface observers use to project a
// selection onto nodes and annotations.
type Reader interface {
	NodeFromOffset(offset int) *Node
	AnnotationsFromRange(r Range) AnnotationSet
	AnnotationsFromOffset(offset int) AnnotationSet
	NearestContentOffset(offset int) int
	TraverseLeafNodes(visit func(*Node) bool, start *Node)
}

var _ Reader = (*Document)(nil)

// LeafPosition maps a content offset to the ordinal of its leaf and the
// character index inside it.
func (d *Document) LeafPosition(offset int) (leaf, index int, ok bool) {
	for i, l := range d.leaves {
		if offset >= l.start && offset <= l.end {
			return i, offset - l.start, true
		}
	}
	return 0, 0, false
}

// OffsetAt is the inverse of LeafPosition. Out-of-range positions are
// clamped to the nearest leaf and character.
func (d *Document) OffsetAt(leaf, index int) int {
	if len(d.leaves) == 0 {
		return 0
	}
	l := d.leaves[clampInt(leaf, 0, len(d.leaves)-1)]
	return l.start + clampInt(index, 0, l.end-l.start)
}
