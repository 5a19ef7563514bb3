package document

import (
	"errors"
	"strings"
)

// ErrInvalidType indicates that a conversion target is not a content type.
var ErrInvalidType = errors.New("not a content node type")

func (d *Document) commit() {
	d.version++
	d.reindex()
}

func (d *Document) checkRange(r Range) error {
	if r.Start() < 0 || r.End() > len(d.items) {
		return ErrInvalidRange
	}
	return nil
}

// InsertText inserts text with the given annotations at a content offset.
// Newlines are kept only inside preformatted nodes; elsewhere they become
// spaces.
func (d *Document) InsertText(offset int, text string, anns AnnotationSet) error {
	l, ok := d.leafAt(offset)
	if !ok {
		return ErrInvalidOffset
	}
	if text == "" {
		return nil
	}
	if l.node.typ != TypePreformatted {
		text = strings.ReplaceAll(text, "\r\n", " ")
		text = strings.ReplaceAll(text, "\n", " ")
	}

	chars := make([]Char, 0, len(text))
	for _, r := range text {
		chars = append(chars, Char{Rune: r, Annotations: anns})
	}
	idx := offset - l.start
	n := l.node
	tail := append([]Char(nil), n.content[idx:]...)
	n.content = append(append(n.content[:idx], chars...), tail...)
	d.commit()
	return nil
}

// DeleteRange removes the characters in r. When r spans several leaves the
// remainder of the last leaf is merged into the first one and the leaves in
// between are removed. A collapsed range is a no-op.
func (d *Document) DeleteRange(r Range) error {
	if err := d.checkRange(r); err != nil {
		return err
	}
	if r.IsCollapsed() {
		return nil
	}
	spans := d.leavesIn(r)
	if len(spans) == 0 {
		return nil
	}

	first, last := spans[0], spans[len(spans)-1]
	headEnd := clampInt(r.Start()-first.start, 0, len(first.node.content))
	if first.node == last.node {
		tailStart := clampInt(r.End()-first.start, 0, len(first.node.content))
		if headEnd == tailStart {
			return nil
		}
		n := first.node
		n.content = append(n.content[:headEnd], n.content[tailStart:]...)
		d.commit()
		return nil
	}

	tailStart := clampInt(r.End()-last.start, 0, len(last.node.content))
	tail := append([]Char(nil), last.node.content[tailStart:]...)
	first.node.content = append(first.node.content[:headEnd], tail...)
	for _, l := range spans[1:] {
		d.remove(l.node)
	}
	d.commit()
	return nil
}

// SetAnnotation adds (on) or removes (!on) an annotation over every
// character in r. Adding a link replaces any link already present; removing
// drops every annotation of the same type.
func (d *Document) SetAnnotation(r Range, a Annotation, on bool) error {
	if err := d.checkRange(r); err != nil {
		return err
	}
	return d.mapChars(r, func(set AnnotationSet) AnnotationSet {
		if !on {
			return set.WithoutType(a.Type)
		}
		if a.Type == AnnotationLink {
			set = set.WithoutType(AnnotationLink)
		}
		return set.With(a)
	})
}

// ClearAnnotations removes every annotation from the characters in r.
func (d *Document) ClearAnnotations(r Range) error {
	if err := d.checkRange(r); err != nil {
		return err
	}
	return d.mapChars(r, func(AnnotationSet) AnnotationSet { return AnnotationSet{} })
}

func (d *Document) mapChars(r Range, fn func(AnnotationSet) AnnotationSet) error {
	changed := false
	for o := r.Start(); o < r.End(); o++ {
		ref := d.items[o]
		if ref.idx < 0 {
			continue
		}
		c := &ref.node.content[ref.idx]
		next := fn(c.Annotations)
		if !next.Equal(c.Annotations) {
			c.Annotations = next
			changed = true
		}
	}
	if changed {
		d.commit()
	}
	return nil
}

// Convert changes every leaf touched by r to the given content type.
// Level is used for headings only.
func (d *Document) Convert(r Range, t NodeType, level int) error {
	if !t.IsContent() {
		return ErrInvalidType
	}
	if err := d.checkRange(r); err != nil {
		return err
	}
	attrs := Attributes{}
	if t == TypeHeading {
		attrs.Level = clampInt(level, 1, 6)
	}
	changed := false
	for _, l := range d.leavesIn(r) {
		if l.node.typ == t && l.node.attrs.equal(attrs) {
			continue
		}
		l.node.typ = t
		l.node.attrs = attrs.clone()
		changed = true
	}
	if changed {
		d.commit()
	}
	return nil
}

// ListWrap turns every leaf touched by r into a list item of the given
// style. Leaves already in a list get their innermost style replaced.
func (d *Document) ListWrap(r Range, style string) error {
	if err := d.checkRange(r); err != nil {
		return err
	}
	changed := false
	var group []*Node
	flush := func() {
		if len(group) == 0 {
			return
		}
		parent := group[0].parent
		at := group[0].indexInParent()
		items := make([]*Node, 0, len(group))
		for _, leaf := range group {
			leaf.detach()
			items = append(items, NewListItem([]string{style}, leaf))
		}
		parent.insertChildren(at, NewList(items...))
		group = nil
		changed = true
	}

	for _, l := range d.leavesIn(r) {
		n := l.node
		if item := n.ListItem(); item != nil {
			flush()
			styles := item.attrs.Styles
			if styles[len(styles)-1] != style {
				styles[len(styles)-1] = style
				changed = true
			}
			continue
		}
		if len(group) > 0 && group[len(group)-1].parent != n.parent {
			flush()
		}
		group = append(group, n)
	}
	flush()

	if changed {
		d.commit()
	}
	return nil
}

// ListUnwrap moves every list-item leaf touched by r out of its list,
// splitting the list around it.
func (d *Document) ListUnwrap(r Range) error {
	if err := d.checkRange(r); err != nil {
		return err
	}
	items := d.listItemsIn(r)
	if len(items) == 0 {
		return nil
	}
	d.unwrapItems(items)
	d.commit()
	return nil
}

// Indent deepens every list item touched by r, repeating its innermost
// style.
func (d *Document) Indent(r Range) error {
	if err := d.checkRange(r); err != nil {
		return err
	}
	items := d.listItemsIn(r)
	if len(items) == 0 {
		return nil
	}
	for _, item := range items {
		item.attrs.Styles = append(item.attrs.Styles, item.ListStyle())
	}
	d.commit()
	return nil
}

// Outdent reduces the depth of every list item touched by r. Items that
// drop below depth one leave the list.
func (d *Document) Outdent(r Range) error {
	if err := d.checkRange(r); err != nil {
		return err
	}
	items := d.listItemsIn(r)
	if len(items) == 0 {
		return nil
	}
	var leaving []*Node
	for _, item := range items {
		if len(item.attrs.Styles) <= 1 {
			leaving = append(leaving, item)
			continue
		}
		item.attrs.Styles = item.attrs.Styles[:len(item.attrs.Styles)-1]
	}
	d.unwrapItems(leaving)
	d.commit()
	return nil
}

// SplitLeaf splits the leaf holding offset in two and returns the first
// content offset of the new leaf. Splitting a heading at its end starts a
// paragraph; splitting inside a list item starts a sibling item.
func (d *Document) SplitLeaf(offset int) (int, error) {
	l, ok := d.leafAt(offset)
	if !ok {
		return offset, ErrInvalidOffset
	}
	n := l.node
	idx := offset - l.start

	next := &Node{typ: n.typ, attrs: n.attrs.clone()}
	next.content = append([]Char(nil), n.content[idx:]...)
	n.content = n.content[:idx]
	if n.typ == TypeHeading && len(next.content) == 0 {
		next.typ, next.attrs = TypeParagraph, Attributes{}
	}

	if item := n.ListItem(); item != nil {
		sibling := NewListItem(item.attrs.Styles, next)
		item.parent.insertChildren(item.indexInParent()+1, sibling)
	} else {
		n.parent.insertChildren(n.indexInParent()+1, next)
	}
	d.commit()

	cr, _ := d.ContentRange(next)
	return cr.From, nil
}

func (d *Document) listItemsIn(r Range) []*Node {
	var out []*Node
	seen := make(map[*Node]struct{})
	for _, l := range d.leavesIn(r) {
		item := l.node.ListItem()
		if item == nil {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		out = append(out, item)
	}
	return out
}

func (d *Document) unwrapItems(items []*Node) {
	if len(items) == 0 {
		return
	}
	leaving := make(map[*Node]struct{}, len(items))
	var lists []*Node
	for _, item := range items {
		leaving[item] = struct{}{}
		if len(lists) == 0 || lists[len(lists)-1] != item.parent {
			lists = append(lists, item.parent)
		}
	}

	for _, list := range lists {
		var (
			out []*Node
			run []*Node
		)
		flush := func() {
			if len(run) > 0 {
				out = append(out, NewList(run...))
				run = nil
			}
		}
		for _, item := range list.Children() {
			if _, ok := leaving[item]; ok {
				flush()
				for _, c := range item.Children() {
					c.detach()
					out = append(out, c)
				}
				continue
			}
			item.detach()
			run = append(run, item)
		}
		flush()

		parent := list.parent
		at := list.indexInParent()
		list.detach()
		parent.insertChildren(at, out...)
	}
}

// remove detaches n and prunes branches left empty. The root always keeps
// at least one paragraph.
func (d *Document) remove(n *Node) {
	p := n.parent
	n.detach()
	for p != nil && p != d.root && len(p.children) == 0 {
		next := p.parent
		p.detach()
		p = next
	}
	if len(d.root.children) == 0 {
		d.root.insertChildren(0, NewParagraph())
	}
}
