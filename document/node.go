package document

import "strings"

type NodeType string

const (
	TypeDocument     NodeType = "document"
	TypeParagraph    NodeType = "paragraph"
	TypeHeading      NodeType = "heading"
	TypePreformatted NodeType = "preformatted"
	TypeList         NodeType = "list"
	TypeListItem     NodeType = "listItem"
)

// List item styles.
const (
	StyleBullet = "bullet"
	StyleNumber = "number"
)

// IsContent reports whether nodes of this type hold characters.
func (t NodeType) IsContent() bool {
	switch t {
	case TypeParagraph, TypeHeading, TypePreformatted:
		return true
	default:
		return false
	}
}

// Attributes carries the per-type node attributes.
type Attributes struct {
	// Level is the heading level, 1-6.
	Level int
	// Styles is the list item style stack; its length is the item depth.
	Styles []string
}

func (a Attributes) clone() Attributes {
	a.Styles = append([]string(nil), a.Styles...)
	return a
}

func (a Attributes) equal(o Attributes) bool {
	if a.Level != o.Level || len(a.Styles) != len(o.Styles) {
		return false
	}
	for i := range a.Styles {
		if a.Styles[i] != o.Styles[i] {
			return false
		}
	}
	return true
}

// Char is one character of leaf content.
type Char struct {
	Rune        rune
	Annotations AnnotationSet
}

// Node is a document tree node. Nodes are compared by identity.
type Node struct {
	typ      NodeType
	attrs    Attributes
	parent   *Node
	children []*Node
	content  []Char
}

func newLeaf(t NodeType, attrs Attributes, runs ...[]Char) *Node {
	n := &Node{typ: t, attrs: attrs}
	for _, run := range runs {
		n.content = append(n.content, run...)
	}
	return n
}

func newBranch(t NodeType, attrs Attributes, children ...*Node) *Node {
	n := &Node{typ: t, attrs: attrs}
	for _, c := range children {
		c.parent = n
		n.children = append(n.children, c)
	}
	return n
}

// Text builds a run of characters sharing the same annotations.
func Text(s string, anns ...Annotation) []Char {
	set := NewAnnotationSet(anns...)
	out := make([]Char, 0, len(s))
	for _, r := range s {
		out = append(out, Char{Rune: r, Annotations: set})
	}
	return out
}

func NewParagraph(runs ...[]Char) *Node {
	return newLeaf(TypeParagraph, Attributes{}, runs...)
}

func NewHeading(level int, runs ...[]Char) *Node {
	return newLeaf(TypeHeading, Attributes{Level: clampInt(level, 1, 6)}, runs...)
}

func NewPreformatted(runs ...[]Char) *Node {
	return newLeaf(TypePreformatted, Attributes{}, runs...)
}

func NewList(items ...*Node) *Node {
	return newBranch(TypeList, Attributes{}, items...)
}

// NewListItem wraps children in a list item with the given style stack.
// An empty stack defaults to a single bullet.
func NewListItem(styles []string, children ...*Node) *Node {
	if len(styles) == 0 {
		styles = []string{StyleBullet}
	}
	return newBranch(TypeListItem, Attributes{Styles: append([]string(nil), styles...)}, children...)
}

func (n *Node) Type() NodeType { return n.typ }

func (n *Node) Attributes() Attributes { return n.attrs.clone() }

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) IsLeaf() bool { return n.typ.IsContent() }

func (n *Node) IsRoot() bool { return n.typ == TypeDocument }

func (n *Node) Children() []*Node { return append([]*Node(nil), n.children...) }

func (n *Node) Content() []Char { return append([]Char(nil), n.content...) }

// Len returns the number of content characters in a leaf.
func (n *Node) Len() int { return len(n.content) }

// Text returns the plain text of a leaf, or of every leaf below a branch
// joined by newlines.
func (n *Node) Text() string {
	if n.IsLeaf() {
		var sb strings.Builder
		for _, c := range n.content {
			sb.WriteRune(c.Rune)
		}
		return sb.String()
	}
	parts := make([]string, 0, len(n.children))
	for _, c := range n.children {
		parts = append(parts, c.Text())
	}
	return strings.Join(parts, "\n")
}

// Depth returns the list depth of a list item, or 0 for other nodes.
func (n *Node) Depth() int {
	if n.typ != TypeListItem {
		return 0
	}
	return len(n.attrs.Styles)
}

// ListStyle returns the innermost style of a list item.
func (n *Node) ListStyle() string {
	if n.typ != TypeListItem || len(n.attrs.Styles) == 0 {
		return ""
	}
	return n.attrs.Styles[len(n.attrs.Styles)-1]
}

// ListItem returns the list item directly holding this leaf, or nil.
func (n *Node) ListItem() *Node {
	if n.parent != nil && n.parent.typ == TypeListItem {
		return n.parent
	}
	return nil
}

// innerLen is the number of linear items between the open and close
// positions of n.
func (n *Node) innerLen() int {
	if n.IsLeaf() {
		return len(n.content)
	}
	total := 0
	for _, c := range n.children {
		total += c.outerLen()
	}
	return total
}

func (n *Node) outerLen() int { return n.innerLen() + 2 }

func (n *Node) clone(parent *Node) *Node {
	out := &Node{
		typ:    n.typ,
		attrs:  n.attrs.clone(),
		parent: parent,
	}
	if n.content != nil {
		out.content = append([]Char(nil), n.content...)
	}
	for _, c := range n.children {
		out.children = append(out.children, c.clone(out))
	}
	return out
}

func (n *Node) indexInParent() int {
	if n.parent == nil {
		return -1
	}
	for i, c := range n.parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

func (n *Node) detach() {
	p := n.parent
	if p == nil {
		return
	}
	i := n.indexInParent()
	if i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	n.parent = nil
}

func (n *Node) insertChildren(at int, nodes ...*Node) {
	at = clampInt(at, 0, len(n.children))
	for _, c := range nodes {
		c.parent = n
	}
	tail := append([]*Node(nil), n.children[at:]...)
	n.children = append(append(n.children[:at], nodes...), tail...)
}
