package document

import (
	"sort"
	"strings"
)

// Annotation kinds understood by the toolbar and the renderers.
const (
	AnnotationBold   = "textStyle/bold"
	AnnotationItalic = "textStyle/italic"
	AnnotationCode   = "textStyle/code"
	AnnotationLink   = "link"
)

// Annotation is a formatting or semantic mark applied to characters.
type Annotation struct {
	Type string
	// Href is only meaningful for AnnotationLink.
	Href string
}

func Bold() Annotation   { return Annotation{Type: AnnotationBold} }
func Italic() Annotation { return Annotation{Type: AnnotationItalic} }
func Code() Annotation   { return Annotation{Type: AnnotationCode} }

func Link(href string) Annotation { return Annotation{Type: AnnotationLink, Href: href} }

// Key identifies the annotation inside a set.
func (a Annotation) Key() string {
	if a.Href == "" {
		return a.Type
	}
	return a.Type + "|" + a.Href
}

func (a Annotation) String() string { return a.Key() }

// AnnotationSet is an immutable set of annotations kept in key order.
// The zero value is the empty set.
type AnnotationSet struct {
	items []Annotation
}

func NewAnnotationSet(anns ...Annotation) AnnotationSet {
	if len(anns) == 0 {
		return AnnotationSet{}
	}
	items := make([]Annotation, 0, len(anns))
	seen := make(map[string]struct{}, len(anns))
	for _, a := range anns {
		k := a.Key()
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		items = append(items, a)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Key() < items[j].Key() })
	return AnnotationSet{items: items}
}

func (s AnnotationSet) Len() int { return len(s.items) }

func (s AnnotationSet) IsEmpty() bool { return len(s.items) == 0 }

// Slice returns the annotations in key order.
func (s AnnotationSet) Slice() []Annotation {
	return append([]Annotation(nil), s.items...)
}

func (s AnnotationSet) Has(a Annotation) bool {
	k := a.Key()
	i := sort.Search(len(s.items), func(i int) bool { return s.items[i].Key() >= k })
	return i < len(s.items) && s.items[i].Key() == k
}

// HasType reports whether any annotation of the given type is present.
func (s AnnotationSet) HasType(typ string) bool {
	for _, a := range s.items {
		if a.Type == typ {
			return true
		}
	}
	return false
}

// OfType returns the annotations of the given type.
func (s AnnotationSet) OfType(typ string) []Annotation {
	var out []Annotation
	for _, a := range s.items {
		if a.Type == typ {
			out = append(out, a)
		}
	}
	return out
}

func (s AnnotationSet) With(a Annotation) AnnotationSet {
	if s.Has(a) {
		return s
	}
	return NewAnnotationSet(append(s.Slice(), a)...)
}

func (s AnnotationSet) Without(a Annotation) AnnotationSet {
	if !s.Has(a) {
		return s
	}
	k := a.Key()
	out := make([]Annotation, 0, len(s.items)-1)
	for _, x := range s.items {
		if x.Key() != k {
			out = append(out, x)
		}
	}
	return AnnotationSet{items: out}
}

// WithoutType drops every annotation of the given type.
func (s AnnotationSet) WithoutType(typ string) AnnotationSet {
	if !s.HasType(typ) {
		return s
	}
	out := make([]Annotation, 0, len(s.items))
	for _, x := range s.items {
		if x.Type != typ {
			out = append(out, x)
		}
	}
	return AnnotationSet{items: out}
}

// Intersect returns the annotations present in both sets.
func (s AnnotationSet) Intersect(o AnnotationSet) AnnotationSet {
	var out []Annotation
	for _, a := range s.items {
		if o.Has(a) {
			out = append(out, a)
		}
	}
	return AnnotationSet{items: out}
}

func (s AnnotationSet) Equal(o AnnotationSet) bool {
	if len(s.items) != len(o.items) {
		return false
	}
	for i := range s.items {
		if s.items[i] != o.items[i] {
			return false
		}
	}
	return true
}

func (s AnnotationSet) String() string {
	keys := make([]string, len(s.items))
	for i, a := range s.items {
		keys[i] = a.Key()
	}
	return "{" + strings.Join(keys, " ") + "}"
}
