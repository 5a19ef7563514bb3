package toolbar

import "strings"

// Icon draws a short glyph in front of a widget's label.
type Icon struct {
	Glyph string
}

func (i *Icon) Render() string {
	if i == nil {
		return ""
	}
	return i.Glyph
}

// Label draws a widget's text.
type Label struct {
	Text string
}

func (l *Label) Render() string {
	if l == nil {
		return ""
	}
	return l.Text
}

// TabIndex places a widget in the toolbar's focus order. Lower orders come
// first; equal orders keep registration order.
type TabIndex struct {
	Order int
}

// Widget composes optional rendering and focus capabilities. A nil field
// means the widget lacks that capability.
type Widget struct {
	Icon     *Icon
	Label    *Label
	TabIndex *TabIndex
}

// Content renders the icon and the label, space separated.
func (w Widget) Content() string {
	parts := make([]string, 0, 2)
	if g := w.Icon.Render(); g != "" {
		parts = append(parts, g)
	}
	if t := w.Label.Render(); t != "" {
		parts = append(parts, t)
	}
	return strings.Join(parts, " ")
}

func (w Widget) Focusable() bool { return w.TabIndex != nil }

func newWidget(def Definition) Widget {
	w := Widget{TabIndex: &TabIndex{Order: def.TabOrder}}
	if def.Icon != "" {
		w.Icon = &Icon{Glyph: def.Icon}
	}
	if def.Title != "" && (def.Icon == "" || def.ShowLabel) {
		w.Label = &Label{Text: def.Title}
	}
	return w
}
