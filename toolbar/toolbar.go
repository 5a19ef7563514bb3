package toolbar

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/iw2rmb/inkwell/document"
	"github.com/iw2rmb/inkwell/internal/grapheme"
	"github.com/iw2rmb/inkwell/surface"
)

// SurfaceModel is the part of a surface model the toolbar observes.
type SurfaceModel interface {
	Selection() (document.Range, bool)
	Reader() document.Reader
	OnChange(fn func(surface.Change)) (unsubscribe func())
}

// Surface is the editing-surface handle a toolbar is attached to.
type Surface interface {
	Model() SurfaceModel
	// ClearContext dismisses any transient context UI; it is called when
	// the selection collapses to a caret.
	ClearContext()
}

// Group is one rendered group of live tools.
type Group struct {
	Name  string
	Label string
	Tools []Tool
}

type Option func(*Toolbar)

func WithLogger(l zerolog.Logger) Option {
	return func(tb *Toolbar) { tb.log = l }
}

func WithStyle(st Style) Option {
	return func(tb *Toolbar) { tb.style = st }
}

// Toolbar owns the tools it creates and keeps them in step with the
// surface selection. It is driven from the goroutine that drives the
// surface model.
type Toolbar struct {
	surface Surface
	groups  []Group
	tools   []Tool

	style Style
	log   zerolog.Logger

	unsubscribe func()

	// focusOrder indexes tools in tab order; focus indexes focusOrder.
	focusOrder []int
	focus      int
}

// New builds a toolbar for s. Nil groups select DefaultGroups and a nil
// registry selects DefaultRegistry; names missing from the registry are
// skipped. A nil surface yields an inert toolbar with no tools and no
// subscription.
func New(s Surface, groups []GroupConfig, reg *Registry, opts ...Option) *Toolbar {
	if s == nil {
		return &Toolbar{log: zerolog.Nop(), focus: -1}
	}
	tb := &Toolbar{
		surface: s,
		style:   DefaultStyle(),
		log:     zerolog.Nop(),
		focus:   -1,
	}
	for _, opt := range opts {
		opt(tb)
	}
	if groups == nil {
		groups = DefaultGroups()
	}
	if reg == nil {
		reg = DefaultRegistry()
	}
	tb.setup(groups, reg)

	tb.unsubscribe = s.Model().OnChange(func(ch surface.Change) {
		tb.log.Debug().
			Str("kind", ch.Kind.String()).
			Uint64("version", ch.VersionAfter).
			Msg("surface changed")
		tb.UpdateTools()
	})
	return tb
}

func (tb *Toolbar) setup(groups []GroupConfig, reg *Registry) {
	for _, gc := range groups {
		g := Group{Name: gc.Name, Label: gc.Label}
		for _, id := range gc.Items {
			def, ok := reg.Lookup(id)
			if !ok {
				tb.log.Warn().Str("group", gc.Name).Str("tool", id).Msg("unknown tool, skipping")
				continue
			}
			t := def.New(tb, def)
			g.Tools = append(g.Tools, t)
			tb.tools = append(tb.tools, t)
		}
		tb.groups = append(tb.groups, g)
	}

	type entry struct{ idx, order int }
	var order []entry
	for i, t := range tb.tools {
		if w, ok := widgetOf(t); ok && w.Focusable() {
			order = append(order, entry{idx: i, order: w.TabIndex.Order})
		}
	}
	sort.SliceStable(order, func(i, j int) bool { return order[i].order < order[j].order })
	for _, e := range order {
		tb.focusOrder = append(tb.focusOrder, e.idx)
	}
}

// Close unsubscribes from the surface model. The tools keep their last state.
func (tb *Toolbar) Close() {
	if tb.unsubscribe != nil {
		tb.unsubscribe()
		tb.unsubscribe = nil
	}
}

func (tb *Toolbar) Surface() Surface { return tb.surface }

func (tb *Toolbar) Groups() []Group { return append([]Group(nil), tb.groups...) }

// Tools returns the live tools in registration order.
func (tb *Toolbar) Tools() []Tool { return append([]Tool(nil), tb.tools...) }

func (tb *Toolbar) Tool(name string) (Tool, bool) {
	for _, t := range tb.tools {
		if t.Name() == name {
			return t, true
		}
	}
	return nil, false
}

func (tb *Toolbar) model() SurfaceModel {
	if tb == nil || tb.surface == nil {
		return nil
	}
	return tb.surface.Model()
}

// UpdateTools projects the current selection onto every tool.
//
// Without a selection, or when the selection touches the document root,
// every tool is cleared. Otherwise the affected nodes are the node under a
// caret, or the leaves from the start node through the end node of a range.
// A range reads the annotations shared across it; a caret dismisses the
// context UI and reads the annotations of the nearest content before it.
func (tb *Toolbar) UpdateTools() {
	m := tb.model()
	if m == nil {
		return
	}
	r, ok := m.Selection()
	if !ok {
		tb.clearTools()
		return
	}
	doc := m.Reader()
	nodes, ok := affectedNodes(doc, r)
	if !ok {
		tb.clearTools()
		return
	}

	var anns document.AnnotationSet
	if r.Length() > 0 {
		anns = doc.AnnotationsFromRange(r)
	} else {
		tb.surface.ClearContext()
		anns = doc.AnnotationsFromOffset(doc.NearestContentOffset(r.Start() - 1))
	}

	tb.log.Debug().
		Int("from", r.From).
		Int("to", r.To).
		Int("nodes", len(nodes)).
		Str("annotations", anns.String()).
		Msg("updating tools")
	for _, t := range tb.tools {
		t.UpdateState(anns, nodes)
	}
}

func (tb *Toolbar) clearTools() {
	for _, t := range tb.tools {
		t.ClearState()
	}
}

// affectedNodes resolves the nodes a selection touches. ok is false when
// the selection has no tool-relevant context.
//
// Backward ranges are resolved through their normalized start and end. When
// the end node is never reached by the leaf walk (it is a branch, or not a
// leaf after start) the walk runs to the end of the document.
func affectedNodes(doc document.Reader, r document.Range) ([]*document.Node, bool) {
	if r.IsCollapsed() {
		n := doc.NodeFromOffset(r.From)
		if n == nil || n.IsRoot() {
			return nil, false
		}
		return []*document.Node{n}, true
	}

	start := doc.NodeFromOffset(r.Start())
	end := doc.NodeFromOffset(r.End())
	if start == nil || end == nil || start.IsRoot() || end.IsRoot() {
		return nil, false
	}
	if start == end {
		return []*document.Node{start}, true
	}

	var nodes []*document.Node
	doc.TraverseLeafNodes(func(n *document.Node) bool {
		nodes = append(nodes, n)
		return n != end
	}, start)
	return nodes, true
}

// Trigger runs the named tool's action.
func (tb *Toolbar) Trigger(name string) error {
	t, ok := tb.Tool(name)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTool, name)
	}
	return tb.execute(t)
}

func (tb *Toolbar) execute(t Tool) error {
	ex, ok := t.(Executor)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotExecutable, t.Name())
	}
	if err := ex.Execute(); err != nil {
		tb.log.Error().Err(err).Str("tool", t.Name()).Msg("tool failed")
		return fmt.Errorf("%s: %w", t.Name(), err)
	}
	return nil
}

// FocusNext moves focus to the next focusable tool, wrapping around.
func (tb *Toolbar) FocusNext() { tb.moveFocus(1) }

// FocusPrev moves focus to the previous focusable tool, wrapping around.
func (tb *Toolbar) FocusPrev() { tb.moveFocus(-1) }

func (tb *Toolbar) moveFocus(delta int) {
	n := len(tb.focusOrder)
	if n == 0 {
		return
	}
	if tb.focus < 0 {
		if delta > 0 {
			tb.focus = 0
		} else {
			tb.focus = n - 1
		}
		return
	}
	tb.focus = ((tb.focus+delta)%n + n) % n
}

func (tb *Toolbar) Blur() { tb.focus = -1 }

// Focused returns the tool holding focus.
func (tb *Toolbar) Focused() (Tool, bool) {
	if tb.focus < 0 || tb.focus >= len(tb.focusOrder) {
		return nil, false
	}
	return tb.tools[tb.focusOrder[tb.focus]], true
}

// ExecuteFocused runs the focused tool's action.
func (tb *Toolbar) ExecuteFocused() error {
	t, ok := tb.Focused()
	if !ok {
		return nil
	}
	return tb.execute(t)
}

// View renders the groups left to right, each led by its label.
func (tb *Toolbar) View() string {
	st := tb.style
	focused, _ := tb.Focused()

	groups := make([]string, 0, len(tb.groups))
	for _, g := range tb.groups {
		parts := make([]string, 0, len(g.Tools)+1)
		if g.Label != "" {
			label := g.Label
			if st.MaxLabelWidth > 0 {
				label = grapheme.Truncate(label, st.MaxLabelWidth)
			}
			parts = append(parts, st.Label.Render(label))
		}
		for _, t := range g.Tools {
			r, ok := t.(Renderer)
			if !ok {
				continue
			}
			parts = append(parts, r.View(st, t == focused))
		}
		if len(parts) == 0 {
			continue
		}
		groups = append(groups, st.Group.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...)))
	}
	return st.Bar.Render(strings.Join(groups, st.Separator))
}

func widgetOf(t Tool) (Widget, bool) {
	switch t := t.(type) {
	case interface{ widget() Widget }:
		return t.widget(), true
	default:
		return Widget{}, false
	}
}

func (w Widget) widget() Widget { return w }
