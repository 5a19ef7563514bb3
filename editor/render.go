package editor

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wrap"

	"github.com/iw2rmb/inkwell/document"
	graphemeutil "github.com/iw2rmb/inkwell/internal/grapheme"
)

func (m Model) renderView() string {
	parts := []string{m.toolbar.View(), m.viewport.View()}
	if m.cfg.ShowContext {
		parts = append(parts, m.renderContext())
	}
	parts = append(parts, m.renderStatus())
	return strings.Join(parts, "\n")
}

func (m Model) renderContext() string {
	ctx := m.surface.Context()
	if !ctx.Visible {
		return ""
	}
	names := make([]string, 0, ctx.Annotations.Len())
	for _, a := range ctx.Annotations.Slice() {
		switch a.Type {
		case document.AnnotationLink:
			names = append(names, "link "+a.Href)
		default:
			name := a.Type
			if i := strings.LastIndexByte(name, '/'); i >= 0 {
				name = name[i+1:]
			}
			names = append(names, name)
		}
	}
	text := "plain"
	if len(names) > 0 {
		text = strings.Join(names, ", ")
	}
	if m.width > 0 {
		text = graphemeutil.Truncate(text, m.width)
	}
	return m.cfg.Style.Context.Render(text)
}

func (m Model) renderStatus() string {
	if m.status == "" {
		return ""
	}
	text := m.status
	if m.width > 0 {
		text = graphemeutil.Truncate(text, m.width)
	}
	return m.cfg.Style.Status.Render(text)
}

// renderDocument draws each leaf as one logical line, hard-wrapped to the
// editor width, and returns the visual row holding the caret, or -1 when
// there is none.
func (m Model) renderDocument() (lines []string, cursorRow int) {
	doc := m.model.Document()
	sel, hasSel := m.model.Selection()
	showCursor := hasSel && m.focused && !m.toolbarFocused

	cursorRow = -1
	row := 0
	var counters []int
	for i, leaf := range doc.Leaves() {
		prefix, base := m.blockPrefix(leaf, &counters)
		start := doc.OffsetAt(i, 0)
		chars := leaf.Content()

		cursorAt := -1
		if showCursor {
			if l, idx, ok := doc.LeafPosition(sel.To); ok && l == i {
				cursorAt = idx
			}
		}

		var sb strings.Builder
		sb.WriteString(prefix)
		m.renderRuns(&sb, chars, start, base, sel, hasSel, cursorAt)
		line := sb.String()

		if cursorAt >= 0 {
			cursorRow = row
			before := plainText(chars[:cursorAt])
			col := lipgloss.Width(prefix)
			// Preformatted text keeps its own line breaks.
			if nl := strings.LastIndexByte(before, '\n'); nl >= 0 {
				cursorRow += strings.Count(before, "\n")
				before, col = before[nl+1:], 0
			}
			if m.width > 0 {
				cursorRow += (col + graphemeutil.Width(before)) / m.width
			}
		}
		if m.width > 0 {
			line = wrap.String(line, m.width)
		}
		row += strings.Count(line, "\n") + 1
		lines = append(lines, line)
	}
	return lines, cursorRow
}

func plainText(chars []document.Char) string {
	rs := make([]rune, len(chars))
	for i, c := range chars {
		rs[i] = c.Rune
	}
	return string(rs)
}

// blockPrefix returns the marker drawn in front of a leaf and the style its
// text starts from. counters tracks list numbering per depth.
func (m Model) blockPrefix(leaf *document.Node, counters *[]int) (string, lipgloss.Style) {
	st := m.cfg.Style
	item := leaf.ListItem()
	if item == nil {
		*counters = (*counters)[:0]
	}

	switch leaf.Type() {
	case document.TypeHeading:
		level := leaf.Attributes().Level
		return st.Heading.Render(strings.Repeat("#", level)) + " ", st.Heading
	case document.TypePreformatted:
		return st.ListMarker.Render("│") + " ", st.Preformatted
	}
	if item == nil {
		return "", st.Text
	}

	depth := item.Depth()
	if len(*counters) > depth {
		*counters = (*counters)[:depth]
	}
	for len(*counters) < depth {
		*counters = append(*counters, 0)
	}
	(*counters)[depth-1]++

	marker := "•"
	if item.ListStyle() == document.StyleNumber {
		marker = strconv.Itoa((*counters)[depth-1]) + "."
	}
	indent := strings.Repeat("  ", depth-1)
	return indent + st.ListMarker.Render(marker) + " ", st.Text
}

type runKey struct {
	anns     string
	selected bool
	cursor   bool
}

// renderRuns writes the characters of a leaf, grouping neighbours that
// share a style into one rendered run.
func (m Model) renderRuns(sb *strings.Builder, chars []document.Char, start int, base lipgloss.Style, sel document.Range, hasSel bool, cursorAt int) {
	st := m.cfg.Style
	var (
		run     strings.Builder
		current runKey
		style   lipgloss.Style
		open    bool
	)
	flush := func() {
		if open && run.Len() > 0 {
			sb.WriteString(style.Render(run.String()))
		}
		run.Reset()
		open = false
	}

	for i, c := range chars {
		o := start + i
		k := runKey{
			anns:     c.Annotations.String(),
			selected: hasSel && o >= sel.Start() && o < sel.End(),
			cursor:   i == cursorAt,
		}
		if !open || k != current {
			flush()
			current, open = k, true
			style = st.charStyle(base, c.Annotations)
			if k.selected {
				style = st.Selection.Inherit(style)
			}
			if k.cursor {
				style = st.Cursor.Inherit(style)
			}
		}
		run.WriteRune(c.Rune)
	}
	flush()

	if cursorAt >= len(chars) {
		sb.WriteString(st.Cursor.Render(" "))
	}
}

func joinLines(lines []string) string { return strings.Join(lines, "\n") }
