package grapheme

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len([]rune(text)))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// CellWidth returns the terminal cell width of a single cluster.
func CellWidth(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		w = 0
	}
	return w
}

// Width returns the terminal cell width of text.
func Width(text string) int {
	w := 0
	for _, c := range Split(text) {
		w += CellWidth(c)
	}
	return w
}

// Truncate shortens text to at most width cells, ending with an ellipsis
// when anything was cut. Clusters are never split.
func Truncate(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if Width(text) <= width {
		return text
	}
	const ellipsis = "…"
	limit := width - CellWidth(ellipsis)

	var sb strings.Builder
	used := 0
	for _, c := range Split(text) {
		w := CellWidth(c)
		if used+w > limit {
			break
		}
		sb.WriteString(c)
		used += w
	}
	sb.WriteString(ellipsis)
	return sb.String()
}

// PadRight pads text with spaces to width cells.
func PadRight(text string, width int) string {
	w := Width(text)
	if w >= width {
		return text
	}
	return text + strings.Repeat(" ", width-w)
}
