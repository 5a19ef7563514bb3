package markup

import (
	"bytes"
	"regexp"
	"strconv"
	"strings"

	"github.com/iw2rmb/inkwell/document"
)

// Write renders doc as Markdown. Blocks are separated by blank lines; list
// items by single newlines, indented two spaces per level.
func Write(doc *document.Document) []byte {
	var buf bytes.Buffer
	for i, n := range doc.Root().Children() {
		if i > 0 {
			buf.WriteString("\n")
		}
		writeBlock(&buf, n)
	}
	return buf.Bytes()
}

func writeBlock(buf *bytes.Buffer, n *document.Node) {
	switch n.Type() {
	case document.TypeHeading:
		buf.WriteString(strings.Repeat("#", n.Attributes().Level))
		buf.WriteString(" ")
		buf.WriteString(line(n.Content()))
		buf.WriteString("\n")
	case document.TypePreformatted:
		writeFence(buf, n.Text(), "")
	case document.TypeList:
		writeList(buf, n)
	case document.TypeListItem:
		for _, c := range n.Children() {
			writeBlock(buf, c)
		}
	default:
		buf.WriteString(line(n.Content()))
		buf.WriteString("\n")
	}
}

func writeFence(buf *bytes.Buffer, text, indent string) {
	fence := "```"
	for strings.Contains(text, fence) {
		fence += "`"
	}
	buf.WriteString(indent + fence + "\n")
	for _, line := range strings.Split(text, "\n") {
		buf.WriteString(indent + line + "\n")
	}
	buf.WriteString(indent + fence + "\n")
}

// writeList indents nested items to the content column of their parent
// item, which is where CommonMark expects continuation blocks.
func writeList(buf *bytes.Buffer, list *document.Node) {
	var counters, widths []int
	for _, item := range list.Children() {
		depth := item.Depth()
		if depth == 0 {
			writeBlock(buf, item)
			continue
		}
		counters = resize(counters, depth)
		widths = resize(widths, depth)
		counters[depth-1]++

		marker := "-"
		if item.ListStyle() == document.StyleNumber {
			marker = strconv.Itoa(counters[depth-1]) + "."
		}
		widths[depth-1] = len(marker) + 1

		col := 0
		for _, w := range widths[:depth-1] {
			if w == 0 {
				w = 2
			}
			col += w
		}
		indent := strings.Repeat(" ", col)
		cont := strings.Repeat(" ", col+widths[depth-1])
		for i, c := range item.Children() {
			lead := cont
			if i == 0 {
				lead = indent + marker + " "
			}
			if c.Type() == document.TypePreformatted {
				buf.WriteString(lead + "\n")
				writeFence(buf, c.Text(), cont)
				continue
			}
			buf.WriteString(lead + line(c.Content()) + "\n")
		}
	}
}

// resize truncates or zero-extends s to n entries.
func resize(s []int, n int) []int {
	if len(s) > n {
		return s[:n]
	}
	for len(s) < n {
		s = append(s, 0)
	}
	return s
}

type marks struct {
	bold, italic, code bool
}

func marksOf(set document.AnnotationSet) marks {
	return marks{
		bold:   set.HasType(document.AnnotationBold),
		italic: set.HasType(document.AnnotationItalic),
		code:   set.HasType(document.AnnotationCode),
	}
}

func linkOf(set document.AnnotationSet) string {
	if links := set.OfType(document.AnnotationLink); len(links) > 0 {
		return links[0].Href
	}
	return ""
}

var orderedMarker = regexp.MustCompile(`^(\d{1,9})([.)])`)

// line renders leaf content that starts a Markdown line. Text that would
// read as a block marker there is escaped.
func line(chars []document.Char) string {
	s := inline(chars)
	if s == "" {
		return s
	}
	if strings.IndexByte("-+>#~", s[0]) >= 0 {
		return `\` + s
	}
	return orderedMarker.ReplaceAllString(s, `$1\$2`)
}

// inline renders leaf content. Characters are grouped by link first and
// then by style marks, so a link spanning several styles stays one link.
func inline(chars []document.Char) string {
	var sb strings.Builder
	for i := 0; i < len(chars); {
		href := linkOf(chars[i].Annotations)
		j := i
		for j < len(chars) && linkOf(chars[j].Annotations) == href {
			j++
		}
		body := styled(chars[i:j])
		if href != "" {
			sb.WriteString("[" + body + "](" + href + ")")
		} else {
			sb.WriteString(body)
		}
		i = j
	}
	return sb.String()
}

func styled(chars []document.Char) string {
	var sb strings.Builder
	for i := 0; i < len(chars); {
		mk := marksOf(chars[i].Annotations)
		j := i
		var run strings.Builder
		for j < len(chars) && marksOf(chars[j].Annotations) == mk {
			run.WriteRune(chars[j].Rune)
			j++
		}
		text := run.String()
		if mk.code {
			text = codeSpan(text)
		} else {
			text = escape(text)
		}
		if mk.italic {
			text = "*" + text + "*"
		}
		if mk.bold {
			text = "**" + text + "**"
		}
		sb.WriteString(text)
		i = j
	}
	return sb.String()
}

func codeSpan(s string) string {
	ticks := "`"
	for strings.Contains(s, ticks) {
		ticks += "`"
	}
	if strings.HasPrefix(s, "`") || strings.HasSuffix(s, "`") {
		return ticks + " " + s + " " + ticks
	}
	return ticks + s + ticks
}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
)

func escape(s string) string { return escaper.Replace(s) }
