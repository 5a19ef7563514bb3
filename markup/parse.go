package markup

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/iw2rmb/inkwell/document"
)

// ErrEmptyInput is returned by Parse for nil input.
var ErrEmptyInput = errors.New("markup: nil input")

var md = goldmark.New(goldmark.WithExtensions(extension.Linkify))

// Parse converts Markdown into a document. Constructs the document cannot
// hold are flattened: block quotes keep their blocks, thematic breaks are
// dropped and raw HTML blocks become preformatted text.
func Parse(src []byte) (*document.Document, error) {
	if src == nil {
		return nil, ErrEmptyInput
	}
	root := md.Parser().Parse(text.NewReader(src))
	c := converter{src: src}
	return document.New(c.blocks(root)...), nil
}

type converter struct {
	src []byte
}

func (c converter) blocks(parent ast.Node) []*document.Node {
	var out []*document.Node
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		out = append(out, c.block(n)...)
	}
	return out
}

func (c converter) block(n ast.Node) []*document.Node {
	switch n := n.(type) {
	case *ast.Heading:
		return []*document.Node{document.NewHeading(n.Level, c.inline(n, nil))}
	case *ast.Paragraph, *ast.TextBlock:
		return []*document.Node{document.NewParagraph(c.inline(n, nil))}
	case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock:
		return []*document.Node{document.NewPreformatted(document.Text(c.lines(n)))}
	case *ast.List:
		return []*document.Node{document.NewList(c.items(n, nil)...)}
	case *ast.Blockquote:
		return c.blocks(n)
	default:
		return nil
	}
}

// items flattens a Markdown list into list items. Nested lists extend the
// style stack of their parent item.
func (c converter) items(list *ast.List, styles []string) []*document.Node {
	style := document.StyleBullet
	if list.IsOrdered() {
		style = document.StyleNumber
	}
	stack := append(append([]string(nil), styles...), style)

	var out []*document.Node
	for li := list.FirstChild(); li != nil; li = li.NextSibling() {
		added := false
		for n := li.FirstChild(); n != nil; n = n.NextSibling() {
			if sub, ok := n.(*ast.List); ok {
				out = append(out, c.items(sub, stack)...)
				added = true
				continue
			}
			for _, b := range c.block(n) {
				out = append(out, document.NewListItem(stack, b))
				added = true
			}
		}
		if !added {
			out = append(out, document.NewListItem(stack, document.NewParagraph()))
		}
	}
	return out
}

func (c converter) lines(n ast.Node) string {
	lines := n.Lines()
	var sb strings.Builder
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(c.src))
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (c converter) inline(parent ast.Node, anns []document.Annotation) []document.Char {
	var out []document.Char
	for n := parent.FirstChild(); n != nil; n = n.NextSibling() {
		switch n := n.(type) {
		case *ast.Text:
			out = append(out, document.Text(string(n.Segment.Value(c.src)), anns...)...)
			if n.SoftLineBreak() || n.HardLineBreak() {
				out = append(out, document.Text(" ", anns...)...)
			}
		case *ast.String:
			out = append(out, document.Text(string(n.Value), anns...)...)
		case *ast.Emphasis:
			a := document.Italic()
			if n.Level >= 2 {
				a = document.Bold()
			}
			out = append(out, c.inline(n, with(anns, a))...)
		case *ast.CodeSpan:
			out = append(out, c.inline(n, with(anns, document.Code()))...)
		case *ast.Link:
			out = append(out, c.inline(n, with(anns, document.Link(string(n.Destination))))...)
		case *ast.AutoLink:
			out = append(out, document.Text(string(n.Label(c.src)), with(anns, document.Link(string(n.URL(c.src))))...)...)
		case *ast.RawHTML:
			segs := n.Segments
			for i := 0; i < segs.Len(); i++ {
				seg := segs.At(i)
				out = append(out, document.Text(string(seg.Value(c.src)), anns...)...)
			}
		default:
			out = append(out, c.inline(n, anns)...)
		}
	}
	return out
}

func with(anns []document.Annotation, a document.Annotation) []document.Annotation {
	return append(append([]document.Annotation(nil), anns...), a)
}
