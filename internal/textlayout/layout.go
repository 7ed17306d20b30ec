// Package textlayout lays fragment trees out as indented plain-text bullet
// lists. Markup-specific details (strong text, escaping, diagnostics) come
// from a Style so the reST and Markdown renderers share one walker.
package textlayout

import (
	"strings"
	"unicode"

	"github.com/goliatone/go-paramdoc/pkg/fragment"
)

// Style supplies the markup for one output syntax.
type Style interface {
	Strong(text string) string
	Escape(text string) string
	Literal(text string) []string
	SystemMessage(msg fragment.SystemMessage, body []string) []string
}

// Render lays nodes out as blocks separated by blank lines and returns the
// result with a single trailing newline, or "" when nothing was produced.
func Render(style Style, nodes []fragment.Node) string {
	lines := blocks(style, nodes)
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

func blocks(style Style, nodes []fragment.Node) []string {
	var (
		out    []string
		inline strings.Builder
	)
	flush := func() {
		if inline.Len() == 0 {
			return
		}
		out = appendBlock(out, textLines(inline.String()))
		inline.Reset()
	}

	for _, node := range nodes {
		switch n := node.(type) {
		case fragment.Strong, fragment.Text:
			inline.WriteString(inlineText(style, n))
		case fragment.Paragraph:
			flush()
			var para strings.Builder
			for _, child := range n.Children {
				para.WriteString(inlineText(style, child))
			}
			out = appendBlock(out, textLines(para.String()))
		case fragment.BulletList:
			flush()
			out = appendBlock(out, list(style, n))
		case *fragment.BulletList:
			flush()
			out = appendBlock(out, list(style, *n))
		case fragment.ListItem:
			flush()
			out = appendBlock(out, blocks(style, n.Children))
		case fragment.LiteralBlock:
			flush()
			out = appendBlock(out, style.Literal(n.Text))
		case fragment.SystemMessage:
			flush()
			out = appendBlock(out, style.SystemMessage(n, blocks(style, n.Children)))
		}
	}
	flush()
	return out
}

func list(style Style, l fragment.BulletList) []string {
	var out []string
	prevMulti := false
	for i, item := range l.Items {
		lines := blocks(style, item.Children)
		if len(lines) == 0 {
			lines = []string{""}
		}
		if i > 0 && (prevMulti || len(lines) > 1) {
			out = append(out, "")
		}
		for j, line := range lines {
			switch {
			case j == 0:
				out = append(out, strings.TrimRightFunc("- "+line, unicode.IsSpace))
			case line == "":
				out = append(out, "")
			default:
				out = append(out, "  "+line)
			}
		}
		prevMulti = len(lines) > 1
	}
	return out
}

func inlineText(style Style, node fragment.Node) string {
	switch n := node.(type) {
	case fragment.Strong:
		return strongRun(style, n.Text)
	case fragment.Text:
		return style.Escape(n.Text)
	case fragment.Paragraph:
		var b strings.Builder
		for _, child := range n.Children {
			b.WriteString(inlineText(style, child))
		}
		return b.String()
	default:
		return ""
	}
}

// strongRun keeps surrounding whitespace outside the markers, since neither
// reST nor Markdown accept "** text **".
func strongRun(style Style, text string) string {
	core := strings.TrimSpace(text)
	if core == "" {
		return text
	}
	start := strings.Index(text, core)
	return text[:start] + style.Strong(style.Escape(core)) + text[start+len(core):]
}

// textLines splits a run of inline text so multi-line descriptions pick up
// the indentation of the list item holding them.
func textLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRightFunc(line, unicode.IsSpace)
	}
	return lines
}

func appendBlock(out, block []string) []string {
	if len(block) == 0 {
		return out
	}
	if len(out) > 0 {
		out = append(out, "")
	}
	return append(out, block...)
}

// Indent prefixes every non-empty line.
func Indent(lines []string, prefix string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		if line == "" {
			continue
		}
		out[i] = prefix + line
	}
	return out
}
