// Package fragment defines the renderer-agnostic document tree produced by
// directives. The node set follows the docutils vocabulary (bullet lists, list
// items, paragraphs, inline strong text, literal blocks and system messages)
// so renderers for reStructuredText, Markdown and HTML can walk the same tree.
package fragment

import (
	"strconv"
	"strings"
)

// Kind identifies a node type.
type Kind string

const (
	KindBulletList    Kind = "bullet_list"
	KindListItem      Kind = "list_item"
	KindParagraph     Kind = "paragraph"
	KindStrong        Kind = "strong"
	KindText          Kind = "text"
	KindLiteralBlock  Kind = "literal_block"
	KindSystemMessage Kind = "system_message"
)

// Node is implemented by every element of a fragment tree.
type Node interface {
	Kind() Kind
}

// BulletList is an unordered list of items.
type BulletList struct {
	Items []ListItem
}

func (BulletList) Kind() Kind { return KindBulletList }

// Append adds an item and returns the list for chaining.
func (l *BulletList) Append(item ListItem) *BulletList {
	l.Items = append(l.Items, item)
	return l
}

// Len reports the number of items.
func (l BulletList) Len() int { return len(l.Items) }

// ListItem holds block or inline children.
type ListItem struct {
	Children []Node
}

func (ListItem) Kind() Kind { return KindListItem }

// Paragraph holds inline children.
type Paragraph struct {
	Children []Node
}

func (Paragraph) Kind() Kind { return KindParagraph }

// Strong is emphasised inline text.
type Strong struct {
	Text string
}

func (Strong) Kind() Kind { return KindStrong }

// Text is a plain inline run.
type Text struct {
	Text string
}

func (Text) Kind() Kind { return KindText }

// LiteralBlock is preformatted text, used to echo the invoking markup inside
// system messages.
type LiteralBlock struct {
	Text string
}

func (LiteralBlock) Kind() Kind { return KindLiteralBlock }

// Level mirrors the docutils reporter levels.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelSevere
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarning:
		return "WARNING"
	case LevelError:
		return "ERROR"
	case LevelSevere:
		return "SEVERE"
	default:
		return "UNKNOWN"
	}
}

// SystemMessage is an inline diagnostic anchored at the location that
// produced it. It replaces the output of a failed directive invocation.
type SystemMessage struct {
	Level    Level
	Source   string
	Line     int
	Message  string
	Children []Node
}

func (SystemMessage) Kind() Kind { return KindSystemMessage }

// Location formats Source and Line as "source:line", omitting missing parts.
func (m SystemMessage) Location() string {
	switch {
	case m.Source != "" && m.Line > 0:
		return m.Source + ":" + strconv.Itoa(m.Line)
	case m.Source != "":
		return m.Source
	case m.Line > 0:
		return "line " + strconv.Itoa(m.Line)
	default:
		return ""
	}
}

// PlainText flattens a node into its text content. List items are separated
// by newlines; inline runs are concatenated.
func PlainText(node Node) string {
	var b strings.Builder
	writePlain(&b, node)
	return strings.TrimRight(b.String(), "\n")
}

func writePlain(b *strings.Builder, node Node) {
	switch n := node.(type) {
	case BulletList:
		if b.Len() > 0 && !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
		for _, item := range n.Items {
			writePlain(b, item)
		}
	case *BulletList:
		writePlain(b, *n)
	case ListItem:
		for _, child := range n.Children {
			writePlain(b, child)
		}
		if !strings.HasSuffix(b.String(), "\n") {
			b.WriteByte('\n')
		}
	case Paragraph:
		for _, child := range n.Children {
			writePlain(b, child)
		}
	case Strong:
		b.WriteString(n.Text)
	case Text:
		b.WriteString(n.Text)
	case LiteralBlock:
		b.WriteString(n.Text)
	case SystemMessage:
		b.WriteString(n.Message)
		b.WriteByte('\n')
	}
}
