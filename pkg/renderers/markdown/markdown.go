// Package markdown renders fragments as CommonMark for MyST or plain Markdown
// documentation sources.
package markdown

import (
	"context"
	"strings"

	"github.com/goliatone/go-paramdoc/internal/textlayout"
	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/render"
)

const (
	Name        = "markdown"
	contentType = "text/markdown; charset=utf-8"
)

// Renderer implements render.Renderer for Markdown.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns a Markdown renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return contentType }

func (r *Renderer) Render(ctx context.Context, nodes []fragment.Node, _ render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return []byte(textlayout.Render(style{}, nodes)), nil
}

type style struct{}

var escaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"<", `\<`,
)

func (style) Strong(text string) string { return "**" + text + "**" }

func (style) Escape(text string) string { return escaper.Replace(text) }

func (style) Literal(text string) []string {
	fence := "```"
	for strings.Contains(text, fence) {
		fence += "`"
	}
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	out := append([]string{fence}, lines...)
	return append(out, fence)
}

// SystemMessage renders a blockquote callout.
func (style) SystemMessage(msg fragment.SystemMessage, body []string) []string {
	head := "**" + msg.Level.String() + "**"
	if loc := msg.Location(); loc != "" {
		head += " " + escaper.Replace(loc) + ":"
	}
	head += " " + escaper.Replace(msg.Message)

	out := []string{"> " + head}
	if len(body) > 0 {
		out = append(out, ">")
		for _, line := range body {
			if line == "" {
				out = append(out, ">")
				continue
			}
			out = append(out, "> "+line)
		}
	}
	return out
}
