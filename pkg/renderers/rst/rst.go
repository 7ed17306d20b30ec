// Package rst renders fragments as reStructuredText so expanded sources can be
// fed back into a reST toolchain.
package rst

import (
	"context"
	"strings"

	"github.com/goliatone/go-paramdoc/internal/textlayout"
	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/render"
)

const (
	Name        = "rst"
	contentType = "text/x-rst; charset=utf-8"
)

// Renderer implements render.Renderer for reStructuredText.
type Renderer struct{}

var _ render.Renderer = (*Renderer)(nil)

// New returns a reStructuredText renderer.
func New() *Renderer {
	return &Renderer{}
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return contentType }

// Render writes nested "- " bullets indented by two spaces per level.
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
	"`", "\\`",
	"|", `\|`,
	"_", `\_`,
)

func (style) Strong(text string) string { return "**" + text + "**" }

func (style) Escape(text string) string { return escaper.Replace(text) }

func (style) Literal(text string) []string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	return append([]string{"::", ""}, textlayout.Indent(lines, "   ")...)
}

// SystemMessage emits an admonition matching the message level.
func (style) SystemMessage(msg fragment.SystemMessage, body []string) []string {
	var directive string
	switch {
	case msg.Level >= fragment.LevelError:
		directive = "error"
	case msg.Level == fragment.LevelWarning:
		directive = "warning"
	default:
		directive = "note"
	}

	head := msg.Message
	if loc := msg.Location(); loc != "" {
		head = loc + ": " + head
	}
	out := []string{".. " + directive + "::", "", "   " + escaper.Replace(head)}
	if len(body) > 0 {
		out = append(out, "")
		out = append(out, textlayout.Indent(body, "   ")...)
	}
	return out
}
