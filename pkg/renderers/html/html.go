// Package html renders fragments as an HTML list wrapped in a themeable
// container template.
package html

import (
	"context"
	"fmt"
	stdhtml "html"
	"io/fs"
	"sort"
	"strconv"
	"strings"
	"sync"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/render"
	"github.com/goliatone/go-paramdoc/pkg/render/template"
	"github.com/goliatone/go-paramdoc/pkg/render/template/pongo"
)

const (
	Name        = "html"
	contentType = "text/html; charset=utf-8"

	wrapperTemplate = "fragment"
)

// Option configures the HTML renderer.
type Option func(*Renderer)

// WithTemplatesFS replaces the bundled wrapper templates.
func WithTemplatesFS(files fs.FS) Option {
	return func(r *Renderer) {
		r.templates = files
	}
}

// WithTemplateDir loads wrapper templates from a directory first, falling
// back to the bundled ones for any template it does not provide.
func WithTemplateDir(dir string) Option {
	return func(r *Renderer) {
		r.templateDir = dir
	}
}

// WithTemplateRenderer injects a ready engine, bypassing WithTemplatesFS and
// WithTemplateDir.
func WithTemplateRenderer(engine template.TemplateRenderer) Option {
	return func(r *Renderer) {
		r.engine = engine
	}
}

// WithDefaultTheme styles every render that does not carry its own
// RenderOptions.Theme.
func WithDefaultTheme(cfg *theme.RendererConfig) Option {
	return func(r *Renderer) {
		r.defaultTheme = cfg
	}
}

// Renderer implements render.Renderer for HTML.
type Renderer struct {
	templates    fs.FS
	templateDir  string
	engine       template.TemplateRenderer
	defaultTheme *theme.RendererConfig
}

var _ render.Renderer = (*Renderer)(nil)

// New constructs an HTML renderer backed by the pongo2 engine.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{templates: TemplatesFS()}
	for _, opt := range options {
		if opt != nil {
			opt(r)
		}
	}
	globals := map[string]any{"theme": themeContext(r.defaultTheme)}
	if r.engine == nil {
		engine, err := pongo.New(
			pongo.WithBaseDir(r.templateDir),
			pongo.WithFS(r.templates),
			pongo.WithGlobalData(globals),
		)
		if err != nil {
			return nil, fmt.Errorf("html renderer: %w", err)
		}
		r.engine = engine
		return r, nil
	}
	if err := r.engine.GlobalContext(globals); err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}
	return r, nil
}

func (r *Renderer) Name() string        { return Name }
func (r *Renderer) ContentType() string { return contentType }

// Render builds the list markup and hands it to the wrapper template. Text is
// escaped unless options.AllowMarkup is set, in which case it is sanitised.
func (r *Renderer) Render(ctx context.Context, nodes []fragment.Node, options render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var body strings.Builder
	w := writer{b: &body, allowMarkup: options.AllowMarkup}
	for _, node := range nodes {
		w.node(node)
	}

	data := map[string]any{"body": body.String()}
	if options.Theme != nil {
		data["theme"] = themeContext(options.Theme)
	}
	out, err := r.engine.RenderTemplate(wrapperTemplate, data)
	if err != nil {
		return nil, fmt.Errorf("html renderer: %w", err)
	}
	return []byte(out), nil
}

type writer struct {
	b           *strings.Builder
	allowMarkup bool
}

func (w writer) node(node fragment.Node) {
	switch n := node.(type) {
	case fragment.BulletList:
		w.list(n)
	case *fragment.BulletList:
		w.list(*n)
	case fragment.ListItem:
		w.b.WriteString("<li>")
		w.children(n.Children)
		w.b.WriteString("</li>")
	case fragment.Paragraph:
		w.b.WriteString("<p>")
		w.children(n.Children)
		w.b.WriteString("</p>")
	case fragment.Strong:
		w.b.WriteString("<strong>")
		w.text(n.Text)
		w.b.WriteString("</strong>")
	case fragment.Text:
		w.text(n.Text)
	case fragment.LiteralBlock:
		w.b.WriteString("<pre class=\"paramdoc-literal\">")
		w.b.WriteString(stdhtml.EscapeString(n.Text))
		w.b.WriteString("</pre>")
	case fragment.SystemMessage:
		w.b.WriteString(`<div class="paramdoc-system-message paramdoc-system-message--`)
		w.b.WriteString(strings.ToLower(n.Level.String()))
		w.b.WriteString(`" role="alert"`)
		if n.Line > 0 {
			w.b.WriteString(` data-line="` + strconv.Itoa(n.Line) + `"`)
		}
		w.b.WriteString("><p>")
		if loc := n.Location(); loc != "" {
			w.b.WriteString(stdhtml.EscapeString(loc))
			w.b.WriteString(": ")
		}
		w.b.WriteString(stdhtml.EscapeString(n.Message))
		w.b.WriteString("</p>")
		w.children(n.Children)
		w.b.WriteString("</div>")
	}
}

func (w writer) list(l fragment.BulletList) {
	if l.Len() == 0 {
		w.b.WriteString("<ul></ul>")
		return
	}
	w.b.WriteString("<ul>")
	for _, item := range l.Items {
		w.node(item)
	}
	w.b.WriteString("</ul>")
}

func (w writer) children(nodes []fragment.Node) {
	for _, child := range nodes {
		w.node(child)
	}
}

func (w writer) text(text string) {
	if w.allowMarkup {
		w.b.WriteString(markupPolicy().Sanitize(text))
		return
	}
	w.b.WriteString(stdhtml.EscapeString(text))
}

var (
	markupPolicyOnce sync.Once
	markupPolicyVal  *bluemonday.Policy
)

// markupPolicy allows inline formatting only; parameter descriptions never
// need block elements.
func markupPolicy() *bluemonday.Policy {
	markupPolicyOnce.Do(func() {
		policy := bluemonday.StrictPolicy()
		policy.AllowElements("code", "em", "strong", "b", "i", "sub", "sup", "kbd", "var", "br")
		policy.AllowAttrs("href").OnElements("a")
		policy.AllowStandardURLs()
		policy.RequireNoFollowOnLinks(true)
		markupPolicyVal = policy
	})
	return markupPolicyVal
}

func themeContext(cfg *theme.RendererConfig) map[string]any {
	if cfg == nil {
		return map[string]any{}
	}
	ctx := map[string]any{
		"name":    cfg.Theme,
		"variant": cfg.Variant,
		"style":   cssVarsStyle(cfg.CSSVars),
	}
	if cfg.AssetURL != nil {
		ctx["stylesheet"] = cfg.AssetURL(render.StylesheetAsset)
	}
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ")
}
