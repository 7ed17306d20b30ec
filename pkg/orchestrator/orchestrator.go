package orchestrator

import (
	"context"
	"errors"
	"fmt"

	"github.com/goliatone/go-paramdoc/internal/paramdata/loader"
	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
	"github.com/goliatone/go-paramdoc/pkg/parameters"
	"github.com/goliatone/go-paramdoc/pkg/render"
	"github.com/goliatone/go-paramdoc/pkg/renderers/html"
	"github.com/goliatone/go-paramdoc/pkg/renderers/markdown"
	"github.com/goliatone/go-paramdoc/pkg/renderers/rst"
)

const defaultRendererName = rst.Name

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithLoader injects a custom parameter data loader.
func WithLoader(l paramdata.Loader) Option {
	return func(o *Orchestrator) {
		o.loader = l
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(o *Orchestrator) {
		o.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(o *Orchestrator) {
		o.defaultRenderer = name
	}
}

// Orchestrator renders one class per request. Each request loads its data
// source again.
type Orchestrator struct {
	loader          paramdata.Loader
	registry        *render.Registry
	defaultRenderer string
	initialiseErr   error
}

// New constructs an Orchestrator. Missing dependencies fall back to the file
// loader and a registry holding the rst, markdown and html renderers.
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		defaultRenderer: defaultRendererName,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	o.applyDefaults()
	return o
}

func (o *Orchestrator) applyDefaults() {
	if o.loader == nil {
		o.loader = loader.New(paramdata.LoaderOptions{})
	}
	if o.registry == nil {
		registry, err := DefaultRegistry()
		if err != nil {
			o.initialiseErr = err
			return
		}
		o.registry = registry
	}
}

// DefaultRegistry returns a registry with the built-in renderers and their
// common aliases. The html
// options configure its wrapper templates and default theme.
func DefaultRegistry(htmlOptions ...html.Option) (*render.Registry, error) {
	registry := render.NewRegistry()
	registry.MustRegister(rst.New())
	registry.MustRegister(markdown.New())
	htmlRenderer, err := html.New(htmlOptions...)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: html renderer: %w", err)
	}
	registry.MustRegister(htmlRenderer)
	for alias, name := range rendererAliases {
		if err := registry.Alias(alias, name); err != nil {
			return nil, fmt.Errorf("orchestrator: %w", err)
		}
	}
	return registry, nil
}

var rendererAliases = map[string]string{
	"md":               markdown.Name,
	"myst":             markdown.Name,
	"rest":             rst.Name,
	"restructuredtext": rst.Name,
}

// Registry exposes the renderer registry so callers can share it with a
// directive expander.
func (o *Orchestrator) Registry() *render.Registry {
	return o.registry
}

// Request describes one class rendering.
type Request struct {
	// Source identifies the data file. Ignored when Document is set.
	Source paramdata.Source

	// Document bypasses the loader when the data is already parsed.
	Document *paramdata.Document

	// ClassName selects the class to render.
	ClassName string

	// Renderer names the renderer; empty uses the default.
	Renderer string

	RenderOptions render.RenderOptions
}

// Generate loads the data, builds the parameter list and renders it.
// paramdata.ErrMissingSourceFile and paramdata.ErrUnknownClass pass through
// unwrapped so callers can classify them.
func (o *Orchestrator) Generate(ctx context.Context, req Request) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("orchestrator: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := o.initialiseErr; err != nil {
		return nil, err
	}

	renderer, err := o.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	var list fragment.BulletList
	if req.Document != nil {
		class, err := req.Document.Class(req.ClassName)
		if err != nil {
			return nil, err
		}
		list = parameters.Build(class)
	} else {
		if req.Source == nil {
			return nil, errors.New("orchestrator: source or document is required")
		}
		list, err = parameters.Render(ctx, o.loader, req.Source, req.ClassName)
		if err != nil {
			return nil, err
		}
	}

	out, err := renderer.Render(ctx, []fragment.Node{list}, req.RenderOptions)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: render: %w", err)
	}
	return out, nil
}

// Document loads the data source, for callers that list or pick classes.
func (o *Orchestrator) Document(ctx context.Context, src paramdata.Source) (paramdata.Document, error) {
	if err := o.initialiseErr; err != nil {
		return paramdata.Document{}, err
	}
	return o.loader.Load(ctx, src)
}

func (o *Orchestrator) rendererFor(name string) (render.Renderer, error) {
	if name == "" {
		name = o.defaultRenderer
	}
	renderer, err := o.registry.Get(name)
	if err != nil {
		return nil, fmt.Errorf("orchestrator: %w", err)
	}
	return renderer, nil
}
