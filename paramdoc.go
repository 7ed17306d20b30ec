// Package paramdoc renders class parameter listings described in YAML data
// files into documentation fragments.
package paramdoc

import (
	"context"
	"io/fs"

	internalLoader "github.com/goliatone/go-paramdoc/internal/paramdata/loader"
	"github.com/goliatone/go-paramdoc/pkg/directive"
	"github.com/goliatone/go-paramdoc/pkg/orchestrator"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
	"github.com/goliatone/go-paramdoc/pkg/render"
	"github.com/goliatone/go-paramdoc/pkg/renderers/html"
)

// RenderOptions describes per-request renderer settings.
type RenderOptions = render.RenderOptions

// NewLoader constructs a loader using the internal implementation while keeping
// the concrete type hidden from consumers.
func NewLoader(options ...paramdata.LoaderOption) paramdata.Loader {
	cfg := paramdata.NewLoaderOptions(options...)
	return internalLoader.New(cfg)
}

// NewOrchestrator exposes the orchestrator constructor from the top-level
// module.
func NewOrchestrator(options ...orchestrator.Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// RenderClass loads the data file at path and renders the named class with the
// named renderer. An empty renderer name selects reStructuredText.
func RenderClass(ctx context.Context, path, className, rendererName string, options ...orchestrator.Option) ([]byte, error) {
	gen := orchestrator.New(options...)
	return gen.Generate(ctx, orchestrator.Request{
		Source:    paramdata.SourceFromFile(path),
		ClassName: className,
		Renderer:  rendererName,
	})
}

// NewDirectiveTable returns a table with the parameters directive registered
// against the given data file.
func NewDirectiveTable(dataFile string, options ...paramdata.LoaderOption) *directive.Table {
	return directive.NewDefaultTable(directive.Config{
		ParametersYAMLFile: dataFile,
		Loader:             NewLoader(options...),
	})
}

// EmbeddedTemplates exposes the built-in html wrapper templates so callers can
// reuse or extend them without importing the renderer package directly.
func EmbeddedTemplates() fs.FS {
	return html.TemplatesFS()
}
