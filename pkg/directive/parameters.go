package directive

import (
	"context"

	"github.com/goliatone/go-paramdoc/internal/paramdata/loader"
	"github.com/goliatone/go-paramdoc/pkg/fragment"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
	"github.com/goliatone/go-paramdoc/pkg/parameters"
)

// ParametersName is the directive name used in documentation sources.
const ParametersName = "parameters"

// Config carries the build-time settings of the parameters directive.
type Config struct {
	// ParametersYAMLFile is the parameters_yaml_file build value: the data
	// file consulted by every invocation.
	ParametersYAMLFile string
	// Source overrides ParametersYAMLFile with an already resolved location,
	// such as a URL source.
	Source paramdata.Source
	// Loader reads the data file. Nil uses the file loader.
	Loader paramdata.Loader
}

// Parameters returns the parameters directive declaration: one class name
// argument and an accepted but unused content body.
func Parameters(cfg Config) Directive {
	l := cfg.Loader
	if l == nil {
		l = loader.New(paramdata.LoaderOptions{})
	}
	src := cfg.Source
	if src == nil {
		src = paramdata.SourceFromFile(cfg.ParametersYAMLFile)
	}

	return Directive{
		Name:              ParametersName,
		RequiredArguments: 1,
		HasContent:        true,
		Handler: func(ctx context.Context, inv Invocation) ([]fragment.Node, error) {
			list, err := parameters.Render(ctx, l, src, inv.Arguments[0])
			if err != nil {
				return nil, err
			}
			return []fragment.Node{list}, nil
		},
	}
}

// NewDefaultTable returns a table with the built-in directives registered.
func NewDefaultTable(cfg Config) *Table {
	table := NewTable()
	table.MustRegister(Parameters(cfg))
	return table
}
