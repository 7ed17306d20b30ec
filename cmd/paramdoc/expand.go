package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-paramdoc/pkg/directive"
	"github.com/goliatone/go-paramdoc/pkg/render"
)

type expandOptions struct {
	*rootOptions
	write  bool
	strict bool
	syntax string
}

func newExpandCmd(root *rootOptions) *cobra.Command {
	opts := &expandOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "expand <file>...",
		Short: "Expand parameters directives in documentation sources",
		Long: "Expand parameters directives in reStructuredText or MyST sources. " +
			"--syntax wins, then Markdown file extensions, then the configured syntax.",
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}
	flags := cmd.Flags()
	flags.BoolVarP(&opts.write, "write", "w", false, "rewrite files in place instead of printing")
	flags.BoolVar(&opts.strict, "strict", false, "fail when any directive reported a diagnostic")
	flags.StringVar(&opts.syntax, "syntax", "", "force the source syntax (rst, myst)")
	return cmd
}

func (o *expandOptions) run(cmd *cobra.Command, files []string) error {
	ctx := cmd.Context()

	cfg, err := o.config()
	if err != nil {
		return err
	}
	src, l, err := o.source(cfg)
	if err != nil {
		return err
	}
	registry, err := o.registry(cfg)
	if err != nil {
		return err
	}

	table := directive.NewDefaultTable(directive.Config{
		ParametersYAMLFile: cfg.ParametersYAMLFile,
		Source:             src,
		Loader:             l,
	})
	expanderOptions := []directive.ExpanderOption{
		directive.WithLogger(o.logger.WithField("command", "expand")),
		directive.WithRenderOptions(render.RenderOptions{
			AllowMarkup: cfg.AllowMarkup,
		}),
	}
	// Only an explicit --renderer overrides the per-syntax choice.
	if o.renderer != "" {
		expanderOptions = append(expanderOptions, directive.WithRenderer(o.renderer))
	}
	expander, err := directive.NewExpander(table, registry, expanderOptions...)
	if err != nil {
		return err
	}

	diagnostics := 0
	for _, path := range files {
		info, err := os.Stat(path)
		if err != nil {
			return err
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}

		syntax := o.syntaxFor(path, cfg.Syntax)

		result, err := expander.Expand(ctx, path, content, syntax)
		if err != nil {
			return err
		}
		diagnostics += len(result.Diagnostics)
		o.logger.WithFields(logrus.Fields{
			"source":      path,
			"invocations": result.Invocations,
			"diagnostics": len(result.Diagnostics),
		}).Info("expanded")

		if !o.write {
			if _, err := cmd.OutOrStdout().Write(result.Output); err != nil {
				return err
			}
			continue
		}
		if result.Invocations == 0 {
			continue
		}
		if err := os.WriteFile(path, result.Output, info.Mode().Perm()); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
	}

	if o.strict && diagnostics > 0 {
		return fmt.Errorf("%d directive diagnostic(s) reported", diagnostics)
	}
	return nil
}

// syntaxFor picks the flag value, then MyST for Markdown extensions, then the
// configured syntax.
func (o *expandOptions) syntaxFor(path, configured string) directive.Syntax {
	if o.syntax != "" {
		return directive.Syntax(o.syntax)
	}
	if syntax := directive.SyntaxForPath(path); syntax == directive.SyntaxMyST {
		return syntax
	}
	if configured != "" {
		return directive.Syntax(configured)
	}
	return directive.SyntaxRST
}
