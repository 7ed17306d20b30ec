package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/goliatone/go-paramdoc/internal/prompt"
	"github.com/goliatone/go-paramdoc/pkg/orchestrator"
	"github.com/goliatone/go-paramdoc/pkg/render"
)

type renderOptions struct {
	*rootOptions
	output string

	// interactive and driver are swapped in tests.
	interactive func() bool
	driver      prompt.Driver
}

func newRenderCmd(root *rootOptions) *cobra.Command {
	opts := &renderOptions{
		rootOptions: root,
		interactive: stdinIsTerminal,
	}

	cmd := &cobra.Command{
		Use:   "render [class]",
		Short: "Render the parameter list of one class",
		Long:  "Render the parameter list of one class. Without a class argument on a terminal, pick the class interactively.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func (o *renderOptions) run(cmd *cobra.Command, args []string) error {
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
	gen := orchestrator.New(
		orchestrator.WithLoader(l),
		orchestrator.WithRegistry(registry),
		orchestrator.WithDefaultRenderer(cfg.Renderer),
	)

	className := ""
	if len(args) == 1 {
		className = args[0]
	} else {
		if !o.interactive() {
			return errors.New("class name required when stdin is not a terminal")
		}
		doc, err := gen.Document(ctx, src)
		if err != nil {
			return err
		}
		className, err = prompt.PickClass(ctx, o.driver, doc)
		if err != nil {
			return err
		}
	}

	out, err := gen.Generate(ctx, orchestrator.Request{
		Source:    src,
		ClassName: className,
		RenderOptions: render.RenderOptions{
			AllowMarkup: cfg.AllowMarkup,
		},
	})
	if err != nil {
		return err
	}

	if o.output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(o.output, out, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	o.logger.WithField("output", o.output).Info("parameter list written")
	return nil
}

func stdinIsTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
