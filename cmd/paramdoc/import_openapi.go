package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-paramdoc/pkg/openapi"
	"github.com/goliatone/go-paramdoc/pkg/paramdata"
)

type importOptions struct {
	*rootOptions
	schemas  []string
	validate bool
	output   string
}

func newImportOpenAPICmd(root *rootOptions) *cobra.Command {
	opts := &importOptions{rootOptions: root}

	cmd := &cobra.Command{
		Use:   "import-openapi <spec>",
		Short: "Derive parameter data from OpenAPI component schemas",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return opts.run(cmd, args[0])
		},
	}
	flags := cmd.Flags()
	flags.StringSliceVar(&opts.schemas, "schema", nil, "component schema to import (repeatable; default all)")
	flags.BoolVar(&opts.validate, "validate", false, "validate the OpenAPI document first")
	flags.StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}

func (o *importOptions) run(cmd *cobra.Command, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	doc, err := openapi.Import(cmd.Context(), path, raw, openapi.Options{
		Schemas:  o.schemas,
		Validate: o.validate,
	})
	if err != nil {
		return err
	}
	out, err := paramdata.Marshal(doc)
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
	o.logger.WithFields(logrus.Fields{
		"output":  o.output,
		"classes": len(doc.Classes),
	}).Info("parameter data written")
	return nil
}
