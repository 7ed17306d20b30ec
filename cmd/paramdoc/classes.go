package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newClassesCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classes",
		Short: "List the classes defined in the data file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.config()
			if err != nil {
				return err
			}
			src, l, err := root.source(cfg)
			if err != nil {
				return err
			}
			doc, err := l.Load(cmd.Context(), src)
			if err != nil {
				return err
			}
			for _, name := range doc.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
}
