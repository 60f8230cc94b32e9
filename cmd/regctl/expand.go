package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "expand <string>",
		Short: "Expand %VAR% references against the environment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := registry.ExpandEnvironmentStrings(args[0])
			if err != nil {
				return err
			}
			printInfo("%s\n", out)
			return nil
		},
	})
}
