package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "create-key <path> <subkey>",
		Short: "Create a subkey, creating the parent path as needed",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := openRoot()
			if err != nil {
				return err
			}
			if err := root.PutSubkey(args[0], args[1]); err != nil {
				return err
			}
			printSuccess("Created %s\n", args[1])
			return nil
		},
	})
}
