package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "delete-key <path>",
		Short: "Delete an empty registry key",
		Long: `The delete-key command deletes a key that has no subkeys and no values.
Keys that still have content are left untouched and reported.

Example:
  regctl -p "Software" delete-key "OldApp"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := openRoot()
			if err != nil {
				return err
			}
			if err := root.DeleteKey(args[0]); err != nil {
				return err
			}
			printSuccess("Deleted key %s\n", args[0])
			return nil
		},
	})
}
