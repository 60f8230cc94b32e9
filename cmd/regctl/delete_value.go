package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "delete-value <path> <name>",
		Short: "Delete a registry value",
		Long: `The delete-value command removes a value. Removing a value that does not
exist succeeds; a missing key is an error.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := openRoot()
			if err != nil {
				return err
			}
			if err := root.DeleteValue(args[0], args[1]); err != nil {
				return err
			}
			printSuccess("Deleted value %s\n", displayName(args[1]))
			return nil
		},
	})
}
