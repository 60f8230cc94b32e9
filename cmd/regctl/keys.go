package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "keys <path>",
		Short: "List the subkeys of a key",
		Long: `The keys command lists the immediate subkeys of a key.

Example:
  regctl keys "Software"
  regctl keys "" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	})
}

func runKeys(args []string) error {
	root, err := openRoot()
	if err != nil {
		return err
	}
	names, err := root.ListSubkeys(args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(names)
	}
	for _, n := range names {
		printInfo("%s\n", n)
	}
	return nil
}
