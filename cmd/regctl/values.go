package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "values <path>",
		Short: "List the values of a key",
		Long: `The values command lists every value under a key in registry order.

Example:
  regctl values "Environment"
  regctl --hive HKLM values "SYSTEM\CurrentControlSet\Control\Session Manager\Environment" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args)
		},
	})
}

func runValues(args []string) error {
	root, err := openRoot()
	if err != nil {
		return err
	}
	values, err := root.ListValues(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		out := make([]valueJSON, 0, len(values))
		for _, v := range values {
			out = append(out, toValueJSON(v))
		}
		return printJSON(out)
	}

	if len(values) == 0 {
		printInfo("No values\n")
		return nil
	}
	for _, v := range values {
		printInfo("%-24s %-22s %s\n", displayName(v.Name()), v.TypeName(), formatData(v))
	}
	return nil
}
