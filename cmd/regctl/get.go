package main

import (
	"github.com/spf13/cobra"
)

var (
	getShowType bool
	getExpand   bool
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowType, "type", false, "Show type information")
	cmd.Flags().BoolVar(&getExpand, "expand", false, "Resolve %VAR% references in REG_EXPAND_SZ data")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Get a specific registry value",
		Long: `The get command retrieves and displays one value. Use "" for the default value.

Example:
  regctl get "Environment" "Path" --expand
  regctl --hive HKLM get "SOFTWARE\Microsoft\Windows NT\CurrentVersion" "ProductName" --type`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	root, err := openRoot()
	if err != nil {
		return err
	}
	v, err := root.GetValue(args[0], args[1])
	if err != nil {
		return err
	}

	var expanded string
	if getExpand {
		if s, ok, err := v.ExpandedData(); err != nil {
			return err
		} else if ok {
			expanded = s
		}
	}

	if jsonOut {
		out := toValueJSON(v)
		out.Expanded = expanded
		return printJSON(out)
	}

	data := formatData(v)
	if expanded != "" {
		data = expanded
	}
	if getShowType {
		printInfo("%s (%s): %s\n", displayName(v.Name()), v.TypeName(), data)
		return nil
	}
	printInfo("%s\n", data)
	return nil
}
