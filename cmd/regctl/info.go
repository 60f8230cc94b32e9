package main

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "info <path>",
		Short: "Show subkey and value counts and the last write time of a key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args)
		},
	})
}

func runInfo(args []string) error {
	root, err := openRoot()
	if err != nil {
		return err
	}
	st, err := root.HeadKey(args[0])
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"path":       args[0],
			"subkeys":    st.SubkeyN,
			"values":     st.ValueN,
			"last_write": st.LastWrite.Format(time.RFC3339Nano),
		})
	}
	printInfo("Path:       %s\n", args[0])
	printInfo("Subkeys:    %d\n", st.SubkeyN)
	printInfo("Values:     %d\n", st.ValueN)
	printInfo("Last write: %s (%s)\n", st.LastWrite.Format(time.RFC3339), humanize.Time(st.LastWrite))
	return nil
}
