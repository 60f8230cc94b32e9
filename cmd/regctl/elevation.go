package main

import (
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

func init() {
	rootCmd.AddCommand(&cobra.Command{
		Use:   "elevation",
		Short: "Show the integrity level of this process",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rid, err := registry.IntegrityLevel()
			if err != nil {
				return err
			}
			elevated, err := registry.IsElevated()
			if err != nil {
				return err
			}
			if jsonOut {
				return printJSON(map[string]any{
					"rid":      rid,
					"level":    registry.IntegrityLevelName(rid),
					"elevated": elevated,
				})
			}
			printInfo("Integrity level: %s (0x%X)\n", registry.IntegrityLevelName(rid), rid)
			printInfo("Elevated:        %t\n", elevated)
			return nil
		},
	})
}
