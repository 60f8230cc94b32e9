package main

import (
	"errors"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

var (
	broadcastTimeout time.Duration
	broadcastGeneral bool
)

func init() {
	cmd := &cobra.Command{
		Use:   "broadcast [area]",
		Short: "Notify running applications that a setting changed",
		Long: `The broadcast command sends WM_SETTINGCHANGE so running programs reload
settings, typically after editing environment variables.

Example:
  regctl broadcast
  regctl broadcast intl --timeout 2s
  regctl broadcast --general`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			area := registry.DefaultBroadcastArea
			if len(args) == 1 {
				area = args[0]
			}
			if broadcastGeneral {
				area = ""
			}
			err := registry.BroadcastSettingChange(area, broadcastTimeout)
			if errors.Is(err, registry.ErrBroadcastTimeout) {
				printWarning("Broadcast timed out; some windows may not have processed it\n")
				return nil
			}
			if err != nil {
				return err
			}
			printSuccess("Broadcast sent\n")
			return nil
		},
	}
	cmd.Flags().DurationVar(&broadcastTimeout, "timeout", registry.DefaultBroadcastTimeout, "How long to wait for windows to respond")
	cmd.Flags().BoolVar(&broadcastGeneral, "general", false, "Send a general notification with no area")
	rootCmd.AddCommand(cmd)
}
