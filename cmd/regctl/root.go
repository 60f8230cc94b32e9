package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/pkg/registry"
)

var (
	// Global flags
	verbose         bool
	quiet           bool
	jsonOut         bool
	noColor         bool
	configPath      string
	hiveName        string
	prefix          string
	view32          bool
	readOnly        bool
	ignoreElevation bool
)

// Overridable in tests.
var (
	stdout io.Writer = os.Stdout
	system registry.System
)

var rootCmd = &cobra.Command{
	Use:   "regctl",
	Short: "Read and edit the Windows registry",
	Long: `regctl reads and edits values and keys in the live Windows registry.
Paths are relative to --prefix under --hive; a YAML file given with --config
supplies the same settings.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logger.Options{Enabled: verbose, Output: os.Stderr, Level: slog.LevelDebug})
		if noColor {
			color.NoColor = true
		}
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
	pf.BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	pf.BoolVar(&jsonOut, "json", false, "Output in JSON format")
	pf.BoolVar(&noColor, "no-color", false, "Disable colored output")
	pf.StringVarP(&configPath, "config", "c", "", "YAML root configuration (overrides the flags below)")
	pf.StringVar(&hiveName, "hive", "HKCU", "Root hive (HKCU, HKLM, HKCR, HKU, HKCC or a full HKEY_* name)")
	pf.StringVarP(&prefix, "prefix", "p", "", "Path prefix applied to every key path")
	pf.BoolVar(&view32, "view32", false, "Use the 32-bit registry view")
	pf.BoolVar(&readOnly, "read-only", false, "Reject every write and delete")
	pf.BoolVar(&ignoreElevation, "ignore-elevation", false, "Skip the elevation check for protected hives")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// openRoot builds the registry root from --config or the global flags.
func openRoot() (*registry.Root, error) {
	cfg := registry.Config{
		Hive:                 hiveName,
		Prefix:               prefix,
		View32:               view32,
		ReadOnly:             readOnly,
		IgnoreElevationCheck: ignoreElevation,
	}
	if configPath != "" {
		loaded, err := registry.LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	h, err := registry.ParseHive(cfg.Hive)
	if err != nil {
		return nil, err
	}
	opts := cfg.Options()
	opts.System = system
	printVerbose("Using %s\\%s (view32=%t, read-only=%t)\n", h, cfg.Prefix, cfg.View32, cfg.ReadOnly)
	return registry.NewRoot(h, opts), nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(stdout, format, args...)
	}
}

// printSuccess prints a confirmation in green if not in quiet mode
func printSuccess(format string, args ...any) {
	if !quiet {
		color.New(color.FgGreen).Fprintf(stdout, format, args...)
	}
}

// printWarning prints a warning in yellow if not in quiet mode
func printWarning(format string, args ...any) {
	if !quiet {
		color.New(color.FgYellow).Fprintf(stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
