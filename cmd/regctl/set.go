package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regkit/pkg/registry"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVarP(&setType, "type", "t", "",
		"Value type (sz, expand_sz, dword, qword, binary, multi_sz, none or a REG_* name); inferred when empty")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "set <path> <name> [value...]",
		Short: "Set a registry value",
		Long: `The set command creates or replaces a value, creating the key path as needed.
Without --type a single value is stored as REG_SZ and several as REG_MULTI_SZ.

Example:
  regctl -p "Software\MyApp" set "Settings" "Version" "1.0.0"
  regctl -p "Software\MyApp" set "Settings" "Enabled" 1 --type dword
  regctl -p "Software\MyApp" set "Settings" "Blob" 0102030405 --type binary
  regctl -p "Software\MyApp" set "Settings" "Dirs" C:\a C:\b`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
	return cmd
}

func runSet(args []string) error {
	path, name, raw := args[0], args[1], args[2:]

	root, err := openRoot()
	if err != nil {
		return err
	}

	if setType == "" {
		var data any
		switch len(raw) {
		case 0:
			return fmt.Errorf("a value is required when --type is not given")
		case 1:
			data = raw[0]
		default:
			data = raw
		}
		if err := root.PutValue(path, name, data); err != nil {
			return err
		}
		return reportSet(root, path, name)
	}

	typ, err := resolveType(setType)
	if err != nil {
		return err
	}
	data, err := parseData(typ, raw)
	if err != nil {
		return err
	}
	if err := root.PutValueWithType(path, name, data, typ); err != nil {
		return err
	}
	return reportSet(root, path, name)
}

func reportSet(root *registry.Root, path, name string) error {
	v, err := root.GetValue(path, name)
	if err != nil {
		return err
	}
	if jsonOut {
		return printJSON(map[string]any{
			"hive":    root.HiveName(),
			"path":    path,
			"value":   toValueJSON(v),
			"success": true,
		})
	}
	printSuccess("Set %s (%s) = %s\n", displayName(name), v.TypeName(), formatData(v))
	return nil
}

// resolveType accepts REG_* names, their short forms ("dword") and numeric codes.
func resolveType(s string) (registry.RegType, error) {
	if n, err := strconv.Atoi(s); err == nil {
		return registry.NormalizeType(n)
	}
	if t, err := registry.NormalizeType(s); err == nil {
		return t, nil
	}
	return registry.NormalizeType("REG_" + s)
}

// parseData turns command-line words into data for typ.
func parseData(typ registry.RegType, raw []string) (any, error) {
	switch typ {
	case registry.REG_MULTI_SZ:
		return raw, nil
	case registry.REG_NONE:
		return nil, nil
	}
	if len(raw) != 1 {
		return nil, fmt.Errorf("%s takes exactly one value, got %d", typ, len(raw))
	}
	s := raw[0]

	switch typ {
	case registry.REG_DWORD, registry.REG_DWORD_BIG_ENDIAN, registry.REG_QWORD:
		if n, err := strconv.ParseInt(s, 0, 64); err == nil {
			return n, nil
		}
		u, err := strconv.ParseUint(s, 0, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid integer %q for %s", s, typ)
		}
		return u, nil
	case registry.REG_BINARY, registry.REG_RESOURCE_LIST, registry.REG_FULL_RESOURCE_DESCRIPTOR,
		registry.REG_RESOURCE_REQUIREMENTS_LIST:
		clean := strings.NewReplacer(" ", "", ",", "", ":", "").Replace(s)
		b, err := hex.DecodeString(clean)
		if err != nil {
			return nil, fmt.Errorf("invalid hex data for %s: %w", typ, err)
		}
		return b, nil
	}
	return s, nil
}
