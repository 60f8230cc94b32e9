package main

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/pkg/registry"
)

// valueJSON is the JSON shape of a registry value.
type valueJSON struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Data     any    `json:"data"`
	Expanded string `json:"expanded,omitempty"`
}

func toValueJSON(v registry.Value) valueJSON {
	out := valueJSON{Name: v.Name(), Type: v.TypeName()}
	switch d := v.Data().(type) {
	case []byte:
		out.Data = hex.EncodeToString(d)
	case registry.MultiString:
		out.Data = d.Strings()
	default:
		out.Data = d
	}
	return out
}

// formatData renders value data for text output.
func formatData(v registry.Value) string {
	switch d := v.Data().(type) {
	case nil:
		return "(none)"
	case string:
		return d
	case []byte:
		return hex.EncodeToString(d)
	case registry.MultiString:
		return strings.Join(d.Strings(), "\\0")
	case uint32:
		return fmt.Sprintf("%d (0x%08X)", d, d)
	case uint64:
		return fmt.Sprintf("%d (0x%016X)", d, d)
	default:
		return fmt.Sprint(d)
	}
}

func displayName(name string) string {
	if name == "" {
		return "(Default)"
	}
	return name
}
