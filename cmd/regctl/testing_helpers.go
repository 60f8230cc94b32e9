package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/internal/testutil"
	"github.com/joshuapare/regkit/pkg/registry"
)

// resetFlags restores every package-level flag to its default.
func resetFlags() {
	verbose, quiet, jsonOut, noColor = false, false, false, true
	configPath, hiveName, prefix = "", "HKCU", ""
	view32, readOnly, ignoreElevation = false, false, false
	getShowType, getExpand = false, false
	setType = ""
	broadcastTimeout, broadcastGeneral = registry.DefaultBroadcastTimeout, false
}

// runCLI executes regctl with args against mem and returns what it printed.
func runCLI(t *testing.T, mem *testutil.MemRegistry, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	var out bytes.Buffer
	prevOut, prevSys := stdout, system
	stdout, system = &out, mem
	t.Cleanup(func() { stdout, system = prevOut, prevSys })

	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

// decodeJSON unmarshals command output into v.
func decodeJSON(t *testing.T, output string, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(output), v), "invalid JSON output:\n%s", output)
}
