package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/internal/testutil"
	"github.com/joshuapare/regkit/pkg/registry"
)

const testPrefix = `Software\RegctlTest`

func TestSetAndGet(t *testing.T) {
	mem := testutil.SetupRegistry(t)

	tests := []struct {
		name     string
		set      []string
		wantType registry.RegType
		wantGet  string
	}{
		{"inferred string", []string{"Settings", "Version", "1.0.0"}, registry.REG_SZ, "1.0.0"},
		{"inferred multi", []string{"Settings", "Dirs", `C:\a`, `C:\b`}, registry.REG_MULTI_SZ, `C:\a\0C:\b`},
		{"dword short name", []string{"Settings", "Enabled", "0x10", "--type", "dword"}, registry.REG_DWORD, "16 (0x00000010)"},
		{"negative dword", []string{"Settings", "Neg", "--type", "REG_DWORD", "--", "-1"}, registry.REG_DWORD, "4294967295 (0xFFFFFFFF)"},
		{"qword numeric code", []string{"Settings", "Big", "4294967296", "--type", "11"}, registry.REG_QWORD, "4294967296 (0x0000000100000000)"},
		{"binary", []string{"Settings", "Blob", "01 02 ff", "--type", "binary"}, registry.REG_BINARY, "0102ff"},
		{"expand", []string{"Settings", "Path", `%TEMP%\x`, "--type", "expand_sz"}, registry.REG_EXPAND_SZ, `%TEMP%\x`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-p", testPrefix, "set"}, tt.set...)
			out, err := runCLI(t, mem, args...)
			require.NoError(t, err)
			assert.Contains(t, out, tt.wantType.String())

			out, err = runCLI(t, mem, "-p", testPrefix, "get", tt.set[0], tt.set[1])
			require.NoError(t, err)
			assert.Equal(t, tt.wantGet+"\n", out)
		})
	}
}

func TestSet_Errors(t *testing.T) {
	mem := testutil.SetupRegistry(t)

	_, err := runCLI(t, mem, "set", "k", "v")
	assert.Error(t, err, "value required without --type")

	_, err = runCLI(t, mem, "set", "k", "v", "x", "--type", "bogus")
	assert.ErrorIs(t, err, registry.ErrUnknownTypeName)

	_, err = runCLI(t, mem, "set", "k", "v", "4294967296", "--type", "dword")
	assert.ErrorIs(t, err, registry.ErrOutOfRange)

	_, err = runCLI(t, mem, "set", "k", "v", "zz", "--type", "binary")
	assert.Error(t, err)

	_, err = runCLI(t, mem, "set", "k", "v", "a", "b", "--type", "sz")
	assert.Error(t, err)
}

func TestGet_JSONAndType(t *testing.T) {
	mem := testutil.SetupRegistry(t)
	_, err := runCLI(t, mem, "set", "App", "", "DefaultData")
	require.NoError(t, err)

	out, err := runCLI(t, mem, "get", "App", "", "--type")
	require.NoError(t, err)
	assert.Equal(t, "(Default) (REG_SZ): DefaultData\n", out)

	out, err = runCLI(t, mem, "--json", "get", "App", "")
	require.NoError(t, err)
	var v valueJSON
	decodeJSON(t, out, &v)
	assert.Equal(t, valueJSON{Name: "", Type: "REG_SZ", Data: "DefaultData"}, v)
}

func TestGet_Expand(t *testing.T) {
	mem := testutil.SetupRegistry(t)
	t.Setenv("REGCTL_TEST_HOME", `D:\home`)

	_, err := runCLI(t, mem, "set", "Env", "P", `%REGCTL_TEST_HOME%\bin`, "--type", "REG_EXPAND_SZ")
	require.NoError(t, err)

	out, err := runCLI(t, mem, "get", "Env", "P", "--expand")
	require.NoError(t, err)
	assert.Equal(t, `D:\home\bin`+"\n", out)
}

func TestGet_Missing(t *testing.T) {
	mem := testutil.SetupRegistry(t)

	_, err := runCLI(t, mem, "get", "Nope", "v")
	assert.ErrorIs(t, err, registry.ErrKeyNotFound)

	_, err = runCLI(t, mem, "create-key", "", "Here")
	require.NoError(t, err)
	_, err = runCLI(t, mem, "get", "Here", "v")
	assert.ErrorIs(t, err, registry.ErrValueNotFound)
}

func TestValuesKeysInfo(t *testing.T) {
	mem := testutil.SetupRegistry(t)
	for _, args := range [][]string{
		{"set", "App", "", "DefaultData"},
		{"set", "App", "StringValue", "x"},
		{"create-key", "App", "Child"},
	} {
		_, err := runCLI(t, mem, append([]string{"-p", testPrefix}, args...)...)
		require.NoError(t, err)
	}

	out, err := runCLI(t, mem, "-p", testPrefix, "--json", "values", "App")
	require.NoError(t, err)
	var values []valueJSON
	decodeJSON(t, out, &values)
	require.Len(t, values, 2)
	assert.Equal(t, "", values[0].Name)
	assert.Equal(t, "StringValue", values[1].Name)

	out, err = runCLI(t, mem, "-p", testPrefix, "keys", "App")
	require.NoError(t, err)
	assert.Equal(t, "Child\n", out)

	out, err = runCLI(t, mem, "-p", testPrefix, "--json", "info", "App")
	require.NoError(t, err)
	var info map[string]any
	decodeJSON(t, out, &info)
	assert.EqualValues(t, 1, info["subkeys"])
	assert.EqualValues(t, 2, info["values"])
	assert.Equal(t, "2024-01-02T03:04:05Z", info["last_write"])

	out, err = runCLI(t, mem, "-p", testPrefix, "info", "App")
	require.NoError(t, err)
	assert.Contains(t, out, "Subkeys:    1\n")
	assert.Contains(t, out, "Last write: 2024-01-02T03:04:05Z (")
	assert.Contains(t, out, "ago)")

	out, err = runCLI(t, mem, "-p", testPrefix, "values", "App\\Child")
	require.NoError(t, err)
	assert.Equal(t, "No values\n", out)
}

func TestDelete(t *testing.T) {
	mem := testutil.SetupRegistry(t)
	_, err := runCLI(t, mem, "-p", testPrefix, "set", "Old", "v", "x")
	require.NoError(t, err)

	_, err = runCLI(t, mem, "-p", testPrefix, "delete-key", "Old")
	require.ErrorIs(t, err, registry.ErrKeyNotEmpty)
	assert.True(t, mem.KeyExists(registry.HKCU, testPrefix+`\Old`))

	_, err = runCLI(t, mem, "-p", testPrefix, "delete-value", "Old", "v")
	require.NoError(t, err)
	_, err = runCLI(t, mem, "-p", testPrefix, "delete-value", "Old", "v")
	require.NoError(t, err, "deleting an absent value succeeds")

	out, err := runCLI(t, mem, "-p", testPrefix, "delete-key", "Old")
	require.NoError(t, err)
	assert.Equal(t, "Deleted key Old\n", out)
	assert.False(t, mem.KeyExists(registry.HKCU, testPrefix+`\Old`))
}

func TestReadOnlyAndQuiet(t *testing.T) {
	mem := testutil.SetupRegistry(t)

	_, err := runCLI(t, mem, "--read-only", "set", "k", "v", "x")
	require.ErrorIs(t, err, registry.ErrPermissionDenied)
	assert.Zero(t, mem.TotalCalls())

	out, err := runCLI(t, mem, "-q", "set", "k", "v", "x")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestConfigFile(t *testing.T) {
	mem := testutil.SetupRegistry(t)
	path := filepath.Join(t.TempDir(), "root.yaml")
	require.NoError(t, os.WriteFile(path, []byte("hive: HKCC\nprefix: System\\Test\nignore_elevation_check: true\n"), 0o600))

	_, err := runCLI(t, mem, "--config", path, "set", "k", "v", "x")
	require.NoError(t, err)

	_, err = runCLI(t, mem, "--hive", "HKCC", "-p", `System\Test`, "get", "k", "v")
	require.NoError(t, err)
	assert.True(t, mem.KeyExists(registry.HKCC, `System\Test\k`))

	_, err = runCLI(t, mem, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "keys", "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestUnknownHive(t *testing.T) {
	mem := testutil.SetupRegistry(t)
	_, err := runCLI(t, mem, "--hive", "HKXX", "keys", "")
	assert.ErrorIs(t, err, registry.ErrUnknownHive)
	assert.Zero(t, mem.TotalCalls())
}

func TestExpandCommand(t *testing.T) {
	mem := testutil.SetupRegistry(t)
	t.Setenv("REGCTL_TEST_VAR", "value")

	out, err := runCLI(t, mem, "expand", "%REGCTL_TEST_VAR%-%REGCTL_NOT_SET%")
	require.NoError(t, err)
	assert.Equal(t, "value-%REGCTL_NOT_SET%\n", out)
}

func TestHostOnlyCommands_Unsupported(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("host collaborators are live on this platform")
	}
	mem := testutil.SetupRegistry(t)

	_, err := runCLI(t, mem, "elevation")
	assert.Error(t, err)
	_, err = runCLI(t, mem, "broadcast")
	assert.Error(t, err)
}

func TestResolveType(t *testing.T) {
	for in, want := range map[string]registry.RegType{
		"sz":                      registry.REG_SZ,
		"REG_SZ":                  registry.REG_SZ,
		"multi_sz":                registry.REG_MULTI_SZ,
		"dword_big_endian":        registry.REG_DWORD_BIG_ENDIAN,
		"reg_qword_little_endian": registry.REG_QWORD,
		"3":                       registry.REG_BINARY,
	} {
		got, err := resolveType(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}
