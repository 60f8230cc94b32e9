/*
Package registry is the public entry point to regkit: a scoped view of one
Windows registry hive with typed values, write policy and normalized errors.

# Quick Start

Bind a root under HKCU and write a value; the key path is created as needed:

	root := registry.NewRoot(registry.HKCU, &registry.Options{Prefix: `Software\MyApp`})
	if err := root.PutValue("Settings", "MyValue", "Some Data"); err != nil {
	    log.Fatal(err)
	}

	v, err := root.GetValue("Settings", "MyValue")
	// v.Data() == "Some Data", v.Type() == registry.REG_SZ

Types are inferred from Go data (string, []byte, []string, integers in the
DWORD range). Pass an explicit type for anything else:

	err := root.PutValueWithType("Settings", "Big", uint64(1)<<32, "REG_QWORD")

# Write Policy

A Root built with ReadOnly rejects every write and delete with an error
matching ErrPermissionDenied before touching the registry. Roots over
HKLM, HKU, HKCR and HKCC probe the process integrity level on their first
write and refuse to proceed when the process is not elevated; set
IgnoreElevationCheck to skip the probe.

# Error Handling

Registry failures are *Error values with a kind. Branch with errors.Is:

	_, err := root.GetValue("Settings", "Missing")
	switch {
	case errors.Is(err, registry.ErrValueNotFound):
	case errors.Is(err, registry.ErrKeyNotFound):
	case errors.Is(err, fs.ErrNotExist): // either of the above
	}

# Configuration

Roots can also be described in YAML and loaded with LoadConfig:

	hive: HKCU
	prefix: Software\MyApp
	read_only: true
*/
package registry
