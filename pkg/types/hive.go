package types

import (
	"fmt"
	"strings"
)

// Hive is a predefined top-level registry key handle (HKEY_*).
type Hive uintptr

const (
	HKEY_CLASSES_ROOT     Hive = 0x80000000
	HKEY_CURRENT_USER     Hive = 0x80000001
	HKEY_LOCAL_MACHINE    Hive = 0x80000002
	HKEY_USERS            Hive = 0x80000003
	HKEY_PERFORMANCE_DATA Hive = 0x80000004
	HKEY_CURRENT_CONFIG   Hive = 0x80000005
	HKEY_DYN_DATA         Hive = 0x80000006
)

var hiveNames = map[string]Hive{
	"HKEY_CLASSES_ROOT":     HKEY_CLASSES_ROOT,
	"HKEY_CURRENT_USER":     HKEY_CURRENT_USER,
	"HKEY_LOCAL_MACHINE":    HKEY_LOCAL_MACHINE,
	"HKEY_USERS":            HKEY_USERS,
	"HKEY_PERFORMANCE_DATA": HKEY_PERFORMANCE_DATA,
	"HKEY_CURRENT_CONFIG":   HKEY_CURRENT_CONFIG,
	"HKEY_DYN_DATA":         HKEY_DYN_DATA,
	"HKCR":                  HKEY_CLASSES_ROOT,
	"HKCU":                  HKEY_CURRENT_USER,
	"HKLM":                  HKEY_LOCAL_MACHINE,
	"HKU":                   HKEY_USERS,
	"HKCC":                  HKEY_CURRENT_CONFIG,
}

// hiveDisplay prefers the abbreviation where one is in common use.
var hiveDisplay = map[Hive]string{
	HKEY_CLASSES_ROOT:     "HKCR",
	HKEY_CURRENT_USER:     "HKCU",
	HKEY_LOCAL_MACHINE:    "HKLM",
	HKEY_USERS:            "HKU",
	HKEY_PERFORMANCE_DATA: "HKEY_PERFORMANCE_DATA",
	HKEY_CURRENT_CONFIG:   "HKEY_CURRENT_CONFIG",
	HKEY_DYN_DATA:         "HKEY_DYN_DATA",
}

// ParseHive resolves a hive name or abbreviation (case-insensitive).
func ParseHive(name string) (Hive, error) {
	if h, ok := hiveNames[strings.ToUpper(name)]; ok {
		return h, nil
	}
	return 0, fmt.Errorf("%w: %q (valid keys are HKEY_CLASSES_ROOT, HKEY_CURRENT_USER, "+
		"HKEY_LOCAL_MACHINE, HKEY_USERS, HKEY_PERFORMANCE_DATA, HKEY_CURRENT_CONFIG, "+
		"HKEY_DYN_DATA, HKCR, HKCU, HKLM, HKU, HKCC)", ErrUnknownHive, name)
}

func (h Hive) String() string {
	if name, ok := hiveDisplay[h]; ok {
		return name
	}
	return fmt.Sprintf("UnknownRoot(0x%X)", uintptr(h))
}

// RequiresElevation reports whether writes under h conventionally need an
// elevated process.
func (h Hive) RequiresElevation() bool {
	switch h {
	case HKEY_LOCAL_MACHINE, HKEY_USERS, HKEY_CLASSES_ROOT, HKEY_CURRENT_CONFIG:
		return true
	}
	return false
}

// FullName returns the unabbreviated HKEY_* name, or the String form for
// handles outside the table.
func (h Hive) FullName() string {
	for name, v := range hiveNames {
		if v == h && strings.HasPrefix(name, "HKEY_") {
			return name
		}
	}
	return h.String()
}
