package types

import (
	"fmt"
	"strings"
)

// RegType enumerates Windows registry value types.
// (The numbers align with Windows definitions.)
type RegType uint32

const (
	REG_NONE                       RegType = 0
	REG_SZ                         RegType = 1
	REG_EXPAND_SZ                  RegType = 2
	REG_BINARY                     RegType = 3
	REG_DWORD                      RegType = 4
	REG_DWORD_LITTLE_ENDIAN        RegType = 4 // same value as REG_DWORD
	REG_DWORD_BIG_ENDIAN           RegType = 5
	REG_LINK                       RegType = 6
	REG_MULTI_SZ                   RegType = 7
	REG_RESOURCE_LIST              RegType = 8
	REG_FULL_RESOURCE_DESCRIPTOR   RegType = 9
	REG_RESOURCE_REQUIREMENTS_LIST RegType = 10
	REG_QWORD                      RegType = 11
	REG_QWORD_LITTLE_ENDIAN        RegType = 11 // same value as REG_QWORD

	// Short spellings.
	REG_DWORD_LE = REG_DWORD_LITTLE_ENDIAN
	REG_DWORD_BE = REG_DWORD_BIG_ENDIAN
	REG_QWORD_LE = REG_QWORD_LITTLE_ENDIAN
)

// typeNames holds one canonical name per numeric tag. The little-endian
// aliases share a number with their base type and so are not listed here.
var typeNames = map[RegType]string{
	REG_NONE:                       "REG_NONE",
	REG_SZ:                         "REG_SZ",
	REG_EXPAND_SZ:                  "REG_EXPAND_SZ",
	REG_BINARY:                     "REG_BINARY",
	REG_DWORD:                      "REG_DWORD",
	REG_DWORD_BIG_ENDIAN:           "REG_DWORD_BIG_ENDIAN",
	REG_LINK:                       "REG_LINK",
	REG_MULTI_SZ:                   "REG_MULTI_SZ",
	REG_RESOURCE_LIST:              "REG_RESOURCE_LIST",
	REG_FULL_RESOURCE_DESCRIPTOR:   "REG_FULL_RESOURCE_DESCRIPTOR",
	REG_RESOURCE_REQUIREMENTS_LIST: "REG_RESOURCE_REQUIREMENTS_LIST",
	REG_QWORD:                      "REG_QWORD",
}

// nameTypes is the reverse of typeNames plus the alias spellings.
var nameTypes = func() map[string]RegType {
	m := make(map[string]RegType, len(typeNames)+5)
	for t, name := range typeNames {
		m[name] = t
	}
	m["REG_DWORD_LITTLE_ENDIAN"] = REG_DWORD
	m["REG_QWORD_LITTLE_ENDIAN"] = REG_QWORD
	m["REG_DWORD_LE"] = REG_DWORD
	m["REG_DWORD_BE"] = REG_DWORD_BIG_ENDIAN
	m["REG_QWORD_LE"] = REG_QWORD
	return m
}()

// String implements the Stringer interface for RegType
func (t RegType) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	// Format as signed int32 to match hivex (shows negative values for invalid types)
	return fmt.Sprintf("UNKNOWN_TYPE_%d", int32(t))
}

// Known reports whether t is one of the registry value types in the tag table.
func (t RegType) Known() bool {
	_, ok := typeNames[t]
	return ok
}

// IsString reports whether t stores a single UTF-16 string.
func (t RegType) IsString() bool {
	return t == REG_SZ || t == REG_EXPAND_SZ || t == REG_LINK
}

// IsResource reports whether t is one of the hardware resource descriptor types.
func (t RegType) IsResource() bool {
	return t == REG_RESOURCE_LIST || t == REG_FULL_RESOURCE_DESCRIPTOR ||
		t == REG_RESOURCE_REQUIREMENTS_LIST
}

// LookupRegType resolves a type name such as "reg_dword" (case-insensitive).
// Alias spellings resolve to their base tag.
func LookupRegType(name string) (RegType, bool) {
	t, ok := nameTypes[strings.ToUpper(name)]
	return t, ok
}
