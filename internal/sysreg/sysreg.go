// Package sysreg is the thin boundary to the operating system registry.
//
// Primitive mirrors the Win32 registry calls one to one. Errors returned by
// an implementation carry the raw Win32 code as a syscall.Errno so callers
// can classify them; nothing here interprets them.
package sysreg

import (
	"errors"

	"github.com/joshuapare/regkit/pkg/types"
)

// Handle is an open key handle.
type Handle uintptr

// Access rights for Open and Create (REGSAM).
const (
	KeyQueryValue       uint32 = 0x0001
	KeySetValue         uint32 = 0x0002
	KeyCreateSubKey     uint32 = 0x0004
	KeyEnumerateSubKeys uint32 = 0x0008
	KeyNotify           uint32 = 0x0010
	KeyWow64_64Key      uint32 = 0x0100
	KeyWow64_32Key      uint32 = 0x0200

	KeyRead  uint32 = 0x20019 // STANDARD_RIGHTS_READ | QUERY_VALUE | ENUMERATE_SUB_KEYS | NOTIFY
	KeyWrite uint32 = 0x20006 // STANDARD_RIGHTS_WRITE | SET_VALUE | CREATE_SUB_KEY
)

// Info is the subset of RegQueryInfoKey output the operation layer needs.
type Info struct {
	Subkeys   uint32
	Values    uint32
	LastWrite uint64 // FILETIME
}

// Primitive is the OS registry surface. Data passed to SetValue and returned
// from QueryValue/EnumValue uses the regcodec shapes: string, uint32,
// uint64, []string, []byte or nil.
type Primitive interface {
	Open(hive types.Hive, path string, access uint32) (Handle, error)
	Create(hive types.Hive, path string, access uint32) (Handle, error)
	Close(h Handle) error
	QueryValue(h Handle, name string) (any, types.RegType, error)
	SetValue(h Handle, name string, typ types.RegType, data any) error
	EnumValue(h Handle, index int) (string, any, types.RegType, error)
	EnumKey(h Handle, index int) (string, error)
	QueryInfo(h Handle) (Info, error)
	DeleteValue(h Handle, name string) error
	DeleteKey(parent Handle, name string) error
}

// ErrUnsupportedPlatform is returned by every system call on hosts without
// a Windows registry.
var ErrUnsupportedPlatform = errors.New("sysreg: the Windows registry is not available on this platform")
