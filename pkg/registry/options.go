package registry

import (
	"github.com/joshuapare/regkit/internal/sysreg"
	"github.com/joshuapare/regkit/internal/translate"
	"github.com/joshuapare/regkit/pkg/types"
)

// Options controls how a Root reaches the registry.
type Options struct {
	// Prefix is prepended to every path passed to the Root.
	Prefix string

	// View32 selects the 32-bit registry view on 64-bit Windows.
	View32 bool

	// ReadOnly rejects every write and delete with a permission error.
	ReadOnly bool

	// IgnoreElevationCheck treats the process as elevated, so writes to
	// protected hives never probe the token.
	IgnoreElevationCheck bool

	// System is the registry the Root talks to.
	// If nil, the host registry is used.
	System System

	// Elevation reports whether the process is elevated.
	// If nil, the process token is queried.
	Elevation func() (bool, error)
}

// System is the registry primitive a Root runs on (re-exported so callers
// can supply their own).
type System = sysreg.Primitive

// Re-exported data model.
type (
	Value       = types.Value
	MultiString = types.MultiString
	RegType     = types.RegType
	Hive        = types.Hive
	KeyStat     = types.KeyStat
	Error       = types.Error
	ErrKind     = types.ErrKind
)

// Hives.
const (
	HKCR = types.HKEY_CLASSES_ROOT
	HKCU = types.HKEY_CURRENT_USER
	HKLM = types.HKEY_LOCAL_MACHINE
	HKU  = types.HKEY_USERS
	HKCC = types.HKEY_CURRENT_CONFIG
)

// Value types.
const (
	REG_NONE                       = types.REG_NONE
	REG_SZ                         = types.REG_SZ
	REG_EXPAND_SZ                  = types.REG_EXPAND_SZ
	REG_BINARY                     = types.REG_BINARY
	REG_DWORD                      = types.REG_DWORD
	REG_DWORD_BIG_ENDIAN           = types.REG_DWORD_BIG_ENDIAN
	REG_LINK                       = types.REG_LINK
	REG_MULTI_SZ                   = types.REG_MULTI_SZ
	REG_RESOURCE_LIST              = types.REG_RESOURCE_LIST
	REG_FULL_RESOURCE_DESCRIPTOR   = types.REG_FULL_RESOURCE_DESCRIPTOR
	REG_RESOURCE_REQUIREMENTS_LIST = types.REG_RESOURCE_REQUIREMENTS_LIST
	REG_QWORD                      = types.REG_QWORD
)

// Error sentinels, matched with errors.Is.
var (
	ErrRegistry         = types.ErrRegistry
	ErrKeyNotFound      = types.ErrKeyNotFound
	ErrValueNotFound    = types.ErrValueNotFound
	ErrKeyNotEmpty      = types.ErrKeyNotEmpty
	ErrPermissionDenied = types.ErrPermissionDenied
	ErrExpansionFailed  = types.ErrExpansionFailed
	ErrCannotDeleteRoot = types.ErrCannotDeleteRoot
	ErrUnknownHive      = types.ErrUnknownHive

	ErrUnknownType     = translate.ErrUnknownType
	ErrUnknownTypeName = translate.ErrUnknownTypeName
	ErrTypeMismatch    = translate.ErrTypeMismatch
	ErrOutOfRange      = translate.ErrOutOfRange
	ErrUnsupportedData = translate.ErrUnsupportedData
	ErrUnsupportedType = translate.ErrUnsupportedType
)
