package types

import (
	"errors"
	"io/fs"
	"syscall"
)

// ErrKind classifies registry errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindRegistry      ErrKind = iota // any other OS failure
	ErrKindKeyNotFound                  // target key segment absent
	ErrKindValueNotFound                // key present, named value absent
	ErrKindKeyNotEmpty                  // delete attempted on a key with children or values
	ErrKindPermission                   // denied by the OS, read-only policy or elevation check
	ErrKindExpansion                    // environment-string expansion failed
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindRegistry:
		return "registry"
	case ErrKindKeyNotFound:
		return "key not found"
	case ErrKindValueNotFound:
		return "value not found"
	case ErrKindKeyNotEmpty:
		return "key not empty"
	case ErrKindPermission:
		return "permission denied"
	case ErrKindExpansion:
		return "expansion failed"
	default:
		return "unknown"
	}
}

// Error is a typed registry error. Code and OSMsg carry the raw OS failure
// when there was one; Msg is complete on its own and already embeds them.
type Error struct {
	Kind  ErrKind
	Msg   string
	Code  syscall.Errno // raw OS error code, 0 when not from the OS
	OSMsg string        // raw OS message
	Err   error         // optional underlying cause

	sentinel bool
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches the kind sentinels below, and the fs.ErrNotExist /
// fs.ErrPermission categories for the not-found and permission kinds.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	switch target {
	case fs.ErrNotExist:
		return e.Kind == ErrKindKeyNotFound || e.Kind == ErrKindValueNotFound
	case fs.ErrPermission:
		return e.Kind == ErrKindPermission
	}
	if t, ok := target.(*Error); ok && t.sentinel {
		return t.Kind == e.Kind
	}
	return false
}

// Sentinels for errors.Is checks, one per kind.
var (
	// ErrRegistry matches any generic registry failure.
	ErrRegistry = &Error{Kind: ErrKindRegistry, Msg: "registry error", sentinel: true}
	// ErrKeyNotFound matches a missing key.
	ErrKeyNotFound = &Error{Kind: ErrKindKeyNotFound, Msg: "registry key not found", sentinel: true}
	// ErrValueNotFound matches a missing value under an existing key.
	ErrValueNotFound = &Error{Kind: ErrKindValueNotFound, Msg: "registry value not found", sentinel: true}
	// ErrKeyNotEmpty matches a delete refused because the key has children or values.
	ErrKeyNotEmpty = &Error{Kind: ErrKindKeyNotEmpty, Msg: "registry key not empty", sentinel: true}
	// ErrPermissionDenied matches OS, read-only and elevation denials.
	ErrPermissionDenied = &Error{Kind: ErrKindPermission, Msg: "registry permission denied", sentinel: true}
	// ErrExpansionFailed matches a failed REG_EXPAND_SZ expansion.
	ErrExpansionFailed = &Error{Kind: ErrKindExpansion, Msg: "registry expansion failed", sentinel: true}
)

// Usage errors. These are client-side contract violations and sit outside
// the registry error taxonomy.
var (
	// ErrCannotDeleteRoot indicates an attempt to delete the hive root.
	ErrCannotDeleteRoot = errors.New("registry: cannot delete the root key")
	// ErrUnknownHive indicates a hive name that is not in the hive table.
	ErrUnknownHive = errors.New("registry: unknown root key")
)

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) (ErrKind, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind, true
	}
	return 0, false
}
