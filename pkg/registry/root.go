package registry

import (
	"fmt"
	"sync"

	"github.com/joshuapare/regkit/internal/elevation"
	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/internal/regops"
	"github.com/joshuapare/regkit/internal/sysreg"
	"github.com/joshuapare/regkit/internal/translate"
	"github.com/joshuapare/regkit/pkg/types"
)

// Root is a hive bound to a path prefix, a registry view and a write
// policy. Paths passed to its methods are relative to the prefix.
//
// A Root is safe for concurrent use.
type Root struct {
	scope    regops.Scope
	client   *regops.Client
	readOnly bool
	probe    func() (bool, error)

	mu       sync.Mutex
	elevated *bool // nil until the first successful probe
}

// NewRoot binds hive with opts. A nil opts uses the host registry with no
// prefix, the native view and full write access.
func NewRoot(hive Hive, opts *Options) *Root {
	if opts == nil {
		opts = &Options{}
	}
	sys := opts.System
	if sys == nil {
		sys = sysreg.NewSystem()
	}
	probe := opts.Elevation
	if probe == nil {
		probe = elevation.IsElevated
	}
	r := &Root{
		scope:    regops.Scope{Hive: hive, Prefix: opts.Prefix, View32: opts.View32},
		client:   regops.New(sys),
		readOnly: opts.ReadOnly,
		probe:    probe,
	}
	if opts.IgnoreElevationCheck {
		yes := true
		r.elevated = &yes
	}
	return r
}

// OpenRoot is NewRoot with the hive given by name ("HKLM",
// "HKEY_CURRENT_USER", ...; case-insensitive).
func OpenRoot(name string, opts *Options) (*Root, error) {
	h, err := types.ParseHive(name)
	if err != nil {
		return nil, err
	}
	return NewRoot(h, opts), nil
}

// Hive returns the bound hive.
func (r *Root) Hive() Hive { return r.scope.Hive }

// HiveName returns the hive's display name, e.g. "HKCU".
func (r *Root) HiveName() string { return r.scope.Hive.String() }

// Prefix returns the path prefix.
func (r *Root) Prefix() string { return r.scope.Prefix }

// View32 reports whether the 32-bit view is selected.
func (r *Root) View32() bool { return r.scope.View32 }

// ReadOnly reports whether writes are rejected.
func (r *Root) ReadOnly() bool { return r.readOnly }

func (r *Root) checkWrite() error {
	if r.readOnly {
		return &types.Error{
			Kind: types.ErrKindPermission,
			Msg:  "cannot perform write/delete operation in read-only mode",
		}
	}
	h := r.scope.Hive
	if !h.RequiresElevation() {
		return nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.elevated == nil {
		ok, err := r.probe()
		if err != nil {
			logger.Error("elevation probe failed", "hive", h.FullName(), "error", err)
			return &types.Error{
				Kind: types.ErrKindPermission,
				Msg: fmt.Sprintf("failed to determine process elevation status required for write/delete "+
					"operations on root key '%s' (%d): %v", h.FullName(), uint64(h), err),
				Err: err,
			}
		}
		logger.Debug("elevation probed", "hive", h.FullName(), "elevated", ok)
		r.elevated = &ok
	}
	if !*r.elevated {
		return &types.Error{
			Kind: types.ErrKindPermission,
			Msg: fmt.Sprintf("write/delete operation on root key '%s' (%d) typically requires elevated "+
				"(administrator) privileges, but the current process is not elevated", h.FullName(), uint64(h)),
		}
	}
	return nil
}

// PutValue creates or replaces a value, creating the key path as needed.
// The registry type is inferred from data: string is REG_SZ, []byte is
// REG_BINARY, []string is REG_MULTI_SZ and integers in the 32-bit range are
// REG_DWORD.
func (r *Root) PutValue(path, name string, data any) error {
	if err := r.checkWrite(); err != nil {
		return err
	}
	conv, typ, err := translate.InferType(data)
	if err != nil {
		return err
	}
	return r.client.PutValue(r.scope, path, name, conv, typ)
}

// PutValueWithType is PutValue with an explicit type, given as a RegType,
// a type name such as "REG_QWORD", or its integer code. data is checked
// and converted for that type.
func (r *Root) PutValueWithType(path, name string, data any, typ any) error {
	if err := r.checkWrite(); err != nil {
		return err
	}
	t, err := translate.NormalizeType(typ)
	if err != nil {
		return err
	}
	conv, err := translate.ValidateAndConvert(data, t)
	if err != nil {
		return err
	}
	return r.client.PutValue(r.scope, path, name, conv, t)
}

// PutSubkey creates subkey under path, creating path as needed.
func (r *Root) PutSubkey(path, subkey string) error {
	if err := r.checkWrite(); err != nil {
		return err
	}
	return r.client.PutSubkey(r.scope, path, subkey)
}

// GetValue reads one value; name "" is the key's default value.
func (r *Root) GetValue(path, name string) (Value, error) {
	return r.client.GetValue(r.scope, path, name)
}

// ListValues returns every value under path in registry order.
func (r *Root) ListValues(path string) ([]Value, error) {
	return r.client.ListValues(r.scope, path)
}

// ListSubkeys returns the names of the immediate subkeys of path.
func (r *Root) ListSubkeys(path string) ([]string, error) {
	return r.client.ListSubkeys(r.scope, path)
}

// HeadKey returns counts and the last-write time of path.
func (r *Root) HeadKey(path string) (KeyStat, error) {
	return r.client.HeadKey(r.scope, path)
}

// DeleteValue removes a value. A value that is already absent is not an
// error; a missing key is.
func (r *Root) DeleteValue(path, name string) error {
	if err := r.checkWrite(); err != nil {
		return err
	}
	return r.client.DeleteValue(r.scope, path, name)
}

// DeleteKey removes an empty key. Keys that still have subkeys or values
// fail with ErrKeyNotEmpty and are left untouched.
func (r *Root) DeleteKey(path string) error {
	if err := r.checkWrite(); err != nil {
		return err
	}
	return r.client.DeleteKey(r.scope, path)
}
