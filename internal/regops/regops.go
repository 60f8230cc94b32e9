// Package regops implements the registry operations on top of a
// sysreg.Primitive: resolving scoped paths, opening keys with the narrowest
// access each operation needs, and normalizing every OS failure.
//
// Each handle is owned by exactly one call of withKey or withNewKey and is
// closed before that call returns, whatever the outcome.
package regops

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joshuapare/regkit/internal/format"
	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/internal/regerr"
	"github.com/joshuapare/regkit/internal/sysreg"
	"github.com/joshuapare/regkit/pkg/types"
)

// Scope locates the subtree an operation works in.
type Scope struct {
	Hive   types.Hive
	Prefix string
	View32 bool // use the 32-bit registry view on 64-bit Windows
}

// Resolve joins the scope prefix with path.
func (s Scope) Resolve(path string) string { return JoinPath(s.Prefix, path) }

func (s Scope) access(base uint32) uint32 {
	if s.View32 {
		return base | sysreg.KeyWow64_32Key
	}
	return base
}

// Client runs registry operations against a primitive.
type Client struct {
	sys sysreg.Primitive
}

// New returns a Client backed by sys.
func New(sys sysreg.Primitive) *Client {
	return &Client{sys: sys}
}

// withKey opens full, runs fn and always closes the handle.
func (c *Client) withKey(s Scope, full string, access uint32, fn func(sysreg.Handle) error) error {
	h, err := c.sys.Open(s.Hive, full, s.access(access))
	if err != nil {
		return regerr.Key(err, full)
	}
	defer c.close(h, full)
	return fn(h)
}

// withNewKey is withKey with open-or-create semantics; missing intermediate
// keys are created.
func (c *Client) withNewKey(s Scope, full string, access uint32, fn func(sysreg.Handle) error) error {
	h, err := c.sys.Create(s.Hive, full, s.access(access))
	if err != nil {
		return regerr.Key(err, full)
	}
	defer c.close(h, full)
	if fn == nil {
		return nil
	}
	return fn(h)
}

func (c *Client) close(h sysreg.Handle, path string) {
	if err := c.sys.Close(h); err != nil {
		logger.Debug("failed to close registry key handle", "key", path, "error", err)
	}
}

// EnsureKey creates the key at path, and any missing parents, if it does
// not exist. The hive root always exists.
func (c *Client) EnsureKey(s Scope, path string) error {
	return c.ensure(s, s.Resolve(path))
}

func (c *Client) ensure(s Scope, full string) error {
	if full == "" {
		return nil
	}
	return c.withNewKey(s, full, sysreg.KeyWrite, nil)
}

// PutValue writes a value, creating its key if needed. data must already
// be in the shape the primitive stores for typ.
func (c *Client) PutValue(s Scope, path, name string, data any, typ types.RegType) error {
	full := s.Resolve(path)
	if err := c.ensure(s, full); err != nil {
		return err
	}
	logger.Debug("writing registry value", "hive", s.Hive, "key", full, "value", name, "type", typ)
	return c.withKey(s, full, sysreg.KeySetValue, func(h sysreg.Handle) error {
		return regerr.Value(c.sys.SetValue(h, name, typ, data), full, name)
	})
}

// PutSubkey creates subkey under path, creating path first if needed.
func (c *Client) PutSubkey(s Scope, path, subkey string) error {
	parent := s.Resolve(path)
	if err := c.ensure(s, parent); err != nil {
		return err
	}
	return c.withNewKey(s, JoinPath(parent, subkey), sysreg.KeyWrite, nil)
}

// GetValue reads one value. A missing key and a missing value are reported
// as distinct errors.
func (c *Client) GetValue(s Scope, path, name string) (types.Value, error) {
	full := s.Resolve(path)
	var out types.Value
	err := c.withKey(s, full, sysreg.KeyRead, func(h sysreg.Handle) error {
		data, typ, err := c.sys.QueryValue(h, name)
		if errors.Is(err, sysreg.ErrorFileNotFound) {
			return regerr.ValueNotFound(err, full, name)
		}
		if err != nil {
			return regerr.Value(err, full, name)
		}
		out = types.NewValue(name, data, typ)
		return nil
	})
	return out, err
}

// ListValues returns every value under path, including the default value
// when it is set. Any failure discards the partial list.
func (c *Client) ListValues(s Scope, path string) ([]types.Value, error) {
	full := s.Resolve(path)
	var out []types.Value
	err := c.withKey(s, full, sysreg.KeyRead, func(h sysreg.Handle) error {
		for i := 0; ; i++ {
			name, data, typ, err := c.sys.EnumValue(h, i)
			if errors.Is(err, sysreg.ErrorNoMoreItems) {
				return nil
			}
			if err != nil {
				return regerr.Key(err, full)
			}
			out = append(out, types.NewValue(name, data, typ))
		}
	})
	if err != nil {
		return nil, err
	}
	if out == nil {
		out = []types.Value{}
	}
	return out, nil
}

// ListSubkeys returns the names of the immediate subkeys of path.
func (c *Client) ListSubkeys(s Scope, path string) ([]string, error) {
	full := s.Resolve(path)
	out := []string{}
	err := c.withKey(s, full, sysreg.KeyEnumerateSubKeys, func(h sysreg.Handle) error {
		for i := 0; ; i++ {
			name, err := c.sys.EnumKey(h, i)
			if errors.Is(err, sysreg.ErrorNoMoreItems) {
				return nil
			}
			if err != nil {
				return regerr.Key(err, full)
			}
			out = append(out, name)
		}
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// HeadKey reports the subkey count, value count and last write time of path.
func (c *Client) HeadKey(s Scope, path string) (types.KeyStat, error) {
	full := s.Resolve(path)
	var st types.KeyStat
	err := c.withKey(s, full, sysreg.KeyRead, func(h sysreg.Handle) error {
		info, err := c.sys.QueryInfo(h)
		if err != nil {
			return regerr.Key(err, full)
		}
		st = types.KeyStat{
			SubkeyN:   int(info.Subkeys),
			ValueN:    int(info.Values),
			LastWrite: format.FiletimeToTime(info.LastWrite),
		}
		return nil
	})
	return st, err
}

// DeleteValue removes a value. A value that is already absent is not an
// error; a missing key is.
func (c *Client) DeleteValue(s Scope, path, name string) error {
	full := s.Resolve(path)
	return c.withKey(s, full, sysreg.KeySetValue, func(h sysreg.Handle) error {
		err := c.sys.DeleteValue(h, name)
		if errors.Is(err, sysreg.ErrorFileNotFound) {
			logger.Debug("registry value already absent", "key", full, "value", name)
			return nil
		}
		return regerr.Value(err, full, name)
	})
}

// DeleteKey removes an empty key. The key is inspected before anything is
// deleted, so a key with subkeys or values is left untouched.
func (c *Client) DeleteKey(s Scope, path string) error {
	full := s.Resolve(path)
	if strings.Trim(full, Sep) == "" {
		return types.ErrCannotDeleteRoot
	}

	err := c.withKey(s, full, sysreg.KeyRead, func(h sysreg.Handle) error {
		info, err := c.sys.QueryInfo(h)
		if err != nil {
			return regerr.Key(err, full)
		}
		if info.Subkeys > 0 || info.Values > 0 {
			return &types.Error{
				Kind: types.ErrKindKeyNotEmpty,
				Msg: fmt.Sprintf("registry key '%s' is not empty (contains %d subkeys and %d values)",
					full, info.Subkeys, info.Values),
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	parent, leaf := SplitPath(full)
	return c.withKey(s, parent, sysreg.KeyCreateSubKey, func(h sysreg.Handle) error {
		return regerr.Key(c.sys.DeleteKey(h, leaf), full)
	})
}
