// Package regerr turns raw registry failures into *types.Error values.
package regerr

import (
	"errors"
	"fmt"
	"syscall"

	"github.com/joshuapare/regkit/internal/logger"
	"github.com/joshuapare/regkit/internal/sysreg"
	"github.com/joshuapare/regkit/pkg/types"
)

// kinds maps OS codes to error kinds. Codes not listed are ErrKindRegistry.
var kinds = map[syscall.Errno]types.ErrKind{
	sysreg.ErrorFileNotFound: types.ErrKindKeyNotFound,
	sysreg.ErrorPathNotFound: types.ErrKindKeyNotFound,
	sysreg.ErrorAccessDenied: types.ErrKindPermission,
	sysreg.ErrorDirNotEmpty:  types.ErrKindKeyNotEmpty,
}

// Key normalizes err from an operation on the key at path.
func Key(err error, path string) error {
	return normalize(err, path, "", false)
}

// Value normalizes err from an operation on value name under path.
func Value(err error, path, name string) error {
	return normalize(err, path, name, true)
}

// ValueNotFound reports that name is absent from the existing key at path.
// err is the OS failure that signalled it.
func ValueNotFound(err error, path, name string) error {
	code, osMsg := extract(err)
	return &types.Error{
		Kind:  types.ErrKindValueNotFound,
		Msg:   fmt.Sprintf("registry value '%s' not found in key '%s'", name, path),
		Code:  code,
		OSMsg: osMsg,
		Err:   err,
	}
}

func normalize(err error, path, name string, hasName bool) error {
	if err == nil {
		return nil
	}

	// Already normalized: keep it, only filling in a missing code.
	var re *types.Error
	if errors.As(err, &re) {
		if re.Code == 0 {
			if code, msg := extract(re.Err); code != 0 {
				re.Code, re.OSMsg = code, msg
			}
		}
		return err
	}

	code, osMsg := extract(err)
	kind, ok := kinds[code]
	if !ok || code == 0 {
		kind = types.ErrKindRegistry
	}

	msg := fmt.Sprintf("registry operation failed on key '%s'", path)
	if hasName {
		msg += fmt.Sprintf(", value '%s'", name)
	}
	if code != 0 {
		msg += fmt.Sprintf(" (error %d: %s)", uint32(code), osMsg)
	} else if osMsg != "" {
		msg += fmt.Sprintf(" (%s)", osMsg)
	}

	logger.Debug("mapped registry error",
		"code", uint32(code), "os_msg", osMsg, "key", path, "value", name, "kind", kind)

	return &types.Error{Kind: kind, Msg: msg, Code: code, OSMsg: osMsg, Err: err}
}

// extract pulls the Win32 code out of err's chain. Without one, the OS
// message is the error text itself.
func extract(err error) (syscall.Errno, string) {
	if err == nil {
		return 0, ""
	}
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return errno, errno.Error()
	}
	return 0, err.Error()
}
