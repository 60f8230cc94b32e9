package registry

import (
	"fmt"
	"time"

	"github.com/joshuapare/regkit/internal/broadcast"
	"github.com/joshuapare/regkit/internal/elevation"
	"github.com/joshuapare/regkit/internal/envexpand"
	"github.com/joshuapare/regkit/internal/translate"
	"github.com/joshuapare/regkit/pkg/types"
)

// NormalizeType resolves a RegType, a type name ("REG_SZ",
// "REG_DWORD_LITTLE_ENDIAN", ...) or an integer code to a canonical RegType.
func NormalizeType(v any) (RegType, error) {
	return translate.NormalizeType(v)
}

// ParseHive resolves a hive name or abbreviation (case-insensitive).
func ParseHive(name string) (Hive, error) {
	return types.ParseHive(name)
}

// ExpandEnvironmentStrings replaces %NAME% references with environment
// values. Unknown references are left as written.
func ExpandEnvironmentStrings(s string) (string, error) {
	out, err := envexpand.Expand(s)
	if err != nil {
		return "", &types.Error{
			Kind: types.ErrKindExpansion,
			Msg:  fmt.Sprintf("failed to expand environment strings in %q: %v", s, err),
			Err:  err,
		}
	}
	return out, nil
}

// IsElevated reports whether the process runs at High integrity or above.
func IsElevated() (bool, error) { return elevation.IsElevated() }

// IntegrityLevel returns the integrity RID of the process token.
func IntegrityLevel() (uint32, error) { return elevation.IntegrityLevel() }

// IntegrityLevelName returns the display name of an integrity RID, e.g. "Medium".
func IntegrityLevelName(rid uint32) string { return elevation.LevelName(rid) }

// Setting-change broadcast defaults.
const (
	DefaultBroadcastArea    = broadcast.DefaultArea
	DefaultBroadcastTimeout = broadcast.DefaultTimeout
)

// ErrBroadcastTimeout matches a setting-change broadcast that was not
// processed within its timeout.
var ErrBroadcastTimeout = broadcast.ErrTimeout

// BroadcastSettingChange tells running applications that a setting area
// changed, e.g. after editing HKCU\Environment. An empty area sends a
// general notification. Nothing in this package calls it implicitly.
func BroadcastSettingChange(area string, timeout time.Duration) error {
	return broadcast.SettingChange(area, timeout)
}
