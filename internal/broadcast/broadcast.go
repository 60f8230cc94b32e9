// Package broadcast notifies top-level windows that a system setting
// changed, typically after editing environment variables in the registry.
package broadcast

import (
	"errors"
	"time"
)

// Defaults used when callers have nothing more specific to announce.
const (
	DefaultArea    = "Environment"
	DefaultTimeout = 5 * time.Second
)

var (
	// ErrTimeout is matched by a broadcast that was not processed in time.
	ErrTimeout = errors.New("broadcast: WM_SETTINGCHANGE timed out")
	// ErrUnsupportedPlatform is returned on hosts without a window manager
	// message bus.
	ErrUnsupportedPlatform = errors.New("broadcast: setting-change broadcast is only available on Windows")
)

// SettingChange broadcasts WM_SETTINGCHANGE for area ("" sends a general
// notification) and waits up to timeout for recipients.
func SettingChange(area string, timeout time.Duration) error {
	return settingChange(area, timeout)
}

func areaLabel(area string) string {
	if area == "" {
		return "general"
	}
	return area
}

// timeoutMillis clamps d to the UINT millisecond range SendMessageTimeoutW takes.
func timeoutMillis(d time.Duration) uint32 {
	ms := d.Milliseconds()
	switch {
	case ms < 0:
		return 0
	case ms > int64(^uint32(0)):
		return ^uint32(0)
	}
	return uint32(ms)
}
