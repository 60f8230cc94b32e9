//go:build windows

package broadcast

import (
	"fmt"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/internal/logger"
)

const (
	hwndBroadcast   = 0xFFFF
	wmSettingChange = 0x001A
	smtoAbortIfHung = 0x0002
)

var (
	moduser32 = windows.NewLazySystemDLL("user32.dll")

	procSendMessageTimeoutW = moduser32.NewProc("SendMessageTimeoutW")
)

func settingChange(area string, timeout time.Duration) error {
	// nil sends lParam 0, a general notification.
	var parea *uint16
	if area != "" {
		p, err := windows.UTF16PtrFromString(area)
		if err != nil {
			return fmt.Errorf("broadcast: area %q: %w", area, err)
		}
		parea = p
	}
	ms := timeoutMillis(timeout)
	logger.Debug("broadcasting WM_SETTINGCHANGE", "area", areaLabel(area), "timeout_ms", ms)

	var result uintptr
	r1, _, e1 := procSendMessageTimeoutW.Call(
		hwndBroadcast,
		wmSettingChange,
		0,
		uintptr(unsafe.Pointer(parea)),
		smtoAbortIfHung,
		uintptr(ms),
		uintptr(unsafe.Pointer(&result)),
	)
	if r1 != 0 {
		logger.Info("broadcast WM_SETTINGCHANGE", "area", areaLabel(area), "result", result)
		return nil
	}

	errno, _ := e1.(syscall.Errno)
	if errno == windows.ERROR_TIMEOUT {
		logger.Warn("WM_SETTINGCHANGE broadcast timed out", "area", areaLabel(area), "timeout_ms", ms)
		return fmt.Errorf("%w after %dms (area %s): %w", ErrTimeout, ms, areaLabel(area), errno)
	}
	logger.Error("SendMessageTimeoutW failed", "area", areaLabel(area), "error", e1)
	return fmt.Errorf("broadcast: failed to broadcast WM_SETTINGCHANGE for '%s': %w", areaLabel(area), e1)
}
