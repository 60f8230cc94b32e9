//go:build windows

package elevation

import (
	"errors"
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/joshuapare/regkit/internal/logger"
)

func integrityLevel() (uint32, error) {
	var tok windows.Token
	if err := windows.OpenProcessToken(windows.CurrentProcess(), windows.TOKEN_QUERY, &tok); err != nil {
		logger.Error("OpenProcessToken failed", "error", err)
		return 0, fmt.Errorf("elevation: open process token: %w", err)
	}
	defer tok.Close()

	// Size query; the only acceptable failure is the buffer being too small.
	var n uint32
	err := windows.GetTokenInformation(tok, windows.TokenIntegrityLevel, nil, 0, &n)
	if err == nil || !errors.Is(err, windows.ERROR_INSUFFICIENT_BUFFER) {
		if err == nil {
			err = errors.New("size query unexpectedly succeeded")
		}
		logger.Error("GetTokenInformation size query failed", "error", err)
		return 0, fmt.Errorf("elevation: query token integrity size: %w", err)
	}
	if n == 0 {
		return 0, errors.New("elevation: token integrity information has zero size")
	}

	buf := make([]byte, n)
	if err := windows.GetTokenInformation(tok, windows.TokenIntegrityLevel, &buf[0], n, &n); err != nil {
		logger.Error("GetTokenInformation failed", "error", err)
		return 0, fmt.Errorf("elevation: query token integrity: %w", err)
	}

	label := (*windows.Tokenmandatorylabel)(unsafe.Pointer(&buf[0]))
	sid := label.Label.Sid
	if sid == nil || !sid.IsValid() {
		logger.Error("token integrity SID is invalid")
		return 0, errors.New("elevation: token integrity SID is invalid")
	}
	count := sid.SubAuthorityCount()
	if count == 0 {
		logger.Error("token integrity SID has no sub-authorities")
		return 0, errors.New("elevation: token integrity SID has no sub-authorities")
	}
	rid := sid.SubAuthority(uint32(count - 1))
	logger.Debug("process integrity level", "rid", fmt.Sprintf("0x%X", rid), "name", LevelName(rid))
	return rid, nil
}
