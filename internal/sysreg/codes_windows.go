//go:build windows

package sysreg

import "golang.org/x/sys/windows"

// Win32 error codes the registry layer branches on.
const (
	ErrorFileNotFound       = windows.ERROR_FILE_NOT_FOUND
	ErrorPathNotFound       = windows.ERROR_PATH_NOT_FOUND
	ErrorAccessDenied       = windows.ERROR_ACCESS_DENIED
	ErrorInvalidHandle      = windows.ERROR_INVALID_HANDLE
	ErrorInsufficientBuffer = windows.ERROR_INSUFFICIENT_BUFFER
	ErrorDirNotEmpty        = windows.ERROR_DIR_NOT_EMPTY
	ErrorMoreData           = windows.ERROR_MORE_DATA
	ErrorNoMoreItems        = windows.ERROR_NO_MORE_ITEMS
	ErrorKeyDeleted         = windows.ERROR_KEY_DELETED
	ErrorTimeout            = windows.ERROR_TIMEOUT
)
