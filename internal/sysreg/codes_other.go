//go:build !windows

package sysreg

import "syscall"

// Win32 error codes the registry layer branches on. The values match
// winerror.h so in-memory registries report the same codes as Windows.
const (
	ErrorFileNotFound       syscall.Errno = 2
	ErrorPathNotFound       syscall.Errno = 3
	ErrorAccessDenied       syscall.Errno = 5
	ErrorInvalidHandle      syscall.Errno = 6
	ErrorInsufficientBuffer syscall.Errno = 122
	ErrorDirNotEmpty        syscall.Errno = 145
	ErrorMoreData           syscall.Errno = 234
	ErrorNoMoreItems        syscall.Errno = 259
	ErrorKeyDeleted         syscall.Errno = 1018
	ErrorTimeout            syscall.Errno = 1460
)
