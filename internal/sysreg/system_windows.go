//go:build windows

package sysreg

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"

	"github.com/joshuapare/regkit/internal/regcodec"
	"github.com/joshuapare/regkit/pkg/types"
)

var (
	modadvapi32 = windows.NewLazySystemDLL("advapi32.dll")

	procRegSetValueExW = modadvapi32.NewProc("RegSetValueExW")
	procRegEnumValueW  = modadvapi32.NewProc("RegEnumValueW")
)

// initialDataSize is the first buffer size tried for value data; calls
// that report ERROR_MORE_DATA retry with the size the OS asked for.
const initialDataSize = 256

// NewSystem returns the host registry.
func NewSystem() Primitive { return system{} }

type system struct{}

func (system) Open(hive types.Hive, path string, access uint32) (Handle, error) {
	k, err := registry.OpenKey(registry.Key(hive), path, access)
	if err != nil {
		return 0, err
	}
	return Handle(k), nil
}

func (system) Create(hive types.Hive, path string, access uint32) (Handle, error) {
	k, _, err := registry.CreateKey(registry.Key(hive), path, access)
	if err != nil {
		return 0, err
	}
	return Handle(k), nil
}

func (system) Close(h Handle) error {
	return registry.Key(h).Close()
}

func (system) QueryValue(h Handle, name string) (any, types.RegType, error) {
	data := make([]byte, initialDataSize)
	for {
		n, typ, err := registry.Key(h).GetValue(name, data)
		if errors.Is(err, registry.ErrShortBuffer) && n > len(data) {
			data = make([]byte, n)
			continue
		}
		if err != nil {
			return nil, 0, err
		}
		rt := types.RegType(typ)
		v, err := regcodec.Decode(rt, data[:n])
		return v, rt, err
	}
}

func (system) SetValue(h Handle, name string, typ types.RegType, data any) error {
	pname, err := syscall.UTF16PtrFromString(name)
	if err != nil {
		return err
	}
	raw, err := regcodec.Encode(typ, data)
	if err != nil {
		return err
	}
	var pdata *byte
	if len(raw) > 0 {
		pdata = &raw[0]
	}
	r1, _, _ := procRegSetValueExW.Call(
		uintptr(h),
		uintptr(unsafe.Pointer(pname)),
		0,
		uintptr(typ),
		uintptr(unsafe.Pointer(pdata)),
		uintptr(len(raw)),
	)
	if r1 != 0 {
		return syscall.Errno(r1)
	}
	return nil
}

func (system) EnumValue(h Handle, index int) (string, any, types.RegType, error) {
	name := make([]uint16, types.WindowsMaxValueNameLen+1)
	data := make([]byte, initialDataSize)
	for {
		nameLen := uint32(len(name))
		dataLen := uint32(len(data))
		var typ uint32
		r1, _, _ := procRegEnumValueW.Call(
			uintptr(h),
			uintptr(uint32(index)),
			uintptr(unsafe.Pointer(&name[0])),
			uintptr(unsafe.Pointer(&nameLen)),
			0,
			uintptr(unsafe.Pointer(&typ)),
			uintptr(unsafe.Pointer(&data[0])),
			uintptr(unsafe.Pointer(&dataLen)),
		)
		errno := syscall.Errno(r1)
		if errno == ErrorMoreData && int(dataLen) > len(data) {
			data = make([]byte, dataLen)
			continue
		}
		if r1 != 0 {
			return "", nil, 0, errno
		}
		rt := types.RegType(typ)
		v, err := regcodec.Decode(rt, data[:dataLen])
		return windows.UTF16ToString(name[:nameLen]), v, rt, err
	}
}

func (system) EnumKey(h Handle, index int) (string, error) {
	name := make([]uint16, types.WindowsMaxKeyNameLen+1)
	nameLen := uint32(len(name))
	err := windows.RegEnumKeyEx(windows.Handle(h), uint32(index), &name[0], &nameLen, nil, nil, nil, nil)
	if err != nil {
		return "", err
	}
	return windows.UTF16ToString(name[:nameLen]), nil
}

func (system) QueryInfo(h Handle) (Info, error) {
	var info Info
	var ft windows.Filetime
	err := windows.RegQueryInfoKey(windows.Handle(h), nil, nil, nil,
		&info.Subkeys, nil, nil, &info.Values, nil, nil, nil, &ft)
	if err != nil {
		return Info{}, err
	}
	info.LastWrite = uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
	return info, nil
}

func (system) DeleteValue(h Handle, name string) error {
	return registry.Key(h).DeleteValue(name)
}

func (system) DeleteKey(parent Handle, name string) error {
	return registry.DeleteKey(registry.Key(parent), name)
}
