//go:build !windows

package sysreg

import "github.com/joshuapare/regkit/pkg/types"

// NewSystem returns the host registry. Outside Windows every call fails
// with ErrUnsupportedPlatform.
func NewSystem() Primitive { return unsupported{} }

type unsupported struct{}

func (unsupported) Open(types.Hive, string, uint32) (Handle, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupported) Create(types.Hive, string, uint32) (Handle, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupported) Close(Handle) error { return ErrUnsupportedPlatform }

func (unsupported) QueryValue(Handle, string) (any, types.RegType, error) {
	return nil, 0, ErrUnsupportedPlatform
}

func (unsupported) SetValue(Handle, string, types.RegType, any) error {
	return ErrUnsupportedPlatform
}

func (unsupported) EnumValue(Handle, int) (string, any, types.RegType, error) {
	return "", nil, 0, ErrUnsupportedPlatform
}

func (unsupported) EnumKey(Handle, int) (string, error) { return "", ErrUnsupportedPlatform }

func (unsupported) QueryInfo(Handle) (Info, error) { return Info{}, ErrUnsupportedPlatform }

func (unsupported) DeleteValue(Handle, string) error { return ErrUnsupportedPlatform }

func (unsupported) DeleteKey(Handle, string) error { return ErrUnsupportedPlatform }
