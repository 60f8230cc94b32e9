//go:build !windows

package elevation

func integrityLevel() (uint32, error) { return 0, ErrUnsupportedPlatform }
