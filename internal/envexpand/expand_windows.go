//go:build windows

package envexpand

import (
	"fmt"

	"golang.org/x/sys/windows/registry"
)

// expand uses ExpandEnvironmentStringsW, which already handles buffer growth.
func expand(s string) (string, error) {
	out, err := registry.ExpandString(s)
	if err != nil {
		return "", fmt.Errorf("envexpand: failed to expand environment strings for %q: %w", s, err)
	}
	return out, nil
}
