//go:build !windows

package envexpand

import (
	"os"
	"strings"
)

func expand(s string) (string, error) {
	return ExpandFunc(s, lookupFold), nil
}

// lookupFold matches variable names case-insensitively, like Windows does.
func lookupFold(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	for _, kv := range os.Environ() {
		k, v, ok := strings.Cut(kv, "=")
		if ok && strings.EqualFold(k, name) {
			return v, true
		}
	}
	return "", false
}
