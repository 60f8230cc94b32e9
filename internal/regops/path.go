package regops

import "strings"

// Sep is the canonical registry path separator.
const Sep = `\`

// JoinPath joins a prefix and a relative path. Forward slashes become
// backslashes, an empty side yields the other side unchanged, and the two
// are otherwise joined by exactly one separator. Two empty sides denote the
// hive root.
func JoinPath(prefix, path string) string {
	prefix = strings.ReplaceAll(prefix, "/", Sep)
	path = strings.ReplaceAll(path, "/", Sep)
	if prefix == "" {
		return path
	}
	if path == "" {
		return prefix
	}
	return strings.TrimRight(prefix, Sep) + Sep + strings.TrimLeft(path, Sep)
}

// SplitPath splits a resolved path into its parent and final segment.
// A single-segment path has an empty parent.
func SplitPath(path string) (parent, leaf string) {
	path = strings.TrimRight(strings.ReplaceAll(path, "/", Sep), Sep)
	i := strings.LastIndex(path, Sep)
	if i < 0 {
		return "", path
	}
	return path[:i], path[i+1:]
}
