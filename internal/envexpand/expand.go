// Package envexpand substitutes %NAME% environment references, the way
// REG_EXPAND_SZ values are resolved at read time.
package envexpand

import (
	"strings"
)

// Expand replaces %NAME% references in s with values from the process
// environment. Unknown references are left as written.
func Expand(s string) (string, error) {
	return expand(s)
}

// ExpandFunc performs the substitution against an arbitrary lookup. It is
// the non-Windows implementation of Expand and is exported for callers that
// resolve against something other than the process environment.
func ExpandFunc(s string, lookup func(string) (string, bool)) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for {
		start := strings.IndexByte(s, '%')
		if start < 0 {
			b.WriteString(s)
			break
		}
		end := strings.IndexByte(s[start+1:], '%')
		if end < 0 {
			b.WriteString(s)
			break
		}
		end += start + 1
		name := s[start+1 : end]
		if name == "" {
			// "%%" is not a reference; keep the first % and rescan from the second.
			b.WriteString(s[:start+1])
			s = s[start+1:]
			continue
		}
		if val, ok := lookup(name); ok {
			b.WriteString(s[:start])
			b.WriteString(val)
			s = s[end+1:]
			continue
		}
		// Unknown: keep "%NAME" literally and let the closing % start the next scan.
		b.WriteString(s[:end])
		s = s[end:]
	}
	return b.String()
}
