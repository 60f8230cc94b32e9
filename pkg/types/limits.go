package types

// Windows Registry name limits (measured in UTF-16 code units, not bytes).
// Enumeration buffers are sized from these.
const (
	// WindowsMaxKeyNameLen is the hard limit for registry key names.
	WindowsMaxKeyNameLen = 255

	// WindowsMaxValueNameLen is the hard limit for registry value names.
	WindowsMaxValueNameLen = 16383
)
