package types

import "time"

// KeyStat is the metadata reported for a single key.
type KeyStat struct {
	SubkeyN   int       // number of immediate subkeys
	ValueN    int       // number of values
	LastWrite time.Time // last modification, UTC
}

// Empty reports whether the key has neither subkeys nor values.
func (s KeyStat) Empty() bool { return s.SubkeyN == 0 && s.ValueN == 0 }
