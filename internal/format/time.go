// Package format converts registry wire representations: FILETIME stamps
// and fixed-width integers.
package format

import (
	"time"
)

const (
	filetimeOffset = 116444736000000000 // difference between FILETIME epoch and Unix epoch in 100ns units
	filetimeUnit   = 100                // FILETIME units are 100ns
	ticksPerSecond = int64(time.Second / filetimeUnit)
)

// FiletimeToTime converts a Windows FILETIME value (100ns ticks since
// 1601-01-01 UTC) to a UTC time.Time. Stamps before 1970 are preserved.
func FiletimeToTime(v uint64) time.Time {
	ticks := int64(v - filetimeOffset) // wraps to the signed delta for pre-1970 stamps
	sec := ticks / ticksPerSecond
	rem := ticks % ticksPerSecond
	if rem < 0 {
		sec--
		rem += ticksPerSecond
	}
	return time.Unix(sec, rem*filetimeUnit).UTC()
}

// TimeToFiletime converts a time.Time to a Windows FILETIME value.
// Times before 1601 clamp to zero.
func TimeToFiletime(t time.Time) uint64 {
	sec := t.Unix()
	ticks := sec*ticksPerSecond + int64(t.Nanosecond())/filetimeUnit
	if ticks < -filetimeOffset {
		return 0
	}
	return uint64(ticks + filetimeOffset)
}
