// Package elevation reports the mandatory integrity level of the current
// process token.
package elevation

import (
	"errors"
	"fmt"
)

// Mandatory integrity level RIDs (the last sub-authority of the token's
// integrity SID).
const (
	UntrustedRID        uint32 = 0x0000
	LowRID              uint32 = 0x1000
	MediumRID           uint32 = 0x2000
	MediumPlusRID       uint32 = 0x2500
	HighRID             uint32 = 0x3000
	SystemRID           uint32 = 0x4000
	ProtectedProcessRID uint32 = 0x5000
)

var levelNames = map[uint32]string{
	UntrustedRID:        "Untrusted",
	LowRID:              "Low",
	MediumRID:           "Medium",
	MediumPlusRID:       "Medium Plus",
	HighRID:             "High",
	SystemRID:           "System",
	ProtectedProcessRID: "Protected Process",
}

// ErrUnsupportedPlatform is returned on hosts without Windows process tokens.
var ErrUnsupportedPlatform = errors.New("elevation: integrity levels are only available on Windows")

// LevelName returns the display name of an integrity RID.
func LevelName(rid uint32) string {
	if name, ok := levelNames[rid]; ok {
		return name
	}
	return fmt.Sprintf("Unknown(0x%X)", rid)
}

// Elevated reports whether rid is High or above.
func Elevated(rid uint32) bool { return rid >= HighRID }

// IsElevated reports whether the current process runs at High integrity or
// above, i.e. as an administrator past UAC.
func IsElevated() (bool, error) {
	rid, err := IntegrityLevel()
	if err != nil {
		return false, err
	}
	return Elevated(rid), nil
}

// IntegrityLevel returns the integrity RID of the current process token.
func IntegrityLevel() (uint32, error) {
	return integrityLevel()
}
