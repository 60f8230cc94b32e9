//go:build !windows

package broadcast

import "time"

func settingChange(string, time.Duration) error { return ErrUnsupportedPlatform }
