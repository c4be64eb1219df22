//go:build !linux && !darwin && !windows

package filesystem

import (
	"os"
	"time"
)

// statTimes falls back to the modification time where the platform stat
// layout is not known.
func statTimes(_ string, info os.FileInfo) (created, accessed time.Time) {
	return info.ModTime(), info.ModTime()
}
