//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

func statTimes(_ string, info os.FileInfo) (created, accessed time.Time) {
	attrs, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	created = time.Unix(0, attrs.CreationTime.Nanoseconds())
	accessed = time.Unix(0, attrs.LastAccessTime.Nanoseconds())
	return created, accessed
}
