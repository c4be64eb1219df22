//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// statTimes reports the birth time as the creation time when the kernel and
// filesystem provide one, and the inode change time otherwise.
func statTimes(path string, info os.FileInfo) (created, accessed time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	accessed = time.Unix(int64(st.Atim.Sec), int64(st.Atim.Nsec))
	if btime, ok := birthTime(path); ok {
		return btime, accessed
	}
	created = time.Unix(int64(st.Ctim.Sec), int64(st.Ctim.Nsec))
	return created, accessed
}

// birthTime reads the birth time with statx. It reports false on kernels
// without statx and on filesystems that do not record a birth time.
func birthTime(path string) (time.Time, bool) {
	var stx unix.Statx_t
	if err := unix.Statx(unix.AT_FDCWD, path, unix.AT_STATX_SYNC_AS_STAT, unix.STATX_BTIME, &stx); err != nil {
		return time.Time{}, false
	}
	if stx.Mask&unix.STATX_BTIME == 0 {
		return time.Time{}, false
	}
	return time.Unix(stx.Btime.Sec, int64(stx.Btime.Nsec)), true
}
