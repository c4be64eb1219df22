package filesystem

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// FileInfo is a point-in-time snapshot of a file's metadata.
type FileInfo struct {
	Size        int64     `json:"size"`
	Created     time.Time `json:"created"`
	Modified    time.Time `json:"modified"`
	Accessed    time.Time `json:"accessed"`
	IsDirectory bool      `json:"isDirectory"`
	IsFile      bool      `json:"isFile"`
	// Permissions holds the permission bits as three octal digits, e.g. "644".
	Permissions string `json:"permissions"`
	// MimeType is detected from content and only set for regular files.
	MimeType string `json:"mimeType,omitempty"`
}

// GetFileInfo returns metadata for the file or directory at path. Symlinks
// are resolved by validation, so the snapshot describes the target.
func (s *Service) GetFileInfo(ctx context.Context, path string) (*FileInfo, error) {
	p, err := s.validate(path)
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(p.String())
	if err != nil {
		return nil, wrapIOError("stat", p, err)
	}

	created, accessed := statTimes(p.String(), info)
	fi := &FileInfo{
		Size:        info.Size(),
		Created:     created,
		Modified:    info.ModTime(),
		Accessed:    accessed,
		IsDirectory: info.IsDir(),
		IsFile:      info.Mode().IsRegular(),
		Permissions: fmt.Sprintf("%03o", info.Mode().Perm()),
	}
	if fi.IsFile {
		if mtype, err := mimetype.DetectFile(p.String()); err == nil {
			fi.MimeType = mtype.String()
		} else if s.logger != nil {
			s.logger.Debug("mime detection failed", "path", p.String(), "error", err)
		}
	}
	return fi, nil
}
