package filesystem

import (
	"context"
	"io/fs"
	"os"

	"github.com/deepnoodle-ai/fsbox/sandbox"
)

// MoveFile renames source to destination. It never replaces an existing
// destination; that case fails with an error matching fs.ErrExist.
func (s *Service) MoveFile(ctx context.Context, source, destination string) (sandbox.Path, sandbox.Path, error) {
	src, err := s.validate(source)
	if err != nil {
		return sandbox.Path{}, sandbox.Path{}, err
	}
	dst, err := s.validate(destination)
	if err != nil {
		return sandbox.Path{}, sandbox.Path{}, err
	}
	if err := renameNoReplace(src.String(), dst.String()); err != nil {
		return sandbox.Path{}, sandbox.Path{}, wrapIOError("move", src, err)
	}
	return src, dst, nil
}

// renameChecked is the portable fallback. The existence check and the
// rename are two steps, so a destination created in between is replaced.
func renameChecked(src, dst string) error {
	if _, err := os.Lstat(dst); err == nil {
		return &os.LinkError{Op: "rename", Old: src, New: dst, Err: fs.ErrExist}
	}
	return os.Rename(src, dst)
}
