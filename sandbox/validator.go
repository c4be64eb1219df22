package sandbox

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/deepnoodle-ai/fsbox"
)

// Status is the outcome of resolving a requested path.
type Status int

const (
	StatusAllowed Status = iota
	StatusAccessDenied
	StatusNotFound
)

func (s Status) String() string {
	switch s {
	case StatusAllowed:
		return "allowed"
	case StatusAccessDenied:
		return "access denied"
	case StatusNotFound:
		return "not found"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Path is an absolute path that has passed validation. The zero value is
// empty and only a Validator produces non-empty values.
type Path struct {
	p string
}

func (p Path) String() string {
	return p.p
}

// IsZero reports whether p was not produced by a successful validation.
func (p Path) IsZero() bool {
	return p.p == ""
}

// Resolution is the typed result of Validator.Resolve.
type Resolution struct {
	Path   Path
	Status Status
	Reason string
	// Err is the underlying cause, if any.
	Err error
}

// Allowed reports whether the path may be operated on.
func (r Resolution) Allowed() bool {
	return r.Status == StatusAllowed
}

// PathError is returned when a path is rejected. It unwraps to
// fsbox.ErrAccessDenied or fsbox.ErrNotFound.
type PathError struct {
	Path   string
	Reason string
	Err    error
	cause  error
}

func (e *PathError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %s - %s: %v", e.Err, e.Path, e.Reason, e.cause)
	}
	return fmt.Sprintf("%s: %s - %s", e.Err, e.Path, e.Reason)
}

func (e *PathError) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Err, e.cause}
	}
	return []error{e.Err}
}

// Validator confines paths to a set of allowed roots. It holds no mutable
// state and is safe for concurrent use.
type Validator struct {
	roots *AllowedRoots
}

// NewValidator returns a validator for the given roots.
func NewValidator(roots *AllowedRoots) *Validator {
	return &Validator{roots: roots}
}

// Roots returns the canonical allowed directories.
func (v *Validator) Roots() []string {
	return v.roots.Dirs()
}

// Validate resolves the requested path and returns it when it is allowed.
// Rejections are returned as *PathError.
func (v *Validator) Validate(requested string) (Path, error) {
	res := v.Resolve(requested)
	switch res.Status {
	case StatusAllowed:
		return res.Path, nil
	case StatusNotFound:
		return Path{}, &PathError{Path: requested, Reason: res.Reason, Err: fsbox.ErrNotFound, cause: res.Err}
	default:
		return Path{}, &PathError{Path: requested, Reason: res.Reason, Err: fsbox.ErrAccessDenied, cause: res.Err}
	}
}

// Resolve decides whether the requested path may be used.
//
// Existing paths resolve to their real location, which must itself be
// inside a root. A path that does not exist yet is allowed when its parent
// exists and resolves inside a root; the returned path is then the
// absolute, non-resolved form of the request.
func (v *Validator) Resolve(requested string) Resolution {
	expanded, err := ExpandHome(requested)
	if err != nil {
		return denied("failed to expand home directory", err)
	}
	absPath, err := filepath.Abs(expanded)
	if err != nil {
		return denied("failed to resolve absolute path", err)
	}

	canonical, err := resolveLenient(absPath)
	if err != nil {
		return denied("failed to resolve path", err)
	}
	if !v.roots.Contains(canonical) {
		return denied("path outside allowed directories", nil)
	}

	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		if !v.roots.Contains(realPath) {
			return denied("symlink target outside allowed directories", nil)
		}
		return allowed(realPath)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return denied("failed to resolve symlinks", err)
	}

	// The target does not exist. A dangling symlink in the final position
	// would be followed by a later create, so its target is never trusted.
	if info, lerr := os.Lstat(absPath); lerr == nil && info.Mode()&fs.ModeSymlink != 0 {
		return denied("symlink target outside allowed directories", nil)
	}

	realParent, err := filepath.EvalSymlinks(filepath.Dir(absPath))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Resolution{Status: StatusNotFound, Reason: "parent directory does not exist", Err: err}
		}
		return denied("failed to resolve parent directory", err)
	}
	if !v.roots.Contains(realParent) {
		return denied("parent directory outside allowed directories", nil)
	}
	return allowed(absPath)
}

func allowed(path string) Resolution {
	return Resolution{Path: Path{p: path}, Status: StatusAllowed}
}

func denied(reason string, err error) Resolution {
	return Resolution{Status: StatusAccessDenied, Reason: reason, Err: err}
}

// resolveLenient resolves symlinks in the longest existing prefix of
// absPath and re-appends the components that do not exist yet.
func resolveLenient(absPath string) (string, error) {
	realPath, err := filepath.EvalSymlinks(absPath)
	if err == nil {
		return realPath, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	dir := absPath
	var parts []string
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		parts = append([]string{filepath.Base(dir)}, parts...)
		dir = parent

		if _, err := os.Stat(dir); err == nil {
			realDir, err := filepath.EvalSymlinks(dir)
			if err != nil {
				return "", err
			}
			return filepath.Join(append([]string{realDir}, parts...)...), nil
		}
	}
	return absPath, nil
}
