package sandbox

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AllowedRoots is the ordered, immutable set of directories that operations
// are confined to. Every entry is absolute, clean and symlink-resolved, so
// containment can be decided by comparing path segments.
type AllowedRoots struct {
	dirs []string
}

// NewAllowedRoots canonicalizes the given directories. Each entry may use the
// ~ home shorthand, must exist and must be a directory. Duplicates are
// dropped and the original order is kept.
func NewAllowedRoots(dirs []string) (*AllowedRoots, error) {
	if len(dirs) == 0 {
		return nil, fmt.Errorf("no allowed directories configured")
	}
	seen := make(map[string]bool, len(dirs))
	canonical := make([]string, 0, len(dirs))
	for _, dir := range dirs {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		expanded, err := ExpandHome(dir)
		if err != nil {
			return nil, err
		}
		abs, err := filepath.Abs(expanded)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve allowed directory %q: %w", dir, err)
		}
		real, err := filepath.EvalSymlinks(abs)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve allowed directory %q: %w", dir, err)
		}
		info, err := os.Stat(real)
		if err != nil {
			return nil, fmt.Errorf("failed to stat allowed directory %q: %w", dir, err)
		}
		if !info.IsDir() {
			return nil, fmt.Errorf("allowed directory %q is not a directory", dir)
		}
		if seen[real] {
			continue
		}
		seen[real] = true
		canonical = append(canonical, real)
	}
	if len(canonical) == 0 {
		return nil, fmt.Errorf("no allowed directories configured")
	}
	return &AllowedRoots{dirs: canonical}, nil
}

// Dirs returns a copy of the canonical root directories.
func (r *AllowedRoots) Dirs() []string {
	out := make([]string, len(r.dirs))
	copy(out, r.dirs)
	return out
}

// Contains reports whether path is one of the roots or lies beneath one.
// path must already be absolute and clean.
func (r *AllowedRoots) Contains(path string) bool {
	for _, dir := range r.dirs {
		if within(dir, path) {
			return true
		}
	}
	return false
}

// within compares whole path segments, so /data-2 is not inside /data.
func within(root, path string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false // Different volumes on Windows
	}
	if rel == "." {
		return true
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return false
	}
	return !filepath.IsAbs(rel)
}

// ExpandHome replaces a leading ~ or ~/ with the current user's home
// directory. Other paths are returned unchanged.
func ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, "~"+string(filepath.Separator)) {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to expand home directory: %w", err)
	}
	if path == "~" {
		return home, nil
	}
	return filepath.Join(home, path[2:]), nil
}
