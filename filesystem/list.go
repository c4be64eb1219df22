package filesystem

import (
	"context"
	"os"
	"path/filepath"

	"github.com/deepnoodle-ai/fsbox/walk"
)

// DirEntry is one entry of a single-level directory listing.
type DirEntry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"isDirectory"`
}

func (e DirEntry) String() string {
	if e.IsDir {
		return "[DIR] " + e.Name
	}
	return "[FILE] " + e.Name
}

// ListDirectory lists the immediate entries of a directory. Symlinks are
// followed to decide whether an entry is a directory.
func (s *Service) ListDirectory(ctx context.Context, path string) ([]DirEntry, error) {
	p, err := s.validate(path)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(p.String())
	if err != nil {
		return nil, wrapIOError("list directory", p, err)
	}
	listing := make([]DirEntry, 0, len(entries))
	for _, entry := range entries {
		isDir := entry.IsDir()
		if entry.Type()&os.ModeSymlink != 0 {
			if info, err := os.Stat(filepath.Join(p.String(), entry.Name())); err == nil {
				isDir = info.IsDir()
			}
		}
		listing = append(listing, DirEntry{Name: entry.Name(), IsDir: isDir})
	}
	return listing, nil
}

// DirectoryTree returns the recursive listing of a directory.
func (s *Service) DirectoryTree(ctx context.Context, path string) ([]*walk.TreeEntry, error) {
	p, err := s.validate(path)
	if err != nil {
		return nil, err
	}
	tree, err := walk.Tree(s.withLogger(ctx), s.validator, p.String())
	if err != nil {
		return nil, wrapIOError("build tree for", p, err)
	}
	return tree, nil
}

// SearchFiles returns the real paths of regular files beneath path whose
// names contain pattern, case-insensitively. Entries matching an exclude
// glob are skipped and excluded directories are not descended into.
func (s *Service) SearchFiles(ctx context.Context, path, pattern string, excludes []string) ([]string, error) {
	p, err := s.validate(path)
	if err != nil {
		return nil, err
	}
	m, err := walk.NewMatcher(pattern, excludes)
	if err != nil {
		return nil, err
	}
	results, err := walk.Search(s.withLogger(ctx), s.validator, p.String(), m)
	if err != nil {
		return nil, wrapIOError("search", p, err)
	}
	return results, nil
}
