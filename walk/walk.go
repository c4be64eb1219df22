// Package walk traverses directories beneath a validated root. Every entry
// is re-validated before it is reported or descended into, so a symlink
// inside the tree cannot lead a traversal outside the allowed directories.
package walk

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/deepnoodle-ai/fsbox/log"
	"github.com/deepnoodle-ai/fsbox/sandbox"
)

// EntryType distinguishes files from directories in a tree.
type EntryType string

const (
	EntryTypeFile      EntryType = "file"
	EntryTypeDirectory EntryType = "directory"
)

// TreeEntry is one node of a directory tree. Files serialize without a
// children key; directories always serialize children, empty or not.
type TreeEntry struct {
	Name     string       `json:"name"`
	Type     EntryType    `json:"type"`
	Children []*TreeEntry `json:"children,omitempty"`
}

func (e *TreeEntry) MarshalJSON() ([]byte, error) {
	if e.Type != EntryTypeDirectory {
		return json.Marshal(struct {
			Name string    `json:"name"`
			Type EntryType `json:"type"`
		}{e.Name, e.Type})
	}
	children := e.Children
	if children == nil {
		children = []*TreeEntry{}
	}
	return json.Marshal(struct {
		Name     string       `json:"name"`
		Type     EntryType    `json:"type"`
		Children []*TreeEntry `json:"children"`
	}{e.Name, e.Type, children})
}

// frame is one directory on the traversal stack.
type frame struct {
	dir     string // validated real path
	rel     string // slash-separated path relative to the walk root
	entries []fs.DirEntry
	next    int
	node    *TreeEntry
}

// stepFunc handles one entry of the frame on top of the stack. A non-nil
// return value is a directory to descend into before the next sibling.
type stepFunc func(parent *frame, entry fs.DirEntry) *frame

// traverse visits entries depth-first in listing order. It produces the same
// order as a recursive walk without growing the goroutine stack.
func traverse(ctx context.Context, root *frame, step stepFunc) error {
	logger := log.Ctx(ctx)
	active := map[string]bool{root.dir: true}
	stack := []*frame{root}

	for len(stack) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}
		top := stack[len(stack)-1]
		if top.next >= len(top.entries) {
			delete(active, top.dir)
			stack = stack[:len(stack)-1]
			continue
		}
		entry := top.entries[top.next]
		top.next++

		child := step(top, entry)
		if child == nil {
			continue
		}
		if active[child.dir] {
			logger.Debug("skipping directory cycle", "path", child.dir)
			continue
		}
		entries, err := os.ReadDir(child.dir)
		if err != nil {
			logger.Debug("skipping unreadable directory", "path", child.dir, "error", err)
			continue
		}
		child.entries = entries
		active[child.dir] = true
		stack = append(stack, child)
	}
	return nil
}

// resolveEntry validates an entry and stats its real location. ok is false
// when the entry must be skipped.
func resolveEntry(ctx context.Context, v *sandbox.Validator, parent *frame, entry fs.DirEntry) (string, fs.FileInfo, bool) {
	logger := log.Ctx(ctx)
	entryPath := filepath.Join(parent.dir, entry.Name())

	res := v.Resolve(entryPath)
	if !res.Allowed() {
		logger.Debug("skipping path", "path", entryPath, "status", res.Status, "reason", res.Reason)
		return "", nil, false
	}
	realPath := res.Path.String()
	info, err := os.Stat(realPath)
	if err != nil {
		logger.Debug("skipping path", "path", entryPath, "error", err)
		return "", nil, false
	}
	return realPath, info, true
}

// Search returns the real paths of regular files beneath root whose names
// contain the matcher's pattern. Entries that fail validation or cannot be
// read are skipped, as are entries whose walked or real path matches an
// exclude glob. Only a root that fails validation is an error.
func Search(ctx context.Context, v *sandbox.Validator, root string, m *Matcher) ([]string, error) {
	validRoot, err := v.Validate(root)
	if err != nil {
		return nil, err
	}
	results := []string{}

	entries, err := os.ReadDir(validRoot.String())
	if err != nil {
		log.Ctx(ctx).Warn("skipping unreadable directory", "path", validRoot.String(), "error", err)
		return results, nil
	}

	start := &frame{dir: validRoot.String(), entries: entries}
	err = traverse(ctx, start, func(parent *frame, entry fs.DirEntry) *frame {
		realPath, info, ok := resolveEntry(ctx, v, parent, entry)
		if !ok {
			return nil
		}
		rel := path.Join(parent.rel, entry.Name())
		if excluded(m, validRoot.String(), rel, realPath, info.IsDir()) {
			return nil
		}
		if m.Matches(entry.Name(), info.Mode().IsRegular()) {
			results = append(results, realPath)
		}
		if info.IsDir() {
			return &frame{dir: realPath, rel: rel}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// excluded tests both the walked path and, when it lies beneath root, the
// real path. A symlink into an excluded directory is excluded too.
func excluded(m *Matcher, root, rel, realPath string, dir bool) bool {
	if m.Excluded(rel, dir) {
		return true
	}
	realRel, err := filepath.Rel(root, realPath)
	if err != nil || realRel == "." || realRel == ".." || strings.HasPrefix(realRel, ".."+string(filepath.Separator)) {
		return false
	}
	return m.Excluded(filepath.ToSlash(realRel), dir)
}

// Tree builds the nested listing of root. Every directory is descended into.
// Entries that fail validation are omitted and directories that cannot be
// listed have no children. The root must validate and be listable.
func Tree(ctx context.Context, v *sandbox.Validator, root string) ([]*TreeEntry, error) {
	validRoot, err := v.Validate(root)
	if err != nil {
		return nil, err
	}
	entries, err := os.ReadDir(validRoot.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", validRoot, err)
	}

	top := &TreeEntry{Type: EntryTypeDirectory, Children: []*TreeEntry{}}
	start := &frame{dir: validRoot.String(), entries: entries, node: top}
	err = traverse(ctx, start, func(parent *frame, entry fs.DirEntry) *frame {
		realPath, info, ok := resolveEntry(ctx, v, parent, entry)
		if !ok {
			return nil
		}
		node := &TreeEntry{Name: entry.Name(), Type: EntryTypeFile}
		parent.node.Children = append(parent.node.Children, node)
		if !info.IsDir() {
			return nil
		}
		node.Type = EntryTypeDirectory
		node.Children = []*TreeEntry{}
		return &frame{dir: realPath, node: node}
	})
	if err != nil {
		return nil, err
	}
	return top.Children, nil
}
