package filesystem

import (
	"context"
	"os"

	"github.com/deepnoodle-ai/fsbox/patch"
	"github.com/deepnoodle-ai/fsbox/sandbox"
)

// WriteFile creates or truncates the file at path and writes content. New
// files get mode 0644. The parent directory must already exist.
func (s *Service) WriteFile(ctx context.Context, path, content string) (sandbox.Path, error) {
	p, err := s.validate(path)
	if err != nil {
		return sandbox.Path{}, err
	}
	if err := os.WriteFile(p.String(), []byte(content), 0o644); err != nil {
		return sandbox.Path{}, wrapIOError("write", p, err)
	}
	return p, nil
}

// EditFile applies the edits to a file and returns the fenced unified diff.
// With dryRun the file is left untouched.
func (s *Service) EditFile(ctx context.Context, path string, edits []patch.Edit, dryRun bool) (string, error) {
	p, err := s.validate(path)
	if err != nil {
		return "", err
	}
	diff, err := patch.ApplyFile(p.String(), edits, dryRun)
	if err != nil {
		return "", wrapIOError("edit", p, err)
	}
	return diff, nil
}

// CreateDirectory creates the directory. It succeeds if the directory
// already exists. Like every other path, the parent must exist.
func (s *Service) CreateDirectory(ctx context.Context, path string) (sandbox.Path, error) {
	p, err := s.validate(path)
	if err != nil {
		return sandbox.Path{}, err
	}
	if err := os.MkdirAll(p.String(), 0o755); err != nil {
		return sandbox.Path{}, wrapIOError("create directory", p, err)
	}
	return p, nil
}
