package filesystem

import (
	"context"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/deepnoodle-ai/fsbox"
)

// ReadFile returns the content of a UTF-8 text file.
func (s *Service) ReadFile(ctx context.Context, path string) (string, error) {
	p, err := s.validate(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(p.String())
	if err != nil {
		return "", wrapIOError("read", p, err)
	}
	if !utf8.Valid(data) {
		return "", fmt.Errorf("failed to read %s: %w: file is not valid UTF-8 text", p, fsbox.ErrIOFailure)
	}
	return string(data), nil
}

// ReadMultipleFiles reads each path independently. The result has one entry
// per path, in order: either "<path>:\n<content>" or an inline error. A
// failure on one path does not affect the others.
func (s *Service) ReadMultipleFiles(ctx context.Context, paths []string) []string {
	results := make([]string, len(paths))
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			results[i] = fmt.Sprintf("Error reading %s: %v", path, err)
			continue
		}
		content, err := s.ReadFile(ctx, path)
		if err != nil {
			results[i] = fmt.Sprintf("Error reading %s: %v", path, err)
			continue
		}
		results[i] = fmt.Sprintf("%s:\n%s", path, content)
	}
	return results
}
