package toolkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/fsbox/walk"
	"github.com/deepnoodle-ai/wonton/schema"
)

var (
	_ fsbox.TypedTool[*SearchFilesInput]          = &SearchFilesTool{}
	_ fsbox.TypedToolPreviewer[*SearchFilesInput] = &SearchFilesTool{}
)

// SearchFilesInput is the input for search_files. ExcludePatterns is a
// comma-separated list.
type SearchFilesInput struct {
	Path            string `json:"path"`
	Pattern         string `json:"pattern"`
	ExcludePatterns string `json:"excludePatterns,omitempty"`
}

// SearchFilesTool finds files whose names contain a pattern.
type SearchFilesTool struct {
	svc *filesystem.Service
}

// NewSearchFilesTool creates a new SearchFilesTool.
func NewSearchFilesTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*SearchFilesInput] {
	return fsbox.ToolAdapter(&SearchFilesTool{svc: svc})
}

func (t *SearchFilesTool) Name() string {
	return "search_files"
}

func (t *SearchFilesTool) Description() string {
	return `Recursively search for files whose names contain a pattern.

The match is case-insensitive and applies to file names only. excludePatterns is
a comma-separated list of glob patterns relative to the search path; a plain name
such as node_modules excludes that name at any depth. Directories that cannot be
read are skipped, so a search path that cannot be listed returns no matches.
Returns the full paths of all matching files. Only searches within allowed
directories.`
}

func (t *SearchFilesTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"path", "pattern"},
		Properties: map[string]*schema.Property{
			"path": {
				Type:        "string",
				Description: "Directory to search",
			},
			"pattern": {
				Type:        "string",
				Description: "Case-insensitive substring to look for in file names",
			},
			"excludePatterns": {
				Type:        "string",
				Description: "Comma-separated glob patterns to exclude",
			},
		},
	}
}

func (t *SearchFilesTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:          "Search Files",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
}

func (t *SearchFilesTool) PreviewCall(ctx context.Context, input *SearchFilesInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{
		Summary: fmt.Sprintf("Search %s for %q", input.Path, input.Pattern),
	}
}

func (t *SearchFilesTool) Call(ctx context.Context, input *SearchFilesInput) (*fsbox.ToolResult, error) {
	if input.Path == "" {
		return NewToolResultError("Error: path is required"), nil
	}
	results, err := t.svc.SearchFiles(ctx, input.Path, input.Pattern, walk.ParseExcludes(input.ExcludePatterns))
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	text := fmt.Sprintf("Found %d files matching '%s':\n%s", len(results), input.Pattern, strings.Join(results, "\n"))
	display := fmt.Sprintf("Found %d files matching %q", len(results), input.Pattern)
	return NewToolResultText(text).WithDisplay(display), nil
}
