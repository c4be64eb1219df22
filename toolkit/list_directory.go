package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/wonton/schema"
)

var (
	_ fsbox.TypedTool[*ListDirectoryInput]          = &ListDirectoryTool{}
	_ fsbox.TypedToolPreviewer[*ListDirectoryInput] = &ListDirectoryTool{}
	_ fsbox.TypedTool[*DirectoryTreeInput]          = &DirectoryTreeTool{}
	_ fsbox.TypedToolPreviewer[*DirectoryTreeInput] = &DirectoryTreeTool{}
)

// ListDirectoryInput is the input for list_directory.
type ListDirectoryInput struct {
	Path string `json:"path"`
}

// ListDirectoryTool lists the immediate entries of a directory.
type ListDirectoryTool struct {
	svc *filesystem.Service
}

// NewListDirectoryTool creates a new ListDirectoryTool.
func NewListDirectoryTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*ListDirectoryInput] {
	return fsbox.ToolAdapter(&ListDirectoryTool{svc: svc})
}

func (t *ListDirectoryTool) Name() string {
	return "list_directory"
}

func (t *ListDirectoryTool) Description() string {
	return `Get a listing of all files and directories in a specified path.

Results distinguish files and directories with [FILE] and [DIR] prefixes.
Only works within allowed directories.`
}

func (t *ListDirectoryTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"path"},
		Properties: map[string]*schema.Property{
			"path": {
				Type:        "string",
				Description: "Path of the directory to list",
			},
		},
	}
}

func (t *ListDirectoryTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:          "List Directory",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
}

func (t *ListDirectoryTool) PreviewCall(ctx context.Context, input *ListDirectoryInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{Summary: fmt.Sprintf("List %s", input.Path)}
}

func (t *ListDirectoryTool) Call(ctx context.Context, input *ListDirectoryInput) (*fsbox.ToolResult, error) {
	if input.Path == "" {
		return NewToolResultError("Error: path is required"), nil
	}
	entries, err := t.svc.ListDirectory(ctx, input.Path)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error listing directory %s: %v", input.Path, err)), nil
	}
	lines := make([]string, 0, len(entries))
	for _, entry := range entries {
		lines = append(lines, entry.String())
	}
	display := fmt.Sprintf("Listed %d entries in %s", len(entries), input.Path)
	return NewToolResultText(strings.Join(lines, "\n")).WithDisplay(display), nil
}

// DirectoryTreeInput is the input for directory_tree.
type DirectoryTreeInput struct {
	Path string `json:"path"`
}

// DirectoryTreeTool returns the recursive structure of a directory as JSON.
type DirectoryTreeTool struct {
	svc *filesystem.Service
}

// NewDirectoryTreeTool creates a new DirectoryTreeTool.
func NewDirectoryTreeTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*DirectoryTreeInput] {
	return fsbox.ToolAdapter(&DirectoryTreeTool{svc: svc})
}

func (t *DirectoryTreeTool) Name() string {
	return "directory_tree"
}

func (t *DirectoryTreeTool) Description() string {
	return `Get a recursive tree view of files and directories as a JSON structure.

Each entry includes 'name' and 'type' (file or directory). Directories also have
a 'children' array, which is empty for empty directories. Files have no children
field. Only works within allowed directories.`
}

func (t *DirectoryTreeTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"path"},
		Properties: map[string]*schema.Property{
			"path": {
				Type:        "string",
				Description: "Path of the directory to describe",
			},
		},
	}
}

func (t *DirectoryTreeTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:          "Directory Tree",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
}

func (t *DirectoryTreeTool) PreviewCall(ctx context.Context, input *DirectoryTreeInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{Summary: fmt.Sprintf("Build tree of %s", input.Path)}
}

func (t *DirectoryTreeTool) Call(ctx context.Context, input *DirectoryTreeInput) (*fsbox.ToolResult, error) {
	if input.Path == "" {
		return NewToolResultError("Error: path is required"), nil
	}
	tree, err := t.svc.DirectoryTree(ctx, input.Path)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	data, err := json.MarshalIndent(tree, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode directory tree: %w", err)
	}
	return NewToolResultText(string(data)), nil
}
