package toolkit

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/wonton/schema"
)

var (
	_ fsbox.TypedTool[*WriteFileInput]          = &WriteFileTool{}
	_ fsbox.TypedToolPreviewer[*WriteFileInput] = &WriteFileTool{}
)

// WriteFileInput is the input for write_file.
type WriteFileInput struct {
	Path    string `json:"path"`
	Content string `json:"content"`
}

// WriteFileTool creates a file or replaces its content.
type WriteFileTool struct {
	svc *filesystem.Service
}

// NewWriteFileTool creates a new WriteFileTool.
func NewWriteFileTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*WriteFileInput] {
	return fsbox.ToolAdapter(&WriteFileTool{svc: svc})
}

func (t *WriteFileTool) Name() string {
	return "write_file"
}

func (t *WriteFileTool) Description() string {
	return `Create a new file or completely overwrite an existing file with new content.

Use with caution as it will overwrite existing files without warning.
The parent directory must already exist. Only works within allowed directories.`
}

func (t *WriteFileTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"path", "content"},
		Properties: map[string]*schema.Property{
			"path": {
				Type:        "string",
				Description: "Path of the file to write",
			},
			"content": {
				Type:        "string",
				Description: "Content to write to the file",
			},
		},
	}
}

func (t *WriteFileTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:           "Write File",
		DestructiveHint: true,
		IdempotentHint:  true,
	}
}

func (t *WriteFileTool) PreviewCall(ctx context.Context, input *WriteFileInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{
		Summary: fmt.Sprintf("Write %d bytes to %s", len(input.Content), input.Path),
	}
}

func (t *WriteFileTool) Call(ctx context.Context, input *WriteFileInput) (*fsbox.ToolResult, error) {
	if input.Path == "" {
		return NewToolResultError("Error: path is required"), nil
	}
	p, err := t.svc.WriteFile(ctx, input.Path, input.Content)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	return NewToolResultText(fmt.Sprintf("Successfully wrote to %s", p)), nil
}
