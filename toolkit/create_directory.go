package toolkit

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/wonton/schema"
)

var (
	_ fsbox.TypedTool[*CreateDirectoryInput]          = &CreateDirectoryTool{}
	_ fsbox.TypedToolPreviewer[*CreateDirectoryInput] = &CreateDirectoryTool{}
)

// CreateDirectoryInput is the input for create_directory.
type CreateDirectoryInput struct {
	Path string `json:"path"`
}

// CreateDirectoryTool creates a directory, succeeding when it already
// exists.
type CreateDirectoryTool struct {
	svc *filesystem.Service
}

// NewCreateDirectoryTool creates a new CreateDirectoryTool.
func NewCreateDirectoryTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*CreateDirectoryInput] {
	return fsbox.ToolAdapter(&CreateDirectoryTool{svc: svc})
}

func (t *CreateDirectoryTool) Name() string {
	return "create_directory"
}

func (t *CreateDirectoryTool) Description() string {
	return "Create a new directory. Succeeds silently if the directory already exists. Only works within allowed directories."
}

func (t *CreateDirectoryTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"path"},
		Properties: map[string]*schema.Property{
			"path": {
				Type:        "string",
				Description: "Path of the directory to create",
			},
		},
	}
}

func (t *CreateDirectoryTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:          "Create Directory",
		IdempotentHint: true,
	}
}

func (t *CreateDirectoryTool) PreviewCall(ctx context.Context, input *CreateDirectoryInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{Summary: fmt.Sprintf("Create directory %s", input.Path)}
}

func (t *CreateDirectoryTool) Call(ctx context.Context, input *CreateDirectoryInput) (*fsbox.ToolResult, error) {
	if input.Path == "" {
		return NewToolResultError("Error: path is required"), nil
	}
	p, err := t.svc.CreateDirectory(ctx, input.Path)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error creating directory %s: %v", input.Path, err)), nil
	}
	return NewToolResultText(fmt.Sprintf("Directory %s created successfully.", p)), nil
}
