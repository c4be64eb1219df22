package toolkit

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/wonton/schema"
)

var (
	_ fsbox.TypedTool[*MoveFileInput]          = &MoveFileTool{}
	_ fsbox.TypedToolPreviewer[*MoveFileInput] = &MoveFileTool{}
)

// MoveFileInput is the input for move_file.
type MoveFileInput struct {
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

// MoveFileTool moves or renames a file or directory.
type MoveFileTool struct {
	svc *filesystem.Service
}

// NewMoveFileTool creates a new MoveFileTool.
func NewMoveFileTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*MoveFileInput] {
	return fsbox.ToolAdapter(&MoveFileTool{svc: svc})
}

func (t *MoveFileTool) Name() string {
	return "move_file"
}

func (t *MoveFileTool) Description() string {
	return `Move or rename files and directories.

Fails if the destination already exists. Both source and destination must be
within allowed directories.`
}

func (t *MoveFileTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"source", "destination"},
		Properties: map[string]*schema.Property{
			"source": {
				Type:        "string",
				Description: "Path to move",
			},
			"destination": {
				Type:        "string",
				Description: "New path; must not exist",
			},
		},
	}
}

func (t *MoveFileTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:           "Move File",
		DestructiveHint: true,
	}
}

func (t *MoveFileTool) PreviewCall(ctx context.Context, input *MoveFileInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{
		Summary: fmt.Sprintf("Move %s to %s", input.Source, input.Destination),
	}
}

func (t *MoveFileTool) Call(ctx context.Context, input *MoveFileInput) (*fsbox.ToolResult, error) {
	if input.Source == "" || input.Destination == "" {
		return NewToolResultError("Error: source and destination are required"), nil
	}
	src, dst, err := t.svc.MoveFile(ctx, input.Source, input.Destination)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error moving file: %v", err)), nil
	}
	return NewToolResultText(fmt.Sprintf("Successfully moved %s to %s", src, dst)), nil
}
