package toolkit

import (
	"context"
	"fmt"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/fsbox/patch"
	"github.com/deepnoodle-ai/wonton/schema"
)

var (
	_ fsbox.TypedTool[*EditFileInput]          = &EditFileTool{}
	_ fsbox.TypedToolPreviewer[*EditFileInput] = &EditFileTool{}
)

// EditFileInput is the input for edit_file.
type EditFileInput struct {
	Path   string       `json:"path"`
	Edits  []patch.Edit `json:"edits"`
	DryRun bool         `json:"dryRun,omitempty"`
}

// EditFileTool applies text replacements to a file and returns a git-style
// diff of the change.
type EditFileTool struct {
	svc *filesystem.Service
}

// NewEditFileTool creates a new EditFileTool.
func NewEditFileTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*EditFileInput] {
	return fsbox.ToolAdapter(&EditFileTool{svc: svc})
}

func (t *EditFileTool) Name() string {
	return "edit_file"
}

func (t *EditFileTool) Description() string {
	return `Make line-based edits to a text file.

Each edit replaces the first occurrence of oldText with newText. When oldText is
not found verbatim, lines are compared ignoring surrounding whitespace and the
replacement is re-indented to match. Edits are applied in order and each one
sees the result of the previous edit. oldText must not be empty. If any edit
cannot be matched the file is left unchanged.

Returns a unified diff of the changes. Set dryRun to preview the diff without
writing. Only works within allowed directories.`
}

func (t *EditFileTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"path", "edits"},
		Properties: map[string]*schema.Property{
			"path": {
				Type:        "string",
				Description: "Path of the file to edit",
			},
			"edits": {
				Type:        "array",
				Description: "Edits to apply in order",
				Items: &schema.Property{
					Type:     "object",
					Required: []string{"oldText", "newText"},
					Properties: map[string]*schema.Property{
						"oldText": {
							Type:        "string",
							Description: "Text to search for",
						},
						"newText": {
							Type:        "string",
							Description: "Text to replace it with",
						},
					},
				},
			},
			"dryRun": {
				Type:        "boolean",
				Description: "Preview changes using a diff without writing the file",
				Default:     false,
			},
		},
	}
}

func (t *EditFileTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:           "Edit File",
		DestructiveHint: true,
	}
}

func (t *EditFileTool) PreviewCall(ctx context.Context, input *EditFileInput) *fsbox.ToolCallPreview {
	verb := "Edit"
	if input.DryRun {
		verb = "Preview edit of"
	}
	return &fsbox.ToolCallPreview{
		Summary: fmt.Sprintf("%s %s (%d edits)", verb, input.Path, len(input.Edits)),
	}
}

func (t *EditFileTool) Call(ctx context.Context, input *EditFileInput) (*fsbox.ToolResult, error) {
	if input.Path == "" {
		return NewToolResultError("Error: path is required"), nil
	}
	if len(input.Edits) == 0 {
		return NewToolResultError("Error: edits must contain at least one edit"), nil
	}
	diff, err := t.svc.EditFile(ctx, input.Path, input.Edits, input.DryRun)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	display := fmt.Sprintf("Edited %s", input.Path)
	if input.DryRun {
		display = fmt.Sprintf("Previewed edit of %s", input.Path)
	}
	return NewToolResultText(diff).WithDisplay(display), nil
}
