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
	_ fsbox.TypedTool[*GetFileInfoInput]                     = &GetFileInfoTool{}
	_ fsbox.TypedToolPreviewer[*GetFileInfoInput]            = &GetFileInfoTool{}
	_ fsbox.TypedTool[*ListAllowedDirectoriesInput]          = &ListAllowedDirectoriesTool{}
	_ fsbox.TypedToolPreviewer[*ListAllowedDirectoriesInput] = &ListAllowedDirectoriesTool{}
)

// GetFileInfoInput is the input for get_file_info.
type GetFileInfoInput struct {
	Path string `json:"path"`
}

// GetFileInfoTool returns metadata about a file or directory as JSON.
type GetFileInfoTool struct {
	svc *filesystem.Service
}

// NewGetFileInfoTool creates a new GetFileInfoTool.
func NewGetFileInfoTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*GetFileInfoInput] {
	return fsbox.ToolAdapter(&GetFileInfoTool{svc: svc})
}

func (t *GetFileInfoTool) Name() string {
	return "get_file_info"
}

func (t *GetFileInfoTool) Description() string {
	return `Retrieve metadata about a file or directory.

Returns size, creation time, last modified time, last access time, type, octal
permissions and, for regular files, the detected MIME type. Only works within
allowed directories.`
}

func (t *GetFileInfoTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"path"},
		Properties: map[string]*schema.Property{
			"path": {
				Type:        "string",
				Description: "Path of the file or directory",
			},
		},
	}
}

func (t *GetFileInfoTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:          "Get File Info",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
}

func (t *GetFileInfoTool) PreviewCall(ctx context.Context, input *GetFileInfoInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{Summary: fmt.Sprintf("Get info for %s", input.Path)}
}

func (t *GetFileInfoTool) Call(ctx context.Context, input *GetFileInfoInput) (*fsbox.ToolResult, error) {
	if input.Path == "" {
		return NewToolResultError("Error: path is required"), nil
	}
	info, err := t.svc.GetFileInfo(ctx, input.Path)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	data, err := json.MarshalIndent(info, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode file info: %w", err)
	}
	return NewToolResultText(string(data)), nil
}

// ListAllowedDirectoriesInput is the (empty) input for
// list_allowed_directories.
type ListAllowedDirectoriesInput struct{}

// ListAllowedDirectoriesTool reports the directories the other tools may
// access.
type ListAllowedDirectoriesTool struct {
	svc *filesystem.Service
}

// NewListAllowedDirectoriesTool creates a new ListAllowedDirectoriesTool.
func NewListAllowedDirectoriesTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*ListAllowedDirectoriesInput] {
	return fsbox.ToolAdapter(&ListAllowedDirectoriesTool{svc: svc})
}

func (t *ListAllowedDirectoriesTool) Name() string {
	return "list_allowed_directories"
}

func (t *ListAllowedDirectoriesTool) Description() string {
	return "Returns the list of directories that this server is allowed to access."
}

func (t *ListAllowedDirectoriesTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:       "object",
		Properties: map[string]*schema.Property{},
	}
}

func (t *ListAllowedDirectoriesTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:          "List Allowed Directories",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
}

func (t *ListAllowedDirectoriesTool) PreviewCall(ctx context.Context, input *ListAllowedDirectoriesInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{Summary: "List allowed directories"}
}

func (t *ListAllowedDirectoriesTool) Call(ctx context.Context, input *ListAllowedDirectoriesInput) (*fsbox.ToolResult, error) {
	dirs := t.svc.ListAllowedDirectories()
	return NewToolResultText(fmt.Sprintf("Allowed directories: %s", strings.Join(dirs, ", "))), nil
}
