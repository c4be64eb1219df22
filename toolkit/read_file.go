package toolkit

import (
	"context"
	"fmt"
	"strings"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/wonton/schema"
)

var (
	_ fsbox.TypedTool[*ReadFileInput]                   = &ReadFileTool{}
	_ fsbox.TypedToolPreviewer[*ReadFileInput]          = &ReadFileTool{}
	_ fsbox.TypedTool[*ReadMultipleFilesInput]          = &ReadMultipleFilesTool{}
	_ fsbox.TypedToolPreviewer[*ReadMultipleFilesInput] = &ReadMultipleFilesTool{}
)

// ReadFileInput is the input for read_file.
type ReadFileInput struct {
	Path string `json:"path"`
}

// ReadFileTool returns the full text content of one file.
type ReadFileTool struct {
	svc *filesystem.Service
}

// NewReadFileTool creates a new ReadFileTool.
func NewReadFileTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*ReadFileInput] {
	return fsbox.ToolAdapter(&ReadFileTool{svc: svc})
}

func (t *ReadFileTool) Name() string {
	return "read_file"
}

func (t *ReadFileTool) Description() string {
	return "Read the complete contents of a text file. Only works within allowed directories."
}

func (t *ReadFileTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"path"},
		Properties: map[string]*schema.Property{
			"path": {
				Type:        "string",
				Description: "Path of the file to read",
			},
		},
	}
}

func (t *ReadFileTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:          "Read File",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
}

func (t *ReadFileTool) PreviewCall(ctx context.Context, input *ReadFileInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{Summary: fmt.Sprintf("Read %s", input.Path)}
}

func (t *ReadFileTool) Call(ctx context.Context, input *ReadFileInput) (*fsbox.ToolResult, error) {
	if input.Path == "" {
		return NewToolResultError("Error: path is required"), nil
	}
	content, err := t.svc.ReadFile(ctx, input.Path)
	if err != nil {
		return NewToolResultError(fmt.Sprintf("Error: %v", err)), nil
	}
	display := fmt.Sprintf("Read %s (%d bytes)", input.Path, len(content))
	return NewToolResultText(content).WithDisplay(display), nil
}

// ReadMultipleFilesInput is the input for read_multiple_files.
type ReadMultipleFilesInput struct {
	Paths []string `json:"paths"`
}

// ReadMultipleFilesTool reads several files in one call. A file that cannot
// be read produces an inline error block and does not fail the call.
type ReadMultipleFilesTool struct {
	svc *filesystem.Service
}

// NewReadMultipleFilesTool creates a new ReadMultipleFilesTool.
func NewReadMultipleFilesTool(svc *filesystem.Service) *fsbox.TypedToolAdapter[*ReadMultipleFilesInput] {
	return fsbox.ToolAdapter(&ReadMultipleFilesTool{svc: svc})
}

func (t *ReadMultipleFilesTool) Name() string {
	return "read_multiple_files"
}

func (t *ReadMultipleFilesTool) Description() string {
	return `Read the contents of multiple files at once.

Each file's content is returned as a separate block prefixed with its path.
Failed reads are reported inline and do not stop the other files from being read.
Only works within allowed directories.`
}

func (t *ReadMultipleFilesTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"paths"},
		Properties: map[string]*schema.Property{
			"paths": {
				Type:        "array",
				Description: "Paths of the files to read",
				Items:       &schema.Property{Type: "string"},
			},
		},
	}
}

func (t *ReadMultipleFilesTool) Annotations() *fsbox.ToolAnnotations {
	return &fsbox.ToolAnnotations{
		Title:          "Read Multiple Files",
		ReadOnlyHint:   true,
		IdempotentHint: true,
	}
}

func (t *ReadMultipleFilesTool) PreviewCall(ctx context.Context, input *ReadMultipleFilesInput) *fsbox.ToolCallPreview {
	return &fsbox.ToolCallPreview{
		Summary: fmt.Sprintf("Read %d files: %s", len(input.Paths), strings.Join(input.Paths, ", ")),
	}
}

func (t *ReadMultipleFilesTool) Call(ctx context.Context, input *ReadMultipleFilesInput) (*fsbox.ToolResult, error) {
	if len(input.Paths) == 0 {
		return NewToolResultError("Error: paths must contain at least one path"), nil
	}
	results := t.svc.ReadMultipleFiles(ctx, input.Paths)
	content := make([]*fsbox.ToolResultContent, 0, len(results))
	for _, r := range results {
		content = append(content, &fsbox.ToolResultContent{
			Type: fsbox.ToolResultContentTypeText,
			Text: r,
		})
	}
	return fsbox.NewToolResult(content...).WithDisplay(fmt.Sprintf("Read %d files", len(results))), nil
}
