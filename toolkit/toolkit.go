// Package toolkit exposes the sandboxed filesystem operations as named tools
// that an agent can call with JSON input.
//
// # Tools
//
//   - [ReadFileTool]: read_file
//   - [ReadMultipleFilesTool]: read_multiple_files
//   - [WriteFileTool]: write_file
//   - [EditFileTool]: edit_file
//   - [CreateDirectoryTool]: create_directory
//   - [ListDirectoryTool]: list_directory
//   - [DirectoryTreeTool]: directory_tree
//   - [MoveFileTool]: move_file
//   - [SearchFilesTool]: search_files
//   - [GetFileInfoTool]: get_file_info
//   - [ListAllowedDirectoriesTool]: list_allowed_directories
//
// Every tool delegates to a [filesystem.Service], so every path argument is
// confined to the service's allowed directories. Failures are reported as
// error results rather than Go errors, which lets the caller see the reason:
//
//	roots, _ := sandbox.NewAllowedRoots([]string{"/srv/data"})
//	svc := filesystem.New(sandbox.NewValidator(roots))
//	for _, tool := range toolkit.NewFilesystemTools(svc) {
//	    fmt.Println(tool.Name())
//	}
package toolkit

import (
	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
)

var (
	// NewToolResultError creates a tool result indicating an error occurred.
	NewToolResultError = fsbox.NewToolResultError

	// NewToolResultText creates a successful tool result with text content.
	NewToolResultText = fsbox.NewToolResultText
)

// NewFilesystemTools returns every filesystem tool bound to svc.
func NewFilesystemTools(svc *filesystem.Service) []fsbox.Tool {
	return []fsbox.Tool{
		NewReadFileTool(svc),
		NewReadMultipleFilesTool(svc),
		NewWriteFileTool(svc),
		NewEditFileTool(svc),
		NewCreateDirectoryTool(svc),
		NewListDirectoryTool(svc),
		NewDirectoryTreeTool(svc),
		NewMoveFileTool(svc),
		NewSearchFilesTool(svc),
		NewGetFileInfoTool(svc),
		NewListAllowedDirectoriesTool(svc),
	}
}
