// Package fsbox provides sandboxed filesystem operations for AI agents. Every
// operation is confined to a configured set of allowed root directories,
// including through symlinks and for paths that do not exist yet.
//
// The core types are:
//
//   - [Tool] and [TypedTool] define the named operations an agent can invoke.
//   - [ToolResult] carries the text returned to the caller.
//   - [ErrAccessDenied], [ErrNotFound], [ErrEditMismatch] and [ErrIOFailure]
//     classify every failure.
//
// # Quick Start
//
//	roots, _ := sandbox.NewAllowedRoots([]string{"~/projects"})
//	svc := filesystem.New(sandbox.NewValidator(roots))
//	tools := toolkit.NewFilesystemTools(svc)
//	result, _ := tools[0].Call(ctx, map[string]any{"path": "~/projects/README.md"})
//	fmt.Println(result.Text())
//
// Path confinement lives in [github.com/deepnoodle-ai/fsbox/sandbox], text
// patching in [github.com/deepnoodle-ai/fsbox/patch] and traversal in
// [github.com/deepnoodle-ai/fsbox/walk]. The operations are served over MCP by
// [github.com/deepnoodle-ai/fsbox/mcp].
package fsbox
