package toolkit

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/fsbox/filesystem"
	"github.com/deepnoodle-ai/fsbox/sandbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(t *testing.T) (*filesystem.Service, string) {
	t.Helper()
	root, err := filepath.EvalSymlinks(t.TempDir())
	require.NoError(t, err)
	roots, err := sandbox.NewAllowedRoots([]string{root})
	require.NoError(t, err)
	return filesystem.New(sandbox.NewValidator(roots)), root
}

func findTool(t *testing.T, tools []fsbox.Tool, name string) fsbox.Tool {
	t.Helper()
	for _, tool := range tools {
		if tool.Name() == name {
			return tool
		}
	}
	t.Fatalf("tool %q not found", name)
	return nil
}

func call(t *testing.T, tool fsbox.Tool, input string) *fsbox.ToolResult {
	t.Helper()
	result, err := tool.Call(context.Background(), json.RawMessage(input))
	require.NoError(t, err)
	require.NotNil(t, result)
	return result
}

func mustJSON(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return string(data)
}

func TestNewFilesystemTools(t *testing.T) {
	svc, _ := newTestService(t)
	tools := NewFilesystemTools(svc)

	var names []string
	for _, tool := range tools {
		names = append(names, tool.Name())
		assert.NotEmpty(t, tool.Description())
		assert.NotNil(t, tool.Annotations())
		raw, err := fsbox.SchemaJSON(tool.Schema())
		require.NoError(t, err)
		assert.True(t, json.Valid(raw))
	}
	assert.Equal(t, []string{
		"read_file",
		"read_multiple_files",
		"write_file",
		"edit_file",
		"create_directory",
		"list_directory",
		"directory_tree",
		"move_file",
		"search_files",
		"get_file_info",
		"list_allowed_directories",
	}, names)
}

func TestReadAndWriteTools(t *testing.T) {
	svc, root := newTestService(t)
	tools := NewFilesystemTools(svc)
	path := filepath.Join(root, "notes.txt")

	result := call(t, findTool(t, tools, "write_file"), mustJSON(t, map[string]string{"path": path, "content": "hello"}))
	assert.False(t, result.IsError)
	assert.Equal(t, "Successfully wrote to "+path, result.Text())

	result = call(t, findTool(t, tools, "read_file"), mustJSON(t, map[string]string{"path": path}))
	assert.False(t, result.IsError)
	assert.Equal(t, "hello", result.Text())

	result = call(t, findTool(t, tools, "read_file"), `{"path": "/etc/passwd"}`)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Text(), "access denied")

	result = call(t, findTool(t, tools, "read_file"), `{}`)
	assert.True(t, result.IsError)
}

func TestReadMultipleFilesTool(t *testing.T) {
	svc, root := newTestService(t)
	a := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(a, []byte("A"), 0o644))
	missing := filepath.Join(root, "missing.txt")

	tool := NewReadMultipleFilesTool(svc)
	result, err := tool.Call(context.Background(), &ReadMultipleFilesInput{Paths: []string{a, missing}})
	require.NoError(t, err)
	assert.False(t, result.IsError)
	require.Len(t, result.Content, 2)
	assert.Equal(t, a+":\nA", result.Content[0].Text)
	assert.True(t, strings.HasPrefix(result.Content[1].Text, "Error reading "+missing+": "))
}

func TestEditFileTool(t *testing.T) {
	svc, root := newTestService(t)
	path := filepath.Join(root, "main.go")
	require.NoError(t, os.WriteFile(path, []byte("x := 1\n"), 0o644))
	tool := NewEditFileTool(svc)

	input := mustJSON(t, map[string]any{
		"path":   path,
		"edits":  []map[string]string{{"oldText": "x := 1", "newText": "x := 2"}},
		"dryRun": true,
	})
	result := call(t, tool, input)
	assert.False(t, result.IsError)
	assert.True(t, strings.HasPrefix(result.Text(), "```diff\n"))
	assert.Contains(t, result.Text(), "-x := 1\n+x := 2\n")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x := 1\n", string(data))

	result = call(t, tool, mustJSON(t, map[string]any{
		"path":  path,
		"edits": []map[string]string{{"oldText": "y := 3", "newText": "z"}},
	}))
	assert.True(t, result.IsError)
	assert.Contains(t, result.Text(), "could not find exact match")

	result = call(t, tool, mustJSON(t, map[string]any{
		"path":  path,
		"edits": []map[string]string{{"oldText": "", "newText": "y := 3\n"}},
	}))
	assert.True(t, result.IsError)
	assert.Contains(t, result.Text(), "empty old text")
	assert.Contains(t, tool.Description(), "oldText must not be empty")
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x := 1\n", string(data))

	preview := tool.PreviewCall(context.Background(), &EditFileInput{Path: path, DryRun: true})
	require.NotNil(t, preview)
	assert.Equal(t, "Preview edit of "+path+" (0 edits)", preview.Summary)
}

func TestCreateDirectoryTool(t *testing.T) {
	svc, root := newTestService(t)
	tool := NewCreateDirectoryTool(svc)
	dir := filepath.Join(root, "newdir")

	result := call(t, tool, mustJSON(t, map[string]string{"path": dir}))
	assert.False(t, result.IsError)
	assert.Equal(t, "Directory "+dir+" created successfully.", result.Text())

	result = call(t, tool, mustJSON(t, map[string]string{"path": filepath.Join(root, "a", "b")}))
	assert.True(t, result.IsError)
	assert.True(t, strings.HasPrefix(result.Text(), "Error creating directory"))
}

func TestListDirectoryAndTreeTools(t *testing.T) {
	svc, root := newTestService(t)
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(root, "b"), 0o755))

	result := call(t, NewListDirectoryTool(svc), mustJSON(t, map[string]string{"path": root}))
	assert.False(t, result.IsError)
	assert.Equal(t, "[FILE] a.txt\n[DIR] b", result.Text())

	result = call(t, NewDirectoryTreeTool(svc), mustJSON(t, map[string]string{"path": root}))
	assert.False(t, result.IsError)
	assert.JSONEq(t, `[{"name":"a.txt","type":"file"},{"name":"b","type":"directory","children":[]}]`, result.Text())
	assert.Contains(t, result.Text(), "\n  {\n    \"name\"")
}

func TestMoveFileTool(t *testing.T) {
	svc, root := newTestService(t)
	src := filepath.Join(root, "a.txt")
	dst := filepath.Join(root, "b.txt")
	require.NoError(t, os.WriteFile(src, []byte("a"), 0o644))
	tool := NewMoveFileTool(svc)

	result := call(t, tool, mustJSON(t, map[string]string{"source": src, "destination": dst}))
	assert.False(t, result.IsError)
	assert.Equal(t, "Successfully moved "+src+" to "+dst, result.Text())

	require.NoError(t, os.WriteFile(src, []byte("again"), 0o644))
	result = call(t, tool, mustJSON(t, map[string]string{"source": src, "destination": dst}))
	assert.True(t, result.IsError)
	assert.True(t, strings.HasPrefix(result.Text(), "Error moving file:"))
}

func TestSearchFilesTool(t *testing.T) {
	svc, root := newTestService(t)
	for _, rel := range []string{"foo.txt", "bar/foo.txt", "src/FooBar.go", "src/other.go"} {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, nil, 0o644))
	}

	result := call(t, NewSearchFilesTool(svc), mustJSON(t, map[string]string{
		"path":            root,
		"pattern":         "foo",
		"excludePatterns": "bar",
	}))
	assert.False(t, result.IsError)
	lines := strings.Split(result.Text(), "\n")
	assert.Equal(t, "Found 2 files matching 'foo':", lines[0])
	assert.ElementsMatch(t, []string{
		filepath.Join(root, "foo.txt"),
		filepath.Join(root, "src", "FooBar.go"),
	}, lines[1:])
}

func TestGetFileInfoTool(t *testing.T) {
	svc, root := newTestService(t)
	path := filepath.Join(root, "a.txt")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0o644))

	result := call(t, NewGetFileInfoTool(svc), mustJSON(t, map[string]string{"path": path}))
	assert.False(t, result.IsError)

	var info map[string]any
	require.NoError(t, json.Unmarshal([]byte(result.Text()), &info))
	assert.Equal(t, float64(3), info["size"])
	assert.Equal(t, true, info["isFile"])
	assert.Equal(t, false, info["isDirectory"])
	assert.Equal(t, "644", info["permissions"])
	for _, key := range []string{"created", "modified", "accessed"} {
		assert.Contains(t, info, key)
	}
}

func TestListAllowedDirectoriesTool(t *testing.T) {
	svc, root := newTestService(t)
	result := call(t, NewListAllowedDirectoriesTool(svc), "")
	assert.False(t, result.IsError)
	assert.Equal(t, "Allowed directories: "+root, result.Text())
}

func TestInvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	result := call(t, NewReadFileTool(svc), `{"path": 12}`)
	assert.True(t, result.IsError)
	assert.Contains(t, result.Text(), "invalid json for tool read_file")
}

func TestSearchFilesTool_UnreadableRoot(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("directory permissions are not enforced")
	}
	svc, root := newTestService(t)
	locked := filepath.Join(root, "locked")
	require.NoError(t, os.MkdirAll(locked, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(locked, "foo.txt"), nil, 0o644))
	require.NoError(t, os.Chmod(locked, 0o000))
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	tool := NewSearchFilesTool(svc)
	result := call(t, tool, mustJSON(t, map[string]string{
		"path":    locked,
		"pattern": "foo",
	}))
	assert.False(t, result.IsError)
	assert.Equal(t, "Found 0 files matching 'foo':\n", result.Text())
	assert.Contains(t, tool.Description(), "a search path that cannot be listed returns no matches")
}
