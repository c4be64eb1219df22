package patch

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/deepnoodle-ai/fsbox"
	"github.com/deepnoodle-ai/wonton/assert"
)

func writeTemp(t *testing.T, content string, mode os.FileMode) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "file.txt")
	assert.NoError(t, os.WriteFile(path, []byte(content), mode))
	assert.NoError(t, os.Chmod(path, mode))
	return path
}

func TestApplyFile(t *testing.T) {
	path := writeTemp(t, "hello\nworld\n", 0o600)

	out, err := ApplyFile(path, []Edit{{OldText: "world", NewText: "gophers"}}, false)
	assert.NoError(t, err)
	assert.Equal(t, "```diff\n"+
		"--- "+path+"\toriginal\n"+
		"+++ "+path+"\tmodified\n"+
		"@@ -1,2 +1,2 @@\n"+
		" hello\n"+
		"-world\n"+
		"+gophers\n"+
		"```\n\n", out)

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "hello\ngophers\n", string(data))

	info, err := os.Stat(path)
	assert.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestApplyFile_DryRun(t *testing.T) {
	path := writeTemp(t, "x\n", 0o644)

	out, err := ApplyFile(path, []Edit{{OldText: "x", NewText: "y"}}, true)
	assert.NoError(t, err)
	assert.Contains(t, out, "-x\n+y\n")

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "x\n", string(data))
}

func TestApplyFile_MismatchDoesNotWrite(t *testing.T) {
	path := writeTemp(t, "a\nb\n", 0o644)

	_, err := ApplyFile(path, []Edit{
		{OldText: "a", NewText: "A"},
		{OldText: "missing", NewText: "x"},
	}, false)
	assert.Error(t, err)
	assert.True(t, errors.Is(err, fsbox.ErrEditMismatch))

	data, err := os.ReadFile(path)
	assert.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(data))
}

func TestApplyFile_Missing(t *testing.T) {
	_, err := ApplyFile(filepath.Join(t.TempDir(), "nope.txt"), []Edit{{OldText: "a", NewText: "b"}}, false)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}
