package patch

import (
	"os"
)

// ApplyFile applies the edits to the file at path and returns the fenced
// diff of the change. The file is rewritten only when dryRun is false and
// every edit succeeded; its mode is kept.
func ApplyFile(path string, edits []Edit, dryRun bool) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	original := NormalizeLineEndings(string(data))

	modified, err := Apply(original, edits)
	if err != nil {
		return "", err
	}
	diff, err := UnifiedDiff(original, modified, path)
	if err != nil {
		return "", err
	}

	if !dryRun {
		if err := os.WriteFile(path, []byte(modified), info.Mode().Perm()); err != nil {
			return "", err
		}
	}
	return Fence(diff), nil
}
