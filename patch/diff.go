package patch

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const noNewlineMarker = "\\ No newline at end of file\n"

// UnifiedDiff renders the change from original to modified with three lines
// of context. Both headers carry name. An empty string means no change.
func UnifiedDiff(original, modified, name string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        splitLines(NormalizeLineEndings(original)),
		B:        splitLines(NormalizeLineEndings(modified)),
		FromFile: name,
		ToFile:   name,
		FromDate: "original",
		ToDate:   "modified",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}

// splitLines keeps line terminators. A final line without one is tagged
// with the no-newline marker so the diff reproduces it exactly.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.SplitAfter(text, "\n")
	if lines[len(lines)-1] == "" {
		return lines[:len(lines)-1]
	}
	last := len(lines) - 1
	lines[last] = lines[last] + "\n" + noNewlineMarker
	return lines
}

// Fence wraps a diff in a markdown code block. The fence is longer than any
// backtick run inside the diff, and never shorter than three.
func Fence(diff string) string {
	n := 3
	for strings.Contains(diff, strings.Repeat("`", n)) {
		n++
	}
	fence := strings.Repeat("`", n)
	return fence + "diff\n" + diff + fence + "\n\n"
}
