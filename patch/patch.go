// Package patch applies text edits to file content and renders the change as
// a unified diff.
//
// An edit first looks for its old text verbatim and replaces the first
// occurrence. When that fails it falls back to a line-by-line comparison
// that ignores leading and trailing whitespace, re-indenting the new text to
// fit the block it replaces.
package patch

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/deepnoodle-ai/fsbox"
)

// Edit replaces OldText with NewText.
type Edit struct {
	OldText string `json:"oldText"`
	NewText string `json:"newText"`
}

// MismatchError is returned when an edit's old text cannot be located.
type MismatchError struct {
	OldText string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("could not find exact match for edit:\n%s", e.OldText)
}

func (e *MismatchError) Unwrap() error {
	return fsbox.ErrEditMismatch
}

// NormalizeLineEndings converts CRLF line endings to LF.
func NormalizeLineEndings(text string) string {
	return strings.ReplaceAll(text, "\r\n", "\n")
}

// Apply applies the edits in order to content and returns the result. Each
// edit sees the output of the previous one. If any edit fails nothing is
// returned but the error.
func Apply(content string, edits []Edit) (string, error) {
	modified := NormalizeLineEndings(content)
	for i, edit := range edits {
		oldText := NormalizeLineEndings(edit.OldText)
		newText := NormalizeLineEndings(edit.NewText)
		if oldText == "" {
			return "", fmt.Errorf("%w: edit %d has empty old text", fsbox.ErrEditMismatch, i+1)
		}

		if strings.Contains(modified, oldText) {
			modified = strings.Replace(modified, oldText, newText, 1)
			continue
		}

		result, ok := applyFuzzy(modified, oldText, newText)
		if !ok {
			return "", &MismatchError{OldText: edit.OldText}
		}
		modified = result
	}
	return modified, nil
}

// applyFuzzy replaces the first window of content lines that equals the old
// lines once surrounding whitespace is trimmed.
func applyFuzzy(content, oldText, newText string) (string, bool) {
	oldLines := strings.Split(oldText, "\n")
	contentLines := strings.Split(content, "\n")

	for i := 0; i+len(oldLines) <= len(contentLines); i++ {
		if !windowMatches(contentLines[i:i+len(oldLines)], oldLines) {
			continue
		}
		replacement := reindent(strings.Split(newText, "\n"), oldLines, leadingSpace(contentLines[i]))

		spliced := make([]string, 0, len(contentLines)-len(oldLines)+len(replacement))
		spliced = append(spliced, contentLines[:i]...)
		spliced = append(spliced, replacement...)
		spliced = append(spliced, contentLines[i+len(oldLines):]...)
		return strings.Join(spliced, "\n"), true
	}
	return "", false
}

func windowMatches(window, oldLines []string) bool {
	for j := range oldLines {
		if strings.TrimSpace(window[j]) != strings.TrimSpace(oldLines[j]) {
			return false
		}
	}
	return true
}

// reindent moves the new lines under the indentation of the matched block.
// The first line takes the block's indentation. A later line keeps its
// indentation relative to the corresponding old line when both lines are
// indented, and is left as written otherwise.
func reindent(newLines, oldLines []string, indent string) []string {
	out := make([]string, len(newLines))
	for j, line := range newLines {
		trimmed := strings.TrimLeftFunc(line, unicode.IsSpace)
		if j == 0 {
			out[j] = indent + trimmed
			continue
		}
		var oldLead string
		if j < len(oldLines) {
			oldLead = leadingSpace(oldLines[j])
		}
		newLead := leadingSpace(line)
		if oldLead == "" || newLead == "" {
			out[j] = line
			continue
		}
		extra := max(0, utf8.RuneCountInString(newLead)-utf8.RuneCountInString(oldLead))
		out[j] = indent + strings.Repeat(" ", extra) + trimmed
	}
	return out
}

func leadingSpace(line string) string {
	return line[:len(line)-len(strings.TrimLeftFunc(line, unicode.IsSpace))]
}
