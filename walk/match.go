package walk

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Matcher decides which entries a search reports and which it skips.
type Matcher struct {
	pattern  string
	excludes []string
}

// NewMatcher returns a matcher for a case-insensitive name substring and a
// list of exclude globs. An exclude token without glob metacharacters
// matches that name at any depth.
func NewMatcher(pattern string, excludes []string) (*Matcher, error) {
	m := &Matcher{pattern: strings.ToLower(pattern)}
	for _, token := range excludes {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		if !strings.ContainsAny(token, "*?[{") {
			token = "**/" + token + "/**"
		}
		if !doublestar.ValidatePattern(token) {
			return nil, fmt.Errorf("invalid exclude pattern %q", token)
		}
		m.excludes = append(m.excludes, token)
	}
	return m, nil
}

// Excludes returns the compiled exclude globs.
func (m *Matcher) Excludes() []string {
	return m.excludes
}

// Excluded reports whether rel, a slash-separated path relative to the
// search root, matches an exclude glob. Directories are also tested with a
// trailing slash so that "**/name/**" prunes the directory itself.
func (m *Matcher) Excluded(rel string, dir bool) bool {
	for _, pattern := range m.excludes {
		if match, _ := doublestar.Match(pattern, rel); match {
			return true
		}
		if dir {
			if match, _ := doublestar.Match(pattern, rel+"/"); match {
				return true
			}
		}
	}
	return false
}

// Matches reports whether a regular file's name contains the pattern.
func (m *Matcher) Matches(name string, regular bool) bool {
	return regular && strings.Contains(strings.ToLower(name), m.pattern)
}

// ParseExcludes splits a comma-separated exclude list.
func ParseExcludes(csv string) []string {
	if strings.TrimSpace(csv) == "" {
		return nil
	}
	return strings.Split(csv, ",")
}
