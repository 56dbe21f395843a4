// Package pattern implements glob-based include/exclude filtering of
// filenames for the filtered copy operations.
package pattern

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Set holds ordered include and exclude glob patterns for one tree operation.
// A Set is immutable once constructed. Exclusion is evaluated before
// inclusion, and an empty include list means "include everything not
// excluded".
type Set struct {
	Include []string
	Exclude []string
}

// NewSet returns a pointer to a new [Set].
func NewSet(include, exclude []string) *Set {
	return &Set{
		Include: include,
		Exclude: exclude,
	}
}

// Match reports whether a filename matches a single glob pattern, with `*`
// matching any run of characters and `?` matching exactly one. Patterns are
// evaluated against the filename component only, never a full path. A
// malformed pattern matches nothing.
func Match(name string, pattern string) bool {
	matched, err := doublestar.Match(pattern, name)
	if err != nil {
		return false
	}

	return matched
}

// ShouldInclude decides whether a filename passes the Set. Any exclude match
// forces exclusion regardless of the include patterns. With no exclude match
// and an empty include list the file is included; otherwise at least one
// include pattern has to match. A nil Set includes everything.
func (s *Set) ShouldInclude(name string) bool {
	if s == nil {
		return true
	}

	for _, pattern := range s.Exclude {
		if Match(name, pattern) {
			return false
		}
	}

	if len(s.Include) == 0 {
		return true
	}

	for _, pattern := range s.Include {
		if Match(name, pattern) {
			return true
		}
	}

	return false
}

// ParseList splits a comma-separated pattern list into its patterns, trimming
// surrounding whitespace and dropping empty elements.
func ParseList(input string) []string {
	var patterns []string

	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		patterns = append(patterns, part)
	}

	return patterns
}
