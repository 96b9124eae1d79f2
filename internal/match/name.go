// Package match provides glob-based include/exclude matching over entity
// names, used by the CLI to pre-select entities before filters run.
package match

import (
	"fmt"
	"path/filepath"

	"github.com/gobwas/glob"
)

// NameMatcher decides whether an entity name passes include/exclude glob
// patterns.
type NameMatcher interface {
	// ShouldInclude reports whether the name passes, with a human-readable
	// reason for the decision.
	ShouldInclude(name string, include, exclude []string) (bool, string)
}

// defaultNameMatcher implements name matching with glob patterns.
type defaultNameMatcher struct{}

var _ NameMatcher = (*defaultNameMatcher)(nil)

// NewNameMatcher creates the default glob-based matcher.
func NewNameMatcher() NameMatcher {
	return &defaultNameMatcher{}
}

// matchPattern matches a glob pattern against a name. filepath.Match
// validates the pattern first; gobwas/glob then does the matching, since it
// lets '*' span every character including '/'.
func matchPattern(pattern, name string) (bool, error) {
	if _, err := filepath.Match(pattern, "probe"); err != nil {
		return false, err
	}

	compiled, err := glob.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("invalid glob pattern: %w", err)
	}
	return compiled.Match(name), nil
}

// ShouldInclude applies the include/exclude rules:
//
//  1. A name matching any exclude pattern is dropped; exclude wins over
//     include.
//  2. When include patterns exist, the name must match at least one.
//  3. With no patterns at all, every name passes.
func (*defaultNameMatcher) ShouldInclude(name string, include, exclude []string) (bool, string) {
	for _, pattern := range exclude {
		matches, err := matchPattern(pattern, name)
		if err != nil {
			return false, fmt.Sprintf("invalid exclude pattern %q: %v", pattern, err)
		}
		if matches {
			return false, fmt.Sprintf("excluded by pattern %q", pattern)
		}
	}

	if len(include) > 0 {
		for _, pattern := range include {
			matches, err := matchPattern(pattern, name)
			if err != nil {
				return false, fmt.Sprintf("invalid include pattern %q: %v", pattern, err)
			}
			if matches {
				return true, fmt.Sprintf("included by pattern %q", pattern)
			}
		}
		return false, fmt.Sprintf("no match in include patterns %v", include)
	}

	if len(exclude) > 0 {
		return true, fmt.Sprintf("no match in exclude patterns %v", exclude)
	}
	return true, "no name patterns specified"
}
