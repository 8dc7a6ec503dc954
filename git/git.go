// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

package git

import (
	"fmt"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreMatcher returns a matcher for paths relative to root.
// When readFiles is true, it loads the ".gitignore" files found under root.
// Directories excluded by a pattern are not searched for more ".gitignore" files.
// The extra patterns use the ".gitignore" syntax and take precedence over the files.
func IgnoreMatcher(root string, readFiles bool, extra []string) (gitignore.Matcher, error) {
	var patterns []gitignore.Pattern

	if readFiles {
		filePatterns, err := gitignore.ReadPatterns(osfs.New(root), nil)
		if err != nil {
			return nil, fmt.Errorf("failed to read ignore files: %v", err)
		}

		patterns = append(patterns, filePatterns...)
	}

	patterns = append(patterns, ParsePatterns(extra)...)

	return gitignore.NewMatcher(patterns), nil
}

// ParsePatterns parses lines in the ".gitignore" syntax.
// Blank lines and comments are skipped.
func ParsePatterns(lines []string) []gitignore.Pattern {
	patterns := make([]gitignore.Pattern, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		patterns = append(patterns, gitignore.ParsePattern(line, nil))
	}

	return patterns
}
