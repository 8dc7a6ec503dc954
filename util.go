// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

package dirtree

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"dbohdan.com/dirtree/list"
	"dbohdan.com/dirtree/tree"
)

var (
	ErrEmptyDirectory = errors.New("empty directory")
	ErrNotDirectory   = errors.New("not a directory")
)

// PrintError prints a formatted error message to stderr.
func PrintError(format string, value any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", value)
}

// ExitWithError prints a formatted error message to stderr and exits the program with status 1.
func ExitWithError(format string, value any) {
	PrintError(format, value)
	os.Exit(1)
}

// CheckRoot verifies that a built tree can be printed:
// its root must be a directory with at least one child.
func CheckRoot(path string, root *list.List[tree.Entry]) error {
	front := root.Front()
	if front == nil || !front.Value.IsDir() {
		return fmt.Errorf("%s: %w", path, ErrNotDirectory)
	}

	if front.Value.Children.Empty() {
		return fmt.Errorf("%s: %w", path, ErrEmptyDirectory)
	}

	return nil
}

// TrimRoot removes trailing separators from a root path given by the user
// so that the root line shows the directory's name. A path made only of
// separators is left as one separator.
func TrimRoot(path string) string {
	trimmed := strings.TrimRight(path, string(os.PathSeparator))
	if trimmed == "" && path != "" {
		return string(os.PathSeparator)
	}

	return trimmed
}

// EnglishPlural returns the singular or plural form of a word based on count.
func EnglishPlural(singular, plural string, count int) string {
	if count == 1 {
		return singular
	}

	return plural
}

// Summary describes the counts of a tree, e.g., "1 directory, 3 files".
func Summary(counts tree.Counts) string {
	return fmt.Sprintf(
		"%d %s, %d %s",
		counts.Dirs,
		EnglishPlural("directory", "directories", counts.Dirs),
		counts.Files,
		EnglishPlural("file", "files", counts.Files),
	)
}
