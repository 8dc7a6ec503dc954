// dirtree - print the contents of a directory as a tree.
//
// License: MIT.
// See the file LICENSE.

package tree

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"strings"

	"dbohdan.com/dirtree/list"
)

const separator = string(os.PathSeparator)

var errNotDir = errors.New("not a directory")

// Entry is one filesystem object in a tree.
// Children is nil for files and for paths that could not be opened as directories.
type Entry struct {
	Name     string
	Children *list.List[Entry]
}

// IsDir reports whether the entry was opened as a directory.
func (e Entry) IsDir() bool {
	return e.Children != nil
}

// Counts is the number of directories and files visited by a build.
type Counts struct {
	Dirs  int
	Files int
}

// Matcher decides whether a path relative to the root is ignored.
// It is satisfied by go-git's gitignore.Matcher.
type Matcher interface {
	Match(path []string, isDir bool) bool
}

type Options struct {
	// Include dot-prefixed entries other than "." and "..".
	ShowHidden bool
	// Truncate composed paths to MaxPathLength-1 bytes. Unlimited when <= 0.
	MaxPathLength int
	// Omit entries the matcher reports as ignored.
	Ignore Matcher
	Logger *slog.Logger
}

type builder struct {
	opts   Options
	counts Counts
}

// Visible reports whether a directory entry is shown under the hidden files policy.
func Visible(name string, showHidden bool) bool {
	if showHidden {
		return name != "." && name != ".."
	}

	return !strings.HasPrefix(name, ".")
}

// CompareNames orders entries by name, byte-wise.
func CompareNames(a, b Entry) int {
	return strings.Compare(a.Name, b.Name)
}

// BaseName returns the part of path after the last separator.
func BaseName(path string) string {
	return path[strings.LastIndex(path, separator)+1:]
}

// Build walks the filesystem object at path and returns its entry.
// The counts include the object itself.
func Build(path string, opts Options) (Entry, Counts) {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	b := &builder{opts: opts}
	entry := b.build(path, nil)

	return entry, b.counts
}

// BuildTree returns a one-element list holding the entry for root.
// Unlike Build, the counts do not include the root directory.
func BuildTree(root string, opts Options) (*list.List[Entry], Counts) {
	entry, counts := Build(root, opts)
	if entry.IsDir() {
		counts.Dirs--
	}

	return list.New(entry), counts
}

// build creates the entry for path. rel holds the path components below the root.
func (b *builder) build(path string, rel []string) Entry {
	entry := Entry{Name: BaseName(path)}

	names, err := readDir(path)
	if err != nil {
		b.counts.Files++
		b.opts.Logger.Debug("treating path as file", "path", path, "reason", err)

		return entry
	}

	b.counts.Dirs++
	entry.Name += separator
	entry.Children = list.New[Entry]()

	for _, name := range names {
		if !Visible(name, b.opts.ShowHidden) {
			b.opts.Logger.Debug("skipping hidden entry", "path", path, "name", name)
			continue
		}

		childPath, ok := b.join(path, name)
		childRel := append(rel[:len(rel):len(rel)], name)

		if b.opts.Ignore != nil && b.opts.Ignore.Match(childRel, isDir(childPath)) {
			b.opts.Logger.Debug("skipping ignored entry", "path", childPath)
			continue
		}

		if !ok {
			// A truncated path may name an ancestor, so never descend into it.
			b.counts.Files++
			entry.Children.Append(Entry{Name: name})
			continue
		}

		entry.Children.Append(b.build(childPath, childRel))
	}

	entry.Children.Sort(CompareNames)

	return entry
}

// join composes the path of a child. It reports false if the result had to
// be truncated to fit MaxPathLength.
func (b *builder) join(path, name string) (string, bool) {
	joined := path + separator + name

	limit := b.opts.MaxPathLength - 1
	if b.opts.MaxPathLength > 0 && len(joined) > limit {
		b.opts.Logger.Debug("truncating path", "path", joined, "max", b.opts.MaxPathLength)
		return joined[:limit], false
	}

	return joined, true
}

// readDir opens path as a directory and returns its entry names in
// filesystem order.
func readDir(path string) ([]string, error) {
	// Stat first so that opening never blocks on a FIFO.
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, &os.PathError{Op: "opendir", Path: path, Err: errNotDir}
	}

	dir, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer dir.Close()

	return dir.Readdirnames(-1)
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// Release is the destructor for an entry: it frees the children before the entry.
func Release(entry Entry) {
	if entry.Children != nil {
		entry.Children.Free(Release)
	}
}

// Free releases every entry of a tree and empties the list.
func Free(root *list.List[Entry]) {
	root.Free(Release)
}
