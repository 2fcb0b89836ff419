// Package walk implements the depth-first traversal: resolve a starting
// path, iterate directory entries, print the ones that pass the filter
// and recurse into subdirectories. Failures on individual entries are
// reported and skipped; they never abort the surrounding iteration.
package walk

import (
	"fmt"
	"io"
	"os"
	"syscall"

	"github.com/harrison/pfind/internal/match"
)

// Walker holds the per-invocation state shared by every traversal level:
// the read-only filter, the match output stream and the diagnostics
// reporter. Each recursion level otherwise owns only its open directory
// handle and the entry currently being processed.
type Walker struct {
	filter match.Filter
	out    io.Writer
	diag   *Reporter
}

// New builds a Walker printing matches to out and diagnostics via diag.
func New(filter match.Filter, out io.Writer, diag *Reporter) *Walker {
	return &Walker{filter: filter, out: out, diag: diag}
}

// Search resolves path and walks it. A path that opens as a directory is
// iterated; anything else falls back to evaluation as a single file.
//
// The returned error is the fatal class: the path could not be stat'ed at
// all, or the fallback stat says it is a directory even though opening it
// failed. Search never prints these itself. At the top level the caller
// turns them into exit code 1; at recursion sites walkDir reports them as
// per-entry diagnostics and carries on, so an unreadable subdirectory
// costs one diagnostic line and nothing else.
func (w *Walker) Search(path string) error {
	dir, err := openDir(path)
	if err != nil {
		return w.searchFile(path, err)
	}
	defer dir.Close()
	w.walkDir(path, dir)
	return nil
}

// openDir opens path for iteration the way opendir does: a non-directory
// fails immediately with ENOTDIR instead of, say, blocking on a fifo.
func openDir(path string) (*os.File, error) {
	return os.OpenFile(path, os.O_RDONLY|syscall.O_DIRECTORY, 0)
}

// searchFile evaluates path as a single file entry after it failed to
// open as a directory; openErr is that original failure. The path's own
// name doubles as the containing name for classification, so the
// pseudo-entry rules never reject a starting path that is literally "."
// or "..". On a match the literal input string is printed, not a rebuilt
// one.
func (w *Walker) searchFile(path string, openErr error) error {
	info, err := os.Lstat(path)
	if err != nil {
		return &EntryError{Path: path, Err: err}
	}
	if info.IsDir() {
		// It is a directory after all, so the open failure was the real
		// problem. Surface that, not a second stat of our own.
		return &EntryError{Path: path, Err: openErr}
	}
	if w.filter.Matches(path, path, info.Mode()) {
		fmt.Fprintln(w.out, path)
	}
	return nil
}

// walkDir iterates every entry of the open directory handle exactly once,
// in whatever order the directory read yields them. For each entry: build
// the full path, take its non-following metadata, print it if the filter
// passes, and recurse if it is a real subdirectory. Recursion is decided
// purely by "is it a subdirectory", independent of whether the entry
// itself matched.
func (w *Walker) walkDir(dirPath string, dir *os.File) {
	w.diag.Reading(dirPath)

	names, err := dir.Readdirnames(-1)
	if err != nil {
		// A failed read still returns the names read so far; report the
		// failure once and process what we have.
		w.diag.EntryFailed(dirPath, err)
	}

	for _, name := range names {
		fullPath := BuildPath(dirPath, name)

		info, err := os.Lstat(fullPath)
		if err != nil {
			w.diag.EntryFailed(fullPath, err)
			continue
		}

		if w.filter.Matches(dirPath, name, info.Mode()) {
			fmt.Fprintln(w.out, fullPath)
		}

		if info.IsDir() && name != "." && name != ".." {
			if err := w.Search(fullPath); err != nil {
				w.diag.Report(err)
			}
		}
	}
}
