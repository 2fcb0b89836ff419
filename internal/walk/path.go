package walk

import "strings"

// BuildPath joins a parent directory path and a child entry name into a
// single path, never producing a doubled separator:
//
//   - parent and child identical: the parent unchanged (the traversal
//     root joined with itself in the single-file case),
//   - parent ends with a separator or child begins with one: plain
//     concatenation,
//   - otherwise: exactly one inserted separator.
func BuildPath(parent, child string) string {
	if parent == child {
		return parent
	}
	if strings.HasSuffix(parent, "/") || strings.HasPrefix(child, "/") {
		return parent + child
	}
	return parent + "/" + child
}
