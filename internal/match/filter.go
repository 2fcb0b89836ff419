package match

import "io/fs"

// Filter is the immutable match criteria built once from the command line.
// The zero value matches every real entry.
type Filter struct {
	// Pattern is the -name glob; only consulted when HasPattern is set,
	// so an explicit empty pattern is distinguishable from no pattern.
	Pattern    string
	HasPattern bool

	// Type is the -type tag, or TypeNone when no type filter was given.
	Type FileType
}

// Matches reports whether an entry passes the filter. The checks are a
// conjunction and stop at the first failure:
//
//  1. the entry name satisfies the -name glob,
//  2. the entry's type bits equal the -type tag exactly,
//  3. the "." and ".." pseudo-entries are rejected unless the containing
//     name is itself that literal.
//
// dirName is the name of the directory whose listing produced the entry.
// The symmetric comparison in rule 3 lets a starting path that is itself
// "." or ".." pass through when it is the literal subject being evaluated
// (the single-file dispatch calls this with dirName == entryName).
func (f Filter) Matches(dirName, entryName string, mode fs.FileMode) bool {
	if f.HasPattern && !MatchName(f.Pattern, entryName) {
		return false
	}
	if f.Type != TypeNone && TypeOf(mode) != f.Type {
		return false
	}
	if entryName == ".." && dirName != entryName {
		return false
	}
	if entryName == "." && dirName != entryName {
		return false
	}
	return true
}
