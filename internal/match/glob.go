package match

import (
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// slashStandIn temporarily replaces path separators before glob matching.
// POSIX fnmatch without FNM_PATHNAME gives '/' no special meaning, so a
// wildcard may cross it; doublestar treats '/' as a segment boundary.
// Substituting a byte that cannot occur in a path keeps fnmatch semantics.
const slashStandIn = "\x01"

// MatchName reports whether name satisfies the shell glob pattern under
// find(1) conventions: a leading dot in name must be matched by a literal
// leading dot in pattern (fnmatch's FNM_PERIOD rule), and a malformed
// pattern matches nothing.
func MatchName(pattern, name string) bool {
	if strings.HasPrefix(name, ".") && !strings.HasPrefix(pattern, ".") {
		return false
	}
	if strings.ContainsRune(name, '/') || strings.ContainsRune(pattern, '/') {
		pattern = strings.ReplaceAll(pattern, "/", slashStandIn)
		name = strings.ReplaceAll(name, "/", slashStandIn)
	}
	ok, err := doublestar.Match(pattern, name)
	return err == nil && ok
}
