package walk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPath(t *testing.T) {
	tests := []struct {
		name   string
		parent string
		child  string
		want   string
	}{
		{"simple join", "dir", "file", "dir/file"},
		{"nested parent", "a/b", "c", "a/b/c"},
		{"parent trailing separator", "dir/", "file", "dir/file"},
		{"root parent", "/", "etc", "/etc"},
		{"child leading separator", "dir", "/file", "dir/file"},
		{"identical parent and child", "same", "same", "same"},
		{"identical dot", ".", ".", "."},
		{"dot parent", ".", "file", "./file"},
		{"dotdot parent", "..", "file", "../file"},
		{"empty child", "dir", "", "dir/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildPath(tt.parent, tt.child))
		})
	}
}

// TestBuildPathNeverDoublesSeparator sweeps parent/child combinations and
// checks the join never introduces a doubled separator at the seam.
func TestBuildPathNeverDoublesSeparator(t *testing.T) {
	parents := []string{"a", "a/", "/", ".", "..", "a/b"}
	children := []string{"c", "c.txt", ".hidden"}

	for _, parent := range parents {
		for _, child := range children {
			got := BuildPath(parent, child)
			assert.False(t, strings.Contains(got, "//"),
				"BuildPath(%q, %q) = %q", parent, child, got)
			assert.True(t, strings.HasSuffix(got, child),
				"BuildPath(%q, %q) = %q lost the child", parent, child, got)
		}
	}
}
