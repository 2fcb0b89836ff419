package walk

import (
	"bytes"
	"errors"
	"io/fs"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReporterEntryFailed(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewReporter("./pfind", buf, false, false)

	r.EntryFailed("/tmp/pft.IO8Et0", &fs.PathError{
		Op:   "lstat",
		Path: "/tmp/pft.IO8Et0",
		Err:  syscall.EACCES,
	})

	// The syscall wrapping is stripped so the cause reads like strerror
	// output; the path appears exactly once.
	assert.Equal(t, "./pfind: `/tmp/pft.IO8Et0': permission denied\n", buf.String())
}

func TestReporterPlainError(t *testing.T) {
	buf := new(bytes.Buffer)
	r := NewReporter("pfind", buf, false, false)

	r.Report(errors.New("failed to read config file"))
	assert.Equal(t, "pfind: failed to read config file\n", buf.String())
}

func TestReporterReading(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		buf := new(bytes.Buffer)
		NewReporter("pfind", buf, false, false).Reading("/srv")
		assert.Empty(t, buf.String())
	})

	t.Run("enabled", func(t *testing.T) {
		buf := new(bytes.Buffer)
		NewReporter("pfind", buf, false, true).Reading("/srv")
		assert.Equal(t, "pfind: reading /srv\n", buf.String())
	})
}

func TestEntryErrorUnwrap(t *testing.T) {
	err := &EntryError{Path: "/x", Err: fs.ErrPermission}
	assert.ErrorIs(t, err, fs.ErrPermission)
	assert.Equal(t, "`/x': permission denied", err.Error())
}
