package walk

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/fatih/color"
)

// EntryError describes a failure on a single filesystem entry.
type EntryError struct {
	Path string
	Err  error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("`%s': %s", e.Path, cause(e.Err))
}

func (e *EntryError) Unwrap() error { return e.Err }

// cause strips the Go syscall wrapping so diagnostics read like strerror
// output ("permission denied" rather than "lstat /x: permission denied";
// the path is already part of the message).
func cause(err error) string {
	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		return pathErr.Err.Error()
	}
	return err.Error()
}

// Reporter writes program-prefixed diagnostics to the error stream. The
// program identifier is fixed at construction; nothing mutates it later.
// A Reporter is not safe for concurrent use, which is fine for a
// single-threaded walk.
type Reporter struct {
	prog  string
	w     io.Writer
	trace bool

	causeColor *color.Color
	traceColor *color.Color
}

// NewReporter builds a Reporter writing to w. colorize enables red error
// causes and faint trace lines; trace enables a diagnostic line for every
// directory opened for iteration.
func NewReporter(prog string, w io.Writer, colorize, trace bool) *Reporter {
	causeColor := color.New(color.FgRed)
	traceColor := color.New(color.Faint)
	if !colorize {
		causeColor.DisableColor()
		traceColor.DisableColor()
	}
	return &Reporter{
		prog:       prog,
		w:          w,
		trace:      trace,
		causeColor: causeColor,
		traceColor: traceColor,
	}
}

// Report prints one diagnostic for err and returns. EntryErrors render in
// the historical format, e.g.
//
//	./pfind: `/tmp/pft.IO8Et0': Permission denied
func (r *Reporter) Report(err error) {
	var entryErr *EntryError
	if errors.As(err, &entryErr) {
		fmt.Fprintf(r.w, "%s: `%s': %s\n",
			r.prog, entryErr.Path, r.causeColor.Sprint(cause(entryErr.Err)))
		return
	}
	fmt.Fprintf(r.w, "%s: %s\n", r.prog, r.causeColor.Sprint(err.Error()))
}

// EntryFailed reports a recoverable per-entry failure.
func (r *Reporter) EntryFailed(path string, err error) {
	r.Report(&EntryError{Path: path, Err: err})
}

// Reading logs the start of a directory iteration when tracing is on.
func (r *Reporter) Reading(path string) {
	if !r.trace {
		return
	}
	fmt.Fprintln(r.w, r.traceColor.Sprintf("%s: reading %s", r.prog, path))
}
