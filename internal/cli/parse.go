// Package cli turns raw command-line arguments into the validated
// (path, name pattern, type filter) triple consumed by the walker.
//
// The grammar is the historical one: the starting path is positional and
// must precede the expression, and the only predicates are -name and
// -type, each taking one value and each settable at most once. pflag
// cannot express single-dash long options or the path-before-expression
// rule, so the command layer disables cobra's flag parsing and hands the
// raw arguments here.
package cli

import (
	"fmt"
	"strings"

	"github.com/harrison/pfind/internal/match"
)

// maxArgs is the most arguments the grammar can need: the starting path
// plus two for -name and two for -type.
const maxArgs = 5

// Options is the validated result of parsing the command line.
type Options struct {
	Path   string
	Filter match.Filter
}

// SyntaxError is a fatal command-line error. Msg is the diagnostic to
// print with the program-identifier prefix; it is empty when only the
// usage line should be shown. ShowUsage asks the caller to print Usage().
type SyntaxError struct {
	Msg       string
	ShowUsage bool
}

func (e *SyntaxError) Error() string {
	if e.Msg == "" {
		return "invalid command line"
	}
	return e.Msg
}

// Usage returns the usage line printed on syntax errors.
func Usage() string {
	return "usage: pfind starting_path [-name filename-or-pattern] [-type {f|d|b|c|p|l|s}]"
}

// Parse validates args (everything after the program name) and builds the
// Options triple. Any violation of the grammar returns a *SyntaxError.
func Parse(args []string) (*Options, error) {
	if len(args) == 0 || len(args) > maxArgs {
		return nil, &SyntaxError{ShowUsage: true}
	}

	opts := &Options{}

	if strings.HasPrefix(args[0], "-") {
		// No starting path. Process the expression anyway, the way find
		// does, so the diagnostic distinguishes a trailing path from a
		// missing one.
		i := 0
		for i < len(args) && strings.HasPrefix(args[i], "-") {
			if err := parseOption(args, &i, opts); err != nil {
				return nil, err
			}
		}
		if i < len(args) {
			return nil, &SyntaxError{
				Msg:       fmt.Sprintf("paths must precede expression: %s", args[i]),
				ShowUsage: true,
			}
		}
		return nil, &SyntaxError{ShowUsage: true}
	}

	opts.Path = args[0]
	i := 1
	for i < len(args) {
		if err := parseOption(args, &i, opts); err != nil {
			return nil, err
		}
	}
	return opts, nil
}

// parseOption consumes one "-option value" pair at args[*i], advancing *i
// past both. A predicate may only be set once; a repeat with a value is
// reported as already declared, a repeat without one as a missing
// argument, and anything that is not -name or -type as an unknown
// predicate.
func parseOption(args []string, i *int, opts *Options) error {
	option := args[*i]
	value := ""
	hasValue := *i+1 < len(args)
	if hasValue {
		value = args[*i+1]
	}

	switch {
	case option == "-name" && !opts.Filter.HasPattern:
		if !hasValue {
			return missingArgument(option)
		}
		opts.Filter.Pattern = value
		opts.Filter.HasPattern = true

	case option == "-type" && opts.Filter.Type == match.TypeNone:
		if !hasValue {
			return missingArgument(option)
		}
		t, ok := match.ParseType(value)
		if !ok {
			return &SyntaxError{Msg: fmt.Sprintf("Unknown argument to -type: %s", value)}
		}
		opts.Filter.Type = t

	default:
		return optionError(option, hasValue)
	}

	*i += 2
	return nil
}

func missingArgument(option string) error {
	return &SyntaxError{Msg: fmt.Sprintf("missing argument to `%s'", option)}
}

// optionError covers the fallthrough cases: a known predicate appearing a
// second time, or an unknown predicate altogether.
func optionError(option string, hasValue bool) error {
	if option == "-name" || option == "-type" {
		if hasValue {
			return &SyntaxError{Msg: fmt.Sprintf("option already declared: `%s'", option)}
		}
		return missingArgument(option)
	}
	return &SyntaxError{Msg: fmt.Sprintf("unknown predicate `%s'", option)}
}
