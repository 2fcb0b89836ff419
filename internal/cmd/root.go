// Package cmd wires the command-line surface: it owns the cobra shell,
// delegates argument parsing to internal/cli and runs the traversal.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/harrison/pfind/internal/cli"
	"github.com/harrison/pfind/internal/config"
	"github.com/harrison/pfind/internal/walk"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for pfind.
// prog is the program identifier used to prefix diagnostics, normally
// os.Args[0] exactly as the user invoked it.
//
// Flag parsing is disabled: the historical surface uses single-dash long
// options (-name, -type) and requires the starting path to precede them,
// neither of which pflag can express. The raw arguments go to cli.Parse
// instead, and help is recognized by hand.
func NewRootCommand(prog string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pfind starting_path [-name filename-or-pattern] [-type {f|d|b|c|p|l|s}]",
		Short: "Recursively search a directory tree for matching entries",
		Long: `pfind searches a directory tree depth-first, printing every entry that
matches the optional -name glob and -type filters, one path per line.

Failures on individual entries (unreadable subdirectories, entries that
vanish mid-walk) are reported to stderr and skipped; the search always
runs to completion and exits 0. Syntax errors and a starting path whose
status cannot be determined at all exit 1.`,
		Version:            Version,
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, prog, args)
		},
	}

	return cmd
}

// run performs one search: load config, parse the argument triple, walk.
// Every diagnostic is printed here or below; the returned error only
// drives the exit code.
func run(cmd *cobra.Command, prog string, args []string) error {
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		return cmd.Help()
	}

	errOut := cmd.ErrOrStderr()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(errOut, "%s: %v\n", prog, err)
		return err
	}

	opts, err := cli.Parse(args)
	if err != nil {
		var syntaxErr *cli.SyntaxError
		if errors.As(err, &syntaxErr) {
			if syntaxErr.Msg != "" {
				fmt.Fprintf(errOut, "%s: %s\n", prog, syntaxErr.Msg)
			}
			if syntaxErr.ShowUsage {
				fmt.Fprintln(errOut, cli.Usage())
			}
		}
		return err
	}

	diag := walk.NewReporter(prog, errOut, cfg.ColorEnabled(errOut), cfg.Trace)
	walker := walk.New(opts.Filter, cmd.OutOrStdout(), diag)

	if err := walker.Search(opts.Path); err != nil {
		diag.Report(err)
		return err
	}
	return nil
}
