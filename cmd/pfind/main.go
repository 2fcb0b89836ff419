package main

import (
	"os"

	"github.com/harrison/pfind/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCommand(os.Args[0])

	// All diagnostics are printed by the command itself in the historical
	// pfind format, so the only job left here is the exit code.
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
