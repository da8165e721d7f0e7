// Package cmd implements the CLI application to convert staking reward
// exports into tax-import files.
package cmd

import (
	"flag"
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&convertCmd{}, "conversion")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&formatsCmd{}, "reports")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var Verbose = flag.Bool("v", false, "enable verbose (debug) logging")

// setupLogging applies the global verbosity flag. Called by every command
// before doing real work.
func setupLogging() {
	if *Verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// printMarkdown renders a markdown report to the terminal.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		// fall back to the raw markdown, still perfectly readable
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
