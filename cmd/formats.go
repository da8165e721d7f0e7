package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
)

type formatsCmd struct{}

func (*formatsCmd) Name() string     { return "formats" }
func (*formatsCmd) Synopsis() string { return "list supported input and output formats" }
func (*formatsCmd) Usage() string {
	return `stx formats

  Lists the supported input formats, output formats and coins.
`
}

func (*formatsCmd) SetFlags(*flag.FlagSet) {}

func (*formatsCmd) Execute(context.Context, *flag.FlagSet, ...interface{}) subcommands.ExitStatus {
	printMarkdown(`# Supported formats

| Kind | Names |
|---|---|
| input | subscan (default), subscan-json, kraken, staketax |
| output | bitcointax (default), cointracking |
| coin | DOT (default), KSM, ATOM, ETH, SOL, KAVA, ADA, XTZ |
| quarter | all (default), q1..q4, 1..4 |
`)
	return subcommands.ExitSuccess
}
