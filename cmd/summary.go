package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/staketax"
	"github.com/etnz/staketax/date"
	"github.com/etnz/staketax/renderer"
	"github.com/google/subcommands"
)

type summaryCmd struct {
	coin        string
	inputFormat string
	year        int
	quarter     string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display per-coin staking income totals" }
func (*summaryCmd) Usage() string {
	return `stx summary [-i <format>] [-c <coin>] -y <year> [-q <quarter>] <input>

  Displays per-coin reward counts and totals for the period, without writing
  any tax-import file.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFormat, "i", staketax.DefaultInputFormat, "input format (subscan, subscan-json, kraken, staketax)")
	f.StringVar(&c.coin, "c", staketax.DefaultCoin, "coin for sources that do not self-report the asset")
	f.IntVar(&c.year, "y", 0, "year to filter rewards to (required)")
	f.StringVar(&c.quarter, "q", staketax.DefaultQuarter, "quarter of the year (q1..q4, 1..4, all)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one argument: <input>")
		return subcommands.ExitUsageError
	}
	input := f.Arg(0)
	setupLogging()

	conv, err := staketax.NewConversion(staketax.Config{
		Coin:        c.coin,
		InputFormat: c.inputFormat,
		Year:        c.year,
		Quarter:     c.quarter,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	data, err := os.ReadFile(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading %q: %v\n", input, err)
		return subcommands.ExitFailure
	}
	records, err := conv.Records(bytes.NewReader(data))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing %q: %v\n", input, err)
		return subcommands.ExitFailure
	}

	quarter, _ := date.ParseQuarter(c.quarter) // validated by NewConversion above
	scope := date.NewRange(c.year, quarter)
	printMarkdown(renderer.Summary(scope, staketax.Summarize(records)))
	return subcommands.ExitSuccess
}
