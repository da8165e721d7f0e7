package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/staketax"
	"github.com/google/subcommands"
	"github.com/sirupsen/logrus"
)

type convertCmd struct {
	coin         string
	inputFormat  string
	outputFormat string
	year         int
	quarter      string
	currency     string
}

func (*convertCmd) Name() string     { return "convert" }
func (*convertCmd) Synopsis() string { return "convert a staking reward export to a tax-import file" }
func (*convertCmd) Usage() string {
	return `stx convert [-i <format>] [-o <format>] [-c <coin>] -y <year> [-q <quarter>] <input> <output>

  Converts a staking reward ledger export into a tax-import file.
`
}

func (c *convertCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputFormat, "i", staketax.DefaultInputFormat, "input format (subscan, subscan-json, kraken, staketax)")
	f.StringVar(&c.outputFormat, "o", staketax.DefaultOutputFormat, "output format (bitcointax, cointracking)")
	f.StringVar(&c.coin, "c", staketax.DefaultCoin, "coin for sources that do not self-report the asset")
	f.IntVar(&c.year, "y", 0, "year to filter rewards to (required)")
	f.StringVar(&c.quarter, "q", staketax.DefaultQuarter, "quarter of the year (q1..q4, 1..4, all)")
	f.StringVar(&c.currency, "currency", staketax.DefaultCurrency, "account currency for the cointracking output")
}

func (c *convertCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly two arguments: <input> <output>")
		return subcommands.ExitUsageError
	}
	input, output := f.Arg(0), f.Arg(1)
	setupLogging()

	// Validate the whole configuration before touching any file.
	conv, err := staketax.NewConversion(staketax.Config{
		Coin:         c.coin,
		InputFormat:  c.inputFormat,
		OutputFormat: c.outputFormat,
		Year:         c.year,
		Quarter:      c.quarter,
		Currency:     c.currency,
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

	// Render into memory first so a failed run never leaves a partial file.
	var buf bytes.Buffer
	if err := conv.Run(bytes.NewReader(data), &buf); err != nil {
		fmt.Fprintf(os.Stderr, "Error converting %q: %v\n", input, err)
		return subcommands.ExitFailure
	}
	if err := os.WriteFile(output, buf.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %q: %v\n", output, err)
		return subcommands.ExitFailure
	}

	logrus.WithFields(logrus.Fields{"input": input, "output": output}).Debug("conversion done")
	fmt.Printf("Successfully wrote %s\n", output)
	return subcommands.ExitSuccess
}
