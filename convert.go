package staketax

import (
	"fmt"
	"io"

	"github.com/etnz/staketax/date"
	"github.com/sirupsen/logrus"
)

// Defaults applied by NewConversion to empty Config fields.
const (
	DefaultCoin         = "DOT"
	DefaultInputFormat  = "subscan"
	DefaultOutputFormat = "bitcointax"
	DefaultQuarter      = "all"
	DefaultCurrency     = "USD"
)

// Config selects the parser, renderer and date scope of one conversion run.
// It is supplied by the caller (the CLI); the zero value of an option means
// its documented default, except Year which is always required.
type Config struct {
	// Coin is the canonical coin for sources that do not self-report the
	// asset (subscan, subscan-json, staketax).
	Coin string
	// InputFormat is one of subscan, subscan-json, kraken, staketax.
	InputFormat string
	// OutputFormat is one of bitcointax, cointracking.
	OutputFormat string
	// Year is the 4-digit year records are filtered to. Required.
	Year int
	// Quarter restricts the scope to one quarter of Year: q1..q4, 1..4 or all.
	Quarter string
	// Currency is the account currency for the cointracking output.
	Currency string
}

// Conversion is one configured pipeline run: parser, date scope, renderer.
type Conversion struct {
	parser   Parser
	renderer Renderer
	scope    date.Range
}

// NewConversion validates the whole configuration and wires the matching
// parser and renderer. All configuration errors surface here, before any
// input is read.
func NewConversion(cfg Config) (*Conversion, error) {
	if cfg.Coin == "" {
		cfg.Coin = DefaultCoin
	}
	if cfg.InputFormat == "" {
		cfg.InputFormat = DefaultInputFormat
	}
	if cfg.OutputFormat == "" {
		cfg.OutputFormat = DefaultOutputFormat
	}
	if cfg.Quarter == "" {
		cfg.Quarter = DefaultQuarter
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}

	coin, err := ParseCoin(cfg.Coin)
	if err != nil {
		return nil, err
	}
	quarter, err := date.ParseQuarter(cfg.Quarter)
	if err != nil {
		return nil, err
	}
	if cfg.Year == 0 {
		return nil, fmt.Errorf("year is required")
	}
	if cfg.Year < 1000 || cfg.Year > 9999 {
		return nil, fmt.Errorf("invalid year %d: want a 4-digit year", cfg.Year)
	}

	var parser Parser
	switch cfg.InputFormat {
	case "subscan":
		parser = SubscanParser{Coin: coin}
	case "subscan-json":
		parser = SubscanJSONParser{Coin: coin}
	case "kraken":
		parser = KrakenParser{}
	case "staketax":
		parser = StakeTaxParser{Coin: coin}
	default:
		return nil, fmt.Errorf("unsupported input format %q", cfg.InputFormat)
	}

	var renderer Renderer
	switch cfg.OutputFormat {
	case "bitcointax", "bitcoin.tax":
		renderer = BitcoinTax{}
	case "cointracking":
		if renderer, err = NewCoinTracking(cfg.Currency); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported output format %q", cfg.OutputFormat)
	}

	return &Conversion{
		parser:   parser,
		renderer: renderer,
		scope:    date.NewRange(cfg.Year, quarter),
	}, nil
}

// Records parses the input and returns the records in the configured date
// scope, in input order.
func (c *Conversion) Records(r io.Reader) ([]RewardRecord, error) {
	parsed, err := c.parser.Parse(r)
	if err != nil {
		return nil, err
	}
	kept := make([]RewardRecord, 0, len(parsed))
	for _, rec := range parsed {
		if c.scope.Contains(rec.Date()) {
			kept = append(kept, rec)
		}
	}
	logrus.WithFields(logrus.Fields{
		"parsed": len(parsed),
		"kept":   len(kept),
		"from":   c.scope.From,
		"to":     c.scope.To,
	}).Debug("filtered records")
	return kept, nil
}

// Run executes the pipeline in a single forward pass: parse the input,
// filter by date scope, render to the output. It aborts on the first error
// without writing partial output.
func (c *Conversion) Run(r io.Reader, w io.Writer) error {
	records, err := c.Records(r)
	if err != nil {
		return err
	}
	return c.renderer.Render(w, records)
}

// Convert runs a whole conversion in one call.
func Convert(cfg Config, r io.Reader, w io.Writer) error {
	c, err := NewConversion(cfg)
	if err != nil {
		return err
	}
	return c.Run(r, w)
}
