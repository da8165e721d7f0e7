package staketax

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Renderer serializes a sequence of already-filtered reward records into one
// target tax-import format. Like parsers, the set is small and closed.
type Renderer interface {
	Render(w io.Writer, records []RewardRecord) error
}

// bitcoinTaxTimeFormat is the date layout the bitcoin.tax importer expects.
const bitcoinTaxTimeFormat = "2006-01-02T15:04:05"

// bitcoinTaxAccount maps coins whose bitcoin.tax account symbol differs from
// the canonical one. Bitcoin.tax lists Polkadot under DOT2.
var bitcoinTaxAccount = map[Coin]string{DOT: "DOT2"}

// BitcoinTax renders records as the bitcoin.tax income-import CSV.
//
// This is a compatibility format consumed by an external tool: header names
// and field order must not change. Rendering is strictly 1:1, no aggregation
// or deduplication.
type BitcoinTax struct{}

func (BitcoinTax) Render(w io.Writer, records []RewardRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Date", "Action", "Account", "Symbol", "Volume"}); err != nil {
		return fmt.Errorf("cannot write bitcoin.tax header: %w", err)
	}
	for _, rec := range records {
		account := string(rec.Coin)
		if alias, ok := bitcoinTaxAccount[rec.Coin]; ok {
			account = alias
		}
		row := []string{
			rec.Time.Format(bitcoinTaxTimeFormat),
			"INCOME",
			account + " STAKING",
			string(rec.Coin),
			rec.Amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write bitcoin.tax row for line %d: %w", rec.Line, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
