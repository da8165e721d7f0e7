// Package renderer turns staketax data into human-readable markdown.
package renderer

import (
	"fmt"
	"strings"

	"github.com/etnz/staketax"
	"github.com/etnz/staketax/date"
)

// Summary renders per-coin reward totals for a date scope to a markdown string.
func Summary(scope date.Range, totals []staketax.CoinTotal) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Staking income %s to %s\n\n", scope.From, scope.To)

	if len(totals) == 0 {
		b.WriteString("No staking rewards in this period.\n")
		return b.String()
	}

	b.WriteString("| Coin | Rewards | Total |\n")
	b.WriteString("|---|---:|---:|\n")
	for _, t := range totals {
		fmt.Fprintf(&b, "| %s | %d | %s |\n", t.Coin, t.Rewards, t.Total)
	}
	return b.String()
}
