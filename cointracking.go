package staketax

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/Rhymond/go-money"
)

// coinTrackingTimeFormat is the date layout the CoinTracking importer expects.
const coinTrackingTimeFormat = "2006-01-02 15:04:05"

// coinTrackingHeader is the exact income-import header CoinTracking expects.
var coinTrackingHeader = []string{
	"Type",
	"Buy Amount",
	"Buy Currency",
	"Sell Amount",
	"Sell Currency",
	"Fee",
	"Fee Currency",
	"Exchange",
	"Trade-Group",
	"Comment",
	"Date",
	"Tx-ID",
	"Buy Value in Account Currency",
}

// CoinTracking renders records as the CoinTracking income-import CSV.
// Staking rewards are Income rows: nothing sold, no fee, both expressed in
// the account currency.
type CoinTracking struct {
	currency string
}

// NewCoinTracking returns a CoinTracking renderer for the given account
// currency. The code must be an ISO currency code; anything else is a
// configuration error.
func NewCoinTracking(currency string) (CoinTracking, error) {
	if money.GetCurrency(currency) == nil {
		return CoinTracking{}, fmt.Errorf("unknown account currency %q", currency)
	}
	return CoinTracking{currency: currency}, nil
}

func (ct CoinTracking) Render(w io.Writer, records []RewardRecord) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(coinTrackingHeader); err != nil {
		return fmt.Errorf("cannot write cointracking header: %w", err)
	}
	for _, rec := range records {
		row := []string{
			"Income",
			rec.Amount.String(),
			string(rec.Coin),
			"0",
			ct.currency,
			"0",
			ct.currency,
			"",
			string(rec.Coin) + " STAKING",
			"staking reward",
			rec.Time.Format(coinTrackingTimeFormat),
			"",
			"0",
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write cointracking row for line %d: %w", rec.Line, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
