package staketax

import "sort"

// CoinTotal aggregates the rewards of one coin: how many reward rows and
// their total amount.
type CoinTotal struct {
	Coin    Coin
	Rewards int
	Total   Quantity
}

// Summarize aggregates records per coin, sorted by coin symbol.
func Summarize(records []RewardRecord) []CoinTotal {
	byCoin := make(map[Coin]CoinTotal)
	for _, rec := range records {
		t := byCoin[rec.Coin]
		t.Coin = rec.Coin
		t.Rewards++
		t.Total = t.Total.Add(rec.Amount)
		byCoin[rec.Coin] = t
	}

	totals := make([]CoinTotal, 0, len(byCoin))
	for _, t := range byCoin {
		totals = append(totals, t)
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Coin < totals[j].Coin })
	return totals
}
