package staketax

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
)

// SubscanJSONParser reads the reward-history JSON envelope served by the
// subscan.io API: rewards live under $.data.list, each entry carrying a
// "block_timestamp" (unix seconds) and an "amount" (token units, as a string
// or a number). As with the CSV export, the asset is not self-reported and
// the canonical coin comes from configuration.
type SubscanJSONParser struct {
	Coin Coin
}

func (p SubscanJSONParser) Parse(r io.Reader) ([]RewardRecord, error) {
	var jobj any
	if err := json.NewDecoder(r).Decode(&jobj); err != nil {
		return nil, fmt.Errorf("cannot parse subscan JSON: %w", err)
	}

	path := "$.data.list"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return nil, fmt.Errorf("not a subscan reward envelope: %q: %w", path, err)
	}
	list, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("not a subscan reward envelope: %q is not a list", path)
	}

	records := make([]RewardRecord, 0, len(list))
	for i, e := range list {
		// the entry index stands in for a line number in diagnostics
		entry := i + 1

		m, ok := e.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("entry %d: not a reward object", entry)
		}
		ts, ok := m["block_timestamp"].(float64)
		if !ok {
			return nil, fmt.Errorf("entry %d: missing block_timestamp", entry)
		}

		var amount Quantity
		switch v := m["amount"].(type) {
		case string:
			if amount, err = parseAmount(v, entry); err != nil {
				return nil, err
			}
		case float64:
			if amount = Q(v); amount.IsNegative() {
				return nil, fmt.Errorf("entry %d: negative reward amount %v", entry, v)
			}
		default:
			return nil, fmt.Errorf("entry %d: missing amount", entry)
		}

		records = append(records, RewardRecord{
			Time:   time.Unix(int64(ts), 0).UTC(),
			Coin:   p.Coin,
			Amount: amount,
			Line:   entry,
		})
	}
	return records, nil
}
