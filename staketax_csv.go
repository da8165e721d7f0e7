package staketax

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// staketaxRewardType tags a stake.tax row as a staking reward.
const staketaxRewardType = "STAKING"

// StakeTaxParser reads the CSV export produced by stake.tax.
//
// The export mixes transaction types; only rows whose "tx_type" is "STAKING"
// become records. The canonical coin comes from configuration. An empty
// received_amount means zero. Expected columns are at least "timestamp",
// "tx_type" and "received_amount".
type StakeTaxParser struct {
	Coin Coin
}

func (p StakeTaxParser) Parse(r io.Reader) ([]RewardRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read stake.tax header: %w", err)
	}
	cols, err := indexColumns(header, "timestamp", "tx_type", "received_amount")
	if err != nil {
		return nil, fmt.Errorf("not a stake.tax export: %w", err)
	}

	var records []RewardRecord
	skipped := 0
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		kind, err := cols.field(row, "tx_type", line)
		if err != nil {
			return nil, err
		}
		if kind != staketaxRewardType {
			skipped++
			continue
		}

		rawTime, err := cols.field(row, "timestamp", line)
		if err != nil {
			return nil, err
		}
		rawAmount, err := cols.field(row, "received_amount", line)
		if err != nil {
			return nil, err
		}

		t, err := parseTime(rawTime, line)
		if err != nil {
			return nil, err
		}
		amount := Quantity{}
		if rawAmount != "" {
			if amount, err = parseAmount(rawAmount, line); err != nil {
				return nil, err
			}
		}
		records = append(records, RewardRecord{Time: t, Coin: p.Coin, Amount: amount, Line: line})
	}

	logrus.WithFields(logrus.Fields{"rewards": len(records), "skipped": skipped}).
		Debug("parsed stake.tax export")
	return records, nil
}
