package staketax

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

// krakenRewardType tags a ledger entry as a staking reward in Kraken exports.
const krakenRewardType = "staking"

// KrakenParser reads the CSV ledger export from kraken.com.
//
// Kraken ledgers mix trades, transfers and staking rewards; only rows whose
// "type" is "staking" become records, everything else is silently skipped.
// The asset ticker is taken from the row itself and normalized, so the coin
// configuration plays no part here. Expected columns are at least "time",
// "type", "asset" and "amount".
type KrakenParser struct{}

func (KrakenParser) Parse(r io.Reader) ([]RewardRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read kraken header: %w", err)
	}
	cols, err := indexColumns(header, "time", "type", "asset", "amount")
	if err != nil {
		return nil, fmt.Errorf("not a kraken ledger export: %w", err)
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

		kind, err := cols.field(row, "type", line)
		if err != nil {
			return nil, err
		}
		if kind != krakenRewardType {
			skipped++
			continue
		}

		rawTime, err := cols.field(row, "time", line)
		if err != nil {
			return nil, err
		}
		rawAsset, err := cols.field(row, "asset", line)
		if err != nil {
			return nil, err
		}
		rawAmount, err := cols.field(row, "amount", line)
		if err != nil {
			return nil, err
		}

		t, err := parseTime(rawTime, line)
		if err != nil {
			return nil, err
		}
		amount, err := parseAmount(rawAmount, line)
		if err != nil {
			return nil, err
		}
		records = append(records, RewardRecord{
			Time:   t,
			Coin:   Normalize(rawAsset),
			Amount: amount,
			Line:   line,
		})
	}

	logrus.WithFields(logrus.Fields{"rewards": len(records), "skipped": skipped}).
		Debug("parsed kraken ledger")
	return records, nil
}
