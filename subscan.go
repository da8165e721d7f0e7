package staketax

import (
	"encoding/csv"
	"fmt"
	"io"
)

// SubscanParser reads the CSV reward export from subscan.io.
//
// Subscan exports one row per reward event and do not self-report the asset,
// so the canonical coin comes from configuration. Expected columns are at
// least "Date" and "Value"; the export also carries "Event Index", "Block",
// "Extrinsic Index" and "Action", all ignored here.
type SubscanParser struct {
	Coin Coin
}

func (p SubscanParser) Parse(r io.Reader) ([]RewardRecord, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read subscan header: %w", err)
	}
	cols, err := indexColumns(header, "Date", "Value")
	if err != nil {
		return nil, fmt.Errorf("not a subscan export: %w", err)
	}

	var records []RewardRecord
	for line := 2; ; line++ {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec, err := p.record(cols, row, line)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// record converts one export row. Every row of a subscan export is a reward.
func (p SubscanParser) record(cols columns, row []string, line int) (RewardRecord, error) {
	rawDate, err := cols.field(row, "Date", line)
	if err != nil {
		return RewardRecord{}, err
	}
	rawValue, err := cols.field(row, "Value", line)
	if err != nil {
		return RewardRecord{}, err
	}

	t, err := parseTime(rawDate, line)
	if err != nil {
		return RewardRecord{}, err
	}
	amount, err := parseAmount(rawValue, line)
	if err != nil {
		return RewardRecord{}, err
	}
	return RewardRecord{Time: t, Coin: p.Coin, Amount: amount, Line: line}, nil
}
