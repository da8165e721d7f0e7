package staketax

import (
	"time"

	"github.com/etnz/staketax/date"
)

// TimeFormat is the timestamp layout shared by all supported ledger exports.
const TimeFormat = "2006-01-02 15:04:05"

// RewardRecord is the normalized representation of one staking reward event.
// A record is built by a source parser from one input row, possibly dropped
// by the date filter, and finally consumed read-only by an output renderer.
type RewardRecord struct {
	Time   time.Time
	Coin   Coin
	Amount Quantity

	// Line is the input row that produced the record, for diagnostics.
	Line int
}

// Date returns the calendar date of the reward, the granularity the date
// filter works at.
func (r RewardRecord) Date() date.Date { return date.Of(r.Time) }
