package date

// Range represents a range of dates.
type Range struct{ From, To Date }

// NewRange returns the inclusive date range covered by a quarter of the
// given year (or the whole year for All).
func NewRange(year int, q Quarter) Range {
	first, last := q.months()
	return Range{
		From: New(year, first, 1),
		To:   New(year, last+1, 0), // day 0 of the next month normalizes to the last day
	}
}

// Contains return true if date is included in the range (boundaries included).
func (r Range) Contains(d Date) bool { return !d.Before(r.From) && !d.After(r.To) }
