package date

import (
	"fmt"
	"strings"
	"time"
)

// Quarter identifies one quarter of a calendar year, or the whole year.
type Quarter int

const (
	Q1 Quarter = iota + 1
	Q2
	Q3
	Q4
	// All stands for the whole calendar year.
	All
)

func (q Quarter) String() string {
	switch q {
	case Q1:
		return "q1"
	case Q2:
		return "q2"
	case Q3:
		return "q3"
	case Q4:
		return "q4"
	case All:
		return "all"
	default:
		panic(fmt.Sprintf("unknown quarter %d", int(q)))
	}
}

// ParseQuarter normalizes a quarter selector. It accepts "q1".."q4", the bare
// digits "1".."4", and "all", case-insensitively.
func ParseQuarter(s string) (Quarter, error) {
	switch strings.ToLower(s) {
	case "q1", "1":
		return Q1, nil
	case "q2", "2":
		return Q2, nil
	case "q3", "3":
		return Q3, nil
	case "q4", "4":
		return Q4, nil
	case "all":
		return All, nil
	default:
		return 0, fmt.Errorf("unknown quarter %q", s)
	}
}

// months returns the first and last month covered by the quarter.
func (q Quarter) months() (first, last time.Month) {
	if q == All {
		return time.January, time.December
	}
	first = time.Month(3*(int(q)-1) + 1)
	return first, first + 2
}
