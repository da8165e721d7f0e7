package staketax

import (
	"fmt"
	"io"
	"time"
)

// Parser consumes one raw ledger export and produces the reward records it
// contains. Implementations exist for each supported source; the set is
// small and closed, selected once by NewConversion.
type Parser interface {
	Parse(r io.Reader) ([]RewardRecord, error)
}

// columns maps a CSV header to column indexes, so parsers tolerate column
// reordering and extra columns.
type columns map[string]int

// indexColumns builds the column index from a header row and fails fast when
// a required column is missing.
func indexColumns(header []string, required ...string) (columns, error) {
	cols := make(columns, len(header))
	for i, name := range header {
		cols[name] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("missing required column %q", name)
		}
	}
	return cols, nil
}

// field returns the named cell of a row, or an error when the row is too
// short to hold it.
func (c columns) field(row []string, name string, line int) (string, error) {
	i := c[name]
	if i >= len(row) {
		return "", fmt.Errorf("line %d: missing column %q", line, name)
	}
	return row[i], nil
}

// parseTime parses a reward timestamp. An unparseable timestamp on a reward
// row aborts the whole run: silently dropping financial records would
// corrupt the report.
func parseTime(s string, line int) (time.Time, error) {
	t, err := time.Parse(TimeFormat, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("line %d: invalid timestamp %q want format %q: %w", line, s, TimeFormat, err)
	}
	return t, nil
}

// parseAmount parses a reward amount and rejects negative values.
func parseAmount(s string, line int) (Quantity, error) {
	q, err := ParseQuantity(s)
	if err != nil {
		return Quantity{}, fmt.Errorf("line %d: %w", line, err)
	}
	if q.IsNegative() {
		return Quantity{}, fmt.Errorf("line %d: negative reward amount %q", line, s)
	}
	return q, nil
}
