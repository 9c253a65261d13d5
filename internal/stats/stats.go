package stats

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Summary holds the numeric summary of one column. Values that do not parse
// as numbers are skipped and counted separately.
type Summary struct {
	Numeric int
	Skipped int
	Min     decimal.Decimal
	Max     decimal.Decimal
	Sum     decimal.Decimal
}

// Summarize computes a numeric summary over the given column values.
func Summarize(values []string) Summary {
	var s Summary
	for _, raw := range values {
		v := strings.TrimSpace(raw)
		if v == "" {
			s.Skipped++
			continue
		}
		d, err := decimal.NewFromString(v)
		if err != nil {
			s.Skipped++
			continue
		}
		if s.Numeric == 0 {
			s.Min, s.Max = d, d
		} else {
			if d.LessThan(s.Min) {
				s.Min = d
			}
			if d.GreaterThan(s.Max) {
				s.Max = d
			}
		}
		s.Sum = s.Sum.Add(d)
		s.Numeric++
	}
	return s
}

// String renders the summary for the status bar and the stats subcommand.
func (s Summary) String() string {
	if s.Numeric == 0 {
		return fmt.Sprintf("no numeric values (%d skipped)", s.Skipped)
	}
	return fmt.Sprintf("n=%d min=%s max=%s sum=%s (%d skipped)",
		s.Numeric, s.Min.String(), s.Max.String(), s.Sum.String(), s.Skipped)
}
