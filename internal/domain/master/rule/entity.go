package rule

import (
	"fmt"
	"time"
)

// DistributionRule is descriptive master data for the UI's target
// breakdown view: a named period of the financial year, the calendar
// months it covers and the share of the annual target expected in it.
//
// Invariant across the full set: every month 1-12 appears in exactly
// one rule and the percentages sum to 100.
type DistributionRule struct {
	ID         string
	PeriodName string
	Months     []time.Month
	Percentage float64
	Position   int

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ValidateSet checks the whole-set invariant. The target redistributor
// itself walks fixed checkpoints regardless; this is caller-side
// validation for the settings CRUD.
func ValidateSet(rules []DistributionRule) error {
	seen := make(map[time.Month]string, 12)
	var pctSum float64
	for _, r := range rules {
		for _, m := range r.Months {
			if m < time.January || m > time.December {
				return fmt.Errorf("rule %q: month %d out of range", r.PeriodName, m)
			}
			if prev, dup := seen[m]; dup {
				return fmt.Errorf("month %s appears in rules %q and %q", m, prev, r.PeriodName)
			}
			seen[m] = r.PeriodName
		}
		pctSum += r.Percentage
	}
	if len(seen) != 12 {
		return fmt.Errorf("rules cover %d of 12 months", len(seen))
	}
	if pctSum < 99.999 || pctSum > 100.001 {
		return fmt.Errorf("rule percentages sum to %.2f, want 100", pctSum)
	}
	return nil
}
