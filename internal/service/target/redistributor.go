package target

import (
	"math"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/rule"
)

// Checkpoint period names. These are the keys of
// RedistributionInput.ActualsByPeriod and match the seeded
// distribution-rule master rows.
const (
	PeriodAprilJuly       = "april-july"
	PeriodAugustNovember  = "august-november"
	PeriodDecemberJanuary = "december-january"
)

// checkpoint is a cumulative milestone of the Self-Assessment year: by
// the end of its window the staff member should have this share of the
// annual target behind them.
type checkpoint struct {
	period     string
	window     []time.Month
	cumulative float64
}

// The checkpoint schedule is fixed. Distribution rules in master data
// describe the same periods for the UI; the arithmetic here does not
// re-derive percentages from them.
var checkpoints = []checkpoint{
	{PeriodAprilJuly, []time.Month{time.April, time.May, time.June, time.July}, 50},
	{PeriodAugustNovember, []time.Month{time.August, time.September, time.October, time.November}, 90},
	{PeriodDecemberJanuary, []time.Month{time.December, time.January}, 100},
}

// RedistributionInput carries everything the allocation depends on.
// The computation is pure: same input, same allocation.
type RedistributionInput struct {
	AnnualTarget int
	// ActualsByPeriod holds delivered counts summed per checkpoint
	// period, used to absorb already-banked work when a checkpoint
	// window is entirely in the past.
	ActualsByPeriod map[string]int
	CurrentMonth    time.Month
	// Overrides pin months to a fixed value; they are never
	// recomputed. February and March entries are ignored.
	Overrides map[time.Month]int
	Rules     []rule.DistributionRule
}

// CalculateAllMonths apportions an annual Self-Assessment target across
// the twelve calendar months.
//
// February and March are always zero: no filing activity is expected in
// them. Months before CurrentMonth (in financial-year order) are left
// untouched so a mid-year re-plan only moves future months. The
// returned allocation always sums to AnnualTarget when it is positive
// and at least one adjustable month remains.
func CalculateAllMonths(in RedistributionInput) map[time.Month]int {
	alloc := make(map[time.Month]int, 12)
	for m := time.January; m <= time.December; m++ {
		alloc[m] = 0
	}
	if in.AnnualTarget <= 0 || len(in.Rules) == 0 {
		return alloc
	}

	overridden := make(map[time.Month]bool, len(in.Overrides))
	for m, v := range in.Overrides {
		if m < time.January || m > time.December || m == time.February || m == time.March {
			continue
		}
		alloc[m] = v
		overridden[m] = true
	}

	current := fyIndex(in.CurrentMonth)

	// carried tracks how much of the annual target is already covered
	// going into each checkpoint, by actuals for past windows and by
	// overrides and prior checkpoint totals otherwise.
	carried := 0
	for _, cp := range checkpoints {
		cum := int(math.Round(float64(in.AnnualTarget) * cp.cumulative / 100))

		var eligible []time.Month
		overridesInWindow := 0
		for _, m := range cp.window {
			if overridden[m] {
				overridesInWindow += alloc[m]
				continue
			}
			if fyIndex(m) < current {
				continue
			}
			eligible = append(eligible, m)
		}

		if len(eligible) == 0 {
			// Whole window is behind us (or pinned): what was actually
			// delivered in it counts toward the next checkpoint.
			carried += in.ActualsByPeriod[cp.period]
			continue
		}

		remaining := cum - carried - overridesInWindow
		if remaining < 0 {
			remaining = 0
		}
		shares := DistributeIntegerTarget(remaining, len(eligible))
		for i, m := range eligible {
			alloc[m] = shares[i]
		}

		carried += overridesInWindow + remaining
		if carried < cum {
			carried = cum
		}
	}

	total := 0
	for _, v := range alloc {
		total += v
	}
	if diff := in.AnnualTarget - total; diff != 0 {
		if m, ok := latestAdjustableMonth(current, overridden); ok {
			alloc[m] += diff
		}
	}

	alloc[time.February] = 0
	alloc[time.March] = 0
	return alloc
}

// DistributeIntegerTarget splits total across n slots without
// fractional drift: every slot gets floor(total/n) and the first
// total-mod-n slots get one extra unit. The returned values always sum
// to total.
func DistributeIntegerTarget(total, n int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	base := total / n
	remainder := total - base*n
	for i := range out {
		out[i] = base
		if i < remainder {
			out[i]++
		}
	}
	return out
}

// latestAdjustableMonth returns the last current-or-future month of the
// financial year that is not pinned by an override, used to absorb
// rounding residue. April through January only; February and March are
// never adjustable.
func latestAdjustableMonth(current int, overridden map[time.Month]bool) (time.Month, bool) {
	var (
		best  time.Month
		found bool
	)
	for m := time.January; m <= time.December; m++ {
		if m == time.February || m == time.March || overridden[m] {
			continue
		}
		if fyIndex(m) < current {
			continue
		}
		if !found || fyIndex(m) > fyIndex(best) {
			best = m
			found = true
		}
	}
	return best, found
}

// fyIndex orders calendar months by financial-year position:
// April is 0, January is 9, March is 11.
func fyIndex(m time.Month) int {
	return (int(m) - int(time.April) + 12) % 12
}
