package target

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/rule"
)

func seedRules() []rule.DistributionRule {
	return []rule.DistributionRule{
		{PeriodName: PeriodAprilJuly, Months: []time.Month{time.April, time.May, time.June, time.July}, Percentage: 50, Position: 1},
		{PeriodName: PeriodAugustNovember, Months: []time.Month{time.August, time.September, time.October, time.November}, Percentage: 40, Position: 2},
		{PeriodName: PeriodDecemberJanuary, Months: []time.Month{time.December, time.January, time.February, time.March}, Percentage: 10, Position: 3},
	}
}

func allocSum(alloc map[time.Month]int) int {
	total := 0
	for _, v := range alloc {
		total += v
	}
	return total
}

func TestCalculateAllMonths_FreshYear(t *testing.T) {
	t.Parallel()
	alloc := CalculateAllMonths(RedistributionInput{
		AnnualTarget: 1200,
		CurrentMonth: time.April,
		Rules:        seedRules(),
	})

	for _, m := range []time.Month{time.April, time.May, time.June, time.July} {
		assert.Equal(t, 150, alloc[m], "month %s", m)
	}
	for _, m := range []time.Month{time.August, time.September, time.October, time.November} {
		assert.Equal(t, 120, alloc[m], "month %s", m)
	}
	assert.Equal(t, 60, alloc[time.December])
	assert.Equal(t, 60, alloc[time.January])
	assert.Equal(t, 0, alloc[time.February])
	assert.Equal(t, 0, alloc[time.March])
	assert.Equal(t, 1200, allocSum(alloc))
}

func TestCalculateAllMonths_OverrideIsPinnedAndExcluded(t *testing.T) {
	t.Parallel()
	alloc := CalculateAllMonths(RedistributionInput{
		AnnualTarget: 1200,
		CurrentMonth: time.April,
		Overrides:    map[time.Month]int{time.May: 999},
		Rules:        seedRules(),
	})

	assert.Equal(t, 999, alloc[time.May])
	// The override alone exceeds the first checkpoint, so April, June
	// and July need nothing more.
	assert.Equal(t, 0, alloc[time.April])
	assert.Equal(t, 0, alloc[time.June])
	assert.Equal(t, 0, alloc[time.July])
	// Second checkpoint tops up to 1080: 81 across four months.
	assert.Equal(t, 21, alloc[time.August])
	assert.Equal(t, 20, alloc[time.September])
	assert.Equal(t, 20, alloc[time.October])
	assert.Equal(t, 20, alloc[time.November])
	assert.Equal(t, 60, alloc[time.December])
	assert.Equal(t, 60, alloc[time.January])
	assert.Equal(t, 1200, allocSum(alloc))
}

// A mid-year re-plan: the first window is entirely past, its delivered
// actuals are banked, and the shortfall lands on the remaining months.
func TestCalculateAllMonths_PastWindowBanksActuals(t *testing.T) {
	t.Parallel()
	alloc := CalculateAllMonths(RedistributionInput{
		AnnualTarget:    1200,
		CurrentMonth:    time.September,
		ActualsByPeriod: map[string]int{PeriodAprilJuly: 400},
		Rules:           seedRules(),
	})

	// April-August are untouched (past months stay at zero here).
	for _, m := range []time.Month{time.April, time.May, time.June, time.July, time.August} {
		assert.Equal(t, 0, alloc[m], "month %s", m)
	}
	// 1080 - 400 = 680 across September-November.
	assert.Equal(t, 227, alloc[time.September])
	assert.Equal(t, 227, alloc[time.October])
	assert.Equal(t, 226, alloc[time.November])
	assert.Equal(t, 60, alloc[time.December])
	// Reconciliation pushes the 400 shortfall onto January.
	assert.Equal(t, 460, alloc[time.January])
	assert.Equal(t, 1200, allocSum(alloc))
}

func TestCalculateAllMonths_SumInvariant(t *testing.T) {
	t.Parallel()
	cases := []RedistributionInput{
		{AnnualTarget: 1200, CurrentMonth: time.April, Rules: seedRules()},
		{AnnualTarget: 1201, CurrentMonth: time.April, Rules: seedRules()},
		{AnnualTarget: 7, CurrentMonth: time.December, Rules: seedRules()},
		{AnnualTarget: 365, CurrentMonth: time.June, Overrides: map[time.Month]int{time.July: 10, time.October: 99}, Rules: seedRules()},
		{AnnualTarget: 500, CurrentMonth: time.January, ActualsByPeriod: map[string]int{PeriodAprilJuly: 120, PeriodAugustNovember: 180}, Rules: seedRules()},
		{AnnualTarget: 1, CurrentMonth: time.April, Rules: seedRules()},
	}
	for _, in := range cases {
		alloc := CalculateAllMonths(in)
		assert.Equal(t, in.AnnualTarget, allocSum(alloc), "target %d month %s", in.AnnualTarget, in.CurrentMonth)
		assert.Equal(t, 0, alloc[time.February])
		assert.Equal(t, 0, alloc[time.March])
	}
}

func TestCalculateAllMonths_FebruaryMarchOverridesIgnored(t *testing.T) {
	t.Parallel()
	alloc := CalculateAllMonths(RedistributionInput{
		AnnualTarget: 1200,
		CurrentMonth: time.April,
		Overrides:    map[time.Month]int{time.February: 500, time.March: 500},
		Rules:        seedRules(),
	})
	assert.Equal(t, 0, alloc[time.February])
	assert.Equal(t, 0, alloc[time.March])
	assert.Equal(t, 1200, allocSum(alloc))
}

func TestCalculateAllMonths_ZeroTargetOrNoRules(t *testing.T) {
	t.Parallel()
	for _, in := range []RedistributionInput{
		{AnnualTarget: 0, CurrentMonth: time.April, Rules: seedRules()},
		{AnnualTarget: -50, CurrentMonth: time.April, Rules: seedRules()},
		{AnnualTarget: 1200, CurrentMonth: time.April},
	} {
		alloc := CalculateAllMonths(in)
		require.Len(t, alloc, 12)
		assert.Equal(t, 0, allocSum(alloc))
	}
}

func TestCalculateAllMonths_Deterministic(t *testing.T) {
	t.Parallel()
	in := RedistributionInput{
		AnnualTarget:    987,
		CurrentMonth:    time.July,
		ActualsByPeriod: map[string]int{PeriodAprilJuly: 111},
		Overrides:       map[time.Month]int{time.September: 40},
		Rules:           seedRules(),
	}
	first := CalculateAllMonths(in)
	second := CalculateAllMonths(in)
	assert.Equal(t, first, second)
}

func TestDistributeIntegerTarget(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []int{150, 150, 150, 150}, DistributeIntegerTarget(600, 4))
	assert.Equal(t, []int{227, 227, 226}, DistributeIntegerTarget(680, 3))
	assert.Equal(t, []int{1, 1, 1, 0, 0}, DistributeIntegerTarget(3, 5))
	assert.Equal(t, []int{0, 0}, DistributeIntegerTarget(0, 2))
	assert.Nil(t, DistributeIntegerTarget(10, 0))
}

func TestDistributeIntegerTarget_Properties(t *testing.T) {
	t.Parallel()
	for total := 0; total <= 50; total++ {
		for n := 1; n <= 12; n++ {
			out := DistributeIntegerTarget(total, n)
			require.Len(t, out, n)
			sum, floor := 0, total/n
			for _, v := range out {
				sum += v
				assert.GreaterOrEqual(t, v, floor)
				assert.LessOrEqual(t, v, floor+1)
			}
			assert.Equal(t, total, sum, "total=%d n=%d", total, n)
		}
	}
}
