package workingdays

import (
	"context"
	"log/slog"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/workingdays"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/clock"
)

// Calculator counts the working days in one month of a financial year:
// weekdays minus region-scoped bank holidays, and for an individual
// also minus approved leave. It is the single canonical implementation
// used by targets, analytics and the dashboard alike.
type Calculator struct {
	holidayRepo holiday.Repository
	leaveRepo   leave.Repository
	staffRepo   staff.Repository
	clock       clock.Clock
}

func NewCalculator(
	holidayRepo holiday.Repository,
	leaveRepo leave.Repository,
	staffRepo staff.Repository,
	clk clock.Clock,
) *Calculator {
	return &Calculator{
		holidayRepo: holidayRepo,
		leaveRepo:   leaveRepo,
		staffRepo:   staffRepo,
		clock:       clk,
	}
}

// Compute resolves a working-day query.
//
// If the holiday or leave lookup fails the calculator does not fail the
// caller: it degrades to the base weekday count and sets
// Result.Fallback so the UI can show an advisory.
func (c *Calculator) Compute(ctx context.Context, q workingdays.Query) (workingdays.Result, error) {
	if q.Month < time.January || q.Month > time.December {
		return workingdays.Result{}, workingdays.ErrInvalidMonth
	}

	year := q.FinancialYear.CalendarYear(q.Month)
	monthStart := time.Date(year, q.Month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	today := c.clock.Today()

	region := c.regionFor(ctx, q.StaffID)
	holidaySet, fallback := c.holidayDates(ctx, region, monthStart, monthEnd)

	// Elapsed-day mode is decided by comparing first-of-selected-month
	// to first-of-current-month; only the current month walks days.
	firstOfCurrent := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC)
	var working, workingToToday int
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		if isWeekend(d) {
			continue
		}
		if _, isHoliday := holidaySet[dayKey(d)]; isHoliday {
			continue
		}
		working++
		if !d.After(today) {
			workingToToday++
		}
	}

	var elapsed int
	switch {
	case monthStart.After(firstOfCurrent):
		elapsed = 0
	case monthStart.Before(firstOfCurrent):
		elapsed = working
	default:
		elapsed = workingToToday
	}
	if elapsed > working {
		elapsed = working
	}

	staffWorking := working
	if q.StaffID != nil {
		leaveDays, leaveErr := c.countLeaveDays(ctx, *q.StaffID, monthStart, monthEnd, holidaySet)
		if leaveErr != nil {
			slog.Warn("working days: leave lookup failed, ignoring leave", "staff_id", *q.StaffID, "error", leaveErr)
			fallback = true
		} else {
			staffWorking = working - leaveDays
		}
	}
	if staffWorking < 0 {
		staffWorking = 0
	}

	return workingdays.Result{
		TeamWorkingDays:      working,
		StaffWorkingDays:     staffWorking,
		WorkingDaysUpToToday: elapsed,
		Fallback:             fallback,
	}, nil
}

// WorkingDates lists the month's working dates up to today in
// ascending order: weekdays minus bank holidays and, when the query
// names a staff member, minus their leave. Analytics views that need
// the dates themselves (rather than counts) use this.
func (c *Calculator) WorkingDates(ctx context.Context, q workingdays.Query) ([]time.Time, bool, error) {
	if q.Month < time.January || q.Month > time.December {
		return nil, false, workingdays.ErrInvalidMonth
	}

	year := q.FinancialYear.CalendarYear(q.Month)
	monthStart := time.Date(year, q.Month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)
	today := c.clock.Today()
	if monthEnd.After(today) {
		monthEnd = today
	}
	if monthStart.After(monthEnd) {
		return nil, false, nil
	}

	region := c.regionFor(ctx, q.StaffID)
	skip, fallback := c.holidayDates(ctx, region, monthStart, monthEnd)

	if q.StaffID != nil {
		ranges, err := c.leaveRepo.ListOverlapping(ctx, *q.StaffID, monthStart, monthEnd)
		if err != nil {
			slog.Warn("working days: leave lookup failed, ignoring leave", "staff_id", *q.StaffID, "error", err)
			fallback = true
		} else {
			for _, r := range ranges {
				start, end := clipRange(r.StartDate, r.EndDate, monthStart, monthEnd)
				for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
					skip[dayKey(d)] = struct{}{}
				}
			}
		}
	}

	var dates []time.Time
	for d := monthStart; !d.After(monthEnd); d = d.AddDate(0, 0, 1) {
		if isWeekend(d) {
			continue
		}
		if _, skipped := skip[dayKey(d)]; skipped {
			continue
		}
		dates = append(dates, d)
	}
	return dates, fallback, nil
}

// regionFor resolves the holiday calendar for a query. Unknown or
// unreachable staff rows keep the default region.
func (c *Calculator) regionFor(ctx context.Context, staffID *string) holiday.Region {
	if staffID == nil {
		return holiday.DefaultRegion
	}
	member, err := c.staffRepo.GetByID(ctx, *staffID)
	if err != nil {
		slog.Warn("working days: staff lookup failed, using default region",
			"staff_id", *staffID, "error", err)
		return holiday.DefaultRegion
	}
	return member.Region()
}

// holidayDates returns the region's holiday dates in [from, to] as a
// de-duplicated date set. A lookup failure yields an empty set and the
// fallback flag instead of an error.
func (c *Calculator) holidayDates(ctx context.Context, region holiday.Region, from, to time.Time) (map[string]struct{}, bool) {
	set := make(map[string]struct{})
	holidays, err := c.holidayRepo.ListByRegion(ctx, region, from, to)
	if err != nil {
		slog.Warn("working days: holiday lookup failed, using base weekday count", "error", err)
		return set, true
	}
	for _, h := range holidays {
		set[dayKey(h.Date)] = struct{}{}
	}
	return set, false
}

// countLeaveDays counts weekday, non-holiday days covered by the staff
// member's leave within the month. Ranges spanning the month boundary
// are clipped to [monthStart, monthEnd]; overlapping ranges are
// de-duplicated through the date set.
func (c *Calculator) countLeaveDays(
	ctx context.Context,
	staffID string,
	monthStart, monthEnd time.Time,
	holidaySet map[string]struct{},
) (int, error) {
	ranges, err := c.leaveRepo.ListOverlapping(ctx, staffID, monthStart, monthEnd)
	if err != nil {
		return 0, err
	}

	leaveDates := make(map[string]struct{})
	for _, r := range ranges {
		start, end := clipRange(r.StartDate, r.EndDate, monthStart, monthEnd)
		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if isWeekend(d) {
				continue
			}
			if _, isHoliday := holidaySet[dayKey(d)]; isHoliday {
				continue
			}
			leaveDates[dayKey(d)] = struct{}{}
		}
	}
	return len(leaveDates), nil
}

func clipRange(start, end, lo, hi time.Time) (time.Time, time.Time) {
	if start.Before(lo) {
		start = lo
	}
	if end.After(hi) {
		end = hi
	}
	return start, end
}

func isWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func dayKey(d time.Time) string {
	return d.Format("2006-01-02")
}
