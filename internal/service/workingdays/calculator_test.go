package workingdays

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/workingdays"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/clock"
)

// ===== in-memory fakes =====

type fakeHolidayRepo struct {
	byRegion map[holiday.Region][]holiday.BankHoliday
	err      error
}

func (f *fakeHolidayRepo) ListByRegion(_ context.Context, region holiday.Region, from, to time.Time) ([]holiday.BankHoliday, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []holiday.BankHoliday
	for _, h := range f.byRegion[region] {
		if !h.Date.Before(from) && !h.Date.After(to) {
			out = append(out, h)
		}
	}
	return out, nil
}

func (f *fakeHolidayRepo) List(_ context.Context, _, _ time.Time) ([]holiday.BankHoliday, error) {
	return nil, nil
}

func (f *fakeHolidayRepo) Upsert(_ context.Context, hs []holiday.BankHoliday) (int, error) {
	return len(hs), nil
}

type fakeLeaveRepo struct {
	rows []leave.StaffLeave
	err  error
}

func (f *fakeLeaveRepo) ListOverlapping(_ context.Context, staffID string, from, to time.Time) ([]leave.StaffLeave, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []leave.StaffLeave
	for _, r := range f.rows {
		if r.StaffID == staffID && !r.StartDate.After(to) && !r.EndDate.Before(from) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeLeaveRepo) Create(_ context.Context, l leave.StaffLeave) (leave.StaffLeave, error) {
	return l, nil
}
func (f *fakeLeaveRepo) GetByID(_ context.Context, _ string) (leave.StaffLeave, error) {
	return leave.StaffLeave{}, leave.ErrLeaveNotFound
}
func (f *fakeLeaveRepo) ListByStaff(_ context.Context, _ string) ([]leave.StaffLeave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) List(_ context.Context, _, _ time.Time) ([]leave.StaffLeave, error) {
	return nil, nil
}
func (f *fakeLeaveRepo) Update(_ context.Context, _ leave.StaffLeave) error { return nil }
func (f *fakeLeaveRepo) Delete(_ context.Context, _ string) error           { return nil }

type fakeStaffRepo struct {
	rows map[string]staff.Staff
}

func (f *fakeStaffRepo) GetByID(_ context.Context, id string) (staff.Staff, error) {
	s, ok := f.rows[id]
	if !ok {
		return staff.Staff{}, staff.ErrStaffNotFound
	}
	return s, nil
}

func (f *fakeStaffRepo) Create(_ context.Context, s staff.Staff) (staff.Staff, error) { return s, nil }
func (f *fakeStaffRepo) GetByEmail(_ context.Context, _ string) (staff.Staff, error) {
	return staff.Staff{}, staff.ErrStaffNotFound
}
func (f *fakeStaffRepo) List(_ context.Context, _ bool) ([]staff.Staff, error) { return nil, nil }
func (f *fakeStaffRepo) Update(_ context.Context, _ staff.Staff) error         { return nil }
func (f *fakeStaffRepo) Delete(_ context.Context, _ string) error              { return nil }

// ===== helpers =====

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func newTestCalculator(holidays *fakeHolidayRepo, leaves *fakeLeaveRepo, members *fakeStaffRepo, today time.Time) *Calculator {
	if holidays == nil {
		holidays = &fakeHolidayRepo{}
	}
	if leaves == nil {
		leaves = &fakeLeaveRepo{}
	}
	if members == nil {
		members = &fakeStaffRepo{}
	}
	return NewCalculator(holidays, leaves, members, clock.Fixed(today))
}

var fy2025 = workingdays.FinancialYearStarting(2025)

// ===== tests =====

// April 2025 has 22 weekdays; Easter Monday (Apr 21) lands on one of
// them. 2025-04-14 is the 10th weekday of the month.
func TestCompute_AprilWithBankHoliday(t *testing.T) {
	t.Parallel()
	holidays := &fakeHolidayRepo{byRegion: map[holiday.Region][]holiday.BankHoliday{
		holiday.RegionEnglandAndWales: {
			{Date: day(2025, time.April, 21), Region: holiday.RegionEnglandAndWales, Title: "Easter Monday"},
		},
	}}
	calc := newTestCalculator(holidays, nil, nil, day(2025, time.April, 14))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April})
	require.NoError(t, err)

	assert.Equal(t, 21, got.TeamWorkingDays)
	assert.Equal(t, 21, got.StaffWorkingDays)
	assert.Equal(t, 10, got.WorkingDaysUpToToday)
	assert.False(t, got.Fallback)
}

func TestCompute_DuplicateHolidayRowsSubtractOnce(t *testing.T) {
	t.Parallel()
	holidays := &fakeHolidayRepo{byRegion: map[holiday.Region][]holiday.BankHoliday{
		holiday.RegionEnglandAndWales: {
			{Date: day(2025, time.April, 21), Region: holiday.RegionEnglandAndWales, Title: "Easter Monday"},
			{Date: day(2025, time.April, 21), Region: holiday.RegionEnglandAndWales, Title: "Easter Monday (dup)"},
		},
	}}
	calc := newTestCalculator(holidays, nil, nil, day(2025, time.April, 14))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April})
	require.NoError(t, err)
	assert.Equal(t, 21, got.TeamWorkingDays)
}

func TestCompute_WeekendHolidayDoesNotSubtract(t *testing.T) {
	t.Parallel()
	// 2025-04-20 is a Sunday; listing it must not change the count.
	holidays := &fakeHolidayRepo{byRegion: map[holiday.Region][]holiday.BankHoliday{
		holiday.RegionEnglandAndWales: {
			{Date: day(2025, time.April, 20), Region: holiday.RegionEnglandAndWales, Title: "Easter Sunday"},
		},
	}}
	calc := newTestCalculator(holidays, nil, nil, day(2025, time.April, 14))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April})
	require.NoError(t, err)
	assert.Equal(t, 22, got.TeamWorkingDays)
}

func TestCompute_FutureMonthHasZeroElapsed(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator(nil, nil, nil, day(2025, time.April, 14))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.May})
	require.NoError(t, err)
	assert.Equal(t, 0, got.WorkingDaysUpToToday)
	assert.Greater(t, got.TeamWorkingDays, 0)
}

func TestCompute_PastMonthElapsedEqualsFullCount(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator(nil, nil, nil, day(2025, time.June, 2))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April})
	require.NoError(t, err)
	assert.Equal(t, got.TeamWorkingDays, got.WorkingDaysUpToToday)
}

// January of FY 2025/26 is January 2026 (22 weekdays), which is in the
// future relative to April 2025.
func TestCompute_JanuaryResolvesToEndYear(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator(nil, nil, nil, day(2025, time.April, 14))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.January})
	require.NoError(t, err)
	assert.Equal(t, 22, got.TeamWorkingDays)
	assert.Equal(t, 0, got.WorkingDaysUpToToday)
}

func TestCompute_StaffLeaveSubtractsWeekdaysOnly(t *testing.T) {
	t.Parallel()
	staffID := "staff-1"
	leaves := &fakeLeaveRepo{rows: []leave.StaffLeave{
		// Friday through Monday: only 2 weekdays inside the range.
		{StaffID: staffID, StartDate: day(2025, time.April, 11), EndDate: day(2025, time.April, 14), Type: leave.LeaveTypeAnnual},
	}}
	members := &fakeStaffRepo{rows: map[string]staff.Staff{staffID: {ID: staffID}}}
	calc := newTestCalculator(nil, leaves, members, day(2025, time.April, 30))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April, StaffID: &staffID})
	require.NoError(t, err)
	assert.Equal(t, 22, got.TeamWorkingDays)
	assert.Equal(t, 20, got.StaffWorkingDays)
}

func TestCompute_LeaveSpanningMonthBoundaryIsClipped(t *testing.T) {
	t.Parallel()
	staffID := "staff-1"
	leaves := &fakeLeaveRepo{rows: []leave.StaffLeave{
		// Mar 25 - Apr 4: only Apr 1-4 (Tue-Fri, 4 weekdays) count for April.
		{StaffID: staffID, StartDate: day(2025, time.March, 25), EndDate: day(2025, time.April, 4), Type: leave.LeaveTypeAnnual},
	}}
	members := &fakeStaffRepo{rows: map[string]staff.Staff{staffID: {ID: staffID}}}
	calc := newTestCalculator(nil, leaves, members, day(2025, time.April, 30))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April, StaffID: &staffID})
	require.NoError(t, err)
	assert.Equal(t, 18, got.StaffWorkingDays)
}

func TestCompute_FullMonthLeaveClampsToZero(t *testing.T) {
	t.Parallel()
	staffID := "staff-1"
	leaves := &fakeLeaveRepo{rows: []leave.StaffLeave{
		{StaffID: staffID, StartDate: day(2025, time.March, 1), EndDate: day(2025, time.May, 31), Type: leave.LeaveTypeSick},
		// Overlapping second range must not drive the count negative.
		{StaffID: staffID, StartDate: day(2025, time.April, 1), EndDate: day(2025, time.April, 30), Type: leave.LeaveTypeAnnual},
	}}
	members := &fakeStaffRepo{rows: map[string]staff.Staff{staffID: {ID: staffID}}}
	calc := newTestCalculator(nil, leaves, members, day(2025, time.April, 30))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April, StaffID: &staffID})
	require.NoError(t, err)
	assert.Equal(t, 0, got.StaffWorkingDays)
}

func TestCompute_StaffRegionSelectsHolidayCalendar(t *testing.T) {
	t.Parallel()
	staffID := "staff-scot"
	holidays := &fakeHolidayRepo{byRegion: map[holiday.Region][]holiday.BankHoliday{
		holiday.RegionEnglandAndWales: {
			{Date: day(2025, time.April, 21), Region: holiday.RegionEnglandAndWales, Title: "Easter Monday"},
		},
		holiday.RegionScotland: {
			{Date: day(2025, time.April, 18), Region: holiday.RegionScotland, Title: "Good Friday"},
			{Date: day(2025, time.April, 21), Region: holiday.RegionScotland, Title: "Easter Monday"},
		},
	}}
	members := &fakeStaffRepo{rows: map[string]staff.Staff{
		staffID: {ID: staffID, HomeRegion: holiday.RegionScotland},
	}}
	calc := newTestCalculator(holidays, nil, members, day(2025, time.April, 30))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April, StaffID: &staffID})
	require.NoError(t, err)
	assert.Equal(t, 20, got.TeamWorkingDays)
}

func TestCompute_UnknownStaffFallsBackToDefaultRegion(t *testing.T) {
	t.Parallel()
	staffID := "missing"
	holidays := &fakeHolidayRepo{byRegion: map[holiday.Region][]holiday.BankHoliday{
		holiday.RegionEnglandAndWales: {
			{Date: day(2025, time.April, 21), Region: holiday.RegionEnglandAndWales, Title: "Easter Monday"},
		},
	}}
	calc := newTestCalculator(holidays, nil, &fakeStaffRepo{}, day(2025, time.April, 30))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April, StaffID: &staffID})
	require.NoError(t, err)
	assert.Equal(t, 21, got.TeamWorkingDays)
}

func TestCompute_HolidayLookupFailureDegradesToBaseCount(t *testing.T) {
	t.Parallel()
	holidays := &fakeHolidayRepo{err: errors.New("store unreachable")}
	calc := newTestCalculator(holidays, nil, nil, day(2025, time.April, 14))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April})
	require.NoError(t, err)
	assert.True(t, got.Fallback)
	assert.Equal(t, 22, got.TeamWorkingDays)
}

func TestCompute_LeaveLookupFailureDegrades(t *testing.T) {
	t.Parallel()
	staffID := "staff-1"
	leaves := &fakeLeaveRepo{err: errors.New("store unreachable")}
	members := &fakeStaffRepo{rows: map[string]staff.Staff{staffID: {ID: staffID}}}
	calc := newTestCalculator(nil, leaves, members, day(2025, time.April, 30))

	got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April, StaffID: &staffID})
	require.NoError(t, err)
	assert.True(t, got.Fallback)
	assert.Equal(t, got.TeamWorkingDays, got.StaffWorkingDays)
}

func TestCompute_InvalidMonth(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator(nil, nil, nil, day(2025, time.April, 14))

	_, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: 0})
	assert.ErrorIs(t, err, workingdays.ErrInvalidMonth)

	_, err = calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: 13})
	assert.ErrorIs(t, err, workingdays.ErrInvalidMonth)
}

func TestCompute_ElapsedNeverExceedsWorkingDays(t *testing.T) {
	t.Parallel()
	for month := time.January; month <= time.December; month++ {
		calc := newTestCalculator(nil, nil, nil, day(2025, time.September, 17))
		got, err := calc.Compute(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: month})
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got.WorkingDaysUpToToday, 0, "month %s", month)
		assert.LessOrEqual(t, got.WorkingDaysUpToToday, got.TeamWorkingDays, "month %s", month)
	}
}

func TestWorkingDates_StopsAtToday(t *testing.T) {
	t.Parallel()
	holidays := &fakeHolidayRepo{byRegion: map[holiday.Region][]holiday.BankHoliday{
		holiday.RegionEnglandAndWales: {
			{Date: day(2025, time.April, 18), Region: holiday.RegionEnglandAndWales, Title: "Good Friday"},
		},
	}}
	calc := newTestCalculator(holidays, nil, nil, day(2025, time.April, 21))

	dates, fallback, err := calc.WorkingDates(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April})
	require.NoError(t, err)
	assert.False(t, fallback)
	// Weekdays Apr 1-21 minus Good Friday: 14 dates.
	require.Len(t, dates, 14)
	assert.Equal(t, day(2025, time.April, 1), dates[0])
	assert.Equal(t, day(2025, time.April, 21), dates[len(dates)-1])
	assert.NotContains(t, dates, day(2025, time.April, 18))
}

func TestWorkingDates_FutureMonthIsEmpty(t *testing.T) {
	t.Parallel()
	calc := newTestCalculator(nil, nil, nil, day(2025, time.April, 21))

	dates, fallback, err := calc.WorkingDates(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.May})
	require.NoError(t, err)
	assert.False(t, fallback)
	assert.Empty(t, dates)
}

func TestWorkingDates_ExcludesStaffLeave(t *testing.T) {
	t.Parallel()
	staffID := "staff-1"
	leaves := &fakeLeaveRepo{rows: []leave.StaffLeave{
		{StaffID: staffID, StartDate: day(2025, time.April, 7), EndDate: day(2025, time.April, 9), Type: leave.LeaveTypeAnnual},
	}}
	members := &fakeStaffRepo{rows: map[string]staff.Staff{staffID: {ID: staffID}}}
	calc := newTestCalculator(nil, leaves, members, day(2025, time.April, 11))

	dates, _, err := calc.WorkingDates(context.Background(), workingdays.Query{FinancialYear: fy2025, Month: time.April, StaffID: &staffID})
	require.NoError(t, err)
	// Apr 1-11 weekdays (9) minus Mon-Wed leave (3).
	require.Len(t, dates, 6)
	assert.NotContains(t, dates, day(2025, time.April, 8))
}

func TestFinancialYear_CalendarYear(t *testing.T) {
	t.Parallel()
	fy := workingdays.FinancialYearStarting(2025)
	assert.Equal(t, 2025, fy.CalendarYear(time.April))
	assert.Equal(t, 2025, fy.CalendarYear(time.December))
	assert.Equal(t, 2026, fy.CalendarYear(time.January))
	assert.Equal(t, 2026, fy.CalendarYear(time.March))
	assert.Equal(t, "2025/26", fy.String())
}

func TestFinancialYearOf(t *testing.T) {
	t.Parallel()
	assert.Equal(t, workingdays.FinancialYear{Start: 2025, End: 2026}, workingdays.FinancialYearOf(day(2025, time.April, 1)))
	assert.Equal(t, workingdays.FinancialYear{Start: 2024, End: 2025}, workingdays.FinancialYearOf(day(2025, time.March, 31)))
}
