package analytics

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/activity"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/analytics"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/target"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/workingdays"
)

// DayCalculator is the working-day arithmetic the analytics views sit
// on top of.
type DayCalculator interface {
	Compute(ctx context.Context, q workingdays.Query) (workingdays.Result, error)
	WorkingDates(ctx context.Context, q workingdays.Query) ([]time.Time, bool, error)
}

type ServiceImpl struct {
	calc         DayCalculator
	activityRepo activity.Repository
	monthlyRepo  target.MonthlyTargetRepository
}

func NewService(calc DayCalculator, activityRepo activity.Repository, monthlyRepo target.MonthlyTargetRepository) analytics.Service {
	return &ServiceImpl{
		calc:         calc,
		activityRepo: activityRepo,
		monthlyRepo:  monthlyRepo,
	}
}

// RunRate implements analytics.Service. Required pace is what is left
// of the monthly target spread over the staff member's remaining
// working days; current pace is delivered so far over elapsed days.
func (s *ServiceImpl) RunRate(ctx context.Context, staffID, serviceID string, fy workingdays.FinancialYear, month time.Month) (analytics.RunRateResponse, error) {
	days, err := s.calc.Compute(ctx, workingdays.Query{FinancialYear: fy, Month: month, StaffID: &staffID})
	if err != nil {
		return analytics.RunRateResponse{}, err
	}

	year := fy.CalendarYear(month)
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	targetValue := 0
	row, err := s.monthlyRepo.Get(ctx, staffID, serviceID, month, year)
	switch {
	case err == nil:
		targetValue = row.Value
	case errors.Is(err, target.ErrMonthlyTargetNotFound):
		// No target set yet: the view still renders with zero.
	default:
		return analytics.RunRateResponse{}, fmt.Errorf("fetch monthly target: %w", err)
	}

	delivered, err := s.activityRepo.SumDelivered(ctx, staffID, &serviceID, monthStart, monthEnd)
	if err != nil {
		return analytics.RunRateResponse{}, fmt.Errorf("sum delivered: %w", err)
	}

	remaining := days.StaffWorkingDays - days.WorkingDaysUpToToday
	if remaining < 0 {
		remaining = 0
	}
	outstanding := targetValue - delivered
	if outstanding < 0 {
		outstanding = 0
	}

	required := decimal.Zero
	if remaining > 0 {
		required = decimal.NewFromInt(int64(outstanding)).
			Div(decimal.NewFromInt(int64(remaining))).Round(2)
	}
	current := decimal.Zero
	if days.WorkingDaysUpToToday > 0 {
		current = decimal.NewFromInt(int64(delivered)).
			Div(decimal.NewFromInt(int64(days.WorkingDaysUpToToday))).Round(2)
	}

	return analytics.RunRateResponse{
		StaffID:          staffID,
		ServiceID:        serviceID,
		Month:            int(month),
		Year:             year,
		Target:           targetValue,
		Delivered:        delivered,
		WorkingDays:      days.StaffWorkingDays,
		WorkingDaysSoFar: days.WorkingDaysUpToToday,
		RequiredPerDay:   required,
		CurrentPerDay:    current,
		OnTrack:          outstanding == 0 || (remaining > 0 && current.GreaterThanOrEqual(required)),
		Fallback:         days.Fallback,
	}, nil
}

// Consistency implements analytics.Service.
func (s *ServiceImpl) Consistency(ctx context.Context, staffID string, fy workingdays.FinancialYear, month time.Month) (analytics.ConsistencyResponse, error) {
	dates, fallback, err := s.calc.WorkingDates(ctx, workingdays.Query{FinancialYear: fy, Month: month, StaffID: &staffID})
	if err != nil {
		return analytics.ConsistencyResponse{}, err
	}

	year := fy.CalendarYear(month)
	active, err := s.activeDateSet(ctx, staffID, year, month)
	if err != nil {
		return analytics.ConsistencyResponse{}, err
	}

	activeWorkingDays := 0
	for _, d := range dates {
		if _, ok := active[dateKey(d)]; ok {
			activeWorkingDays++
		}
	}

	percentage := decimal.Zero
	if len(dates) > 0 {
		percentage = decimal.NewFromInt(int64(activeWorkingDays)).
			Div(decimal.NewFromInt(int64(len(dates)))).
			Mul(decimal.NewFromInt(100)).Round(1)
	}

	return analytics.ConsistencyResponse{
		StaffID:          staffID,
		Month:            int(month),
		Year:             year,
		WorkingDaysSoFar: len(dates),
		ActiveDays:       activeWorkingDays,
		Percentage:       percentage,
		Fallback:         fallback,
	}, nil
}

// BagelStreak implements analytics.Service. Walks the month's working
// dates up to today; a bagel day is one with nothing recorded. The
// current streak is the trailing run of bagel days.
func (s *ServiceImpl) BagelStreak(ctx context.Context, staffID string, fy workingdays.FinancialYear, month time.Month) (analytics.BagelStreakResponse, error) {
	dates, fallback, err := s.calc.WorkingDates(ctx, workingdays.Query{FinancialYear: fy, Month: month, StaffID: &staffID})
	if err != nil {
		return analytics.BagelStreakResponse{}, err
	}

	year := fy.CalendarYear(month)
	active, err := s.activeDateSet(ctx, staffID, year, month)
	if err != nil {
		return analytics.BagelStreakResponse{}, err
	}

	var bagelDays, current, longest int
	for _, d := range dates {
		if _, ok := active[dateKey(d)]; ok {
			current = 0
			continue
		}
		bagelDays++
		current++
		if current > longest {
			longest = current
		}
	}

	return analytics.BagelStreakResponse{
		StaffID:       staffID,
		Month:         int(month),
		Year:          year,
		BagelDays:     bagelDays,
		CurrentStreak: current,
		LongestStreak: longest,
		Fallback:      fallback,
	}, nil
}

func (s *ServiceImpl) activeDateSet(ctx context.Context, staffID string, year int, month time.Month) (map[string]struct{}, error) {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := monthStart.AddDate(0, 1, -1)

	days, err := s.activityRepo.ActiveDays(ctx, staffID, monthStart, monthEnd)
	if err != nil {
		return nil, fmt.Errorf("fetch active days: %w", err)
	}

	set := make(map[string]struct{}, len(days))
	for _, d := range days {
		set[dateKey(d)] = struct{}{}
	}
	return set, nil
}

func dateKey(d time.Time) string {
	return d.Format("2006-01-02")
}
