package target

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/activity"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/rule"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/target"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/workingdays"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/clock"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/events"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	db           *database.DB
	annualRepo   target.AnnualTargetRepository
	monthlyRepo  target.MonthlyTargetRepository
	activityRepo activity.Repository
	ruleRepo     rule.Repository
	staffRepo    staff.Repository
	hub          *events.Hub
	clock        clock.Clock
}

func NewService(
	db *database.DB,
	annualRepo target.AnnualTargetRepository,
	monthlyRepo target.MonthlyTargetRepository,
	activityRepo activity.Repository,
	ruleRepo rule.Repository,
	staffRepo staff.Repository,
	hub *events.Hub,
	clk clock.Clock,
) target.Service {
	return &ServiceImpl{
		db:           db,
		annualRepo:   annualRepo,
		monthlyRepo:  monthlyRepo,
		activityRepo: activityRepo,
		ruleRepo:     ruleRepo,
		staffRepo:    staffRepo,
		hub:          hub,
		clock:        clk,
	}
}

// SaveAnnualTarget implements target.Service.
//
// Unlike the working-day calculator there is no degraded mode here: if
// the actuals or rules lookup fails the whole operation fails, because
// a partial allocation would silently corrupt the plan.
func (s *ServiceImpl) SaveAnnualTarget(ctx context.Context, req target.SaveAnnualTargetRequest) (target.AnnualTargetResponse, error) {
	if req.Value < 0 {
		return target.AnnualTargetResponse{}, target.ErrNegativeTarget
	}
	if errs := validateTargetKey(req.StaffID, req.ServiceID, req.Year); len(errs) > 0 {
		return target.AnnualTargetResponse{}, errs
	}
	if _, err := s.staffRepo.GetByID(ctx, req.StaffID); err != nil {
		return target.AnnualTargetResponse{}, err
	}

	fy := workingdays.FinancialYearStarting(req.Year)
	currentMonth := s.planningMonth(fy)

	actuals, err := s.actualsByPeriod(ctx, req.StaffID, req.ServiceID, fy)
	if err != nil {
		return target.AnnualTargetResponse{}, fmt.Errorf("fetch actuals: %w", err)
	}

	rules, err := s.ruleRepo.List(ctx)
	if err != nil {
		return target.AnnualTargetResponse{}, fmt.Errorf("fetch distribution rules: %w", err)
	}

	alloc := CalculateAllMonths(RedistributionInput{
		AnnualTarget:    req.Value,
		ActualsByPeriod: actuals,
		CurrentMonth:    currentMonth,
		Overrides:       parseOverrides(req.Overrides),
		Rules:           rules,
	})

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)

		if _, err := s.annualRepo.Upsert(txCtx, target.AnnualTarget{
			StaffID: req.StaffID,
			Year:    req.Year,
			Value:   req.Value,
		}); err != nil {
			return fmt.Errorf("upsert annual target: %w", err)
		}

		for m := time.January; m <= time.December; m++ {
			if err := s.monthlyRepo.Upsert(txCtx, target.MonthlyTarget{
				StaffID:   req.StaffID,
				ServiceID: req.ServiceID,
				Month:     m,
				Year:      fy.CalendarYear(m),
				Value:     alloc[m],
			}); err != nil {
				return fmt.Errorf("upsert monthly target for %s: %w", m, err)
			}
		}
		return nil
	})
	if err != nil {
		return target.AnnualTargetResponse{}, err
	}

	s.hub.Publish(events.TopicTargetSaved, map[string]interface{}{
		"staff_id":   req.StaffID,
		"service_id": req.ServiceID,
		"year":       req.Year,
	})

	return target.AnnualTargetResponse{
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Year:      req.Year,
		Value:     req.Value,
		Months:    monthsMap(alloc),
	}, nil
}

// GetAnnualTarget implements target.Service.
func (s *ServiceImpl) GetAnnualTarget(ctx context.Context, staffID, serviceID string, year int) (target.AnnualTargetResponse, error) {
	if errs := validateTargetKey(staffID, serviceID, year); len(errs) > 0 {
		return target.AnnualTargetResponse{}, errs
	}

	annual, err := s.annualRepo.Get(ctx, staffID, year)
	if err != nil {
		return target.AnnualTargetResponse{}, err
	}

	rows, err := s.monthlyRepo.ListForFinancialYear(ctx, staffID, serviceID, year)
	if err != nil {
		return target.AnnualTargetResponse{}, fmt.Errorf("fetch monthly targets: %w", err)
	}

	months := make(map[int]int, 12)
	for m := 1; m <= 12; m++ {
		months[m] = 0
	}
	for _, row := range rows {
		months[int(row.Month)] = row.Value
	}

	return target.AnnualTargetResponse{
		StaffID:   staffID,
		ServiceID: serviceID,
		Year:      year,
		Value:     annual.Value,
		Months:    months,
	}, nil
}

// SaveMonthlyTarget implements target.Service.
func (s *ServiceImpl) SaveMonthlyTarget(ctx context.Context, req target.SaveMonthlyTargetRequest) (target.MonthlyTargetResponse, error) {
	if req.Value < 0 {
		return target.MonthlyTargetResponse{}, target.ErrNegativeTarget
	}
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if validator.IsEmpty(req.ServiceID) {
		errs = append(errs, validator.ValidationError{Field: "service_id", Message: "is required"})
	}
	if !validator.IsValidMonth(req.Month) {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}
	if len(errs) > 0 {
		return target.MonthlyTargetResponse{}, errs
	}

	if err := s.monthlyRepo.Upsert(ctx, target.MonthlyTarget{
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Month:     time.Month(req.Month),
		Year:      req.Year,
		Value:     req.Value,
	}); err != nil {
		return target.MonthlyTargetResponse{}, fmt.Errorf("upsert monthly target: %w", err)
	}

	s.hub.Publish(events.TopicTargetSaved, map[string]interface{}{
		"staff_id":   req.StaffID,
		"service_id": req.ServiceID,
		"month":      req.Month,
		"year":       req.Year,
	})

	return target.MonthlyTargetResponse{
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Month:     req.Month,
		Year:      req.Year,
		Value:     req.Value,
	}, nil
}

// GetMonthlyTarget implements target.Service.
func (s *ServiceImpl) GetMonthlyTarget(ctx context.Context, staffID, serviceID string, month, year int) (target.MonthlyTargetResponse, error) {
	if !validator.IsValidMonth(month) {
		return target.MonthlyTargetResponse{}, validator.ValidationErrors{
			{Field: "month", Message: "must be between 1 and 12"},
		}
	}

	row, err := s.monthlyRepo.Get(ctx, staffID, serviceID, time.Month(month), year)
	if err != nil {
		return target.MonthlyTargetResponse{}, err
	}
	return target.MonthlyTargetResponse{
		StaffID:   row.StaffID,
		ServiceID: row.ServiceID,
		Month:     int(row.Month),
		Year:      row.Year,
		Value:     row.Value,
	}, nil
}

// planningMonth anchors the redistribution. Inside the financial year
// it is today's month; for any other year the whole plan is recomputed
// from April so the allocation still sums to the annual figure.
func (s *ServiceImpl) planningMonth(fy workingdays.FinancialYear) time.Month {
	today := s.clock.Today()
	if workingdays.FinancialYearOf(today) == fy {
		return today.Month()
	}
	return time.April
}

// actualsByPeriod sums delivered counts per checkpoint window, used to
// absorb banked work for windows already behind us.
func (s *ServiceImpl) actualsByPeriod(ctx context.Context, staffID, serviceID string, fy workingdays.FinancialYear) (map[string]int, error) {
	windows := []struct {
		period   string
		from, to time.Time
	}{
		{PeriodAprilJuly,
			time.Date(fy.Start, time.April, 1, 0, 0, 0, 0, time.UTC),
			time.Date(fy.Start, time.July, 31, 0, 0, 0, 0, time.UTC)},
		{PeriodAugustNovember,
			time.Date(fy.Start, time.August, 1, 0, 0, 0, 0, time.UTC),
			time.Date(fy.Start, time.November, 30, 0, 0, 0, 0, time.UTC)},
		{PeriodDecemberJanuary,
			time.Date(fy.Start, time.December, 1, 0, 0, 0, 0, time.UTC),
			time.Date(fy.End, time.January, 31, 0, 0, 0, 0, time.UTC)},
	}

	actuals := make(map[string]int, len(windows))
	for _, w := range windows {
		sum, err := s.activityRepo.SumDelivered(ctx, staffID, &serviceID, w.from, w.to)
		if err != nil {
			return nil, err
		}
		actuals[w.period] = sum
	}
	return actuals, nil
}

func validateTargetKey(staffID, serviceID string, year int) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(staffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if validator.IsEmpty(serviceID) {
		errs = append(errs, validator.ValidationError{Field: "service_id", Message: "is required"})
	}
	if !validator.IsValidFinancialYearStart(year) {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be a valid financial-year start year"})
	}
	return errs
}

// parseOverrides converts the request's string-keyed override map to
// month keys, dropping anything that is not a calendar month.
func parseOverrides(raw map[string]int) map[time.Month]int {
	if len(raw) == 0 {
		return nil
	}
	out := make(map[time.Month]int, len(raw))
	for key, value := range raw {
		month, err := strconv.Atoi(key)
		if err != nil || !validator.IsValidMonth(month) {
			continue
		}
		out[time.Month(month)] = value
	}
	return out
}

func monthsMap(alloc map[time.Month]int) map[int]int {
	out := make(map[int]int, len(alloc))
	for m, v := range alloc {
		out[int(m)] = v
	}
	return out
}
