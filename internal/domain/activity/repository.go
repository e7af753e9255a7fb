package activity

import (
	"context"
	"time"
)

type Filter struct {
	StaffID   *string
	ServiceID *string
	From      *time.Time
	To        *time.Time
}

type Repository interface {
	// Upsert writes a row keyed on (staff, service, date), replacing the
	// delivered count and notes on conflict.
	Upsert(ctx context.Context, a DailyActivity) (DailyActivity, error)
	GetByID(ctx context.Context, id string) (DailyActivity, error)
	List(ctx context.Context, filter Filter) ([]DailyActivity, error)
	Delete(ctx context.Context, id string) error

	// SumDelivered totals delivered counts over [from, to], optionally
	// narrowed to one service. Used as the actuals input to target
	// redistribution.
	SumDelivered(ctx context.Context, staffID string, serviceID *string, from, to time.Time) (int, error)
	// ActiveDays returns the distinct dates in [from, to] on which the
	// staff member recorded at least one delivery.
	ActiveDays(ctx context.Context, staffID string, from, to time.Time) ([]time.Time, error)
}
