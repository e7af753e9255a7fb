package target

import (
	"context"
	"time"
)

type MonthlyTargetRepository interface {
	// Upsert writes a row keyed on (staff, service, month, year).
	Upsert(ctx context.Context, t MonthlyTarget) error
	Get(ctx context.Context, staffID, serviceID string, month time.Month, year int) (MonthlyTarget, error)
	// ListForFinancialYear returns the staff member's monthly targets for
	// one service across the April-March financial year starting fyStart.
	ListForFinancialYear(ctx context.Context, staffID, serviceID string, fyStart int) ([]MonthlyTarget, error)
}

type AnnualTargetRepository interface {
	// Upsert writes a row keyed on (staff, year).
	Upsert(ctx context.Context, t AnnualTarget) (AnnualTarget, error)
	Get(ctx context.Context, staffID string, year int) (AnnualTarget, error)
}
