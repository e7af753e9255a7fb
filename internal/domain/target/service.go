package target

import (
	"context"
)

type Service interface {
	// SaveAnnualTarget redistributes the annual figure across the
	// financial year and persists the annual row plus all twelve
	// monthly rows atomically.
	SaveAnnualTarget(ctx context.Context, req SaveAnnualTargetRequest) (AnnualTargetResponse, error)
	GetAnnualTarget(ctx context.Context, staffID, serviceID string, year int) (AnnualTargetResponse, error)
	SaveMonthlyTarget(ctx context.Context, req SaveMonthlyTargetRequest) (MonthlyTargetResponse, error)
	GetMonthlyTarget(ctx context.Context, staffID, serviceID string, month, year int) (MonthlyTargetResponse, error)
}
