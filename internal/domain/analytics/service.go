package analytics

import (
	"context"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/workingdays"
)

type Service interface {
	RunRate(ctx context.Context, staffID, serviceID string, fy workingdays.FinancialYear, month time.Month) (RunRateResponse, error)
	Consistency(ctx context.Context, staffID string, fy workingdays.FinancialYear, month time.Month) (ConsistencyResponse, error)
	BagelStreak(ctx context.Context, staffID string, fy workingdays.FinancialYear, month time.Month) (BagelStreakResponse, error)
}
