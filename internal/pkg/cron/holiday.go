package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
)

// HolidaySyncer is implemented by the holiday service. Sync itself
// enforces the once-per-calendar-month gate, so the job can run on a
// short interval and usually no-op.
type HolidaySyncer interface {
	Sync(ctx context.Context, force bool) (holiday.SyncResult, error)
}

type HolidayJobs struct {
	syncer HolidaySyncer
}

func NewHolidayJobs(syncer HolidaySyncer) *HolidayJobs {
	return &HolidayJobs{syncer: syncer}
}

func (j *HolidayJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("sync_bank_holidays", 6*time.Hour, j.SyncBankHolidays)
}

func (j *HolidayJobs) SyncBankHolidays(ctx context.Context) error {
	result, err := j.syncer.Sync(ctx, false)
	if err != nil {
		return err
	}
	if result.Skipped {
		slog.Debug("Cron: bank holiday sync skipped, already synced this month")
		return nil
	}
	slog.Info("Cron: bank holidays synced", "rows_written", result.RowsWritten)
	return nil
}
