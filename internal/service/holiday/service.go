package holiday

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/clock"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/events"
)

// Feed is the external bank-holiday source.
type Feed interface {
	FetchBankHolidays(ctx context.Context) (map[holiday.Region][]holiday.BankHoliday, error)
}

type ServiceImpl struct {
	repo      holiday.Repository
	stateRepo holiday.SyncStateRepository
	feed      Feed
	hub       *events.Hub
	clock     clock.Clock
}

func NewService(
	repo holiday.Repository,
	stateRepo holiday.SyncStateRepository,
	feed Feed,
	hub *events.Hub,
	clk clock.Clock,
) holiday.Service {
	return &ServiceImpl{
		repo:      repo,
		stateRepo: stateRepo,
		feed:      feed,
		hub:       hub,
		clock:     clk,
	}
}

// Sync implements holiday.Service. The once-per-calendar-month gate
// lives here rather than in the cron schedule, so a manual trigger and
// the background job share the same guard.
func (s *ServiceImpl) Sync(ctx context.Context, force bool) (holiday.SyncResult, error) {
	last, err := s.stateRepo.LastSyncedAt(ctx)
	if err != nil {
		return holiday.SyncResult{}, fmt.Errorf("read sync state: %w", err)
	}

	now := s.clock.Now()
	if !force && last != nil && sameCalendarMonth(*last, now) {
		return holiday.SyncResult{Skipped: true, LastSyncedAt: last}, nil
	}

	byRegion, err := s.feed.FetchBankHolidays(ctx)
	if err != nil {
		return holiday.SyncResult{}, fmt.Errorf("fetch bank holidays: %w", err)
	}

	var rows []holiday.BankHoliday
	for _, hs := range byRegion {
		rows = append(rows, hs...)
	}

	written, err := s.repo.Upsert(ctx, rows)
	if err != nil {
		return holiday.SyncResult{}, fmt.Errorf("upsert bank holidays: %w", err)
	}

	if err := s.stateRepo.MarkSynced(ctx, now); err != nil {
		return holiday.SyncResult{}, fmt.Errorf("mark synced: %w", err)
	}

	slog.Info("bank holidays synced", "rows", written, "forced", force)
	s.hub.Publish(events.TopicHolidaysSynced, map[string]interface{}{
		"rows_written": written,
	})

	return holiday.SyncResult{RowsWritten: written, LastSyncedAt: &now}, nil
}

// List implements holiday.Service.
func (s *ServiceImpl) List(ctx context.Context, region *holiday.Region, from, to time.Time) ([]holiday.BankHolidayResponse, error) {
	var (
		rows []holiday.BankHoliday
		err  error
	)
	if region != nil {
		if !region.Valid() {
			return nil, holiday.ErrInvalidRegion
		}
		rows, err = s.repo.ListByRegion(ctx, *region, from, to)
	} else {
		rows, err = s.repo.List(ctx, from, to)
	}
	if err != nil {
		return nil, fmt.Errorf("list bank holidays: %w", err)
	}

	out := make([]holiday.BankHolidayResponse, 0, len(rows))
	for _, h := range rows {
		out = append(out, holiday.ToResponse(h))
	}
	return out, nil
}

func sameCalendarMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
