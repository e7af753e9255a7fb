package holiday

import (
	"context"
	"time"
)

type Repository interface {
	// ListByRegion returns holidays for one region with date in [from, to].
	ListByRegion(ctx context.Context, region Region, from, to time.Time) ([]BankHoliday, error)
	// List returns holidays for all regions with date in [from, to].
	List(ctx context.Context, from, to time.Time) ([]BankHoliday, error)
	// Upsert inserts rows keyed on (date, region), updating title and
	// source on conflict. Returns the number of rows written.
	Upsert(ctx context.Context, holidays []BankHoliday) (int, error)
}

type SyncStateRepository interface {
	LastSyncedAt(ctx context.Context) (*time.Time, error)
	MarkSynced(ctx context.Context, at time.Time) error
}
