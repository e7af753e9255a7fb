package holiday

import (
	"context"
	"time"
)

type Service interface {
	// Sync pulls the national feed and upserts rows. At most one sync
	// per calendar month unless force is set.
	Sync(ctx context.Context, force bool) (SyncResult, error)
	List(ctx context.Context, region *Region, from, to time.Time) ([]BankHolidayResponse, error)
}
