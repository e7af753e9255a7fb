package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

// syncStateRepositoryImpl stores the single-row holiday feed watermark.
type syncStateRepositoryImpl struct {
	db *database.DB
}

func NewSyncStateRepository(db *database.DB) holiday.SyncStateRepository {
	return &syncStateRepositoryImpl{db: db}
}

// LastSyncedAt implements holiday.SyncStateRepository. A missing row
// means the feed has never been pulled.
func (r *syncStateRepositoryImpl) LastSyncedAt(ctx context.Context) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	var at time.Time
	err := q.QueryRow(ctx, `SELECT last_synced_at FROM holiday_sync_state WHERE id = 1`).Scan(&at)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read holiday sync state: %w", err)
	}
	return &at, nil
}

// MarkSynced implements holiday.SyncStateRepository.
func (r *syncStateRepositoryImpl) MarkSynced(ctx context.Context, at time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO holiday_sync_state (id, last_synced_at)
		VALUES (1, $1)
		ON CONFLICT (id) DO UPDATE SET last_synced_at = EXCLUDED.last_synced_at
	`

	if _, err := q.Exec(ctx, query, at); err != nil {
		return fmt.Errorf("failed to mark holidays synced: %w", err)
	}
	return nil
}
