package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/activity"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type activityRepositoryImpl struct {
	db *database.DB
}

func NewActivityRepository(db *database.DB) activity.Repository {
	return &activityRepositoryImpl{db: db}
}

// Upsert implements activity.Repository.
func (r *activityRepositoryImpl) Upsert(ctx context.Context, a activity.DailyActivity) (activity.DailyActivity, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO daily_activities (id, staff_id, service_id, date, delivered, notes)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (staff_id, service_id, date)
		DO UPDATE SET delivered = EXCLUDED.delivered, notes = EXCLUDED.notes, updated_at = NOW()
		RETURNING id, staff_id, service_id, date, delivered, notes, created_at, updated_at
	`

	var row activity.DailyActivity
	err := q.QueryRow(ctx, query, a.ID, a.StaffID, a.ServiceID, a.Date, a.Delivered, a.Notes).Scan(
		&row.ID,
		&row.StaffID,
		&row.ServiceID,
		&row.Date,
		&row.Delivered,
		&row.Notes,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return activity.DailyActivity{}, fmt.Errorf("failed to upsert activity: %w", err)
	}
	return row, nil
}

// GetByID implements activity.Repository.
func (r *activityRepositoryImpl) GetByID(ctx context.Context, id string) (activity.DailyActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.staff_id, a.service_id, a.date, a.delivered, a.notes,
			   a.created_at, a.updated_at, s.full_name, t.name
		FROM daily_activities a
		JOIN staff s ON s.id = a.staff_id
		JOIN service_types t ON t.id = a.service_id
		WHERE a.id = $1
	`

	var row activity.DailyActivity
	err := q.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.StaffID,
		&row.ServiceID,
		&row.Date,
		&row.Delivered,
		&row.Notes,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.StaffName,
		&row.ServiceName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return activity.DailyActivity{}, activity.ErrActivityNotFound
		}
		return activity.DailyActivity{}, fmt.Errorf("failed to get activity: %w", err)
	}
	return row, nil
}

// List implements activity.Repository.
func (r *activityRepositoryImpl) List(ctx context.Context, filter activity.Filter) ([]activity.DailyActivity, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.staff_id, a.service_id, a.date, a.delivered, a.notes,
			   a.created_at, a.updated_at, s.full_name, t.name
		FROM daily_activities a
		JOIN staff s ON s.id = a.staff_id
		JOIN service_types t ON t.id = a.service_id
		WHERE 1=1
	`
	var args []interface{}
	argPos := 1
	if filter.StaffID != nil {
		query += fmt.Sprintf(" AND a.staff_id = $%d", argPos)
		args = append(args, *filter.StaffID)
		argPos++
	}
	if filter.ServiceID != nil {
		query += fmt.Sprintf(" AND a.service_id = $%d", argPos)
		args = append(args, *filter.ServiceID)
		argPos++
	}
	if filter.From != nil {
		query += fmt.Sprintf(" AND a.date >= $%d", argPos)
		args = append(args, *filter.From)
		argPos++
	}
	if filter.To != nil {
		query += fmt.Sprintf(" AND a.date <= $%d", argPos)
		args = append(args, *filter.To)
		argPos++
	}
	query += " ORDER BY a.date DESC, s.full_name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var out []activity.DailyActivity
	for rows.Next() {
		var row activity.DailyActivity
		if err := rows.Scan(
			&row.ID,
			&row.StaffID,
			&row.ServiceID,
			&row.Date,
			&row.Delivered,
			&row.Notes,
			&row.CreatedAt,
			&row.UpdatedAt,
			&row.StaffName,
			&row.ServiceName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

// Delete implements activity.Repository.
func (r *activityRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM daily_activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return activity.ErrActivityNotFound
	}
	return nil
}

// SumDelivered implements activity.Repository.
func (r *activityRepositoryImpl) SumDelivered(ctx context.Context, staffID string, serviceID *string, from, to time.Time) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(delivered), 0)
		FROM daily_activities
		WHERE staff_id = $1 AND date >= $2 AND date <= $3
	`
	args := []interface{}{staffID, from, to}
	if serviceID != nil {
		query += ` AND service_id = $4`
		args = append(args, *serviceID)
	}

	var total int
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum delivered: %w", err)
	}
	return total, nil
}

// ActiveDays implements activity.Repository. Days with only
// zero-delivered rows do not count as active.
func (r *activityRepositoryImpl) ActiveDays(ctx context.Context, staffID string, from, to time.Time) ([]time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT DISTINCT date
		FROM daily_activities
		WHERE staff_id = $1 AND date >= $2 AND date <= $3 AND delivered > 0
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, staffID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list active days: %w", err)
	}
	defer rows.Close()

	var out []time.Time
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan active day: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
