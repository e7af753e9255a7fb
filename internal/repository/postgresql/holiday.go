package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.Repository {
	return &holidayRepositoryImpl{db: db}
}

// ListByRegion implements holiday.Repository.
func (r *holidayRepositoryImpl) ListByRegion(ctx context.Context, region holiday.Region, from, to time.Time) ([]holiday.BankHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, region, title, source, created_at, updated_at
		FROM bank_holidays
		WHERE region = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := q.Query(ctx, query, string(region), from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// List implements holiday.Repository.
func (r *holidayRepositoryImpl) List(ctx context.Context, from, to time.Time) ([]holiday.BankHoliday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, region, title, source, created_at, updated_at
		FROM bank_holidays
		WHERE date >= $1 AND date <= $2
		ORDER BY date, region
	`

	rows, err := q.Query(ctx, query, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list bank holidays: %w", err)
	}
	defer rows.Close()

	return scanHolidays(rows)
}

// Upsert implements holiday.Repository.
func (r *holidayRepositoryImpl) Upsert(ctx context.Context, holidays []holiday.BankHoliday) (int, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO bank_holidays (id, date, region, title, source)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (date, region)
		DO UPDATE SET title = EXCLUDED.title, source = EXCLUDED.source, updated_at = NOW()
	`

	written := 0
	for _, h := range holidays {
		id := h.ID
		if id == "" {
			id = uuid.Must(uuid.NewV7()).String()
		}
		if _, err := q.Exec(ctx, query, id, h.Date, string(h.Region), h.Title, h.Source); err != nil {
			return written, fmt.Errorf("failed to upsert bank holiday %s/%s: %w", h.Date.Format("2006-01-02"), h.Region, err)
		}
		written++
	}
	return written, nil
}

func scanHolidays(rows pgx.Rows) ([]holiday.BankHoliday, error) {
	var out []holiday.BankHoliday
	for rows.Next() {
		var h holiday.BankHoliday
		if err := rows.Scan(
			&h.ID,
			&h.Date,
			&h.Region,
			&h.Title,
			&h.Source,
			&h.CreatedAt,
			&h.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan bank holiday: %w", err)
		}
		out = append(out, h)
	}
	return out, rows.Err()
}
