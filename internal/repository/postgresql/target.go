package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/target"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type monthlyTargetRepositoryImpl struct {
	db *database.DB
}

func NewMonthlyTargetRepository(db *database.DB) target.MonthlyTargetRepository {
	return &monthlyTargetRepositoryImpl{db: db}
}

// Upsert implements target.MonthlyTargetRepository.
func (r *monthlyTargetRepositoryImpl) Upsert(ctx context.Context, t target.MonthlyTarget) error {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO monthly_targets (id, staff_id, service_id, month, year, value)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (staff_id, service_id, month, year)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, t.ID, t.StaffID, t.ServiceID, int(t.Month), t.Year, t.Value); err != nil {
		return fmt.Errorf("failed to upsert monthly target: %w", err)
	}
	return nil
}

// Get implements target.MonthlyTargetRepository.
func (r *monthlyTargetRepositoryImpl) Get(ctx context.Context, staffID, serviceID string, month time.Month, year int) (target.MonthlyTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, service_id, month, year, value, created_at, updated_at
		FROM monthly_targets
		WHERE staff_id = $1 AND service_id = $2 AND month = $3 AND year = $4
	`

	var row target.MonthlyTarget
	var monthNum int
	err := q.QueryRow(ctx, query, staffID, serviceID, int(month), year).Scan(
		&row.ID,
		&row.StaffID,
		&row.ServiceID,
		&monthNum,
		&row.Year,
		&row.Value,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return target.MonthlyTarget{}, target.ErrMonthlyTargetNotFound
		}
		return target.MonthlyTarget{}, fmt.Errorf("failed to get monthly target: %w", err)
	}
	row.Month = time.Month(monthNum)
	return row, nil
}

// ListForFinancialYear implements target.MonthlyTargetRepository.
// April-December of the start year plus January-March of the next.
func (r *monthlyTargetRepositoryImpl) ListForFinancialYear(ctx context.Context, staffID, serviceID string, fyStart int) ([]target.MonthlyTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, service_id, month, year, value, created_at, updated_at
		FROM monthly_targets
		WHERE staff_id = $1 AND service_id = $2
		  AND ((year = $3 AND month >= 4) OR (year = $4 AND month <= 3))
		ORDER BY year, month
	`

	rows, err := q.Query(ctx, query, staffID, serviceID, fyStart, fyStart+1)
	if err != nil {
		return nil, fmt.Errorf("failed to list monthly targets: %w", err)
	}
	defer rows.Close()

	var out []target.MonthlyTarget
	for rows.Next() {
		var row target.MonthlyTarget
		var monthNum int
		if err := rows.Scan(
			&row.ID,
			&row.StaffID,
			&row.ServiceID,
			&monthNum,
			&row.Year,
			&row.Value,
			&row.CreatedAt,
			&row.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan monthly target: %w", err)
		}
		row.Month = time.Month(monthNum)
		out = append(out, row)
	}
	return out, rows.Err()
}

type annualTargetRepositoryImpl struct {
	db *database.DB
}

func NewAnnualTargetRepository(db *database.DB) target.AnnualTargetRepository {
	return &annualTargetRepositoryImpl{db: db}
}

// Upsert implements target.AnnualTargetRepository.
func (r *annualTargetRepositoryImpl) Upsert(ctx context.Context, t target.AnnualTarget) (target.AnnualTarget, error) {
	q := GetQuerier(ctx, r.db)

	if t.ID == "" {
		t.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO annual_targets (id, staff_id, year, value)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (staff_id, year)
		DO UPDATE SET value = EXCLUDED.value, updated_at = NOW()
		RETURNING id, staff_id, year, value, created_at, updated_at
	`

	var row target.AnnualTarget
	err := q.QueryRow(ctx, query, t.ID, t.StaffID, t.Year, t.Value).Scan(
		&row.ID,
		&row.StaffID,
		&row.Year,
		&row.Value,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		return target.AnnualTarget{}, fmt.Errorf("failed to upsert annual target: %w", err)
	}
	return row, nil
}

// Get implements target.AnnualTargetRepository.
func (r *annualTargetRepositoryImpl) Get(ctx context.Context, staffID string, year int) (target.AnnualTarget, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, year, value, created_at, updated_at
		FROM annual_targets
		WHERE staff_id = $1 AND year = $2
	`

	var row target.AnnualTarget
	err := q.QueryRow(ctx, query, staffID, year).Scan(
		&row.ID,
		&row.StaffID,
		&row.Year,
		&row.Value,
		&row.CreatedAt,
		&row.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return target.AnnualTarget{}, target.ErrAnnualTargetNotFound
		}
		return target.AnnualTarget{}, fmt.Errorf("failed to get annual target: %w", err)
	}
	return row, nil
}
