package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

// Create implements leave.Repository.
func (r *leaveRepositoryImpl) Create(ctx context.Context, l leave.StaffLeave) (leave.StaffLeave, error) {
	q := GetQuerier(ctx, r.db)

	if l.ID == "" {
		l.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO staff_leave (id, staff_id, start_date, end_date, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, staff_id, start_date, end_date, type, created_at, updated_at
	`

	var created leave.StaffLeave
	err := q.QueryRow(ctx, query, l.ID, l.StaffID, l.StartDate, l.EndDate, string(l.Type)).Scan(
		&created.ID,
		&created.StaffID,
		&created.StartDate,
		&created.EndDate,
		&created.Type,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		return leave.StaffLeave{}, fmt.Errorf("failed to create leave: %w", err)
	}
	return created, nil
}

// GetByID implements leave.Repository.
func (r *leaveRepositoryImpl) GetByID(ctx context.Context, id string) (leave.StaffLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.staff_id, l.start_date, l.end_date, l.type,
			   l.created_at, l.updated_at, s.full_name
		FROM staff_leave l
		JOIN staff s ON s.id = l.staff_id
		WHERE l.id = $1
	`

	var row leave.StaffLeave
	err := q.QueryRow(ctx, query, id).Scan(
		&row.ID,
		&row.StaffID,
		&row.StartDate,
		&row.EndDate,
		&row.Type,
		&row.CreatedAt,
		&row.UpdatedAt,
		&row.StaffName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.StaffLeave{}, leave.ErrLeaveNotFound
		}
		return leave.StaffLeave{}, fmt.Errorf("failed to get leave: %w", err)
	}
	return row, nil
}

// ListOverlapping implements leave.Repository. A range overlaps when it
// starts no later than the window end and ends no earlier than the
// window start.
func (r *leaveRepositoryImpl) ListOverlapping(ctx context.Context, staffID string, from, to time.Time) ([]leave.StaffLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, start_date, end_date, type, created_at, updated_at
		FROM staff_leave
		WHERE staff_id = $1 AND start_date <= $2 AND end_date >= $3
		ORDER BY start_date
	`

	rows, err := q.Query(ctx, query, staffID, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list overlapping leave: %w", err)
	}
	defer rows.Close()

	return scanLeave(rows, false)
}

// ListByStaff implements leave.Repository.
func (r *leaveRepositoryImpl) ListByStaff(ctx context.Context, staffID string) ([]leave.StaffLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, staff_id, start_date, end_date, type, created_at, updated_at
		FROM staff_leave
		WHERE staff_id = $1
		ORDER BY start_date DESC
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave: %w", err)
	}
	defer rows.Close()

	return scanLeave(rows, false)
}

// List implements leave.Repository.
func (r *leaveRepositoryImpl) List(ctx context.Context, from, to time.Time) ([]leave.StaffLeave, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT l.id, l.staff_id, l.start_date, l.end_date, l.type,
			   l.created_at, l.updated_at, s.full_name
		FROM staff_leave l
		JOIN staff s ON s.id = l.staff_id
		WHERE l.start_date <= $1 AND l.end_date >= $2
		ORDER BY l.start_date
	`

	rows, err := q.Query(ctx, query, to, from)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave: %w", err)
	}
	defer rows.Close()

	return scanLeave(rows, true)
}

// Update implements leave.Repository.
func (r *leaveRepositoryImpl) Update(ctx context.Context, l leave.StaffLeave) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff_leave
		SET staff_id = $1, start_date = $2, end_date = $3, type = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, l.StaffID, l.StartDate, l.EndDate, string(l.Type), l.ID)
	if err != nil {
		return fmt.Errorf("failed to update leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

// Delete implements leave.Repository.
func (r *leaveRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM staff_leave WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete leave: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return leave.ErrLeaveNotFound
	}
	return nil
}

func scanLeave(rows pgx.Rows, withStaffName bool) ([]leave.StaffLeave, error) {
	var out []leave.StaffLeave
	for rows.Next() {
		var row leave.StaffLeave
		dest := []interface{}{
			&row.ID,
			&row.StaffID,
			&row.StartDate,
			&row.EndDate,
			&row.Type,
			&row.CreatedAt,
			&row.UpdatedAt,
		}
		if withStaffName {
			dest = append(dest, &row.StaffName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("failed to scan leave: %w", err)
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
