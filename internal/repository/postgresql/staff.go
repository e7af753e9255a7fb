package postgresql

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type staffRepositoryImpl struct {
	db *database.DB
}

func NewStaffRepository(db *database.DB) staff.Repository {
	return &staffRepositoryImpl{db: db}
}

// Create implements staff.Repository.
func (r *staffRepositoryImpl) Create(ctx context.Context, s staff.Staff) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO staff (id, full_name, email, password_hash, home_region, is_admin, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, full_name, email, password_hash, home_region, is_admin, is_active,
				  created_at, updated_at, deleted_at
	`

	var created staff.Staff
	err := q.QueryRow(ctx, query,
		s.ID, s.FullName, s.Email, s.PasswordHash, string(s.HomeRegion), s.IsAdmin, s.IsActive,
	).Scan(
		&created.ID,
		&created.FullName,
		&created.Email,
		&created.PasswordHash,
		&created.HomeRegion,
		&created.IsAdmin,
		&created.IsActive,
		&created.CreatedAt,
		&created.UpdatedAt,
		&created.DeletedAt,
	)
	if err != nil {
		return staff.Staff{}, fmt.Errorf("failed to create staff: %w", err)
	}
	return created, nil
}

// GetByID implements staff.Repository.
func (r *staffRepositoryImpl) GetByID(ctx context.Context, id string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, password_hash, home_region, is_admin, is_active,
			   created_at, updated_at, deleted_at
		FROM staff
		WHERE id = $1 AND deleted_at IS NULL
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.FullName,
		&s.Email,
		&s.PasswordHash,
		&s.HomeRegion,
		&s.IsAdmin,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.DeletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff: %w", err)
	}
	return s, nil
}

// GetByEmail implements staff.Repository.
func (r *staffRepositoryImpl) GetByEmail(ctx context.Context, email string) (staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, password_hash, home_region, is_admin, is_active,
			   created_at, updated_at, deleted_at
		FROM staff
		WHERE email = $1 AND deleted_at IS NULL
	`

	var s staff.Staff
	err := q.QueryRow(ctx, query, email).Scan(
		&s.ID,
		&s.FullName,
		&s.Email,
		&s.PasswordHash,
		&s.HomeRegion,
		&s.IsAdmin,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
		&s.DeletedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return staff.Staff{}, staff.ErrStaffNotFound
		}
		return staff.Staff{}, fmt.Errorf("failed to get staff by email: %w", err)
	}
	return s, nil
}

// List implements staff.Repository.
func (r *staffRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]staff.Staff, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, full_name, email, password_hash, home_region, is_admin, is_active,
			   created_at, updated_at, deleted_at
		FROM staff
		WHERE deleted_at IS NULL
	`
	if activeOnly {
		query += ` AND is_active = TRUE`
	}
	query += ` ORDER BY full_name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff: %w", err)
	}
	defer rows.Close()

	var out []staff.Staff
	for rows.Next() {
		var s staff.Staff
		if err := rows.Scan(
			&s.ID,
			&s.FullName,
			&s.Email,
			&s.PasswordHash,
			&s.HomeRegion,
			&s.IsAdmin,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
			&s.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update implements staff.Repository.
func (r *staffRepositoryImpl) Update(ctx context.Context, s staff.Staff) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET full_name = $1, email = $2, home_region = $3, is_admin = $4, is_active = $5,
			updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, s.FullName, s.Email, string(s.HomeRegion), s.IsAdmin, s.IsActive, s.ID)
	if err != nil {
		return fmt.Errorf("failed to update staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}

// Delete implements staff.Repository. Soft delete; activity and leave
// history keeps pointing at the row.
func (r *staffRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE staff
		SET deleted_at = NOW(), is_active = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete staff: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return staff.ErrStaffNotFound
	}
	return nil
}
