package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/servicetype"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/database"
)

type serviceTypeRepositoryImpl struct {
	db *database.DB
}

func NewServiceTypeRepository(db *database.DB) servicetype.Repository {
	return &serviceTypeRepositoryImpl{db: db}
}

// Create implements servicetype.Repository.
func (r *serviceTypeRepositoryImpl) Create(ctx context.Context, s servicetype.ServiceType) (servicetype.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	if s.ID == "" {
		s.ID = uuid.Must(uuid.NewV7()).String()
	}

	query := `
		INSERT INTO service_types (id, name, code, is_active)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, code, is_active, created_at, updated_at
	`

	var created servicetype.ServiceType
	err := q.QueryRow(ctx, query, s.ID, s.Name, s.Code, s.IsActive).Scan(
		&created.ID,
		&created.Name,
		&created.Code,
		&created.IsActive,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return servicetype.ServiceType{}, servicetype.ErrCodeExists
		}
		return servicetype.ServiceType{}, fmt.Errorf("failed to create service type: %w", err)
	}
	return created, nil
}

// GetByID implements servicetype.Repository.
func (r *serviceTypeRepositoryImpl) GetByID(ctx context.Context, id string) (servicetype.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, is_active, created_at, updated_at
		FROM service_types
		WHERE id = $1
	`

	var s servicetype.ServiceType
	err := q.QueryRow(ctx, query, id).Scan(
		&s.ID,
		&s.Name,
		&s.Code,
		&s.IsActive,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return servicetype.ServiceType{}, servicetype.ErrServiceTypeNotFound
		}
		return servicetype.ServiceType{}, fmt.Errorf("failed to get service type: %w", err)
	}
	return s, nil
}

// List implements servicetype.Repository.
func (r *serviceTypeRepositoryImpl) List(ctx context.Context, activeOnly bool) ([]servicetype.ServiceType, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, name, code, is_active, created_at, updated_at
		FROM service_types
	`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY name`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list service types: %w", err)
	}
	defer rows.Close()

	var out []servicetype.ServiceType
	for rows.Next() {
		var s servicetype.ServiceType
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Code,
			&s.IsActive,
			&s.CreatedAt,
			&s.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan service type: %w", err)
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update implements servicetype.Repository.
func (r *serviceTypeRepositoryImpl) Update(ctx context.Context, s servicetype.ServiceType) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE service_types
		SET name = $1, code = $2, is_active = $3, updated_at = NOW()
		WHERE id = $4
	`

	tag, err := q.Exec(ctx, query, s.Name, s.Code, s.IsActive, s.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return servicetype.ErrCodeExists
		}
		return fmt.Errorf("failed to update service type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return servicetype.ErrServiceTypeNotFound
	}
	return nil
}

// Delete implements servicetype.Repository. Rows with activity history
// stay referenced, so deactivate instead of removing.
func (r *serviceTypeRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE service_types
		SET is_active = FALSE, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete service type: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return servicetype.ErrServiceTypeNotFound
	}
	return nil
}

// isUniqueViolation reports PostgreSQL error 23505.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
