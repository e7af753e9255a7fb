package staff

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/holiday"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	repo staff.Repository
}

func NewService(repo staff.Repository) staff.Service {
	return &ServiceImpl{repo: repo}
}

// Create implements staff.Service.
func (s *ServiceImpl) Create(ctx context.Context, req staff.CreateStaffRequest) (staff.StaffResponse, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if !validator.IsValidEmail(req.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if len(req.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	region := holiday.Region(req.HomeRegion)
	if req.HomeRegion != "" && !region.Valid() {
		errs = append(errs, validator.ValidationError{Field: "home_region", Message: "must be a UK bank-holiday region"})
	}
	if len(errs) > 0 {
		return staff.StaffResponse{}, errs
	}

	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return staff.StaffResponse{}, staff.ErrEmailExists
	} else if !errors.Is(err, staff.ErrStaffNotFound) {
		return staff.StaffResponse{}, fmt.Errorf("check email: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Create(ctx, staff.Staff{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		HomeRegion:   region,
		IsAdmin:      req.IsAdmin,
		IsActive:     true,
	})
	if err != nil {
		return staff.StaffResponse{}, fmt.Errorf("create staff: %w", err)
	}

	return staff.ToResponse(created), nil
}

// GetByID implements staff.Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (staff.StaffResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return staff.StaffResponse{}, err
	}
	return staff.ToResponse(row), nil
}

// List implements staff.Service.
func (s *ServiceImpl) List(ctx context.Context, activeOnly bool) ([]staff.StaffResponse, error) {
	rows, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list staff: %w", err)
	}
	out := make([]staff.StaffResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, staff.ToResponse(row))
	}
	return out, nil
}

// Update implements staff.Service.
func (s *ServiceImpl) Update(ctx context.Context, req staff.UpdateStaffRequest) (staff.StaffResponse, error) {
	row, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return staff.StaffResponse{}, err
	}

	if req.FullName != nil {
		if validator.IsEmpty(*req.FullName) {
			return staff.StaffResponse{}, validator.ValidationErrors{
				{Field: "full_name", Message: "must not be empty"},
			}
		}
		row.FullName = *req.FullName
	}
	if req.Email != nil && *req.Email != row.Email {
		if !validator.IsValidEmail(*req.Email) {
			return staff.StaffResponse{}, validator.ValidationErrors{
				{Field: "email", Message: "must be a valid email address"},
			}
		}
		if _, err := s.repo.GetByEmail(ctx, *req.Email); err == nil {
			return staff.StaffResponse{}, staff.ErrEmailExists
		} else if !errors.Is(err, staff.ErrStaffNotFound) {
			return staff.StaffResponse{}, fmt.Errorf("check email: %w", err)
		}
		row.Email = *req.Email
	}
	if req.HomeRegion != nil {
		region := holiday.Region(*req.HomeRegion)
		if *req.HomeRegion != "" && !region.Valid() {
			return staff.StaffResponse{}, validator.ValidationErrors{
				{Field: "home_region", Message: "must be a UK bank-holiday region"},
			}
		}
		row.HomeRegion = region
	}
	if req.IsAdmin != nil {
		row.IsAdmin = *req.IsAdmin
	}
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return staff.StaffResponse{}, fmt.Errorf("update staff: %w", err)
	}
	return staff.ToResponse(row), nil
}

// Delete implements staff.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete staff: %w", err)
	}
	return nil
}
