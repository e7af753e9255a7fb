package master

import (
	"context"
	"fmt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/master/servicetype"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type ServiceTypeServiceImpl struct {
	repo servicetype.Repository
}

func NewServiceTypeService(repo servicetype.Repository) servicetype.Service {
	return &ServiceTypeServiceImpl{repo: repo}
}

// Create implements servicetype.Service.
func (s *ServiceTypeServiceImpl) Create(ctx context.Context, req servicetype.SaveServiceTypeRequest) (servicetype.ServiceTypeResponse, error) {
	if errs := validateServiceType(req); len(errs) > 0 {
		return servicetype.ServiceTypeResponse{}, errs
	}

	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	created, err := s.repo.Create(ctx, servicetype.ServiceType{
		Name:     req.Name,
		Code:     req.Code,
		IsActive: active,
	})
	if err != nil {
		return servicetype.ServiceTypeResponse{}, fmt.Errorf("create service type: %w", err)
	}
	return servicetype.ToResponse(created), nil
}

// GetByID implements servicetype.Service.
func (s *ServiceTypeServiceImpl) GetByID(ctx context.Context, id string) (servicetype.ServiceTypeResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return servicetype.ServiceTypeResponse{}, err
	}
	return servicetype.ToResponse(row), nil
}

// List implements servicetype.Service.
func (s *ServiceTypeServiceImpl) List(ctx context.Context, activeOnly bool) ([]servicetype.ServiceTypeResponse, error) {
	rows, err := s.repo.List(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("list service types: %w", err)
	}
	out := make([]servicetype.ServiceTypeResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, servicetype.ToResponse(row))
	}
	return out, nil
}

// Update implements servicetype.Service.
func (s *ServiceTypeServiceImpl) Update(ctx context.Context, req servicetype.SaveServiceTypeRequest) (servicetype.ServiceTypeResponse, error) {
	row, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return servicetype.ServiceTypeResponse{}, err
	}
	if errs := validateServiceType(req); len(errs) > 0 {
		return servicetype.ServiceTypeResponse{}, errs
	}

	row.Name = req.Name
	row.Code = req.Code
	if req.IsActive != nil {
		row.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, row); err != nil {
		return servicetype.ServiceTypeResponse{}, fmt.Errorf("update service type: %w", err)
	}
	return servicetype.ToResponse(row), nil
}

// Delete implements servicetype.Service.
func (s *ServiceTypeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete service type: %w", err)
	}
	return nil
}

func validateServiceType(req servicetype.SaveServiceTypeRequest) validator.ValidationErrors {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(req.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	return errs
}
