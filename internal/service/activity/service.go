package activity

import (
	"context"
	"fmt"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/activity"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/events"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	repo activity.Repository
	hub  *events.Hub
}

func NewService(repo activity.Repository, hub *events.Hub) activity.Service {
	return &ServiceImpl{repo: repo, hub: hub}
}

// Upsert implements activity.Service.
func (s *ServiceImpl) Upsert(ctx context.Context, req activity.UpsertActivityRequest) (activity.ActivityResponse, error) {
	if req.Delivered < 0 {
		return activity.ActivityResponse{}, activity.ErrNegativeCount
	}

	var errs validator.ValidationErrors
	if validator.IsEmpty(req.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	if validator.IsEmpty(req.ServiceID) {
		errs = append(errs, validator.ValidationError{Field: "service_id", Message: "is required"})
	}
	date, ok := validator.IsValidDate(req.Date)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a YYYY-MM-DD date"})
	}
	if len(errs) > 0 {
		return activity.ActivityResponse{}, errs
	}

	row, err := s.repo.Upsert(ctx, activity.DailyActivity{
		StaffID:   req.StaffID,
		ServiceID: req.ServiceID,
		Date:      date,
		Delivered: req.Delivered,
		Notes:     req.Notes,
	})
	if err != nil {
		return activity.ActivityResponse{}, fmt.Errorf("upsert activity: %w", err)
	}

	s.hub.Publish(events.TopicActivityUpdated, map[string]interface{}{
		"staff_id":   row.StaffID,
		"service_id": row.ServiceID,
		"date":       row.Date.Format("2006-01-02"),
		"delivered":  row.Delivered,
	})

	return activity.ToResponse(row), nil
}

// GetByID implements activity.Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (activity.ActivityResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return activity.ActivityResponse{}, err
	}
	return activity.ToResponse(row), nil
}

// List implements activity.Service.
func (s *ServiceImpl) List(ctx context.Context, filter activity.Filter) ([]activity.ActivityResponse, error) {
	rows, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	out := make([]activity.ActivityResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, activity.ToResponse(row))
	}
	return out, nil
}

// Delete implements activity.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete activity: %w", err)
	}

	s.hub.Publish(events.TopicActivityUpdated, map[string]interface{}{
		"staff_id":   row.StaffID,
		"service_id": row.ServiceID,
		"date":       row.Date.Format("2006-01-02"),
		"deleted":    true,
	})
	return nil
}
