package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/staff"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/events"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
)

var leaveTypes = []string{
	string(leave.LeaveTypeAnnual),
	string(leave.LeaveTypeSick),
	string(leave.LeaveTypeCompassion),
	string(leave.LeaveTypeUnpaid),
	string(leave.LeaveTypeOther),
}

type ServiceImpl struct {
	repo      leave.Repository
	staffRepo staff.Repository
	hub       *events.Hub
}

func NewService(repo leave.Repository, staffRepo staff.Repository, hub *events.Hub) leave.Service {
	return &ServiceImpl{repo: repo, staffRepo: staffRepo, hub: hub}
}

// Create implements leave.Service.
func (s *ServiceImpl) Create(ctx context.Context, req leave.SaveLeaveRequest) (leave.LeaveResponse, error) {
	row, err := s.parseRequest(req)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	if _, err := s.staffRepo.GetByID(ctx, row.StaffID); err != nil {
		return leave.LeaveResponse{}, err
	}

	created, err := s.repo.Create(ctx, row)
	if err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("create leave: %w", err)
	}

	s.publishChanged(created)
	return leave.ToResponse(created), nil
}

// GetByID implements leave.Service.
func (s *ServiceImpl) GetByID(ctx context.Context, id string) (leave.LeaveResponse, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	return leave.ToResponse(row), nil
}

// ListByStaff implements leave.Service.
func (s *ServiceImpl) ListByStaff(ctx context.Context, staffID string) ([]leave.LeaveResponse, error) {
	rows, err := s.repo.ListByStaff(ctx, staffID)
	if err != nil {
		return nil, fmt.Errorf("list leave: %w", err)
	}
	return toResponses(rows), nil
}

// List implements leave.Service.
func (s *ServiceImpl) List(ctx context.Context, from, to time.Time) ([]leave.LeaveResponse, error) {
	rows, err := s.repo.List(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("list leave: %w", err)
	}
	return toResponses(rows), nil
}

// Update implements leave.Service.
func (s *ServiceImpl) Update(ctx context.Context, req leave.SaveLeaveRequest) (leave.LeaveResponse, error) {
	existing, err := s.repo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveResponse{}, err
	}

	row, err := s.parseRequest(req)
	if err != nil {
		return leave.LeaveResponse{}, err
	}
	row.ID = existing.ID

	if err := s.repo.Update(ctx, row); err != nil {
		return leave.LeaveResponse{}, fmt.Errorf("update leave: %w", err)
	}

	s.publishChanged(row)
	return leave.ToResponse(row), nil
}

// Delete implements leave.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete leave: %w", err)
	}

	s.publishChanged(row)
	return nil
}

func (s *ServiceImpl) parseRequest(req leave.SaveLeaveRequest) (leave.StaffLeave, error) {
	var errs validator.ValidationErrors
	if validator.IsEmpty(req.StaffID) {
		errs = append(errs, validator.ValidationError{Field: "staff_id", Message: "is required"})
	}
	start, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a YYYY-MM-DD date"})
	}
	end, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a YYYY-MM-DD date"})
	}
	if !validator.IsInSlice(req.Type, leaveTypes) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be a known leave type"})
	}
	if len(errs) > 0 {
		return leave.StaffLeave{}, errs
	}
	if end.Before(start) {
		return leave.StaffLeave{}, leave.ErrInvalidDateRange
	}

	return leave.StaffLeave{
		StaffID:   req.StaffID,
		StartDate: start,
		EndDate:   end,
		Type:      leave.LeaveType(req.Type),
	}, nil
}

func (s *ServiceImpl) publishChanged(row leave.StaffLeave) {
	s.hub.Publish(events.TopicLeaveChanged, map[string]interface{}{
		"staff_id":   row.StaffID,
		"start_date": row.StartDate.Format("2006-01-02"),
		"end_date":   row.EndDate.Format("2006-01-02"),
	})
}

func toResponses(rows []leave.StaffLeave) []leave.LeaveResponse {
	out := make([]leave.LeaveResponse, 0, len(rows))
	for _, row := range rows {
		out = append(out, leave.ToResponse(row))
	}
	return out
}
