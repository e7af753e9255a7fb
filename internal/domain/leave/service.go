package leave

import (
	"context"
	"time"
)

type Service interface {
	Create(ctx context.Context, req SaveLeaveRequest) (LeaveResponse, error)
	GetByID(ctx context.Context, id string) (LeaveResponse, error)
	ListByStaff(ctx context.Context, staffID string) ([]LeaveResponse, error)
	List(ctx context.Context, from, to time.Time) ([]LeaveResponse, error)
	Update(ctx context.Context, req SaveLeaveRequest) (LeaveResponse, error)
	Delete(ctx context.Context, id string) error
}
