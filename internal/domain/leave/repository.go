package leave

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, l StaffLeave) (StaffLeave, error)
	GetByID(ctx context.Context, id string) (StaffLeave, error)
	// ListOverlapping returns this staff member's leave ranges that
	// intersect [from, to]. Callers clip the ranges to their window.
	ListOverlapping(ctx context.Context, staffID string, from, to time.Time) ([]StaffLeave, error)
	ListByStaff(ctx context.Context, staffID string) ([]StaffLeave, error)
	List(ctx context.Context, from, to time.Time) ([]StaffLeave, error)
	Update(ctx context.Context, l StaffLeave) error
	Delete(ctx context.Context, id string) error
}
