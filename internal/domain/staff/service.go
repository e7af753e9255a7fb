package staff

import "context"

type Service interface {
	Create(ctx context.Context, req CreateStaffRequest) (StaffResponse, error)
	GetByID(ctx context.Context, id string) (StaffResponse, error)
	List(ctx context.Context, activeOnly bool) ([]StaffResponse, error)
	Update(ctx context.Context, req UpdateStaffRequest) (StaffResponse, error)
	// Delete soft-deletes; history stays attached to the staff id.
	Delete(ctx context.Context, id string) error
}
