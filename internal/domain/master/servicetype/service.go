package servicetype

import "context"

type Service interface {
	Create(ctx context.Context, req SaveServiceTypeRequest) (ServiceTypeResponse, error)
	GetByID(ctx context.Context, id string) (ServiceTypeResponse, error)
	List(ctx context.Context, activeOnly bool) ([]ServiceTypeResponse, error)
	Update(ctx context.Context, req SaveServiceTypeRequest) (ServiceTypeResponse, error)
	Delete(ctx context.Context, id string) error
}
