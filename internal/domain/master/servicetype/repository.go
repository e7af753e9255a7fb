package servicetype

import "context"

type Repository interface {
	Create(ctx context.Context, s ServiceType) (ServiceType, error)
	GetByID(ctx context.Context, id string) (ServiceType, error)
	List(ctx context.Context, activeOnly bool) ([]ServiceType, error)
	Update(ctx context.Context, s ServiceType) error
	Delete(ctx context.Context, id string) error
}
