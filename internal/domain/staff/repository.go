package staff

import "context"

type Repository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByEmail(ctx context.Context, email string) (Staff, error)
	List(ctx context.Context, activeOnly bool) ([]Staff, error)
	Update(ctx context.Context, s Staff) error
	Delete(ctx context.Context, id string) error
}
