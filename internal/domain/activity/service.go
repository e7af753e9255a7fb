package activity

import "context"

type Service interface {
	// Upsert records a day's delivered count, replacing any existing
	// row for the same staff, service and date.
	Upsert(ctx context.Context, req UpsertActivityRequest) (ActivityResponse, error)
	GetByID(ctx context.Context, id string) (ActivityResponse, error)
	List(ctx context.Context, filter Filter) ([]ActivityResponse, error)
	Delete(ctx context.Context, id string) error
}
