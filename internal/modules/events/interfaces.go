package events

import (
	"context"

	"zenrio/internal/domain"
)

// Repository is the event data access the service depends on.
type Repository interface {
	List(ctx context.Context, page, limit int, f domain.EventFilters) ([]domain.Event, int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Create(ctx context.Context, e *domain.Event) error
	Update(ctx context.Context, e *domain.Event) error
	Delete(ctx context.Context, id int64) error
}
