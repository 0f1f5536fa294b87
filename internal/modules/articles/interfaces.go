package articles

import (
	"context"

	"zenrio/internal/domain"
)

// Repository is the article data access the service depends on.
type Repository interface {
	List(ctx context.Context) ([]domain.Article, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Article, error)
	Create(ctx context.Context, a *domain.Article) error
	Update(ctx context.Context, slug string, a *domain.Article) error
	Delete(ctx context.Context, slug string) error
}
