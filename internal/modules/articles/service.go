package articles

import (
	"context"
	"errors"
	"strings"

	"zenrio/internal/domain"
	"zenrio/internal/pkg/markdown"
	"zenrio/internal/pkg/slug"
	"zenrio/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Article, error) {
	return s.repo.List(ctx)
}

// Get returns the article with its markdown rendered to sanitized HTML.
func (s *Service) Get(ctx context.Context, slugValue string) (*ArticleView, error) {
	article, err := s.repo.GetBySlug(ctx, slugValue)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}

	html, err := markdown.Render(article.Content)
	if err != nil {
		return nil, err
	}

	return &ArticleView{Article: *article, ContentHTML: html}, nil
}

// Create stores a new article. The slug comes from the request when given
// (and must already be slug-shaped), otherwise it is derived from the
// title. A duplicate slug fails with ErrSlugTaken, distinct from any other
// storage error.
func (s *Service) Create(ctx context.Context, req CreateArticleRequest) (*domain.Article, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingFields
	}

	slugValue := strings.TrimSpace(req.Slug)
	if slugValue == "" {
		slugValue = slug.Make(req.Title)
	}
	if !slug.IsValid(slugValue) {
		return nil, ErrInvalidSlug
	}

	article := &domain.Article{
		Title:       strings.TrimSpace(req.Title),
		Slug:        slugValue,
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrSlugTaken
		}
		return nil, err
	}
	return article, nil
}

// Update rewrites the article's mutable fields; the slug stays the lookup
// key and never changes.
func (s *Service) Update(ctx context.Context, slugValue string, req UpdateArticleRequest) (*domain.Article, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrMissingFields
	}

	article := &domain.Article{
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Content:     req.Content,
		ImageURL:    req.ImageURL,
	}

	if err := s.repo.Update(ctx, slugValue, article); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *Service) Delete(ctx context.Context, slugValue string) error {
	return s.repo.Delete(ctx, slugValue)
}
