package repository

import (
	"context"
	"time"

	"zenrio/internal/domain"

	"gorm.io/gorm"
)

type ArticleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *ArticleRepository {
	return &ArticleRepository{db: db}
}

type articleModel struct {
	ID          int64     `gorm:"column:id;primaryKey"`
	Title       string    `gorm:"column:title"`
	Slug        string    `gorm:"column:slug;uniqueIndex"`
	Description string    `gorm:"column:description"`
	Content     string    `gorm:"column:content;type:text"`
	ImageURL    *string   `gorm:"column:image_url"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (articleModel) TableName() string { return "articles" }

func toDomainArticle(m articleModel) *domain.Article {
	var imageURL string
	if m.ImageURL != nil {
		imageURL = *m.ImageURL
	}

	return &domain.Article{
		ID:          m.ID,
		Title:       m.Title,
		Slug:        m.Slug,
		Description: m.Description,
		Content:     m.Content,
		ImageURL:    imageURL,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toArticleModel(a *domain.Article) articleModel {
	var imageURL *string
	if a.ImageURL != "" {
		v := a.ImageURL
		imageURL = &v
	}

	return articleModel{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Description: a.Description,
		Content:     a.Content,
		ImageURL:    imageURL,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// List returns all articles, newest first.
func (r *ArticleRepository) List(ctx context.Context) ([]domain.Article, error) {
	var models []articleModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	articles := make([]domain.Article, 0, len(models))
	for _, m := range models {
		articles = append(articles, *toDomainArticle(m))
	}
	return articles, nil
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	var m articleModel
	tx := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainArticle(m), nil
}

// Create inserts the article. Slug uniqueness is enforced by the store; the
// caller distinguishes a duplicate via IsUniqueViolation.
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	m := toArticleModel(a)
	now := time.Now()
	m.CreatedAt = now
	m.UpdatedAt = now

	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*a = *toDomainArticle(m)
	return nil
}

// Update rewrites the mutable fields of the article addressed by slug and
// refreshes updated_at. The slug itself never changes.
func (r *ArticleRepository) Update(ctx context.Context, slug string, a *domain.Article) error {
	m := toArticleModel(a)
	m.UpdatedAt = time.Now()

	tx := r.db.WithContext(ctx).
		Model(&articleModel{}).
		Where("slug = ?", slug).
		Select("title", "description", "content", "image_url", "updated_at").
		Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	stored, err := r.GetBySlug(ctx, slug)
	if err != nil {
		return err
	}
	*a = *stored
	return nil
}

func (r *ArticleRepository) Delete(ctx context.Context, slug string) error {
	return r.db.WithContext(ctx).Where("slug = ?", slug).Delete(&articleModel{}).Error
}
