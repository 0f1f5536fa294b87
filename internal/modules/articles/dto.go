package articles

import "zenrio/internal/domain"

type CreateArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Slug        string `json:"slug"` // derived from the title when empty
	Description string `json:"description"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
}

type UpdateArticleRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
}

// ArticleView is the public read shape: the stored markdown plus its
// sanitized rendering.
type ArticleView struct {
	domain.Article
	ContentHTML string `json:"content_html"`
}
