package articles

import "errors"

var (
	ErrMissingFields   = errors.New("missing required fields")
	ErrInvalidSlug     = errors.New("invalid slug")
	ErrSlugTaken       = errors.New("slug already in use")
	ErrArticleNotFound = errors.New("article not found")
)
