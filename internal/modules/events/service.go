package events

import (
	"context"
	"errors"
	"strings"

	"zenrio/internal/domain"

	"gorm.io/gorm"
)

// Service holds the event business logic. Filter values are passed to the
// repository as-is: a malformed date is the storage layer's problem and
// surfaces as a generic failure, matching the public API's contract.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns one page plus the total matching the same filters. Page and
// limit are clamped to sane minimums so pagination math stays defined.
func (s *Service) List(ctx context.Context, page, limit int, f domain.EventFilters) ([]domain.Event, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 1
	}
	return s.repo.List(ctx, page, limit, f)
}

func (s *Service) Create(ctx context.Context, req CreateEventRequest) (*domain.Event, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Date) == "" {
		return nil, ErrMissingFields
	}

	event := &domain.Event{
		Title:       strings.TrimSpace(req.Title),
		Date:        req.Date,
		Hour:        req.Hour,
		MeetingLink: req.MeetingLink,
		Description: req.Description,
		Address:     req.Address,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *Service) Update(ctx context.Context, req UpdateEventRequest) (*domain.Event, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Date) == "" {
		return nil, ErrMissingFields
	}

	event := &domain.Event{
		ID:          req.ID,
		Title:       strings.TrimSpace(req.Title),
		Date:        req.Date,
		Hour:        req.Hour,
		MeetingLink: req.MeetingLink,
		Description: req.Description,
		Address:     req.Address,
	}

	if err := s.repo.Update(ctx, event); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, err
	}
	return event, nil
}

// Delete is idempotent: removing an id that does not exist succeeds.
func (s *Service) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
