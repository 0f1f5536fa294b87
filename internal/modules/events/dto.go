package events

import "zenrio/internal/domain"

// CreateEventRequest carries the full event payload minus the id.
type CreateEventRequest struct {
	Title       string          `json:"title" binding:"required"`
	Date        string          `json:"date" binding:"required"` // YYYY-MM-DD
	Hour        string          `json:"hour"`
	MeetingLink *string         `json:"meeting_link"`
	Description string          `json:"description"`
	Address     *domain.Address `json:"address"`
}

// UpdateEventRequest is a full-row replacement: omitted optional fields are
// written as null, not preserved.
type UpdateEventRequest struct {
	ID          int64           `json:"id" binding:"required"`
	Title       string          `json:"title" binding:"required"`
	Date        string          `json:"date" binding:"required"`
	Hour        string          `json:"hour"`
	MeetingLink *string         `json:"meeting_link"`
	Description string          `json:"description"`
	Address     *domain.Address `json:"address"`
}

// ListResponse is the public listing body.
type ListResponse struct {
	Events []domain.Event `json:"events"`
	Total  int64          `json:"total"`
}
