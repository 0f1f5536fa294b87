package repository

import (
	"context"

	"zenrio/internal/domain"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

type eventModel struct {
	ID          int64           `gorm:"column:id;primaryKey"`
	Title       string          `gorm:"column:title"`
	Date        string          `gorm:"column:date"`
	Hour        string          `gorm:"column:hour"`
	MeetingLink *string         `gorm:"column:meeting_link"`
	Description string          `gorm:"column:description"`
	Address     *domain.Address `gorm:"column:address;serializer:json"`
}

func (eventModel) TableName() string { return "events" }

func toDomainEvent(m eventModel) *domain.Event {
	return &domain.Event{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		Hour:        m.Hour,
		MeetingLink: m.MeetingLink,
		Description: m.Description,
		Address:     m.Address,
	}
}

func toEventModel(e *domain.Event) eventModel {
	return eventModel{
		ID:          e.ID,
		Title:       e.Title,
		Date:        e.Date,
		Hour:        e.Hour,
		MeetingLink: e.MeetingLink,
		Description: e.Description,
		Address:     e.Address,
	}
}

// filtered builds the predicate set shared by the page query and the count
// query. Filter values are never interpolated; everything binds as a
// parameter.
//
// The location filter deliberately matches any online event in addition to
// the requested city. The public site has always behaved this way and the
// filter UI depends on it, so it stays.
func (r *EventRepository) filtered(ctx context.Context, f domain.EventFilters) *gorm.DB {
	q := r.db.WithContext(ctx).Model(&eventModel{})

	if f.Date != "" {
		q = q.Where("date = ?", f.Date)
	}

	if f.Location != "" {
		q = q.Where(
			r.db.Where(datatypes.JSONQuery("address").Equals(f.Location, "city")).
				Or("meeting_link IS NOT NULL"),
		)
	}

	switch f.Type {
	case domain.EventTypeOnline:
		q = q.Where("meeting_link IS NOT NULL")
	case domain.EventTypeInPerson:
		q = q.Where("meeting_link IS NULL")
	}

	return q
}

// List returns one page of events plus the total count matching the same
// predicates. Pages are 1-indexed; ordering is date then hour, ascending.
func (r *EventRepository) List(ctx context.Context, page, limit int, f domain.EventFilters) ([]domain.Event, int64, error) {
	var total int64
	if err := r.filtered(ctx, f).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []eventModel
	tx := r.filtered(ctx, f).
		Order("date ASC, hour ASC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&models)
	if tx.Error != nil {
		return nil, 0, tx.Error
	}

	events := make([]domain.Event, 0, len(models))
	for _, m := range models {
		events = append(events, *toDomainEvent(m))
	}
	return events, total, nil
}

func (r *EventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	var m eventModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainEvent(m), nil
}

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*e = *toDomainEvent(m)
	return nil
}

// Update overwrites the full row: every mutable column is written, so a
// caller omitting an optional field nulls it out.
func (r *EventRepository) Update(ctx context.Context, e *domain.Event) error {
	m := toEventModel(e)
	tx := r.db.WithContext(ctx).
		Model(&eventModel{}).
		Where("id = ?", e.ID).
		Select("title", "date", "hour", "meeting_link", "description", "address").
		Updates(&m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	stored, err := r.GetByID(ctx, e.ID)
	if err != nil {
		return err
	}
	*e = *stored
	return nil
}

// Delete removes the event. Deleting an id that does not exist is a no-op
// success so the operation is idempotent.
func (r *EventRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&eventModel{}, id).Error
}
