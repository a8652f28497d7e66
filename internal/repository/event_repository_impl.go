package repository

import (
	"context"
	"errors"
	"time"

	"lifelink-api/internal/domain/entity"
	domainRepo "lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type eventRepository struct{}

func NewEventRepository() domainRepo.EventRepository {
	return &eventRepository{}
}

func (r *eventRepository) Create(ctx context.Context, db *gorm.DB, event *entity.Event) error {
	return db.WithContext(ctx).Create(event).Error
}

func (r *eventRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Event, error) {
	var event entity.Event
	err := db.WithContext(ctx).Where("id = ?", id).First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

func (r *eventRepository) FindAll(ctx context.Context, db *gorm.DB, category entity.EventCategory) ([]entity.Event, error) {
	query := db.WithContext(ctx).Model(&entity.Event{})
	if category != "" {
		query = query.Where("category = ?", category)
	}

	var events []entity.Event
	err := query.Order("event_date DESC").Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) FindUpcoming(ctx context.Context, db *gorm.DB) ([]entity.Event, error) {
	var events []entity.Event
	err := db.WithContext(ctx).
		Where("event_date >= ? AND status = ?", time.Now().Truncate(24*time.Hour), entity.CampStatusUpcoming).
		Order("event_date ASC").
		Find(&events).Error
	if err != nil {
		return nil, err
	}
	return events, nil
}

func (r *eventRepository) Update(ctx context.Context, db *gorm.DB, event *entity.Event) error {
	return db.WithContext(ctx).Save(event).Error
}

func (r *eventRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.Event{})
	return result.RowsAffected, result.Error
}

func (r *eventRepository) CountUpcoming(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Event{}).
		Where("event_date >= ? AND status = ?", time.Now().Truncate(24*time.Hour), entity.CampStatusUpcoming).
		Count(&count).Error
	return count, err
}
