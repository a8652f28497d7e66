package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type EventRepository interface {
	Create(ctx context.Context, db *gorm.DB, event *entity.Event) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Event, error)
	FindAll(ctx context.Context, db *gorm.DB, category entity.EventCategory) ([]entity.Event, error)
	FindUpcoming(ctx context.Context, db *gorm.DB) ([]entity.Event, error)
	Update(ctx context.Context, db *gorm.DB, event *entity.Event) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	CountUpcoming(ctx context.Context, db *gorm.DB) (int64, error)
}
