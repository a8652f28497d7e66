package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertRepository interface {
	Create(ctx context.Context, db *gorm.DB, alert *entity.Alert) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Alert, error)
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error)
	// FindActive returns alerts with status ACTIVE and expiry in the future,
	// newest first, annotated with accepted-donor counts.
	FindActive(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error)
	// FindPast returns the complementary partition: RESOLVED, CANCELLED, or
	// ACTIVE-but-expired alerts, newest first, with the same annotation.
	FindPast(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error)
	Update(ctx context.Context, db *gorm.DB, alert *entity.Alert) error
	UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.AlertStatus) (int64, error)
	CountActive(ctx context.Context, db *gorm.DB) (int64, error)
}
