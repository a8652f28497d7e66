package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DeviceTokenRepository interface {
	Create(ctx context.Context, db *gorm.DB, token *entity.DeviceToken) error
	Update(ctx context.Context, db *gorm.DB, token *entity.DeviceToken) error
	FindByUserAndToken(ctx context.Context, db *gorm.DB, userID uuid.UUID, token string) (*entity.DeviceToken, error)
	FindActiveByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.DeviceToken, error)
	FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.DeviceToken, error)
	// FindActiveByRole returns active tokens belonging to users with the
	// given role (join against users).
	FindActiveByRole(ctx context.Context, db *gorm.DB, role entity.UserRole) ([]entity.DeviceToken, error)
	Deactivate(ctx context.Context, db *gorm.DB, userID uuid.UUID, token string) (int64, error)
}
