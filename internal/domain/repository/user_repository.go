package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserRepository interface {
	Create(ctx context.Context, db *gorm.DB, user *entity.User) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error)
	FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.User, error)
	Update(ctx context.Context, db *gorm.DB, user *entity.User) error
}
