package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BloodCampRepository interface {
	Create(ctx context.Context, db *gorm.DB, camp *entity.BloodCamp) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.BloodCamp, error)
	FindAll(ctx context.Context, db *gorm.DB, status entity.CampStatus) ([]entity.BloodCamp, error)
	Update(ctx context.Context, db *gorm.DB, camp *entity.BloodCamp) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	CountByStatus(ctx context.Context, db *gorm.DB, status entity.CampStatus) (int64, error)
}
