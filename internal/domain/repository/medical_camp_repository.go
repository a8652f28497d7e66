package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MedicalCampRepository interface {
	Create(ctx context.Context, db *gorm.DB, camp *entity.MedicalCamp) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.MedicalCamp, error)
	FindAll(ctx context.Context, db *gorm.DB, status entity.CampStatus) ([]entity.MedicalCamp, error)
	Update(ctx context.Context, db *gorm.DB, camp *entity.MedicalCamp) error
	Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
