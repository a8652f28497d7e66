package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DonorRepository interface {
	Create(ctx context.Context, db *gorm.DB, donor *entity.Donor) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Donor, error)
	FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Donor, error)
	FindAll(ctx context.Context, db *gorm.DB, filter *entity.DonorFilter) ([]entity.Donor, int64, error)
	FindActive(ctx context.Context, db *gorm.DB) ([]entity.Donor, error)
	Update(ctx context.Context, db *gorm.DB, donor *entity.Donor) error
	UpdateEligibility(ctx context.Context, db *gorm.DB, id uuid.UUID, isEligible bool) error
	Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
	CountActive(ctx context.Context, db *gorm.DB) (int64, error)
	CountEligible(ctx context.Context, db *gorm.DB) (int64, error)
}
