package repository

import (
	"context"
	"errors"

	"lifelink-api/internal/domain/entity"
	domainRepo "lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type bloodCampRepository struct{}

func NewBloodCampRepository() domainRepo.BloodCampRepository {
	return &bloodCampRepository{}
}

func (r *bloodCampRepository) Create(ctx context.Context, db *gorm.DB, camp *entity.BloodCamp) error {
	return db.WithContext(ctx).Create(camp).Error
}

func (r *bloodCampRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.BloodCamp, error) {
	var camp entity.BloodCamp
	err := db.WithContext(ctx).Where("id = ?", id).First(&camp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &camp, nil
}

func (r *bloodCampRepository) FindAll(ctx context.Context, db *gorm.DB, status entity.CampStatus) ([]entity.BloodCamp, error) {
	query := db.WithContext(ctx).Model(&entity.BloodCamp{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var camps []entity.BloodCamp
	err := query.Order("camp_date DESC").Find(&camps).Error
	if err != nil {
		return nil, err
	}
	return camps, nil
}

func (r *bloodCampRepository) Update(ctx context.Context, db *gorm.DB, camp *entity.BloodCamp) error {
	return db.WithContext(ctx).Save(camp).Error
}

func (r *bloodCampRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.BloodCamp{})
	return result.RowsAffected, result.Error
}

func (r *bloodCampRepository) CountByStatus(ctx context.Context, db *gorm.DB, status entity.CampStatus) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.BloodCamp{}).
		Where("status = ?", status).
		Count(&count).Error
	return count, err
}
