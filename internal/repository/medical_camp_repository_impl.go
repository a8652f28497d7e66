package repository

import (
	"context"
	"errors"

	"lifelink-api/internal/domain/entity"
	domainRepo "lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalCampRepository struct{}

func NewMedicalCampRepository() domainRepo.MedicalCampRepository {
	return &medicalCampRepository{}
}

func (r *medicalCampRepository) Create(ctx context.Context, db *gorm.DB, camp *entity.MedicalCamp) error {
	return db.WithContext(ctx).Create(camp).Error
}

func (r *medicalCampRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.MedicalCamp, error) {
	var camp entity.MedicalCamp
	err := db.WithContext(ctx).Where("id = ?", id).First(&camp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &camp, nil
}

func (r *medicalCampRepository) FindAll(ctx context.Context, db *gorm.DB, status entity.CampStatus) ([]entity.MedicalCamp, error) {
	query := db.WithContext(ctx).Model(&entity.MedicalCamp{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var camps []entity.MedicalCamp
	err := query.Order("camp_date DESC").Find(&camps).Error
	if err != nil {
		return nil, err
	}
	return camps, nil
}

func (r *medicalCampRepository) Update(ctx context.Context, db *gorm.DB, camp *entity.MedicalCamp) error {
	return db.WithContext(ctx).Save(camp).Error
}

func (r *medicalCampRepository) Delete(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&entity.MedicalCamp{})
	return result.RowsAffected, result.Error
}
