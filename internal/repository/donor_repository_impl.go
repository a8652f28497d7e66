package repository

import (
	"context"
	"errors"

	"lifelink-api/internal/domain/entity"
	domainRepo "lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type donorRepository struct{}

func NewDonorRepository() domainRepo.DonorRepository {
	return &donorRepository{}
}

func (r *donorRepository) Create(ctx context.Context, db *gorm.DB, donor *entity.Donor) error {
	return db.WithContext(ctx).Create(donor).Error
}

func (r *donorRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Donor, error) {
	var donor entity.Donor
	err := db.WithContext(ctx).Where("id = ?", id).First(&donor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Donor, error) {
	var donor entity.Donor
	err := db.WithContext(ctx).Where("phone = ?", phone).First(&donor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &donor, nil
}

func (r *donorRepository) FindAll(ctx context.Context, db *gorm.DB, filter *entity.DonorFilter) ([]entity.Donor, int64, error) {
	query := db.WithContext(ctx).Model(&entity.Donor{}).Where("is_active = ?", true)

	if filter.BloodGroup != "" {
		query = query.Where("blood_group = ?", filter.BloodGroup)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.IsEligible != nil {
		query = query.Where("is_eligible = ?", *filter.IsEligible)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR email ILIKE ? OR phone ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 {
		limit = 10
	}

	var donors []entity.Donor
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&donors).Error
	if err != nil {
		return nil, 0, err
	}
	return donors, total, nil
}

func (r *donorRepository) FindActive(ctx context.Context, db *gorm.DB) ([]entity.Donor, error) {
	var donors []entity.Donor
	err := db.WithContext(ctx).Where("is_active = ?", true).Find(&donors).Error
	if err != nil {
		return nil, err
	}
	return donors, nil
}

func (r *donorRepository) Update(ctx context.Context, db *gorm.DB, donor *entity.Donor) error {
	return db.WithContext(ctx).Save(donor).Error
}

func (r *donorRepository) UpdateEligibility(ctx context.Context, db *gorm.DB, id uuid.UUID, isEligible bool) error {
	return db.WithContext(ctx).Model(&entity.Donor{}).
		Where("id = ?", id).
		Update("is_eligible", isEligible).Error
}

// Deactivate soft-deletes a donor. Returns affected rows: 0 means the donor
// was absent or already inactive.
func (r *donorRepository) Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Donor{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}

func (r *donorRepository) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Donor{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

func (r *donorRepository) CountEligible(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Donor{}).
		Where("is_active = ? AND is_eligible = ?", true, true).
		Count(&count).Error
	return count, err
}
