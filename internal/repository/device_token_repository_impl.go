package repository

import (
	"context"
	"errors"

	"lifelink-api/internal/domain/entity"
	domainRepo "lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type deviceTokenRepository struct{}

func NewDeviceTokenRepository() domainRepo.DeviceTokenRepository {
	return &deviceTokenRepository{}
}

func (r *deviceTokenRepository) Create(ctx context.Context, db *gorm.DB, token *entity.DeviceToken) error {
	return db.WithContext(ctx).Create(token).Error
}

func (r *deviceTokenRepository) Update(ctx context.Context, db *gorm.DB, token *entity.DeviceToken) error {
	return db.WithContext(ctx).Save(token).Error
}

func (r *deviceTokenRepository) FindByUserAndToken(ctx context.Context, db *gorm.DB, userID uuid.UUID, token string) (*entity.DeviceToken, error) {
	var deviceToken entity.DeviceToken
	err := db.WithContext(ctx).
		Where("user_id = ? AND token = ?", userID, token).
		First(&deviceToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &deviceToken, nil
}

func (r *deviceTokenRepository) FindActiveByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.DeviceToken, error) {
	var tokens []entity.DeviceToken
	err := db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *deviceTokenRepository) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.DeviceToken, error) {
	var tokens []entity.DeviceToken
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *deviceTokenRepository) FindActiveByRole(ctx context.Context, db *gorm.DB, role entity.UserRole) ([]entity.DeviceToken, error) {
	var tokens []entity.DeviceToken
	err := db.WithContext(ctx).Model(&entity.DeviceToken{}).
		Joins("JOIN users ON users.id = device_tokens.user_id").
		Where("device_tokens.is_active = ? AND users.role = ? AND users.is_active = ?", true, role, true).
		Find(&tokens).Error
	if err != nil {
		return nil, err
	}
	return tokens, nil
}

func (r *deviceTokenRepository) Deactivate(ctx context.Context, db *gorm.DB, userID uuid.UUID, token string) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.DeviceToken{}).
		Where("user_id = ? AND token = ?", userID, token).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
