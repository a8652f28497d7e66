package repository

import (
	"context"
	"errors"
	"time"

	"lifelink-api/internal/domain/entity"
	domainRepo "lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type alertRepository struct{}

func NewAlertRepository() domainRepo.AlertRepository {
	return &alertRepository{}
}

func (r *alertRepository) Create(ctx context.Context, db *gorm.DB, alert *entity.Alert) error {
	return db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Alert, error) {
	var alert entity.Alert
	err := db.WithContext(ctx).Where("id = ?", id).First(&alert).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &alert, nil
}

// withAcceptanceCounts annotates each alert row with the number of donors who
// accepted it, in a single grouped query.
func withAcceptanceCounts(ctx context.Context, db *gorm.DB) *gorm.DB {
	return db.WithContext(ctx).Model(&entity.Alert{}).
		Select("alerts.*, COUNT(alert_acceptances.id) AS accepted_donors_count").
		Joins("LEFT JOIN alert_acceptances ON alert_acceptances.alert_id = alerts.id").
		Group("alerts.id").
		Order("alerts.created_at DESC")
}

func (r *alertRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error) {
	var alerts []entity.AlertWithCount
	err := withAcceptanceCounts(ctx, db).Scan(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) FindActive(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error) {
	var alerts []entity.AlertWithCount
	err := withAcceptanceCounts(ctx, db).
		Where("alerts.status = ? AND alerts.expires_at > ?", entity.AlertStatusActive, time.Now()).
		Scan(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) FindPast(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error) {
	var alerts []entity.AlertWithCount
	err := withAcceptanceCounts(ctx, db).
		Where("alerts.status IN ? OR (alerts.status = ? AND alerts.expires_at <= ?)",
			[]entity.AlertStatus{entity.AlertStatusResolved, entity.AlertStatusCancelled},
			entity.AlertStatusActive, time.Now()).
		Scan(&alerts).Error
	if err != nil {
		return nil, err
	}
	return alerts, nil
}

func (r *alertRepository) Update(ctx context.Context, db *gorm.DB, alert *entity.Alert) error {
	return db.WithContext(ctx).Save(alert).Error
}

func (r *alertRepository) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.AlertStatus) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.Alert{}).
		Where("id = ?", id).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *alertRepository) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Model(&entity.Alert{}).
		Where("status = ? AND expires_at > ?", entity.AlertStatusActive, time.Now()).
		Count(&count).Error
	return count, err
}
