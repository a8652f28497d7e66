package repository

import (
	"context"
	"errors"

	"lifelink-api/internal/domain/entity"
	domainRepo "lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type alertAcceptanceRepository struct{}

func NewAlertAcceptanceRepository() domainRepo.AlertAcceptanceRepository {
	return &alertAcceptanceRepository{}
}

// Create inserts the acceptance row. The (alert_id, donor_id) unique index
// makes concurrent duplicate inserts fail with a unique violation, which the
// usecase layer maps to the idempotent already-accepted outcome.
func (r *alertAcceptanceRepository) Create(ctx context.Context, db *gorm.DB, acceptance *entity.AlertAcceptance) error {
	return db.WithContext(ctx).Create(acceptance).Error
}

func (r *alertAcceptanceRepository) FindByAlertAndDonor(ctx context.Context, db *gorm.DB, alertID, donorID uuid.UUID) (*entity.AlertAcceptance, error) {
	var acceptance entity.AlertAcceptance
	err := db.WithContext(ctx).
		Where("alert_id = ? AND donor_id = ?", alertID, donorID).
		First(&acceptance).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &acceptance, nil
}

func (r *alertAcceptanceRepository) FindByAlertID(ctx context.Context, db *gorm.DB, alertID uuid.UUID) ([]entity.AlertAcceptance, error) {
	var acceptances []entity.AlertAcceptance
	err := db.WithContext(ctx).
		Preload("Donor").
		Where("alert_id = ?", alertID).
		Order("created_at DESC").
		Find(&acceptances).Error
	if err != nil {
		return nil, err
	}
	return acceptances, nil
}

func (r *alertAcceptanceRepository) AcceptedAlertIDs(ctx context.Context, db *gorm.DB, donorID uuid.UUID, alertIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	accepted := make(map[uuid.UUID]bool, len(alertIDs))
	if len(alertIDs) == 0 {
		return accepted, nil
	}

	var ids []uuid.UUID
	err := db.WithContext(ctx).Model(&entity.AlertAcceptance{}).
		Where("donor_id = ? AND alert_id IN ?", donorID, alertIDs).
		Pluck("alert_id", &ids).Error
	if err != nil {
		return nil, err
	}

	for _, id := range ids {
		accepted[id] = true
	}
	return accepted, nil
}
