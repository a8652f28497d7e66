package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AlertAcceptanceRepository interface {
	Create(ctx context.Context, db *gorm.DB, acceptance *entity.AlertAcceptance) error
	FindByAlertAndDonor(ctx context.Context, db *gorm.DB, alertID, donorID uuid.UUID) (*entity.AlertAcceptance, error)
	// FindByAlertID returns acceptances for one alert with donor profiles
	// preloaded, newest acceptance first.
	FindByAlertID(ctx context.Context, db *gorm.DB, alertID uuid.UUID) ([]entity.AlertAcceptance, error)
	// AcceptedAlertIDs returns, for one donor, the subset of alertIDs that
	// already have an acceptance row (single set-membership query).
	AcceptedAlertIDs(ctx context.Context, db *gorm.DB, donorID uuid.UUID, alertIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}
