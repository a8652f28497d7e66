package repository

import (
	"context"

	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TeamMemberRepository interface {
	Create(ctx context.Context, db *gorm.DB, member *entity.TeamMember) error
	FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.TeamMember, error)
	// FindAll returns active members ordered by sort order, then name.
	FindAll(ctx context.Context, db *gorm.DB) ([]entity.TeamMember, error)
	Update(ctx context.Context, db *gorm.DB, member *entity.TeamMember) error
	Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error)
}
