package repository

import (
	"context"
	"errors"

	"lifelink-api/internal/domain/entity"
	domainRepo "lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type teamMemberRepository struct{}

func NewTeamMemberRepository() domainRepo.TeamMemberRepository {
	return &teamMemberRepository{}
}

func (r *teamMemberRepository) Create(ctx context.Context, db *gorm.DB, member *entity.TeamMember) error {
	return db.WithContext(ctx).Create(member).Error
}

func (r *teamMemberRepository) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.TeamMember, error) {
	var member entity.TeamMember
	err := db.WithContext(ctx).Where("id = ?", id).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &member, nil
}

func (r *teamMemberRepository) FindAll(ctx context.Context, db *gorm.DB) ([]entity.TeamMember, error) {
	var members []entity.TeamMember
	err := db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&members).Error
	if err != nil {
		return nil, err
	}
	return members, nil
}

func (r *teamMemberRepository) Update(ctx context.Context, db *gorm.DB, member *entity.TeamMember) error {
	return db.WithContext(ctx).Save(member).Error
}

func (r *teamMemberRepository) Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.WithContext(ctx).Model(&entity.TeamMember{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
