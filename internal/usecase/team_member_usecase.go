package usecase

import (
	"context"
	"errors"

	"lifelink-api/internal/converter"
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrTeamMemberExists   = errors.New("team member with this name already exists")
)

type TeamMemberUsecase interface {
	Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.TeamMemberResponse, error)
	List(ctx context.Context) (*dto.TeamMemberListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
}

type teamMemberUsecase struct {
	db         *gorm.DB
	log        *logrus.Logger
	memberRepo repository.TeamMemberRepository
}

func NewTeamMemberUsecase(db *gorm.DB, log *logrus.Logger, memberRepo repository.TeamMemberRepository) TeamMemberUsecase {
	return &teamMemberUsecase{
		db:         db,
		log:        log,
		memberRepo: memberRepo,
	}
}

func (u *teamMemberUsecase) Create(ctx context.Context, req *dto.CreateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member := &entity.TeamMember{
		Name:        req.Name,
		Role:        req.Role,
		Position:    req.Position,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		SortOrder:   req.SortOrder,
	}

	if err := u.memberRepo.Create(ctx, u.db, member); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrTeamMemberExists
		}
		u.log.Warnf("Failed to create team member: %+v", err)
		return nil, err
	}

	return converter.TeamMemberToResponse(member), nil
}

func (u *teamMemberUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.TeamMemberResponse, error) {
	member, err := u.memberRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find team member by ID: %+v", err)
		return nil, err
	}
	if member == nil {
		return nil, ErrTeamMemberNotFound
	}

	return converter.TeamMemberToResponse(member), nil
}

func (u *teamMemberUsecase) List(ctx context.Context) (*dto.TeamMemberListResponse, error) {
	members, err := u.memberRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list team members: %+v", err)
		return nil, err
	}

	responses := converter.TeamMembersToResponses(members)
	return &dto.TeamMemberListResponse{Members: responses, Total: len(responses)}, nil
}

func (u *teamMemberUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateTeamMemberRequest) (*dto.TeamMemberResponse, error) {
	member, err := u.memberRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find team member by ID: %+v", err)
		return nil, err
	}
	if member == nil {
		return nil, ErrTeamMemberNotFound
	}

	if req.Name != "" {
		member.Name = req.Name
	}
	if req.Role != "" {
		member.Role = req.Role
	}
	if req.Position != "" {
		member.Position = req.Position
	}
	if req.Email != "" {
		member.Email = req.Email
	}
	if req.Phone != "" {
		member.Phone = req.Phone
	}
	if req.Description != "" {
		member.Description = req.Description
	}
	if req.ImageURL != "" {
		member.ImageURL = req.ImageURL
	}
	if req.SortOrder != nil {
		member.SortOrder = *req.SortOrder
	}

	if err := u.memberRepo.Update(ctx, u.db, member); err != nil {
		if isDuplicateKeyError(err, "name") {
			return nil, ErrTeamMemberExists
		}
		u.log.Warnf("Failed to update team member: %+v", err)
		return nil, err
	}

	return converter.TeamMemberToResponse(member), nil
}

func (u *teamMemberUsecase) Deactivate(ctx context.Context, id uuid.UUID) error {
	affected, err := u.memberRepo.Deactivate(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate team member: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrTeamMemberNotFound
	}
	return nil
}
