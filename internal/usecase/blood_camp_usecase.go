package usecase

import (
	"context"
	"errors"
	"time"

	"lifelink-api/internal/converter"
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrCampNotFound = errors.New("camp not found")

type BloodCampUsecase interface {
	Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateBloodCampRequest) (*dto.BloodCampResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.BloodCampResponse, error)
	List(ctx context.Context, status string) (*dto.BloodCampListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBloodCampRequest) (*dto.BloodCampResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type bloodCampUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	campRepo repository.BloodCampRepository
}

func NewBloodCampUsecase(db *gorm.DB, log *logrus.Logger, campRepo repository.BloodCampRepository) BloodCampUsecase {
	return &bloodCampUsecase{
		db:       db,
		log:      log,
		campRepo: campRepo,
	}
}

func (u *bloodCampUsecase) Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateBloodCampRequest) (*dto.BloodCampResponse, error) {
	campDate, err := time.Parse("2006-01-02", req.CampDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	camp := &entity.BloodCamp{
		Title:            req.Title,
		Description:      req.Description,
		CampDate:         campDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Location:         req.Location,
		Address:          req.Address,
		TargetUnits:      req.TargetUnits,
		Status:           entity.CampStatusUpcoming,
		ContactPerson:    req.ContactPerson,
		ContactPhone:     req.ContactPhone,
		RegistrationLink: req.RegistrationLink,
		CreatedBy:        createdBy,
	}

	if err := u.campRepo.Create(ctx, u.db, camp); err != nil {
		u.log.Warnf("Failed to create blood camp: %+v", err)
		return nil, err
	}

	return converter.BloodCampToResponse(camp), nil
}

func (u *bloodCampUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.BloodCampResponse, error) {
	camp, err := u.campRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find blood camp by ID: %+v", err)
		return nil, err
	}
	if camp == nil {
		return nil, ErrCampNotFound
	}

	return converter.BloodCampToResponse(camp), nil
}

func (u *bloodCampUsecase) List(ctx context.Context, status string) (*dto.BloodCampListResponse, error) {
	camps, err := u.campRepo.FindAll(ctx, u.db, entity.CampStatus(status))
	if err != nil {
		u.log.Warnf("Failed to list blood camps: %+v", err)
		return nil, err
	}

	responses := converter.BloodCampsToResponses(camps)
	return &dto.BloodCampListResponse{Camps: responses, Total: len(responses)}, nil
}

func (u *bloodCampUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateBloodCampRequest) (*dto.BloodCampResponse, error) {
	camp, err := u.campRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find blood camp by ID: %+v", err)
		return nil, err
	}
	if camp == nil {
		return nil, ErrCampNotFound
	}

	if req.Title != "" {
		camp.Title = req.Title
	}
	if req.Description != "" {
		camp.Description = req.Description
	}
	if req.TargetUnits > 0 {
		camp.TargetUnits = req.TargetUnits
	}
	if req.CollectedUnits > 0 {
		camp.CollectedUnits = req.CollectedUnits
	}
	if req.Status != "" {
		camp.Status = entity.CampStatus(req.Status)
	}
	if req.ContactPerson != "" {
		camp.ContactPerson = req.ContactPerson
	}
	if req.ContactPhone != "" {
		camp.ContactPhone = req.ContactPhone
	}

	if err := u.campRepo.Update(ctx, u.db, camp); err != nil {
		u.log.Warnf("Failed to update blood camp: %+v", err)
		return nil, err
	}

	return converter.BloodCampToResponse(camp), nil
}

func (u *bloodCampUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.campRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete blood camp: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrCampNotFound
	}
	return nil
}
