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
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var ErrInvalidBudget = errors.New("invalid budget amount")

type MedicalCampUsecase interface {
	Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateMedicalCampRequest) (*dto.MedicalCampResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.MedicalCampResponse, error)
	List(ctx context.Context, status string) (*dto.MedicalCampListResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicalCampRequest) (*dto.MedicalCampResponse, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type medicalCampUsecase struct {
	db       *gorm.DB
	log      *logrus.Logger
	campRepo repository.MedicalCampRepository
}

func NewMedicalCampUsecase(db *gorm.DB, log *logrus.Logger, campRepo repository.MedicalCampRepository) MedicalCampUsecase {
	return &medicalCampUsecase{
		db:       db,
		log:      log,
		campRepo: campRepo,
	}
}

func (u *medicalCampUsecase) Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateMedicalCampRequest) (*dto.MedicalCampResponse, error) {
	campDate, err := time.Parse("2006-01-02", req.CampDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	budget := decimal.Zero
	if req.EstimatedBudget != "" {
		budget, err = decimal.NewFromString(req.EstimatedBudget)
		if err != nil || budget.IsNegative() {
			return nil, ErrInvalidBudget
		}
	}

	camp := &entity.MedicalCamp{
		Title:            req.Title,
		Description:      req.Description,
		CampDate:         campDate,
		StartTime:        req.StartTime,
		EndTime:          req.EndTime,
		Location:         req.Location,
		Address:          req.Address,
		Specialties:      req.Specialties,
		ExpectedPatients: req.ExpectedPatients,
		EstimatedBudget:  budget,
		Status:           entity.CampStatusUpcoming,
		ContactPerson:    req.ContactPerson,
		ContactPhone:     req.ContactPhone,
		CreatedBy:        createdBy,
	}

	if err := u.campRepo.Create(ctx, u.db, camp); err != nil {
		u.log.Warnf("Failed to create medical camp: %+v", err)
		return nil, err
	}

	return converter.MedicalCampToResponse(camp), nil
}

func (u *medicalCampUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.MedicalCampResponse, error) {
	camp, err := u.campRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find medical camp by ID: %+v", err)
		return nil, err
	}
	if camp == nil {
		return nil, ErrCampNotFound
	}

	return converter.MedicalCampToResponse(camp), nil
}

func (u *medicalCampUsecase) List(ctx context.Context, status string) (*dto.MedicalCampListResponse, error) {
	camps, err := u.campRepo.FindAll(ctx, u.db, entity.CampStatus(status))
	if err != nil {
		u.log.Warnf("Failed to list medical camps: %+v", err)
		return nil, err
	}

	responses := converter.MedicalCampsToResponses(camps)
	return &dto.MedicalCampListResponse{Camps: responses, Total: len(responses)}, nil
}

func (u *medicalCampUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateMedicalCampRequest) (*dto.MedicalCampResponse, error) {
	camp, err := u.campRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find medical camp by ID: %+v", err)
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
	if req.ExpectedPatients > 0 {
		camp.ExpectedPatients = req.ExpectedPatients
	}
	if req.PatientsServed > 0 {
		camp.PatientsServed = req.PatientsServed
	}
	if req.EstimatedBudget != "" {
		budget, err := decimal.NewFromString(req.EstimatedBudget)
		if err != nil || budget.IsNegative() {
			return nil, ErrInvalidBudget
		}
		camp.EstimatedBudget = budget
	}
	if req.Status != "" {
		camp.Status = entity.CampStatus(req.Status)
	}

	if err := u.campRepo.Update(ctx, u.db, camp); err != nil {
		u.log.Warnf("Failed to update medical camp: %+v", err)
		return nil, err
	}

	return converter.MedicalCampToResponse(camp), nil
}

func (u *medicalCampUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	affected, err := u.campRepo.Delete(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to delete medical camp: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrCampNotFound
	}
	return nil
}
