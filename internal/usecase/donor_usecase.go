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

var (
	ErrDonorNotFound      = errors.New("donor not found")
	ErrFutureDonationDate = errors.New("donation date cannot be in the future")
)

type DonorUsecase interface {
	List(ctx context.Context, query *dto.ListDonorsQuery) (*dto.DonorListResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.DonorResponse, error)
	Create(ctx context.Context, req *dto.CreateDonorRequest) (*dto.DonorResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDonorRequest) (*dto.DonorResponse, error)
	Deactivate(ctx context.Context, id uuid.UUID) error
	RecordDonation(ctx context.Context, id uuid.UUID, req *dto.UpdateLastDonationRequest) (*dto.DonorResponse, error)
	RefreshAllEligibility(ctx context.Context) (*dto.RefreshEligibilityResponse, error)
	GetMyProfile(ctx context.Context, userID uuid.UUID, donorIDHint *uuid.UUID) (*dto.DonorResponse, error)
	RecordMyDonation(ctx context.Context, userID uuid.UUID, donorIDHint *uuid.UUID, req *dto.UpdateLastDonationRequest) (*dto.DonorResponse, error)
}

type donorUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	donorRepo repository.DonorRepository
	resolver  *DonorResolver
}

func NewDonorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	donorRepo repository.DonorRepository,
	resolver *DonorResolver,
) DonorUsecase {
	return &donorUsecase{
		db:        db,
		log:       log,
		donorRepo: donorRepo,
		resolver:  resolver,
	}
}

func (u *donorUsecase) List(ctx context.Context, query *dto.ListDonorsQuery) (*dto.DonorListResponse, error) {
	filter := &entity.DonorFilter{
		BloodGroup: query.BloodGroup,
		Gender:     query.Gender,
		Search:     query.Search,
		Page:       query.Page,
		Limit:      query.Limit,
	}
	switch query.IsEligible {
	case "true":
		eligible := true
		filter.IsEligible = &eligible
	case "false":
		eligible := false
		filter.IsEligible = &eligible
	}

	donors, total, err := u.donorRepo.FindAll(ctx, u.db, filter)
	if err != nil {
		u.log.Warnf("Failed to list donors: %+v", err)
		return nil, err
	}

	return &dto.DonorListResponse{
		Donors: converter.DonorsToResponses(donors),
		Total:  total,
	}, nil
}

func (u *donorUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.DonorResponse, error) {
	donor, err := u.donorRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find donor by ID: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	return converter.DonorToResponse(donor), nil
}

func (u *donorUsecase) Create(ctx context.Context, req *dto.CreateDonorRequest) (*dto.DonorResponse, error) {
	dob, err := time.Parse("2006-01-02", req.DateOfBirth)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	donor := &entity.Donor{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		BloodGroup:  entity.BloodGroup(req.BloodGroup),
		Gender:      entity.Gender(req.Gender),
		DateOfBirth: dob,
		Address:     req.Address,
		City:        req.City,
		IsEligible:  true,
	}

	if err := u.donorRepo.Create(ctx, u.db, donor); err != nil {
		if isDuplicateKeyError(err, "phone") {
			return nil, ErrPhoneAlreadyExists
		}
		u.log.Warnf("Failed to create donor: %+v", err)
		return nil, err
	}

	return converter.DonorToResponse(donor), nil
}

func (u *donorUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateDonorRequest) (*dto.DonorResponse, error) {
	donor, err := u.donorRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find donor by ID: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	if req.Name != "" {
		donor.Name = req.Name
	}
	if req.Email != "" {
		donor.Email = req.Email
	}
	if req.BloodGroup != "" {
		donor.BloodGroup = entity.BloodGroup(req.BloodGroup)
	}
	if req.Address != "" {
		donor.Address = req.Address
	}
	if req.City != "" {
		donor.City = req.City
	}

	if err := u.donorRepo.Update(ctx, u.db, donor); err != nil {
		u.log.Warnf("Failed to update donor: %+v", err)
		return nil, err
	}

	return converter.DonorToResponse(donor), nil
}

func (u *donorUsecase) Deactivate(ctx context.Context, id uuid.UUID) error {
	affected, err := u.donorRepo.Deactivate(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to deactivate donor: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDonorNotFound
	}
	return nil
}

func (u *donorUsecase) RecordDonation(ctx context.Context, id uuid.UUID, req *dto.UpdateLastDonationRequest) (*dto.DonorResponse, error) {
	donor, err := u.donorRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find donor by ID: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorNotFound
	}

	return u.applyDonation(ctx, donor, req)
}

// RecordMyDonation lets a donor self-report a donation against their own profile
func (u *donorUsecase) RecordMyDonation(ctx context.Context, userID uuid.UUID, donorIDHint *uuid.UUID, req *dto.UpdateLastDonationRequest) (*dto.DonorResponse, error) {
	donor, err := u.resolver.Resolve(ctx, userID, donorIDHint)
	if err != nil {
		return nil, err
	}

	return u.applyDonation(ctx, donor, req)
}

func (u *donorUsecase) applyDonation(ctx context.Context, donor *entity.Donor, req *dto.UpdateLastDonationRequest) (*dto.DonorResponse, error) {
	donationDate, err := time.Parse("2006-01-02", req.LastDonationDate)
	if err != nil {
		return nil, ErrInvalidDateFormat
	}

	now := time.Now()
	if donationDate.After(now) {
		return nil, ErrFutureDonationDate
	}

	donor.RecordDonation(donationDate, now)

	if err := u.donorRepo.Update(ctx, u.db, donor); err != nil {
		u.log.Warnf("Failed to record donation: %+v", err)
		return nil, err
	}

	return converter.DonorToResponse(donor), nil
}

// RefreshAllEligibility re-evaluates the cached eligibility flag for every
// active donor and persists only the rows whose flag flipped. The nightly
// scheduler and the admin endpoint both land here.
func (u *donorUsecase) RefreshAllEligibility(ctx context.Context) (*dto.RefreshEligibilityResponse, error) {
	donors, err := u.donorRepo.FindActive(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to load active donors: %+v", err)
		return nil, err
	}

	now := time.Now()
	updated := 0
	for i := range donors {
		donor := &donors[i]
		eligible := entity.EligibleAt(donor.LastDonationDate, now)
		if eligible == donor.IsEligible {
			continue
		}
		if err := u.donorRepo.UpdateEligibility(ctx, u.db, donor.ID, eligible); err != nil {
			u.log.Warnf("Failed to update eligibility for donor %s: %+v", donor.ID, err)
			return nil, err
		}
		updated++
	}

	u.log.Infof("Eligibility sweep finished, %d of %d donors updated", updated, len(donors))

	return &dto.RefreshEligibilityResponse{Updated: updated}, nil
}

func (u *donorUsecase) GetMyProfile(ctx context.Context, userID uuid.UUID, donorIDHint *uuid.UUID) (*dto.DonorResponse, error) {
	donor, err := u.resolver.Resolve(ctx, userID, donorIDHint)
	if err != nil {
		return nil, err
	}

	return converter.DonorToResponse(donor), nil
}
