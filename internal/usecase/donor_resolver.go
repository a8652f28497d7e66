package usecase

import (
	"context"
	"errors"

	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrUserPhoneMissing     = errors.New("user phone number not found")
	ErrDonorProfileNotFound = errors.New("donor profile not found")
)

// DonorResolver maps an authenticated user to their donor profile.
// The JWT carries a donor-id hint for donor-role users; when the hint is
// present it is authoritative: the user/phone chain is skipped and a hint
// that no longer resolves fails the request.
type DonorResolver struct {
	db        *gorm.DB
	log       *logrus.Logger
	userRepo  repository.UserRepository
	donorRepo repository.DonorRepository
}

func NewDonorResolver(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	donorRepo repository.DonorRepository,
) *DonorResolver {
	return &DonorResolver{
		db:        db,
		log:       log,
		userRepo:  userRepo,
		donorRepo: donorRepo,
	}
}

// Resolve returns the donor profile for userID. donorIDHint, when non-nil,
// is the sole lookup path; the user/phone chain only applies without a hint.
func (r *DonorResolver) Resolve(ctx context.Context, userID uuid.UUID, donorIDHint *uuid.UUID) (*entity.Donor, error) {
	if donorIDHint != nil {
		donor, err := r.donorRepo.FindByID(ctx, r.db, *donorIDHint)
		if err != nil {
			r.log.Warnf("Failed to find donor by hint: %+v", err)
			return nil, err
		}
		if donor == nil {
			r.log.Warnf("Donor hint %s resolved to nothing", donorIDHint)
			return nil, ErrDonorProfileNotFound
		}
		return donor, nil
	}

	user, err := r.userRepo.FindByID(ctx, r.db, userID)
	if err != nil {
		r.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Phone == "" {
		return nil, ErrUserPhoneMissing
	}

	donor, err := r.donorRepo.FindByPhone(ctx, r.db, user.Phone)
	if err != nil {
		r.log.Warnf("Failed to find donor by phone: %+v", err)
		return nil, err
	}
	if donor == nil {
		return nil, ErrDonorProfileNotFound
	}

	return donor, nil
}
