package usecase

import (
	"context"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type DashboardUsecase interface {
	Overview(ctx context.Context) (*dto.DashboardOverviewResponse, error)
}

type dashboardUsecase struct {
	db        *gorm.DB
	log       *logrus.Logger
	donorRepo repository.DonorRepository
	alertRepo repository.AlertRepository
	campRepo  repository.BloodCampRepository
	eventRepo repository.EventRepository
}

func NewDashboardUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	donorRepo repository.DonorRepository,
	alertRepo repository.AlertRepository,
	campRepo repository.BloodCampRepository,
	eventRepo repository.EventRepository,
) DashboardUsecase {
	return &dashboardUsecase{
		db:        db,
		log:       log,
		donorRepo: donorRepo,
		alertRepo: alertRepo,
		campRepo:  campRepo,
		eventRepo: eventRepo,
	}
}

func (u *dashboardUsecase) Overview(ctx context.Context) (*dto.DashboardOverviewResponse, error) {
	totalDonors, err := u.donorRepo.CountActive(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count donors: %+v", err)
		return nil, err
	}

	eligibleDonors, err := u.donorRepo.CountEligible(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count eligible donors: %+v", err)
		return nil, err
	}

	activeAlerts, err := u.alertRepo.CountActive(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count active alerts: %+v", err)
		return nil, err
	}

	upcomingCamps, err := u.campRepo.CountByStatus(ctx, u.db, entity.CampStatusUpcoming)
	if err != nil {
		u.log.Warnf("Failed to count upcoming camps: %+v", err)
		return nil, err
	}

	upcomingEvents, err := u.eventRepo.CountUpcoming(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to count upcoming events: %+v", err)
		return nil, err
	}

	return &dto.DashboardOverviewResponse{
		TotalDonors:    totalDonors,
		EligibleDonors: eligibleDonors,
		ActiveAlerts:   activeAlerts,
		UpcomingCamps:  upcomingCamps,
		UpcomingEvents: upcomingEvents,
	}, nil
}
