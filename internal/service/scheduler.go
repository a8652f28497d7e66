package service

import (
	"context"
	"time"

	"lifelink-api/internal/delivery/dto"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

// eligibilitySweepTimeout bounds a single nightly sweep run.
const eligibilitySweepTimeout = 5 * time.Minute

// EligibilityRefresher re-evaluates the cached eligibility flag for all donors
type EligibilityRefresher interface {
	RefreshAllEligibility(ctx context.Context) (*dto.RefreshEligibilityResponse, error)
}

// Scheduler owns the background cron jobs. The eligibility sweep keeps the
// cached is_eligible column in sync as cooldown windows lapse overnight;
// reads never trust the cache, so the sweep only matters for bulk filters.
type Scheduler struct {
	cron      *cron.Cron
	log       *logrus.Logger
	refresher EligibilityRefresher
}

func NewScheduler(log *logrus.Logger, refresher EligibilityRefresher) *Scheduler {
	return &Scheduler{
		cron:      cron.New(),
		log:       log,
		refresher: refresher,
	}
}

// Start registers the jobs and launches the cron loop
func (s *Scheduler) Start() error {
	// Nightly, shortly after midnight, when cooldown boundaries roll over
	if _, err := s.cron.AddFunc("5 0 * * *", s.runEligibilitySweep); err != nil {
		return err
	}

	s.cron.Start()
	s.log.Info("Scheduler started")
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Scheduler stopped")
}

func (s *Scheduler) runEligibilitySweep() {
	ctx, cancel := context.WithTimeout(context.Background(), eligibilitySweepTimeout)
	defer cancel()

	result, err := s.refresher.RefreshAllEligibility(ctx)
	if err != nil {
		s.log.Warnf("Nightly eligibility sweep failed: %+v", err)
		return
	}

	s.log.Infof("Nightly eligibility sweep updated %d donors", result.Updated)
}
