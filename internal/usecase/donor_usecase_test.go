package usecase

import (
	"context"
	"testing"
	"time"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newDonorFixture() (DonorUsecase, *fakeDonorRepo) {
	donorRepo := newFakeDonorRepo()
	log := testLogger()
	resolver := NewDonorResolver(nil, log, newFakeUserRepo(), donorRepo)
	return NewDonorUsecase(nil, log, donorRepo, resolver), donorRepo
}

func TestDonorCreate(t *testing.T) {
	usecase, donorRepo := newDonorFixture()

	resp, err := usecase.Create(context.Background(), &dto.CreateDonorRequest{
		Name:        "Asha Verma",
		Phone:       "9000000020",
		BloodGroup:  "O_NEGATIVE",
		Gender:      "FEMALE",
		DateOfBirth: "1994-02-11",
	})

	require.NoError(t, err)
	assert.True(t, resp.IsEligible)
	assert.Equal(t, "O_NEGATIVE", resp.BloodGroup)
	assert.Len(t, donorRepo.donors, 1)
}

func TestDonorCreate_InvalidDate(t *testing.T) {
	usecase, _ := newDonorFixture()

	_, err := usecase.Create(context.Background(), &dto.CreateDonorRequest{
		Name:        "Asha Verma",
		Phone:       "9000000021",
		BloodGroup:  "O_NEGATIVE",
		Gender:      "FEMALE",
		DateOfBirth: "11-02-1994",
	})

	assert.ErrorIs(t, err, ErrInvalidDateFormat)
}

func TestDonorCreate_DuplicatePhone(t *testing.T) {
	usecase, donorRepo := newDonorFixture()
	donorRepo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "idx_donors_phone"}

	_, err := usecase.Create(context.Background(), &dto.CreateDonorRequest{
		Name:        "Asha Verma",
		Phone:       "9000000022",
		BloodGroup:  "O_NEGATIVE",
		Gender:      "FEMALE",
		DateOfBirth: "1994-02-11",
	})

	assert.ErrorIs(t, err, ErrPhoneAlreadyExists)
}

func TestRecordDonation_UpdatesCountersAndEligibility(t *testing.T) {
	usecase, donorRepo := newDonorFixture()
	donor := donorRepo.add(&entity.Donor{
		Name:           "Ravi Kumar",
		Phone:          "9000000023",
		IsEligible:     true,
		TotalDonations: 4,
	})

	yesterday := time.Now().AddDate(0, 0, -1).Format("2006-01-02")
	resp, err := usecase.RecordDonation(context.Background(), donor.ID, &dto.UpdateLastDonationRequest{
		LastDonationDate: yesterday,
	})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.TotalDonations)
	assert.False(t, resp.IsEligible)
	require.NotNil(t, resp.LastDonationDate)
}

func TestRecordDonation_RejectsFutureDate(t *testing.T) {
	usecase, donorRepo := newDonorFixture()
	donor := donorRepo.add(&entity.Donor{Name: "Ravi Kumar", Phone: "9000000024", IsEligible: true})

	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")
	_, err := usecase.RecordDonation(context.Background(), donor.ID, &dto.UpdateLastDonationRequest{
		LastDonationDate: tomorrow,
	})

	assert.ErrorIs(t, err, ErrFutureDonationDate)
	assert.Empty(t, donorRepo.updated)
}

func TestRecordDonation_DonorNotFound(t *testing.T) {
	usecase, _ := newDonorFixture()

	_, err := usecase.RecordDonation(context.Background(), uuid.New(), &dto.UpdateLastDonationRequest{
		LastDonationDate: "2025-01-01",
	})

	assert.ErrorIs(t, err, ErrDonorNotFound)
}

func TestRefreshAllEligibility_PersistsOnlyFlips(t *testing.T) {
	usecase, donorRepo := newDonorFixture()
	now := time.Now()

	// Stale flag: donated long ago but still cached ineligible
	oldDonation := now.AddDate(0, -6, 0)
	stale := donorRepo.add(&entity.Donor{
		Name:             "Stale",
		Phone:            "9000000025",
		LastDonationDate: &oldDonation,
		IsEligible:       false,
	})

	// Correct flag: recent donation, cached ineligible
	recentDonation := now.AddDate(0, 0, -10)
	donorRepo.add(&entity.Donor{
		Name:             "Fresh",
		Phone:            "9000000026",
		LastDonationDate: &recentDonation,
		IsEligible:       false,
	})

	// Correct flag: never donated, cached eligible
	donorRepo.add(&entity.Donor{Name: "New", Phone: "9000000027", IsEligible: true})

	resp, err := usecase.RefreshAllEligibility(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 1, resp.Updated)
	assert.Equal(t, map[uuid.UUID]bool{stale.ID: true}, donorRepo.eligibility)
}

func TestGetMyProfile_ViaHint(t *testing.T) {
	usecase, donorRepo := newDonorFixture()
	donor := donorRepo.add(&entity.Donor{Name: "Asha Verma", Phone: "9000000028", IsEligible: true})

	resp, err := usecase.GetMyProfile(context.Background(), uuid.New(), &donor.ID)

	require.NoError(t, err)
	assert.Equal(t, donor.ID, resp.ID)
}

func TestDeactivate(t *testing.T) {
	usecase, donorRepo := newDonorFixture()
	donor := donorRepo.add(&entity.Donor{Name: "Ravi Kumar", Phone: "9000000029"})

	require.NoError(t, usecase.Deactivate(context.Background(), donor.ID))
	assert.ErrorIs(t, usecase.Deactivate(context.Background(), uuid.New()), ErrDonorNotFound)
}
