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

type alertFixture struct {
	usecase    AlertUsecase
	alertRepo  *fakeAlertRepo
	acceptRepo *fakeAcceptanceRepo
	tokenRepo  *fakeDeviceTokenRepo
	donorRepo  *fakeDonorRepo
	userRepo   *fakeUserRepo
	push       *fakePushSender
}

func newAlertFixture() *alertFixture {
	f := &alertFixture{
		alertRepo:  newFakeAlertRepo(),
		acceptRepo: newFakeAcceptanceRepo(),
		tokenRepo:  &fakeDeviceTokenRepo{},
		donorRepo:  newFakeDonorRepo(),
		userRepo:   newFakeUserRepo(),
		push:       newFakePushSender(),
	}

	log := testLogger()
	resolver := NewDonorResolver(nil, log, f.userRepo, f.donorRepo)
	f.usecase = NewAlertUsecase(nil, log, f.alertRepo, f.acceptRepo, f.tokenRepo, resolver, f.push)
	return f
}

func (f *alertFixture) activeAlert() *entity.Alert {
	return f.alertRepo.add(&entity.Alert{
		Title:      "O- needed at City Hospital",
		Message:    "2 units required urgently",
		BloodGroup: entity.BloodGroupONegative,
		Urgency:    entity.UrgencyCritical,
		Status:     entity.AlertStatusActive,
		ExpiresAt:  time.Now().Add(12 * time.Hour),
	})
}

func TestAlertCreate_DefaultExpiry(t *testing.T) {
	f := newAlertFixture()

	before := time.Now()
	resp, err := f.usecase.Create(context.Background(), uuid.New(), &dto.CreateAlertRequest{
		Title:         "B+ needed",
		Message:       "Accident case",
		BloodGroup:    "B_POSITIVE",
		UnitsRequired: 2,
		Urgency:       "HIGH",
	})

	require.NoError(t, err)
	assert.Equal(t, "ACTIVE", resp.Status)
	assert.WithinDuration(t, before.Add(entity.DefaultAlertTTL), resp.ExpiresAt, 5*time.Second)
}

func TestAlertCreate_ExplicitExpiry(t *testing.T) {
	f := newAlertFixture()

	expiry := time.Now().Add(48 * time.Hour).UTC().Truncate(time.Second)
	resp, err := f.usecase.Create(context.Background(), uuid.New(), &dto.CreateAlertRequest{
		Title:         "AB- needed",
		Message:       "Surgery scheduled",
		BloodGroup:    "AB_NEGATIVE",
		UnitsRequired: 1,
		Urgency:       "MEDIUM",
		ExpiresAt:     expiry.Format(time.RFC3339),
	})

	require.NoError(t, err)
	assert.True(t, resp.ExpiresAt.Equal(expiry))
}

func TestAlertCreate_InvalidExpiry(t *testing.T) {
	f := newAlertFixture()

	_, err := f.usecase.Create(context.Background(), uuid.New(), &dto.CreateAlertRequest{
		Title:     "O+ needed",
		Message:   "msg",
		ExpiresAt: "tomorrow",
	})

	assert.ErrorIs(t, err, ErrInvalidExpiryFormat)
	assert.Empty(t, f.alertRepo.alerts)
}

func TestAlertCreate_DispatchesPushToDonorTokens(t *testing.T) {
	f := newAlertFixture()
	f.tokenRepo.tokens = []entity.DeviceToken{
		{Token: "tok-1", UserID: uuid.New()},
		{Token: "tok-2", UserID: uuid.New()},
	}

	_, err := f.usecase.Create(context.Background(), uuid.New(), &dto.CreateAlertRequest{
		Title:         "A+ needed",
		Message:       "ICU patient",
		BloodGroup:    "A_POSITIVE",
		UnitsRequired: 3,
		Urgency:       "CRITICAL",
	})
	require.NoError(t, err)

	// Dispatch runs in the background; wait for the send to land
	select {
	case <-f.push.done:
	case <-time.After(2 * time.Second):
		t.Fatal("push dispatch did not happen")
	}

	f.push.mu.Lock()
	defer f.push.mu.Unlock()
	require.Len(t, f.push.sent, 1)
	assert.ElementsMatch(t, []string{"tok-1", "tok-2"}, f.push.sent[0])
	assert.Equal(t, "A+ needed", f.push.titles[0])
}

func TestAlertCreate_NoTokensSkipsPush(t *testing.T) {
	f := newAlertFixture()

	_, err := f.usecase.Create(context.Background(), uuid.New(), &dto.CreateAlertRequest{
		Title:         "O- needed",
		Message:       "msg",
		BloodGroup:    "O_NEGATIVE",
		UnitsRequired: 1,
		Urgency:       "LOW",
	})
	require.NoError(t, err)

	select {
	case <-f.push.done:
		t.Fatal("push dispatched with no registered tokens")
	case <-time.After(100 * time.Millisecond):
	}
	assert.Equal(t, 0, f.push.sentCount())
}

func TestAlertAccept_Success(t *testing.T) {
	f := newAlertFixture()
	alert := f.activeAlert()
	donor := f.donorRepo.add(&entity.Donor{Name: "Asha", Phone: "9000000010"})

	resp, err := f.usecase.Accept(context.Background(), alert.ID, uuid.New(), &donor.ID)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Alert accepted successfully", resp.Message)

	stored, _ := f.acceptRepo.FindByAlertAndDonor(context.Background(), nil, alert.ID, donor.ID)
	assert.NotNil(t, stored)
}

func TestAlertAccept_Idempotent(t *testing.T) {
	f := newAlertFixture()
	alert := f.activeAlert()
	donor := f.donorRepo.add(&entity.Donor{Name: "Ravi", Phone: "9000000011"})

	first, err := f.usecase.Accept(context.Background(), alert.ID, uuid.New(), &donor.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alert accepted successfully", first.Message)

	second, err := f.usecase.Accept(context.Background(), alert.ID, uuid.New(), &donor.ID)
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.Equal(t, "Already accepted this alert", second.Message)
}

func TestAlertAccept_DuplicateKeyRace(t *testing.T) {
	f := newAlertFixture()
	alert := f.activeAlert()
	donor := f.donorRepo.add(&entity.Donor{Name: "Meera", Phone: "9000000012"})

	// Simulate a concurrent accept landing between the existence check and
	// the insert: the unique index rejects the second row.
	f.acceptRepo.createErr = &pgconn.PgError{
		Code:           "23505",
		ConstraintName: "idx_alert_acceptances_alert_donor",
	}

	resp, err := f.usecase.Accept(context.Background(), alert.ID, uuid.New(), &donor.ID)

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "Already accepted this alert", resp.Message)
}

func TestAlertAccept_NotFound(t *testing.T) {
	f := newAlertFixture()

	_, err := f.usecase.Accept(context.Background(), uuid.New(), uuid.New(), nil)

	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestAlertAccept_NotActive(t *testing.T) {
	f := newAlertFixture()
	alert := f.alertRepo.add(&entity.Alert{
		Status:    entity.AlertStatusResolved,
		ExpiresAt: time.Now().Add(time.Hour),
	})

	_, err := f.usecase.Accept(context.Background(), alert.ID, uuid.New(), nil)

	assert.ErrorIs(t, err, ErrAlertNotActive)
}

func TestAlertAccept_Expired(t *testing.T) {
	f := newAlertFixture()
	alert := f.alertRepo.add(&entity.Alert{
		Status:    entity.AlertStatusActive,
		ExpiresAt: time.Now().Add(-time.Minute),
	})

	_, err := f.usecase.Accept(context.Background(), alert.ID, uuid.New(), nil)

	assert.ErrorIs(t, err, ErrAlertExpired)
}

func TestListActiveForDonor_AnnotatesAcceptance(t *testing.T) {
	f := newAlertFixture()
	donor := f.donorRepo.add(&entity.Donor{Name: "Asha", Phone: "9000000013"})

	accepted := f.activeAlert()
	pending := f.activeAlert()
	require.NoError(t, f.acceptRepo.Create(context.Background(), nil, &entity.AlertAcceptance{
		AlertID: accepted.ID,
		DonorID: donor.ID,
	}))

	resp, err := f.usecase.ListActiveForDonor(context.Background(), uuid.New(), &donor.ID)

	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)

	flags := make(map[uuid.UUID]bool)
	for _, a := range resp.Alerts {
		require.NotNil(t, a.HasAccepted)
		flags[a.ID] = *a.HasAccepted
	}
	assert.True(t, flags[accepted.ID])
	assert.False(t, flags[pending.ID])
}

func TestListActiveForDonor_UnresolvableDonor(t *testing.T) {
	f := newAlertFixture()
	f.activeAlert()

	// No user and no hint: the listing still succeeds, nothing is accepted
	resp, err := f.usecase.ListActiveForDonor(context.Background(), uuid.New(), nil)

	require.NoError(t, err)
	require.Equal(t, 1, resp.Total)
	require.NotNil(t, resp.Alerts[0].HasAccepted)
	assert.False(t, *resp.Alerts[0].HasAccepted)
}

func TestMarkResolvedAndCancel(t *testing.T) {
	f := newAlertFixture()
	alert := f.activeAlert()

	require.NoError(t, f.usecase.MarkResolved(context.Background(), alert.ID))
	assert.Equal(t, entity.AlertStatusResolved, f.alertRepo.statuses[alert.ID])

	other := f.activeAlert()
	require.NoError(t, f.usecase.Cancel(context.Background(), other.ID))
	assert.Equal(t, entity.AlertStatusCancelled, f.alertRepo.statuses[other.ID])

	assert.ErrorIs(t, f.usecase.MarkResolved(context.Background(), uuid.New()), ErrAlertNotFound)
}
