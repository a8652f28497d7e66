package usecase

import (
	"context"
	"io"
	"sync"

	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// fakeUserRepo serves users from an in-memory map keyed by ID
type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, db *gorm.DB, user *entity.User) error {
	if r.err != nil {
		return r.err
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	for _, u := range r.users {
		if u.Phone == phone {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(ctx context.Context, db *gorm.DB, user *entity.User) error {
	r.users[user.ID] = user
	return nil
}

// fakeDonorRepo serves donors from in-memory maps
type fakeDonorRepo struct {
	donors      map[uuid.UUID]*entity.Donor
	updated     []*entity.Donor
	eligibility map[uuid.UUID]bool
	createErr   error
}

func newFakeDonorRepo() *fakeDonorRepo {
	return &fakeDonorRepo{
		donors:      make(map[uuid.UUID]*entity.Donor),
		eligibility: make(map[uuid.UUID]bool),
	}
}

func (r *fakeDonorRepo) add(donor *entity.Donor) *entity.Donor {
	if donor.ID == uuid.Nil {
		donor.ID = uuid.New()
	}
	r.donors[donor.ID] = donor
	return donor
}

func (r *fakeDonorRepo) Create(ctx context.Context, db *gorm.DB, donor *entity.Donor) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.add(donor)
	return nil
}

func (r *fakeDonorRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Donor, error) {
	return r.donors[id], nil
}

func (r *fakeDonorRepo) FindByPhone(ctx context.Context, db *gorm.DB, phone string) (*entity.Donor, error) {
	for _, d := range r.donors {
		if d.Phone == phone {
			return d, nil
		}
	}
	return nil, nil
}

func (r *fakeDonorRepo) FindAll(ctx context.Context, db *gorm.DB, filter *entity.DonorFilter) ([]entity.Donor, int64, error) {
	var out []entity.Donor
	for _, d := range r.donors {
		out = append(out, *d)
	}
	return out, int64(len(out)), nil
}

func (r *fakeDonorRepo) FindActive(ctx context.Context, db *gorm.DB) ([]entity.Donor, error) {
	var out []entity.Donor
	for _, d := range r.donors {
		if d.IsActive == nil || *d.IsActive {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *fakeDonorRepo) Update(ctx context.Context, db *gorm.DB, donor *entity.Donor) error {
	r.donors[donor.ID] = donor
	r.updated = append(r.updated, donor)
	return nil
}

func (r *fakeDonorRepo) UpdateEligibility(ctx context.Context, db *gorm.DB, id uuid.UUID, isEligible bool) error {
	r.eligibility[id] = isEligible
	if d, ok := r.donors[id]; ok {
		d.IsEligible = isEligible
	}
	return nil
}

func (r *fakeDonorRepo) Deactivate(ctx context.Context, db *gorm.DB, id uuid.UUID) (int64, error) {
	if _, ok := r.donors[id]; !ok {
		return 0, nil
	}
	inactive := false
	r.donors[id].IsActive = &inactive
	return 1, nil
}

func (r *fakeDonorRepo) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	return int64(len(r.donors)), nil
}

func (r *fakeDonorRepo) CountEligible(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	for _, d := range r.donors {
		if d.IsEligible {
			n++
		}
	}
	return n, nil
}

// fakeAlertRepo serves alerts from an in-memory map
type fakeAlertRepo struct {
	alerts   map[uuid.UUID]*entity.Alert
	statuses map[uuid.UUID]entity.AlertStatus
}

func newFakeAlertRepo() *fakeAlertRepo {
	return &fakeAlertRepo{
		alerts:   make(map[uuid.UUID]*entity.Alert),
		statuses: make(map[uuid.UUID]entity.AlertStatus),
	}
}

func (r *fakeAlertRepo) add(alert *entity.Alert) *entity.Alert {
	if alert.ID == uuid.Nil {
		alert.ID = uuid.New()
	}
	r.alerts[alert.ID] = alert
	return alert
}

func (r *fakeAlertRepo) Create(ctx context.Context, db *gorm.DB, alert *entity.Alert) error {
	r.add(alert)
	return nil
}

func (r *fakeAlertRepo) FindByID(ctx context.Context, db *gorm.DB, id uuid.UUID) (*entity.Alert, error) {
	return r.alerts[id], nil
}

func (r *fakeAlertRepo) FindAll(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error) {
	var out []entity.AlertWithCount
	for _, a := range r.alerts {
		out = append(out, entity.AlertWithCount{Alert: *a})
	}
	return out, nil
}

func (r *fakeAlertRepo) FindActive(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error) {
	var out []entity.AlertWithCount
	for _, a := range r.alerts {
		if a.Status == entity.AlertStatusActive {
			out = append(out, entity.AlertWithCount{Alert: *a})
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) FindPast(ctx context.Context, db *gorm.DB) ([]entity.AlertWithCount, error) {
	var out []entity.AlertWithCount
	for _, a := range r.alerts {
		if a.Status != entity.AlertStatusActive {
			out = append(out, entity.AlertWithCount{Alert: *a})
		}
	}
	return out, nil
}

func (r *fakeAlertRepo) Update(ctx context.Context, db *gorm.DB, alert *entity.Alert) error {
	r.alerts[alert.ID] = alert
	return nil
}

func (r *fakeAlertRepo) UpdateStatus(ctx context.Context, db *gorm.DB, id uuid.UUID, status entity.AlertStatus) (int64, error) {
	if _, ok := r.alerts[id]; !ok {
		return 0, nil
	}
	r.alerts[id].Status = status
	r.statuses[id] = status
	return 1, nil
}

func (r *fakeAlertRepo) CountActive(ctx context.Context, db *gorm.DB) (int64, error) {
	var n int64
	for _, a := range r.alerts {
		if a.Status == entity.AlertStatusActive {
			n++
		}
	}
	return n, nil
}

// fakeAcceptanceRepo records acceptances keyed by alert+donor
type fakeAcceptanceRepo struct {
	acceptances map[[2]uuid.UUID]*entity.AlertAcceptance
	createErr   error
}

func newFakeAcceptanceRepo() *fakeAcceptanceRepo {
	return &fakeAcceptanceRepo{acceptances: make(map[[2]uuid.UUID]*entity.AlertAcceptance)}
}

func (r *fakeAcceptanceRepo) Create(ctx context.Context, db *gorm.DB, acceptance *entity.AlertAcceptance) error {
	if r.createErr != nil {
		return r.createErr
	}
	if acceptance.ID == uuid.Nil {
		acceptance.ID = uuid.New()
	}
	r.acceptances[[2]uuid.UUID{acceptance.AlertID, acceptance.DonorID}] = acceptance
	return nil
}

func (r *fakeAcceptanceRepo) FindByAlertAndDonor(ctx context.Context, db *gorm.DB, alertID, donorID uuid.UUID) (*entity.AlertAcceptance, error) {
	return r.acceptances[[2]uuid.UUID{alertID, donorID}], nil
}

func (r *fakeAcceptanceRepo) FindByAlertID(ctx context.Context, db *gorm.DB, alertID uuid.UUID) ([]entity.AlertAcceptance, error) {
	var out []entity.AlertAcceptance
	for key, a := range r.acceptances {
		if key[0] == alertID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAcceptanceRepo) AcceptedAlertIDs(ctx context.Context, db *gorm.DB, donorID uuid.UUID, alertIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	out := make(map[uuid.UUID]bool)
	for _, alertID := range alertIDs {
		if _, ok := r.acceptances[[2]uuid.UUID{alertID, donorID}]; ok {
			out[alertID] = true
		}
	}
	return out, nil
}

// fakeDeviceTokenRepo serves static token fixtures
type fakeDeviceTokenRepo struct {
	tokens []entity.DeviceToken
}

func (r *fakeDeviceTokenRepo) Create(ctx context.Context, db *gorm.DB, token *entity.DeviceToken) error {
	r.tokens = append(r.tokens, *token)
	return nil
}

func (r *fakeDeviceTokenRepo) Update(ctx context.Context, db *gorm.DB, token *entity.DeviceToken) error {
	return nil
}

func (r *fakeDeviceTokenRepo) FindByUserAndToken(ctx context.Context, db *gorm.DB, userID uuid.UUID, token string) (*entity.DeviceToken, error) {
	for i := range r.tokens {
		if r.tokens[i].UserID == userID && r.tokens[i].Token == token {
			return &r.tokens[i], nil
		}
	}
	return nil, nil
}

func (r *fakeDeviceTokenRepo) FindActiveByUserID(ctx context.Context, db *gorm.DB, userID uuid.UUID) ([]entity.DeviceToken, error) {
	return r.tokens, nil
}

func (r *fakeDeviceTokenRepo) FindAllActive(ctx context.Context, db *gorm.DB) ([]entity.DeviceToken, error) {
	return r.tokens, nil
}

func (r *fakeDeviceTokenRepo) FindActiveByRole(ctx context.Context, db *gorm.DB, role entity.UserRole) ([]entity.DeviceToken, error) {
	return r.tokens, nil
}

func (r *fakeDeviceTokenRepo) Deactivate(ctx context.Context, db *gorm.DB, userID uuid.UUID, token string) (int64, error) {
	return 1, nil
}

// fakePushSender records dispatches; safe for the background goroutine path
type fakePushSender struct {
	mu      sync.Mutex
	sent    [][]string
	titles  []string
	done    chan struct{}
	sendErr error
}

func newFakePushSender() *fakePushSender {
	return &fakePushSender{done: make(chan struct{}, 8)}
}

func (s *fakePushSender) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (*service.DispatchResult, error) {
	s.mu.Lock()
	s.sent = append(s.sent, tokens)
	s.titles = append(s.titles, title)
	s.mu.Unlock()
	s.done <- struct{}{}
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	return &service.DispatchResult{
		TokensCount:  len(tokens),
		SuccessCount: len(tokens),
	}, nil
}

func (s *fakePushSender) sentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sent)
}
