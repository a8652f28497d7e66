package usecase

import (
	"context"
	"errors"
	"time"

	"lifelink-api/internal/converter"
	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/domain/repository"
	"lifelink-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAlertNotFound       = errors.New("alert not found")
	ErrAlertNotActive      = errors.New("alert is not active")
	ErrAlertExpired        = errors.New("alert has expired")
	ErrInvalidExpiryFormat = errors.New("invalid expiry format, use RFC3339")
)

// pushDispatchTimeout bounds the background notification fan-out that runs
// detached from the request context.
const pushDispatchTimeout = 30 * time.Second

type AlertUsecase interface {
	Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateAlertRequest) (*dto.AlertResponse, error)
	Get(ctx context.Context, id uuid.UUID) (*dto.AlertResponse, error)
	Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error)
	ListAll(ctx context.Context) (*dto.AlertListResponse, error)
	ListActive(ctx context.Context) (*dto.AlertListResponse, error)
	ListPast(ctx context.Context) (*dto.AlertListResponse, error)
	// ListActiveForDonor annotates each active alert with whether the
	// calling donor already accepted it.
	ListActiveForDonor(ctx context.Context, userID uuid.UUID, donorIDHint *uuid.UUID) (*dto.AlertListResponse, error)
	Accept(ctx context.Context, alertID, userID uuid.UUID, donorIDHint *uuid.UUID) (*dto.AcceptAlertResponse, error)
	AcceptedDonors(ctx context.Context, alertID uuid.UUID) (*dto.AcceptedDonorListResponse, error)
	MarkResolved(ctx context.Context, id uuid.UUID) error
	Cancel(ctx context.Context, id uuid.UUID) error
}

type alertUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	alertRepo       repository.AlertRepository
	acceptanceRepo  repository.AlertAcceptanceRepository
	deviceTokenRepo repository.DeviceTokenRepository
	resolver        *DonorResolver
	pushSender      service.PushSender
}

func NewAlertUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	alertRepo repository.AlertRepository,
	acceptanceRepo repository.AlertAcceptanceRepository,
	deviceTokenRepo repository.DeviceTokenRepository,
	resolver *DonorResolver,
	pushSender service.PushSender,
) AlertUsecase {
	return &alertUsecase{
		db:              db,
		log:             log,
		alertRepo:       alertRepo,
		acceptanceRepo:  acceptanceRepo,
		deviceTokenRepo: deviceTokenRepo,
		resolver:        resolver,
		pushSender:      pushSender,
	}
}

func (u *alertUsecase) Create(ctx context.Context, createdBy uuid.UUID, req *dto.CreateAlertRequest) (*dto.AlertResponse, error) {
	expiresAt := time.Now().Add(entity.DefaultAlertTTL)
	if req.ExpiresAt != "" {
		parsed, err := time.Parse(time.RFC3339, req.ExpiresAt)
		if err != nil {
			return nil, ErrInvalidExpiryFormat
		}
		expiresAt = parsed
	}

	alert := &entity.Alert{
		Title:           req.Title,
		Message:         req.Message,
		HospitalName:    req.HospitalName,
		HospitalAddress: req.HospitalAddress,
		ContactPerson:   req.ContactPerson,
		ContactPhone:    req.ContactPhone,
		BloodGroup:      entity.BloodGroup(req.BloodGroup),
		UnitsRequired:   req.UnitsRequired,
		Urgency:         entity.AlertUrgency(req.Urgency),
		Status:          entity.AlertStatusActive,
		Notes:           req.Notes,
		ExpiresAt:       expiresAt,
		CreatedBy:       createdBy,
	}

	if err := u.alertRepo.Create(ctx, u.db, alert); err != nil {
		u.log.Warnf("Failed to create alert: %+v", err)
		return nil, err
	}

	// Notify donors in the background. Delivery failures are logged only;
	// the alert exists regardless of whether any push went out.
	go u.dispatchAlertPush(alert)

	return converter.AlertToResponse(alert), nil
}

func (u *alertUsecase) dispatchAlertPush(alert *entity.Alert) {
	ctx, cancel := context.WithTimeout(context.Background(), pushDispatchTimeout)
	defer cancel()

	deviceTokens, err := u.deviceTokenRepo.FindActiveByRole(ctx, u.db, entity.RoleDonor)
	if err != nil {
		u.log.Warnf("Failed to load donor device tokens for alert %s: %+v", alert.ID, err)
		return
	}
	if len(deviceTokens) == 0 {
		u.log.Infof("No donor device tokens registered, skipping push for alert %s", alert.ID)
		return
	}

	tokens := make([]string, len(deviceTokens))
	for i, t := range deviceTokens {
		tokens[i] = t.Token
	}

	data := map[string]string{
		"type":        "blood_alert",
		"alert_id":    alert.ID.String(),
		"blood_group": string(alert.BloodGroup),
		"urgency":     string(alert.Urgency),
	}

	result, err := u.pushSender.Send(ctx, tokens, alert.Title, alert.Message, data)
	if err != nil {
		u.log.Warnf("Failed to dispatch alert push for %s: %+v", alert.ID, err)
		return
	}

	u.log.Infof("Alert %s push dispatched: %d sent, %d failed of %d tokens",
		alert.ID, result.SuccessCount, result.FailureCount, result.TokensCount)
}

func (u *alertUsecase) Get(ctx context.Context, id uuid.UUID) (*dto.AlertResponse, error) {
	alert, err := u.alertRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find alert by ID: %+v", err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	return converter.AlertToResponse(alert), nil
}

func (u *alertUsecase) Update(ctx context.Context, id uuid.UUID, req *dto.UpdateAlertRequest) (*dto.AlertResponse, error) {
	alert, err := u.alertRepo.FindByID(ctx, u.db, id)
	if err != nil {
		u.log.Warnf("Failed to find alert by ID: %+v", err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	if req.Title != "" {
		alert.Title = req.Title
	}
	if req.Message != "" {
		alert.Message = req.Message
	}
	if req.ContactPerson != "" {
		alert.ContactPerson = req.ContactPerson
	}
	if req.ContactPhone != "" {
		alert.ContactPhone = req.ContactPhone
	}
	if req.UnitsRequired > 0 {
		alert.UnitsRequired = req.UnitsRequired
	}
	if req.Urgency != "" {
		alert.Urgency = entity.AlertUrgency(req.Urgency)
	}
	if req.Notes != "" {
		alert.Notes = req.Notes
	}

	if err := u.alertRepo.Update(ctx, u.db, alert); err != nil {
		u.log.Warnf("Failed to update alert: %+v", err)
		return nil, err
	}

	return converter.AlertToResponse(alert), nil
}

func (u *alertUsecase) ListAll(ctx context.Context) (*dto.AlertListResponse, error) {
	alerts, err := u.alertRepo.FindAll(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list alerts: %+v", err)
		return nil, err
	}

	responses := converter.AlertsWithCountToResponses(alerts)
	return &dto.AlertListResponse{Alerts: responses, Total: len(responses)}, nil
}

func (u *alertUsecase) ListActive(ctx context.Context) (*dto.AlertListResponse, error) {
	alerts, err := u.alertRepo.FindActive(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list active alerts: %+v", err)
		return nil, err
	}

	responses := converter.AlertsWithCountToResponses(alerts)
	return &dto.AlertListResponse{Alerts: responses, Total: len(responses)}, nil
}

func (u *alertUsecase) ListPast(ctx context.Context) (*dto.AlertListResponse, error) {
	alerts, err := u.alertRepo.FindPast(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list past alerts: %+v", err)
		return nil, err
	}

	responses := converter.AlertsWithCountToResponses(alerts)
	return &dto.AlertListResponse{Alerts: responses, Total: len(responses)}, nil
}

func (u *alertUsecase) ListActiveForDonor(ctx context.Context, userID uuid.UUID, donorIDHint *uuid.UUID) (*dto.AlertListResponse, error) {
	alerts, err := u.alertRepo.FindActive(ctx, u.db)
	if err != nil {
		u.log.Warnf("Failed to list active alerts: %+v", err)
		return nil, err
	}

	responses := converter.AlertsWithCountToResponses(alerts)
	if len(responses) == 0 {
		return &dto.AlertListResponse{Alerts: responses, Total: 0}, nil
	}

	// An unresolvable donor does not fail the listing; every alert is just
	// annotated as not yet accepted.
	accepted := map[uuid.UUID]bool{}
	donor, err := u.resolver.Resolve(ctx, userID, donorIDHint)
	if err != nil {
		u.log.Warnf("Failed to resolve donor for acceptance flags: %+v", err)
	} else {
		alertIDs := make([]uuid.UUID, len(responses))
		for i := range responses {
			alertIDs[i] = responses[i].ID
		}

		accepted, err = u.acceptanceRepo.AcceptedAlertIDs(ctx, u.db, donor.ID, alertIDs)
		if err != nil {
			u.log.Warnf("Failed to load acceptance set for donor %s: %+v", donor.ID, err)
			return nil, err
		}
	}

	for i := range responses {
		hasAccepted := accepted[responses[i].ID]
		responses[i].HasAccepted = &hasAccepted
	}

	return &dto.AlertListResponse{Alerts: responses, Total: len(responses)}, nil
}

func (u *alertUsecase) Accept(ctx context.Context, alertID, userID uuid.UUID, donorIDHint *uuid.UUID) (*dto.AcceptAlertResponse, error) {
	alert, err := u.alertRepo.FindByID(ctx, u.db, alertID)
	if err != nil {
		u.log.Warnf("Failed to find alert by ID: %+v", err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}
	if alert.Status != entity.AlertStatusActive {
		return nil, ErrAlertNotActive
	}
	if alert.IsExpired(time.Now()) {
		return nil, ErrAlertExpired
	}

	donor, err := u.resolver.Resolve(ctx, userID, donorIDHint)
	if err != nil {
		return nil, err
	}

	existing, err := u.acceptanceRepo.FindByAlertAndDonor(ctx, u.db, alert.ID, donor.ID)
	if err != nil {
		u.log.Warnf("Failed to check existing acceptance: %+v", err)
		return nil, err
	}
	if existing != nil {
		return &dto.AcceptAlertResponse{Success: true, Message: "Already accepted this alert"}, nil
	}

	acceptance := &entity.AlertAcceptance{
		AlertID: alert.ID,
		DonorID: donor.ID,
	}

	if err := u.acceptanceRepo.Create(ctx, u.db, acceptance); err != nil {
		// A concurrent accept can slip between the check and the insert;
		// the unique index turns that race into a duplicate key error.
		if isDuplicateKeyError(err, "alert_donor") {
			return &dto.AcceptAlertResponse{Success: true, Message: "Already accepted this alert"}, nil
		}
		if isForeignKeyError(err, "donor") {
			return nil, ErrDonorProfileNotFound
		}
		u.log.Warnf("Failed to create acceptance: %+v", err)
		return nil, err
	}

	return &dto.AcceptAlertResponse{Success: true, Message: "Alert accepted successfully"}, nil
}

func (u *alertUsecase) AcceptedDonors(ctx context.Context, alertID uuid.UUID) (*dto.AcceptedDonorListResponse, error) {
	alert, err := u.alertRepo.FindByID(ctx, u.db, alertID)
	if err != nil {
		u.log.Warnf("Failed to find alert by ID: %+v", err)
		return nil, err
	}
	if alert == nil {
		return nil, ErrAlertNotFound
	}

	acceptances, err := u.acceptanceRepo.FindByAlertID(ctx, u.db, alertID)
	if err != nil {
		u.log.Warnf("Failed to list acceptances for alert %s: %+v", alertID, err)
		return nil, err
	}

	donors := make([]dto.AcceptedDonorResponse, 0, len(acceptances))
	for i := range acceptances {
		if resp := converter.AcceptanceToAcceptedDonor(&acceptances[i]); resp != nil {
			donors = append(donors, *resp)
		}
	}

	return &dto.AcceptedDonorListResponse{Donors: donors, Total: len(donors)}, nil
}

// MarkResolved transitions an alert to RESOLVED. The transition is allowed
// from any state so an admin can still resolve an alert after it expired.
func (u *alertUsecase) MarkResolved(ctx context.Context, id uuid.UUID) error {
	return u.updateStatus(ctx, id, entity.AlertStatusResolved)
}

func (u *alertUsecase) Cancel(ctx context.Context, id uuid.UUID) error {
	return u.updateStatus(ctx, id, entity.AlertStatusCancelled)
}

func (u *alertUsecase) updateStatus(ctx context.Context, id uuid.UUID, status entity.AlertStatus) error {
	affected, err := u.alertRepo.UpdateStatus(ctx, u.db, id, status)
	if err != nil {
		u.log.Warnf("Failed to update alert status: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrAlertNotFound
	}
	return nil
}
