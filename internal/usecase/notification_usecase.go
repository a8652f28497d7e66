package usecase

import (
	"context"
	"errors"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"
	"lifelink-api/internal/domain/repository"
	"lifelink-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrDeviceTokenNotFound = errors.New("device token not found")
	ErrInvalidAudienceUser = errors.New("invalid user id for user audience")
)

type NotificationUsecase interface {
	RegisterToken(ctx context.Context, userID uuid.UUID, req *dto.RegisterTokenRequest) error
	UnregisterToken(ctx context.Context, userID uuid.UUID, req *dto.UnregisterTokenRequest) error
	Broadcast(ctx context.Context, req *dto.BroadcastRequest) (*dto.DispatchResultResponse, error)
}

type notificationUsecase struct {
	db              *gorm.DB
	log             *logrus.Logger
	deviceTokenRepo repository.DeviceTokenRepository
	pushSender      service.PushSender
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	deviceTokenRepo repository.DeviceTokenRepository,
	pushSender service.PushSender,
) NotificationUsecase {
	return &notificationUsecase{
		db:              db,
		log:             log,
		deviceTokenRepo: deviceTokenRepo,
		pushSender:      pushSender,
	}
}

// RegisterToken stores an FCM token for the user. Re-registering an existing
// token reactivates it instead of creating a duplicate row.
func (u *notificationUsecase) RegisterToken(ctx context.Context, userID uuid.UUID, req *dto.RegisterTokenRequest) error {
	existing, err := u.deviceTokenRepo.FindByUserAndToken(ctx, u.db, userID, req.Token)
	if err != nil {
		u.log.Warnf("Failed to look up device token: %+v", err)
		return err
	}

	if existing != nil {
		active := true
		existing.IsActive = &active
		if req.DeviceID != "" {
			existing.DeviceID = req.DeviceID
		}
		if req.Platform != "" {
			existing.Platform = req.Platform
		}
		if err := u.deviceTokenRepo.Update(ctx, u.db, existing); err != nil {
			u.log.Warnf("Failed to reactivate device token: %+v", err)
			return err
		}
		return nil
	}

	platform := req.Platform
	if platform == "" {
		platform = "mobile"
	}

	token := &entity.DeviceToken{
		UserID:   userID,
		Token:    req.Token,
		DeviceID: req.DeviceID,
		Platform: platform,
	}

	if err := u.deviceTokenRepo.Create(ctx, u.db, token); err != nil {
		u.log.Warnf("Failed to register device token: %+v", err)
		return err
	}

	return nil
}

func (u *notificationUsecase) UnregisterToken(ctx context.Context, userID uuid.UUID, req *dto.UnregisterTokenRequest) error {
	affected, err := u.deviceTokenRepo.Deactivate(ctx, u.db, userID, req.Token)
	if err != nil {
		u.log.Warnf("Failed to unregister device token: %+v", err)
		return err
	}
	if affected == 0 {
		return ErrDeviceTokenNotFound
	}
	return nil
}

// Broadcast sends an ad-hoc notification to an audience. Unlike alert
// dispatch this runs synchronously so the admin sees delivery counts.
func (u *notificationUsecase) Broadcast(ctx context.Context, req *dto.BroadcastRequest) (*dto.DispatchResultResponse, error) {
	var deviceTokens []entity.DeviceToken
	var err error

	switch req.Audience {
	case "donors":
		deviceTokens, err = u.deviceTokenRepo.FindActiveByRole(ctx, u.db, entity.RoleDonor)
	case "user":
		userID, parseErr := uuid.Parse(req.UserID)
		if parseErr != nil {
			return nil, ErrInvalidAudienceUser
		}
		deviceTokens, err = u.deviceTokenRepo.FindActiveByUserID(ctx, u.db, userID)
	default:
		deviceTokens, err = u.deviceTokenRepo.FindAllActive(ctx, u.db)
	}
	if err != nil {
		u.log.Warnf("Failed to load device tokens for broadcast: %+v", err)
		return nil, err
	}

	if len(deviceTokens) == 0 {
		return &dto.DispatchResultResponse{
			Success: true,
			Message: "No active device tokens registered",
		}, nil
	}

	tokens := make([]string, len(deviceTokens))
	for i, t := range deviceTokens {
		tokens[i] = t.Token
	}

	result, err := u.pushSender.Send(ctx, tokens, req.Title, req.Body, req.Data)
	if err != nil {
		u.log.Warnf("Failed to dispatch broadcast: %+v", err)
		return nil, err
	}

	return &dto.DispatchResultResponse{
		Success:      true,
		TokensCount:  result.TokensCount,
		SuccessCount: result.SuccessCount,
		FailureCount: result.FailureCount,
		Message:      "Broadcast dispatched",
	}, nil
}
