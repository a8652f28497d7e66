package usecase

import (
	"context"
	"testing"

	"lifelink-api/internal/delivery/dto"
	"lifelink-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterToken_NewToken(t *testing.T) {
	tokenRepo := &fakeDeviceTokenRepo{}
	usecase := NewNotificationUsecase(nil, testLogger(), tokenRepo, newFakePushSender())

	userID := uuid.New()
	err := usecase.RegisterToken(context.Background(), userID, &dto.RegisterTokenRequest{
		Token: "fcm-token-1",
	})

	require.NoError(t, err)
	require.Len(t, tokenRepo.tokens, 1)
	assert.Equal(t, userID, tokenRepo.tokens[0].UserID)
	assert.Equal(t, "mobile", tokenRepo.tokens[0].Platform)
}

func TestRegisterToken_ReactivatesExisting(t *testing.T) {
	userID := uuid.New()
	inactive := false
	tokenRepo := &fakeDeviceTokenRepo{tokens: []entity.DeviceToken{
		{UserID: userID, Token: "fcm-token-2", Platform: "mobile", IsActive: &inactive},
	}}
	usecase := NewNotificationUsecase(nil, testLogger(), tokenRepo, newFakePushSender())

	err := usecase.RegisterToken(context.Background(), userID, &dto.RegisterTokenRequest{
		Token:    "fcm-token-2",
		Platform: "web",
	})

	require.NoError(t, err)
	// Reactivated in place, no second row
	require.Len(t, tokenRepo.tokens, 1)
	require.NotNil(t, tokenRepo.tokens[0].IsActive)
	assert.True(t, *tokenRepo.tokens[0].IsActive)
	assert.Equal(t, "web", tokenRepo.tokens[0].Platform)
}

func TestBroadcast_NoTokens(t *testing.T) {
	push := newFakePushSender()
	usecase := NewNotificationUsecase(nil, testLogger(), &fakeDeviceTokenRepo{}, push)

	resp, err := usecase.Broadcast(context.Background(), &dto.BroadcastRequest{
		Title: "Camp reminder",
		Body:  "Tomorrow 9am",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "No active device tokens registered", resp.Message)
	assert.Equal(t, 0, push.sentCount())
}

func TestBroadcast_UserAudienceRequiresValidID(t *testing.T) {
	usecase := NewNotificationUsecase(nil, testLogger(), &fakeDeviceTokenRepo{}, newFakePushSender())

	_, err := usecase.Broadcast(context.Background(), &dto.BroadcastRequest{
		Audience: "user",
		UserID:   "not-a-uuid",
		Title:    "t",
		Body:     "b",
	})

	assert.ErrorIs(t, err, ErrInvalidAudienceUser)
}

func TestBroadcast_Dispatches(t *testing.T) {
	push := newFakePushSender()
	tokenRepo := &fakeDeviceTokenRepo{tokens: []entity.DeviceToken{
		{UserID: uuid.New(), Token: "tok-a"},
		{UserID: uuid.New(), Token: "tok-b"},
	}}
	usecase := NewNotificationUsecase(nil, testLogger(), tokenRepo, push)

	resp, err := usecase.Broadcast(context.Background(), &dto.BroadcastRequest{
		Audience: "donors",
		Title:    "Blood camp this weekend",
		Body:     "Register at the front desk",
	})

	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 2, resp.TokensCount)
	assert.Equal(t, 2, resp.SuccessCount)
	assert.Equal(t, "Broadcast dispatched", resp.Message)
}
