package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lifelink-api/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPushLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

func newFCMFixture(t *testing.T, handler http.HandlerFunc) *FCMService {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewFCMService(config.FCMConfig{
		Endpoint:  server.URL,
		ServerKey: "test-server-key",
		Timeout:   2 * time.Second,
	}, testPushLogger())
}

func TestFCMSend(t *testing.T) {
	var gotAuth string
	var gotPayload fcmPayload

	svc := newFCMFixture(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotPayload))

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(fcmResponse{Success: 2, Failure: 1})
	})

	result, err := svc.Send(context.Background(), []string{"tok-1", "tok-2", "tok-3"}, "O- needed", "2 units required", map[string]string{"type": "blood_alert"})

	require.NoError(t, err)
	assert.Equal(t, 3, result.TokensCount)
	assert.Equal(t, 2, result.SuccessCount)
	assert.Equal(t, 1, result.FailureCount)

	assert.Equal(t, "key=test-server-key", gotAuth)
	assert.Equal(t, []string{"tok-1", "tok-2", "tok-3"}, gotPayload.RegistrationIDs)
	assert.Equal(t, "O- needed", gotPayload.Notification.Title)
	assert.Equal(t, "blood_alert", gotPayload.Data["type"])
}

func TestFCMSend_NoTokens(t *testing.T) {
	called := false
	svc := newFCMFixture(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	result, err := svc.Send(context.Background(), nil, "title", "body", nil)

	require.NoError(t, err)
	assert.Equal(t, 0, result.TokensCount)
	assert.False(t, called)
}

func TestFCMSend_SplitsIntoBatches(t *testing.T) {
	var batchSizes []int
	svc := newFCMFixture(t, func(w http.ResponseWriter, r *http.Request) {
		var payload fcmPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		batchSizes = append(batchSizes, len(payload.RegistrationIDs))

		json.NewEncoder(w).Encode(fcmResponse{Success: len(payload.RegistrationIDs)})
	})

	tokens := make([]string, fcmBatchLimit+37)
	for i := range tokens {
		tokens[i] = "tok"
	}

	result, err := svc.Send(context.Background(), tokens, "title", "body", nil)

	require.NoError(t, err)
	assert.Equal(t, []int{fcmBatchLimit, 37}, batchSizes)
	assert.Equal(t, len(tokens), result.SuccessCount)
	assert.Equal(t, 0, result.FailureCount)
}

func TestFCMSend_FailedBatchCountedNotFatal(t *testing.T) {
	svc := newFCMFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	result, err := svc.Send(context.Background(), []string{"tok-1", "tok-2"}, "title", "body", nil)

	require.NoError(t, err)
	assert.Equal(t, 2, result.TokensCount)
	assert.Equal(t, 0, result.SuccessCount)
	assert.Equal(t, 2, result.FailureCount)
}
