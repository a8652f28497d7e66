package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"lifelink-api/config"

	"github.com/sirupsen/logrus"
)

// fcmBatchLimit is the maximum number of registration tokens FCM accepts
// in a single legacy send request.
const fcmBatchLimit = 500

// DispatchResult summarizes one push dispatch across all batches
type DispatchResult struct {
	TokensCount  int
	SuccessCount int
	FailureCount int
}

// PushSender delivers a notification payload to a set of device tokens
type PushSender interface {
	Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (*DispatchResult, error)
}

type fcmPayload struct {
	RegistrationIDs []string          `json:"registration_ids"`
	Notification    fcmNotification   `json:"notification"`
	Data            map[string]string `json:"data,omitempty"`
}

type fcmNotification struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type fcmResponse struct {
	Success int `json:"success"`
	Failure int `json:"failure"`
}

// FCMService sends push notifications through the FCM HTTP endpoint.
// Delivery is best effort; a failed batch is logged and counted, never
// surfaced as a hard error to the caller.
type FCMService struct {
	config     config.FCMConfig
	log        *logrus.Logger
	httpClient *http.Client
}

func NewFCMService(cfg config.FCMConfig, log *logrus.Logger) *FCMService {
	return &FCMService{
		config: cfg,
		log:    log,
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
	}
}

func (s *FCMService) Send(ctx context.Context, tokens []string, title, body string, data map[string]string) (*DispatchResult, error) {
	result := &DispatchResult{TokensCount: len(tokens)}
	if len(tokens) == 0 {
		return result, nil
	}

	for start := 0; start < len(tokens); start += fcmBatchLimit {
		end := start + fcmBatchLimit
		if end > len(tokens) {
			end = len(tokens)
		}
		batch := tokens[start:end]

		success, failure, err := s.sendBatch(ctx, batch, title, body, data)
		if err != nil {
			s.log.Warnf("Failed to dispatch push batch of %d tokens: %+v", len(batch), err)
			result.FailureCount += len(batch)
			continue
		}
		result.SuccessCount += success
		result.FailureCount += failure
	}

	return result, nil
}

func (s *FCMService) sendBatch(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, error) {
	payload := fcmPayload{
		RegistrationIDs: tokens,
		Notification: fcmNotification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	buf, err := json.Marshal(payload)
	if err != nil {
		return 0, 0, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.config.Endpoint, bytes.NewReader(buf))
	if err != nil {
		return 0, 0, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "key="+s.config.ServerKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("push endpoint returned status %d", resp.StatusCode)
	}

	var fcmResp fcmResponse
	if err := json.NewDecoder(resp.Body).Decode(&fcmResp); err != nil {
		return 0, 0, err
	}

	return fcmResp.Success, fcmResp.Failure, nil
}
