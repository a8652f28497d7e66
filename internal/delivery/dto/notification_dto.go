package dto

// Request DTOs

type RegisterTokenRequest struct {
	Token    string `json:"token" validate:"required"`
	DeviceID string `json:"device_id" validate:"omitempty"`
	Platform string `json:"platform" validate:"omitempty,oneof=mobile web"`
}

type UnregisterTokenRequest struct {
	Token string `json:"token" validate:"required"`
}

type BroadcastRequest struct {
	Title    string            `json:"title" validate:"required"`
	Body     string            `json:"body" validate:"required"`
	Data     map[string]string `json:"data" validate:"omitempty"`
	Audience string            `json:"audience" validate:"required,oneof=all donors user"`
	UserID   string            `json:"user_id" validate:"required_if=Audience user,omitempty,uuid"`
}

// Response DTOs

type DispatchResultResponse struct {
	Success      bool   `json:"success"`
	TokensCount  int    `json:"tokens_count"`
	SuccessCount int    `json:"success_count"`
	FailureCount int    `json:"failure_count"`
	Message      string `json:"message"`
}
